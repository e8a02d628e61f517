package earlyaccess_test

import (
	"context"
	"errors"
	"testing"

	"devcred-backend/internal/models"
	"devcred-backend/internal/service/earlyaccess"
	"devcred-backend/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEarlyAccessService_Register_Success(t *testing.T) {
	mockRepo := mocks.NewEntryCreator(t)
	s := earlyaccess.NewEarlyAccessService(mockRepo)

	var saved *models.EarlyAccessEntry
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.EarlyAccessEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.EarlyAccessEntry)
		}).
		Return(nil)

	err := s.Register(context.Background(), "dev@example.com", "0x52908400098527886E0F7030069857D2E4169EE7")
	assert.NoError(t, err)

	assert.Equal(t, "dev@example.com", saved.Email)
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", saved.WalletAddress)
	assert.False(t, saved.CreatedAt.IsZero())

	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)
}

func TestEarlyAccessService_Register_RepoError(t *testing.T) {
	mockRepo := mocks.NewEntryCreator(t)
	s := earlyaccess.NewEarlyAccessService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := s.Register(context.Background(), "dev@example.com", "")
	assert.Error(t, err)
}
