package earlyaccess

import (
	"context"
	"time"

	"devcred-backend/internal/models"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntryCreator
type EntryCreator interface {
	Create(ctx context.Context, entry *models.EarlyAccessEntry) error
}

type EarlyAccessService struct {
	entries EntryCreator
	nowFn   func() time.Time
}

func NewEarlyAccessService(entries EntryCreator) *EarlyAccessService {
	return &EarlyAccessService{
		entries: entries,
		nowFn:   time.Now,
	}
}

func (s *EarlyAccessService) Register(ctx context.Context, email, walletAddress string) error {
	return s.entries.Create(ctx, &models.EarlyAccessEntry{
		ID:            uuid.NewString(),
		Email:         email,
		WalletAddress: walletAddress,
		CreatedAt:     s.nowFn(),
	})
}
