package likes_test

import (
	"context"
	"testing"

	"devcred-backend/internal/models"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/service/likes"
	"devcred-backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passthroughTRM(t *testing.T, ctx context.Context, wantErr error) *mocks.MockManager {
	t.Helper()

	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			if wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, wantErr)
			}
		}).
		Return(wantErr).
		Once()

	return trm
}

func TestLike_Success(t *testing.T) {
	ctx := context.Background()

	likeRepo := mocks.NewLikeRepository(t)
	likeRepo.On("Exists", ctx, "0xTarget", "0xLiker").Return(false, nil).Once()
	likeRepo.On("Create", ctx, mock.AnythingOfType("*models.Like")).Return(nil).Once()

	trm := passthroughTRM(t, ctx, nil)

	service := likes.NewLikesService(trm, likeRepo)
	err := service.Like(ctx, "0xTarget", "0xLiker")
	assert.NoError(t, err)
}

func TestLike_SelfLikeRejected(t *testing.T) {
	trm := &mocks.MockManager{}
	likeRepo := &mocks.LikeRepository{}

	service := likes.NewLikesService(trm, likeRepo)
	err := service.Like(context.Background(), "0xSame", "0xSame")
	assert.ErrorIs(t, err, likes.ErrSelfLike)

	// No transaction and no storage access for self-likes.
	trm.AssertNotCalled(t, "Do")
	likeRepo.AssertNotCalled(t, "Exists")
}

func TestLike_DuplicateRejected(t *testing.T) {
	ctx := context.Background()

	likeRepo := mocks.NewLikeRepository(t)
	likeRepo.On("Exists", ctx, "0xTarget", "0xLiker").Return(true, nil).Once()

	trm := passthroughTRM(t, ctx, repo.ErrLikeExists)

	service := likes.NewLikesService(trm, likeRepo)
	err := service.Like(ctx, "0xTarget", "0xLiker")
	assert.ErrorIs(t, err, repo.ErrLikeExists)
}

func TestLike_RaceLostToUniqueConstraint(t *testing.T) {
	ctx := context.Background()

	// The pre-check passed but a concurrent identical request won the insert.
	likeRepo := mocks.NewLikeRepository(t)
	likeRepo.On("Exists", ctx, "0xTarget", "0xLiker").Return(false, nil).Once()
	likeRepo.On("Create", ctx, mock.AnythingOfType("*models.Like")).Return(repo.ErrLikeExists).Once()

	trm := passthroughTRM(t, ctx, repo.ErrLikeExists)

	service := likes.NewLikesService(trm, likeRepo)
	err := service.Like(ctx, "0xTarget", "0xLiker")
	assert.ErrorIs(t, err, repo.ErrLikeExists)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()

	likeRepo := mocks.NewLikeRepository(t)
	likeRepo.On("CountsByTarget", ctx).Return([]*models.LikeCount{
		{TargetWallet: "0xAlice", Count: 3},
		{TargetWallet: "0xBob", Count: 1},
	}, nil).Once()

	trm := &mocks.MockManager{}

	service := likes.NewLikesService(trm, likeRepo)
	counts, err := service.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"0xAlice": 3, "0xBob": 1}, counts)
}
