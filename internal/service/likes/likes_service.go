package likes

import (
	"context"
	"errors"
	"time"

	"devcred-backend/internal/models"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/service"
)

var ErrSelfLike = errors.New("cannot like yourself")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=LikeRepository
type LikeRepository interface {
	Exists(ctx context.Context, targetWallet, likerWallet string) (bool, error)
	Create(ctx context.Context, like *models.Like) error
	CountsByTarget(ctx context.Context) ([]*models.LikeCount, error)
}

type LikesService struct {
	trm   service.TransactionManager
	likes LikeRepository
	nowFn func() time.Time
}

func NewLikesService(trm service.TransactionManager, likes LikeRepository) *LikesService {
	return &LikesService{
		trm:   trm,
		likes: likes,
		nowFn: time.Now,
	}
}

// Like registers at most one like per (target, liker) pair. The existence
// check and the insert run in one transaction; the composite primary key
// still backstops concurrent identical requests via repo.ErrLikeExists.
func (s *LikesService) Like(ctx context.Context, targetWallet, likerWallet string) error {
	if targetWallet == likerWallet {
		return ErrSelfLike
	}

	return s.trm.Do(ctx, func(ctx context.Context) error {
		exists, err := s.likes.Exists(ctx, targetWallet, likerWallet)
		if err != nil {
			return err
		}
		if exists {
			return repo.ErrLikeExists
		}

		return s.likes.Create(ctx, &models.Like{
			TargetWallet: targetWallet,
			LikerWallet:  likerWallet,
			CreatedAt:    s.nowFn(),
		})
	})
}

// Counts returns a mapping from target wallet to like count.
func (s *LikesService) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := s.likes.CountsByTarget(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.TargetWallet] = row.Count
	}
	return counts, nil
}
