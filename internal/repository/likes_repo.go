package repo

import (
	"context"
	"errors"

	"devcred-backend/internal/lib"
	"devcred-backend/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type LikesRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewLikesRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *LikesRepo {
	return &LikesRepo{
		db:     db,
		getter: c,
	}
}

func (r *LikesRepo) Exists(ctx context.Context, targetWallet, likerWallet string) (bool, error) {
	const op = "likes_repo.Exists"

	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE target_wallet = $1 AND liker_wallet = $2);`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, targetWallet, likerWallet)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *LikesRepo) Create(ctx context.Context, like *models.Like) error {
	const op = "likes_repo.Create"

	query := `
		INSERT INTO likes (target_wallet, liker_wallet, created_at)
		VALUES ($1, $2, $3);
	`

	_, err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, like.TargetWallet, like.LikerWallet, like.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && string(pgErr.Code) == uniqueViolationCode {
			return ErrLikeExists
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *LikesRepo) CountsByTarget(ctx context.Context) ([]*models.LikeCount, error) {
	const op = "likes_repo.CountsByTarget"

	query := `
		SELECT target_wallet, COUNT(*) AS like_count
		FROM likes
		GROUP BY target_wallet;
	`

	var counts []*models.LikeCount
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &counts, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return counts, nil
}
