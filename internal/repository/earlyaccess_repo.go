package repo

import (
	"context"

	"devcred-backend/internal/lib"
	"devcred-backend/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type EarlyAccessRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEarlyAccessRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EarlyAccessRepo {
	return &EarlyAccessRepo{
		db:     db,
		getter: c,
	}
}

func (r *EarlyAccessRepo) Create(ctx context.Context, entry *models.EarlyAccessEntry) error {
	const op = "earlyaccess_repo.Create"

	query := `
		INSERT INTO early_access (id, email, wallet_address, created_at)
		VALUES ($1, $2, $3, $4);
	`

	_, err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, entry.ID, entry.Email, entry.WalletAddress, entry.CreatedAt)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
