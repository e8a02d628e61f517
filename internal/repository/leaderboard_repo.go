package repo

import (
	"context"
	"database/sql"
	"errors"

	"devcred-backend/internal/lib"
	"devcred-backend/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type LeaderboardRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewLeaderboardRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *LeaderboardRepo {
	return &LeaderboardRepo{
		db:     db,
		getter: c,
	}
}

func (r *LeaderboardRepo) Get(ctx context.Context, username string) (*models.LeaderboardEntry, error) {
	const op = "leaderboard_repo.Get"

	query := `
		SELECT username, wallet_address, score, tier, avatar, github_id, created_at, updated_at
		FROM leaderboard
		WHERE username = $1;
	`

	var entry models.LeaderboardEntry
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &entry, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &entry, nil
}

// Save overwrites the whole row for entry.Username, created_at included; the
// caller decides which created_at to carry.
func (r *LeaderboardRepo) Save(ctx context.Context, entry *models.LeaderboardEntry) error {
	const op = "leaderboard_repo.Save"

	query := `
		INSERT INTO leaderboard (username, wallet_address, score, tier, avatar, github_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (username) DO UPDATE SET
			wallet_address = EXCLUDED.wallet_address,
			score = EXCLUDED.score,
			tier = EXCLUDED.tier,
			avatar = EXCLUDED.avatar,
			github_id = EXCLUDED.github_id,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query,
			entry.Username, entry.WalletAddress, entry.Score,
			entry.Tier, entry.Avatar, entry.GithubID,
			entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

// Top returns up to limit entries ordered by score descending. Ties resolve
// by username ascending, a deliberate deterministic secondary key.
func (r *LeaderboardRepo) Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	const op = "leaderboard_repo.Top"

	query := `
		SELECT username, wallet_address, score, tier, avatar, github_id, created_at, updated_at
		FROM leaderboard
		ORDER BY score DESC, username ASC
		LIMIT $1;
	`

	var entries []*models.LeaderboardEntry
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &entries, query, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.LeaderboardEntry{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

// CountGreater returns the number of entries with a strictly greater score.
// This is a full scan per call, acceptable at current scale; a sorted
// secondary index is the production-scale alternative.
func (r *LeaderboardRepo) CountGreater(ctx context.Context, score float64) (int, error) {
	const op = "leaderboard_repo.CountGreater"

	query := `SELECT COUNT(*) FROM leaderboard WHERE score > $1;`

	var count int
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, query, score)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return count, nil
}

func (r *LeaderboardRepo) Count(ctx context.Context) (int, error) {
	const op = "leaderboard_repo.Count"

	var count int
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM leaderboard;`)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return count, nil
}

func (r *LeaderboardRepo) GetStats(ctx context.Context) (*models.LeaderboardStats, error) {
	const op = "leaderboard_repo.GetStats"

	query := `
		SELECT
			COUNT(*) AS total_users,
			COALESCE(CAST(ROUND(AVG(score)) AS BIGINT), 0) AS average_score,
			COALESCE(MAX(score), 0) AS highest_score
		FROM leaderboard;
	`

	var stats models.LeaderboardStats
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &stats, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &stats, nil
}
