package models

import (
	"time"
)

// LeaderboardEntry is keyed by Username. CreatedAt is first-write-wins,
// UpdatedAt reflects the latest write.
type LeaderboardEntry struct {
	Username      string    `db:"username"`
	WalletAddress *string   `db:"wallet_address"`
	Score         float64   `db:"score"`
	Tier          *string   `db:"tier"`
	Avatar        *string   `db:"avatar"`
	GithubID      *string   `db:"github_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type LeaderboardStats struct {
	TotalUsers   int     `db:"total_users"`
	AverageScore int     `db:"average_score"`
	HighestScore float64 `db:"highest_score"`
}
