package api

import (
	"time"

	"devcred-backend/internal/github"
	"devcred-backend/internal/onchain"
)

// JSON field names are camelCase throughout: they are the frontend contract.

type LeaderboardEntrySchema struct {
	Username      string    `json:"username"`
	WalletAddress *string   `json:"walletAddress"`
	Score         float64   `json:"score"`
	Tier          *string   `json:"tier"`
	Avatar        *string   `json:"avatar"`
	GithubID      *string   `json:"githubId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type UpsertResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    LeaderboardEntrySchema `json:"data"`
}

type RankResponse struct {
	Username   string  `json:"username"`
	Score      float64 `json:"score"`
	Rank       int     `json:"rank"`
	Tier       *string `json:"tier"`
	TotalUsers int     `json:"totalUsers"`
}

type LeaderboardStatsResponse struct {
	TotalUsers   int       `json:"totalUsers"`
	AverageScore int       `json:"averageScore"`
	HighestScore float64   `json:"highestScore"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// SignalsResponse carries the raw signals when no external model is used;
// composition is deferred to the caller.
type SignalsResponse struct {
	GitHub  *github.ContributorStats `json:"github"`
	Onchain *onchain.Stats           `json:"onchain"`
}

type ModelResponse struct {
	Model ModelScore `json:"model"`
}

type ModelScore struct {
	Score float64 `json:"score"`
}

type LikeResponse struct {
	Success bool `json:"success"`
}

type EarlyAccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
