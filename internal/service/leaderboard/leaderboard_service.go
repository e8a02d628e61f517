package leaderboard

import (
	"context"
	"errors"
	"time"

	"devcred-backend/internal/http/api"
	"devcred-backend/internal/models"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EntryRepository
type EntryRepository interface {
	Get(ctx context.Context, username string) (*models.LeaderboardEntry, error)
	Save(ctx context.Context, entry *models.LeaderboardEntry) error
	Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
	CountGreater(ctx context.Context, score float64) (int, error)
	Count(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (*models.LeaderboardStats, error)
}

type LeaderboardService struct {
	trm     service.TransactionManager
	entries EntryRepository
	nowFn   func() time.Time
}

func NewLeaderboardService(trm service.TransactionManager, entries EntryRepository) *LeaderboardService {
	return &LeaderboardService{
		trm:     trm,
		entries: entries,
		nowFn:   time.Now,
	}
}

type UpsertInput struct {
	Username      string
	Score         float64
	WalletAddress *string
	Tier          *string
	Avatar        *string
	GithubID      *string
}

// Upsert writes the entry keyed by username. An existing row keeps its
// createdAt (first-write-wins); every other field is overwritten and
// updatedAt always moves to now. Read and write run inside one transaction,
// though concurrent upserts to the same key may still interleave at the
// isolation level in use.
func (s *LeaderboardService) Upsert(ctx context.Context, input UpsertInput) (*api.LeaderboardEntrySchema, error) {
	now := s.nowFn()

	entry := &models.LeaderboardEntry{
		Username:      input.Username,
		WalletAddress: input.WalletAddress,
		Score:         input.Score,
		Tier:          input.Tier,
		Avatar:        input.Avatar,
		GithubID:      input.GithubID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		existing, err := s.entries.Get(ctx, input.Username)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		if existing != nil {
			entry.CreatedAt = existing.CreatedAt
		}

		return s.entries.Save(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return toSchema(entry), nil
}

func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]api.LeaderboardEntrySchema, error) {
	entries, err := s.entries.Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]api.LeaderboardEntrySchema, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toSchema(e))
	}
	return out, nil
}

// Rank computes 1 + count of entries with a strictly greater score, so tied
// scores share a rank.
func (s *LeaderboardService) Rank(ctx context.Context, username string) (*api.RankResponse, error) {
	resp := &api.RankResponse{Username: username}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		entry, err := s.entries.Get(ctx, username)
		if err != nil {
			return err
		}

		greater, err := s.entries.CountGreater(ctx, entry.Score)
		if err != nil {
			return err
		}

		total, err := s.entries.Count(ctx)
		if err != nil {
			return err
		}

		resp.Score = entry.Score
		resp.Rank = greater + 1
		resp.Tier = entry.Tier
		resp.TotalUsers = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *LeaderboardService) Stats(ctx context.Context) (*api.LeaderboardStatsResponse, error) {
	stats, err := s.entries.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	return &api.LeaderboardStatsResponse{
		TotalUsers:   stats.TotalUsers,
		AverageScore: stats.AverageScore,
		HighestScore: stats.HighestScore,
		LastUpdated:  s.nowFn(),
	}, nil
}

func toSchema(e *models.LeaderboardEntry) *api.LeaderboardEntrySchema {
	return &api.LeaderboardEntrySchema{
		Username:      e.Username,
		WalletAddress: e.WalletAddress,
		Score:         e.Score,
		Tier:          e.Tier,
		Avatar:        e.Avatar,
		GithubID:      e.GithubID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
