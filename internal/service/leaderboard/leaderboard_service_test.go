package leaderboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"devcred-backend/internal/models"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/service/leaderboard"
	"devcred-backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

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

func TestUpsert_PreservesCreatedAt(t *testing.T) {
	ctx := context.Background()

	firstWrite := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	existing := &models.LeaderboardEntry{
		Username:  "octocat",
		Score:     10,
		CreatedAt: firstWrite,
		UpdatedAt: firstWrite,
	}

	entries := mocks.NewEntryRepository(t)
	entries.On("Get", ctx, "octocat").Return(existing, nil).Once()

	var saved *models.LeaderboardEntry
	entries.On("Save", ctx, mock.AnythingOfType("*models.LeaderboardEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.LeaderboardEntry)
		}).
		Return(nil).
		Once()

	trm := passthroughTRM(t, ctx, nil)

	service := leaderboard.NewLeaderboardService(trm, entries)
	resp, err := service.Upsert(ctx, leaderboard.UpsertInput{
		Username: "octocat",
		Score:    42.5,
		Tier:     strPtr("gold"),
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, firstWrite, saved.CreatedAt, "createdAt must survive the second write")
	assert.Equal(t, 42.5, saved.Score)
	assert.True(t, saved.UpdatedAt.After(firstWrite))

	assert.Equal(t, firstWrite, resp.CreatedAt)
	assert.Equal(t, 42.5, resp.Score)
}

func TestUpsert_NewEntrySetsCreatedAt(t *testing.T) {
	ctx := context.Background()

	entries := mocks.NewEntryRepository(t)
	entries.On("Get", ctx, "newcomer").Return(nil, repo.ErrNotFound).Once()

	var saved *models.LeaderboardEntry
	entries.On("Save", ctx, mock.AnythingOfType("*models.LeaderboardEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.LeaderboardEntry)
		}).
		Return(nil).
		Once()

	trm := passthroughTRM(t, ctx, nil)

	service := leaderboard.NewLeaderboardService(trm, entries)
	_, err := service.Upsert(ctx, leaderboard.UpsertInput{Username: "newcomer", Score: 7})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Nil(t, saved.WalletAddress)
	assert.Nil(t, saved.Tier)
}

func TestUpsert_RepoFailure(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	entries := mocks.NewEntryRepository(t)
	entries.On("Get", ctx, "octocat").Return(nil, dbErr).Once()

	trm := passthroughTRM(t, ctx, dbErr)

	service := leaderboard.NewLeaderboardService(trm, entries)
	_, err := service.Upsert(ctx, leaderboard.UpsertInput{Username: "octocat", Score: 1})
	assert.ErrorIs(t, err, dbErr)
}

// Strictly-greater-count rule over scores [10, 20, 20, 5]: both 20s share
// rank 1, the 10 ranks 3, the 5 ranks 4.
func TestRank_TiesShareRank(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		score    float64
		greater  int
		wantRank int
	}{
		{"top tie shares first place", 20, 0, 1},
		{"middle", 10, 2, 3},
		{"bottom", 5, 3, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entries := mocks.NewEntryRepository(t)
			entries.On("Get", ctx, "user").
				Return(&models.LeaderboardEntry{Username: "user", Score: tc.score}, nil).Once()
			entries.On("CountGreater", ctx, tc.score).Return(tc.greater, nil).Once()
			entries.On("Count", ctx).Return(4, nil).Once()

			trm := passthroughTRM(t, ctx, nil)

			service := leaderboard.NewLeaderboardService(trm, entries)
			resp, err := service.Rank(ctx, "user")
			require.NoError(t, err)

			assert.Equal(t, tc.wantRank, resp.Rank)
			assert.Equal(t, 4, resp.TotalUsers)
			assert.Equal(t, tc.score, resp.Score)
		})
	}
}

func TestRank_NotFound(t *testing.T) {
	ctx := context.Background()

	entries := mocks.NewEntryRepository(t)
	entries.On("Get", ctx, "ghost").Return(nil, repo.ErrNotFound).Once()

	trm := passthroughTRM(t, ctx, repo.ErrNotFound)

	service := leaderboard.NewLeaderboardService(trm, entries)
	_, err := service.Rank(ctx, "ghost")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTop_MapsEntries(t *testing.T) {
	ctx := context.Background()

	entries := mocks.NewEntryRepository(t)
	entries.On("Top", ctx, 2).Return([]*models.LeaderboardEntry{
		{Username: "alice", Score: 90},
		{Username: "bob", Score: 80},
	}, nil).Once()

	trm := &mocks.MockManager{}

	service := leaderboard.NewLeaderboardService(trm, entries)
	top, err := service.Top(ctx, 2)
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, "alice", top[0].Username)
	assert.Equal(t, "bob", top[1].Username)
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	entries := mocks.NewEntryRepository(t)
	entries.On("GetStats", ctx).Return(&models.LeaderboardStats{
		TotalUsers:   3,
		AverageScore: 12,
		HighestScore: 20,
	}, nil).Once()

	trm := &mocks.MockManager{}

	service := leaderboard.NewLeaderboardService(trm, entries)
	stats, err := service.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 12, stats.AverageScore)
	assert.Equal(t, 20.0, stats.HighestScore)
	assert.False(t, stats.LastUpdated.IsZero())
}
