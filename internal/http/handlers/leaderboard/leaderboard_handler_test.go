package leaderboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devcred-backend/internal/http/api"
	"devcred-backend/internal/http/handlers"
	"devcred-backend/internal/http/handlers/leaderboard"
	"devcred-backend/internal/http/handlers/mocks"
	repo "devcred-backend/internal/repository"
	svc "devcred-backend/internal/service/leaderboard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// Upsert
func TestLeaderboardHandler_Upsert_Success(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	reqBody := leaderboard.UpsertRequest{
		Username:      "octocat",
		Score:         floatPtr(88.5),
		WalletAddress: strPtr("0x52908400098527886E0F7030069857D2E4169EE7"),
		Tier:          strPtr("gold"),
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", bytes.NewReader(body))
	w := httptest.NewRecorder()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expected := &api.LeaderboardEntrySchema{
		Username:      "octocat",
		WalletAddress: reqBody.WalletAddress,
		Score:         88.5,
		Tier:          reqBody.Tier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	mockService.On("Upsert", mock.Anything, mock.MatchedBy(func(in svc.UpsertInput) bool {
		return in.Username == "octocat" && in.Score == 88.5 && in.Tier != nil && *in.Tier == "gold"
	})).Return(expected, nil)

	h.Upsert(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UpsertResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, *expected, resp.Data)
}

func TestLeaderboardHandler_Upsert_BadJSON(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Upsert(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestLeaderboardHandler_Upsert_MissingScore(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(map[string]any{"username": "octocat"})
	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Upsert(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	mockService.AssertNotCalled(t, "Upsert")
}

func TestLeaderboardHandler_Upsert_ZeroScoreIsValid(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(map[string]any{"username": "octocat", "score": 0})
	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Upsert", mock.Anything, mock.MatchedBy(func(in svc.UpsertInput) bool {
		return in.Score == 0
	})).Return(&api.LeaderboardEntrySchema{Username: "octocat"}, nil)

	h.Upsert(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaderboardHandler_Upsert_ServiceError(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(map[string]any{"username": "octocat", "score": 10})
	req := httptest.NewRequest(http.MethodPost, "/api/leaderboard", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Upsert", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	h.Upsert(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Top
func TestLeaderboardHandler_Top_DefaultLimit(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()

	entries := []api.LeaderboardEntrySchema{
		{Username: "alice", Score: 95},
		{Username: "bob", Score: 80},
	}
	mockService.On("Top", mock.Anything, 10).Return(entries, nil)

	h.Top(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.LeaderboardEntrySchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, entries, resp)
}

func TestLeaderboardHandler_Top_CustomLimit(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=3", nil)
	w := httptest.NewRecorder()

	mockService.On("Top", mock.Anything, 3).Return([]api.LeaderboardEntrySchema{}, nil)

	h.Top(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaderboardHandler_Top_BadLimit(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=zero", nil)
	w := httptest.NewRecorder()

	h.Top(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	mockService.AssertNotCalled(t, "Top")
}

// Rank
func TestLeaderboardHandler_Rank_Success(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/rank/octocat", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", "octocat")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	expected := &api.RankResponse{Username: "octocat", Score: 88.5, Rank: 2, TotalUsers: 10}
	mockService.On("Rank", mock.Anything, "octocat").Return(expected, nil)

	h.Rank(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.RankResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestLeaderboardHandler_Rank_NotFound(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/rank/ghost", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", "ghost")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	mockService.On("Rank", mock.Anything, "ghost").Return(nil, repo.ErrNotFound)

	h.Rank(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// Stats
func TestLeaderboardHandler_Stats_Success(t *testing.T) {
	mockService := mocks.NewMockLeaderboardService(t)
	h := leaderboard.NewLeaderboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/stats", nil)
	w := httptest.NewRecorder()

	expected := &api.LeaderboardStatsResponse{TotalUsers: 5, AverageScore: 74, HighestScore: 95.5}
	mockService.On("Stats", mock.Anything).Return(expected, nil)

	h.Stats(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.LeaderboardStatsResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, expected.TotalUsers, resp.TotalUsers)
	assert.Equal(t, expected.AverageScore, resp.AverageScore)
	assert.Equal(t, expected.HighestScore, resp.HighestScore)
}
