package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"devcred-backend/internal/http/api"
	"devcred-backend/internal/lib/sl"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/service/leaderboard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const defaultTopLimit = 10

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=leaderboardService --structname=MockLeaderboardService --output=../mocks --outpkg=mocks
type leaderboardService interface {
	Upsert(ctx context.Context, input leaderboard.UpsertInput) (*api.LeaderboardEntrySchema, error)
	Top(ctx context.Context, limit int) ([]api.LeaderboardEntrySchema, error)
	Rank(ctx context.Context, username string) (*api.RankResponse, error)
	Stats(ctx context.Context) (*api.LeaderboardStatsResponse, error)
}

type LeaderboardHandler struct {
	log     *slog.Logger
	service leaderboardService
}

func NewLeaderboardHandler(log *slog.Logger, s leaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		log:     log,
		service: s,
	}
}

type UpsertRequest struct {
	Username      string   `json:"username" validate:"required"`
	Score         *float64 `json:"score" validate:"required"`
	WalletAddress *string  `json:"walletAddress"`
	Tier          *string  `json:"tier"`
	Avatar        *string  `json:"avatar"`
	GithubID      *string  `json:"githubId"`
}

func (h *LeaderboardHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leaderboard.Upsert"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input UpsertRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Upsert(ctx, leaderboard.UpsertInput{
		Username:      input.Username,
		Score:         *input.Score,
		WalletAddress: input.WalletAddress,
		Tier:          input.Tier,
		Avatar:        input.Avatar,
		GithubID:      input.GithubID,
	})
	if err != nil {
		log.Error("error while upserting entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("leaderboard entry upserted", slog.String("username", input.Username))
	render.JSON(w, r, api.UpsertResponse{
		Success: true,
		Message: "Leaderboard updated successfully",
		Data:    *resp,
	})
}

func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leaderboard.Top"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.service.Top(ctx, limit)
	if err != nil {
		log.Error("error while fetching leaderboard", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, entries)
}

func (h *LeaderboardHandler) Rank(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leaderboard.Rank"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	username := chi.URLParam(r, "username")
	if username == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "username is required"))
		return
	}

	resp, err := h.service.Rank(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("user not found in leaderboard", slog.String("username", username))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, "user not found in leaderboard"))
			return
		}
		log.Error("error while computing rank", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *LeaderboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leaderboard.Stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.Stats(ctx)
	if err != nil {
		log.Error("error while fetching stats", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
