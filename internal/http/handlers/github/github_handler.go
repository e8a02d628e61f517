package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	ghclient "devcred-backend/internal/github"
	"devcred-backend/internal/http/api"
	authmw "devcred-backend/internal/http/middleware"
	"devcred-backend/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=contributorFetcher --structname=MockContributorFetcher --output=../mocks --outpkg=mocks
type contributorFetcher interface {
	FetchContributorStats(ctx context.Context, token, username string) (*ghclient.ContributorStats, error)
}

type GithubHandler struct {
	log     *slog.Logger
	fetcher contributorFetcher
}

func NewGithubHandler(log *slog.Logger, f contributorFetcher) *GithubHandler {
	return &GithubHandler{
		log:     log,
		fetcher: f,
	}
}

func (h *GithubHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.github.Stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	token, ok := authmw.GitHubToken(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeAuth, "authentication required"))
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		if login, ok := authmw.Login(ctx); ok {
			username = login
		}
	}
	if username == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "username is required"))
		return
	}

	stats, err := h.fetcher.FetchContributorStats(ctx, token, username)
	if err != nil {
		switch {
		case errors.Is(err, ghclient.ErrAuth):
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeAuth, "github token rejected"))
		case errors.Is(err, ghclient.ErrUpstream):
			log.Error("github fetch failed", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, api.Error(api.ErrCodeUpstream, "failed to fetch github stats"))
		default:
			log.Error("error while fetching github stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	render.JSON(w, r, stats)
}
