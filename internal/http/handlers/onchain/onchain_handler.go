package onchain

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"devcred-backend/internal/eth"
	"devcred-backend/internal/http/api"
	"devcred-backend/internal/lib/sl"
	chain "devcred-backend/internal/onchain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=statsFetcher --structname=MockStatsFetcher --output=../mocks --outpkg=mocks
type statsFetcher interface {
	Fetch(ctx context.Context, address string) (*chain.Stats, error)
}

type OnchainHandler struct {
	log     *slog.Logger
	fetcher statsFetcher
}

func NewOnchainHandler(log *slog.Logger, f statsFetcher) *OnchainHandler {
	return &OnchainHandler{
		log:     log,
		fetcher: f,
	}
}

func (h *OnchainHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.onchain.Stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	address := chi.URLParam(r, "address")
	if address == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "address is required"))
		return
	}

	stats, err := h.fetcher.Fetch(ctx, address)
	if err != nil {
		switch {
		case errors.Is(err, eth.ErrInvalidAddress):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidAddress, "invalid ethereum address"))
		case errors.Is(err, chain.ErrUpstream):
			log.Error("chain fetch failed", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, api.Error(api.ErrCodeUpstream, "failed to fetch onchain stats"))
		default:
			log.Error("error while fetching onchain stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	render.JSON(w, r, stats)
}
