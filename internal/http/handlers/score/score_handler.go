package score

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"devcred-backend/internal/eth"
	"devcred-backend/internal/github"
	"devcred-backend/internal/http/api"
	authmw "devcred-backend/internal/http/middleware"
	"devcred-backend/internal/lib/sl"
	"devcred-backend/internal/onchain"
	"devcred-backend/internal/scoring"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=scoreService --structname=MockScoreService --output=../mocks --outpkg=mocks
type scoreService interface {
	Compose(ctx context.Context, token, username, address string, useExternal bool) (*api.SignalsResponse, *api.ModelScore, error)
}

type ScoreHandler struct {
	log     *slog.Logger
	service scoreService
}

func NewScoreHandler(log *slog.Logger, s scoreService) *ScoreHandler {
	return &ScoreHandler{
		log:     log,
		service: s,
	}
}

type ScoreRequest struct {
	Username         string `json:"username" validate:"required"`
	Address          string `json:"address" validate:"required"`
	UseExternalModel bool   `json:"useExternalModel"`
}

func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.score.Score"
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

	var input ScoreRequest
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

	signals, model, err := h.service.Compose(ctx, token, input.Username, input.Address, input.UseExternalModel)
	if err != nil {
		h.renderError(w, r, log, err)
		return
	}

	if model != nil {
		render.JSON(w, r, api.ModelResponse{Model: *model})
		return
	}

	render.JSON(w, r, signals)
}

func (h *ScoreHandler) renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, eth.ErrInvalidAddress):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeInvalidAddress, "invalid ethereum address"))
	case errors.Is(err, github.ErrAuth):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeAuth, "github token rejected"))
	case errors.Is(err, github.ErrUpstream), errors.Is(err, onchain.ErrUpstream):
		log.Error("upstream signal fetch failed", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, api.Error(api.ErrCodeUpstream, "failed to fetch signals"))
	case errors.Is(err, scoring.ErrUnavailable):
		log.Error("scoring model unavailable", sl.Err(err))
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, api.Error(api.ErrCodeScoring, "scoring model unavailable"))
	default:
		log.Error("error while composing score", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
