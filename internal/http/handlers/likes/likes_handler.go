package likes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"devcred-backend/internal/http/api"
	"devcred-backend/internal/lib/sl"
	repo "devcred-backend/internal/repository"
	"devcred-backend/internal/service/likes"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=likesService --structname=MockLikesService --output=../mocks --outpkg=mocks
type likesService interface {
	Like(ctx context.Context, targetWallet, likerWallet string) error
	Counts(ctx context.Context) (map[string]int, error)
}

type LikesHandler struct {
	log     *slog.Logger
	service likesService
}

func NewLikesHandler(log *slog.Logger, s likesService) *LikesHandler {
	return &LikesHandler{
		log:     log,
		service: s,
	}
}

type LikeRequest struct {
	TargetWallet string `json:"targetWallet" validate:"required"`
	LikerWallet  string `json:"likerWallet" validate:"required"`
}

func (h *LikesHandler) Like(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.likes.Like"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input LikeRequest
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

	err := h.service.Like(ctx, input.TargetWallet, input.LikerWallet)
	if err != nil {
		switch {
		case errors.Is(err, likes.ErrSelfLike):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeSelfLike, "you cannot like yourself"))
		case errors.Is(err, repo.ErrLikeExists):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeAlreadyLiked, "already liked this wallet"))
		default:
			log.Error("error while saving like", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("like recorded",
		slog.String("target", input.TargetWallet),
		slog.String("liker", input.LikerWallet),
	)
	render.JSON(w, r, api.LikeResponse{Success: true})
}

func (h *LikesHandler) Counts(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.likes.Counts"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	counts, err := h.service.Counts(ctx)
	if err != nil {
		log.Error("error while fetching like counts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, counts)
}
