package earlyaccess

import (
	"context"
	"log/slog"
	"net/http"

	"devcred-backend/internal/http/api"
	"devcred-backend/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=earlyAccessService --structname=MockEarlyAccessService --output=../mocks --outpkg=mocks
type earlyAccessService interface {
	Register(ctx context.Context, email, walletAddress string) error
}

type EarlyAccessHandler struct {
	log     *slog.Logger
	service earlyAccessService
}

func NewEarlyAccessHandler(log *slog.Logger, s earlyAccessService) *EarlyAccessHandler {
	return &EarlyAccessHandler{
		log:     log,
		service: s,
	}
}

type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	WalletAddress string `json:"walletAddress"`
}

func (h *EarlyAccessHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.earlyaccess.Register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input RegisterRequest
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

	if err := h.service.Register(ctx, input.Email, input.WalletAddress); err != nil {
		log.Error("error while registering early access", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("early access registration", slog.String("email", input.Email))
	render.JSON(w, r, api.EarlyAccessResponse{
		Success: true,
		Message: "You're on the list",
	})
}
