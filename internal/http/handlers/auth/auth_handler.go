package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"devcred-backend/internal/github"
	"devcred-backend/internal/http/api"
	authmw "devcred-backend/internal/http/middleware"
	"devcred-backend/internal/lib/config"
	"devcred-backend/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const stateCookieName = "devcred_oauth_state"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=oauthClient --structname=MockOAuthClient --output=../mocks --outpkg=mocks
type oauthClient interface {
	AuthorizeURL(redirectURI string, scopes []string, state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchViewer(ctx context.Context, token string) (*github.Viewer, error)
}

type AuthHandler struct {
	log   *slog.Logger
	oauth oauthClient
	cfg   *config.Config
}

func NewAuthHandler(log *slog.Logger, oauth oauthClient, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		log:   log,
		oauth: oauth,
		cfg:   cfg,
	}
}

// Login sends the browser to GitHub's consent page. A random state value
// is pinned in a short-lived cookie and checked on the way back.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	state, err := randomState()
	if err != nil {
		log.Error("failed to generate state", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	redirectURI := h.cfg.BackendURL + "/auth/github/callback"
	scopes := strings.Fields(h.cfg.GitHub.Scopes)

	http.Redirect(w, r, h.oauth.AuthorizeURL(redirectURI, scopes, state), http.StatusFound)
}

// Callback completes the flow: it verifies state, swaps the code for a
// GitHub access token, wraps the token in a signed session cookie and
// bounces the browser back to the frontend.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Callback"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	state := r.URL.Query().Get("state")
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || state == "" || stateCookie.Value != state {
		log.Warn("oauth state mismatch")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeAuth, "invalid oauth state"))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "code is required"))
		return
	}

	ghToken, err := h.oauth.ExchangeCode(ctx, code)
	if err != nil {
		h.renderOAuthError(w, r, log, err)
		return
	}

	viewer, err := h.oauth.FetchViewer(ctx, ghToken)
	if err != nil {
		h.renderOAuthError(w, r, log, err)
		return
	}

	session, err := authmw.NewSessionToken(h.cfg.Session.Secret, ghToken, viewer.Login, h.cfg.Cookie.MaxAge)
	if err != nil {
		log.Error("failed to mint session token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	// Drop the state cookie, it is single-use.
	http.SetCookie(w, &http.Cookie{
		Name:   stateCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    session,
		Path:     "/",
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   int(h.cfg.Cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("user authenticated", slog.String("login", viewer.Login))

	http.Redirect(w, r, h.cfg.FrontendURL+"?login="+viewer.Login, http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	render.JSON(w, r, map[string]bool{"success": true})
}

func (h *AuthHandler) renderOAuthError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, github.ErrAuth):
		log.Warn("github rejected oauth exchange", sl.Err(err))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeAuth, "github authentication failed"))
	case errors.Is(err, github.ErrUpstream):
		log.Error("github oauth upstream failure", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, api.Error(api.ErrCodeUpstream, "github is unavailable"))
	default:
		log.Error("oauth flow failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
