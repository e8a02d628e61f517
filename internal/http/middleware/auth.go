package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"devcred-backend/internal/http/api"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const (
	tokenKey key = iota + 1
	loginKey
)

// NewSessionToken wraps a GitHub access token in a signed HS256 session JWT.
func NewSessionToken(secret, ghToken, login string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gh":    ghToken,
		"login": login,
		"exp":   time.Now().Add(ttl).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return s, nil
}

// Auth validates the session cookie and injects the wrapped GitHub token into
// the request context. Requests without a valid session get AUTH_ERROR.
func Auth(cookieName, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeAuth, "not authenticated"))
				return
			}

			ghToken, login, ok := parseSession(cookie.Value, secret)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeAuth, "invalid session"))
				return
			}

			ctx := context.WithValue(r.Context(), tokenKey, ghToken)
			ctx = context.WithValue(ctx, loginKey, login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity returns a context carrying the given GitHub token and login,
// the same shape Auth produces. Used by handler tests.
func WithIdentity(ctx context.Context, ghToken, login string) context.Context {
	ctx = context.WithValue(ctx, tokenKey, ghToken)
	return context.WithValue(ctx, loginKey, login)
}

// GitHubToken extracts the provider token placed by Auth.
func GitHubToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// Login extracts the authenticated GitHub login placed by Auth.
func Login(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey).(string)
	return login, ok && login != ""
}

func parseSession(tokenString, secret string) (ghToken, login string, ok bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", false
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return "", "", false
	}

	ghToken, _ = claims["gh"].(string)
	login, _ = claims["login"].(string)
	if ghToken == "" {
		return "", "", false
	}
	return ghToken, login, true
}
