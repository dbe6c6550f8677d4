package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

// Middleware handles authentication for protected routes
type Middleware struct {
	service *Service
}

func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireUser validates the bearer token and stores the resolved user in the
// request context.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httputil.RespondError(w, r, httputil.Unauthorized("Not authenticated"))
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httputil.RespondError(w, r, httputil.Unauthorized("Not authenticated"))
			return
		}

		u, err := m.service.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken), errors.Is(err, ErrMissingSubject):
				logging.GetLoggerFromContext(r.Context()).Warn("bearer token rejected", "reason", err.Error())
				httputil.RespondError(w, r, httputil.BadRequest("Invalid token"))
			case errors.Is(err, ErrUserNotFound):
				httputil.RespondError(w, r, httputil.NotFound("User not found"))
			default:
				httputil.RespondError(w, r, err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(user.NewContext(r.Context(), u)))
	})
}
