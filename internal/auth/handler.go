package auth

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
)

// RateLimiter counts attempts per key and reports whether another is allowed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service     *Service
	rateLimiter RateLimiter
}

func NewHandler(service *Service, rateLimiter RateLimiter) *Handler {
	return &Handler{service: service, rateLimiter: rateLimiter}
}

// LoginResponse carries the token both as envelope data and as OAuth2 style
// access_token/token_type fields.
type LoginResponse struct {
	Result      string `json:"result"`
	Response    string `json:"response"`
	Data        string `json:"data"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate with username and password (query string or form body) and receive a bearer token valid for 30 minutes.
// @Tags         Auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  query  string  true  "Username"
// @Param        password  query  string  true  "Password"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} httputil.ErrorEnvelope "Incorrect username or password"
// @Failure      429 {object} httputil.ErrorEnvelope "Too many login attempts"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	allowed, err := h.rateLimiter.Allow(r.Context(), "login:"+ip)
	if err != nil {
		logger.Error("failed to check login rate limit", "error", err.Error())
	} else if !allowed {
		logger.Warn("login rate limit exceeded", "ip", ip)
		httputil.RespondError(w, r, httputil.TooManyRequests("too many login attempts, please try again later"))
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn("login failed: invalid credentials", "username", username)
			w.Header().Set("WWW-Authenticate", "Bearer")
			httputil.RespondError(w, r, httputil.Unauthorized("Incorrect username or password"))
			return
		}
		httputil.RespondError(w, r, err)
		return
	}

	logger.Info("user logged in", "username", username)

	httputil.RespondJSON(w, r, LoginResponse{
		Result:      httputil.ResultOK,
		Response:    "token",
		Data:        token.Token,
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	}, http.StatusOK)
}

// getClientIP returns the host part of RemoteAddr; chi's RealIP middleware
// has already applied X-Forwarded-For / X-Real-IP.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
