package http

import (
	"context"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/redmonkez12/plan-a-meal/internal/auth"
	"github.com/redmonkez12/plan-a-meal/internal/config"
	"github.com/redmonkez12/plan-a-meal/internal/food"
	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers groups the entity handlers mounted under /api.
type Handlers struct {
	Auth *auth.Handler
	Food *food.Handler
	User *user.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.Middleware, db Pinger, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length", "X-Error"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	// After RequestLogger so panic logs carry the request fields
	r.Use(Recoverer)
	if cfg.Sentry.DSN != "" {
		// Repanic so Recoverer still answers with the error envelope
		r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(httputil.ExposeInternalErrors(cfg.Server.IsDevelopment()))

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleNotFound)

	r.Get("/health", handleHealth(db))

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", handlePing)
		r.Post("/ping", handlePing)

		r.Post("/auth/login", h.Auth.Login)

		r.Route("/food", func(r chi.Router) {
			r.Get("/get", h.Food.List)
			r.Get("/get/{id}", h.Food.Get)
			r.Post("/add", h.Food.Create)
			r.Put("/update/{id}", h.Food.Update)

			r.With(authMiddleware.RequireUser).Delete("/delete/{id}", h.Food.Delete)
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/get", h.User.List)
			r.Get("/get/{id}", h.User.Get)
			r.Post("/add", h.User.Create)
			r.Put("/update/{id}", h.User.Update)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequireUser)
				r.Delete("/delete", h.User.Delete)
				r.Delete("/delete/{id}", h.User.Delete)
			})
		})
	})

	return r
}

// handleHealth is a liveness probe that also checks the database
// @Summary      Health check
// @Description  Check if the API is running and the database is reachable
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func handleHealth(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logging.GetLoggerFromContext(r.Context()).Error("health check failed", "error", err.Error())
			httputil.RespondJSON(w, r, map[string]string{"status": "database unavailable"}, http.StatusServiceUnavailable)
			return
		}
		httputil.RespondJSON(w, r, map[string]string{"status": "api is running"}, http.StatusOK)
	}
}

// handlePing answers with the JSON string "pong"
// @Summary      Ping
// @Tags         health
// @Produce      json
// @Success      200 {string} string "pong"
// @Router       /api/ping [get]
// @Router       /api/ping [post]
func handlePing(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, r, "pong", http.StatusOK)
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	httputil.RespondError(w, r, httputil.NotFound(
		"Nope, this isn't the API you're looking for, maybe try checking the docs? at "+scheme+"://"+r.Host+"/docs",
	))
}
