package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/plan-a-meal/internal/auth"
	"github.com/redmonkez12/plan-a-meal/internal/config"
	"github.com/redmonkez12/plan-a-meal/internal/food"
	"github.com/redmonkez12/plan-a-meal/internal/httputil"
	"github.com/redmonkez12/plan-a-meal/internal/logging"
	"github.com/redmonkez12/plan-a-meal/internal/user"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// newTestRouter wires handlers without backing services; only routes that
// never reach a service are exercised here.
func newTestRouter(db Pinger) http.Handler {
	return newLoggedTestRouter(db, logging.Discard())
}

func newLoggedTestRouter(db Pinger, logger *logging.Logger) *chi.Mux {
	cfg := &config.Config{
		Server: config.ServerConfig{Env: "prod", RequestTimeout: time.Second},
	}
	handlers := Handlers{
		Auth: auth.NewHandler(nil, nil),
		Food: food.NewHandler(nil),
		User: user.NewHandler(nil),
	}
	if db == nil {
		db = pingerFunc(func(context.Context) error { return nil })
	}
	return NewRouter(cfg, handlers, auth.NewMiddleware(nil), db, logger)
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_Ping(t *testing.T) {
	router := newTestRouter(nil)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := serve(router, method, "/api/ping")
		assert.Equal(t, http.StatusOK, rec.Code, method)
		assert.JSONEq(t, `"pong"`, rec.Body.String(), method)
	}
}

func TestRouter_CatchAll(t *testing.T) {
	router := newTestRouter(nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/api/recipes"},
		{http.MethodPatch, "/api/ping"},
		{http.MethodPatch, "/api/food/update/x"},
	} {
		rec := serve(router, tc.method, tc.path)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.path)
		assert.Equal(t, httputil.TitleNotFound, rec.Header().Get("X-Error"))

		var body httputil.ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Nope, this isn't the API you're looking for, maybe try checking the docs? at http://example.com/docs", body.Errors[0].Detail)
	}
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestRouter(nil), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })
	rec = serve(newTestRouter(down), http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_DeleteRequiresBearer(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{
		"/api/food/delete/6f1c7d1e-4b55-4a43-9d0b-2f1b2a2b9c11",
		"/api/user/delete/6f1c7d1e-4b55-4a43-9d0b-2f1b2a2b9c11",
		"/api/user/delete?uuid=6f1c7d1e-4b55-4a43-9d0b-2f1b2a2b9c11",
	} {
		rec := serve(router, http.MethodDelete, path)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouter_Docs(t *testing.T) {
	rec := serve(newTestRouter(nil), http.MethodGet, "/docs")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/docs/index.html", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "'unsafe-inline'")
}

func TestRouter_SecurityHeaders(t *testing.T) {
	rec := serve(newTestRouter(nil), http.MethodGet, "/api/ping")

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := serve(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body httputil.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, httputil.TitleInternal, body.Errors[0].Title)
}

func TestRouter_PanicLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	router := newLoggedTestRouter(nil, &logging.Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))})
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := serve(router, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var panicLine map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["msg"] == "panic recovered" {
			panicLine = entry
		}
	}
	require.NotNil(t, panicLine)
	assert.NotEmpty(t, panicLine["request_id"])
	assert.Equal(t, "/boom", panicLine["path"])
}
