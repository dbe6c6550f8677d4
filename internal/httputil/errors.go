package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/oklog/ulid/v2"

	"github.com/redmonkez12/plan-a-meal/internal/logging"
)

// Machine-readable error titles
const (
	TitleBadRequest      = "bad_request"
	TitleUnauthorized    = "unauthorized"
	TitleForbidden       = "forbidden"
	TitleNotFound        = "not_found"
	TitleAlreadyExists   = "already_exists"
	TitleValidation      = "validation_error"
	TitleTooManyRequests = "too_many_requests"
	TitleInternal        = "internal_error"
)

const internalErrorDetail = "internal server error"

// Error is a single entry of the error envelope. It also satisfies the error
// interface so services can return it directly.
type Error struct {
	ID      string         `json:"id"`
	Status  int            `json:"status"`
	Title   string         `json:"title"`
	Detail  string         `json:"detail"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Title, e.Status, e.Detail)
}

// WithContext attaches an offending field and its value.
func (e *Error) WithContext(field string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[field] = value
	return e
}

func newError(status int, title, detail string) *Error {
	return &Error{Status: status, Title: title, Detail: detail}
}

func BadRequest(detail string) *Error {
	return newError(http.StatusBadRequest, TitleBadRequest, detail)
}

func Unauthorized(detail string) *Error {
	return newError(http.StatusUnauthorized, TitleUnauthorized, detail)
}

func Forbidden(detail string) *Error {
	return newError(http.StatusForbidden, TitleForbidden, detail)
}

func NotFound(detail string) *Error {
	return newError(http.StatusNotFound, TitleNotFound, detail)
}

func AlreadyExists(detail string) *Error {
	return newError(http.StatusConflict, TitleAlreadyExists, detail)
}

func Validation(detail string) *Error {
	return newError(http.StatusUnprocessableEntity, TitleValidation, detail)
}

func TooManyRequests(detail string) *Error {
	return newError(http.StatusTooManyRequests, TitleTooManyRequests, detail)
}

func Internal(detail string) *Error {
	return newError(http.StatusInternalServerError, TitleInternal, detail)
}

type contextKey string

const exposeErrorsKey contextKey = "expose_internal_errors"

// ExposeInternalErrors controls whether 500 responses carry the underlying
// error message (development) or a generic detail (production).
func ExposeInternalErrors(expose bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), exposeErrorsKey, expose)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func exposeInternal(ctx context.Context) bool {
	expose, _ := ctx.Value(exposeErrorsKey).(bool)
	return expose
}

// RespondError writes err as an error envelope. Errors that are not an
// *Error are treated as unhandled faults: logged, reported to Sentry when a
// hub is bound to the request, and answered with 500.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		logging.GetLoggerFromContext(r.Context()).Error("unhandled error", "error", err.Error())
		if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
			hub.CaptureException(err)
		}

		detail := internalErrorDetail
		if exposeInternal(r.Context()) {
			detail = err.Error()
		}
		apiErr = Internal(detail)
	}

	out := *apiErr
	out.ID = ulid.Make().String()

	w.Header().Set("X-Error", out.Title)
	RespondJSON(w, r, ErrorEnvelope{Result: ResultError, Errors: []Error{out}}, out.Status)
}
