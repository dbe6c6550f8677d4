package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 5
	maxBodyBytes = 1 << 20
)

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads limit and offset from the query string.
func ParsePage(r *http.Request) (Page, error) {
	page := Page{Limit: DefaultLimit}

	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &page.Limit}, {"offset", &page.Offset}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Page{}, Validation(p.name + " must be a non-negative integer").WithContext(p.name, raw)
		}
		*p.dst = n
	}

	return page, nil
}

// QueryFloat parses an optional numeric query parameter.
func QueryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, Validation(name + " must be a number").WithContext(name, raw)
	}
	return &f, nil
}

// UUIDParam parses a chi URL parameter as a UUID.
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return ParseUUID(name, chi.URLParam(r, name))
}

// ParseUUID parses raw as a UUID, reporting field on failure.
func ParseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, BadRequest("invalid identifier").WithContext(field, raw)
	}
	return id, nil
}

// DecodeJSON decodes the request body into dst. Malformed JSON is a 400,
// a well-formed body of the wrong shape is a 422.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return Validation(typeErr.Field + " has the wrong type").WithContext(typeErr.Field, typeErr.Value)
		case errors.Is(err, io.EOF):
			return BadRequest("request body is empty")
		default:
			return BadRequest("invalid request body")
		}
	}
	return nil
}
