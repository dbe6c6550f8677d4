package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/redmonkez12/plan-a-meal/internal/logging"
)

const (
	ResultOK    = "ok"
	ResultError = "error"

	ResponseEntity = "entity"
	ResponseList   = "list"
)

// Envelope is the uniform success body: {result, response, data}.
type Envelope struct {
	Result   string `json:"result"`
	Response string `json:"response,omitempty"`
	Data     any    `json:"data"`
}

// ErrorEnvelope is the uniform failure body: {result:"error", errors:[...]}.
type ErrorEnvelope struct {
	Result string  `json:"result"`
	Errors []Error `json:"errors"`
}

// RespondJSON sends a JSON response with the given status code.
// Encoding errors go to the request logger.
func RespondJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.GetLoggerFromContext(r.Context()).Error("failed to encode JSON response", "error", err.Error())
	}
}

// RespondEntity wraps a single object in the success envelope.
func RespondEntity(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	RespondJSON(w, r, Envelope{Result: ResultOK, Response: ResponseEntity, Data: data}, statusCode)
}

// RespondList wraps a collection in the success envelope.
func RespondList[T any](w http.ResponseWriter, r *http.Request, data []T) {
	if data == nil {
		data = []T{}
	}
	RespondJSON(w, r, Envelope{Result: ResultOK, Response: ResponseList, Data: data}, http.StatusOK)
}

// RespondOK answers with {result:"ok", data} and no response kind.
func RespondOK(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, Envelope{Result: ResultOK, Data: data}, http.StatusOK)
}
