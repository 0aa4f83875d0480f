package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/wareki-field/api/internal/platform/requestctx"
)

const (
	statusOK    = "OK"
	statusError = "ERROR"
)

// Envelope is the canonical JSON wrapper returned by every endpoint. Result
// holds the payload object on success or the error message string on failure.
type Envelope struct {
	Status string `json:"status"`
	Result any    `json:"result"`
}

// Error carries a client-facing failure through the handler layer.
type Error struct {
	Message   string
	Status    int
	RequestID string
}

// NewError constructs an Error with the provided message and HTTP status.
func NewError(message string, status int) Error {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return Error{
		Message: sanitize(message, 512),
		Status:  status,
	}
}

// WithRequestID sets the request identifier used for logging correlation.
func (e Error) WithRequestID(id string) Error {
	e.RequestID = sanitize(id, 80)
	return e
}

// WriteResult writes a success envelope with the supplied payload.
func WriteResult(ctx context.Context, w http.ResponseWriter, result any) {
	writeEnvelope(ctx, w, http.StatusOK, Envelope{Status: statusOK, Result: result})
}

// WriteError writes an error envelope. The message becomes the envelope
// result verbatim so callers see the same text the engine produced.
func WriteError(ctx context.Context, w http.ResponseWriter, err Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	writeEnvelope(ctx, w, status, Envelope{Status: statusError, Result: err.Message})
}

func writeEnvelope(ctx context.Context, w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(env); err != nil {
		requestctx.Logger(ctx).Warn("response encode failed",
			zap.String("request_id", middleware.GetReqID(ctx)),
			zap.Error(err),
		)
	}
}

func sanitize(value string, limit int) string {
	if limit <= 0 {
		limit = 256
	}
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.TrimSpace(value)
	if len(value) > limit {
		value = value[:limit]
	}
	return value
}
