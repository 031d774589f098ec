package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
	"github.com/custodia-labs/recipe-book/internal/logger"
)

// Error codes returned in ErrorResponse.Code.
const (
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// writeError writes an error response carrying the request id.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	id := requestID(r)
	if id == "" {
		id = uuid.NewString()
	}

	respondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: id,
	})
}

// writeDomainError maps a catalogue error to a status code.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		logger.Error("%s %s: %v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error")
	}
}

// respondJSON encodes data before writing headers so that an encoding
// failure can still produce a 500.
func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		logger.Error("json encoding failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("response write failed: %v", err)
	}
}
