package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FruitReels_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode before writing headers so an encoding failure can still become a 500
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgRollNotFoundError   = "Roll not found. It may have expired from history."
	ErrMsgSessionClosedError  = "The game is shutting down. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrRollNotFound):
		return http.StatusNotFound, ErrMsgRollNotFoundError
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusServiceUnavailable, ErrMsgSessionClosedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError maps err and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
