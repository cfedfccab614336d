package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	app_errors "trainpilot/backend/internal/errors"
)

// ErrorResponse defines the standard JSON structure for error messages.
// Clients only ever see the single error string; everything else stays in
// the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps business-layer sentinel errors to HTTP status
// codes and a client-safe message. The full error, including upstream
// status codes and bodies, is logged here and nowhere else.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = validationMessage(err)
	case errors.Is(err, app_errors.ErrAuth):
		statusCode = http.StatusUnauthorized
		message = "Unauthorized"
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "Access denied: Cannot access another user's plan"
	case errors.Is(err, app_errors.ErrConfig):
		statusCode = http.StatusInternalServerError
		message = "Server configuration error"
	case errors.Is(err, app_errors.ErrUpstream), errors.Is(err, app_errors.ErrUpstreamUnavailable):
		statusCode = http.StatusInternalServerError
		message = "Failed to communicate with planning service"
	case errors.Is(err, app_errors.ErrInternal):
		statusCode = http.StatusInternalServerError
		message = "Internal Server Error"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal Server Error"
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// validationMessage strips the sentinel prefix so the client sees the
// field-level detail ("Message is required") rather than the taxonomy.
func validationMessage(err error) string {
	msg := err.Error()
	if after, found := strings.CutPrefix(msg, app_errors.ErrValidation.Error()+": "); found {
		return after
	}
	return msg
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
