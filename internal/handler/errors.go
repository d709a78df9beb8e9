package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeErrorResponse(w, ErrorResponse{Error: message}, statusCode)
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, body ErrorResponse, statusCode int) {
	WriteJSON(w, body, statusCode)
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged and reported as a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeErrorResponse(w, ErrorResponse{Error: validationErr.Error(), Field: validationErr.Field}, http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteError(w, models.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, models.ErrConflict):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrForbidden):
		WriteError(w, "forbidden", http.StatusForbidden)
	default:
		slog.ErrorContext(r.Context(), "internal error",
			"method", r.Method, "path", r.URL.Path, "error", err)
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
