package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rerun24/goal-tracker/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// isValidationError reports whether err came from boundary validation and
// should surface as a 400 rather than a 500.
func isValidationError(err error) bool {
	var ve *validation.Error
	return errors.As(err, &ve)
}
