package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// productIDParam reads the {productId} URL parameter.
// It writes a 400 and reports false when the parameter is not an integer.
func productIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	raw := chi.URLParam(r, "productId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("invalid product ID format", "productId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", logger)
		return 0, false
	}
	return id, true
}
