package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// errorResponse is the generic JSON error envelope for non-relay endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a generic error envelope.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	writeJSON(w, status, errorResponse{Error: message}, logger)
}
