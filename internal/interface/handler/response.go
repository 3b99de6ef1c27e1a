package handler

import (
	"encoding/json"
	"net/http"

	"launch-control-service/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends body with the given status. The status line is already out
// when encoding fails, so a failure can only be logged.
func writeJSON(w http.ResponseWriter, log logger.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "status", status, "error", err)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, status int, message string) {
	writeJSON(w, log, status, errorResponse{Error: message})
}
