package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/ai"
)

// errInvalidRequestBody is a shared error message for invalid JSON request bodies.
const errInvalidRequestBody = "invalid request body"

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// aiErrorStatus maps a boundary failure category to an HTTP status.
func aiErrorStatus(err error) int {
	switch {
	case errors.Is(err, ai.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, ai.ErrContentRejected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// respondAIError converts a boundary failure into its user-facing
// message in the active output language.
func respondAIError(w http.ResponseWriter, err error, lang ai.Language) {
	respondError(w, aiErrorStatus(err), ai.UserMessage(err, lang))
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
