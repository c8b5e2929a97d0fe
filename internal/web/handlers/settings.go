package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/config"
)

// SettingsHandler reads and updates the persisted user settings.
type SettingsHandler struct {
	settings *config.SettingsStore
}

func NewSettingsHandler(settings *config.SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.settings.Get())
}

// Update merges the request body over the current settings, so a
// partial body changes only the fields it names. Unknown values fall
// back to defaults.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	settings := h.settings.Get()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	updated, err := h.settings.Update(settings)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to persist settings")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
