package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
)

// ConcernsHandler serves educational explanations of named concerns.
type ConcernsHandler struct {
	provider ai.Provider
	settings *config.SettingsStore
}

func NewConcernsHandler(provider ai.Provider, settings *config.SettingsStore) *ConcernsHandler {
	return &ConcernsHandler{
		provider: provider,
		settings: settings,
	}
}

type ExplainRequest struct {
	Concern string `json:"concern"`
	Context string `json:"context"`
}

func (h *ConcernsHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.Concern == "" {
		respondError(w, http.StatusBadRequest, "concern is required")
		return
	}

	settings := h.settings.Get()
	explanation, err := h.provider.ExplainConcern(r.Context(), req.Concern, req.Context, settings.Language, settings.Model)
	if err != nil {
		respondAIError(w, err, settings.Language)
		return
	}

	respondJSON(w, http.StatusOK, explanation)
}
