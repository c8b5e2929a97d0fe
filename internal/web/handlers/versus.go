package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
)

// VersusHandler generates the glow-battle comparison of two analyses.
type VersusHandler struct {
	provider ai.Provider
	settings *config.SettingsStore
}

func NewVersusHandler(provider ai.Provider, settings *config.SettingsStore) *VersusHandler {
	return &VersusHandler{
		provider: provider,
		settings: settings,
	}
}

type VersusRequest struct {
	Player1 *ai.AnalysisResult `json:"player1"`
	Player2 *ai.AnalysisResult `json:"player2"`
}

func (h *VersusHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req VersusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.Player1 == nil || req.Player2 == nil {
		respondError(w, http.StatusBadRequest, "both player analyses are required")
		return
	}

	settings := h.settings.Get()
	report, err := h.provider.VersusReport(r.Context(), req.Player1, req.Player2, settings.Language, settings.Model)
	if err != nil {
		respondAIError(w, err, settings.Language)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
