package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/history"
	"github.com/kozaktomas/glow-scan/internal/progress"
)

// AnalyzeHandler runs the full face analysis and auto-saves the result.
type AnalyzeHandler struct {
	provider ai.Provider
	history  *history.Service
	settings *config.SettingsStore
}

func NewAnalyzeHandler(provider ai.Provider, hist *history.Service, settings *config.SettingsStore) *AnalyzeHandler {
	return &AnalyzeHandler{
		provider: provider,
		history:  hist,
		settings: settings,
	}
}

// AnalyzeRequest carries the photo as base64 or a full data URI.
type AnalyzeRequest struct {
	Image string `json:"image"`
}

type AnalyzeResponse struct {
	Result *ai.AnalysisResult `json:"result"`
	Score  int                `json:"score"`
	ScanID string             `json:"scan_id,omitempty"`
	Saved  bool               `json:"saved"`
}

// Analyze runs the analysis, then records it in history. A failed save
// is logged and swallowed; it must never hide the result from the user.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	imageData, err := ai.DecodeImagePayload(req.Image)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid image payload")
		return
	}

	settings := h.settings.Get()
	result, err := h.provider.AnalyzeFace(r.Context(), imageData, settings.Language, settings.Model)
	if err != nil {
		respondAIError(w, err, settings.Language)
		return
	}

	resp := AnalyzeResponse{
		Result: result,
		Score:  progress.Score(result),
	}

	scan, err := h.history.Save(r.Context(), ai.EncodeDataURI(imageData), *result)
	if err != nil {
		log.Printf("warning: failed to save scan: %v", err)
	} else {
		resp.ScanID = scan.ID
		resp.Saved = true
	}

	respondJSON(w, http.StatusOK, resp)
}
