package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/history"
	"github.com/kozaktomas/glow-scan/internal/progress"
	"github.com/kozaktomas/glow-scan/internal/store"
)

// HistoryHandler exposes the stored scan history.
type HistoryHandler struct {
	history *history.Service
}

func NewHistoryHandler(hist *history.Service) *HistoryHandler {
	return &HistoryHandler{history: hist}
}

// ScanResponse is one history entry with its derived score.
type ScanResponse struct {
	ID        string            `json:"id"`
	Timestamp int64             `json:"timestamp"`
	Image     string            `json:"image"`
	Result    ai.AnalysisResult `json:"result"`
	Score     int               `json:"score"`
}

func scanToResponse(scan store.StoredScan) ScanResponse {
	return ScanResponse{
		ID:        scan.ID,
		Timestamp: scan.Timestamp,
		Image:     scan.Image,
		Result:    scan.Result,
		Score:     progress.Score(&scan.Result),
	}
}

// List returns all scans, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	scans, err := h.history.History(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	response := make([]ScanResponse, len(scans))
	for i, scan := range scans {
		response[i] = scanToResponse(scan)
	}

	respondJSON(w, http.StatusOK, response)
}

// Delete removes one scan by id. Unknown ids still return 204; deletion
// is idempotent.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.history.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete scan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
