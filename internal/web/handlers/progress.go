package handlers

import (
	"errors"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/history"
	"github.com/kozaktomas/glow-scan/internal/progress"
)

// ProgressHandler serves the progress chart and trend summary.
type ProgressHandler struct {
	history  *history.Service
	settings *config.SettingsStore
}

func NewProgressHandler(hist *history.Service, settings *config.SettingsStore) *ProgressHandler {
	return &ProgressHandler{history: hist, settings: settings}
}

// ProgressResponse carries the chart points and the first-to-last trend.
// With fewer than two scans there is nothing to compare, so the trend is
// omitted and insufficient_data is set instead.
type ProgressResponse struct {
	InsufficientData bool                  `json:"insufficient_data"`
	Points           []progress.ChartPoint `json:"points"`
	Trend            *progress.Trend       `json:"trend,omitempty"`
}

func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	scans, err := h.history.Timeline(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	settings := h.settings.Get()

	response := ProgressResponse{
		Points: progress.ChartPoints(scans, settings.Language),
	}

	trend, err := progress.ComputeTrend(scans)
	switch {
	case errors.Is(err, progress.ErrInsufficientData):
		response.InsufficientData = true
	case err != nil:
		respondError(w, http.StatusInternalServerError, "failed to compute trend")
		return
	default:
		response.Trend = trend
	}

	respondJSON(w, http.StatusOK, response)
}
