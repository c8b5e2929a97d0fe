package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/glow-scan/internal/ai"
)

func testVersusReport() *ai.VersusReport {
	return &ai.VersusReport{
		BattleSummary: "A close match.",
		Categories: []ai.VersusCategory{
			{CategoryName: "Skin Clarity", Winner: ai.WinnerPlayer1, Reason: "Fewer visible concerns."},
			{CategoryName: "Hair Health", Winner: ai.WinnerPlayer2, Reason: "Better moisture balance."},
		},
		OverallGlowWinner: ai.WinnerPlayer1,
		FinalVerdict:      "Both glowing in their own way.",
	}
}

func TestVersusHandler_Success(t *testing.T) {
	provider := &fakeProvider{versus: testVersusReport()}
	handler := NewVersusHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/versus", VersusRequest{
		Player1: testAnalysis(),
		Player2: testAnalysis(),
	})
	recorder := httptest.NewRecorder()

	handler.Compare(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var report ai.VersusReport
	parseJSONResponse(t, recorder, &report)

	if report.OverallGlowWinner != ai.WinnerPlayer1 {
		t.Errorf("expected overall winner %q, got %q", ai.WinnerPlayer1, report.OverallGlowWinner)
	}
	if len(report.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(report.Categories))
	}
}

func TestVersusHandler_MissingPlayer(t *testing.T) {
	handler := NewVersusHandler(&fakeProvider{}, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/versus", VersusRequest{Player1: testAnalysis()})
	recorder := httptest.NewRecorder()

	handler.Compare(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "both player analyses are required")
}

func TestVersusHandler_InvalidBody(t *testing.T) {
	handler := NewVersusHandler(&fakeProvider{}, newTestSettings(t))

	req := httptest.NewRequest("POST", "/api/v1/versus", nil)
	recorder := httptest.NewRecorder()

	handler.Compare(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
}

func TestVersusHandler_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: ai.ErrQuotaExceeded}
	handler := NewVersusHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/versus", VersusRequest{
		Player1: testAnalysis(),
		Player2: testAnalysis(),
	})
	recorder := httptest.NewRecorder()

	handler.Compare(recorder, req)

	assertStatusCode(t, recorder, http.StatusTooManyRequests)
}
