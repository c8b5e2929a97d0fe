package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/history"
	"github.com/kozaktomas/glow-scan/internal/store"
)

func testImagePayload() string {
	return base64.StdEncoding.EncodeToString([]byte("fake jpeg bytes"))
}

func TestAnalyzeHandler_Success(t *testing.T) {
	provider := &fakeProvider{analysis: testAnalysis()}
	hist := newTestHistory(t)
	handler := NewAnalyzeHandler(provider, hist, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/analyze", AnalyzeRequest{Image: testImagePayload()})
	recorder := httptest.NewRecorder()

	handler.Analyze(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp AnalyzeResponse
	parseJSONResponse(t, recorder, &resp)

	if resp.Result == nil {
		t.Fatal("expected analysis result in response")
	}
	if resp.Result.SkinAnalysis.SkinType != "Combination" {
		t.Errorf("expected skin type Combination, got %s", resp.Result.SkinAnalysis.SkinType)
	}
	// 2 concerns (-10) + one High zone (-8)
	if resp.Score != 82 {
		t.Errorf("expected score 82, got %d", resp.Score)
	}
	if !resp.Saved {
		t.Error("expected scan to be auto-saved")
	}
	if resp.ScanID == "" {
		t.Error("expected scan_id in response")
	}

	scans, err := hist.History(context.Background())
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if len(scans) != 1 {
		t.Fatalf("expected 1 stored scan, got %d", len(scans))
	}
	if scans[0].ID != resp.ScanID {
		t.Errorf("stored scan id %s does not match response %s", scans[0].ID, resp.ScanID)
	}
}

func TestAnalyzeHandler_DataURIPayload(t *testing.T) {
	provider := &fakeProvider{analysis: testAnalysis()}
	handler := NewAnalyzeHandler(provider, newTestHistory(t), newTestSettings(t))

	payload := "data:image/jpeg;base64," + testImagePayload()
	req := jsonRequest(t, "POST", "/api/v1/analyze", AnalyzeRequest{Image: payload})
	recorder := httptest.NewRecorder()

	handler.Analyze(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)
}

func TestAnalyzeHandler_InvalidBody(t *testing.T) {
	handler := NewAnalyzeHandler(&fakeProvider{}, newTestHistory(t), newTestSettings(t))

	req := httptest.NewRequest("POST", "/api/v1/analyze", nil)
	recorder := httptest.NewRecorder()

	handler.Analyze(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, errInvalidRequestBody)
}

func TestAnalyzeHandler_EmptyImage(t *testing.T) {
	handler := NewAnalyzeHandler(&fakeProvider{}, newTestHistory(t), newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/analyze", AnalyzeRequest{Image: ""})
	recorder := httptest.NewRecorder()

	handler.Analyze(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
}

func TestAnalyzeHandler_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"quota", ai.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"rejected", ai.ErrContentRejected, http.StatusUnprocessableEntity},
		{"generic", ai.ErrRequestFailed, http.StatusBadGateway},
		{"malformed", ai.ErrResponseMalformed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{err: tt.err}
			handler := NewAnalyzeHandler(provider, newTestHistory(t), newTestSettings(t))

			req := jsonRequest(t, "POST", "/api/v1/analyze", AnalyzeRequest{Image: testImagePayload()})
			recorder := httptest.NewRecorder()

			handler.Analyze(recorder, req)

			assertStatusCode(t, recorder, tt.status)
		})
	}
}

func TestAnalyzeHandler_SaveFailureStillSucceeds(t *testing.T) {
	provider := &fakeProvider{analysis: testAnalysis()}
	// a directory as DB path makes every store operation fail
	broken := store.New(filepath.Join(t.TempDir()))
	handler := NewAnalyzeHandler(provider, history.NewService(broken), newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/analyze", AnalyzeRequest{Image: testImagePayload()})
	recorder := httptest.NewRecorder()

	handler.Analyze(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var resp AnalyzeResponse
	parseJSONResponse(t, recorder, &resp)

	if resp.Saved {
		t.Error("expected saved=false when storage is unavailable")
	}
	if resp.Result == nil {
		t.Error("analysis result must survive a failed save")
	}
}
