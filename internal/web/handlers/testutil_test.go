package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/history"
	"github.com/kozaktomas/glow-scan/internal/store"
)

// fakeProvider returns canned responses so handler tests never touch a
// real model API.
type fakeProvider struct {
	analysis    *ai.AnalysisResult
	versus      *ai.VersusReport
	products    []ai.SpecificProduct
	explanation *ai.ConcernExplanation
	suitability *ai.ProductSuitability
	err         error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) AnalyzeFace(ctx context.Context, imageData []byte, lang ai.Language, model string) (*ai.AnalysisResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeProvider) VersusReport(ctx context.Context, p1, p2 *ai.AnalysisResult, lang ai.Language, model string) (*ai.VersusReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.versus, nil
}

func (f *fakeProvider) ProductSearch(ctx context.Context, productType, userContext, budget string, lang ai.Language, model string) ([]ai.SpecificProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProvider) BrandSearch(ctx context.Context, brand, userContext string, lang ai.Language, model string) ([]ai.SpecificProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeProvider) ExplainConcern(ctx context.Context, concern, userContext string, lang ai.Language, model string) (*ai.ConcernExplanation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.explanation, nil
}

func (f *fakeProvider) CheckProductSuitability(ctx context.Context, labelImage []byte, userProfile string, lang ai.Language, model string) (*ai.ProductSuitability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suitability, nil
}

func (f *fakeProvider) GetUsage() *ai.Usage { return &ai.Usage{} }
func (f *fakeProvider) ResetUsage()         {}

// testAnalysis builds a small but complete analysis result
func testAnalysis() *ai.AnalysisResult {
	return &ai.AnalysisResult{
		SkinAnalysis: ai.SkinAnalysis{
			SkinType: "Combination",
			SkinTone: "Medium",
			Concerns: []string{"Acne", "Redness"},
			Summary:  "Generally healthy with a few focus areas.",
		},
		HairAnalysis: ai.HairAnalysis{
			HairType:  "Wavy",
			Condition: "Dry ends",
		},
		FaceMap: []ai.FaceZone{
			{Zone: "T-Zone", Condition: "Oiliness", Severity: ai.SeverityHigh},
		},
	}
}

// newTestHistory creates a history service backed by a temp SQLite file
func newTestHistory(t *testing.T) *history.Service {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "scans.db"))
	t.Cleanup(func() { st.Close() })
	return history.NewService(st)
}

// newTestSettings creates a settings store backed by a temp JSON file
func newTestSettings(t *testing.T) *config.SettingsStore {
	t.Helper()
	settings, err := config.NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("failed to create settings store: %v", err)
	}
	return settings
}

// jsonRequest creates a request with a JSON-encoded body
func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
