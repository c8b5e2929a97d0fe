package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/glow-scan/internal/ai"
)

func TestConcernsHandler_Explain_Success(t *testing.T) {
	provider := &fakeProvider{explanation: &ai.ConcernExplanation{
		ConcernName:          "Acne",
		WhatIsIt:             "Clogged pores causing inflamed spots.",
		WhyItOccurs:          "Excess sebum and bacteria.",
		ManagementTips:       []string{"Cleanse twice daily"},
		IngredientsToLookFor: []string{"Salicylic Acid"},
	}}
	handler := NewConcernsHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/concerns/explain", ExplainRequest{
		Concern: "Acne",
		Context: "Skin: Oily.",
	})
	recorder := httptest.NewRecorder()

	handler.Explain(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var explanation ai.ConcernExplanation
	parseJSONResponse(t, recorder, &explanation)

	if explanation.ConcernName != "Acne" {
		t.Errorf("expected concern_name Acne, got %s", explanation.ConcernName)
	}
	if len(explanation.ManagementTips) != 1 {
		t.Errorf("expected 1 management tip, got %d", len(explanation.ManagementTips))
	}
}

func TestConcernsHandler_Explain_MissingConcern(t *testing.T) {
	handler := NewConcernsHandler(&fakeProvider{}, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/concerns/explain", ExplainRequest{Context: "something"})
	recorder := httptest.NewRecorder()

	handler.Explain(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "concern is required")
}

func TestConcernsHandler_Explain_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: ai.ErrRequestFailed}
	handler := NewConcernsHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/concerns/explain", ExplainRequest{Concern: "Redness"})
	recorder := httptest.NewRecorder()

	handler.Explain(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadGateway)
}
