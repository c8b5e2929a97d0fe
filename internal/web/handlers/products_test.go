package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/glow-scan/internal/ai"
)

func testProducts() []ai.SpecificProduct {
	return []ai.SpecificProduct{
		{Tier: ai.TierGold, Brand: "CeraVe", ProductName: "Foaming Cleanser", PriceEstimate: "$15"},
		{Tier: ai.TierSilver, Brand: "Cetaphil", ProductName: "Gentle Cleanser", PriceEstimate: "$12"},
		{Tier: ai.TierBronze, Brand: "Simple", ProductName: "Refreshing Wash", PriceEstimate: "$8"},
	}
}

func TestProductsHandler_Search_Success(t *testing.T) {
	provider := &fakeProvider{products: testProducts()}
	handler := NewProductsHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/search", ProductSearchRequest{
		ProductType: "cleanser",
		Context:     "Skin: Combination. Concerns: Acne.",
		Budget:      "under $20",
	})
	recorder := httptest.NewRecorder()

	handler.Search(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var products []ai.SpecificProduct
	parseJSONResponse(t, recorder, &products)

	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].Tier != ai.TierGold {
		t.Errorf("expected first product tier Gold, got %s", products[0].Tier)
	}
}

func TestProductsHandler_Search_MissingType(t *testing.T) {
	handler := NewProductsHandler(&fakeProvider{}, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/search", ProductSearchRequest{})
	recorder := httptest.NewRecorder()

	handler.Search(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "product_type is required")
}

func TestProductsHandler_ByBrand_Success(t *testing.T) {
	provider := &fakeProvider{products: testProducts()}
	handler := NewProductsHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/brand", BrandSearchRequest{
		Brand:   "CeraVe",
		Context: "Skin: Oily.",
	})
	recorder := httptest.NewRecorder()

	handler.ByBrand(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var products []ai.SpecificProduct
	parseJSONResponse(t, recorder, &products)

	if len(products) != 3 {
		t.Errorf("expected 3 products, got %d", len(products))
	}
}

func TestProductsHandler_ByBrand_MissingBrand(t *testing.T) {
	handler := NewProductsHandler(&fakeProvider{}, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/brand", BrandSearchRequest{})
	recorder := httptest.NewRecorder()

	handler.ByBrand(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
	assertJSONError(t, recorder, "brand is required")
}

func TestProductsHandler_Suitability_Success(t *testing.T) {
	provider := &fakeProvider{suitability: &ai.ProductSuitability{
		ProductName:      "Foaming Cleanser",
		Brand:            "CeraVe",
		SuitabilityScore: 85,
		Verdict:          ai.VerdictGood,
	}}
	handler := NewProductsHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/suitability", SuitabilityRequest{
		Image:   testImagePayload(),
		Profile: "Skin: Combination.",
	})
	recorder := httptest.NewRecorder()

	handler.Suitability(recorder, req)

	assertStatusCode(t, recorder, http.StatusOK)

	var suitability ai.ProductSuitability
	parseJSONResponse(t, recorder, &suitability)

	if suitability.SuitabilityScore != 85 {
		t.Errorf("expected suitability_score 85, got %d", suitability.SuitabilityScore)
	}
	if suitability.Verdict != ai.VerdictGood {
		t.Errorf("expected verdict %q, got %q", ai.VerdictGood, suitability.Verdict)
	}
}

func TestProductsHandler_Suitability_InvalidImage(t *testing.T) {
	handler := NewProductsHandler(&fakeProvider{}, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/suitability", SuitabilityRequest{
		Image: "not base64 at all!!!",
	})
	recorder := httptest.NewRecorder()

	handler.Suitability(recorder, req)

	assertStatusCode(t, recorder, http.StatusBadRequest)
}

func TestProductsHandler_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: ai.ErrContentRejected}
	handler := NewProductsHandler(provider, newTestSettings(t))

	req := jsonRequest(t, "POST", "/api/v1/products/search", ProductSearchRequest{ProductType: "serum"})
	recorder := httptest.NewRecorder()

	handler.Search(recorder, req)

	assertStatusCode(t, recorder, http.StatusUnprocessableEntity)
}
