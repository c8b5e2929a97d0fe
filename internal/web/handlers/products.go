package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
)

// ProductsHandler covers product search, brand search and label
// suitability checks.
type ProductsHandler struct {
	provider ai.Provider
	settings *config.SettingsStore
}

func NewProductsHandler(provider ai.Provider, settings *config.SettingsStore) *ProductsHandler {
	return &ProductsHandler{
		provider: provider,
		settings: settings,
	}
}

type ProductSearchRequest struct {
	ProductType string `json:"product_type"`
	Context     string `json:"context"`
	Budget      string `json:"budget"`
}

// Search returns three tiered suggestions for a product type.
func (h *ProductsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req ProductSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.ProductType == "" {
		respondError(w, http.StatusBadRequest, "product_type is required")
		return
	}

	settings := h.settings.Get()
	products, err := h.provider.ProductSearch(r.Context(), req.ProductType, req.Context, req.Budget, settings.Language, settings.Model)
	if err != nil {
		respondAIError(w, err, settings.Language)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

type BrandSearchRequest struct {
	Brand   string `json:"brand"`
	Context string `json:"context"`
}

// ByBrand returns three tiered suggestions scoped to one brand.
func (h *ProductsHandler) ByBrand(w http.ResponseWriter, r *http.Request) {
	var req BrandSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if req.Brand == "" {
		respondError(w, http.StatusBadRequest, "brand is required")
		return
	}

	settings := h.settings.Get()
	products, err := h.provider.BrandSearch(r.Context(), req.Brand, req.Context, settings.Language, settings.Model)
	if err != nil {
		respondAIError(w, err, settings.Language)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

type SuitabilityRequest struct {
	Image   string `json:"image"` // product label photo
	Profile string `json:"profile"`
}

// Suitability scores a product-label photo against a user profile.
func (h *ProductsHandler) Suitability(w http.ResponseWriter, r *http.Request) {
	var req SuitabilityRequest
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
	suitability, err := h.provider.CheckProductSuitability(r.Context(), imageData, req.Profile, settings.Language, settings.Model)
	if err != nil {
		respondAIError(w, err, settings.Language)
		return
	}

	respondJSON(w, http.StatusOK, suitability)
}
