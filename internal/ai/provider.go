package ai

import "context"

// Language selects the output language for model responses.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"
)

// Model identifiers the app ships with. The two Gemini models are
// interchangeable; the active one is a user setting.
const (
	ModelGeminiFlashPreview = "gemini-3-flash-preview"
	ModelGeminiFlashLatest  = "gemini-flash-latest"
	ModelGPT41Mini          = "gpt-4.1-mini"
)

// Severity levels the model may assign to a face zone.
const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"
	SeverityNone   = "None"
)

// Recommendation tiers for product suggestions. Gold is high-end/best,
// Bronze is budget-friendly.
const (
	TierGold   = "Gold"
	TierSilver = "Silver"
	TierBronze = "Bronze"
)

// Winner values in a versus report.
const (
	WinnerPlayer1 = "Player 1"
	WinnerPlayer2 = "Player 2"
	WinnerDraw    = "Draw"
)

// Suitability verdicts ordered best to worst.
const (
	VerdictExcellentMatch = "Excellent Match"
	VerdictGood           = "Good"
	VerdictFair           = "Fair"
	VerdictCaution        = "Caution"
	VerdictNotRecommended = "Not Recommended"
)

// SkinAnalysis describes the overall skin assessment of one photo.
type SkinAnalysis struct {
	SkinType string   `json:"skin_type"`
	SkinTone string   `json:"skin_tone"`
	Concerns []string `json:"concerns"`
	Summary  string   `json:"summary"`
}

// HairAnalysis describes the hair assessment of one photo.
type HairAnalysis struct {
	HairType  string   `json:"hair_type"`
	Condition string   `json:"condition"`
	Concerns  []string `json:"concerns"`
}

// FaceZone is one named facial region with its own condition and severity.
type FaceZone struct {
	Zone      string `json:"zone"`
	Condition string `json:"condition"`
	Severity  string `json:"severity"` // High, Medium, Low or None
}

// ProductRecommendation is a generic (non-branded) product suggestion.
type ProductRecommendation struct {
	Category       string   `json:"category"`
	ProductType    string   `json:"product_type"`
	Suggestion     string   `json:"suggestion"`
	KeyIngredients []string `json:"key_ingredients"`
	UsageFrequency string   `json:"usage_frequency"`
}

// LifestyleSuggestion is a non-product habit recommendation.
type LifestyleSuggestion struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Details  string `json:"details"`
}

// AnalysisResult is the model's structured judgment about one facial photo.
type AnalysisResult struct {
	SkinAnalysis         SkinAnalysis            `json:"skin_analysis"`
	HairAnalysis         HairAnalysis            `json:"hair_analysis"`
	FaceMap              []FaceZone              `json:"face_map"`
	Recommendations      []ProductRecommendation `json:"recommendations"`
	LifestyleSuggestions []LifestyleSuggestion   `json:"lifestyle_suggestions"`
}

// VersusCategory is one compared aspect in a versus report.
type VersusCategory struct {
	CategoryName string `json:"category_name"`
	Winner       string `json:"winner"` // Player 1, Player 2 or Draw
	Reason       string `json:"reason"`
	P1Status     string `json:"p1_status"`
	P2Status     string `json:"p2_status"`
}

// VersusReport is the model's structured comparison of two analyses.
type VersusReport struct {
	BattleSummary     string           `json:"battle_summary"`
	Categories        []VersusCategory `json:"categories"`
	OverallGlowWinner string           `json:"overall_glow_winner"`
	FinalVerdict      string           `json:"final_verdict"`
}

// SpecificProduct is a branded product suggestion with a tier ranking.
type SpecificProduct struct {
	Tier           string   `json:"tier"` // Gold, Silver or Bronze
	Brand          string   `json:"brand"`
	ProductName    string   `json:"product_name"`
	PriceEstimate  string   `json:"price_estimate"`
	Reason         string   `json:"reason"`
	ProductLink    string   `json:"product_link"`
	KeyIngredients []string `json:"key_ingredients"`
	UsageFrequency string   `json:"usage_frequency"`
	ImageURL       string   `json:"image_url,omitempty"`
}

// ConcernExplanation is the model's educational breakdown of one concern.
type ConcernExplanation struct {
	ConcernName          string   `json:"concern_name"`
	WhatIsIt             string   `json:"what_is_it"`
	WhyItOccurs          string   `json:"why_it_occurs"`
	ManagementTips       []string `json:"management_tips"`
	IngredientsToLookFor []string `json:"ingredients_to_look_for"`
}

// ProductSuitability is the model's verdict on a scanned product label.
type ProductSuitability struct {
	ProductName         string `json:"product_name"`
	Brand               string `json:"brand"`
	SuitabilityScore    int    `json:"suitability_score"` // 0-100
	Verdict             string `json:"verdict"`
	Reasoning           string `json:"reasoning"`
	IngredientsAnalysis string `json:"ingredients_analysis"`
	QuantityToBuy       string `json:"quantity_to_buy"`
	UsageInstructions   string `json:"usage_instructions"`
}

// Provider defines the interface for AI analysis backends. Language and
// model id are explicit per-call parameters; nothing below this boundary
// reads them ambiently.
type Provider interface {
	Name() string

	// AnalyzeFace analyzes skin and hair health from a facial photo.
	AnalyzeFace(ctx context.Context, imageData []byte, lang Language, model string) (*AnalysisResult, error)

	// VersusReport compares two completed analyses.
	VersusReport(ctx context.Context, p1, p2 *AnalysisResult, lang Language, model string) (*VersusReport, error)

	// ProductSearch finds three tiered product suggestions for a product type.
	ProductSearch(ctx context.Context, productType, userContext, budget string, lang Language, model string) ([]SpecificProduct, error)

	// BrandSearch finds three tiered product suggestions from a single brand.
	BrandSearch(ctx context.Context, brand, userContext string, lang Language, model string) ([]SpecificProduct, error)

	// ExplainConcern explains a single named skin or hair concern.
	ExplainConcern(ctx context.Context, concern, userContext string, lang Language, model string) (*ConcernExplanation, error)

	// CheckProductSuitability scores a product-label photo against a user profile.
	CheckProductSuitability(ctx context.Context, labelImage []byte, userProfile string, lang Language, model string) (*ProductSuitability, error)

	// Usage tracking.
	GetUsage() *Usage
	ResetUsage()
}

// Usage tracks token usage and calculates cost.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalCost    float64 // in USD
}

// RequestPricing holds input/output prices per 1M tokens.
type RequestPricing struct {
	Input  float64
	Output float64
}
