package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider talks to the hosted Gemini API. The model id is chosen
// per call; the provider itself is model-agnostic.
type GeminiProvider struct {
	client      *genai.Client
	usage       Usage
	inputPrice  float64 // per 1M tokens
	outputPrice float64 // per 1M tokens
}

func NewGeminiProvider(ctx context.Context, apiKey string, pricing RequestPricing) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		inputPrice:  pricing.Input,
		outputPrice: pricing.Output,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) GetUsage() *Usage {
	return &p.usage
}

func (p *GeminiProvider) ResetUsage() {
	p.usage = Usage{}
}

func (p *GeminiProvider) trackUsage(inputTokens, outputTokens int32) {
	p.usage.InputTokens += int(inputTokens)
	p.usage.OutputTokens += int(outputTokens)
	p.usage.TotalCost += float64(inputTokens) / 1_000_000 * p.inputPrice
	p.usage.TotalCost += float64(outputTokens) / 1_000_000 * p.outputPrice
}

// generate runs one structured-output request and returns the raw JSON
// text. Schema conformance is requested from the API itself; a response
// that still fails to parse is a hard failure for the call, no retries.
func (p *GeminiProvider) generate(ctx context.Context, model string, parts []*genai.Part, schema *genai.Schema) (string, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: parts},
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if result.UsageMetadata != nil {
		p.trackUsage(result.UsageMetadata.PromptTokenCount, result.UsageMetadata.CandidatesTokenCount)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrContentRejected, result.PromptFeedback.BlockReason)
	}

	content := result.Text()
	if content == "" {
		if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == genai.FinishReasonSafety {
			return "", fmt.Errorf("%w: generation stopped for safety", ErrContentRejected)
		}
		return "", fmt.Errorf("%w: empty response", ErrResponseMalformed)
	}

	return content, nil
}

// classifyGeminiError maps SDK errors onto the package error taxonomy.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED":
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
		case strings.Contains(strings.ToUpper(apiErr.Message), "SAFETY"):
			return fmt.Errorf("%w: %s", ErrContentRejected, apiErr.Message)
		}
		return fmt.Errorf("%w: %s (code %d)", ErrRequestFailed, apiErr.Message, apiErr.Code)
	}
	return fmt.Errorf("%w: %v", ErrRequestFailed, err)
}

func (p *GeminiProvider) AnalyzeFace(ctx context.Context, imageData []byte, lang Language, model string) (*AnalysisResult, error) {
	resized, err := ResizeImage(imageData, maxImageEdge)
	if err != nil {
		return nil, fmt.Errorf("preparing image: %w", err)
	}

	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: resized, MIMEType: "image/jpeg"}},
		{Text: buildFaceAnalysisPrompt(lang)},
	}

	content, err := p.generate(ctx, model, parts, analysisSchema)
	if err != nil {
		return nil, err
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return &result, nil
}

func (p *GeminiProvider) VersusReport(ctx context.Context, p1, p2 *AnalysisResult, lang Language, model string) (*VersusReport, error) {
	p1JSON, err := json.Marshal(p1)
	if err != nil {
		return nil, fmt.Errorf("encoding player 1 analysis: %w", err)
	}
	p2JSON, err := json.Marshal(p2)
	if err != nil {
		return nil, fmt.Errorf("encoding player 2 analysis: %w", err)
	}

	parts := []*genai.Part{
		{Text: buildVersusPrompt(string(p1JSON), string(p2JSON), lang)},
	}

	content, err := p.generate(ctx, model, parts, versusSchema)
	if err != nil {
		return nil, err
	}

	var report VersusReport
	if err := json.Unmarshal([]byte(content), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return &report, nil
}

func (p *GeminiProvider) ProductSearch(ctx context.Context, productType, userContext, budget string, lang Language, model string) ([]SpecificProduct, error) {
	parts := []*genai.Part{
		{Text: buildProductSearchPrompt(productType, userContext, budget, lang)},
	}

	content, err := p.generate(ctx, model, parts, specificProductSchema)
	if err != nil {
		return nil, err
	}

	var products []SpecificProduct
	if err := json.Unmarshal([]byte(content), &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return products, nil
}

func (p *GeminiProvider) BrandSearch(ctx context.Context, brand, userContext string, lang Language, model string) ([]SpecificProduct, error) {
	parts := []*genai.Part{
		{Text: buildBrandSearchPrompt(brand, userContext, lang)},
	}

	content, err := p.generate(ctx, model, parts, specificProductSchema)
	if err != nil {
		return nil, err
	}

	var products []SpecificProduct
	if err := json.Unmarshal([]byte(content), &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return products, nil
}

func (p *GeminiProvider) ExplainConcern(ctx context.Context, concern, userContext string, lang Language, model string) (*ConcernExplanation, error) {
	parts := []*genai.Part{
		{Text: buildConcernExplanationPrompt(concern, userContext, lang)},
	}

	content, err := p.generate(ctx, model, parts, concernExplanationSchema)
	if err != nil {
		return nil, err
	}

	var explanation ConcernExplanation
	if err := json.Unmarshal([]byte(content), &explanation); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return &explanation, nil
}

func (p *GeminiProvider) CheckProductSuitability(ctx context.Context, labelImage []byte, userProfile string, lang Language, model string) (*ProductSuitability, error) {
	resized, err := ResizeImage(labelImage, maxImageEdge)
	if err != nil {
		return nil, fmt.Errorf("preparing image: %w", err)
	}

	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: resized, MIMEType: "image/jpeg"}},
		{Text: buildProductSuitabilityPrompt(userProfile, lang)},
	}

	content, err := p.generate(ctx, model, parts, productSuitabilitySchema)
	if err != nil {
		return nil, err
	}

	var suitability ProductSuitability
	if err := json.Unmarshal([]byte(content), &suitability); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseMalformed, err)
	}
	return &suitability, nil
}
