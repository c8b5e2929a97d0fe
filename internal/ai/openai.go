package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIProvider is the alternative backend. Chat completions have no
// response-schema enforcement, only JSON mode, so malformed output is
// retried a few times with the parse error fed back to the model.
type OpenAIProvider struct {
	client      *openai.Client
	usage       Usage
	inputPrice  float64 // per 1M tokens
	outputPrice float64 // per 1M tokens
}

func NewOpenAIProvider(apiKey string, pricing RequestPricing) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client:      &client,
		inputPrice:  pricing.Input,
		outputPrice: pricing.Output,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) GetUsage() *Usage {
	return &p.usage
}

func (p *OpenAIProvider) ResetUsage() {
	p.usage = Usage{}
}

func (p *OpenAIProvider) trackUsage(inputTokens, outputTokens int64) {
	p.usage.InputTokens += int(inputTokens)
	p.usage.OutputTokens += int(outputTokens)
	p.usage.TotalCost += float64(inputTokens) / 1_000_000 * p.inputPrice
	p.usage.TotalCost += float64(outputTokens) / 1_000_000 * p.outputPrice
}

// generate runs one JSON-mode request and unmarshals the reply into out.
// imageData may be nil for text-only requests.
func (p *OpenAIProvider) generate(ctx context.Context, model, prompt string, imageData []byte, out any) error {
	const maxRetries = 3

	var userContent openai.ChatCompletionUserMessageParamContentUnion
	if imageData != nil {
		resized, err := ResizeImage(imageData, maxImageEdge)
		if err != nil {
			return fmt.Errorf("preparing image: %w", err)
		}
		userContent = openai.ChatCompletionUserMessageParamContentUnion{
			OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(prompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL:    EncodeDataURI(resized),
					Detail: "low",
				}),
			},
		}
	} else {
		userContent = openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(prompt),
		}
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		{
			OfUser: &openai.ChatCompletionUserMessageParam{Content: userContent},
		},
	}

	var lastError error
	var lastResponse string

	for range maxRetries {
		resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(model),
			Messages: messages,
			ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
				OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
			},
			MaxTokens: openai.Int(2000),
		})
		if err != nil {
			return classifyOpenAIError(err)
		}

		if len(resp.Choices) == 0 {
			return fmt.Errorf("%w: no choices returned", ErrResponseMalformed)
		}

		if resp.Usage.PromptTokens > 0 || resp.Usage.CompletionTokens > 0 {
			p.trackUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
		}

		content := resp.Choices[0].Message.Content
		lastResponse = content

		if err := json.Unmarshal([]byte(content), out); err != nil {
			lastError = err

			// Add assistant response and error feedback to messages for retry.
			messages = append(messages,
				openai.ChatCompletionMessageParamUnion{
					OfAssistant: &openai.ChatCompletionAssistantMessageParam{
						Content: openai.ChatCompletionAssistantMessageParamContentUnion{
							OfString: openai.String(content),
						},
					},
				},
				openai.ChatCompletionMessageParamUnion{
					OfUser: &openai.ChatCompletionUserMessageParam{
						Content: openai.ChatCompletionUserMessageParamContentUnion{
							OfString: openai.String(fmt.Sprintf("JSON parse error: %v. Please fix the JSON and try again. Remember to escape quotes inside strings with backslash.", err)),
						},
					},
				},
			)
			continue
		}

		return nil
	}

	return fmt.Errorf("%w: failed to parse after %d attempts: %v (last response: %s)", ErrResponseMalformed, maxRetries, lastError, lastResponse)
}

// classifyOpenAIError maps SDK errors onto the package error taxonomy.
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
		case apiErr.Code == "content_policy_violation" || strings.Contains(apiErr.Message, "content policy"):
			return fmt.Errorf("%w: %s", ErrContentRejected, apiErr.Message)
		}
		return fmt.Errorf("%w: %s (status %d)", ErrRequestFailed, apiErr.Message, apiErr.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrRequestFailed, err)
}

func (p *OpenAIProvider) AnalyzeFace(ctx context.Context, imageData []byte, lang Language, model string) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := p.generate(ctx, model, buildFaceAnalysisPrompt(lang), imageData, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *OpenAIProvider) VersusReport(ctx context.Context, p1, p2 *AnalysisResult, lang Language, model string) (*VersusReport, error) {
	p1JSON, err := json.Marshal(p1)
	if err != nil {
		return nil, fmt.Errorf("encoding player 1 analysis: %w", err)
	}
	p2JSON, err := json.Marshal(p2)
	if err != nil {
		return nil, fmt.Errorf("encoding player 2 analysis: %w", err)
	}

	var report VersusReport
	if err := p.generate(ctx, model, buildVersusPrompt(string(p1JSON), string(p2JSON), lang), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// productList wraps the tiered suggestions in an object. JSON mode only
// permits a top-level object, so a bare array reply can never arrive.
type productList struct {
	Products []SpecificProduct `json:"products"`
}

// productListDirective is appended to list-shaped prompts for this
// backend so the reply matches the productList envelope.
const productListDirective = ` Return a JSON object with a single key "products" holding the array of suggestions.`

func (p *OpenAIProvider) ProductSearch(ctx context.Context, productType, userContext, budget string, lang Language, model string) ([]SpecificProduct, error) {
	var list productList
	prompt := buildProductSearchPrompt(productType, userContext, budget, lang) + productListDirective
	if err := p.generate(ctx, model, prompt, nil, &list); err != nil {
		return nil, err
	}
	return list.Products, nil
}

func (p *OpenAIProvider) BrandSearch(ctx context.Context, brand, userContext string, lang Language, model string) ([]SpecificProduct, error) {
	var list productList
	prompt := buildBrandSearchPrompt(brand, userContext, lang) + productListDirective
	if err := p.generate(ctx, model, prompt, nil, &list); err != nil {
		return nil, err
	}
	return list.Products, nil
}

func (p *OpenAIProvider) ExplainConcern(ctx context.Context, concern, userContext string, lang Language, model string) (*ConcernExplanation, error) {
	var explanation ConcernExplanation
	if err := p.generate(ctx, model, buildConcernExplanationPrompt(concern, userContext, lang), nil, &explanation); err != nil {
		return nil, err
	}
	return &explanation, nil
}

func (p *OpenAIProvider) CheckProductSuitability(ctx context.Context, labelImage []byte, userProfile string, lang Language, model string) (*ProductSuitability, error) {
	var suitability ProductSuitability
	if err := p.generate(ctx, model, buildProductSuitabilityPrompt(userProfile, lang), labelImage, &suitability); err != nil {
		return nil, err
	}
	return &suitability, nil
}
