package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/history"
	"github.com/kozaktomas/glow-scan/internal/store"
)

// newProvider builds the AI backend selected in settings.
func newProvider(ctx context.Context, cfg *config.Config, settings config.Settings) (ai.Provider, error) {
	pricing := cfg.GetModelPricing(settings.Model)
	requestPricing := ai.RequestPricing{Input: pricing.Input, Output: pricing.Output}

	switch settings.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAI.Token == "" {
			return nil, errors.New("OPENAI_TOKEN environment variable is required")
		}
		return ai.NewOpenAIProvider(cfg.OpenAI.Token, requestPricing), nil
	default:
		if cfg.Gemini.APIKey == "" {
			return nil, errors.New("GEMINI_API_KEY environment variable is required")
		}
		return ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, requestPricing)
	}
}

// openHistory opens the scan store; the caller must Close the returned store.
func openHistory(ctx context.Context, cfg *config.Config) (*history.Service, *store.Store, error) {
	st := store.New(cfg.Storage.Path)
	if err := st.Init(ctx); err != nil {
		return nil, nil, fmt.Errorf("opening scan store: %w", err)
	}
	return history.NewService(st), st, nil
}

func loadSettings(cfg *config.Config) (*config.SettingsStore, error) {
	settings, err := config.NewSettingsStore(cfg.Storage.SettingsPath())
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

func loadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", path, err)
	}
	return data, nil
}

// outputJSON writes a value as indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printUsage prints token and cost accounting after an AI call.
func printUsage(provider ai.Provider) {
	usage := provider.GetUsage()
	fmt.Printf("\nTokens: %d in / %d out, cost $%.4f\n", usage.InputTokens, usage.OutputTokens, usage.TotalCost)
}

// profileFromResult condenses an analysis into the short user context
// string passed to product and concern lookups.
func profileFromResult(result *ai.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skin: %s.", result.SkinAnalysis.SkinType)
	if len(result.SkinAnalysis.Concerns) > 0 {
		fmt.Fprintf(&b, " Concerns: %s.", strings.Join(result.SkinAnalysis.Concerns, ", "))
	}
	if result.HairAnalysis.HairType != "" {
		fmt.Fprintf(&b, " Hair: %s.", result.HairAnalysis.HairType)
	}
	return b.String()
}

// latestProfile derives the default user context from the most recent
// scan, or returns empty when history has none.
func latestProfile(ctx context.Context, cfg *config.Config) string {
	hist, st, err := openHistory(ctx, cfg)
	if err != nil {
		return ""
	}
	defer st.Close()

	scans, err := hist.History(ctx)
	if err != nil || len(scans) == 0 {
		return ""
	}
	return profileFromResult(&scans[0].Result)
}
