package config

import (
	"path/filepath"
	"testing"

	"github.com/kozaktomas/glow-scan/internal/ai"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GLOWSCAN_DB_PATH", "/tmp/test/scans.db")

	cfg := Load()

	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("expected Gemini API key from env, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Storage.Path != "/tmp/test/scans.db" {
		t.Errorf("expected DB path from env, got %q", cfg.Storage.Path)
	}
}

func TestLoad_DefaultDBPath(t *testing.T) {
	t.Setenv("GLOWSCAN_DB_PATH", "")

	cfg := Load()

	if cfg.Storage.Path == "" {
		t.Error("expected a non-empty default DB path")
	}
}

func TestSettingsPath_NextToDatabase(t *testing.T) {
	storage := StorageConfig{Path: "/data/glow/scans.db"}

	if got := storage.SettingsPath(); got != filepath.Join("/data/glow", "settings.json") {
		t.Errorf("unexpected settings path %q", got)
	}
}

func TestGetModelPricing_EmbeddedModels(t *testing.T) {
	cfg := Load()

	for _, model := range []string{ai.ModelGeminiFlashPreview, ai.ModelGeminiFlashLatest, ai.ModelGPT41Mini} {
		pricing := cfg.GetModelPricing(model)
		if pricing.Input <= 0 || pricing.Output <= 0 {
			t.Errorf("expected positive pricing for %s, got %+v", model, pricing)
		}
	}
}

func TestGetModelPricing_UnknownModel(t *testing.T) {
	cfg := Load()

	pricing := cfg.GetModelPricing("does-not-exist")
	if pricing.Input != 0 || pricing.Output != 0 {
		t.Errorf("expected zero pricing for unknown model, got %+v", pricing)
	}
}
