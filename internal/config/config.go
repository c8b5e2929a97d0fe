package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed prices.yaml
var pricesYAML []byte

type Config struct {
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Storage StorageConfig
	Prices  PricesConfig
}

type GeminiConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	Token string
}

type StorageConfig struct {
	// Path to the SQLite database file holding scan history.
	Path string
}

// SettingsPath returns where the user settings file lives: next to the
// database so both stay together.
func (c *StorageConfig) SettingsPath() string {
	return filepath.Join(filepath.Dir(c.Path), "settings.json")
}

type PricesConfig struct {
	Models map[string]ModelPricing `yaml:"models"`
}

// ModelPricing holds input/output prices per 1M tokens.
type ModelPricing struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

func Load() *Config {
	var prices PricesConfig
	if err := yaml.Unmarshal(pricesYAML, &prices); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded prices.yaml: " + err.Error())
	}

	return &Config{
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
		},
		OpenAI: OpenAIConfig{
			Token: os.Getenv("OPENAI_TOKEN"),
		},
		Storage: StorageConfig{
			Path: envOr("GLOWSCAN_DB_PATH", defaultDBPath()),
		},
		Prices: prices,
	}
}

func envOr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// defaultDBPath puts the database under the user config dir, falling
// back to the working directory when no home is available.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "glow-scan.db"
	}
	return filepath.Join(dir, "glow-scan", "scans.db")
}

// GetModelPricing returns pricing for a specific model. Unknown models
// get zero pricing, which disables cost accounting but nothing else.
func (c *Config) GetModelPricing(modelName string) ModelPricing {
	if pricing, ok := c.Prices.Models[modelName]; ok {
		return pricing
	}
	return ModelPricing{}
}
