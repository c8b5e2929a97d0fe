package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/kozaktomas/glow-scan/internal/ai"
)

// Provider backends selectable in settings.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Settings are the user-adjustable options persisted between runs:
// output language, model id and provider backend. The scoring and
// storage code never reads these; they are passed explicitly into AI
// calls.
type Settings struct {
	Language ai.Language `json:"language"`
	Model    string      `json:"model"`
	Provider string      `json:"provider"`
}

func DefaultSettings() Settings {
	return Settings{
		Language: ai.LanguageEnglish,
		Model:    ai.ModelGeminiFlashPreview,
		Provider: ProviderGemini,
	}
}

// sanitize replaces unknown values with defaults, field by field, so a
// hand-edited or stale settings file degrades instead of failing.
func sanitize(s Settings) Settings {
	defaults := DefaultSettings()

	if s.Language != ai.LanguageEnglish && s.Language != ai.LanguageChinese {
		s.Language = defaults.Language
	}

	switch s.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		s.Provider = defaults.Provider
		s.Model = defaults.Model
	}

	if s.Model == "" {
		if s.Provider == ProviderOpenAI {
			s.Model = ai.ModelGPT41Mini
		} else {
			s.Model = defaults.Model
		}
	}

	return s
}

// SettingsStore guards the current settings and persists changes to a
// JSON file.
type SettingsStore struct {
	path string

	mu      sync.RWMutex
	current Settings
}

// NewSettingsStore loads settings from path; a missing file yields
// defaults without error.
func NewSettingsStore(path string) (*SettingsStore, error) {
	s := &SettingsStore{path: path, current: DefaultSettings()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	s.current = sanitize(loaded)
	return s, nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update sanitizes, persists and applies new settings, returning what
// was actually stored.
func (s *SettingsStore) Update(next Settings) (Settings, error) {
	next = sanitize(next)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return Settings{}, fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return Settings{}, fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return Settings{}, fmt.Errorf("writing settings: %w", err)
	}

	s.current = next
	return next, nil
}
