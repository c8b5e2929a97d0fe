package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persisted settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change language, model or provider",
	Long: `Change the persisted settings. Unknown values fall back to defaults.

Examples:
  glow-scan settings set --language zh
  glow-scan settings set --provider openai --model gpt-4.1-mini`,
	RunE: runSettingsSet,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().String("language", "", "Output language (en or zh)")
	settingsSetCmd.Flags().String("model", "", "Model id")
	settingsSetCmd.Flags().String("provider", "", "AI provider (gemini or openai)")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	settingsStore, err := loadSettings(cfg)
	if err != nil {
		return err
	}
	settings := settingsStore.Get()

	fmt.Printf("Language: %s\n", settings.Language)
	fmt.Printf("Model:    %s\n", settings.Model)
	fmt.Printf("Provider: %s\n", settings.Provider)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	language := mustGetString(cmd, "language")
	model := mustGetString(cmd, "model")
	provider := mustGetString(cmd, "provider")

	cfg := config.Load()

	settingsStore, err := loadSettings(cfg)
	if err != nil {
		return err
	}

	next := settingsStore.Get()
	if language != "" {
		next.Language = ai.Language(language)
	}
	if model != "" {
		next.Model = model
	}
	if provider != "" {
		next.Provider = provider
		if model == "" {
			// switching provider invalidates the old model choice
			next.Model = ""
		}
	}

	updated, err := settingsStore.Update(next)
	if err != nil {
		return err
	}

	fmt.Printf("Language: %s\n", updated.Language)
	fmt.Printf("Model:    %s\n", updated.Model)
	fmt.Printf("Provider: %s\n", updated.Provider)
	return nil
}
