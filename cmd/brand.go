package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/spf13/cobra"
)

var brandCmd = &cobra.Command{
	Use:   "brand [brand-name]",
	Short: "Find tiered product suggestions from one brand",
	Long: `Ask the AI model which products of a specific brand suit you best. The
user context defaults to your most recent scan.

Examples:
  glow-scan brand CeraVe
  glow-scan brand "The Ordinary" --context "Skin: Oily."`,
	Args: cobra.ExactArgs(1),
	RunE: runBrand,
}

func init() {
	rootCmd.AddCommand(brandCmd)

	brandCmd.Flags().String("context", "", "User context (defaults to your latest scan)")
	brandCmd.Flags().Bool("json", false, "Output as JSON")
}

func runBrand(cmd *cobra.Command, args []string) error {
	userContext := mustGetString(cmd, "context")
	jsonOutput := mustGetBool(cmd, "json")

	cfg := config.Load()
	ctx := cmd.Context()

	settingsStore, err := loadSettings(cfg)
	if err != nil {
		return err
	}
	settings := settingsStore.Get()

	provider, err := newProvider(ctx, cfg, settings)
	if err != nil {
		return err
	}

	if userContext == "" {
		userContext = latestProfile(ctx, cfg)
	}

	products, err := provider.BrandSearch(ctx, args[0], userContext, settings.Language, settings.Model)
	if err != nil {
		return fmt.Errorf("%s", ai.UserMessage(err, settings.Language))
	}

	if jsonOutput {
		return outputJSON(products)
	}

	printProducts(products)
	printUsage(provider)
	return nil
}
