package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/spf13/cobra"
)

var suitabilityCmd = &cobra.Command{
	Use:   "suitability [label-image]",
	Short: "Check whether a product suits your profile",
	Long: `Photograph a product label and have the AI model score how well the
product fits your skin profile. The profile defaults to your most
recent scan; override it with --profile.

Examples:
  glow-scan suitability label.jpg
  glow-scan suitability label.jpg --profile "Skin: Sensitive. Concerns: Redness."`,
	Args: cobra.ExactArgs(1),
	RunE: runSuitability,
}

func init() {
	rootCmd.AddCommand(suitabilityCmd)

	suitabilityCmd.Flags().String("profile", "", "User profile (defaults to your latest scan)")
	suitabilityCmd.Flags().Bool("json", false, "Output as JSON")
}

func runSuitability(cmd *cobra.Command, args []string) error {
	profile := mustGetString(cmd, "profile")
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

	imageData, err := loadImage(args[0])
	if err != nil {
		return err
	}

	if profile == "" {
		profile = latestProfile(ctx, cfg)
	}

	suitability, err := provider.CheckProductSuitability(ctx, imageData, profile, settings.Language, settings.Model)
	if err != nil {
		return fmt.Errorf("%s", ai.UserMessage(err, settings.Language))
	}

	if jsonOutput {
		return outputJSON(suitability)
	}

	fmt.Printf("%s %s\n", suitability.Brand, suitability.ProductName)
	fmt.Printf("Suitability: %d/100 (%s)\n\n", suitability.SuitabilityScore, suitability.Verdict)
	fmt.Printf("%s\n\n", suitability.Reasoning)
	if suitability.IngredientsAnalysis != "" {
		fmt.Printf("Ingredients: %s\n", suitability.IngredientsAnalysis)
	}
	if suitability.QuantityToBuy != "" {
		fmt.Printf("Quantity to buy: %s\n", suitability.QuantityToBuy)
	}
	if suitability.UsageInstructions != "" {
		fmt.Printf("Usage: %s\n", suitability.UsageInstructions)
	}
	printUsage(provider)
	return nil
}
