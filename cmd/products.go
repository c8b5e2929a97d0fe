package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products [product-type]",
	Short: "Find tiered product suggestions for a product type",
	Long: `Ask the AI model for gold, silver and bronze product suggestions of a
given type. By default the user context comes from your most recent
scan; override it with --context.

Examples:
  glow-scan products cleanser
  glow-scan products "vitamin C serum" --budget "under $30"
  glow-scan products moisturizer --context "Skin: Dry. Concerns: Redness."`,
	Args: cobra.ExactArgs(1),
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)

	productsCmd.Flags().String("context", "", "User context (defaults to your latest scan)")
	productsCmd.Flags().String("budget", "", "Budget preference, e.g. 'under $20'")
	productsCmd.Flags().Bool("json", false, "Output as JSON")
}

func runProducts(cmd *cobra.Command, args []string) error {
	userContext := mustGetString(cmd, "context")
	budget := mustGetString(cmd, "budget")
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

	products, err := provider.ProductSearch(ctx, args[0], userContext, budget, settings.Language, settings.Model)
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

func printProducts(products []ai.SpecificProduct) {
	for _, p := range products {
		fmt.Printf("[%s] %s %s (%s)\n", p.Tier, p.Brand, p.ProductName, p.PriceEstimate)
		fmt.Printf("  %s\n", p.Reason)
		if len(p.KeyIngredients) > 0 {
			fmt.Printf("  Key ingredients: %v\n", p.KeyIngredients)
		}
		if p.UsageFrequency != "" {
			fmt.Printf("  Usage: %s\n", p.UsageFrequency)
		}
		fmt.Println()
	}
}
