package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/spf13/cobra"
)

var versusCmd = &cobra.Command{
	Use:   "versus [image1] [image2]",
	Short: "Run a glow battle between two photos",
	Long: `Analyze two facial photos and generate a playful category-by-category
comparison with an overall winner.

Examples:
  glow-scan versus me.jpg friend.jpg
  glow-scan versus me.jpg friend.jpg --json`,
	Args: cobra.ExactArgs(2),
	RunE: runVersus,
}

func init() {
	rootCmd.AddCommand(versusCmd)

	versusCmd.Flags().Bool("json", false, "Output as JSON")
}

func runVersus(cmd *cobra.Command, args []string) error {
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

	players := make([]*ai.AnalysisResult, 2)
	for i, path := range args {
		imageData, err := loadImage(path)
		if err != nil {
			return err
		}
		fmt.Printf("Analyzing %s...\n", path)
		result, err := provider.AnalyzeFace(ctx, imageData, settings.Language, settings.Model)
		if err != nil {
			return fmt.Errorf("%s", ai.UserMessage(err, settings.Language))
		}
		players[i] = result
	}

	report, err := provider.VersusReport(ctx, players[0], players[1], settings.Language, settings.Model)
	if err != nil {
		return fmt.Errorf("%s", ai.UserMessage(err, settings.Language))
	}

	if jsonOutput {
		return outputJSON(report)
	}

	fmt.Printf("\n%s\n\n", report.BattleSummary)
	for _, category := range report.Categories {
		fmt.Printf("%-20s %-10s %s\n", category.CategoryName, category.Winner, category.Reason)
	}
	fmt.Printf("\nOverall winner: %s\n", report.OverallGlowWinner)
	fmt.Printf("%s\n", report.FinalVerdict)
	printUsage(provider)
	return nil
}
