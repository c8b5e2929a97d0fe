package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/progress"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [image]",
	Short: "Analyze a facial photo and save the scan",
	Long: `Analyze a facial photo with the configured AI model. The structured
result covers skin, hair, face zones, product recommendations and
lifestyle suggestions, and is saved to the local scan history.

Examples:
  # Analyze a photo and save it
  glow-scan analyze selfie.jpg

  # Analyze without saving
  glow-scan analyze selfie.jpg --no-save

  # Output the raw result as JSON
  glow-scan analyze selfie.jpg --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Bool("no-save", false, "Do not record the scan in history")
	analyzeCmd.Flags().Bool("json", false, "Output as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	noSave := mustGetBool(cmd, "no-save")
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

	result, err := provider.AnalyzeFace(ctx, imageData, settings.Language, settings.Model)
	if err != nil {
		return fmt.Errorf("%s", ai.UserMessage(err, settings.Language))
	}

	if !noSave {
		hist, st, err := openHistory(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		resized, resizeErr := ai.ResizeImage(imageData, 800)
		if resizeErr != nil {
			resized = imageData
		}
		scan, err := hist.Save(ctx, ai.EncodeDataURI(resized), *result)
		if err != nil {
			fmt.Printf("Warning: failed to save scan: %v\n", err)
		} else {
			fmt.Printf("Saved scan %s\n", scan.ID)
		}
	}

	if jsonOutput {
		return outputJSON(result)
	}

	printAnalysis(result)
	printUsage(provider)
	return nil
}

func printAnalysis(result *ai.AnalysisResult) {
	fmt.Printf("Glow score: %d/100\n\n", progress.Score(result))

	fmt.Printf("Skin: %s (%s)\n", result.SkinAnalysis.SkinType, result.SkinAnalysis.SkinTone)
	for _, concern := range result.SkinAnalysis.Concerns {
		fmt.Printf("  - %s\n", concern)
	}
	if result.SkinAnalysis.Summary != "" {
		fmt.Printf("  %s\n", result.SkinAnalysis.Summary)
	}

	fmt.Printf("\nHair: %s, %s\n", result.HairAnalysis.HairType, result.HairAnalysis.Condition)
	for _, concern := range result.HairAnalysis.Concerns {
		fmt.Printf("  - %s\n", concern)
	}

	if len(result.FaceMap) > 0 {
		fmt.Println("\nFace zones:")
		for _, zone := range result.FaceMap {
			fmt.Printf("  %-12s %-8s %s\n", zone.Zone, zone.Severity, zone.Condition)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  %s: %s\n", rec.ProductType, rec.Suggestion)
		}
	}

	if len(result.LifestyleSuggestions) > 0 {
		fmt.Println("\nLifestyle:")
		for _, s := range result.LifestyleSuggestions {
			fmt.Printf("  %s: %s\n", s.Title, s.Details)
		}
	}
}
