package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show how your glow score develops over time",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().Bool("json", false, "Output as JSON")
}

func runProgress(cmd *cobra.Command, args []string) error {
	jsonOutput := mustGetBool(cmd, "json")

	cfg := config.Load()
	ctx := cmd.Context()

	settingsStore, err := loadSettings(cfg)
	if err != nil {
		return err
	}
	settings := settingsStore.Get()

	hist, st, err := openHistory(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	scans, err := hist.Timeline(ctx)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	points := progress.ChartPoints(scans, settings.Language)

	trend, err := progress.ComputeTrend(scans)
	if errors.Is(err, progress.ErrInsufficientData) {
		if jsonOutput {
			return outputJSON(map[string]any{"insufficient_data": true, "points": points})
		}
		fmt.Println("Not enough scans to show progress. Save at least two scans first.")
		return nil
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(map[string]any{"points": points, "trend": trend})
	}

	for _, point := range points {
		bar := strings.Repeat("#", point.Score/2)
		fmt.Printf("%-8s %3d %s\n", point.Date, point.Score, bar)
	}

	fmt.Printf("\nTrend: %s (%+d)\n", trend.Label, trend.ScoreDelta)
	if len(trend.ResolvedConcerns) > 0 {
		fmt.Printf("Resolved: %s\n", strings.Join(trend.ResolvedConcerns, ", "))
	}
	if len(trend.NewConcerns) > 0 {
		fmt.Printf("New: %s\n", strings.Join(trend.NewConcerns, ", "))
	}
	return nil
}
