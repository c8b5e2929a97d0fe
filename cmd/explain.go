package cmd

import (
	"fmt"

	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [concern]",
	Short: "Explain a skin or hair concern",
	Long: `Get an educational breakdown of a named concern: what it is, why it
occurs, how to manage it and which ingredients to look for.

Examples:
  glow-scan explain Acne
  glow-scan explain "Enlarged Pores" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().String("context", "", "User context (defaults to your latest scan)")
	explainCmd.Flags().Bool("json", false, "Output as JSON")
}

func runExplain(cmd *cobra.Command, args []string) error {
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

	explanation, err := provider.ExplainConcern(ctx, args[0], userContext, settings.Language, settings.Model)
	if err != nil {
		return fmt.Errorf("%s", ai.UserMessage(err, settings.Language))
	}

	if jsonOutput {
		return outputJSON(explanation)
	}

	fmt.Printf("%s\n\n", explanation.ConcernName)
	fmt.Printf("What is it?\n  %s\n\n", explanation.WhatIsIt)
	fmt.Printf("Why does it occur?\n  %s\n\n", explanation.WhyItOccurs)
	if len(explanation.ManagementTips) > 0 {
		fmt.Println("Management tips:")
		for _, tip := range explanation.ManagementTips {
			fmt.Printf("  - %s\n", tip)
		}
		fmt.Println()
	}
	if len(explanation.IngredientsToLookFor) > 0 {
		fmt.Println("Ingredients to look for:")
		for _, ingredient := range explanation.IngredientsToLookFor {
			fmt.Printf("  - %s\n", ingredient)
		}
	}
	printUsage(provider)
	return nil
}
