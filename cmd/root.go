package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glow-scan",
	Short: "A CLI tool for AI-assisted skin and hair analysis",
	Long: `Glow Scan analyzes facial photos with multimodal AI models (Gemini, OpenAI)
and tracks how your skin and hair develop over time. Scans are stored
locally so progress can be charted across sessions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
