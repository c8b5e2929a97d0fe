package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kozaktomas/glow-scan/internal/config"
	"github.com/kozaktomas/glow-scan/internal/progress"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scans, newest first",
	RunE:  runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [scan-id]",
	Short: "Delete a scan from history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyDeleteCmd)

	historyCmd.Flags().Bool("json", false, "Output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	jsonOutput := mustGetBool(cmd, "json")

	cfg := config.Load()
	ctx := cmd.Context()

	hist, st, err := openHistory(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	scans, err := hist.History(ctx)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if jsonOutput {
		return outputJSON(scans)
	}

	if len(scans) == 0 {
		fmt.Println("No scans yet. Run 'glow-scan analyze' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSCORE\tSKIN\tCONCERNS")
	for _, scan := range scans {
		date := time.UnixMilli(scan.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n",
			scan.ID, date, progress.Score(&scan.Result),
			scan.Result.SkinAnalysis.SkinType, len(scan.Result.SkinAnalysis.Concerns))
	}
	return w.Flush()
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	ctx := cmd.Context()

	hist, st, err := openHistory(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := hist.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("deleting scan: %w", err)
	}

	fmt.Printf("Deleted scan %s\n", args[0])
	return nil
}
