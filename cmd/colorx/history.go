package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorx/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `Display the most recent recorded conversions.

Examples:
  colorx history
  colorx history --limit 50
  colorx history --stats
  colorx history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 0, "Number of conversions to show (default from config)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded conversions")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show usage counts per notation pair")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// History may be disabled for recording but still readable
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	if flagHistoryStats {
		return printStats(cmd, store)
	}

	limit := flagHistoryLimit
	if limit <= 0 {
		limit = cfg.History.Limit
	}

	entries, err := store.RecentConversions(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No conversions recorded yet.")
		return nil
	}

	fmt.Fprintln(out, "Recent conversions")
	fmt.Fprintln(out)

	maxInputLen := 5 // "Input" header
	for _, e := range entries {
		if len(e.Input) > maxInputLen {
			maxInputLen = len(e.Input)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-16s  %-*s  %-7s  %s\n", "Date", maxInputLen, "Input", "Target", "Output")
	fmt.Fprintf(out, "  %-16s  %-*s  %-7s  %s\n", "----", maxInputLen, "-----", "------", "------")

	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-16s  %-*s  %-7s  %s\n", dateStr, maxInputLen, e.Input, e.Target, e.Output)
	}
	return nil
}

func printStats(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No conversions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-8s  %-8s  %-5s  %s\n", "From", "To", "Count", "Last used")
	fmt.Fprintf(out, "  %-8s  %-8s  %-5s  %s\n", "----", "--", "-----", "---------")
	for _, st := range stats {
		fmt.Fprintf(out, "  %-8s  %-8s  %-5d  %s\n", st.Source, st.Target, st.Count, st.LastUsed.Format("2006-01-02 15:04"))
	}
	return nil
}
