package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	flagStatsLimit       int
	flagStatsInteractive bool
	flagStatsClear       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show screensaver run history",
	Long: `Display recorded screensaver sessions: when they ran, for how long,
and how many characters they drew.

Examples:
  pipes stats
  pipes stats --limit 25
  pipes stats --interactive
  pipes stats --clear`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of runs to show")
	statsCmd.Flags().BoolVar(&flagStatsInteractive, "interactive", false, "Browse history in an interactive table")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete all recorded runs")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagStatsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pipes' to start the screensaver.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-9s  %-8s  %-7s  %-6s  %-9s  %s\n",
		"When", "Duration", "Cells", "Resets", "Pipes", "Palette", "Style")
	fmt.Printf("  %-16s  %-9s  %-8s  %-7s  %-6s  %-9s  %s\n",
		"----", "--------", "-----", "------", "-----", "-------", "-----")

	// Print runs
	for _, r := range runs {
		fmt.Printf("  %-16s  %2d:%02d      %-8d  %-7d  %-6d  %-9s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Duration/60, r.Duration%60,
			r.CellsDrawn, r.Resets, r.Pipes, r.Palette, r.Style)
	}

	// Show totals
	fmt.Println()
	if total, err := store.TotalCells(); err == nil {
		fmt.Printf("Total cells drawn: %d\n", total)
	}
	if longest, err := store.LongestRun(); err == nil && longest != nil {
		fmt.Printf("Longest run: %d:%02d on %s\n",
			longest.Duration/60, longest.Duration%60,
			longest.CreatedAt.Format("2006-01-02"))
	}
}
