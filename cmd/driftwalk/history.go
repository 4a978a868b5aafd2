package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkallin/driftwalk/internal/platform/tui"
	"github.com/mkallin/driftwalk/internal/storage"
)

var (
	flagHistoryPlain   bool
	flagHistoryLongest bool
	flagHistoryLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Show previously recorded walks from the run database.

By default an interactive browser opens (tab toggles between most recent
and longest runs). Use --plain for plain text output suitable for piping.

Examples:
  driftwalk history
  driftwalk history --plain
  driftwalk history --plain --longest --limit 5`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive browser")
	historyCmd.Flags().BoolVar(&flagHistoryLongest, "longest", false, "Sort by frames survived (with --plain)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show (with --plain)")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryPlain {
		printHistory(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the run table as plain text.
func printHistory(store *storage.Store) {
	var (
		runs []storage.RunRecord
		err  error
	)
	if flagHistoryLongest {
		runs, err = store.LongestRuns(flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs yet.")
		return
	}

	fmt.Printf("  %-5s  %-9s  %-9s  %-6s  %-8s  %-10s  %s\n",
		"Run", "Plane", "Particles", "Turn%", "Frames", "Duration", "Date")
	for _, r := range runs {
		prob := "50*"
		if r.TurnProb != nil {
			prob = fmt.Sprintf("%d", *r.TurnProb)
		}
		fmt.Printf("  #%-4d  %-9s  %-9d  %-6s  %-8d  %-10s  %s\n",
			r.ID,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Particles,
			prob,
			r.Frames,
			r.Duration,
			r.CreatedAt.Format("Jan 02 15:04"),
		)
	}
	fmt.Println()
	fmt.Println("(* engine default)")
}
