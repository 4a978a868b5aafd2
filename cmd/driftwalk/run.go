package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkallin/driftwalk/internal/platform/tui"
	"github.com/mkallin/driftwalk/internal/storage"
)

var runFlags simFlags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch a walk in the terminal",
	Long: `Start an interactive random walk sized to your terminal.

Controls:
  P/Space    - Pause/unpause
  R          - Restart with a fresh walk
  Q/Esc      - Quit

Examples:
  driftwalk run
  driftwalk run --particles 120 --turn-prob 80
  driftwalk run --preset swarm
  driftwalk run --width 60 --height 30 --seed 42
  driftwalk run --preset drifters --config ./my-presets.yaml`,
	Run: runRun,
}

func init() {
	runFlags.register(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg, err := runFlags.resolve(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the walk still works
		store = nil
	}

	runErr := tui.Run(cfg, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running walk: %v\n", runErr)
		os.Exit(1)
	}
}
