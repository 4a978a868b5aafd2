// driftwalk animates particles taking an 8-directional random walk across
// the terminal. Each particle is a colored cell; a particle that would step
// off the plane dies, and the run ends when the plane is empty.
//
// Usage:
//
//	driftwalk run              - Watch a walk in the terminal
//	driftwalk headless         - Run a walk without a display
//	driftwalk presets          - List configuration presets
//	driftwalk history          - Browse recorded runs
//	driftwalk serve            - Start SSH server for remote viewing
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible walks
//	--db <path>     - Set database path (default: ~/.driftwalk/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "driftwalk",
	Short: "driftwalk - Random-walk particles in your terminal",
	Long: `driftwalk renders a configurable number of colored particles taking a
random walk across a bounded plane in your terminal. Particles that wander
off the edge die; the run ends when none remain.

Available commands:
  run      - Watch a walk interactively
  headless - Run the simulation without a display
  presets  - List configuration presets
  history  - Browse recorded runs
  serve    - Start SSH server for remote viewing

Examples:
  driftwalk run
  driftwalk run --particles 120 --turn-prob 80
  driftwalk run --preset drifters
  driftwalk headless --seed 42
  driftwalk serve --ssh :2222
  driftwalk history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.driftwalk/runs.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
