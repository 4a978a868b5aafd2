package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkallin/driftwalk/internal/config"
)

var flagPresetsConfig string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List configuration presets",
	Long: `Shows the presets available to 'driftwalk run --preset'.

Presets are loaded from (in order): --config path, ~/.driftwalk/presets.yaml,
./presets.yaml, then the built-in defaults.`,
	Run: runPresets,
}

func init() {
	presetsCmd.Flags().StringVar(&flagPresetsConfig, "config", "", "Path to a custom presets YAML file")
}

func runPresets(_ *cobra.Command, _ []string) {
	presets, err := config.Load(flagPresetsConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := presets.Names()
	if len(names) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, n := range names {
		if len(n) > maxNameLen {
			maxNameLen = len(n)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Settings")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "--------")

	for _, n := range names {
		p, _ := presets.Lookup(n)
		fmt.Printf("  %-*s  %s\n", maxNameLen, n, describePreset(p))
	}

	fmt.Println()
	fmt.Println("Run 'driftwalk run --preset <name>' to use one.")
}

// describePreset renders a one-line summary of a preset.
func describePreset(p config.Preset) string {
	plane := "terminal-sized"
	if p.Width > 0 && p.Height > 0 {
		plane = fmt.Sprintf("%dx%d", p.Width, p.Height)
	}

	prob := "default turn chance"
	if p.TurnProb != nil {
		prob = fmt.Sprintf("%d%% turn chance", *p.TurnProb)
	}

	delay := "default delay"
	if p.DelayMS > 0 {
		delay = fmt.Sprintf("%dms delay", p.DelayMS)
	}

	return fmt.Sprintf("%d particles, %s plane, %s, %s", p.Particles, plane, prob, delay)
}
