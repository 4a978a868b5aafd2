package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkallin/driftwalk/internal/config"
	"github.com/mkallin/driftwalk/internal/core"
)

// simFlags bundles the per-run simulation flags shared by the run and
// headless commands.
type simFlags struct {
	width     int
	height    int
	particles int
	turnProb  int // -1 means unset, distinct from an explicit 0
	delayMS   int
	preset    string
	cfgPath   string
}

// register attaches the flags to a command.
func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Plane width in cells (0 = terminal width)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Plane height in cells (0 = terminal height)")
	cmd.Flags().IntVar(&f.particles, "particles", 10, "Number of particles")
	cmd.Flags().IntVar(&f.turnProb, "turn-prob", -1, "Percent chance per frame a particle turns (-1 = default 50, 0 = never)")
	cmd.Flags().IntVar(&f.delayMS, "delay-ms", 0, "Inter-frame delay in milliseconds (0 = default 25)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Start from a named preset")
	cmd.Flags().StringVar(&f.cfgPath, "config", "", "Path to a custom presets YAML file")
}

// resolve builds the run config: preset first, explicit flags on top,
// terminal size for auto dimensions. Validation itself is the core's job.
func (f *simFlags) resolve(cmd *cobra.Command) (core.Config, error) {
	base := config.Preset{Particles: f.particles}

	if f.preset != "" {
		presets, err := config.Load(f.cfgPath)
		if err != nil {
			return core.Config{}, err
		}
		base, err = presets.Lookup(f.preset)
		if err != nil {
			return core.Config{}, err
		}
	}

	// Explicit flags override the preset
	if cmd.Flags().Changed("width") {
		base.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		base.Height = f.height
	}
	if cmd.Flags().Changed("particles") {
		base.Particles = f.particles
	}
	if cmd.Flags().Changed("delay-ms") {
		base.DelayMS = f.delayMS
	}
	if cmd.Flags().Changed("turn-prob") || f.preset == "" {
		if f.turnProb >= 0 {
			if f.turnProb > core.MaxTurnProb {
				return core.Config{}, fmt.Errorf("turn-prob %d exceeds %d", f.turnProb, core.MaxTurnProb)
			}
			base.TurnProb = core.TurnProbOf(uint8(f.turnProb))
		} else {
			base.TurnProb = nil
		}
	}

	// Auto-size to the terminal, leaving the bottom row for the status line
	if base.Width == 0 || base.Height == 0 {
		w, h := 80, 24
		if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w, h = tw, th
		}
		if base.Width == 0 {
			base.Width = clampPlaneDim(w)
		}
		if base.Height == 0 {
			base.Height = clampPlaneDim(h)
		}
	}

	return base.Config(flagSeed), nil
}

// clampPlaneDim keeps a terminal dimension inside the plane's supported range.
func clampPlaneDim(n int) int {
	if n < 1 {
		return 1
	}
	if n > core.MaxDim {
		return core.MaxDim
	}
	return n
}
