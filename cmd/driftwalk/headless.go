package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mkallin/driftwalk/internal/core"
	"github.com/mkallin/driftwalk/internal/render"
	"github.com/mkallin/driftwalk/internal/storage"
)

var (
	headlessFlags simFlags
	flagRaw       bool
	flagNoSave    bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation without a display",
	Long: `Run a walk to completion without the interactive UI.

By default the particles are simulated silently and the outcome is logged
and recorded. With --raw the frames are streamed to stdout as raw escape
sequences, the way the simulation originally drew itself.

Examples:
  driftwalk headless --seed 42
  driftwalk headless --width 40 --height 20 --particles 50
  driftwalk headless --raw --delay-ms 10
  driftwalk headless --no-save`,
	Run: runHeadless,
}

func init() {
	headlessFlags.register(headlessCmd)
	headlessCmd.Flags().BoolVar(&flagRaw, "raw", false, "Stream frames to stdout as escape sequences")
	headlessCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runHeadless(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "driftwalk",
	})

	cfg, err := headlessFlags.resolve(cmd)
	if err != nil {
		logger.Fatal("bad flags", "error", err)
	}

	runner, err := core.NewRunner(cfg)
	if err != nil {
		logger.Fatal("rejected config", "error", err)
	}

	var sink core.Renderer = core.NopRenderer{}
	if flagRaw {
		ansi := render.NewANSI(os.Stdout)
		if err := ansi.Clear(); err != nil {
			logger.Fatal("cannot write to stdout", "error", err)
		}
		defer ansi.Reset() //nolint:errcheck // Best-effort terminal restore
		sink = ansi
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting walk",
		"width", cfg.Width,
		"height", cfg.Height,
		"particles", cfg.Particles,
		"turn_prob", cfg.EffectiveTurnProb(),
		"delay", cfg.EffectiveDelay(),
	)

	stats, runErr := runner.Run(ctx, sink)
	switch {
	case runErr == nil:
		logger.Info("walk finished",
			"frames", stats.Frames,
			"duration", stats.Duration,
			"spawned", stats.Spawned,
		)
	case errors.Is(runErr, context.Canceled):
		logger.Info("walk interrupted",
			"frames", stats.Frames,
			"remaining", runner.Engine().Pool().Len(),
		)
		return
	default:
		logger.Fatal("walk failed", "error", runErr)
	}

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(cfg, stats)
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id)
}
