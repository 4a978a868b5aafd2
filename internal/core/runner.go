package core

import (
	"context"
	"time"
)

// RunStats summarizes a completed run.
type RunStats struct {
	Frames   uint64        // Frames executed, including the one that emptied the pool
	Spawned  int           // Particles created at start
	Duration time.Duration // Wall-clock time of the run
}

// Runner drives a full simulation: it validates the config, creates the pool,
// and steps the engine with the inter-frame delay until the pool empties, the
// context is cancelled, or a renderer fails.
type Runner struct {
	cfg    Config
	engine *Engine
}

// NewRunner validates the config and builds the run. A rejected config never
// creates a pool or executes a frame.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewRNG(cfg.Seed)
	pool := NewPool(rng, cfg.Particles, cfg.Width, cfg.Height)
	return &Runner{
		cfg:    cfg,
		engine: NewEngine(cfg, pool, rng),
	}, nil
}

// Engine exposes the runner's engine. Front ends that pace frames themselves
// (the TUI ticks on its own clock) step the engine directly.
func (r *Runner) Engine() *Engine {
	return r.engine
}

// Config returns the validated run configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run executes frames until the pool empties or the run is aborted. The
// context is checked before every frame and during the inter-frame delay,
// so cancellation never waits longer than one delay period.
func (r *Runner) Run(ctx context.Context, sink Renderer) (RunStats, error) {
	start := time.Now()
	stats := RunStats{Spawned: r.cfg.Particles}
	delay := r.cfg.EffectiveDelay()

	for {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		status, err := r.engine.Step(sink)
		stats.Frames++
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		if status == Finished {
			stats.Duration = time.Since(start)
			return stats, nil
		}

		select {
		case <-ctx.Done():
			stats.Duration = time.Since(start)
			return stats, ctx.Err()
		case <-time.After(delay):
		}
	}
}
