// Package core implements the particle random-walk simulation: the particle
// pool, the per-frame step engine, and the run loop. It contains no UI
// dependencies (especially no Bubble Tea) to keep the simulation pure,
// deterministic, and testable.
package core

import (
	"fmt"
	"math/rand"
)

// Status is the outcome of one frame.
type Status int

const (
	// Continuing means the pool still holds live particles.
	Continuing Status = iota
	// Finished means the pool emptied this frame. This is the run's normal,
	// successful termination, not an error.
	Finished
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Renderer is the sink the engine hands particle cells to. Implementations
// range from the raw ANSI writer to the Bubble Tea canvas to a no-op for
// headless runs; the engine never depends on a display technology.
type Renderer interface {
	// Draw receives one live particle's position and color. The position is
	// the particle's pre-move position for the current frame.
	Draw(pos Coord, color Color) error
}

// Flusher is optionally implemented by buffered renderers. The engine calls
// Flush once per frame after all particles have been drawn.
type Flusher interface {
	Flush() error
}

// NopRenderer is a Renderer that discards every draw. Used by headless runs
// and tests.
type NopRenderer struct{}

// Draw implements Renderer.
func (NopRenderer) Draw(Coord, Color) error { return nil }

// Engine advances the pool by one frame at a time in a fixed phase order:
// draw, steer, move, cull. Within a frame every particle completes a phase
// before any particle enters the next, and culling happens strictly after
// all particles have moved.
type Engine struct {
	pool     *Pool
	rng      *rand.Rand
	width    int
	height   int
	turnProb uint8
}

// NewEngine creates an engine over an already-populated pool. The config is
// assumed validated; the engine resolves the turn probability default itself.
func NewEngine(cfg Config, pool *Pool, rng *rand.Rand) *Engine {
	return &Engine{
		pool:     pool,
		rng:      rng,
		width:    cfg.Width,
		height:   cfg.Height,
		turnProb: cfg.EffectiveTurnProb(),
	}
}

// Pool returns the engine's particle pool.
func (e *Engine) Pool() *Pool {
	return e.pool
}

// Step runs one frame. The first renderer error aborts the frame and is
// returned unwrapped in status terms: no partial-failure semantics exist
// within a frame.
func (e *Engine) Step(r Renderer) (Status, error) {
	if err := e.draw(r); err != nil {
		return Continuing, err
	}
	e.steer()
	e.move()
	if e.pool.Cull() == 0 {
		return Finished, nil
	}
	return Continuing, nil
}

// draw hands every particle's pre-move cell to the renderer.
func (e *Engine) draw(r Renderer) error {
	var drawErr error
	e.pool.ForEach(func(p *Particle) {
		if drawErr != nil {
			return
		}
		if err := r.Draw(p.Pos, p.Color); err != nil {
			drawErr = fmt.Errorf("core: render failed at %s: %w", p.Pos, err)
		}
	})
	if drawErr != nil {
		return drawErr
	}
	if f, ok := r.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("core: render flush failed: %w", err)
		}
	}
	return nil
}

// steer redraws each particle's direction with the configured probability.
// A draw of 1..100 at or below the threshold triggers the change; a
// probability of 0 therefore never turns.
func (e *Engine) steer() {
	e.pool.ForEach(func(p *Particle) {
		if uint8(e.rng.Intn(100)+1) <= e.turnProb {
			p.Dir = RandomDirection(e.rng)
		}
	})
}

// move advances each particle one step along its heading. A step that would
// land outside the plane kills the particle in place: the position is left
// unchanged, never written out of bounds.
func (e *Engine) move() {
	e.pool.ForEach(func(p *Particle) {
		next := p.Pos.Step(p.Dir)
		if !next.In(e.width, e.height) {
			p.Alive = false
			return
		}
		p.Pos = next
	})
}
