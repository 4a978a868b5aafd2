package core

import (
	"errors"
	"testing"
)

// recorder captures draw calls per frame for asserting render order.
type recorder struct {
	draws []Coord
}

func (r *recorder) Draw(pos Coord, _ Color) error {
	r.draws = append(r.draws, pos)
	return nil
}

// failingRenderer reports a sink failure on every draw.
type failingRenderer struct{}

var errSink = errors.New("sink broke")

func (failingRenderer) Draw(Coord, Color) error { return errSink }

// singleParticlePool builds a pool with one hand-placed particle, bypassing
// random population.
func singleParticlePool(pos Coord, dir Direction) *Pool {
	return &Pool{particles: []Particle{{Pos: pos, Dir: dir, Alive: true}}}
}

func TestWestboundParticleDiesAtEdge(t *testing.T) {
	// 3x1 plane, one particle at (1,0) facing West, never turning:
	// frame 1 moves it to (0,0), frame 2 kills it in place and ends the run.
	cfg := Config{Width: 3, Height: 1, Particles: 1, TurnProb: TurnProbOf(0)}
	pool := singleParticlePool(C(1, 0), West)
	engine := NewEngine(cfg, pool, NewRNG(1))

	rec := &recorder{}
	status, err := engine.Step(rec)
	if err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if status != Continuing {
		t.Fatalf("frame 1 status = %v, expected continuing", status)
	}
	if len(rec.draws) != 1 || rec.draws[0] != C(1, 0) {
		t.Errorf("frame 1 drew %v, expected pre-move position (1,0)", rec.draws)
	}
	if got := pool.Snapshot()[0].Pos; got != C(0, 0) {
		t.Errorf("frame 1 moved particle to %s, expected (0,0)", got)
	}

	rec.draws = nil
	status, err = engine.Step(rec)
	if err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if status != Finished {
		t.Fatalf("frame 2 status = %v, expected finished", status)
	}
	if len(rec.draws) != 1 || rec.draws[0] != C(0, 0) {
		t.Errorf("frame 2 drew %v, expected (0,0)", rec.draws)
	}
	if !pool.Empty() {
		t.Error("pool not empty after the particle walked off the plane")
	}
}

func TestDeadParticleIsNotMoved(t *testing.T) {
	// 1x1 plane: any move leaves the plane, so the particle must be flagged
	// dead with its position untouched, then culled.
	cfg := Config{Width: 1, Height: 1, Particles: 1, TurnProb: TurnProbOf(0)}
	pool := singleParticlePool(C(0, 0), NorthWest)
	engine := NewEngine(cfg, pool, NewRNG(1))

	// Inspect the move phase in isolation: after move but before cull the
	// particle is dead in place.
	engine.move()
	p := pool.Snapshot()[0]
	if p.Alive {
		t.Error("particle alive after an out-of-bounds move")
	}
	if p.Pos != C(0, 0) {
		t.Errorf("dead particle moved to %s, expected unchanged (0,0)", p.Pos)
	}
}

func TestZeroProbabilityNeverTurns(t *testing.T) {
	cfg := Config{Width: 101, Height: 101, Particles: 1, TurnProb: TurnProbOf(0)}
	pool := singleParticlePool(C(50, 50), East)
	engine := NewEngine(cfg, pool, NewRNG(99))

	for frame := 0; frame < 20; frame++ {
		if _, err := engine.Step(NopRenderer{}); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		if got := pool.Snapshot()[0].Dir; got != East {
			t.Fatalf("frame %d: direction changed to %s with probability 0", frame, got)
		}
	}
}

func TestFullProbabilityRedrawsEveryFrame(t *testing.T) {
	// With probability 100 every frame consumes one threshold draw and one
	// direction draw per particle. Replaying the same RNG stream predicts the
	// exact direction sequence.
	seed := int64(4242)
	cfg := Config{Width: 101, Height: 101, Particles: 1, TurnProb: TurnProbOf(100)}
	pool := singleParticlePool(C(50, 50), North)
	engine := NewEngine(cfg, pool, NewRNG(seed))

	shadow := NewRNG(seed)
	for frame := 0; frame < 10; frame++ {
		shadow.Intn(100) // threshold draw, always at or below 100
		expected := RandomDirection(shadow)

		if _, err := engine.Step(NopRenderer{}); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		if got := pool.Snapshot()[0].Dir; got != expected {
			t.Fatalf("frame %d: direction %s, expected redraw %s", frame, got, expected)
		}
	}
}

func TestRenderErrorAbortsFrame(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Particles: 1, TurnProb: TurnProbOf(0)}
	pool := singleParticlePool(C(5, 5), East)
	engine := NewEngine(cfg, pool, NewRNG(3))

	_, err := engine.Step(failingRenderer{})
	if err == nil {
		t.Fatal("Step() = nil error with a failing sink")
	}
	if !errors.Is(err, errSink) {
		t.Errorf("error %v does not wrap the sink failure", err)
	}
	// The frame aborted before steer/move: position unchanged.
	if got := pool.Snapshot()[0].Pos; got != C(5, 5) {
		t.Errorf("aborted frame mutated position to %s", got)
	}
}

func TestRunInvariants(t *testing.T) {
	// Bounds, monotone pool size, and finite termination under a seeded RNG.
	cfg := Config{Width: 12, Height: 8, Particles: 30, Seed: 777}
	runner, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	engine := runner.Engine()

	const maxFrames = 100000
	prev := engine.Pool().Len()
	for frame := 0; frame < maxFrames; frame++ {
		status, stepErr := engine.Step(NopRenderer{})
		if stepErr != nil {
			t.Fatalf("frame %d: %v", frame, stepErr)
		}

		n := engine.Pool().Len()
		if n > prev {
			t.Fatalf("frame %d: pool grew from %d to %d", frame, prev, n)
		}
		prev = n

		engine.Pool().ForEach(func(p *Particle) {
			if !p.Pos.In(cfg.Width, cfg.Height) {
				t.Fatalf("frame %d: live particle out of bounds at %s", frame, p.Pos)
			}
		})

		if status == Finished {
			if n != 0 {
				t.Fatalf("finished with %d particles remaining", n)
			}
			return
		}
	}
	t.Fatalf("run did not terminate within %d frames", maxFrames)
}

func TestDeterministicReplay(t *testing.T) {
	// Two runs with the same seed and config produce identical per-frame
	// particle states.
	cfg := Config{Width: 40, Height: 20, Particles: 15, Seed: 20260830}

	r1, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	r2, err := NewRunner(cfg)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	for frame := 0; frame < 200; frame++ {
		s1, err1 := r1.Engine().Step(NopRenderer{})
		s2, err2 := r2.Engine().Step(NopRenderer{})
		if err1 != nil || err2 != nil {
			t.Fatalf("frame %d: %v / %v", frame, err1, err2)
		}
		if s1 != s2 {
			t.Fatalf("frame %d: status diverged: %v vs %v", frame, s1, s2)
		}

		snap1 := r1.Engine().Pool().Snapshot()
		snap2 := r2.Engine().Pool().Snapshot()
		if len(snap1) != len(snap2) {
			t.Fatalf("frame %d: pool sizes diverged: %d vs %d", frame, len(snap1), len(snap2))
		}
		for i := range snap1 {
			if snap1[i] != snap2[i] {
				t.Fatalf("frame %d particle %d diverged: %+v vs %+v", frame, i, snap1[i], snap2[i])
			}
		}

		if s1 == Finished {
			return
		}
	}
}
