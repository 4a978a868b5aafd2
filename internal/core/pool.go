package core

import "math/rand"

// Pool owns the live particles of a run. It is a plain slice compacted in
// place on cull, so removal preserves the order of survivors and teardown is
// just the pool going out of scope.
type Pool struct {
	particles []Particle
}

// NewPool creates a pool populated with count particles, each with a uniform
// random position on the plane, uniform random color channels, and a uniform
// random direction. The caller validates count/width/height beforehand.
func NewPool(rng *rand.Rand, count, width, height int) *Pool {
	p := &Pool{particles: make([]Particle, count)}
	for i := range p.particles {
		p.particles[i] = Particle{
			Pos:   C(rng.Intn(width), rng.Intn(height)),
			Color: RandomColor(rng),
			Dir:   RandomDirection(rng),
			Alive: true,
		}
	}
	return p
}

// Len returns the number of particles currently in the pool.
func (p *Pool) Len() int {
	return len(p.particles)
}

// Empty reports whether all particles have been culled.
func (p *Pool) Empty() bool {
	return len(p.particles) == 0
}

// ForEach applies fn to every particle in order. fn may mutate the particle
// through the pointer.
func (p *Pool) ForEach(fn func(*Particle)) {
	for i := range p.particles {
		fn(&p.particles[i])
	}
}

// Cull removes every dead particle, preserving the order of survivors, and
// returns the remaining count.
func (p *Pool) Cull() int {
	kept := p.particles[:0]
	for i := range p.particles {
		if p.particles[i].Alive {
			kept = append(kept, p.particles[i])
		}
	}
	p.particles = kept
	return len(kept)
}

// Snapshot returns a copy of the current particle states, for renderers and
// tests that must not alias pool memory.
func (p *Pool) Snapshot() []Particle {
	out := make([]Particle, len(p.particles))
	copy(out, p.particles)
	return out
}
