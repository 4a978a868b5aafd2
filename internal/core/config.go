package core

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied where the config leaves a value unset.
const (
	DefaultTurnProb = 50                    // Percent chance of a direction change per frame
	DefaultDelay    = 25 * time.Millisecond // Inter-frame delay
	MaxTurnProb     = 100
	MaxDim          = 255 // Largest supported plane dimension and particle count
)

// ErrBadConfig is wrapped by all configuration validation failures.
var ErrBadConfig = errors.New("core: invalid config")

// Config describes one simulation run. It is immutable once the run starts.
type Config struct {
	Width     int    // Plane width in cells, [1, MaxDim]
	Height    int    // Plane height in cells, [1, MaxDim]
	Particles int    // Number of particles to spawn, [1, MaxDim]
	TurnProb  *uint8 // Percent chance per particle per frame; nil means DefaultTurnProb, explicit 0 means never turn
	Delay     time.Duration
	Seed      int64 // RNG seed for deterministic runs; 0 means use current time in the platform layer
}

// Validate checks the config before a run starts. Rejected configs never
// produce a frame.
func (c Config) Validate() error {
	if c.Width < 1 || c.Width > MaxDim {
		return fmt.Errorf("%w: width %d not in [1,%d]", ErrBadConfig, c.Width, MaxDim)
	}
	if c.Height < 1 || c.Height > MaxDim {
		return fmt.Errorf("%w: height %d not in [1,%d]", ErrBadConfig, c.Height, MaxDim)
	}
	if c.Particles < 1 || c.Particles > MaxDim {
		return fmt.Errorf("%w: particle count %d not in [1,%d]", ErrBadConfig, c.Particles, MaxDim)
	}
	if c.TurnProb != nil && *c.TurnProb > MaxTurnProb {
		return fmt.Errorf("%w: turn probability %d exceeds %d", ErrBadConfig, *c.TurnProb, MaxTurnProb)
	}
	return nil
}

// EffectiveTurnProb resolves the turn probability, applying the default when
// the value is unset. An explicit 0 is honored: the particle never turns.
func (c Config) EffectiveTurnProb() uint8 {
	if c.TurnProb == nil {
		return DefaultTurnProb
	}
	return *c.TurnProb
}

// EffectiveDelay resolves the inter-frame delay, applying the default when
// the value is zero.
func (c Config) EffectiveDelay() time.Duration {
	if c.Delay <= 0 {
		return DefaultDelay
	}
	return c.Delay
}

// TurnProbOf is a convenience for building a Config literal with an explicit
// turn probability.
func TurnProbOf(p uint8) *uint8 {
	return &p
}
