package core

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Width: 80, Height: 24, Particles: 10}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid defaults", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"zero height", func(c *Config) { c.Height = 0 }, false},
		{"zero particles", func(c *Config) { c.Particles = 0 }, false},
		{"width over max", func(c *Config) { c.Width = 256 }, false},
		{"particles over max", func(c *Config) { c.Particles = 300 }, false},
		{"probability 100", func(c *Config) { c.TurnProb = TurnProbOf(100) }, true},
		{"probability 150", func(c *Config) { c.TurnProb = TurnProbOf(150) }, false},
		{"explicit zero probability", func(c *Config) { c.TurnProb = TurnProbOf(0) }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("Validate() = nil, expected error")
				}
				if !errors.Is(err, ErrBadConfig) {
					t.Errorf("error %v does not wrap ErrBadConfig", err)
				}
			}
		})
	}
}

func TestEffectiveTurnProb(t *testing.T) {
	unset := Config{}
	if got := unset.EffectiveTurnProb(); got != DefaultTurnProb {
		t.Errorf("unset probability resolved to %d, expected default %d", got, DefaultTurnProb)
	}

	// Explicit zero is a real value, not the unset sentinel
	zero := Config{TurnProb: TurnProbOf(0)}
	if got := zero.EffectiveTurnProb(); got != 0 {
		t.Errorf("explicit zero probability resolved to %d, expected 0", got)
	}

	full := Config{TurnProb: TurnProbOf(100)}
	if got := full.EffectiveTurnProb(); got != 100 {
		t.Errorf("probability 100 resolved to %d", got)
	}
}

func TestEffectiveDelay(t *testing.T) {
	unset := Config{}
	if got := unset.EffectiveDelay(); got != DefaultDelay {
		t.Errorf("unset delay resolved to %v, expected %v", got, DefaultDelay)
	}

	cfg := Config{Delay: 100 * time.Millisecond}
	if got := cfg.EffectiveDelay(); got != 100*time.Millisecond {
		t.Errorf("delay resolved to %v, expected 100ms", got)
	}
}
