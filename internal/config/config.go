// Package config provides YAML-based preset loading for simulation runs.
package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/mkallin/driftwalk/internal/core"
)

// Preset is a named bundle of simulation parameters.
// Zero width/height mean "size to the terminal"; the CLI fills those in
// before the core ever sees them.
type Preset struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Particles int    `yaml:"particles"`
	TurnProb  *uint8 `yaml:"turn_prob"` // omitted = engine default, 0 = never turn
	DelayMS   int    `yaml:"delay_ms"`  // 0 = engine default
}

// File is the on-disk shape of a presets YAML file.
type File struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Config converts the preset into a core run config with the given seed.
// Auto-sized dimensions must already be resolved by the caller.
func (p Preset) Config(seed int64) core.Config {
	return core.Config{
		Width:     p.Width,
		Height:    p.Height,
		Particles: p.Particles,
		TurnProb:  p.TurnProb,
		Delay:     time.Duration(p.DelayMS) * time.Millisecond,
		Seed:      seed,
	}
}

// Lookup returns the named preset.
func (f File) Lookup(name string) (Preset, error) {
	p, ok := f.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("config: unknown preset %q", name)
	}
	return p, nil
}

// Names returns all preset names, sorted.
func (f File) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
