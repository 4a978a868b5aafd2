package config

import (
	_ "embed"
)

//go:embed presets/presets.yaml
var defaultPresetsYAML []byte

// DefaultPresets returns the built-in presets, used when no YAML source is
// available at all (including a broken embed).
func DefaultPresets() File {
	return File{
		Presets: map[string]Preset{
			"default": {
				Particles: 10,
				DelayMS:   25,
			},
			"swarm": {
				Particles: 200,
				TurnProb:  probOf(70),
				DelayMS:   15,
			},
			"drifters": {
				Particles: 40,
				TurnProb:  probOf(0),
				DelayMS:   40,
			},
			"jitter": {
				Width:     80,
				Height:    40,
				Particles: 60,
				TurnProb:  probOf(100),
				DelayMS:   25,
			},
		},
	}
}

func probOf(p uint8) *uint8 {
	return &p
}
