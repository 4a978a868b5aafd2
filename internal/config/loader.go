package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the presets file.
// Search order: customPath -> ~/.driftwalk/presets.yaml -> ./presets.yaml -> embedded default
func Load(customPath string) (File, error) {
	var f File

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return f, fmt.Errorf("failed to read presets %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("failed to parse presets %s: %w", customPath, err)
		}
		return f, nil
	}

	// Try user config directory
	if userPath := userConfigPath("presets.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &f); err == nil {
				return f, nil
			}
		}
	}

	// Try local presets file
	if data, err := os.ReadFile("presets.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &f); err == nil {
			return f, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPresetsYAML, &f); err != nil {
		return DefaultPresets(), nil // Fallback to hardcoded if embed fails
	}
	return f, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".driftwalk", filename)
}
