package config

import (
	_ "embed"
)

//go:embed defaults/modes.yaml
var defaultModesYAML []byte

// DefaultModes returns the built-in mode presets. Used as the final
// fallback when no modes file can be loaded.
func DefaultModes() ModesConfig {
	return ModesConfig{
		Modes: map[string]ModePreset{
			"classic": {
				Title:  "Classic",
				Size:   4,
				Target: 2048,
			},
			"adventure": {
				Title:      "Adventure",
				Size:       4,
				Target:     2048,
				MoveBudget: 500,
				Collect:    map[int]int{256: 3, 512: 1},
			},
			"swift": {
				Title:      "Swift",
				Size:       4,
				Target:     2048,
				TimeBudget: 300,
			},
		},
	}
}

// DefaultModesYAML returns the embedded default modes document.
func DefaultModesYAML() []byte {
	return defaultModesYAML
}
