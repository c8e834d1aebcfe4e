// Package config provides YAML-based game mode presets for the
// gridmerge driver. The engine itself never reads configuration;
// presets are resolved to plain engine configs before a game starts.
package config

import (
	"github.com/vovakirdan/gridmerge/internal/engine"
)

// ModePreset describes one named game mode.
type ModePreset struct {
	Title      string      `yaml:"title"`
	Size       int         `yaml:"size"`
	Target     int         `yaml:"target"`
	MoveBudget int         `yaml:"move_budget"`
	TimeBudget int         `yaml:"time_budget"`
	Collect    map[int]int `yaml:"collect"`
}

// ModesConfig is the root of the modes YAML document.
type ModesConfig struct {
	Modes map[string]ModePreset `yaml:"modes"`
}

// EngineConfig converts the preset into an engine configuration. The
// seed is left unset; drivers fill it in per game.
func (p ModePreset) EngineConfig() engine.Config {
	collect := make(map[int]int, len(p.Collect))
	for v, n := range p.Collect {
		collect[v] = n
	}
	if len(collect) == 0 {
		collect = nil
	}
	return engine.Config{
		Size:       p.Size,
		Target:     p.Target,
		MoveBudget: p.MoveBudget,
		TimeBudget: p.TimeBudget,
		Collect:    collect,
	}
}
