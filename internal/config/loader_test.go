package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadModesEmbeddedDefault(t *testing.T) {
	cfg, err := LoadModes("")
	if err != nil {
		t.Fatalf("LoadModes() failed: %v", err)
	}

	for _, name := range []string{"classic", "adventure", "swift"} {
		if _, ok := cfg.Modes[name]; !ok {
			t.Errorf("default modes missing %q", name)
		}
	}

	adventure := cfg.Modes["adventure"]
	if adventure.MoveBudget == 0 {
		t.Error("adventure mode should have a move budget")
	}
	if len(adventure.Collect) == 0 {
		t.Error("adventure mode should have collection targets")
	}

	swift := cfg.Modes["swift"]
	if swift.TimeBudget == 0 {
		t.Error("swift mode should have a time budget")
	}
}

func TestLoadModesCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "modes.yaml")
	doc := `modes:
  mini:
    title: Mini
    size: 3
    target: 64
    move_budget: 25
    collect:
      16: 2
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := LoadModes(path)
	if err != nil {
		t.Fatalf("LoadModes(%s) failed: %v", path, err)
	}

	mini, ok := cfg.Modes["mini"]
	if !ok {
		t.Fatal("custom config missing mode mini")
	}
	if mini.Size != 3 || mini.Target != 64 || mini.MoveBudget != 25 {
		t.Errorf("unexpected preset values: %+v", mini)
	}
	if mini.Collect[16] != 2 {
		t.Errorf("Collect[16] = %d, want 2", mini.Collect[16])
	}
}

func TestLoadModesMissingCustomPath(t *testing.T) {
	if _, err := LoadModes("/nonexistent/modes.yaml"); err == nil {
		t.Error("LoadModes with a missing explicit path should fail")
	}
}

func TestEngineConfigConversion(t *testing.T) {
	preset := ModePreset{
		Size:       5,
		Target:     1024,
		MoveBudget: 100,
		TimeBudget: 60,
		Collect:    map[int]int{128: 2},
	}

	cfg := preset.EngineConfig()
	if cfg.Size != 5 || cfg.Target != 1024 || cfg.MoveBudget != 100 || cfg.TimeBudget != 60 {
		t.Errorf("unexpected engine config: %+v", cfg)
	}
	if cfg.Collect[128] != 2 {
		t.Errorf("Collect[128] = %d, want 2", cfg.Collect[128])
	}

	// The converted map must not alias the preset's.
	cfg.Collect[128] = 99
	if preset.Collect[128] != 2 {
		t.Error("EngineConfig aliases the preset's collect map")
	}
}
