package modes

import (
	"testing"

	"github.com/vovakirdan/gridmerge/internal/engine"
)

func TestRegisterAndCreate(t *testing.T) {
	Register("test_blitz", "Blitz", func() engine.Config {
		return engine.Config{Size: 4, Target: 512, TimeBudget: 60}
	})

	if !Exists("test_blitz") {
		t.Error("Exists(test_blitz) = false after Register")
	}

	cfg, err := Create("test_blitz")
	if err != nil {
		t.Fatalf("Create(test_blitz) failed: %v", err)
	}
	if cfg.Target != 512 || cfg.TimeBudget != 60 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestCreateUnknownMode(t *testing.T) {
	if _, err := Create("no_such_mode"); err == nil {
		t.Error("Create of an unregistered mode should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_a_mode", "A", func() engine.Config { return engine.Config{} })
	Register("test_z_mode", "Z", func() engine.Config { return engine.Config{} })

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name > infos[i].Name {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].Name, infos[i].Name)
		}
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()

	Register("test_dup", "Dup", func() engine.Config { return engine.Config{} })
	Register("test_dup", "Dup", func() engine.Config { return engine.Config{} })
}
