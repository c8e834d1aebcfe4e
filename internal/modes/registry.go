// Package modes provides a registry of named game modes. A mode is a
// factory for an engine configuration: the same board engine plays
// every mode, only the budgets and targets differ. The driver registers
// its loaded presets at startup and looks modes up by name.
package modes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridmerge/internal/engine"
)

// Info contains metadata about a registered mode.
type Info struct {
	Name  string
	Title string
}

// Factory is a function that produces the engine configuration for a
// mode. Called once per game; the returned config must not share
// mutable state across calls.
type Factory func() engine.Config

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same name is already registered.
func Register(name, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("modes: mode %q already registered", name))
	}

	factories[name] = f
	titles[name] = title
}

// List returns information about all registered modes, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds the engine configuration for a mode by its name.
// Returns an error if the mode is not registered.
func Create(name string) (engine.Config, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return engine.Config{}, fmt.Errorf("modes: unknown mode %q", name)
	}

	return f(), nil
}

// Exists checks if a mode with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
