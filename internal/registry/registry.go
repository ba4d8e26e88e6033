// Package registry provides a global registry of chunk generators.
// Generators register under a short id, allowing configuration files and the
// CLI to pick the terrain rule of a world by name.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/axesporen/internal/world"
)

// Info contains metadata about a registered generator.
type Info struct {
	ID    string
	Title string
}

// Factory creates a generator drawing from rng. A nil rng means the global
// random source.
type Factory func(rng *rand.Rand) world.Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID.
// Returns an error if the ID is not registered.
func Create(id string, rng *rand.Rand) (world.Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", id)
	}

	return f(rng), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
