// Package registry provides a global registry of enemy factories.
// Enemy kinds register themselves in init() functions, allowing the CLI
// to discover and instantiate attackers without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/LilyAvelis/battle-arena/internal/battle"
)

// ErrNotRegistered is returned by Create for kinds nobody registered.
var ErrNotRegistered = errors.New("registry: kind not registered")

// EnemyInfo contains metadata about a registered enemy kind.
type EnemyInfo struct {
	Kind   string
	Title  string
	Damage int
}

// Factory creates a new attacker with the kind's default stats.
type Factory func() battle.Attacker

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds an enemy factory to the registry.
// Typically called from an enemy package's init() function.
// Panics if the kind is already registered.
func Register(kind, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[kind]; exists {
		panic(fmt.Sprintf("registry: enemy %q already registered", kind))
	}

	entries[kind] = entry{title: title, factory: f}
}

// List returns information about all registered kinds, sorted by kind.
func List() []EnemyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EnemyInfo, 0, len(entries))
	for kind, e := range entries {
		result = append(result, EnemyInfo{
			Kind:   kind,
			Title:  e.title,
			Damage: e.factory().Damage(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Create instantiates a new attacker by its kind.
func Create(kind string) (battle.Attacker, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, kind)
	}

	return e.factory(), nil
}

// Title returns the display name for a kind, or the kind itself if unknown.
func Title(kind string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[kind]; ok {
		return e.title
	}
	return kind
}

// Exists checks if a kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[kind]
	return ok
}
