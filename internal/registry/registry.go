// Package registry keeps the factories of the playable game modes.
// Game packages register from init(), so the CLI, menus and SSH sessions
// discover them without importing each one by name.
//
// A mode ID is "<base>" or "<base>_<variant>" (for example "spiral" and
// "spiral_endless"). Menus list base modes and reach variants through a
// mode selector.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/spiral/internal/core"
)

// Game is what the platform drives. Implementations are pure logic: no
// terminal, no timing, no storage.
type Game interface {
	// ID is the mode ID used on the command line and as the score key.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizable is implemented by games that can adapt to a new terminal size
// without restarting. The platform falls back to Reset for other games.
type Resizable interface {
	Resize(cols, rows int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID      string
	Title   string
	Base    string // ID of the base mode
	Variant string // "" for the base mode itself
}

// IsVariant reports whether the mode is a variant of another one.
func (g GameInfo) IsVariant() bool {
	return g.Variant != ""
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	base, variant, _ := strings.Cut(id, "_")
	entries[id] = entry{
		info: GameInfo{
			ID:      id,
			Title:   f().Title(),
			Base:    base,
			Variant: variant,
		},
		factory: f,
	}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	return collect(func(GameInfo) bool { return true })
}

// Primary returns the base modes only.
func Primary() []GameInfo {
	return collect(func(g GameInfo) bool { return !g.IsVariant() })
}

// Family returns the base mode and all of its variants.
func Family(base string) []GameInfo {
	return collect(func(g GameInfo) bool { return g.Base == base })
}

func collect(keep func(GameInfo) bool) []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		if keep(e.info) {
			result = append(result, e.info)
		}
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Info returns the metadata of a registered mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
