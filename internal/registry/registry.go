// Package registry holds the contract between the platform and the game,
// and the roster of selectable heroes. Heroes register themselves in init()
// functions, allowing the platform to list them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// HeroInfo describes a selectable hero.
type HeroInfo struct {
	ID    string     // Stable identifier, stored with every run
	Title string     // Display name
	Slot  int        // Zero-based position on the select screen, bound to keys 1..n
	Color core.Color // Sprite color
}

// Key returns the select key label for the hero.
func (h HeroInfo) Key() string {
	return fmt.Sprintf("%d", h.Slot+1)
}

var (
	heroes = make(map[string]HeroInfo)
	mu     sync.RWMutex
)

// Register adds a hero to the roster.
// Typically called from the game package's init() function.
// Panics if the ID or slot is already taken.
func Register(h HeroInfo) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := heroes[h.ID]; exists {
		panic(fmt.Sprintf("registry: hero %q already registered", h.ID))
	}
	for _, other := range heroes {
		if other.Slot == h.Slot {
			panic(fmt.Sprintf("registry: slot %d of hero %q taken by %q", h.Slot, h.ID, other.ID))
		}
	}

	heroes[h.ID] = h
}

// List returns all registered heroes, sorted by slot.
func List() []HeroInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]HeroInfo, 0, len(heroes))
	for _, h := range heroes {
		result = append(result, h)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Slot < result[j].Slot
	})

	return result
}

// Lookup returns the hero with the given ID.
func Lookup(id string) (HeroInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	h, ok := heroes[id]
	return h, ok
}

// ByIndex returns the hero bound to the given slot.
func ByIndex(slot int) (HeroInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, h := range heroes {
		if h.Slot == slot {
			return h, true
		}
	}
	return HeroInfo{}, false
}

// Exists checks if a hero with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := heroes[id]
	return ok
}
