// Package registry holds the game factories. Game packages register themselves in
// init() so the CLI and SSH server can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dev0926/candy-tiles/internal/core"
)

// Game is what the platform drives: fixed-tick simulation, rendering into a screen
// buffer and a summary state. Games never import Bubble Tea.
type Game interface {
	// ID returns a unique identifier (e.g. "candy", "candy_endless").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Leveled is implemented by games that play numbered levels. The platform uses it to
// pick the starting level and to record completed-level progress.
type Leveled interface {
	// Level returns the level being played, 0 when the game has no levels.
	Level() int
	// StartAt selects the level the next Reset starts.
	StartAt(level int)
}

// Resizable is implemented by games that keep their state across terminal resizes.
// Games without it are reset on resize.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
