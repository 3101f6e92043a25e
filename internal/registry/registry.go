// Package registry maps game IDs to factories. Game packages register
// themselves from init(), so commands only need a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/skyhop-dev/skyhop/internal/core"
)

// Game is what a front end drives. Implementations hold only simulation
// state; timing, input decoding and display belong to the platform.
type Game interface {
	// ID is the stable key used on the command line and in the database.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run. The seed in cfg drives all randomness.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the whole current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Reporter is implemented by games that can summarize a finished run.
// The platform records the summary in run history.
type Reporter interface {
	Summary() core.RunSummary
}

// Tunable is implemented by games that accept a difficulty preset per instance.
type Tunable interface {
	SetDifficulty(preset string) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. Games call it from init().
// Registering the same id twice panics.
func Register(id string, f Factory) {
	// The title comes from a throwaway instance, built outside the lock
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns all registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a fresh instance of the game registered under id.
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
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
