// Package skyhop adapts the Sky Hop simulation to the arcade platform.
// The world runs in its own units; Render scales it onto the character grid.
package skyhop

import (
	"math/rand"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/games/skyhop/sim"
	"github.com/skyhop-dev/skyhop/internal/registry"
)

// Game implements registry.Game on top of a sim.World.
type Game struct {
	world   *sim.World
	runtime core.RuntimeConfig
	paused  bool

	preset    config.DifficultyPreset
	hasPreset bool // preset overrides the package-wide default
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the package-wide difficulty preset.
// An unknown preset is rejected and the current one is kept.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// New creates a new Sky Hop game instance.
func New() *Game {
	return &Game{}
}

// SetDifficulty sets the preset for this instance only, taking effect on
// the next Reset. SSH sessions use it so they do not share a preset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	g.preset = p
	g.hasPreset = true
	return nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hop"
}

// Reset loads configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSkyhop(configPath)
	if err != nil {
		cfg = config.DefaultSkyhopConfig()
	}
	preset := difficultyPreset
	if g.hasPreset {
		preset = g.preset
	}
	if preset != "" {
		config.ApplySkyhopPreset(&cfg, preset)
	}

	g.world = sim.NewWorld(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
}

// Step advances the world by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.world.Step(controls(in))

	return core.StepResult{
		State:           g.State(),
		GameOverEntered: res.GameOverEntered,
	}
}

// controls maps platform actions onto simulation input.
func controls(in core.InputFrame) sim.Controls {
	return sim.Controls{
		Right: in.Has(core.ActionRight),
		Left:  in.Has(core.ActionLeft),
		Jump:  in.Has(core.ActionJump),
	}
}

// World exposes the running simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver,
		Paused:   g.paused,
	}
}

// Summary reports the current run for history.
func (g *Game) Summary() core.RunSummary {
	st := g.world.Stats()
	return core.RunSummary{
		Score:             g.world.Score(),
		Distance:          st.Distance(),
		Ticks:             st.Ticks,
		Jumps:             st.Jumps,
		EnemiesDefeated:   st.EnemiesDefeated,
		PowerUpsCollected: st.PowerUpsCollected,
		Cause:             g.world.Cause.String(),
	}
}

// Register the game with the registry
func init() {
	registry.Register("skyhop", func() registry.Game {
		return New()
	})
}
