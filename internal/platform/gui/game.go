// Package gui runs Sky Hop in a desktop window with Ebiten.
// The logical screen is the world's native 400×400 view.
package gui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/games/skyhop"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

// keyBindings lists the keys for each action. Left and Right are read as
// held; everything else fires once per press.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR, ebiten.KeyEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// keyState abstracts the keyboard so input mapping can be tested without
// a window.
type keyState struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var liveKeys = keyState{
	pressed:     ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

// readInput builds the input frame for one tick.
func readInput(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range keyBindings {
		check := ks.justPressed
		if action == core.ActionLeft || action == core.ActionRight {
			check = ks.pressed
		}
		for _, k := range keys {
			if check(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// Game implements ebiten.Game around a Sky Hop instance.
type Game struct {
	game    *skyhop.Game
	store   *storage.Store
	config  core.RuntimeConfig
	logger  *log.Logger
	keys    keyState
	state   core.GameState
	painter *painter
}

// New creates a window game. store may be nil to skip run history.
func New(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		game:    skyhop.New(),
		store:   store,
		config:  cfg,
		logger:  logger,
		keys:    liveKeys,
		painter: newPainter(),
	}
	g.game.Reset(cfg)
	return g
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	return g.update(readInput(g.keys))
}

func (g *Game) update(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.config.Seed = time.Now().UnixNano()
		g.game.Reset(g.config)
		g.state = g.game.State()
		return nil
	}

	result := g.game.Step(in)
	g.state = result.State
	if result.GameOverEntered {
		g.recordRun()
	}
	return nil
}

// recordRun saves the finished run. Failures are logged and play goes on.
func (g *Game) recordRun() {
	if g.store == nil {
		return
	}

	if g.state.Score > 0 {
		if _, err := g.store.SaveScore(g.game.ID(), g.state.Score); err != nil {
			g.logger.Error("could not save score", "error", err)
		}
	}
	if _, err := g.store.SaveRun(g.game.ID(), "", g.game.Summary()); err != nil {
		g.logger.Error("could not save run", "error", err)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.draw(screen, g.game.World().Snapshot(), g.state.Paused)
}

// Layout keeps the logical screen at the world's size; Ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.game.World().Config().Viewport
	return int(cfg.Width), int(cfg.Height)
}

// Run opens the window and plays until it is closed.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	g := New(store, cfg, log.Default())

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	return ebiten.RunGame(g)
}
