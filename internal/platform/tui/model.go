package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/registry"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game.
// It is used directly by the play command and embedded in menu sessions.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	sessionID string
	logger    *log.Logger

	keyMapper *KeyMapper
	hold      *core.HoldTracker
	pending   core.InputFrame // Edge-triggered actions since the last tick
	gameState core.GameState

	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
// sessionID tags saved runs; it is empty for local play.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sessionID string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		sessionID: sessionID,
		keyMapper: NewKeyMapper(),
		hold:      core.NewHoldTracker(holdWindow(cfg.TickRate)),
		pending:   core.NewInputFrame(),
	}
}

// WithLogger sets the logger used to report storage failures.
func (m GameModel) WithLogger(l *log.Logger) GameModel {
	m.logger = l
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has fixed dimensions, so only the view is resized.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.hold.Press(action)
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
			return m, nil
		}
		// Back during play pauses first
		m.pending.Set(core.ActionPause)
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.hold.Apply(&frame)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.hold.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if result.GameOverEntered {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the finished run. Storage is best-effort: a failure is
// logged and play continues.
func (m GameModel) recordRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logError("could not save score", err)
		}
	}

	if r, ok := m.game.(registry.Reporter); ok {
		if _, err := m.store.SaveRun(m.game.ID(), m.sessionID, r.Summary()); err != nil {
			m.logError("could not save run", err)
		}
	}
}

func (m GameModel) logError(msg string, err error) {
	if m.logger != nil {
		m.logger.Error(msg, "game", m.game.ID(), "session", m.sessionID, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text under
// ~/.skyhop/screenshots.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	m.game.Render(m.screen)

	dir := filepath.Join(home, ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logError("could not create screenshot directory", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logError("could not save screenshot", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg, "")
	model.standalone = true
	model.logger = log.Default()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
