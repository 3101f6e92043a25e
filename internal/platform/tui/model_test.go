package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/games/skyhop"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *skyhop.Game) {
	t.Helper()
	game := skyhop.New()
	m := NewGameModel(game, store, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     7,
	}, "tester")
	m.Init()
	return m, game
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	return send(t, m, TickMsg{})
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameModelHeldMovement(t *testing.T) {
	m, game := newTestModel(t, nil)
	x := game.World().Player.X

	m = send(t, m, runeKey('d'))
	m = tick(t, m)
	if got := game.World().Player.X; got != x+5 {
		t.Fatalf("x = %v, expected %v after one tick", got, x+5)
	}

	// No further key events: the hold keeps the player moving
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if got := game.World().Player.X; got != x+30 {
		t.Errorf("x = %v, expected %v while held", got, x+30)
	}

	// Pressing left releases right
	m = send(t, m, runeKey('a'))
	tick(t, m)
	if got := game.World().Player.X; got != x+25 {
		t.Errorf("x = %v, expected %v after turning around", got, x+25)
	}
}

func TestGameModelHoldExpires(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = send(t, m, runeKey('d'))
	for i := 0; i < holdWindow(60); i++ {
		m = tick(t, m)
	}
	x := game.World().Player.X

	tick(t, m)
	if game.World().Player.X != x {
		t.Error("movement should stop once the hold window elapses")
	}
}

func TestGameModelJumpIsEdgeTriggered(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	if game.World().Player.JumpsLeft != 1 {
		t.Fatalf("JumpsLeft = %d, expected 1", game.World().Player.JumpsLeft)
	}

	tick(t, m)
	if game.World().Player.JumpsLeft != 1 {
		t.Error("a single key press should jump only once")
	}
}

func TestGameModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, store)

	game.World().Player.X = 500 // some distance for a non-zero score
	m = tick(t, m)
	game.World().Player.Y = 900
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	m = tick(t, m)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 run, got %d", len(runs))
	}
	if runs[0].Cause != "fell" || runs[0].SessionID != "tester" || runs[0].GameID != "skyhop" {
		t.Errorf("run = %+v", runs[0])
	}

	high, _ := store.HighScore("skyhop")
	if high != runs[0].Score || high == 0 {
		t.Errorf("high score = %d, run score = %d", high, runs[0].Score)
	}
}

func TestGameModelRestart(t *testing.T) {
	m, game := newTestModel(t, nil)
	game.World().Player.Y = 900
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = send(t, m, runeKey('r'))
	m = tick(t, m)

	if m.State().GameOver {
		t.Error("restart should start a new run")
	}
	if game.World().Player.X != 50 {
		t.Errorf("player x = %v, expected respawn", game.World().Player.X)
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	m, game := newTestModel(t, nil)

	// Back while playing pauses
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if !m.State().Paused || m.BackToMenu() {
		t.Fatal("first back should pause the game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}
	if game.World() == nil {
		t.Error("game should still exist")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m, game := newTestModel(t, nil)
	m.standalone = true
	game.World().Player.Y = 900
	m = tick(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("back after game over should quit standalone play")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = send(t, m, runeKey('d'))
	m = tick(t, m)
	x := game.World().Player.X

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.World().Player.X != x {
		t.Error("resizing should not reset the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}
