package skyhop

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/games/skyhop/sim"
	"github.com/skyhop-dev/skyhop/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "skyhop" {
		t.Errorf("ID() = %q, expected skyhop", g.ID())
	}
	if g.Title() != "Sky Hop" {
		t.Errorf("Title() = %q, expected Sky Hop", g.Title())
	}
	if !registry.Exists("skyhop") {
		t.Error("skyhop should register itself")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g := New()
		g.Reset(testRuntime(12345))
		for i := 0; i < 300; i++ {
			in := input(core.ActionRight)
			if i%30 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if !reflect.DeepEqual(g1.World().Snapshot(), g2.World().Snapshot()) {
		t.Error("same seed and inputs should produce identical worlds")
	}
	if g1.State() != g2.State() {
		t.Errorf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestGameControlsMapping(t *testing.T) {
	c := controls(input(core.ActionLeft, core.ActionJump))
	if !c.Left || c.Right || !c.Jump {
		t.Errorf("controls = %+v, expected left and jump", c)
	}
	if c := controls(core.NewInputFrame()); c.Left || c.Right || c.Jump {
		t.Errorf("empty frame should map to no controls, got %+v", c)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	ticks := g.World().Stats().Ticks
	x := g.World().Player.X
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionRight))
	}
	if g.World().Stats().Ticks != ticks || g.World().Player.X != x {
		t.Error("paused game should not advance")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameOverEnteredOnce(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.World().Player.Y = 900

	res := g.Step(core.NewInputFrame())
	if !res.GameOverEntered || !res.State.GameOver {
		t.Fatalf("result = %+v, expected game over entered", res)
	}

	res = g.Step(core.NewInputFrame())
	if res.GameOverEntered {
		t.Error("game over should only be entered once")
	}
	if !res.State.GameOver {
		t.Error("game should stay over")
	}

	if s := g.Summary(); s.Cause != "fell" {
		t.Errorf("Summary().Cause = %q, expected fell", s.Cause)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	for i := 0; i < 50; i++ {
		g.Step(input(core.ActionRight))
	}
	g.Step(input(core.ActionPause))

	g.Reset(testRuntime(42))

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("Reset should clear state, got %+v", st)
	}
	if g.World().Player.X != 50 {
		t.Errorf("Reset should respawn the player, x = %v", g.World().Player.X)
	}
}

func TestGameConfigAndPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyhop.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0.9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		SetConfigPath("")
		_ = SetDifficultyPreset("")
	})

	g := New()
	g.Reset(testRuntime(1))

	cfg := g.World().Config()
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("gravity = %v, expected 0.9 from custom config", cfg.Physics.Gravity)
	}
	if cfg.Enemies.SpawnChance != 0.45 {
		t.Errorf("enemy spawn chance = %v, expected hard preset 0.45", cfg.Enemies.SpawnChance)
	}

	if err := SetDifficultyPreset("bogus"); err == nil {
		t.Error("unknown preset should be rejected")
	}
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("rejected preset should keep %q, got %q", config.DifficultyHard, difficultyPreset)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Player box (50,300,40,40) scaled by 0.2 x 0.0575 below one HUD row
	if cell := screen.GetCell(10, 18); cell.Rune != PlayerChar || cell.Color != core.ColorRed {
		t.Errorf("player cell = %+v, expected red player", cell)
	}
	if cell := screen.GetCell(0, 21); cell.Rune != PlatformChar || cell.Color != core.ColorGreen {
		t.Errorf("platform cell = %+v, expected green platform", cell)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Jumps: ●●") {
		t.Errorf("HUD row = %q, expected two jump charges", screen.Row(0))
	}
}

func TestGameRenderHUDRowMasksWorld(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	w := g.World()
	w.Platforms = append(w.Platforms, sim.Platform{X: w.CameraX, Y: -20, Width: 400, Height: 40})
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if cell := screen.GetCell(70, 0); cell.Rune != ' ' || cell.Color != core.ColorDefault {
		t.Errorf("HUD cell = %+v, expected blank default cell over the platform", cell)
	}
	if cell := screen.GetCell(70, 1); cell.Rune != PlatformChar {
		t.Errorf("cell below HUD = %+v, expected platform", cell)
	}
}

func TestGameRenderEmpowered(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.World().PowerActive = true
	g.World().PowerTimer = 600
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if cell := screen.GetCell(10, 18); cell.Color != core.ColorOrange {
		t.Errorf("empowered player color = %v, expected orange", cell.Color)
	}
	if !strings.Contains(screen.Row(0), "POWER 10s") {
		t.Errorf("HUD row = %q, expected power countdown", screen.Row(0))
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.World().Player.Y = 900
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "you fell") {
		t.Error("game over box should name the cause")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("game over box should offer a restart")
	}
}

func TestGameInstanceDifficulty(t *testing.T) {
	g := New()
	if err := g.SetDifficulty("easy"); err != nil {
		t.Fatalf("SetDifficulty() failed: %v", err)
	}
	g.Reset(testRuntime(1))

	if got := g.World().Config().Enemies.SpawnChance; got != 0.2 {
		t.Errorf("enemy spawn chance = %v, expected easy preset 0.2", got)
	}

	other := New()
	other.Reset(testRuntime(1))
	if got := other.World().Config().Enemies.SpawnChance; got != 0.3 {
		t.Errorf("other instance spawn chance = %v, expected default 0.3", got)
	}

	if err := g.SetDifficulty("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}

	var _ registry.Tunable = g
	var _ registry.Reporter = g
}
