package sim

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/skyhop-dev/skyhop/internal/config"
)

func TestNewWorldInitialState(t *testing.T) {
	w, _ := newTestWorld()

	if w.Player.X != 50 || w.Player.Y != 300 {
		t.Errorf("player at (%v, %v), expected (50, 300)", w.Player.X, w.Player.Y)
	}
	if len(w.Platforms) != 1 {
		t.Fatalf("expected only the start platform, got %d", len(w.Platforms))
	}
	if want := (Platform{X: 0, Y: 350, Width: 400, Height: 50}); w.Platforms[0] != want {
		t.Errorf("start platform = %+v, expected %+v", w.Platforms[0], want)
	}
	if w.lastPlatformX != 400 || w.lastPlatformY != 350 {
		t.Errorf("frontier = (%v, %v), expected (400, 350)", w.lastPlatformX, w.lastPlatformY)
	}
	if w.GameOver || w.PowerActive || w.CameraX != 0 {
		t.Error("new world should be running with no power and camera at origin")
	}
}

func TestFirstStepGeneratesAhead(t *testing.T) {
	w, _ := newTestWorld()
	standOnStart(w)

	w.Step(Controls{})

	if len(w.Platforms) < 2 {
		t.Fatal("first step should generate platforms ahead of the camera")
	}
	if w.lastPlatformX < w.CameraX+400+300 {
		t.Errorf("frontier %v short of lookahead", w.lastPlatformX)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w, _ := newTestWorld()

	tests := []struct {
		x    float64
		want float64
	}{
		{50, 0},
		{180, 0},
		{1000, 820},
		{-300, 0},
	}

	for _, tc := range tests {
		w.Player.X = tc.x
		w.updateCamera()
		if w.CameraX != tc.want {
			t.Errorf("player x=%v: CameraX = %v, expected %v", tc.x, w.CameraX, tc.want)
		}
	}
}

func TestPrune(t *testing.T) {
	w, _ := newTestWorld()
	w.CameraX = 2000
	w.Platforms = []Platform{
		{X: 0, Y: 350, Width: 400, Height: 50},
		{X: 1100, Y: 300, Width: 100, Height: 20}, // right edge exactly at the trail
		{X: 1150, Y: 300, Width: 100, Height: 20},
	}
	w.Enemies = []Enemy{
		{X: 2100, Y: 499},
		{X: 2100, Y: 500},
	}
	w.PowerUps = []PowerUp{
		{X: 2100, Y: 449},
		{X: 2100, Y: 450},
	}

	w.prune()

	if len(w.Platforms) != 1 || w.Platforms[0].X != 1150 {
		t.Errorf("platforms = %+v, expected only x=1150 kept", w.Platforms)
	}
	if len(w.Enemies) != 1 || w.Enemies[0].Y != 499 {
		t.Errorf("enemies = %+v, expected only y=499 kept", w.Enemies)
	}
	if len(w.PowerUps) != 1 || w.PowerUps[0].Y != 449 {
		t.Errorf("power-ups = %+v, expected only y=449 kept", w.PowerUps)
	}
}

func TestStepPrunesBehindCamera(t *testing.T) {
	w, _ := newTestWorld()
	w.Platforms = append(w.Platforms, Platform{X: 2950, Y: 350, Width: 200, Height: 20})
	w.Player.X = 3000
	standOnStart(w)

	w.Step(Controls{})

	if w.CameraX != 2820 {
		t.Fatalf("CameraX = %v, expected 2820", w.CameraX)
	}
	for _, p := range w.Platforms {
		if p.X+p.Width <= w.CameraX-800 {
			t.Errorf("platform %+v should have been pruned", p)
		}
	}
	if w.Player.Airborne {
		t.Error("player should have landed on the far platform")
	}
}

func TestDefeatedEnemyEventuallyPruned(t *testing.T) {
	w, _ := newTestWorld()
	standOnStart(w)
	w.Enemies = []Enemy{{X: 300, Y: 480, Dir: 1, Alive: false, PlatformY: 350}}

	for i := 0; i < 10; i++ {
		w.Step(Controls{})
	}
	if len(w.Enemies) != 0 {
		t.Errorf("falling enemy should be pruned below the viewport, got %+v", w.Enemies)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	w, _ := newTestWorld(0.1, 0.5, 0.5, 0.1, 0.2, 0.1, 0.5)
	standOnStart(w)
	for i := 0; i < 30; i++ {
		w.Step(Controls{Right: true})
	}
	w.Player.Y = 900
	w.Step(Controls{})
	if !w.GameOver {
		t.Fatal("setup: expected game over")
	}

	w.Reset()

	if w.Player.X != 50 || w.Player.Y != 300 || w.Player.VY != 0 {
		t.Errorf("player = %+v, expected spawn at rest", w.Player)
	}
	if w.Player.JumpsLeft != 2 {
		t.Errorf("JumpsLeft = %d, expected 2", w.Player.JumpsLeft)
	}
	if len(w.Platforms) != 1 || len(w.Enemies) != 0 || len(w.PowerUps) != 0 {
		t.Errorf("collections not reset: %d platforms, %d enemies, %d power-ups",
			len(w.Platforms), len(w.Enemies), len(w.PowerUps))
	}
	if w.GameOver || w.Cause != CauseNone || w.PowerActive || w.PowerTimer != 0 || w.CameraX != 0 {
		t.Error("flags not reset")
	}
	if w.lastPowerX != 0 || w.lastPlatformX != 400 {
		t.Error("generator frontier not reset")
	}
	if s := w.Stats(); s.Ticks != 0 || s.Distance() != 0 {
		t.Errorf("stats not reset: %+v", s)
	}

	if res := w.Step(Controls{}); !res.Advanced {
		t.Error("world should step again after reset")
	}
}

func TestDeterministicForSeed(t *testing.T) {
	run := func() []Snapshot {
		w := NewWorld(config.DefaultSkyhopConfig(), rand.New(rand.NewSource(42)))
		var frames []Snapshot
		for i := 0; i < 600; i++ {
			w.Step(Controls{Right: true, Jump: i%40 == 0})
			frames = append(frames, w.Snapshot())
		}
		return frames
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed and input diverged")
	}
}

func TestScore(t *testing.T) {
	w, _ := newTestWorld()
	standOnStart(w)

	for i := 0; i < 10; i++ {
		w.Step(Controls{Right: true})
	}
	if d := w.Stats().Distance(); d != 50 {
		t.Fatalf("Distance() = %v, expected 50", d)
	}
	if w.Score() != 5 {
		t.Errorf("Score() = %d, expected 5", w.Score())
	}

	// Walking back does not lose distance
	for i := 0; i < 4; i++ {
		w.Step(Controls{Left: true})
	}
	if w.Score() != 5 {
		t.Errorf("Score() = %d, expected 5 after walking back", w.Score())
	}
}

func TestSnapshot(t *testing.T) {
	w, _ := newTestWorld()
	w.Enemies = []Enemy{
		{X: 100, Y: 320, Dir: 1, Alive: true},
		{X: 200, Y: 320, Dir: 1, Alive: false},
	}
	w.PowerUps = []PowerUp{{X: 300, Y: 325}}
	w.PowerActive = true
	w.PowerTimer = 42

	s := w.Snapshot()

	if len(s.Enemies) != 1 {
		t.Fatalf("expected only live enemies, got %d", len(s.Enemies))
	}
	want := Triangle{A: Point{100, 350}, B: Point{115, 320}, C: Point{130, 350}}
	if s.Enemies[0] != want {
		t.Errorf("triangle = %+v, expected %+v", s.Enemies[0], want)
	}
	if len(s.PowerUps) != 1 || s.PowerUps[0] != (Circle{CX: 310, CY: 335, R: 10}) {
		t.Errorf("power-ups = %+v", s.PowerUps)
	}
	if !s.Empowered || s.PowerTicksLeft != 42 {
		t.Error("snapshot should carry power state")
	}
	if s.ViewW != 400 || s.ViewH != 400 {
		t.Errorf("viewport = %vx%v, expected 400x400", s.ViewW, s.ViewH)
	}
	if len(s.Platforms) != 1 || s.Player.X != 50 {
		t.Error("snapshot should carry platforms and player")
	}
}

func TestEndCauseString(t *testing.T) {
	for cause, want := range map[EndCause]string{
		CauseNone:  "none",
		CauseFell:  "fell",
		CauseEnemy: "enemy",
	} {
		if got := cause.String(); got != want {
			t.Errorf("EndCause(%d).String() = %q, expected %q", int(cause), got, want)
		}
	}
}
