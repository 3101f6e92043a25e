package sim

import "github.com/skyhop-dev/skyhop/internal/core"

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Triangle is an enemy outline: two base corners and the apex.
type Triangle struct {
	A, B, C Point
}

// Circle is a power-up outline.
type Circle struct {
	CX, CY float64
	R      float64
}

// Snapshot is everything a renderer needs for one frame, in world
// coordinates. Subtract CameraX from X values to get view coordinates.
type Snapshot struct {
	CameraX        float64
	ViewW, ViewH   float64
	Player         core.Box
	Platforms      []core.Box
	Enemies        []Triangle // Live enemies only
	PowerUps       []Circle
	Empowered      bool
	PowerTicksLeft int
	JumpsLeft      int
	GameOver       bool
	Cause          EndCause
	Score          int
}

// Snapshot copies the drawable state of the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		CameraX:        w.CameraX,
		ViewW:          w.cfg.Viewport.Width,
		ViewH:          w.cfg.Viewport.Height,
		Player:         w.Player.Box(),
		Platforms:      make([]core.Box, 0, len(w.Platforms)),
		Enemies:        make([]Triangle, 0, len(w.Enemies)),
		PowerUps:       make([]Circle, 0, len(w.PowerUps)),
		Empowered:      w.PowerActive,
		PowerTicksLeft: w.PowerTimer,
		JumpsLeft:      w.Player.JumpsLeft,
		GameOver:       w.GameOver,
		Cause:          w.Cause,
		Score:          w.Score(),
	}

	for _, p := range w.Platforms {
		s.Platforms = append(s.Platforms, p.Box())
	}

	size := w.cfg.Enemies.Size
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		s.Enemies = append(s.Enemies, Triangle{
			A: Point{X: e.X, Y: e.Y + size},
			B: Point{X: e.X + size/2, Y: e.Y},
			C: Point{X: e.X + size, Y: e.Y + size},
		})
	}

	r := w.cfg.PowerUps.Size / 2
	for _, p := range w.PowerUps {
		s.PowerUps = append(s.PowerUps, Circle{CX: p.X + r, CY: p.Y + r, R: r})
	}

	return s
}
