package sim

import "github.com/skyhop-dev/skyhop/internal/config"

// scriptedSource replays a fixed list of draws, cycling when exhausted.
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

// newTestWorld builds a default world. Without values every draw is 0.99,
// which never spawns enemies or power-ups.
func newTestWorld(values ...float64) (*World, *scriptedSource) {
	if len(values) == 0 {
		values = []float64{0.99}
	}
	src := &scriptedSource{values: values}
	return NewWorld(config.DefaultSkyhopConfig(), src), src
}

// standOnStart places the player at rest on the start platform.
func standOnStart(w *World) {
	w.Player.Y = w.cfg.Level.StartPlatform.Y - w.Player.Height
	w.Player.VY = 0
	w.Player.Airborne = false
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
