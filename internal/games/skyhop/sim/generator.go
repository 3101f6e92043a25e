package sim

import "github.com/skyhop-dev/skyhop/internal/core"

// extendLevel generates platforms until the frontier is past the visible
// area plus the lookahead margin.
func (w *World) extendLevel() {
	limit := w.CameraX + w.cfg.Viewport.Width + w.cfg.Level.Lookahead
	for w.lastPlatformX < limit {
		w.generatePlatform()
	}
}

// generatePlatform appends the next platform after the frontier and may
// place an enemy and a power-up on it.
//
// The vertical position is clamped to the absolute band first and then to
// the rise/drop limits relative to the previous platform. The second clamp
// wins when the two disagree.
func (w *World) generatePlatform() {
	lc := w.cfg.Level

	gap := w.uniform(lc.MinGap, lc.MaxGap)
	x := w.lastPlatformX + gap

	y := w.lastPlatformY + (w.rng.Float64()*2-1)*lc.MaxRise
	y = core.ClampF(y, lc.MinY, lc.MaxY)
	if y < w.lastPlatformY-lc.MaxRise {
		y = w.lastPlatformY - lc.MaxRise
	}
	if y > w.lastPlatformY+lc.MaxDrop {
		y = w.lastPlatformY + lc.MaxDrop
	}

	width := w.uniform(lc.MinWidth, lc.MaxWidth)

	w.Platforms = append(w.Platforms, Platform{X: x, Y: y, Width: width, Height: lc.PlatformHeight})
	w.lastPlatformX = x
	w.lastPlatformY = y

	w.maybeSpawnEnemy(x, y, width)
	w.maybeSpawnPowerUp(x, y, width)
}

func (w *World) maybeSpawnEnemy(x, y, width float64) {
	ec := w.cfg.Enemies
	if w.rng.Float64() >= ec.SpawnChance {
		return
	}

	dir := -1
	if w.rng.Float64() < 0.5 {
		dir = 1
	}

	w.Enemies = append(w.Enemies, Enemy{
		X:         x + width/2,
		Y:         y - ec.Size,
		Dir:       dir,
		Alive:     true,
		PlatformY: y,
	})
}

func (w *World) maybeSpawnPowerUp(x, y, width float64) {
	pc := w.cfg.PowerUps
	// The roll is drawn even when spacing rules the pickup out, so the
	// random sequence does not depend on pickup history.
	roll := w.rng.Float64()
	if roll >= pc.SpawnChance || x-w.lastPowerX <= pc.MinSpacing {
		return
	}

	w.PowerUps = append(w.PowerUps, PowerUp{
		X: x + w.rng.Float64()*(width-pc.Size),
		Y: y - pc.Size - pc.Hover,
	})
	w.lastPowerX = x
}

// uniform draws from [lo, hi).
func (w *World) uniform(lo, hi float64) float64 {
	return w.rng.Float64()*(hi-lo) + lo
}
