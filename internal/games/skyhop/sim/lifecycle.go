package sim

// prune drops entities that can no longer become visible: platforms far
// behind the camera, and enemies or pickups that fell below the viewport.
func (w *World) prune() {
	lim := w.cfg.Limits
	bottom := w.cfg.Viewport.Height

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.X+p.Width > w.CameraX-lim.PlatformTrail {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Y < bottom+lim.EnemyMargin {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if p.Y < bottom+lim.PowerUpMargin {
			powerUps = append(powerUps, p)
		}
	}
	w.PowerUps = powerUps
}
