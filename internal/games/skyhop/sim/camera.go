package sim

// updateCamera centers the player horizontally, never scrolling left of
// the world origin. There is no vertical scroll and no smoothing.
func (w *World) updateCamera() {
	x := w.Player.X - w.cfg.Viewport.Width/2 + w.Player.Width/2
	if x < 0 {
		x = 0
	}
	w.CameraX = x
}
