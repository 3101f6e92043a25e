package sim

func (w *World) applyJump(in Input) {
	if !in.JumpRequested() || w.Player.JumpsLeft <= 0 {
		return
	}
	w.Player.VY = w.cfg.Physics.JumpImpulse
	w.Player.Airborne = true
	w.Player.JumpsLeft--
	w.stats.Jumps++
}

// applyMovement moves the player at constant speed. There is no
// acceleration and no world boundary.
func (w *World) applyMovement(in Input) {
	if in.MoveRight() {
		w.Player.X += w.Player.Speed
	}
	if in.MoveLeft() {
		w.Player.X -= w.Player.Speed
	}
}

func (w *World) applyGravity() {
	w.Player.VY += w.cfg.Physics.Gravity
	w.Player.Y += w.Player.VY
}

// landOnPlatforms snaps the player onto any platform whose top edge it
// crossed this frame. The lower bound grows with the fall speed so a fast
// fall cannot tunnel through a thin platform. Later platforms overwrite
// earlier matches.
func (w *World) landOnPlatforms() {
	p := &w.Player
	for _, pl := range w.Platforms {
		feet := p.Y + p.Height
		if p.X < pl.X+pl.Width &&
			p.X+p.Width > pl.X &&
			feet > pl.Y &&
			feet < pl.Y+pl.Height+p.VY {
			p.Y = pl.Y - p.Height
			p.VY = 0
			p.Airborne = false
			p.JumpsLeft = w.cfg.Player.MaxJumps
		}
	}
}

func (w *World) fellOut() bool {
	return w.Player.Y > w.cfg.Viewport.Height+w.cfg.Limits.FallOutMargin
}

// updateEnemies patrols live enemies, resolves player contact and lets
// defeated enemies drop at constant speed.
func (w *World) updateEnemies() {
	ec := w.cfg.Enemies
	player := w.Player.Box()

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive {
			e.Y += ec.FallSpeed
			continue
		}

		e.X += float64(e.Dir) * ec.Speed
		if !w.groundBeneath(*e) {
			e.Dir = -e.Dir
		}

		if player.Intersects(e.Box(ec.Size)) {
			if w.PowerActive {
				e.Alive = false
				w.stats.EnemiesDefeated++
			} else {
				w.endRun(CauseEnemy)
			}
		}

		if !e.Alive {
			e.Y += ec.FallSpeed
		}
	}
}

// groundBeneath reports whether some platform still supports the enemy's
// leading point.
func (w *World) groundBeneath(e Enemy) bool {
	feet := e.Y + w.cfg.Enemies.Size
	for _, pl := range w.Platforms {
		if feet >= pl.Y-w.cfg.Enemies.LedgeTolerance && e.X > pl.X && e.X < pl.X+pl.Width {
			return true
		}
	}
	return false
}

// collectPowerUps removes every pickup the player touches and (re)starts
// the power timer.
func (w *World) collectPowerUps() {
	size := w.cfg.PowerUps.Size
	player := w.Player.Box()

	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		if player.Intersects(pu.Box(size)) {
			w.PowerActive = true
			w.PowerTimer = w.cfg.PowerUps.DurationTicks
			w.stats.PowerUpsCollected++
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept
}

// tickPower counts down the power timer. The pickup frame counts as the
// first frame of power.
func (w *World) tickPower() {
	if !w.PowerActive {
		return
	}
	w.PowerTimer--
	if w.PowerTimer <= 0 {
		w.PowerTimer = 0
		w.PowerActive = false
	}
}
