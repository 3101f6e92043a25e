package sim

import "github.com/skyhop-dev/skyhop/internal/config"

// World is the complete state of one run.
// It is mutated only by Step and Reset and is not safe for concurrent use.
type World struct {
	cfg config.SkyhopConfig
	rng Source

	Player    Player
	Platforms []Platform // Ordered by increasing X
	Enemies   []Enemy
	PowerUps  []PowerUp

	CameraX     float64
	GameOver    bool
	Cause       EndCause
	PowerActive bool
	PowerTimer  int // Frames of power left

	// Generator frontier
	lastPlatformX float64
	lastPlatformY float64
	lastPowerX    float64

	stats Stats
}

// StepResult describes what a single Step did.
type StepResult struct {
	Advanced        bool     // False when the world is frozen after game over
	GameOverEntered bool     // True only on the frame the run ended
	Cause           EndCause // Why the run ended, if it has
}

// NewWorld creates a world in its initial state.
func NewWorld(cfg config.SkyhopConfig, rng Source) *World {
	w := &World{
		cfg: cfg,
		rng: rng,
	}
	w.Reset()
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.SkyhopConfig {
	return w.cfg
}

// Reset restores every piece of run state to its initial value.
// Stepping resumes immediately afterwards.
func (w *World) Reset() {
	pc := w.cfg.Player
	w.Player = Player{
		X:         pc.StartX,
		Y:         pc.StartY,
		Width:     pc.Width,
		Height:    pc.Height,
		Speed:     pc.Speed,
		JumpsLeft: pc.MaxJumps,
	}

	sp := w.cfg.Level.StartPlatform
	w.Platforms = []Platform{{X: sp.X, Y: sp.Y, Width: sp.Width, Height: sp.Height}}
	w.Enemies = nil
	w.PowerUps = nil

	w.lastPlatformX = sp.X + sp.Width
	w.lastPlatformY = sp.Y
	w.lastPowerX = 0

	w.CameraX = 0
	w.GameOver = false
	w.Cause = CauseNone
	w.PowerActive = false
	w.PowerTimer = 0

	w.stats = Stats{StartX: pc.StartX, MaxX: pc.StartX}
}

// Step advances the world by one frame.
//
// Order: jump and movement, gravity, landing, fall-out check, enemies,
// power-ups, camera, level generation, pruning. A fall-out ends the frame
// immediately. Once the run is over Step does nothing until Reset.
func (w *World) Step(in Input) StepResult {
	if w.GameOver {
		return StepResult{Cause: w.Cause}
	}

	w.stats.Ticks++

	if in != nil {
		w.applyJump(in)
		w.applyMovement(in)
	}
	w.applyGravity()
	w.landOnPlatforms()

	if w.fellOut() {
		w.endRun(CauseFell)
		return StepResult{Advanced: true, GameOverEntered: true, Cause: CauseFell}
	}

	w.updateEnemies()
	w.collectPowerUps()
	w.tickPower()

	w.updateCamera()
	w.extendLevel()
	w.prune()

	w.stats.track(w.Player.X)

	return StepResult{
		Advanced:        true,
		GameOverEntered: w.GameOver,
		Cause:           w.Cause,
	}
}

// endRun enters the terminal state. Only the first call has any effect.
func (w *World) endRun(cause EndCause) bool {
	if w.GameOver {
		return false
	}
	w.GameOver = true
	w.Cause = cause
	return true
}
