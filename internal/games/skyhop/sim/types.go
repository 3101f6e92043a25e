// Package sim is the Sky Hop simulation: a deterministic, renderless
// side-scrolling platformer stepped one frame at a time.
//
// A World owns the whole run state. Front ends feed it an Input each frame,
// read a Snapshot to draw, and call Reset when the player retries.
package sim

import "github.com/skyhop-dev/skyhop/internal/core"

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Input is the per-frame control state read by the physics step.
// JumpRequested is edge-triggered: true only on the frame a jump was pressed.
type Input interface {
	MoveRight() bool
	MoveLeft() bool
	JumpRequested() bool
}

// Controls is a plain Input value.
type Controls struct {
	Right bool
	Left  bool
	Jump  bool
}

func (c Controls) MoveRight() bool { return c.Right }
func (c Controls) MoveLeft() bool { return c.Left }
func (c Controls) JumpRequested() bool { return c.Jump }

// Player is the controllable character.
type Player struct {
	X, Y      float64 // Top-left corner
	VY        float64 // Vertical velocity, positive is down
	Width     float64
	Height    float64
	Speed     float64 // Horizontal units per frame while a direction is held
	JumpsLeft int
	Airborne  bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Platform is a solid ledge the player can land on.
type Platform struct {
	X, Y   float64
	Width  float64
	Height float64
}

// Box returns the platform's collision box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Enemy patrols the platform it was spawned on.
type Enemy struct {
	X, Y      float64 // Top-left corner of the enemy's square body
	Dir       int     // +1 right, -1 left
	Alive     bool
	PlatformY float64 // Surface level of the home platform
}

// Box returns the enemy's collision box for the given body size.
func (e Enemy) Box(size float64) core.Box {
	return core.NewBox(e.X, e.Y, size, size)
}

// PowerUp is a pickup that empowers the player.
type PowerUp struct {
	X, Y float64
}

// Box returns the pickup's collision box for the given size.
func (p PowerUp) Box(size float64) core.Box {
	return core.NewBox(p.X, p.Y, size, size)
}

// EndCause records why a run ended.
type EndCause int

const (
	CauseNone  EndCause = iota
	CauseFell           // Dropped below the viewport
	CauseEnemy          // Touched an enemy while not empowered
)

// String returns the cause as stored in run history.
func (c EndCause) String() string {
	switch c {
	case CauseFell:
		return "fell"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}
