package skyhop

import (
	"fmt"
	"math"
	"strings"

	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/games/skyhop/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	EnemyChar    = '▲'
	PowerUpChar  = '◆'
	JumpChar     = '●'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells.
type viewport struct {
	camX   float64
	sx, sy float64
}

func newViewport(snap sim.Snapshot, dst *core.Screen) viewport {
	return viewport{
		camX: snap.CameraX,
		sx:   float64(dst.Width()) / snap.ViewW,
		sy:   float64(dst.Height()-hudRows) / snap.ViewH,
	}
}

// rect converts a world box to the cells it covers. Every visible box
// covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor((b.X - v.camX) * v.sx))
	x1 := int(math.Ceil((b.Right() - v.camX) * v.sx))
	y0 := int(math.Floor(b.Y*v.sy)) + hudRows
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + hudRows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current world to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.world.Snapshot()
	v := newViewport(snap, dst)

	for _, p := range snap.Platforms {
		dst.FillRect(v.rect(p), PlatformChar, core.ColorGreen)
	}

	for _, e := range snap.Enemies {
		box := core.NewBox(e.A.X, e.B.Y, e.C.X-e.A.X, e.A.Y-e.B.Y)
		dst.FillRect(v.rect(box), EnemyChar, core.ColorBlue)
	}

	for _, p := range snap.PowerUps {
		box := core.NewBox(p.CX-p.R, p.CY-p.R, 2*p.R, 2*p.R)
		dst.FillRect(v.rect(box), PowerUpChar, core.ColorYellow)
	}

	playerColor := core.ColorRed
	if snap.Empowered {
		playerColor = core.ColorOrange
	}
	dst.FillRect(v.rect(snap.Player), PlayerChar, playerColor)

	g.drawHUD(dst, snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		drawCenteredMessage(dst, gameOverTitle(snap.Cause),
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawHUD renders score, remaining jumps and power time on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	for y := 0; y < hudRows; y++ {
		dst.DrawHLine(0, y, dst.Width(), ' ', core.ColorDefault)
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	jumps := "Jumps: " + strings.Repeat(string(JumpChar), snap.JumpsLeft)
	dst.DrawTextColored(16, 0, jumps, core.ColorCyan)

	if snap.Empowered {
		rate := g.runtime.TickRate
		if rate <= 0 {
			rate = 60
		}
		secs := (snap.PowerTicksLeft + rate - 1) / rate
		power := fmt.Sprintf("POWER %ds", secs)
		dst.DrawTextColored(dst.Width()-len(power)-1, 0, power, core.ColorOrange)
	}
}

func gameOverTitle(cause sim.EndCause) string {
	switch cause {
	case sim.CauseEnemy:
		return "GAME OVER - caught by an enemy"
	case sim.CauseFell:
		return "GAME OVER - you fell"
	default:
		return "GAME OVER"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
