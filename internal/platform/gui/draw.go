package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/skyhop-dev/skyhop/internal/games/skyhop/sim"
)

var (
	skyColor       = color.RGBA{135, 206, 235, 255}
	platformColor  = color.RGBA{46, 139, 87, 255}
	enemyColor     = color.RGBA{65, 105, 225, 255}
	powerUpColor   = color.RGBA{255, 215, 0, 255}
	playerColor    = color.RGBA{220, 20, 60, 255}
	empoweredColor = color.RGBA{255, 140, 0, 255}
	hudColor       = color.RGBA{20, 20, 20, 255}
	overlayColor   = color.RGBA{0, 0, 0, 160}
)

const lineHeight = 16

// painter draws snapshots onto an Ebiten image.
type painter struct {
	face  *text.GoXFace
	white *ebiten.Image // Source texture for filled paths
}

func newPainter() *painter {
	return &painter{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (p *painter) draw(screen *ebiten.Image, s sim.Snapshot, paused bool) {
	screen.Fill(skyColor)

	for _, pl := range s.Platforms {
		vector.DrawFilledRect(screen,
			float32(pl.X-s.CameraX), float32(pl.Y), float32(pl.W), float32(pl.H),
			platformColor, false)
	}

	for _, e := range s.Enemies {
		p.fillTriangle(screen, e, s.CameraX, enemyColor)
	}

	for _, c := range s.PowerUps {
		vector.DrawFilledCircle(screen, float32(c.CX-s.CameraX), float32(c.CY), float32(c.R), powerUpColor, true)
	}

	pc := playerColor
	if s.Empowered {
		pc = empoweredColor
	}
	vector.DrawFilledRect(screen,
		float32(s.Player.X-s.CameraX), float32(s.Player.Y), float32(s.Player.W), float32(s.Player.H),
		pc, false)

	p.drawHUD(screen, s)

	switch {
	case s.GameOver:
		p.drawOverlay(screen, s, gameOverTitle(s.Cause), fmt.Sprintf("Score: %d", s.Score), "Press R to retry")
	case paused:
		p.drawOverlay(screen, s, "PAUSED", "Press P to resume")
	}
}

func (p *painter) fillTriangle(screen *ebiten.Image, t sim.Triangle, camX float64, clr color.RGBA) {
	if p.white == nil {
		p.white = ebiten.NewImage(3, 3)
		p.white.Fill(color.White)
	}

	var path vector.Path
	path.MoveTo(float32(t.A.X-camX), float32(t.A.Y))
	path.LineTo(float32(t.B.X-camX), float32(t.B.Y))
	path.LineTo(float32(t.C.X-camX), float32(t.C.Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, p.white, &ebiten.DrawTrianglesOptions{})
}

func (p *painter) drawHUD(screen *ebiten.Image, s sim.Snapshot) {
	p.drawText(screen, fmt.Sprintf("Score: %d", s.Score), 8, 6, hudColor)
	p.drawText(screen, "Jumps: "+strings.Repeat("o", s.JumpsLeft), 120, 6, hudColor)
	if s.Empowered {
		secs := (s.PowerTicksLeft + 59) / 60
		p.drawText(screen, fmt.Sprintf("POWER %ds", secs), int(s.ViewW)-80, 6, empoweredColor)
	}
}

// drawOverlay dims the view and centers the given lines.
func (p *painter) drawOverlay(screen *ebiten.Image, s sim.Snapshot, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.ViewW), float32(s.ViewH), overlayColor, false)

	top := int(s.ViewH)/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		w := text.Advance(line, p.face)
		x := (int(s.ViewW) - int(w)) / 2
		p.drawText(screen, line, x, top+i*lineHeight, color.White)
	}
}

func (p *painter) drawText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, p.face, op)
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
