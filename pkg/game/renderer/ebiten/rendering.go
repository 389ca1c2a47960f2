package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazecaster/pkg/engine/raycast"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/renderer"
	"mazecaster/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g == nil || e.fontSource == nil {
		return
	}

	if g.Mode == state.ModePlay {
		e.drawView(screen, g)
		e.drawPlayPanel(screen)
	} else {
		e.drawEditor(screen, g)
		e.drawEditPanel(screen, g)
	}
	e.drawMessages(screen, g)
}

// drawEditor draws every cell as a filled square with a grid outline
func (e *EbitenRenderer) drawEditor(screen *ebiten.Image, g *state.Game) {
	size := float32(e.settings.Raycast.CellSize)
	g.Grid.ForEachCell(func(row, col int, s world.CellState) {
		x := float32(col) * size
		y := float32(row) * size
		vector.DrawFilledRect(screen, x, y, size, size, renderer.CellColor(s), false)
		vector.StrokeRect(screen, x, y, size, size, 1, renderer.ColorGridLine, false)
	})
}

// drawView draws one ceiling, wall and floor strip per ray
func (e *EbitenRenderer) drawView(screen *ebiten.Image, g *state.Game) {
	cfg := e.settings.Raycast
	for _, col := range raycast.Render(g.Grid, g.Pose, cfg) {
		x := float32(col.ScreenX)
		w := float32(col.Width)

		ceilFrom, wallTop := col.CeilingSpan()
		wallBottom, floorTo := col.FloorSpan()

		fillSpan(screen, x, w, ceilFrom, wallTop, cfg.CeilingColor)
		if col.Hit {
			fillSpan(screen, x, w, wallTop, wallBottom, col.WallColor)
		}
		fillSpan(screen, x, w, wallBottom, floorTo, cfg.FloorColor)
	}
}

func fillSpan(screen *ebiten.Image, x, w float32, from, to int, clr color.RGBA) {
	if to <= from {
		return
	}
	vector.DrawFilledRect(screen, x, float32(from), w, float32(to-from), clr, false)
}

func (e *EbitenRenderer) panelX() float64 {
	return float64(e.windowWidth - renderer.PanelWidth + panelMargin)
}

// drawEditPanel draws the instructions, the seed buffer and the buttons
func (e *EbitenRenderer) drawEditPanel(screen *ebiten.Image, g *state.Game) {
	face := e.getUIFontFace()
	x := e.panelX()

	for i, key := range panelLines {
		line := gotext.Get(key)
		if i == panelSeedLine {
			line += g.SeedText
		}
		e.drawText(screen, line, face, x, float64(panelMargin+i*panelLineHeight), renderer.ColorText)
	}

	cx, cy := ebiten.CursorPosition()
	for _, b := range e.buttons {
		e.drawButton(screen, b, b.Contains(cx, cy))
	}
}

func (e *EbitenRenderer) drawPlayPanel(screen *ebiten.Image) {
	e.drawText(screen, gotext.Get("PLAY_HINT"), e.getUIFontFace(), e.panelX(), panelMargin, renderer.ColorText)
}

func (e *EbitenRenderer) drawButton(screen *ebiten.Image, b renderer.Button, hover bool) {
	bg := renderer.ColorButton
	if hover {
		bg = renderer.ColorButtonHi
	}
	r := b.Bounds
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	face := e.getTitleFontFace()
	label := gotext.Get(b.Label)
	w, h := text.Measure(label, face, 0)
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2
	y := float64(r.Min.Y) + (float64(r.Dy())-h)/2
	e.drawText(screen, label, face, x, y, renderer.ColorButtonFG)
}

// drawMessages draws the most recent messages below the buttons
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game) {
	face := e.getUIFontFace()
	x := e.panelX()
	for i, msg := range g.Messages {
		e.drawText(screen, msg, face, x, float64(messagesY+i*panelLineHeight), colorMessage)
	}
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
