package renderer

import (
	"image/color"
	"strings"
	"time"

	gcolor "github.com/gookit/color"

	"mazecaster/pkg/engine/raycast"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/gameplay"
)

// Settings is what a backend needs beyond the game state
type Settings struct {
	Raycast raycast.Config
	Move    gameplay.MoveConfig
	TPS     int
}

// TickInterval is the wall-clock duration of one tick
func (s Settings) TickInterval() time.Duration {
	if s.TPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(s.TPS)
}

// Editor palette
var (
	ColorPassage  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorWall     = color.RGBA{R: 55, G: 255, B: 0, A: 255}
	ColorGridLine = color.RGBA{A: 255}
	ColorPanelBG  = color.RGBA{A: 255}
	ColorText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorButton   = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	ColorButtonHi = color.RGBA{R: 150, G: 255, B: 150, A: 255}
	ColorButtonFG = color.RGBA{A: 255}
)

// PanelWidth is the width of the editor side panel in pixels.
const PanelWidth = 200

// Terminal styles
var (
	StyleTitle  = gcolor.Style{gcolor.FgGreen, gcolor.OpBold}
	StyleSubtle = gcolor.Style{gcolor.FgGray}
)

// CellColor returns the editor colour of a cell state
func CellColor(s world.CellState) color.RGBA {
	if s == world.Passage {
		return ColorPassage
	}
	return ColorWall
}

// Glyph is one character of a text-mode first-person frame
type Glyph struct {
	Ch    rune
	Color color.RGBA
}

// Frame is a text-mode first-person view indexed [row][col]
type Frame [][]Glyph

// wallRamp goes from nearest to farthest
var wallRamp = []rune("@#%*+=-:")

const (
	ceilingRune = ' '
	floorRune   = '.'
)

// WallRune picks a ramp character for a shade factor in [0,1].
func WallRune(shade float64) rune {
	i := int((1 - shade) * float64(len(wallRamp)))
	if i < 0 {
		i = 0
	}
	if i >= len(wallRamp) {
		i = len(wallRamp) - 1
	}
	return wallRamp[i]
}

// ASCIIFrame renders the first-person view into a cols x rows character
// grid, one ray per character column.
func ASCIIFrame(grid *world.Grid, pose world.Pose, cfg raycast.Config, cols, rows int) Frame {
	if cols <= 0 || rows <= 0 {
		return Frame{}
	}
	frame := make(Frame, rows)
	for y := range frame {
		frame[y] = make([]Glyph, cols)
	}

	cfg.ScreenWidth = cols
	cfg.ScreenHeight = rows
	cfg.ColumnStride = 1

	for _, c := range raycast.Render(grid, pose, cfg) {
		x := c.ScreenX
		from, to := c.CeilingSpan()
		for y := from; y < to; y++ {
			frame[y][x] = Glyph{Ch: ceilingRune, Color: cfg.CeilingColor}
		}
		if c.Hit {
			top, bottom := max(c.SlabTop, 0), min(c.SlabBottom, rows)
			ch := WallRune(c.Shade)
			for y := top; y < bottom; y++ {
				frame[y][x] = Glyph{Ch: ch, Color: c.WallColor}
			}
		}
		from, to = c.FloorSpan()
		for y := from; y < to; y++ {
			frame[y][x] = Glyph{Ch: floorRune, Color: cfg.FloorColor}
		}
	}
	return frame
}

// Lines returns the frame's characters without colour
func (f Frame) Lines() []string {
	lines := make([]string, len(f))
	for y, row := range f {
		rs := make([]rune, len(row))
		for x, g := range row {
			rs[x] = g.Ch
			if rs[x] == 0 {
				rs[x] = ' '
			}
		}
		lines[y] = string(rs)
	}
	return lines
}

// ColorLines returns the frame with 24-bit terminal colours. Ceiling cells
// are painted as background so the sky shows.
func (f Frame) ColorLines() []string {
	lines := make([]string, len(f))
	for y, row := range f {
		var sb strings.Builder
		for _, g := range row {
			ch := g.Ch
			if ch == 0 {
				ch = ' '
			}
			if ch == ceilingRune {
				sb.WriteString(gcolor.RGB(g.Color.R, g.Color.G, g.Color.B, true).Sprint(" "))
				continue
			}
			sb.WriteString(gcolor.RGB(g.Color.R, g.Color.G, g.Color.B).Sprint(string(ch)))
		}
		lines[y] = sb.String()
	}
	return lines
}
