package ebiten

import "image/color"

// Panel layout, in pixels from the panel's left edge / the top of the window
const (
	panelMargin     = 10
	panelLineHeight = 30
	buttonWidth     = 160
	buttonHeight    = 40
	playButtonY     = 250
	quitButtonY     = 290
	messagesY       = 360
	baseFontSize    = 20
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorMessage    = color.RGBA{200, 200, 200, 255}
)

// panelLines are the i18n keys of the editor instructions, one per line.
// The seed entry buffer is appended to the line at panelSeedLine.
var panelLines = []string{
	"PANEL_PRESS_ENTER",
	"PANEL_GENERATE",
	"PANEL_SEED",
	"PANEL_RANDOM_1",
	"PANEL_RANDOM_2",
	"PANEL_CLEAR_1",
	"PANEL_CLEAR_2",
}

const panelSeedLine = 2
