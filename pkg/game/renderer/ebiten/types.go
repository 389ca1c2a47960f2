// Package ebiten provides an Ebiten-based graphical renderer: a cell editor
// with a side panel, and a raycast first-person view.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"mazecaster/pkg/game/renderer"
	"mazecaster/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	settings renderer.Settings

	// Logical screen size (editor or view, plus the side panel)
	windowWidth  int
	windowHeight int

	// Editor grid area in pixels
	editorWidth  int
	editorHeight int

	fontSource *text.GoTextFaceSource

	// Cached font faces (recreated when the size changes)
	cachedUIFontSize    float64
	cachedUIFace        *text.GoTextFace
	cachedTitleFontSize float64
	cachedTitleFace     *text.GoTextFace

	// Play and Quit, in panel order
	buttons []renderer.Button

	game *state.Game

	// heldKeys maps keys sampled every tick to their binding codes
	heldKeys map[ebiten.Key]string

	windowOpenedLogged bool
}

var _ ebiten.Game = (*EbitenRenderer)(nil)
var _ renderer.Renderer = (*EbitenRenderer)(nil)
