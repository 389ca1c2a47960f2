package ebiten

import (
	"errors"
	"fmt"
	"image"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/game/renderer"
	"mazecaster/pkg/game/state"
)

// New creates a new Ebiten renderer. The window is as wide as the larger of
// the editor grid and the first-person view, plus the side panel.
func New(settings renderer.Settings, gridRows, gridCols int) *EbitenRenderer {
	cell := settings.Raycast.CellSize
	e := &EbitenRenderer{
		settings:     settings,
		editorWidth:  int(float64(gridCols) * cell),
		editorHeight: int(float64(gridRows) * cell),
		heldKeys:     make(map[ebiten.Key]string),
	}
	e.windowWidth = max(e.editorWidth, settings.Raycast.ScreenWidth) + renderer.PanelWidth
	e.windowHeight = max(e.editorHeight, settings.Raycast.ScreenHeight, quitButtonY+buttonHeight+panelMargin)

	panelX := e.windowWidth - renderer.PanelWidth + panelMargin
	e.buttons = []renderer.Button{
		{
			Label:  "BUTTON_PLAY",
			Bounds: image.Rect(panelX, playButtonY, panelX+buttonWidth, playButtonY+buttonHeight),
			Action: engineinput.ActionStartPlay,
		},
		{
			Label:  "BUTTON_QUIT",
			Bounds: image.Rect(panelX, quitButtonY, panelX+buttonWidth, quitButtonY+buttonHeight),
			Action: engineinput.ActionQuit,
		},
	}

	held := engineinput.HeldCodes()
	for key, code := range keyCodes {
		if slices.Contains(held, code) {
			e.heldKeys[key] = code
		}
	}
	return e
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetTPS(e.settings.TPS)
	log.Printf("Ebiten renderer initialized (%dx%d, %d TPS)", e.windowWidth, e.windowHeight, e.settings.TPS)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// player quits.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// GetViewportSize returns the grid area in cells
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	cell := int(e.settings.Raycast.CellSize)
	if cell <= 0 {
		return 0, 0
	}
	return e.editorHeight / cell, e.editorWidth / cell
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
