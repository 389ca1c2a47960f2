package renderer

import (
	"mazecaster/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations are the ebiten window and the tcell terminal.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Run drives the tick loop until the game quits or the window closes.
	Run(g *state.Game) error

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}
