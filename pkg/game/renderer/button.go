package renderer

import (
	"image"

	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/game/state"
)

// Button is a clickable editor panel rectangle. Bounds are in the backend's
// own units: pixels for the window, character cells for the terminal.
type Button struct {
	Label  string // i18n key
	Bounds image.Rectangle
	Action engineinput.Action
}

// Contains reports whether (x, y) lies inside the button
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Bounds)
}

// ButtonIntents returns the intent of the button under (x, y). The buttons
// belong to the editor panel, so clicks outside edit mode hit nothing.
func ButtonIntents(buttons []Button, mode state.Mode, x, y int) []engineinput.Intent {
	if mode != state.ModeEdit {
		return nil
	}
	for _, b := range buttons {
		if b.Contains(x, y) {
			return []engineinput.Intent{{Action: b.Action}}
		}
	}
	return nil
}
