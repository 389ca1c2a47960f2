// Package menu lists the key bindings for the help screen.
package menu

import (
	"fmt"
	"io"
	"strings"

	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/game/renderer"
)

// BindingMenuItem is one action and the keys bound to it.
type BindingMenuItem struct {
	Action engineinput.Action
	Codes  []string
	// Fixed bindings are handled outside the binding table (digits).
	Fixed bool
}

// GetLabel returns the display label for this binding menu item.
func (b BindingMenuItem) GetLabel(styled bool) string {
	name := engineinput.ActionName(b.Action)
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	if styled {
		name = renderer.StyleTitle.Sprint(name)
		if b.Fixed {
			codeText = renderer.StyleSubtle.Sprint(codeText)
		}
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// menuActions is the display order: editor first, then play, then meta
var menuActions = []engineinput.Action{
	engineinput.ActionSeedDigit,
	engineinput.ActionSeedBackspace,
	engineinput.ActionSeedSubmit,
	engineinput.ActionRandomSeed,
	engineinput.ActionClearGrid,
	engineinput.ActionStartPlay,
	engineinput.ActionMoveForward,
	engineinput.ActionMoveBackward,
	engineinput.ActionTurnLeft,
	engineinput.ActionTurnRight,
	engineinput.ActionReturnToEdit,
	engineinput.ActionDumpMaze,
	engineinput.ActionQuit,
}

// GetMenuItems returns the bindings in display order.
func GetMenuItems() []BindingMenuItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]BindingMenuItem, len(menuActions))
	for i, action := range menuActions {
		items[i] = BindingMenuItem{Action: action, Codes: byAction[action]}
		if action == engineinput.ActionSeedDigit {
			items[i].Codes = []string{"0-9"}
			items[i].Fixed = true
		}
	}
	return items
}

// WriteBindings prints one line per action
func WriteBindings(w io.Writer, styled bool) error {
	for _, item := range GetMenuItems() {
		if _, err := fmt.Fprintln(w, item.GetLabel(styled)); err != nil {
			return err
		}
	}
	return nil
}
