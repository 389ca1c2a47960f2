package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/game/gameplay"
	"mazecaster/pkg/game/renderer"
)

// keyCodes maps Ebiten keys to the raw codes understood by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",

	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyR:           "r",
	ebiten.KeyC:           "c",

	ebiten.KeyP:      "p",
	ebiten.KeySpace:  "space",
	ebiten.KeyEscape: "escape",
	ebiten.KeyTab:    "tab",
	ebiten.KeyQ:      "q",
	ebiten.KeyF8:     "f8",

	ebiten.KeyDigit0: "0", ebiten.KeyNumpad0: "0",
	ebiten.KeyDigit1: "1", ebiten.KeyNumpad1: "1",
	ebiten.KeyDigit2: "2", ebiten.KeyNumpad2: "2",
	ebiten.KeyDigit3: "3", ebiten.KeyNumpad3: "3",
	ebiten.KeyDigit4: "4", ebiten.KeyNumpad4: "4",
	ebiten.KeyDigit5: "5", ebiten.KeyNumpad5: "5",
	ebiten.KeyDigit6: "6", ebiten.KeyNumpad6: "6",
	ebiten.KeyDigit7: "7", ebiten.KeyNumpad7: "7",
	ebiten.KeyDigit8: "8", ebiten.KeyNumpad8: "8",
	ebiten.KeyDigit9: "9", ebiten.KeyNumpad9: "9",
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	g := e.game
	if g == nil {
		return nil
	}

	intents := e.checkInput()
	intents = append(intents, e.checkMouse()...)
	gameplay.Update(g, intents, e.heldMovement(), e.settings.Move)

	if g.Quit {
		return ebiten.Termination
	}
	return nil
}

// checkInput converts keys pressed this tick into one-shot intents.
// Held movement keys are left to heldMovement.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	now := time.Now()
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		code, ok := keyCodes[key]
		if !ok {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: now,
		}))
		if intent.Action == engineinput.ActionNone || engineinput.IsHeld(intent.Action) {
			continue
		}
		intents = append(intents, intent)
	}
	return intents
}

// heldMovement samples the movement keys that are down right now
func (e *EbitenRenderer) heldMovement() gameplay.MovementInput {
	var codes []string
	for key, code := range e.heldKeys {
		if ebiten.IsKeyPressed(key) {
			codes = append(codes, code)
		}
	}
	return gameplay.MovementFromActions(engineinput.HeldActions(codes))
}

// checkMouse handles editor clicks: the panel buttons and cell toggles
func (e *EbitenRenderer) checkMouse() []engineinput.Intent {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()

	if intents := renderer.ButtonIntents(e.buttons, e.game.Mode, x, y); intents != nil {
		return intents
	}
	if x < e.editorWidth && y < e.editorHeight {
		cell := e.settings.Raycast.CellSize
		gameplay.ToggleAt(e.game, int(float64(y)/cell), int(float64(x)/cell))
	}
	return nil
}
