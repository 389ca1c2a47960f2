package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held; evaluated every tick)
	ActionMoveForward
	ActionMoveBackward
	ActionTurnLeft
	ActionTurnRight

	// Editor
	ActionSeedDigit     // Intent.Digit carries the value
	ActionSeedBackspace
	ActionSeedSubmit
	ActionRandomSeed
	ActionClearGrid

	// Mode / meta
	ActionStartPlay
	ActionReturnToEdit
	ActionQuit
	ActionDumpMaze // Write the grid to maze.txt (F8)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Digit  int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "enter", "f8").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// Debouncer drops repeats of the same code that arrive within Window.
// Terminal key repeat floods one-shot actions otherwise.
type Debouncer struct {
	Window time.Duration
	last   map[string]time.Time
}

// NewDebouncer creates a debouncer with the given repeat window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{Window: window, last: make(map[string]time.Time)}
}

// Accept returns the debounced input and true when raw is not a repeat.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	if prev, ok := d.last[raw.Code]; ok && raw.Timestamp.Sub(prev) < d.Window {
		return DebouncedInput{}, false
	}
	d.last[raw.Code] = raw.Timestamp
	return NewDebouncedInput(raw), true
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Digits are handled separately.
var bindings = map[string]Action{
	// Movement
	"w":           ActionMoveForward,
	"arrow_up":    ActionMoveForward,
	"s":           ActionMoveBackward,
	"arrow_down":  ActionMoveBackward,
	"a":           ActionTurnLeft,
	"arrow_left":  ActionTurnLeft,
	"d":           ActionTurnRight,
	"arrow_right": ActionTurnRight,

	// Seed entry
	"backspace": ActionSeedBackspace,
	"enter":     ActionSeedSubmit,
	"r":         ActionRandomSeed,
	"c":         ActionClearGrid,

	// Mode
	"p":      ActionStartPlay,
	"space":  ActionStartPlay,
	"escape": ActionReturnToEdit,
	"tab":    ActionReturnToEdit,

	// Quit
	"q":    ActionQuit,
	"quit": ActionQuit,

	"f8": ActionDumpMaze,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if len(ev.Code) == 1 && ev.Code[0] >= '0' && ev.Code[0] <= '9' {
		return Intent{Action: ActionSeedDigit, Digit: int(ev.Code[0] - '0')}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IsHeld reports whether an action is sampled as a held key each tick rather
// than fired once per press.
func IsHeld(a Action) bool {
	switch a {
	case ActionMoveForward, ActionMoveBackward, ActionTurnLeft, ActionTurnRight:
		return true
	}
	return false
}

// HeldActions maps the codes currently held down to their held actions.
func HeldActions(codes []string) []Action {
	var out []Action
	for _, code := range codes {
		if act, ok := bindings[code]; ok && IsHeld(act) {
			out = append(out, act)
		}
	}
	return out
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBackward:
		return "Move Backward"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionSeedDigit:
		return "Seed Digit"
	case ActionSeedBackspace:
		return "Seed Backspace"
	case ActionSeedSubmit:
		return "Generate"
	case ActionRandomSeed:
		return "Random Seed"
	case ActionClearGrid:
		return "Clear Grid"
	case ActionStartPlay:
		return "Play"
	case ActionReturnToEdit:
		return "Edit"
	case ActionQuit:
		return "Quit"
	case ActionDumpMaze:
		return "Dump Maze"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// HeldCodes returns every code bound to a held action, sorted. Backends that
// poll key state use it to know which keys to sample.
func HeldCodes() []string {
	var codes []string
	for code, act := range bindings {
		if IsHeld(act) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
