package input

import (
	"testing"
	"time"
)

func TestMapToIntent_Digits(t *testing.T) {
	for d := 0; d <= 9; d++ {
		code := string(rune('0' + d))
		got := MapToIntent(DebouncedInput{Device: DeviceKeyboard, Code: code})
		if got.Action != ActionSeedDigit || got.Digit != d {
			t.Errorf("MapToIntent(%q) = %+v, want digit %d", code, got, d)
		}
	}
}

func TestMapToIntent_Bindings(t *testing.T) {
	cases := map[string]Action{
		"w":      ActionMoveForward,
		"s":      ActionMoveBackward,
		"a":      ActionTurnLeft,
		"d":      ActionTurnRight,
		"enter":  ActionSeedSubmit,
		"r":      ActionRandomSeed,
		"c":      ActionClearGrid,
		"escape": ActionReturnToEdit,
		"f8":     ActionDumpMaze,
		"zzz":    ActionNone,
		"12":     ActionNone,
	}
	for code, want := range cases {
		if got := MapToIntent(DebouncedInput{Code: code}).Action; got != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got), ActionName(want))
		}
	}
}

func TestHeldActions_FiltersOneShots(t *testing.T) {
	got := HeldActions([]string{"w", "enter", "d", "unknown"})
	if len(got) != 2 || got[0] != ActionMoveForward || got[1] != ActionTurnRight {
		t.Errorf("HeldActions = %v, want [forward, turn right]", got)
	}
	for _, code := range HeldCodes() {
		if !IsHeld(bindings[code]) {
			t.Errorf("HeldCodes returned %q bound to one-shot %s", code, ActionName(bindings[code]))
		}
	}
}

func TestDebouncer_DropsRepeatsInsideWindow(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	if _, ok := d.Accept(RawInput{Code: "r", Timestamp: t0}); !ok {
		t.Fatal("first press dropped")
	}
	if _, ok := d.Accept(RawInput{Code: "r", Timestamp: t0.Add(50 * time.Millisecond)}); ok {
		t.Error("repeat inside window accepted")
	}
	if _, ok := d.Accept(RawInput{Code: "c", Timestamp: t0.Add(50 * time.Millisecond)}); !ok {
		t.Error("different code dropped")
	}
	if _, ok := d.Accept(RawInput{Code: "r", Timestamp: t0.Add(200 * time.Millisecond)}); !ok {
		t.Error("press after window dropped")
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveForward]
	if len(codes) != 2 || codes[0] != "arrow_up" || codes[1] != "w" {
		t.Errorf("forward bindings = %v, want [arrow_up w]", codes)
	}
}
