package gameplay

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/leonelquinteros/gotext"

	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/game/devtools"
	"mazecaster/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// Intents that are not enabled in the current mode are dropped silently.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	ctx := context.Background()

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionSeedDigit:
		report(g, g.AppendSeedDigit(intent.Digit))

	case engineinput.ActionSeedBackspace:
		report(g, g.BackspaceSeed())

	case engineinput.ActionSeedSubmit:
		if report(g, g.SubmitSeed(ctx)) {
			mazeGenerated(g)
		}

	case engineinput.ActionRandomSeed:
		if report(g, g.RandomizeSeed(ctx)) {
			mazeGenerated(g)
		}

	case engineinput.ActionClearGrid:
		if report(g, g.ClearGrid()) {
			logMessage(g, "MSG_GRID_CLEARED")
		}

	case engineinput.ActionStartPlay:
		if report(g, g.EnterPlay()) {
			log.Printf("Entering play mode at %v", g.Pose)
			logMessage(g, "MSG_ENTER_PLAY")
		}

	case engineinput.ActionReturnToEdit:
		if report(g, g.ReturnToEdit()) {
			log.Printf("Returning to edit mode")
			logMessage(g, "MSG_ENTER_EDIT")
		}

	case engineinput.ActionQuit:
		g.Quit = true

	case engineinput.ActionDumpMaze:
		path, err := devtools.DumpMazeToFile(g)
		if err != nil {
			logMessage(g, "MSG_DUMP_FAILED", err)
			return
		}
		log.Printf("Maze dumped to %s", path)
		logMessage(g, "MSG_MAZE_DUMPED", path)
	}
}

// ToggleAt flips the cell under an editor click. Clicks outside the grid and
// clicks in play mode are ignored.
func ToggleAt(g *state.Game, row, col int) bool {
	if g.Mode != state.ModeEdit || !g.Grid.IsValidPosition(row, col) {
		return false
	}
	return g.ToggleCell(row, col) == nil
}

// Update runs one tick: one-shot intents first, then held movement.
func Update(g *state.Game, intents []engineinput.Intent, held MovementInput, cfg MoveConfig) {
	for _, intent := range intents {
		ProcessIntent(g, intent)
	}
	if g.Mode == state.ModePlay && held.Any() {
		_ = Tick(g, held, cfg)
	}
}

// report turns an operation error into a message and returns true on success.
// Wrong-mode errors are expected and stay silent.
func report(g *state.Game, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, state.ErrWrongMode):
	case errors.Is(err, state.ErrInvalidSeedInput):
		logMessage(g, "MSG_INVALID_SEED")
	case errors.Is(err, state.ErrNoPassage):
		logMessage(g, "MSG_NO_PASSAGE")
	default:
		log.Printf("Error: %v", err)
		logMessage(g, "MSG_ERROR", err)
	}
	return false
}

func mazeGenerated(g *state.Game) {
	log.Printf("Generated %dx%d maze from seed %d", g.Grid.Cols(), g.Grid.Rows(), g.Seed)
	logMessage(g, "MSG_MAZE_GENERATED", g.Seed)
}

// logMessage adds a translated message to the game's message log. The
// translation is looked up first and then filled with args.
func logMessage(g *state.Game, key string, args ...any) {
	msg := gotext.Get(key)
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	g.AddMessage(msg)
}
