package gameplay

import (
	"errors"
	"math"
	"testing"

	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/state"
)

func mustGrid(t *testing.T, lines ...string) *world.Grid {
	t.Helper()
	grid, err := world.ParseGrid(lines...)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return grid
}

// corridorGrid has one east-west corridor on row 1
func corridorGrid(t *testing.T) *world.Grid {
	return mustGrid(t,
		"#######",
		"#.....#",
		"#######",
	)
}

func TestTryMove_IsolatedCellNeverLeaves(t *testing.T) {
	grid := mustGrid(t,
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	)
	cfg := DefaultMoveConfig()
	pose := world.PoseAtCell(world.Position{Row: 2, Col: 2}, cfg.CellSize, 0)

	for range 20 {
		pose = AdvancePlayer(grid, pose, MovementInput{Forward: true}, cfg)
	}

	// 55 + 5*2 = 65 is the last x inside column 2; 67 would be column 3
	if got := pose.Cell(cfg.CellSize); got != (world.Position{Row: 2, Col: 2}) {
		t.Fatalf("player left the isolated cell: %v", got)
	}
	if pose.X != 65 {
		t.Errorf("X = %v, want 65", pose.X)
	}
}

func TestTryMove_RejectedReturnsSamePose(t *testing.T) {
	grid := corridorGrid(t)
	pose := world.PoseAtCell(world.Position{Row: 1, Col: 1}, 22, math.Pi/2) // facing south

	got, ok := TryMove(grid, pose, 12, 22)
	if ok {
		t.Fatalf("move into the south wall accepted: %v", got)
	}
	if got != pose {
		t.Errorf("rejected move changed the pose: %v -> %v", pose, got)
	}
}

func TestTryMove_OutsideGridIsWall(t *testing.T) {
	grid := mustGrid(t,
		"###",
		"...",
		"###",
	)
	pose := world.PoseAtCell(world.Position{Row: 1, Col: 0}, 22, math.Pi) // facing west

	if _, ok := TryMove(grid, pose, 20, 22); ok {
		t.Error("move off the grid accepted")
	}
}

func TestAdvancePlayer_TranslatesBeforeTurning(t *testing.T) {
	grid := corridorGrid(t)
	cfg := DefaultMoveConfig()
	start := world.PoseAtCell(world.Position{Row: 1, Col: 2}, cfg.CellSize, 0)

	got := AdvancePlayer(grid, start, MovementInput{Forward: true, TurnLeft: true}, cfg)

	if got.X != start.X+cfg.MoveSpeed || got.Y != start.Y {
		t.Errorf("position = (%v,%v), want (%v,%v)", got.X, got.Y, start.X+cfg.MoveSpeed, start.Y)
	}
	if got.Heading != -cfg.RotateSpeed {
		t.Errorf("heading = %v, want %v", got.Heading, -cfg.RotateSpeed)
	}
}

func TestAdvancePlayer_ForwardAndBackwardCancel(t *testing.T) {
	grid := corridorGrid(t)
	cfg := DefaultMoveConfig()
	start := world.PoseAtCell(world.Position{Row: 1, Col: 3}, cfg.CellSize, 0)

	got := AdvancePlayer(grid, start, MovementInput{Forward: true, Backward: true}, cfg)
	if math.Abs(got.X-start.X) > 1e-9 || math.Abs(got.Y-start.Y) > 1e-9 {
		t.Errorf("pose moved to %v, want %v", got, start)
	}
}

func TestAdvancePlayer_TurnsCancel(t *testing.T) {
	grid := corridorGrid(t)
	cfg := DefaultMoveConfig()
	start := world.PoseAtCell(world.Position{Row: 1, Col: 3}, cfg.CellSize, 1)

	got := AdvancePlayer(grid, start, MovementInput{TurnLeft: true, TurnRight: true}, cfg)
	if math.Abs(got.Heading-1) > 1e-12 {
		t.Errorf("heading = %v, want 1", got.Heading)
	}
}

func TestMovementFromActions(t *testing.T) {
	in := MovementFromActions([]engineinput.Action{
		engineinput.ActionMoveBackward,
		engineinput.ActionTurnRight,
		engineinput.ActionQuit,
	})
	want := MovementInput{Backward: true, TurnRight: true}
	if in != want {
		t.Errorf("MovementFromActions = %+v, want %+v", in, want)
	}
	if (MovementInput{}).Any() {
		t.Error("empty input reports Any")
	}
}

func TestTick_EditModeRejected(t *testing.T) {
	g := state.NewGame(corridorGrid(t), 22)
	before := g.Pose

	err := Tick(g, MovementInput{Forward: true}, DefaultMoveConfig())
	if !errors.Is(err, state.ErrWrongMode) {
		t.Fatalf("Tick in edit mode = %v, want ErrWrongMode", err)
	}
	if g.Pose != before {
		t.Error("pose changed in edit mode")
	}
}
