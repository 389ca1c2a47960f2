// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	engineinput "mazecaster/pkg/engine/input"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/state"
)

// MovementInput is the set of movement keys held during one tick
type MovementInput struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// Any reports whether any movement key is held
func (in MovementInput) Any() bool {
	return in.Forward || in.Backward || in.TurnLeft || in.TurnRight
}

// MovementFromActions folds held actions into a MovementInput
func MovementFromActions(actions []engineinput.Action) MovementInput {
	var in MovementInput
	for _, a := range actions {
		switch a {
		case engineinput.ActionMoveForward:
			in.Forward = true
		case engineinput.ActionMoveBackward:
			in.Backward = true
		case engineinput.ActionTurnLeft:
			in.TurnLeft = true
		case engineinput.ActionTurnRight:
			in.TurnRight = true
		}
	}
	return in
}

// MoveConfig holds per-tick speeds
type MoveConfig struct {
	MoveSpeed   float64 // world units per tick
	RotateSpeed float64 // radians per tick
	CellSize    float64
}

// DefaultMoveConfig returns the stock speeds for a 22-unit cell
func DefaultMoveConfig() MoveConfig {
	return MoveConfig{MoveSpeed: 2, RotateSpeed: 0.05, CellSize: 22}
}

// TryMove steps delta units along the heading (negative moves backwards).
// The move is committed only if the destination cell is a Passage; positions
// outside the grid count as walls. A rejected move returns the pose unchanged.
func TryMove(grid *world.Grid, pose world.Pose, delta, cellSize float64) (world.Pose, bool) {
	candidate := pose.Translate(delta)
	cell := candidate.Cell(cellSize)
	if grid.IsWall(cell.Row, cell.Col) {
		return pose, false
	}
	return candidate, true
}

// Rotate turns the pose by delta radians. Rotation never collides.
func Rotate(pose world.Pose, delta float64) world.Pose {
	return pose.Turn(delta)
}

// AdvancePlayer applies one tick of input: forward, backward, turn left,
// turn right, in that order. Each translation is checked on its own so
// holding forward and backward together can still move.
func AdvancePlayer(grid *world.Grid, pose world.Pose, in MovementInput, cfg MoveConfig) world.Pose {
	if in.Forward {
		pose, _ = TryMove(grid, pose, cfg.MoveSpeed, cfg.CellSize)
	}
	if in.Backward {
		pose, _ = TryMove(grid, pose, -cfg.MoveSpeed, cfg.CellSize)
	}
	if in.TurnLeft {
		pose = Rotate(pose, -cfg.RotateSpeed)
	}
	if in.TurnRight {
		pose = Rotate(pose, cfg.RotateSpeed)
	}
	return pose
}

// Tick advances the player for one frame. Play mode only.
func Tick(g *state.Game, in MovementInput, cfg MoveConfig) error {
	if err := g.RequirePlay(); err != nil {
		return err
	}
	g.Pose = AdvancePlayer(g.Grid, g.Pose, in, cfg)
	return nil
}
