package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/generator"
)

var (
	// ErrWrongMode is returned when an operation is not enabled in the current mode.
	ErrWrongMode = errors.New("operation not available in this mode")
	// ErrInvalidSeedInput is returned by SubmitSeed when the entry buffer is not a non-negative integer.
	ErrInvalidSeedInput = errors.New("seed must be a non-negative integer")
	// ErrNoPassage is returned by EnterPlay when the grid has nowhere to stand.
	ErrNoPassage = errors.New("grid has no passage to spawn in")
)

// Mode is the top-level game mode
type Mode int

const (
	ModeEdit Mode = iota
	ModePlay
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "Edit"
	case ModePlay:
		return "Play"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const maxMessages = 5

// Game represents the state of one maze session
type Game struct {
	Grid *world.Grid
	Mode Mode

	// Pose is only meaningful in ModePlay.
	Pose     world.Pose
	Start    world.Position
	CellSize float64

	SeedText string
	Seed     int64
	HasSeed  bool

	Generator generator.GridGenerator
	Rand      generator.Rand

	Messages []string

	Quit bool
}

// NewGame creates a session in edit mode over grid
func NewGame(grid *world.Grid, cellSize float64) *Game {
	return &Game{
		Grid:      grid,
		Mode:      ModeEdit,
		Start:     world.Position{Row: 1, Col: 1},
		CellSize:  cellSize,
		Generator: generator.DefaultGenerator,
		Rand:      generator.DefaultRand(time.Now().UnixNano()),
		Messages:  make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

func (g *Game) require(m Mode) error {
	if g.Mode != m {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongMode, g.Mode, m)
	}
	return nil
}

// RequirePlay returns ErrWrongMode unless the game is in play mode.
func (g *Game) RequirePlay() error {
	return g.require(ModePlay)
}

// ToggleCell flips one cell. Edit mode only.
func (g *Game) ToggleCell(row, col int) error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	return g.Grid.Toggle(row, col)
}

// AppendSeedDigit appends a decimal digit to the seed entry buffer.
func (g *Game) AppendSeedDigit(d int) error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	if d < 0 || d > 9 {
		return fmt.Errorf("%w: digit %d", ErrInvalidSeedInput, d)
	}
	g.SeedText += string(rune('0' + d))
	return nil
}

// BackspaceSeed removes the last character of the entry buffer.
func (g *Game) BackspaceSeed() error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	if n := len(g.SeedText); n > 0 {
		g.SeedText = g.SeedText[:n-1]
	}
	return nil
}

// SubmitSeed parses the entry buffer and regenerates the maze from it.
// The buffer is kept so the seed stays on screen.
func (g *Game) SubmitSeed(ctx context.Context) error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	seed, err := ParseSeed(g.SeedText)
	if err != nil {
		return err
	}
	return g.Generate(ctx, seed)
}

// RandomizeSeed draws a seed in [0, 9999], shows it and regenerates.
func (g *Game) RandomizeSeed(ctx context.Context) error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	seed := generator.RandomSeed(g.Rand)
	g.SeedText = fmt.Sprint(seed)
	return g.Generate(ctx, seed)
}

// Generate carves a new maze for seed. The start lattice cell is drawn from
// the seeded source, so the seed alone fixes the layout.
func (g *Game) Generate(ctx context.Context, seed int64) error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	if err := g.Generator.Generate(ctx, g.Grid, seed, generator.Options{}); err != nil {
		return err
	}
	g.Seed = seed
	g.HasSeed = true
	return nil
}

// ClearGrid resets every cell to Wall.
func (g *Game) ClearGrid() error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	g.Grid.ResetToWalls()
	return nil
}

// EnterPlay switches to play mode and spawns the player at the centre of
// Start. A walled-in Start falls back to the first passage in row-major order.
func (g *Game) EnterPlay() error {
	if err := g.require(ModeEdit); err != nil {
		return err
	}
	spawn := g.Start
	if g.Grid.IsWall(spawn.Row, spawn.Col) {
		p, ok := g.Grid.FirstPassage()
		if !ok {
			return ErrNoPassage
		}
		spawn = p
	}
	g.Pose = world.PoseAtCell(spawn, g.CellSize, 0)
	g.Mode = ModePlay
	return nil
}

// ReturnToEdit leaves play mode. The grid is untouched.
func (g *Game) ReturnToEdit() error {
	if err := g.require(ModePlay); err != nil {
		return err
	}
	g.Mode = ModeEdit
	return nil
}
