package generator

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/stack"

	"mazecaster/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze by depth-first backtracking on
// the odd-cell lattice, two cells per step.
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// carveFrame is one level of the depth-first walk: the lattice cell, its
// shuffled directions and how many of them have been tried.
type carveFrame struct {
	pos  world.Position
	dirs []world.Direction
	next int
}

// Generate replaces every cell of dst with a maze carved from seed.
// The walk uses an explicit stack so depth is bounded by heap, not goroutine stack.
// ctx is checked between carving steps. Carving happens on a scratch grid, so
// on any error dst keeps its previous cells.
func (g *BacktrackerGenerator) Generate(ctx context.Context, dst *world.Grid, seed int64, opts Options) error {
	if err := dst.ValidateForMaze(); err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	grid := world.NewGrid(dst.Rows(), dst.Cols()) // all Wall

	rng := opts.rand(seed)

	var start world.Position
	if opts.Start != nil {
		start = *opts.Start
		if !grid.IsValidPosition(start.Row, start.Col) {
			return fmt.Errorf("generate maze: start %v: %w", start, world.ErrOutOfBounds)
		}
		if !grid.IsPlayablePosition(start.Row, start.Col) {
			return fmt.Errorf("generate maze: start %v: %w", start, ErrInvalidStart)
		}
	} else {
		start = randomLatticeCell(grid, rng)
	}

	carve := func(p world.Position) {
		// positions were validated by the caller
		_ = grid.Set(p.Row, p.Col, world.Passage)
		if opts.OnCarve != nil {
			opts.OnCarve(p)
		}
	}

	carve(start)
	frames := stack.New[*carveFrame]()
	frames.Push(&carveFrame{pos: start, dirs: shuffleDirections(rng)})

	for frames.Size() > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generate maze: %w", err)
		}

		f := frames.Peek()
		if f.next >= len(f.dirs) {
			frames.Pop()
			continue
		}
		dir := f.dirs[f.next]
		f.next++

		next := f.pos.Step(dir, 2)
		if !grid.IsPlayablePosition(next.Row, next.Col) || grid.MustCell(next.Row, next.Col) != world.Wall {
			continue
		}

		carve(f.pos.Step(dir, 1))
		carve(next)
		frames.Push(&carveFrame{pos: next, dirs: shuffleDirections(rng)})
	}

	return dst.CopyFrom(grid)
}
