// Package generator carves mazes into a world.Grid.
package generator

import (
	"context"
	"errors"
	"math/rand"

	"mazecaster/pkg/engine/world"
)

// ErrInvalidStart is returned when the requested start cell lies on the grid boundary.
var ErrInvalidStart = errors.New("start cell must be inside the boundary")

// Rand is the random source a generator draws from. *rand.Rand satisfies it;
// tests substitute scripted sequences.
type Rand interface {
	Intn(n int) int
}

// Options tune a single Generate call
type Options struct {
	// Start is the first lattice cell. nil picks a random odd interior cell from the seeded source.
	Start *world.Position

	// NewRand builds the random source for a seed. nil uses math/rand.
	NewRand func(seed int64) Rand

	// OnCarve is called for every cell turned into a Passage, in carve order.
	OnCarve func(world.Position)
}

func (o Options) rand(seed int64) Rand {
	if o.NewRand != nil {
		return o.NewRand(seed)
	}
	return DefaultRand(seed)
}

// DefaultRand returns the math/rand source used when Options.NewRand is nil
func DefaultRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(ctx context.Context, grid *world.Grid, seed int64, opts Options) error
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker

// GenerateMaze carves a maze into grid from start using the default generator
func GenerateMaze(grid *world.Grid, seed int64, start world.Position) error {
	return DefaultGenerator.Generate(context.Background(), grid, seed, Options{Start: &start})
}

// RandomSeed picks a seed in [0, 9999] like the editor's "random seed" key
func RandomSeed(r Rand) int64 {
	return int64(r.Intn(10000))
}

// shuffleDirections returns the four directions in Fisher–Yates order:
// for i from 3 down to 1, swap i with Intn(i+1).
func shuffleDirections(r Rand) []world.Direction {
	dirs := world.AllDirections()
	for i := len(dirs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// randomLatticeCell picks an odd interior cell, column first
func randomLatticeCell(grid *world.Grid, r Rand) world.Position {
	col := 1 + 2*r.Intn((grid.Cols()-1)/2)
	row := 1 + 2*r.Intn((grid.Rows()-1)/2)
	return world.Position{Row: row, Col: col}
}
