package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// MinMazeSize is the smallest width/height a maze can be carved into:
// a one-cell boundary on each side around at least three interior cells.
const MinMazeSize = 5

var (
	// ErrOutOfBounds is returned when a cell index lies outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrInvalidGridDimensions is returned when a grid cannot hold a maze.
	ErrInvalidGridDimensions = errors.New("invalid grid dimensions")
)

// Grid is a fixed-size 2D array of binary cells stored row-major
type Grid struct {
	cells []CellState
	rows  int
	cols  int
}

// NewGrid creates a new all-wall grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (passage) runes.
// Any other rune is treated as a wall. All rows must have equal length.
func ParseGrid(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("parse grid: %w: empty", ErrInvalidGridDimensions)
	}
	g := NewGrid(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d: %w", row, len(line), g.cols, ErrInvalidGridDimensions)
		}
		for col, r := range line {
			if r == '.' {
				g.cells[g.index(row, col)] = Passage
			}
		}
	}
	return g, nil
}

// Build initializes the grid with the given dimensions, all cells Wall
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]CellState, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the interior (not on the perimeter)
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("(%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
}

// Cell returns the state of the cell at row/col
func (g *Grid) Cell(row, col int) (CellState, error) {
	if !g.IsValidPosition(row, col) {
		return Wall, g.outOfBounds(row, col)
	}
	return g.cells[g.index(row, col)], nil
}

// MustCell returns the state at row/col and panics when out of bounds.
// For callers that have already validated the position.
func (g *Grid) MustCell(row, col int) CellState {
	state, err := g.Cell(row, col)
	if err != nil {
		panic(err)
	}
	return state
}

// Set changes the state of the cell at row/col
func (g *Grid) Set(row, col int, state CellState) error {
	if !g.IsValidPosition(row, col) {
		return g.outOfBounds(row, col)
	}
	g.cells[g.index(row, col)] = state
	return nil
}

// Toggle flips the cell at row/col between Wall and Passage
func (g *Grid) Toggle(row, col int) error {
	if !g.IsValidPosition(row, col) {
		return g.outOfBounds(row, col)
	}
	i := g.index(row, col)
	g.cells[i] = g.cells[i].Flip()
	return nil
}

// IsWall reports whether row/col is solid. Positions outside the grid are solid.
func (g *Grid) IsWall(row, col int) bool {
	if !g.IsValidPosition(row, col) {
		return true
	}
	return g.cells[g.index(row, col)] == Wall
}

// IsPassage reports whether row/col is inside the grid and open
func (g *Grid) IsPassage(row, col int) bool {
	return !g.IsWall(row, col)
}

// ResetToWalls fills every cell with Wall
func (g *Grid) ResetToWalls() {
	for i := range g.cells {
		g.cells[i] = Wall
	}
}

// BoundaryIntact reports whether every perimeter cell is a Wall
func (g *Grid) BoundaryIntact() bool {
	intact := true
	g.ForEachCell(func(row, col int, state CellState) {
		if state == Passage && g.IsOnPerimeter(row, col) {
			intact = false
		}
	})
	return intact
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, state CellState)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[g.index(row, col)])
		}
	}
}

// CountPassages returns the number of Passage cells
func (g *Grid) CountPassages() int {
	n := 0
	for _, c := range g.cells {
		if c == Passage {
			n++
		}
	}
	return n
}

// FirstPassage returns the first Passage cell in row-major order
func (g *Grid) FirstPassage() (Position, bool) {
	for i, c := range g.cells {
		if c == Passage {
			return Position{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Position{}, false
}

// ValidateForMaze checks the grid can hold a lattice maze: both dimensions odd and at least MinMazeSize.
func (g *Grid) ValidateForMaze() error {
	return ValidateMazeDimensions(g.rows, g.cols)
}

// ValidateMazeDimensions is ValidateForMaze without a grid, so callers can
// reject sizes before allocating.
func ValidateMazeDimensions(rows, cols int) error {
	if rows < MinMazeSize || cols < MinMazeSize {
		return fmt.Errorf("%dx%d is smaller than %dx%d: %w", rows, cols, MinMazeSize, MinMazeSize, ErrInvalidGridDimensions)
	}
	if rows%2 == 0 || cols%2 == 0 {
		return fmt.Errorf("%dx%d has an even dimension: %w", rows, cols, ErrInvalidGridDimensions)
	}
	return nil
}

// ReachableFrom returns every Passage cell connected to start through
// N/E/S/W steps. The set is empty when start is not a Passage.
func (g *Grid) ReachableFrom(start Position) mapset.Set[Position] {
	visited := mapset.New[Position]()
	if g.IsWall(start.Row, start.Col) {
		return visited
	}

	queue := []Position{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			n := current.Step(dir, 1)
			if g.IsPassage(n.Row, n.Col) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]CellState, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites every cell with src's. Both grids must be the same size.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.rows != g.rows || src.cols != g.cols {
		return fmt.Errorf("copy %dx%d into %dx%d: %w", src.rows, src.cols, g.rows, g.cols, ErrInvalidGridDimensions)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Lines renders the grid as one string per row using '#' and '.'
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		sb.Reset()
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.cells[g.index(row, col)].Symbol())
		}
		lines[row] = sb.String()
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
