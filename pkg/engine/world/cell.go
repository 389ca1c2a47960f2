// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// CellState is the binary state of a single grid cell.
type CellState uint8

// Cell states. The zero value is Wall so a freshly allocated grid is solid.
const (
	Wall CellState = iota
	Passage
)

// String returns the name of the state
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Flip returns the opposite state
func (s CellState) Flip() CellState {
	if s == Wall {
		return Passage
	}
	return Wall
}

// Symbol returns the single-character symbol used by dumps and String().
func (s CellState) Symbol() rune {
	if s == Passage {
		return '.'
	}
	return '#'
}

// Position is a row/column cell coordinate.
type Position struct {
	Row int
	Col int
}

// Add returns the position offset by the given row and column deltas
func (p Position) Add(rowDelta, colDelta int) Position {
	return Position{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// Step returns the position n cells away in direction d
func (p Position) Step(d Direction, n int) Position {
	rowDelta, colDelta := d.Delta()
	return p.Add(rowDelta*n, colDelta*n)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
