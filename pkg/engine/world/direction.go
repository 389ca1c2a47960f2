package world

import "math"

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// row/col unit steps; rows grow southwards like screen y
var directionDeltas = [...][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// AllDirections returns the four directions in canonical order.
// A fresh slice is returned each call so callers may shuffle it in place.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Heading returns the pose heading (radians) that faces this direction.
// East is 0 and angles grow clockwise on screen because y points down.
func (d Direction) Heading() float64 {
	switch d {
	case East:
		return 0
	case South:
		return math.Pi / 2
	case West:
		return math.Pi
	case North:
		return -math.Pi / 2
	default:
		return 0
	}
}
