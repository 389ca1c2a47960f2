package world

import (
	"fmt"
	"math"
)

// Pose is a continuous viewpoint in world units (cell size scaled) with a
// heading in radians. Heading is never normalised.
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// PoseAtCell returns a pose centred on the given cell
func PoseAtCell(p Position, cellSize, heading float64) Pose {
	return Pose{
		X:       (float64(p.Col) + 0.5) * cellSize,
		Y:       (float64(p.Row) + 0.5) * cellSize,
		Heading: heading,
	}
}

// CellAt converts a continuous coordinate to the containing cell.
// Floor division keeps negative coordinates outside the grid.
func CellAt(x, y, cellSize float64) Position {
	return Position{
		Row: int(math.Floor(y / cellSize)),
		Col: int(math.Floor(x / cellSize)),
	}
}

// Cell returns the cell the pose stands in
func (p Pose) Cell(cellSize float64) Position {
	return CellAt(p.X, p.Y, cellSize)
}

// Forward returns the unit heading vector
func (p Pose) Forward() (dx, dy float64) {
	return math.Cos(p.Heading), math.Sin(p.Heading)
}

// Translate returns the pose moved by distance along its heading
func (p Pose) Translate(distance float64) Pose {
	dx, dy := p.Forward()
	p.X += distance * dx
	p.Y += distance * dy
	return p
}

// Turn returns the pose rotated by delta radians
func (p Pose) Turn(delta float64) Pose {
	p.Heading += delta
	return p
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.2f,%.2f @ %.3f rad)", p.X, p.Y, p.Heading)
}
