// Package raycast renders a first-person view of a world.Grid by marching one
// ray per sampled screen column. The output is a list of column descriptors;
// drawing them is left to the renderer backends.
package raycast

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"mazecaster/pkg/engine/world"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid raycast config")

// Default palette.
var (
	DefaultWallColor    = color.RGBA{R: 15, G: 105, B: 45, A: 255}
	DefaultCeilingColor = color.RGBA{R: 80, G: 157, B: 230, A: 255}
	DefaultFloorColor   = color.RGBA{R: 68, G: 235, B: 124, A: 255}
)

// Config holds the projection and marching parameters.
type Config struct {
	FOV          float64 // radians
	ScreenWidth  int
	ScreenHeight int
	ColumnStride int // pixels per ray

	CellSize      float64
	MaxDepthCells float64
	Step          float64 // march increment in world units

	WallColor    color.RGBA
	CeilingColor color.RGBA
	FloorColor   color.RGBA

	// FisheyeCorrection projects with the perpendicular distance instead of
	// the raw ray length.
	FisheyeCorrection bool
}

// DefaultConfig returns the settings of the stock 33x33 maze window.
func DefaultConfig() Config {
	return Config{
		FOV:           math.Pi / 3,
		ScreenWidth:   726,
		ScreenHeight:  726,
		ColumnStride:  2,
		CellSize:      22,
		MaxDepthCells: 20,
		Step:          1,
		WallColor:     DefaultWallColor,
		CeilingColor:  DefaultCeilingColor,
		FloorColor:    DefaultFloorColor,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.FOV <= 0 || c.FOV >= 2*math.Pi:
		return fmt.Errorf("%w: fov %.3f outside (0, 2pi)", ErrInvalidConfig, c.FOV)
	case c.FisheyeCorrection && c.FOV >= math.Pi:
		// Edge rays past 90 degrees off the heading would project behind the eye.
		return fmt.Errorf("%w: fov %.3f must be below pi with fisheye correction", ErrInvalidConfig, c.FOV)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.ColumnStride <= 0 || c.ColumnStride > c.ScreenWidth:
		return fmt.Errorf("%w: column stride %d", ErrInvalidConfig, c.ColumnStride)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %.2f", ErrInvalidConfig, c.CellSize)
	case c.MaxDepthCells <= 0:
		return fmt.Errorf("%w: max depth %.2f cells", ErrInvalidConfig, c.MaxDepthCells)
	case c.Step <= 0:
		return fmt.Errorf("%w: step %.2f", ErrInvalidConfig, c.Step)
	}
	return nil
}

// MaxDistance is the render distance in world units.
func (c Config) MaxDistance() float64 {
	return c.MaxDepthCells * c.CellSize
}

// NumRays is the number of sampled columns.
func (c Config) NumRays() int {
	return c.ScreenWidth / c.ColumnStride
}

// Ray is the result of marching a single ray.
type Ray struct {
	Angle    float64
	Hit      bool
	Distance float64
	Cell     world.Position
}

// CastRay marches from (x, y) along angle in Step increments until it enters
// a Wall cell, leaves the grid, or reaches the render distance. Only the
// first case is a hit.
func CastRay(grid *world.Grid, x, y, angle float64, cfg Config) Ray {
	ray := Ray{Angle: angle}
	cos, sin := math.Cos(angle), math.Sin(angle)
	maxDist := cfg.MaxDistance()

	for d := cfg.Step; d < maxDist; d += cfg.Step {
		cell := world.CellAt(x+d*cos, y+d*sin, cfg.CellSize)
		if !grid.IsValidPosition(cell.Row, cell.Col) {
			return ray
		}
		if grid.MustCell(cell.Row, cell.Col) == world.Wall {
			ray.Hit = true
			ray.Distance = d
			ray.Cell = cell
			return ray
		}
	}
	return ray
}

// Column describes one sampled screen column.
// Misses carry only the geometry fields; the whole column is background.
type Column struct {
	ScreenX int
	Width   int
	Angle   float64

	Hit      bool
	Distance float64 // projected distance, fisheye-corrected when enabled
	HitCell  world.Position

	Shade      float64
	WallColor  color.RGBA // base wall colour scaled by Shade
	SlabTop    int
	SlabBottom int

	screenHeight int
}

// CeilingSpan returns the [from, to) rows filled with the ceiling colour.
func (c Column) CeilingSpan() (from, to int) {
	if !c.Hit {
		return 0, c.screenHeight / 2
	}
	return 0, clampInt(c.SlabTop, 0, c.screenHeight)
}

// FloorSpan returns the [from, to) rows filled with the floor colour.
func (c Column) FloorSpan() (from, to int) {
	if !c.Hit {
		return c.screenHeight / 2, c.screenHeight
	}
	return clampInt(c.SlabBottom, 0, c.screenHeight), c.screenHeight
}

// Render casts one ray per column for the given pose. An invalid config
// yields no columns.
func Render(grid *world.Grid, pose world.Pose, cfg Config) []Column {
	if cfg.Validate() != nil {
		return nil
	}

	numRays := cfg.NumRays()
	delta := cfg.FOV / float64(numRays)
	start := pose.Heading - cfg.FOV/2
	maxDist := cfg.MaxDistance()
	half := float64(cfg.ScreenHeight) / 2

	columns := make([]Column, numRays)
	for i := range columns {
		angle := start + float64(i)*delta
		col := Column{
			ScreenX:      i * cfg.ColumnStride,
			Width:        cfg.ColumnStride,
			Angle:        angle,
			screenHeight: cfg.ScreenHeight,
		}

		ray := CastRay(grid, pose.X, pose.Y, angle, cfg)
		if ray.Hit {
			d := ray.Distance
			if cfg.FisheyeCorrection {
				d *= math.Cos(angle - pose.Heading)
			}
			height := int(float64(cfg.ScreenHeight) / (d / cfg.CellSize))

			col.Hit = true
			col.Distance = d
			col.HitCell = ray.Cell
			col.Shade = clamp(1-ray.Distance/maxDist, 0, 1)
			col.WallColor = shadeColor(cfg.WallColor, col.Shade)
			col.SlabTop = int(half - float64(height)/2)
			col.SlabBottom = int(half + float64(height)/2)
		}
		columns[i] = col
	}
	return columns
}

func shadeColor(c color.RGBA, shade float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * shade),
		G: uint8(float64(c.G) * shade),
		B: uint8(float64(c.B) * shade),
		A: c.A,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
