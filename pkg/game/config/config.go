// Package config holds the startup settings: built-in defaults, overridden by
// a .env file and MAZE_* environment variables, overridden by flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"

	"mazecaster/pkg/engine/raycast"
	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/gameplay"
	"mazecaster/pkg/game/i18n"
)

// ErrInvalidConfig is returned for unparsable or out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// NoSeed leaves the grid solid at startup
const NoSeed int64 = -1

// Config holds the application's configuration values.
type Config struct {
	GridWidth     int     // cells, odd
	GridHeight    int     // cells, odd
	CellSize      float64 // world units per cell; also editor pixels per cell
	FOV           float64 // radians
	MoveSpeed     float64 // world units per tick
	RotateSpeed   float64 // radians per tick
	MaxDepthCells float64 // render distance in cells
	ScreenWidth   int     // 0 derives GridWidth*CellSize
	ScreenHeight  int     // 0 derives GridHeight*CellSize
	ColumnStride  int     // pixels per ray
	TPS           int     // ticks per second
	Fisheye       bool    // cosine-correct ray distances
	Renderer      string  // ebiten | tui
	Language      string  // catalogue name
	Seed          int64   // generate at startup unless NoSeed
	StartRow      int     // player spawn cell
	StartCol      int
	Snapshot      bool // print one ASCII frame and exit
	Keys          bool // print the key bindings and exit
}

// Default returns the stock settings
func Default() Config {
	return Config{
		GridWidth:     33,
		GridHeight:    33,
		CellSize:      22,
		FOV:           math.Pi / 3,
		MoveSpeed:     2,
		RotateSpeed:   0.05,
		MaxDepthCells: 20,
		ColumnStride:  2,
		TPS:           30,
		Renderer:      RendererEbiten,
		Language:      i18n.DefaultLanguage,
		Seed:          NoSeed,
		StartRow:      1,
		StartCol:      1,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and builds a Config from defaults plus MAZE_* variables.
// A missing file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env: %w", err)
		}
		log.Printf("[CONFIG] .env file not found, using environment and defaults")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup applies MAZE_* variables found by lookup over the defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	e := envReader{lookup: lookup}

	e.readInt("MAZE_GRID_WIDTH", &c.GridWidth)
	e.readInt("MAZE_GRID_HEIGHT", &c.GridHeight)
	e.readFloat("MAZE_CELL_SIZE", &c.CellSize)
	e.readDegrees("MAZE_FOV_DEGREES", &c.FOV)
	e.readFloat("MAZE_MOVE_SPEED", &c.MoveSpeed)
	e.readFloat("MAZE_ROTATE_SPEED", &c.RotateSpeed)
	e.readFloat("MAZE_MAX_DEPTH", &c.MaxDepthCells)
	e.readInt("MAZE_SCREEN_WIDTH", &c.ScreenWidth)
	e.readInt("MAZE_SCREEN_HEIGHT", &c.ScreenHeight)
	e.readInt("MAZE_COLUMN_STRIDE", &c.ColumnStride)
	e.readInt("MAZE_TPS", &c.TPS)
	e.readBool("MAZE_FISHEYE", &c.Fisheye)
	e.readString("MAZE_RENDERER", &c.Renderer)
	e.readString("MAZE_LANG", &c.Language)
	e.readInt64("MAZE_SEED", &c.Seed)
	e.readInt("MAZE_START_ROW", &c.StartRow)
	e.readInt("MAZE_START_COL", &c.StartCol)

	if e.err != nil {
		return Config{}, e.err
	}
	return c, nil
}

// BindFlags registers a flag for every setting, defaulting to the current values.
func (c *Config) BindFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.GridWidth, "width", c.GridWidth, "grid width in cells (odd)")
	flags.IntVar(&c.GridHeight, "height", c.GridHeight, "grid height in cells (odd)")
	flags.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	flags.Var(degreesValue{&c.FOV}, "fov", "field of view in degrees")
	flags.Float64Var(&c.MoveSpeed, "move-speed", c.MoveSpeed, "movement per tick")
	flags.Float64Var(&c.RotateSpeed, "rotate-speed", c.RotateSpeed, "rotation per tick in radians")
	flags.Float64Var(&c.MaxDepthCells, "depth", c.MaxDepthCells, "render distance in cells")
	flags.IntVar(&c.ScreenWidth, "screen-width", c.ScreenWidth, "view width in pixels (0 = grid width)")
	flags.IntVar(&c.ScreenHeight, "screen-height", c.ScreenHeight, "view height in pixels (0 = grid height)")
	flags.IntVar(&c.ColumnStride, "stride", c.ColumnStride, "pixels per ray")
	flags.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	flags.BoolVar(&c.Fisheye, "fisheye", c.Fisheye, "correct fisheye distortion")
	flags.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer backend: ebiten or tui")
	flags.StringVar(&c.Language, "lang", c.Language, "UI language")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "generate a maze from this seed at startup (-1 = none)")
	flags.IntVar(&c.StartRow, "start-row", c.StartRow, "player spawn row")
	flags.IntVar(&c.StartCol, "start-col", c.StartCol, "player spawn column")
	flags.BoolVar(&c.Snapshot, "snapshot", c.Snapshot, "print one ASCII frame from the spawn point and exit")
	flags.BoolVar(&c.Keys, "keys", c.Keys, "print the key bindings and exit")
}

// ScreenSize returns the first-person view size, deriving unset dimensions
// from the grid so the view matches the editor.
func (c Config) ScreenSize() (width, height int) {
	width, height = c.ScreenWidth, c.ScreenHeight
	if width == 0 {
		width = int(float64(c.GridWidth) * c.CellSize)
	}
	if height == 0 {
		height = int(float64(c.GridHeight) * c.CellSize)
	}
	return width, height
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if err := world.ValidateMazeDimensions(c.GridHeight, c.GridWidth); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.StartRow < 1 || c.StartRow >= c.GridHeight-1 || c.StartCol < 1 || c.StartCol >= c.GridWidth-1 {
		return fmt.Errorf("%w: start (%d,%d) outside the interior", ErrInvalidConfig, c.StartRow, c.StartCol)
	}
	if c.MoveSpeed < 0 || c.RotateSpeed < 0 {
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	}
	if c.TPS < 1 || c.TPS > 240 {
		return fmt.Errorf("%w: tps %d outside 1..240", ErrInvalidConfig, c.TPS)
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		return fmt.Errorf("%w: negative screen size", ErrInvalidConfig)
	}
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		return fmt.Errorf("%w: renderer %q", ErrInvalidConfig, c.Renderer)
	}
	if !slices.Contains(i18n.Languages(), c.Language) {
		return fmt.Errorf("%w: language %q", ErrInvalidConfig, c.Language)
	}
	if c.Seed < NoSeed {
		return fmt.Errorf("%w: seed %d", ErrInvalidConfig, c.Seed)
	}
	if err := c.RaycastConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// RaycastConfig returns the projection settings
func (c Config) RaycastConfig() raycast.Config {
	rc := raycast.DefaultConfig()
	rc.FOV = c.FOV
	rc.ScreenWidth, rc.ScreenHeight = c.ScreenSize()
	rc.ColumnStride = c.ColumnStride
	rc.CellSize = c.CellSize
	rc.MaxDepthCells = c.MaxDepthCells
	rc.FisheyeCorrection = c.Fisheye
	return rc
}

// MoveConfig returns the movement settings
func (c Config) MoveConfig() gameplay.MoveConfig {
	return gameplay.MoveConfig{
		MoveSpeed:   c.MoveSpeed,
		RotateSpeed: c.RotateSpeed,
		CellSize:    c.CellSize,
	}
}

// StartPosition returns the spawn cell
func (c Config) StartPosition() world.Position {
	return world.Position{Row: c.StartRow, Col: c.StartCol}
}

// envReader parses variables into fields, keeping the first error.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) get(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	return e.lookup(key)
}

func (e *envReader) fail(key, value string, err error) {
	e.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, value, err)
}

func (e *envReader) readString(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) readInt(key string, dst *int) {
	if v, ok := e.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) readInt64(key string, dst *int64) {
	if v, ok := e.get(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) readFloat(key string, dst *float64) {
	if v, ok := e.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) readDegrees(key string, dst *float64) {
	if v, ok := e.get(key); ok {
		if err := (degreesValue{dst}).Set(v); err != nil {
			e.fail(key, v, err)
		}
	}
}

func (e *envReader) readBool(key string, dst *bool) {
	if v, ok := e.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = b
	}
}

// degreesValue is a flag.Value that stores radians but reads and prints degrees
type degreesValue struct {
	rad *float64
}

func (d degreesValue) String() string {
	if d.rad == nil {
		return "0"
	}
	return strconv.FormatFloat(*d.rad*180/math.Pi, 'g', -1, 64)
}

func (d degreesValue) Set(s string) error {
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*d.rad = deg * math.Pi / 180
	return nil
}
