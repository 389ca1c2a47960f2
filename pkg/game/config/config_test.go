package config

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_Valid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	w, h := c.ScreenSize()
	assert.Equal(t, 726, w)
	assert.Equal(t, 726, h)

	rc := c.RaycastConfig()
	assert.Equal(t, 363, rc.NumRays())
	assert.InDelta(t, 440, rc.MaxDistance(), 1e-9)
	assert.False(t, rc.FisheyeCorrection)
}

func TestFromLookup_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"MAZE_GRID_WIDTH=21\n"+
			"MAZE_GRID_HEIGHT=15\n"+
			"MAZE_FOV_DEGREES=90\n"+
			"MAZE_FISHEYE=true\n"+
			"MAZE_RENDERER=tui\n"+
			"MAZE_SEED=42\n"), 0o644))

	env, err := godotenv.Read(path)
	require.NoError(t, err)

	c, err := FromLookup(lookupMap(env))
	require.NoError(t, err)
	assert.Equal(t, 21, c.GridWidth)
	assert.Equal(t, 15, c.GridHeight)
	assert.InDelta(t, math.Pi/2, c.FOV, 1e-12)
	assert.True(t, c.Fisheye)
	assert.Equal(t, RendererTUI, c.Renderer)
	assert.EqualValues(t, 42, c.Seed)
	assert.NoError(t, c.Validate())
}

func TestFromLookup_ParseError(t *testing.T) {
	_, err := FromLookup(lookupMap(map[string]string{"MAZE_TPS": "fast"}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("MAZE_GRID_WIDTH", "11")
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 11, c.GridWidth)
}

func TestBindFlags_OverrideDefaults(t *testing.T) {
	c := Default()
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	c.BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"-width", "9", "-fov", "45", "-seed", "7", "-renderer", "tui"}))

	assert.Equal(t, 9, c.GridWidth)
	assert.InDelta(t, math.Pi/4, c.FOV, 1e-12)
	assert.EqualValues(t, 7, c.Seed)
	assert.Equal(t, RendererTUI, c.Renderer)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"even width":     func(c *Config) { c.GridWidth = 32 },
		"small height":   func(c *Config) { c.GridHeight = 3 },
		"negative width": func(c *Config) { c.GridWidth = -5 },
		"start on edge":  func(c *Config) { c.StartRow = 0 },
		"start outside":  func(c *Config) { c.StartCol = 40 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"renderer":       func(c *Config) { c.Renderer = "sdl" },
		"language":       func(c *Config) { c.Language = "xx" },
		"seed":           func(c *Config) { c.Seed = -2 },
		"stride":         func(c *Config) { c.ColumnStride = 0 },
		"fov":            func(c *Config) { c.FOV = 0 },
		"cell":           func(c *Config) { c.CellSize = 0 },
		"speed":          func(c *Config) { c.MoveSpeed = -1 },
		"huge even":      func(c *Config) { c.GridWidth = 1 << 30 },
		"wide fisheye": func(c *Config) {
			c.Fisheye = true
			c.FOV = 1.5 * math.Pi
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
