package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/generator"
)

type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(world.NewGrid(7, 7), 10)
	g.Rand = fixedRand(1234)
	return g
}

func TestNewGame_StartsInEditWithSolidGrid(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, ModeEdit, g.Mode)
	assert.Equal(t, 0, g.Grid.CountPassages())
	assert.False(t, g.HasSeed)
}

func TestSeedEntry(t *testing.T) {
	g := newTestGame(t)
	for _, d := range []int{4, 2, 7} {
		require.NoError(t, g.AppendSeedDigit(d))
	}
	require.NoError(t, g.BackspaceSeed())
	assert.Equal(t, "42", g.SeedText)

	require.NoError(t, g.SubmitSeed(context.Background()))
	assert.True(t, g.HasSeed)
	assert.EqualValues(t, 42, g.Seed)
	assert.Equal(t, "42", g.SeedText)

	want := world.NewGrid(7, 7)
	require.NoError(t, generator.DefaultGenerator.Generate(context.Background(), want, 42, generator.Options{}))
	assert.True(t, g.Grid.Equal(want), "submitted seed should reproduce the generator output")
}

func TestBackspaceOnEmptyBuffer(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.BackspaceSeed())
	assert.Equal(t, "", g.SeedText)
}

func TestSubmitSeed_InvalidLeavesGridAlone(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Grid.Set(3, 3, world.Passage))
	before := g.Grid.Clone()

	err := g.SubmitSeed(context.Background())
	assert.ErrorIs(t, err, ErrInvalidSeedInput)
	assert.True(t, g.Grid.Equal(before))
	assert.False(t, g.HasSeed)
}

func TestParseSeed(t *testing.T) {
	good := map[string]int64{"0": 0, "42": 42, "0009": 9, "9223372036854775807": 9223372036854775807}
	for text, want := range good {
		got, err := ParseSeed(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
	for _, text := range []string{"", "-1", "+1", "12a", " 1", "9223372036854775808"} {
		_, err := ParseSeed(text)
		assert.ErrorIs(t, err, ErrInvalidSeedInput, "%q", text)
	}
}

func TestRandomizeSeed_ShowsSeedInBuffer(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.RandomizeSeed(context.Background()))
	assert.EqualValues(t, 1234, g.Seed)
	assert.Equal(t, "1234", g.SeedText)
	assert.Equal(t, 2*9-1, g.Grid.CountPassages())
}

func TestClearGrid(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Generate(context.Background(), 5))
	require.NoError(t, g.ClearGrid())
	assert.Equal(t, 0, g.Grid.CountPassages())
}

func TestToggleCell_OutOfBounds(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.ToggleCell(2, 2))
	assert.Equal(t, world.Passage, g.Grid.MustCell(2, 2))
	assert.ErrorIs(t, g.ToggleCell(7, 0), world.ErrOutOfBounds)
}

func TestEnterPlay_SpawnsAtStartCentre(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Grid.Set(1, 1, world.Passage))
	require.NoError(t, g.EnterPlay())
	assert.Equal(t, ModePlay, g.Mode)
	assert.Equal(t, world.Pose{X: 15, Y: 15}, g.Pose)
}

func TestEnterPlay_RelocatesOffWall(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Grid.Set(3, 4, world.Passage))
	require.NoError(t, g.Grid.Set(5, 1, world.Passage))
	require.NoError(t, g.EnterPlay())
	assert.Equal(t, world.Position{Row: 3, Col: 4}, g.Pose.Cell(g.CellSize))
}

func TestEnterPlay_NoPassage(t *testing.T) {
	g := newTestGame(t)
	assert.ErrorIs(t, g.EnterPlay(), ErrNoPassage)
	assert.Equal(t, ModeEdit, g.Mode)
}

func TestModeGuards(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Generate(context.Background(), 1))
	assert.ErrorIs(t, g.ReturnToEdit(), ErrWrongMode)
	assert.ErrorIs(t, g.RequirePlay(), ErrWrongMode)

	require.NoError(t, g.EnterPlay())
	ctx := context.Background()
	editOnly := map[string]func() error{
		"ToggleCell":      func() error { return g.ToggleCell(1, 1) },
		"AppendSeedDigit": func() error { return g.AppendSeedDigit(1) },
		"BackspaceSeed":   g.BackspaceSeed,
		"SubmitSeed":      func() error { return g.SubmitSeed(ctx) },
		"RandomizeSeed":   func() error { return g.RandomizeSeed(ctx) },
		"ClearGrid":       g.ClearGrid,
		"EnterPlay":       g.EnterPlay,
	}
	before := g.Grid.Clone()
	for name, op := range editOnly {
		assert.ErrorIs(t, op(), ErrWrongMode, name)
	}
	assert.True(t, g.Grid.Equal(before), "play mode must not mutate the grid")

	require.NoError(t, g.RequirePlay())
	require.NoError(t, g.ReturnToEdit())
	assert.Equal(t, ModeEdit, g.Mode)
	assert.NoError(t, g.ToggleCell(1, 1))
}

func TestAddMessage_Bounded(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprint(i))
	}
	assert.Equal(t, []string{"3", "4", "5", "6", "7"}, g.Messages)
	g.ClearMessages()
	assert.Empty(t, g.Messages)
}
