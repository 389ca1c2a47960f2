package devtools

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/state"
)

func TestWriteMazeDump_Edit(t *testing.T) {
	g := state.NewGame(world.NewGrid(7, 7), 22)

	var buf bytes.Buffer
	if err := WriteMazeDump(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"mode: edit",
		"seed: none",
		"grid_rows: 7",
		"passages: 0",
		"reachable_from_start: 0",
		"boundary_intact: true",
		"#######\n#######\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	_, mapSection, _ := strings.Cut(out, "--- Map ---\n")
	if strings.Contains(mapSection, "@") {
		t.Error("player drawn in edit mode")
	}
}

func TestWriteMazeDump_PlayMarksPlayer(t *testing.T) {
	g := state.NewGame(world.NewGrid(7, 7), 22)
	if err := g.Generate(context.Background(), 42); err != nil {
		t.Fatal(err)
	}
	if err := g.EnterPlay(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteMazeDump(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "seed: 42") {
		t.Error("seed missing")
	}
	_, mapSection, ok := strings.Cut(out, "--- Map ---\n")
	if !ok {
		t.Fatal("no map section")
	}
	lines := strings.Split(mapSection, "\n")
	cell := g.Pose.Cell(g.CellSize)
	if got := lines[cell.Row][cell.Col]; got != '@' {
		t.Errorf("map[%d][%d] = %q, want '@'", cell.Row, cell.Col, got)
	}
	if n := strings.Count(mapSection, "@"); n != 1 {
		t.Errorf("%d player markers, want 1", n)
	}
}
