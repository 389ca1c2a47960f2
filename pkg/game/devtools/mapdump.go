// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mazecaster/pkg/engine/world"
	"mazecaster/pkg/game/state"
)

const mazeDumpFilename = "maze.txt"

// DumpMazeToFile writes a debug dump of the current maze to maze.txt in the
// working directory and returns the absolute path.
func DumpMazeToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mazeDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMazeDump(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteMazeDump writes metadata, a legend and the grid to w.
// Format is human-readable (sections, key: value).
func WriteMazeDump(w io.Writer, g *state.Game) error {
	bw := bufio.NewWriter(w)
	rows, cols := g.Grid.Rows(), g.Grid.Cols()

	player := world.Position{Row: -1, Col: -1}
	if g.Mode == state.ModePlay {
		player = g.Pose.Cell(g.CellSize)
	}

	reachable := 0
	if !g.Grid.IsWall(g.Start.Row, g.Start.Col) {
		reachable = g.Grid.ReachableFrom(g.Start).Size()
	}

	fmt.Fprintln(bw, "=== MAZE DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "mode: %s\n", strings.ToLower(g.Mode.String()))
	if g.HasSeed {
		fmt.Fprintf(bw, "seed: %d\n", g.Seed)
	} else {
		fmt.Fprintln(bw, "seed: none")
	}
	fmt.Fprintf(bw, "grid_rows: %d\n", rows)
	fmt.Fprintf(bw, "grid_cols: %d\n", cols)
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(bw, "start_cell: %d,%d\n", g.Start.Row, g.Start.Col)
	fmt.Fprintf(bw, "player_cell: %d,%d\n", player.Row, player.Col)
	if g.Mode == state.ModePlay {
		fmt.Fprintf(bw, "player_pose: %v\n", g.Pose)
	}
	fmt.Fprintf(bw, "passages: %d\n", g.Grid.CountPassages())
	fmt.Fprintf(bw, "reachable_from_start: %d\n", reachable)
	fmt.Fprintf(bw, "boundary_intact: %v\n", g.Grid.BoundaryIntact())
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, ". = passage  # = wall  @ = player")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map ---")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row == player.Row && col == player.Col {
				bw.WriteByte('@')
				continue
			}
			bw.WriteRune(g.Grid.MustCell(row, col).Symbol())
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "=== END MAZE DUMP ===")

	return bw.Flush()
}
