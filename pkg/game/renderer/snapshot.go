package renderer

import (
	"bufio"
	"fmt"
	"io"

	"mazecaster/pkg/engine/raycast"
	"mazecaster/pkg/game/state"
)

// WriteSnapshot writes a one-line header and a single first-person frame of
// the current pose. colored selects 24-bit escapes over plain characters.
func WriteSnapshot(w io.Writer, g *state.Game, cfg raycast.Config, cols, rows int, colored bool) error {
	bw := bufio.NewWriter(w)

	header := fmt.Sprintf("seed %d  pose %v  cell %v", g.Seed, g.Pose, g.Pose.Cell(cfg.CellSize))
	if colored {
		header = StyleTitle.Sprint(header)
	}
	fmt.Fprintln(bw, header)

	frame := ASCIIFrame(g.Grid, g.Pose, cfg, cols, rows-1)
	lines := frame.Lines()
	if colored {
		lines = frame.ColorLines()
	}
	for _, line := range lines {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}
