package plot

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/lixenwraith/qmath/fixed"
)

// WriteASCII renders f over v as width x height lines of plain text,
// for output that is not an interactive terminal.
func WriteASCII(w io.Writer, f Func, v Viewport, width, height int) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrViewport, "grid %dx%d", width, height)
	}

	grid := make([][]byte, height)
	for y := range grid {
		grid[y] = make([]byte, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	axisRow := v.Row(0, height)
	axisCol := v.Column(0, width)
	if axisRow >= 0 {
		for x := 0; x < width; x++ {
			grid[axisRow][x] = '-'
		}
	}
	if axisCol >= 0 {
		for y := 0; y < height; y++ {
			grid[y][axisCol] = '|'
		}
		if axisRow >= 0 {
			grid[axisRow][axisCol] = '+'
		}
	}

	for x, row := range Trace(f, v, width, height) {
		if row >= 0 {
			grid[row][x] = '*'
		}
	}

	bw := bufio.NewWriter(w)
	for _, line := range grid {
		bw.Write(line)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write plot")
}

// short formats q with three decimals for axis labels
func short(q fixed.Q64) string {
	return strconv.FormatFloat(q.Float(), 'f', 3, 64)
}
