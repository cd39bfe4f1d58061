package mosaic

import "math"

// Grid is the chosen mosaic dimensions in cells.
type Grid struct {
	Rows int
	Cols int
}

// Slot returns the row-major grid slot for sequence position i.
func (g Grid) Slot(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// chooseGrid picks grid dimensions for n cells so that the rendered
// canvas aspect ratio is as close as possible to the target. Closeness is
// measured on the log of the aspect ratio, which treats "twice as wide"
// and "twice as tall" as equally bad. Ties prefer fewer empty trailing
// slots, then fewer columns, so the choice is deterministic.
func chooseGrid(n, cellW, cellH int, target float64) Grid {
	best := Grid{Rows: n, Cols: 1}
	bestScore := math.Inf(1)

	const eps = 1e-9
	for cols := 1; cols <= n; cols++ {
		rows := (n + cols - 1) / cols
		aspect := float64(cols*cellW) / float64(rows*cellH)
		score := math.Abs(math.Log(aspect / target))

		take := score < bestScore-eps
		if !take && score < bestScore+eps && rows*cols < best.Rows*best.Cols {
			take = true
		}
		if take {
			best = Grid{Rows: rows, Cols: cols}
			bestScore = math.Min(bestScore, score)
		}
	}
	return best
}
