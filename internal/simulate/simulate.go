// Package simulate provides a plain full-grid rule-driven stepper used
// to verify that a found object's generation-0 lays out a genuine
// spaceship/oscillator/still-life under its rule: step it genMax times
// (applying whatever row/col translation and flip the search used) and
// check it reproduces generation 0.
package simulate

import "github.com/telepair/lifesearch/internal/rule"

// Grid is a toroidal rows x cols boolean field: ON cells are true.
type Grid struct {
	rows, cols int
	cells      [][]bool
}

// NewGrid returns a rows x cols all-OFF grid.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([][]bool, rows)}
	for i := range g.cells {
		g.cells[i] = make([]bool, cols)
	}
	return g
}

// Set marks (row, col) ON or OFF, wrapping both coordinates toroidally.
func (g *Grid) Set(row, col int, on bool) {
	g.cells[g.wrapRow(row)][g.wrapCol(col)] = on
}

// At reports whether (row, col) is ON, wrapping both coordinates
// toroidally.
func (g *Grid) At(row, col int) bool {
	return g.cells[g.wrapRow(row)][g.wrapCol(col)]
}

func (g *Grid) wrapRow(row int) int {
	row %= g.rows
	if row < 0 {
		row += g.rows
	}
	return row
}

func (g *Grid) wrapCol(col int) int {
	col %= g.cols
	if col < 0 {
		col += g.cols
	}
	return col
}

// countNeighbors counts ON cells in the 8-neighborhood of (row, col),
// wrapping at the grid edges.
func (g *Grid) countNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.At(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// Step advances g by one generation under spec's birth/survival counts
// and returns the result as a new grid; g is left unmodified.
func (g *Grid) Step(spec rule.Spec) *Grid {
	next := NewGrid(g.rows, g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			n := g.countNeighbors(row, col)
			if g.At(row, col) {
				next.cells[row][col] = spec.Live[n]
			} else {
				next.cells[row][col] = spec.Born[n]
			}
		}
	}
	return next
}

// Translated returns a copy of g shifted by (rowTrans, colTrans) and,
// if flipRows/flipCols is set, mirrored along that axis — the same
// transform the solver applies at the generation wraparound boundary.
func (g *Grid) Translated(rowTrans, colTrans int, flipRows, flipCols bool) *Grid {
	out := NewGrid(g.rows, g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.cells[row][col] {
				continue
			}
			r, c := row+rowTrans, col+colTrans
			if flipRows {
				r = g.rows - 1 - r
			}
			if flipCols {
				c = g.cols - 1 - c
			}
			out.Set(r, c, true)
		}
	}
	return out
}

// Equal reports whether g and other agree on every cell.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// VerifyPeriod steps gen0 forward genMax times under spec, applies the
// wraparound transform, and reports whether the result reproduces gen0
// — the same closure condition a found object must satisfy.
func VerifyPeriod(gen0 *Grid, spec rule.Spec, genMax, rowTrans, colTrans int, flipRows, flipCols bool) bool {
	cur := gen0
	for i := 0; i < genMax; i++ {
		cur = cur.Step(spec)
	}
	cur = cur.Translated(rowTrans, colTrans, flipRows, flipCols)
	return cur.Equal(gen0)
}
