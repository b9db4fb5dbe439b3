package search

import (
	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/rule"
)

// AdjustNear walks the nearCols x nearCols cone into the columns to the
// right of cell (the "previous columns" relative to the search direction)
// and adds inc to each cell's near counter. Must be its own inverse so
// that backtrack restores the counters exactly.
func (e *Engine) AdjustNear(cell *cellgraph.Cell, inc int) {
	g := e.Graph
	idx := indexOf(g, cell)
	nearCols := e.P.NearCols

	for colCount := nearCols; colCount > 0; colCount-- {
		idx = g.Cells[idx].Neighbor[cellgraph.Right]
		cur := idx

		for count := nearCols; count >= 0; count-- {
			g.Cells[cur].Near += inc
			if count == 0 {
				break
			}
			cur = g.Cells[cur].Neighbor[cellgraph.Up]
		}

		cur = g.Cells[idx].Neighbor[cellgraph.Down]
		for count := nearCols; count > 0; count-- {
			g.Cells[cur].Near += inc
			cur = g.Cells[cur].Neighbor[cellgraph.Down]
		}
	}
}

// indexOf recovers a cell's graph index from its (row, col, gen) — cheap
// here since AdjustNear/CheckWidth only ever run on generation-0 cells,
// whose index is a direct arithmetic lookup.
func indexOf(g *cellgraph.Graph, cell *cellgraph.Cell) int {
	idx, _ := g.Index(cell.Row, cell.Col, cell.Gen)
	return idx
}

// CheckWidth reports whether setting cell ON would make its column's
// width exceed colWidth. For row- or flip-row-symmetric columns, width is
// measured only from the fold line to one edge.
func (e *Engine) CheckWidth(cell *cellgraph.Cell) bool {
	p := e.P
	g := e.Graph

	if p.ColWidth == 0 || !e.Inited || cell.Gen != 0 {
		return false
	}

	left := cell.ColInfo.OnCount
	if left <= 0 {
		return false
	}

	uIdx := indexOf(g, cell)
	dIdx := uIdx
	width := p.ColWidth
	minRow, maxRow := cell.Row, cell.Row
	srcMinRow, srcMaxRow := 1, p.RowMax
	full := true

	if (p.RowSym != 0 && cell.Col >= p.RowSym) || (p.FlipRows != 0 && cell.Col >= p.FlipRows) {
		full = false
		srcMaxRow = (p.RowMax + 1) / 2
		if cell.Row > srcMaxRow {
			srcMinRow = p.RowMax/2 + 1
			srcMaxRow = p.RowMax
		}
	}

	for left > 0 {
		if full {
			width--
			if width <= 0 {
				return true
			}
		}

		uIdx = g.Cells[uIdx].Neighbor[cellgraph.Up]
		dIdx = g.Cells[dIdx].Neighbor[cellgraph.Down]
		up := &g.Cells[uIdx]
		down := &g.Cells[dIdx]

		if up.State == rule.ON {
			if up.Row >= srcMinRow {
				minRow = up.Row
			}
			left--
		}

		if down.State == rule.ON {
			if down.Row <= srcMaxRow {
				maxRow = down.Row
			}
			left--
		}
	}

	return maxRow-minRow >= p.ColWidth
}

// SubPeriods reports whether generation 0 is identical to some other
// generation that evenly divides genMax, meaning the found object
// actually has a shorter period than requested.
func (e *Engine) SubPeriods() bool {
	p := e.P
	g := e.Graph

	for gen := 1; gen < p.GenMax; gen++ {
		if p.GenMax%gen != 0 {
			continue
		}

		identical := true
	cells:
		for row := 1; row <= p.RowMax && identical; row++ {
			for col := 1; col <= p.ColMax; col++ {
				i0, _ := g.Index(row, col, 0)
				in, _ := g.Index(row, col, gen)
				if g.Cells[i0].State != g.Cells[in].State {
					identical = false
					break cells
				}
			}
		}

		if identical {
			return true
		}
	}

	return false
}
