package cellgraph

// MapCell computes the image of a generation-(G-1) cell into generation 0
// (forward) or vice versa (backward), applying the configured flips and
// translation in a fixed pipeline: flip rows, then flip columns, then
// rotate quadrants, then translate.
func (g *Graph) MapCell(c *Cell, forward bool) (int, error) {
	p := g.P
	row, col := c.Row, c.Col

	if p.FlipRows != 0 && col >= p.FlipRows {
		row = p.RowMax + 1 - row
	}
	if p.FlipCols != 0 && row >= p.FlipCols {
		col = p.ColMax + 1 - col
	}
	if p.FlipQuads {
		row, col = p.ColMax+1-col, row
	}

	if forward {
		row += p.RowTrans
		col += p.ColTrans
	} else {
		row -= p.RowTrans
		col -= p.ColTrans
	}

	gen := 0
	if !forward {
		gen = p.GenMax - 1
	}

	return g.find(row, col, gen)
}
