package cellgraph

// SymCell returns the symmetry partner of c under the graph's configured
// symmetry switches, or ok=false if c has no partner (no symmetry is
// configured, c lies on the excluded side of a single-axis fold, or c
// lies on the mirror line of a diagonal symmetry).
func (g *Graph) SymCell(c *Cell) (int, bool) {
	p := g.P
	if !p.HasSymmetry() {
		return 0, false
	}

	row, col, gen := c.Row, c.Col, c.Gen
	nRow := p.RowMax + 1 - row
	nCol := p.ColMax + 1 - col

	if p.PointSym {
		idx, _ := g.find(nRow, nCol, gen)
		return idx, true
	}

	switch {
	case p.RowSym != 0 && p.ColSym == 0:
		if col < p.RowSym {
			return 0, false
		}
		idx, _ := g.find(nRow, col, gen)
		return idx, true

	case p.ColSym != 0 && p.RowSym == 0:
		if row < p.ColSym {
			return 0, false
		}
		idx, _ := g.find(row, nCol, gen)
		return idx, true

	case p.RowSym != 0 && p.ColSym != 0:
		if nRow == row || nCol == col {
			idx, _ := g.find(nRow, nCol, gen)
			return idx, true
		}
		if (row < nRow) == (col < nCol) {
			idx, _ := g.find(row, nCol, gen)
			return idx, true
		}
		idx, _ := g.find(nRow, col, gen)
		return idx, true
	}

	// Diagonal symmetries (see DESIGN.md): the transpose/anti-transpose
	// partner below reads "forward/backward diagonal symmetry" as the
	// natural reflection across a square rectangle's diagonal.
	if p.FwdSym {
		if row == col {
			return 0, false
		}
		idx, _ := g.find(col, row, gen)
		return idx, true
	}

	if p.BwdSym {
		aRow := p.ColMax + 1 - col
		aCol := p.RowMax + 1 - row
		if row == aRow && col == aCol {
			return 0, false
		}
		idx, _ := g.find(aRow, aCol, gen)
		return idx, true
	}

	return 0, false
}

// LoopCells joins the cells at idx1 and idx2 into a single circular
// must-be-equal loop, merging their existing loops if either already has
// one. If any cell in the merged loop is frozen, every cell in it becomes
// frozen.
func (g *Graph) LoopCells(idx1, idx2 int) {
	if idx1 == idx2 {
		return
	}

	c1 := &g.Cells[idx1]
	c2 := &g.Cells[idx2]

	if c1.Loop == noCell {
		c1.Loop = idx1
	}
	if c2.Loop == noCell {
		c2.Loop = idx2
	}

	for cur := c1.Loop; cur != idx1; cur = g.Cells[cur].Loop {
		if cur == idx2 {
			return
		}
	}

	c1.Loop, c2.Loop = c2.Loop, c1.Loop

	frozen := c1.Frozen
	for cur := c1.Loop; cur != idx1; cur = g.Cells[cur].Loop {
		if g.Cells[cur].Frozen {
			frozen = true
		}
	}

	if frozen {
		c1.Frozen = true
		for cur := c1.Loop; cur != idx1; cur = g.Cells[cur].Loop {
			g.Cells[cur].Frozen = true
		}
	}
}
