package cellgraph

// FreezeCell ties every generation of (row, col) into one loop and marks
// them frozen, so their states are forced equal across all generations.
func (g *Graph) FreezeCell(row, col int) {
	anchor, _ := g.Index(row, col, 0)

	for gen := 0; gen < g.P.GenMax; gen++ {
		idx, _ := g.Index(row, col, gen)
		g.Cells[idx].Frozen = true
		g.LoopCells(anchor, idx)
	}
}

// ExcludeCone marks choose=false on (row, col, gen) and a widening cone
// of cells in later generations, the same shape swept by the past light
// cone of propagation. tGen ranges gen..genMax-1 (see DESIGN.md for the
// off-by-one upper bound this deliberately does not reproduce).
func (g *Graph) ExcludeCone(row, col, gen int) {
	for tGen := g.P.GenMax - 1; tGen >= gen; tGen-- {
		dist := tGen - gen
		for tRow := row - dist; tRow <= row+dist; tRow++ {
			for tCol := col - dist; tCol <= col+dist; tCol++ {
				idx, err := g.Index(tRow, tCol, tGen)
				if err != nil {
					continue
				}
				g.Cells[idx].Choose = false
			}
		}
	}
}
