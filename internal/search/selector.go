package search

import (
	"sort"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/rule"
)

// initSearchOrder builds the default traversal order over every in-grid
// cell not made redundant by row/col symmetry past its fold line, then
// threads it into the singly linked search chain.
func (e *Engine) initSearchOrder() {
	p := e.P
	g := e.Graph

	var table []int
	for gen := 0; gen < p.GenMax; gen++ {
		for col := 1; col <= p.ColMax; col++ {
			for row := 1; row <= p.RowMax; row++ {
				if p.RowSym != 0 && col >= p.RowSym && row*2 > p.RowMax+1 {
					continue
				}
				if p.ColSym != 0 && row >= p.ColSym && col*2 > p.ColMax+1 {
					continue
				}
				idx, _ := g.Index(row, col, gen)
				table = append(table, idx)
			}
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		return e.orderLess(&g.Cells[table[i]], &g.Cells[table[j]])
	})

	for i := len(table) - 1; i >= 0; i-- {
		next := noCell
		if i+1 < len(table) {
			next = table[i+1]
		}
		g.Cells[table[i]].SearchNext = next
	}

	if len(table) > 0 {
		e.searchList = table[0]
	} else {
		e.searchList = noCell
	}
	e.fullSearchList = e.searchList
}

// orderLess implements the multi-key comparator: gen (unless orderGens),
// column (from middle if
// orderMiddle), parity of row+col+gen, row distance from the middle
// (inverted by orderWide), then gen again.
func (e *Engine) orderLess(c1, c2 *cellgraph.Cell) bool {
	p := e.P

	if !p.OrderGens {
		if c1.Gen != c2.Gen {
			return c1.Gen < c2.Gen
		}
	}

	if p.OrderMiddle {
		midCol := (p.ColMax + 1) / 2
		d1, d2 := abs(c1.Col-midCol), abs(c2.Col-midCol)
		if d1 != d2 {
			return d1 < d2
		}
	} else if c1.Col != c2.Col {
		return c1.Col < c2.Col
	}

	parity1 := (c1.Row + c1.Col + c1.Gen) & 0x01
	parity2 := (c2.Row + c2.Col + c2.Gen) & 0x01
	if parity1 != parity2 {
		return parity1 < parity2
	}

	midRow := (p.RowMax + 1) / 2
	d1, d2 := abs(c1.Row-midRow), abs(c2.Row-midRow)
	if d1 != d2 {
		if p.OrderWide {
			return d1 > d2
		}
		return d1 < d2
	}

	return c1.Gen < c2.Gen
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GetUnknown returns the next cell to branch on under the configured
// selection mode, or ok=false if no unknown cell remains.
func (e *Engine) GetUnknown() (int, bool) {
	if e.P.Follow {
		return e.getAverageUnknown()
	}
	return e.getNormalUnknown()
}

// getNormalUnknown walks the search chain from the cursor and returns
// the first choosable unknown cell.
func (e *Engine) getNormalUnknown() (int, bool) {
	g := e.Graph
	for idx := e.searchList; idx != noCell; idx = g.Cells[idx].SearchNext {
		c := &g.Cells[idx]
		if !c.Choose {
			continue
		}
		if c.State == rule.UNK {
			e.searchList = idx
			return idx, true
		}
	}
	return 0, false
}

// getAverageUnknown picks, in each column in turn, the unknown cell
// farthest from the column's "wanted row" (the average row of the
// nearest previous column with ON cells), so that trying OFF first
// drives the eventual ON cells toward that row.
func (e *Engine) getAverageUnknown() (int, bool) {
	g := e.Graph
	p := e.P

	idx := e.searchList
	for idx != noCell {
		e.searchList = idx
		curCol := g.Cells[idx].Col

		testCol := curCol - 1
		for testCol > 0 && g.ColInfo[testCol].OnCount <= 0 {
			testCol--
		}

		wantRow := (p.RowMax + 1) / 2
		if testCol > 0 {
			wantRow = g.ColInfo[testCol].SumPos / g.ColInfo[testCol].OnCount
		}

		bestIdx := noCell
		bestDist := -1

		for idx != noCell && g.Cells[idx].Col == curCol {
			c := &g.Cells[idx]
			if c.Choose && c.State == rule.UNK {
				dist := abs(c.Row - wantRow)
				if dist > bestDist {
					bestIdx = idx
					bestDist = dist
				}
			}
			idx = c.SearchNext
		}

		if bestIdx != noCell {
			return bestIdx, true
		}
	}

	return 0, false
}

// Choose picks the state to try first for an unknown cell: OFF by
// default, or (with followGens) the state already decided by the cell's
// past or future generation.
func (e *Engine) Choose(idx int) rule.State {
	g := e.Graph
	c := &g.Cells[idx]

	if e.P.FollowGens {
		past := g.Cells[c.Past].State
		future := g.Cells[c.Future].State
		if past == rule.ON || future == rule.ON {
			return rule.ON
		}
		if past == rule.OFF || future == rule.OFF {
			return rule.OFF
		}
	}

	return rule.OFF
}
