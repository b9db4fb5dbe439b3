package search

import "github.com/telepair/lifesearch/internal/rule"

// SetCell is the only legal writer of cell state. It enforces the
// generation-0 pruning gates, maintains the row/col aggregates, and
// pushes the cell onto the set-stack.
func (e *Engine) SetCell(idx int, state rule.State, free bool) Status {
	cell := &e.Graph.Cells[idx]

	if cell.State == state {
		return StatusOK
	}

	if cell.State != rule.UNK {
		return StatusError
	}

	if cell.Gen == 0 {
		p := e.P

		if p.UseCol != 0 && e.Graph.ColInfo[p.UseCol].OnCount == 0 &&
			e.Graph.ColInfo[p.UseCol].SetCount == p.RowMax && e.Inited {
			return StatusError
		}

		if p.UseRow != 0 && e.Graph.RowInfo[p.UseRow].OnCount == 0 &&
			e.Graph.RowInfo[p.UseRow].SetCount == p.ColMax && e.Inited {
			return StatusError
		}

		if state == rule.ON {
			if p.MaxCount != 0 && e.CellCount >= p.MaxCount {
				return StatusError
			}

			if p.NearCols != 0 && cell.Near <= 0 && cell.Col > 1 && e.Inited {
				return StatusError
			}

			if p.ColCells != 0 && cell.ColInfo.OnCount >= p.ColCells && e.Inited {
				return StatusError
			}

			if p.ColWidth != 0 && e.Inited && e.CheckWidth(cell) {
				return StatusError
			}

			if p.NearCols != 0 {
				e.AdjustNear(cell, 1)
			}

			cell.RowInfo.OnCount++
			cell.ColInfo.OnCount++
			cell.ColInfo.SumPos += cell.Row
			e.CellCount++
		}
	}

	if e.NewSet == len(e.SetStack) {
		e.SetStack = append(e.SetStack, idx)
	} else {
		e.SetStack[e.NewSet] = idx
	}
	e.NewSet++

	cell.State = state
	cell.Free = free
	cell.ColInfo.SetCount++
	cell.RowInfo.SetCount++

	if cell.Gen == 0 && cell.ColInfo.SetCount == e.P.RowMax {
		e.FullColumns++
	}

	return StatusOK
}

// Backup pops the set-stack, undoing aggregates as it goes, until it
// finds a free (branchable) choice to flip, or runs out of cells to pop
// (meaning the object cannot exist).
func (e *Engine) Backup() (int, bool) {
	e.searchList = e.fullSearchList

	for e.NewSet != e.BaseSet {
		e.NewSet--
		idx := e.SetStack[e.NewSet]
		cell := &e.Graph.Cells[idx]

		if cell.State == rule.ON && cell.Gen == 0 {
			cell.RowInfo.OnCount--
			cell.ColInfo.OnCount--
			cell.ColInfo.SumPos -= cell.Row
			e.CellCount--
			if e.P.NearCols != 0 {
				e.AdjustNear(cell, -1)
			}
		}

		if cell.Gen == 0 && cell.ColInfo.SetCount == e.P.RowMax {
			e.FullColumns--
		}

		cell.ColInfo.SetCount--
		cell.RowInfo.SetCount--

		if !cell.Free {
			cell.State = rule.UNK
			cell.Free = true
			continue
		}

		e.NextSet = e.NewSet
		return idx, true
	}

	e.NextSet = e.BaseSet
	return 0, false
}
