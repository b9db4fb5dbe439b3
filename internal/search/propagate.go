package search

import (
	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/rule"
)

// descriptorOf computes the 8-bit neighborhood descriptor for cell,
// reading the eight spatial neighbors' current states.
func descriptorOf(g *cellgraph.Graph, idx int) int {
	c := &g.Cells[idx]
	sum := 0
	for _, d := range c.Neighbor {
		sum += int(g.Cells[d].State)
	}
	return rule.Descriptor(c.State, sum)
}

// Consistify examines cellIdx's past neighborhood and makes sure the
// previous generation can validly produce it, forcing cells via SetCell
// where the tables demand it.
func (e *Engine) Consistify(cellIdx int) Status {
	cell := &e.Graph.Cells[cellIdx]

	if e.P.Parent && cell.Gen == 0 {
		return StatusOK
	}

	prevIdx := cell.Past
	desc := descriptorOf(e.Graph, prevIdx)

	state := e.Table.Transit[desc]
	if state != rule.UNK && state != cell.State {
		if e.SetCell(cellIdx, state, false) == StatusError {
			return StatusError
		}
	}

	flags := e.Table.Implic[desc]
	if flags == 0 || cell.State == rule.UNK {
		return StatusOK
	}

	prev := &e.Graph.Cells[prevIdx]

	if (flags&rule.N0IC0 != 0) && cell.State == rule.OFF &&
		e.SetCell(prevIdx, rule.OFF, false) != StatusOK {
		return StatusError
	}
	if (flags&rule.N1IC0 != 0) && cell.State == rule.ON &&
		e.SetCell(prevIdx, rule.OFF, false) != StatusOK {
		return StatusError
	}
	if (flags&rule.N0IC1 != 0) && cell.State == rule.OFF &&
		e.SetCell(prevIdx, rule.ON, false) != StatusOK {
		return StatusError
	}
	if (flags&rule.N1IC1 != 0) && cell.State == rule.ON &&
		e.SetCell(prevIdx, rule.ON, false) != StatusOK {
		return StatusError
	}

	forced := rule.UNK
	if (flags&rule.N0ICUN0 != 0 && cell.State == rule.OFF) ||
		(flags&rule.N1ICUN0 != 0 && cell.State == rule.ON) {
		forced = rule.OFF
	}
	if (flags&rule.N0ICUN1 != 0 && cell.State == rule.OFF) ||
		(flags&rule.N1ICUN1 != 0 && cell.State == rule.ON) {
		forced = rule.ON
	}

	if forced == rule.UNK {
		return StatusOK
	}

	for _, d := range prev.Neighbor {
		if e.Graph.Cells[d].State == rule.UNK {
			if e.SetCell(d, forced, false) != StatusOK {
				return StatusError
			}
		}
	}

	return StatusOK
}

// Consistify10 checks cellIdx and its future, plus the futures of its
// eight neighbors — every cell whose past neighborhood touches cellIdx.
func (e *Engine) Consistify10(cellIdx int) Status {
	cell := &e.Graph.Cells[cellIdx]

	if e.Consistify(cellIdx) == StatusError {
		return StatusError
	}
	if e.Consistify(cell.Future) == StatusError {
		return StatusError
	}

	for _, d := range cell.Neighbor {
		future := e.Graph.Cells[d].Future
		if e.Consistify(future) == StatusError {
			return StatusError
		}
	}

	return StatusOK
}

// ExamineNext pops the oldest unprocessed set-stack entry and drives it
// through loop enforcement and consistify10.
func (e *Engine) ExamineNext() Status {
	if e.NextSet == e.NewSet {
		return StatusConsistent
	}

	idx := e.SetStack[e.NextSet]
	e.NextSet++
	cell := &e.Graph.Cells[idx]

	if cell.Loop != noCell && cell.Loop != idx {
		if e.SetCell(cell.Loop, cell.State, false) != StatusOK {
			return StatusError
		}
	}

	return e.Consistify10(idx)
}

// Proceed sets cellIdx to state and drains the propagator until
// quiescence or contradiction.
func (e *Engine) Proceed(cellIdx int, state rule.State, free bool) Status {
	if e.SetCell(cellIdx, state, free) != StatusOK {
		return StatusError
	}

	for {
		switch e.ExamineNext() {
		case StatusError:
			return StatusError
		case StatusConsistent:
			return StatusOK
		}
	}
}
