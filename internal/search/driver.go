package search

import "github.com/telepair/lifesearch/internal/rule"

// Reporter receives periodic progress and checkpoint callbacks from the
// driver between top-level branch decisions, never from inside
// propagation. A nil field disables that callback.
type Reporter struct {
	// Checkpoint is called every dumpFreq generations consumed.
	Checkpoint func(e *Engine)
	// Progress is called when fullColumns has advanced by outputCols
	// since the last call.
	Progress func(e *Engine)
	// Interrupted is polled between branches; returning true makes
	// Search pause and call Yield before continuing.
	Interrupted func() bool
	Yield       func(e *Engine)
}

// Go retries cell at the opposite state each time propagation fails,
// backing up to the most recent free choice, until propagation succeeds
// or no free choices remain.
func (e *Engine) Go(cellIdx int, state rule.State, free bool) Status {
	for {
		if e.Proceed(cellIdx, state, free) == StatusOK {
			return StatusOK
		}

		idx, ok := e.Backup()
		if !ok {
			return StatusError
		}

		cell := &e.Graph.Cells[idx]
		free = false
		if cell.State == rule.ON {
			state = rule.OFF
		} else {
			state = rule.ON
		}
		cell.State = rule.UNK
		cellIdx = idx
	}
}

// Search drives the top-level backtracking loop: branch, propagate, and
// on contradiction back up to the nearest free choice; report FOUND when
// no unknown cells remain, or NOT_EXIST when the set-stack empties with
// no free choice left to flip.
func (e *Engine) Search(hooks Reporter, dumpFreq int) Status {
	e.MarkInited()

	cellIdx, ok := e.GetUnknown()
	var state rule.State
	var free bool

	if !ok {
		idx, backOK := e.Backup()
		if !backOK {
			return StatusNotExist
		}
		cell := &e.Graph.Cells[idx]
		free = false
		if cell.State == rule.ON {
			state = rule.OFF
		} else {
			state = rule.ON
		}
		cell.State = rule.UNK
		cellIdx = idx
	} else {
		state = e.Choose(cellIdx)
		free = true
	}

	dumpCount := 0

	for {
		if e.Go(cellIdx, state, free) != StatusOK {
			return StatusNotExist
		}

		if dumpFreq > 0 {
			dumpCount++
			if dumpCount >= dumpFreq {
				dumpCount = 0
				if hooks.Checkpoint != nil {
					hooks.Checkpoint(e)
				}
			}
		}

		needReport := e.OutputCols > 0 && e.FullColumns >= e.OutputLastCols+e.OutputCols
		if needReport {
			e.OutputLastCols = e.FullColumns
		}
		if e.OutputLastCols > e.FullColumns {
			e.OutputLastCols = e.FullColumns
		}
		if needReport && hooks.Progress != nil {
			hooks.Progress(e)
		}

		if hooks.Interrupted != nil && hooks.Interrupted() && hooks.Yield != nil {
			hooks.Yield(e)
		}

		cellIdx, ok = e.GetUnknown()
		if !ok {
			return StatusFound
		}

		state = e.Choose(cellIdx)
		free = true
	}
}

// SearchObject repeatedly calls Search, silently rejecting a FOUND result
// that fails a check Search itself has no opinion on and resuming the
// search for the next candidate, until Search returns something other
// than FOUND:
//
//   - useRow names a row that must have at least one ON cell at
//     generation 0; a FOUND object whose row is entirely OFF is rejected.
//   - unless allObjects is set, an object whose generation 0 recurs at
//     some shorter sub-period of genMax is rejected as a duplicate of a
//     smaller object already reachable on its own search.
//
// Both rejections resume the search exactly as a fresh call to Search
// would: GetUnknown reports no unknown cells left, so Search's own
// Backup-and-flip branch advances past the rejected choice.
func (e *Engine) SearchObject(hooks Reporter, dumpFreq int) Status {
	for {
		status := e.Search(hooks, dumpFreq)
		if status != StatusFound {
			return status
		}

		if e.P.UseRow != 0 && e.Graph.RowInfo[e.P.UseRow].OnCount == 0 {
			continue
		}

		if !e.P.AllObjects && e.SubPeriods() {
			continue
		}

		return StatusFound
	}
}
