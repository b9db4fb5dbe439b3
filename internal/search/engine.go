// Package search implements the backtracking constraint-propagation
// engine: the set-stack and its setCell primitive, the propagator, the
// unknown-cell selector, the top-level search driver, and the pruning
// gates that all act on a *cellgraph.Graph built from a rule.Table.
package search

import (
	"log/slog"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
)

const noCell = -1

// Status is the outcome of a driver-level operation, mirroring the
// original program's five-state status type.
type Status int

const (
	StatusOK Status = iota
	StatusError
	StatusConsistent
	StatusNotExist
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	case StatusConsistent:
		return "CONSISTENT"
	case StatusNotExist:
		return "NOT_EXIST"
	case StatusFound:
		return "FOUND"
	default:
		return "UNKNOWN"
	}
}

// Engine holds every piece of mutable state a search run needs: the cell
// graph, the rule tables, the parameter vector, and the set-stack, all
// threaded through as a single context struct passed by reference.
type Engine struct {
	Graph *cellgraph.Graph
	Table *rule.Table
	P     params.Params
	Log   *slog.Logger

	// SetStack is the append-only log of cells whose state has been
	// fixed, in the order they were set. BaseSet marks the frozen
	// portion laid down during setup; NextSet/NewSet are cursors into
	// the unprocessed tail the propagator still has to examine.
	SetStack []int
	BaseSet  int
	NextSet  int
	NewSet   int

	CellCount   int
	FullColumns int
	Inited      bool

	searchList     int
	fullSearchList int

	OutputCols     int
	OutputLastCols int
}

// NewEngine builds the set-stack and search order over graph and
// prepares the engine for its first Search call.
func NewEngine(graph *cellgraph.Graph, table *rule.Table, p params.Params, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}

	e := &Engine{
		Graph:      graph,
		Table:      table,
		P:          p,
		Log:        log,
		SetStack:   make([]int, 0, interiorCellCount(p)),
		searchList: noCell,
	}

	e.initSearchOrder()
	e.BaseSet = 0
	e.NextSet = 0
	e.NewSet = 0

	return e
}

func interiorCellCount(p params.Params) int {
	return p.RowMax * p.ColMax * p.GenMax
}

// MarkInited enables the pruning gates that only apply after initial
// setup has finished.
func (e *Engine) MarkInited() { e.Inited = true }
