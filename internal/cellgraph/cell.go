// Package cellgraph builds the static graph of cells the search engine
// operates over: one node per (row, col, generation), wired to its eight
// spatial neighbors, its temporal predecessor/successor, and its symmetry
// or stability loop partner. The graph is built once per run and never
// resized; all further mutation happens through the search package's
// setCell primitive.
package cellgraph

import "github.com/telepair/lifesearch/internal/rule"

// Direction indexes into Cell.Neighbor, one per compass point around a
// cell within the same generation.
type Direction int

const (
	UpLeft Direction = iota
	Up
	UpRight
	Left
	Right
	DownLeft
	Down
	DownRight
	numDirections
)

// opposite maps each direction to the direction that leads back home,
// used only by tests to check the neighbor-symmetry invariant.
var opposite = [numDirections]Direction{
	DownRight, Down, DownLeft, Right, Left, UpRight, Up, UpLeft,
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction { return opposite[d] }

// noCell marks an unset index link (a cell field that has not been wired
// yet, or a loop/search-chain terminator).
const noCell = -1

// RowInfo tracks generation-0 aggregates for one row. SetCount lets
// useRow gate on "this row is fully decided" symmetrically to how useCol
// gates on a fully decided column; see DESIGN.md.
type RowInfo struct {
	OnCount  int
	SetCount int
}

// ColInfo tracks generation-0 aggregates for one column, including the
// running sum of ON-cell row positions used by the follow-column
// selection heuristic.
type ColInfo struct {
	SetCount int
	OnCount  int
	SumPos   int
}

// Cell is one node of the graph: its own state plus every link the
// search engine needs to reach neighbors in space, time, and symmetry.
// Links are indices into Graph.Cells rather than pointers, so the graph
// can live in one contiguous, pointer-stable slice (see Graph).
type Cell struct {
	Row, Col, Gen int

	State  rule.State
	Free   bool // true if this assignment is a branch choice, not forced
	Frozen bool // true if pinned to the generation-0 state of this position
	Choose bool // true if the selector may branch on this cell
	Near   int  // running count of ON cells within nearCols, left of this one

	Neighbor [numDirections]int
	Past     int
	Future   int

	Loop       int // next cell in the must-be-equal loop, or noCell
	SearchNext int // next cell in the selector's traversal chain, or noCell

	// Aux marks a cell allocated on demand for a (row, col, gen) outside
	// the nominal (R+2)x(C+2) rectangle, reached only by translate/flip
	// mapping at the generation wrap. Aux cells are permanently OFF and
	// self-looped, exactly like the boundary sentinel, since the vacuum
	// surrounding a small pattern stays OFF arbitrarily far out; see
	// DESIGN.md for why they are not individually re-linked.
	Aux bool

	RowInfo *RowInfo
	ColInfo *ColInfo
}
