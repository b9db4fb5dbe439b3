package cellgraph

import (
	"fmt"

	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
)

// deltaRow/deltaCol give the (row, col) offset of each Direction.
var deltaRow = [numDirections]int{-1, -1, -1, 0, 0, 1, 1, 1}
var deltaCol = [numDirections]int{-1, 0, 1, -1, 1, -1, 0, 1}

// Graph is the full static arena of cells for one search run: a boundary
// sentinel at index 0, one cell per (row, col, gen) with row in 1..RowMax,
// col in 1..ColMax, gen in 0..GenMax-1, and a small table of auxiliary
// cells appended on demand. Cells never move once allocated, so indices
// into Graph.Cells are stable for the run's lifetime.
type Graph struct {
	P params.Params

	Cells    []Cell
	Boundary int // always 0

	RowInfo []RowInfo // index 1..RowMax; index 0 unused
	ColInfo []ColInfo // index 1..ColMax; index 0 unused

	// dummyRowInfo/dummyColInfo are shared by every cell that isn't a
	// real generation-0 interior cell (gen>0 interior cells, the
	// boundary sentinel, aux cells), so SetCell's SetCount/OnCount
	// bookkeeping can run unconditionally without a nil check: only the
	// real per-row/per-column slots feed fullColumns and useRow/useCol.
	dummyRowInfo RowInfo
	dummyColInfo ColInfo

	auxIndex map[[3]int]int
}

// ErrTooManyAuxCells is returned if the auxiliary cell table grows beyond
// a defensive cap. The original program used a fixed-size array and a
// fatal() past it; this cap exists only to keep that failure mode
// reachable and testable rather than letting the table grow unboundedly.
var ErrTooManyAuxCells = fmt.Errorf("cellgraph: too many auxiliary cells")

const maxAuxCells = 4096

func interiorCount(p params.Params) int {
	return p.RowMax * p.ColMax * p.GenMax
}

// cellIndex returns the index of the interior cell at (row, col, gen);
// row/col must be in 1..RowMax/1..ColMax and gen in 0..GenMax-1.
func (g *Graph) cellIndex(row, col, gen int) int {
	r := row - 1
	c := col - 1
	return 1 + ((c*g.P.RowMax)+r)*g.P.GenMax + gen
}

// NewGraph allocates and wires the complete cell graph for p.
func NewGraph(p params.Params) (*Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		P:        p,
		Cells:    make([]Cell, 1+interiorCount(p)),
		Boundary: 0,
		RowInfo:  make([]RowInfo, p.RowMax+1),
		ColInfo:  make([]ColInfo, p.ColMax+1),
		auxIndex: make(map[[3]int]int),
	}

	g.initBoundary()
	g.initInterior()
	g.linkInterior()
	g.wireTemporal()

	if p.HasTransform() {
		if err := g.wireTransform(); err != nil {
			return nil, err
		}
	}

	if p.HasSymmetry() {
		g.wireSymmetry()
	}

	g.attachRowColInfo()

	return g, nil
}

func (g *Graph) initBoundary() {
	b := &g.Cells[g.Boundary]
	b.Row, b.Col, b.Gen = 0, 0, 0
	b.State = rule.OFF
	b.Loop = noCell
	b.SearchNext = noCell
	for d := Direction(0); d < numDirections; d++ {
		b.Neighbor[d] = g.Boundary
	}
	b.Past, b.Future = g.Boundary, g.Boundary
	b.RowInfo = &g.dummyRowInfo
	b.ColInfo = &g.dummyColInfo
}

func (g *Graph) initInterior() {
	p := g.P
	for col := 1; col <= p.ColMax; col++ {
		for row := 1; row <= p.RowMax; row++ {
			for gen := 0; gen < p.GenMax; gen++ {
				idx := g.cellIndex(row, col, gen)
				c := &g.Cells[idx]
				c.Row, c.Col, c.Gen = row, col, gen
				c.State = rule.UNK
				c.Free = true
				c.Choose = true
				c.Loop = noCell
				c.SearchNext = noCell
				// Every interior cell gets the shared dummy info by
				// default; attachRowColInfo later overwrites the
				// generation-0 cells with their real per-row/per-column
				// slot.
				c.RowInfo = &g.dummyRowInfo
				c.ColInfo = &g.dummyColInfo
			}
		}
	}
}

// find resolves (row, col, gen) to a cell index: an interior cell if in
// range, the shared boundary sentinel if on the ring just outside the
// interior rectangle, or an auxiliary cell otherwise.
func (g *Graph) find(row, col, gen int) (int, error) {
	p := g.P

	if gen < 0 || gen >= p.GenMax {
		gen = ((gen % p.GenMax) + p.GenMax) % p.GenMax
	}

	if row >= 1 && row <= p.RowMax && col >= 1 && col <= p.ColMax {
		return g.cellIndex(row, col, gen), nil
	}

	if row >= 0 && row <= p.RowMax+1 && col >= 0 && col <= p.ColMax+1 {
		return g.Boundary, nil
	}

	return g.findAux(row, col, gen)
}

func (g *Graph) findAux(row, col, gen int) (int, error) {
	key := [3]int{row, col, gen}
	if idx, ok := g.auxIndex[key]; ok {
		return idx, nil
	}

	if len(g.Cells)-1-interiorCount(g.P) >= maxAuxCells {
		return 0, ErrTooManyAuxCells
	}

	idx := len(g.Cells)
	g.Cells = append(g.Cells, Cell{
		Row: row, Col: col, Gen: gen,
		State: rule.OFF,
		Loop:  noCell, SearchNext: noCell,
		Aux: true,
	})
	aux := &g.Cells[idx]
	for d := Direction(0); d < numDirections; d++ {
		aux.Neighbor[d] = idx
	}
	aux.Past, aux.Future = idx, idx
	aux.RowInfo = &g.dummyRowInfo
	aux.ColInfo = &g.dummyColInfo

	g.auxIndex[key] = idx
	return idx, nil
}

func (g *Graph) linkInterior() {
	p := g.P
	for col := 1; col <= p.ColMax; col++ {
		for row := 1; row <= p.RowMax; row++ {
			for gen := 0; gen < p.GenMax; gen++ {
				idx := g.cellIndex(row, col, gen)
				c := &g.Cells[idx]
				for d := Direction(0); d < numDirections; d++ {
					// Neighbors of an interior cell are at most one
					// step away, so they always land in the interior
					// or on the boundary ring — never in aux territory.
					nIdx, _ := g.find(row+deltaRow[d], col+deltaCol[d], gen)
					c.Neighbor[d] = nIdx
				}
			}
		}
	}
}

func (g *Graph) wireTemporal() {
	p := g.P
	for col := 1; col <= p.ColMax; col++ {
		for row := 1; row <= p.RowMax; row++ {
			for gen := 0; gen < p.GenMax; gen++ {
				idx := g.cellIndex(row, col, gen)
				c := &g.Cells[idx]
				c.Past, _ = g.find(row, col, gen-1)
				c.Future, _ = g.find(row, col, gen+1)
			}
		}
	}
}

// wireTransform overrides the cyclic past/future wrap at the generation
// boundary with the configured translate/flip mapping, applied after
// the plain cyclic wiring is already in place. Only interior coordinates
// need their temporal links overridden — the boundary sentinel stays
// self-looped in time, just as it is in space.
func (g *Graph) wireTransform() error {
	p := g.P
	for row := 1; row <= p.RowMax; row++ {
		for col := 1; col <= p.ColMax; col++ {
			lastIdx, err := g.find(row, col, p.GenMax-1)
			if err != nil {
				return err
			}
			last := &g.Cells[lastIdx]
			fwd, err := g.MapCell(last, true)
			if err != nil {
				return err
			}
			last.Future = fwd
			g.Cells[fwd].Past = lastIdx

			firstIdx, err := g.find(row, col, 0)
			if err != nil {
				return err
			}
			first := &g.Cells[firstIdx]
			bwd, err := g.MapCell(first, false)
			if err != nil {
				return err
			}
			first.Past = bwd
			g.Cells[bwd].Future = firstIdx
		}
	}
	return nil
}

func (g *Graph) wireSymmetry() {
	p := g.P
	for col := 1; col <= p.ColMax; col++ {
		for row := 1; row <= p.RowMax; row++ {
			for gen := 0; gen < p.GenMax; gen++ {
				idx := g.cellIndex(row, col, gen)
				if partner, ok := g.SymCell(&g.Cells[idx]); ok {
					g.LoopCells(idx, partner)
				}
			}
		}
	}
}

func (g *Graph) attachRowColInfo() {
	p := g.P
	for row := 1; row <= p.RowMax; row++ {
		for col := 1; col <= p.ColMax; col++ {
			idx := g.cellIndex(row, col, 0)
			c := &g.Cells[idx]
			c.RowInfo = &g.RowInfo[row]
			c.ColInfo = &g.ColInfo[col]
		}
	}
}

// Index returns the graph index for an interior (row, col, gen)
// coordinate, the boundary index if it names a ring position, or
// allocates/reuses an auxiliary cell otherwise.
func (g *Graph) Index(row, col, gen int) (int, error) {
	return g.find(row, col, gen)
}
