package cellgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
)

func testParams() params.Params {
	return params.Params{RowMax: 4, ColMax: 4, GenMax: 2}
}

func TestNewGraphInteriorInitialState(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	for row := 1; row <= 4; row++ {
		for col := 1; col <= 4; col++ {
			for gen := 0; gen < 2; gen++ {
				idx, err := g.Index(row, col, gen)
				require.NoError(t, err)
				c := &g.Cells[idx]
				assert.Equal(t, rule.UNK, c.State)
				assert.True(t, c.Choose)
				assert.Equal(t, row, c.Row)
				assert.Equal(t, col, c.Col)
				assert.Equal(t, gen, c.Gen)
			}
		}
	}
}

func TestNewGraphBoundaryAlwaysOff(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	idx, err := g.Index(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, g.Boundary, idx)
	assert.Equal(t, rule.OFF, g.Cells[idx].State)
}

func TestNeighborLinksAreReciprocal(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	idx, err := g.Index(2, 2, 0)
	require.NoError(t, err)
	c := &g.Cells[idx]

	for d := Direction(0); d < numDirections; d++ {
		nIdx := c.Neighbor[d]
		back := g.Cells[nIdx].Neighbor[d.Opposite()]
		if nIdx == g.Boundary {
			// The boundary sentinel loops every direction back to
			// itself, so it cannot reciprocate a specific direction.
			continue
		}
		assert.Equal(t, idx, back, "neighbor link in direction %d is not reciprocal", d)
	}
}

func TestTemporalWrapWithoutTransform(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	first, err := g.Index(1, 1, 0)
	require.NoError(t, err)
	last, err := g.Index(1, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, last, g.Cells[first].Past)
	assert.Equal(t, first, g.Cells[last].Future)
}

func TestWireTransformTranslation(t *testing.T) {
	p := params.Params{RowMax: 4, ColMax: 4, GenMax: 2, ColTrans: 1}
	g, err := NewGraph(p)
	require.NoError(t, err)

	last, err := g.Index(1, 1, 1)
	require.NoError(t, err)
	wantFwd, err := g.Index(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, wantFwd, g.Cells[last].Future)
}

func TestFreezeCellLoopsAllGenerations(t *testing.T) {
	p := params.Params{RowMax: 3, ColMax: 3, GenMax: 3}
	g, err := NewGraph(p)
	require.NoError(t, err)

	g.FreezeCell(2, 2)

	gen0, _ := g.Index(2, 2, 0)
	gen1, _ := g.Index(2, 2, 1)
	gen2, _ := g.Index(2, 2, 2)

	assert.True(t, g.Cells[gen0].Frozen)
	assert.True(t, g.Cells[gen1].Frozen)
	assert.True(t, g.Cells[gen2].Frozen)

	// Walking the loop from gen0 should eventually reach both other
	// generations of the same position.
	seen := map[int]bool{gen0: true}
	for cur := g.Cells[gen0].Loop; cur != gen0; cur = g.Cells[cur].Loop {
		seen[cur] = true
	}
	assert.True(t, seen[gen1])
	assert.True(t, seen[gen2])
}

func TestExcludeConeMarksWideningRegion(t *testing.T) {
	p := params.Params{RowMax: 5, ColMax: 5, GenMax: 3}
	g, err := NewGraph(p)
	require.NoError(t, err)

	g.ExcludeCone(3, 3, 0)

	center0, _ := g.Index(3, 3, 0)
	assert.False(t, g.Cells[center0].Choose)

	// At generation 1, the cone has widened by one cell in every
	// direction.
	near1, _ := g.Index(4, 3, 1)
	assert.False(t, g.Cells[near1].Choose)

	// A cell far outside the cone at generation 1 is untouched.
	far1, _ := g.Index(1, 1, 1)
	assert.True(t, g.Cells[far1].Choose)
}

func TestPointSymmetryPartner(t *testing.T) {
	p := params.Params{RowMax: 4, ColMax: 4, GenMax: 1, PointSym: true}
	g, err := NewGraph(p)
	require.NoError(t, err)

	idx, _ := g.Index(1, 1, 0)
	want, _ := g.Index(4, 4, 0)

	partner, ok := g.SymCell(&g.Cells[idx])
	require.True(t, ok)
	assert.Equal(t, want, partner)
}

func TestNoSymmetryConfiguredHasNoPartner(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	idx, _ := g.Index(1, 1, 0)
	_, ok := g.SymCell(&g.Cells[idx])
	assert.False(t, ok)
}

func TestLoopCellsMergesAndPropagatesFrozen(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	a, _ := g.Index(1, 1, 0)
	b, _ := g.Index(2, 2, 0)
	c, _ := g.Index(3, 3, 0)

	g.Cells[a].Frozen = true
	g.LoopCells(a, b)
	g.LoopCells(b, c)

	assert.True(t, g.Cells[a].Frozen)
	assert.True(t, g.Cells[b].Frozen)
	assert.True(t, g.Cells[c].Frozen)
}

func TestInvalidParamsRejected(t *testing.T) {
	_, err := NewGraph(params.Params{RowMax: 0, ColMax: 3, GenMax: 2})
	assert.Error(t, err)
}

func TestAuxCellAllocatedBeyondRing(t *testing.T) {
	g, err := NewGraph(testParams())
	require.NoError(t, err)

	idx1, err := g.Index(10, 10, 0)
	require.NoError(t, err)
	idx2, err := g.Index(10, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, idx1, idx2, "repeated lookups of the same aux coordinate must return the same cell")
	assert.True(t, g.Cells[idx1].Aux)
	assert.Equal(t, rule.OFF, g.Cells[idx1].State)
}
