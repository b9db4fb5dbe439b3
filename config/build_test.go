package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/dump"
	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/search"
)

func TestBuildFreshEngineAppliesOutputColsAndBaseSet(t *testing.T) {
	c := Default()
	c.OutputCols = 2

	built, err := c.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, 2, built.Engine.OutputCols)
	assert.Equal(t, built.Engine.NewSet, built.Engine.BaseSet)
	assert.Equal(t, search.StatusOK, built.Status)
}

func TestBuildAppliesInitFilePinningCellsAndExclusions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("*.X\n...\n...\n"), 0o644))

	c := Default()
	c.InitFile = path

	built, err := c.Build(nil)
	require.NoError(t, err)

	on, err := built.Graph.Index(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, rule.ON, built.Graph.Cells[on].State)

	off, err := built.Graph.Index(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, rule.OFF, built.Graph.Cells[off].State)

	excluded, err := built.Graph.Index(1, 3, 0)
	require.NoError(t, err)
	assert.False(t, built.Graph.Cells[excluded].Choose)

	// Setup cells are fixed below BaseSet, so backtracking can never undo them.
	assert.Equal(t, built.Engine.NewSet, built.Engine.BaseSet)
}

func TestBuildInitDeepPinsOffAcrossEveryGeneration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("..\n..\n"), 0o644))

	c := Default()
	c.Params = params.Params{RowMax: 2, ColMax: 2, GenMax: 3}
	c.InitFile = path
	c.InitDeep = true

	built, err := c.Build(nil)
	require.NoError(t, err)

	for gen := 0; gen < 3; gen++ {
		idx, err := built.Graph.Index(1, 1, gen)
		require.NoError(t, err)
		assert.Equal(t, rule.OFF, built.Graph.Cells[idx].State, "generation %d", gen)
	}
}

func TestBuildAppliesInitPatternCenteredInGrid(t *testing.T) {
	c := Default()
	c.Params = params.Params{RowMax: 7, ColMax: 7, GenMax: 1}
	c.InitPattern = "blinker"

	built, err := c.Build(nil)
	require.NoError(t, err)

	for _, col := range []int{3, 4, 5} {
		idx, err := built.Graph.Index(4, col, 0)
		require.NoError(t, err)
		assert.Equal(t, rule.ON, built.Graph.Cells[idx].State)
	}
}

func TestBuildRejectsInitPatternThatDoesNotFit(t *testing.T) {
	// A 1x3 blinker seed on a 1x1 grid spills two ON cells off the grid
	// onto always-OFF cells (the boundary ring and an auxiliary cell),
	// which SetCell must reject.
	c := Default()
	c.Params = params.Params{RowMax: 1, ColMax: 1, GenMax: 1}
	c.InitPattern = "blinker"

	_, err := c.Build(nil)
	assert.Error(t, err)
}

func TestBuildAppliesFreeze(t *testing.T) {
	c := Default()
	c.Freeze = []Cell{{Row: 2, Col: 2}}

	built, err := c.Build(nil)
	require.NoError(t, err)

	idx, err := built.Graph.Index(2, 2, 0)
	require.NoError(t, err)
	assert.True(t, built.Graph.Cells[idx].Frozen)
}

func TestBuildReloadsCheckpoint(t *testing.T) {
	p := params.Default()
	g, err := cellgraph.NewGraph(p)
	require.NoError(t, err)
	table := rule.NewTable(rule.Life)
	e := search.NewEngine(g, table, p, nil)
	idx, err := g.Index(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, search.StatusOK, e.SetCell(idx, rule.ON, true))

	var buf bytes.Buffer
	require.NoError(t, dump.DumpState(&buf, e, search.StatusOK, rule.Life, "B3/S23"))

	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoint.dump")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	c := Default()
	c.LoadFile = path

	built, err := c.Build(nil)
	require.NoError(t, err)

	got, err := built.Graph.Index(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, rule.ON, built.Graph.Cells[got].State)
}
