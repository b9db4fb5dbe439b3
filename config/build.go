package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/dump"
	"github.com/telepair/lifesearch/internal/pattern"
	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/search"
)

// Built is a fully assembled, ready-to-search engine plus the pieces
// DumpState needs alongside it.
type Built struct {
	Engine *search.Engine
	Graph  *cellgraph.Graph
	Spec   rule.Spec
	Status search.Status
}

// Build assembles a search.Engine from c: either reloading a checkpoint
// named by LoadFile, or constructing a fresh graph/table/engine and
// applying c's one-shot setup actions (init file/pattern, exclude,
// freeze) before marking the setup portion of the set-stack as the base
// the search may never back up past.
func (c *Config) Build(log *slog.Logger) (*Built, error) {
	if c.LoadFile != "" {
		f, err := os.Open(c.LoadFile)
		if err != nil {
			return nil, fmt.Errorf("config: opening load file: %w", err)
		}
		defer f.Close()

		loaded, err := dump.LoadState(f)
		if err != nil {
			return nil, fmt.Errorf("config: loading checkpoint: %w", err)
		}
		if log != nil {
			loaded.Engine.Log = log
		}
		return &Built{Engine: loaded.Engine, Graph: loaded.Engine.Graph, Spec: loaded.Spec, Status: loaded.Status}, nil
	}

	graph, err := cellgraph.NewGraph(c.Params)
	if err != nil {
		return nil, fmt.Errorf("config: building cell graph: %w", err)
	}
	table := rule.NewTable(c.Spec)
	engine := search.NewEngine(graph, table, c.Params, log)
	engine.OutputCols = c.OutputCols

	if err := c.applyInit(engine, graph); err != nil {
		return nil, err
	}
	c.applyExclude(graph)
	c.applyFreeze(graph)

	engine.BaseSet = engine.NewSet

	return &Built{Engine: engine, Graph: graph, Spec: c.Spec, Status: search.StatusOK}, nil
}

func (c *Config) applyInit(e *search.Engine, g *cellgraph.Graph) error {
	switch {
	case c.InitFile != "":
		f, err := os.Open(c.InitFile)
		if err != nil {
			return fmt.Errorf("config: opening init file: %w", err)
		}
		defer f.Close()

		cells, _, _, err := pattern.ReadGrid(f)
		if err != nil {
			return fmt.Errorf("config: reading init file: %w", err)
		}
		for _, gc := range cells {
			row, col := gc.Row+1, gc.Col+1
			idx, err := g.Index(row, col, 0)
			if err != nil {
				return err
			}
			if gc.Excluded {
				g.Cells[idx].Choose = false
				continue
			}
			if gc.State == rule.UNK {
				continue
			}

			// --init-deep additionally pins an OFF cell across every
			// generation, not just generation 0, matching the
			// original's setDeep handling of '.'/' ' in an init file.
			if gc.State == rule.OFF && c.InitDeep {
				for gen := 0; gen < c.Params.GenMax; gen++ {
					gIdx, err := g.Index(row, col, gen)
					if err != nil {
						return err
					}
					if e.SetCell(gIdx, rule.OFF, false) != search.StatusOK {
						return fmt.Errorf("config: init file sets inconsistent cell at r%d c%d g%d", row, col, gen)
					}
				}
				continue
			}

			if e.SetCell(idx, gc.State, false) != search.StatusOK {
				return fmt.Errorf("config: init file sets inconsistent cell at r%d c%d", row, col)
			}
		}

	case c.InitPattern != "":
		name, err := pattern.ParseName(c.InitPattern)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		seed, ok := pattern.Lookup(name)
		if !ok {
			return nil
		}
		startRow := (c.Params.RowMax-seed.Height)/2 + 1
		startCol := (c.Params.ColMax-seed.Width)/2 + 1
		if startRow < 1 {
			startRow = 1
		}
		if startCol < 1 {
			startCol = 1
		}
		for _, on := range seed.On {
			idx, err := g.Index(startRow+on.Row, startCol+on.Col, 0)
			if err != nil {
				return err
			}
			if e.SetCell(idx, rule.ON, false) != search.StatusOK {
				return fmt.Errorf("config: init pattern %q does not fit the grid", c.InitPattern)
			}
		}
	}

	return nil
}

func (c *Config) applyExclude(g *cellgraph.Graph) {
	for _, r := range c.Exclude {
		for row := r.Row1; row <= r.Row2; row++ {
			for col := r.Col1; col <= r.Col2; col++ {
				g.ExcludeCone(row, col, 0)
			}
		}
	}
}

func (c *Config) applyFreeze(g *cellgraph.Graph) {
	for _, cell := range c.Freeze {
		g.FreezeCell(cell.Row, cell.Col)
	}
}
