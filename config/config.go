// Package config assembles the command-line surface into a validated
// configuration: a plain struct whose SetRule method falls back to the
// default rule (logging the fallback) and whose Validate method reports
// the first inconsistency as an error.
package config

import (
	"fmt"
	"log/slog"

	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
)

// Cell is a single (row, col) coordinate taken from a repeatable
// --freeze flag.
type Cell struct {
	Row, Col int
}

// Rect is a generation-0 rectangle taken from a repeatable --exclude
// flag: every cell in [Row1..Row2] x [Col1..Col2] has its light cone
// excluded from the search.
type Rect struct {
	Row1, Col1, Row2, Col2 int
}

// Config holds every value needed to run one search: the engine's
// parameter vector, the rule it searches under, and the I/O paths and
// one-shot setup actions applied before the first generation starts.
type Config struct {
	Params params.Params

	RuleString string
	Spec       rule.Spec

	ViewFreq int
	DumpFreq int
	DumpFile string
	LoadFile string

	InitFile    string
	InitPattern string
	InitDeep    bool

	OutputCols int
	OutputFile string

	Quiet   bool
	Monitor bool

	Exclude []Rect
	Freeze  []Cell
}

// Default returns a Config over params.Default() searching the standard
// Conway rule.
func Default() *Config {
	return &Config{
		Params:     params.Default(),
		RuleString: "B3/S23",
		Spec:       rule.Life,
	}
}

// SetRule parses s and installs it. On a bad rule string it falls back
// to Conway's Life, logs a warning, and still returns the parse error.
func (c *Config) SetRule(s string) error {
	if s == "" {
		return nil
	}
	spec, err := rule.ParseRule(s)
	if err != nil {
		slog.Warn("invalid rule string, using default B3/S23", "rule", s, "error", err)
		c.RuleString = "B3/S23"
		c.Spec = rule.Life
		return err
	}
	c.RuleString = spec.String()
	c.Spec = spec
	return nil
}

// Validate checks the assembled configuration for internal consistency
// beyond params.Params.Validate (which this calls), returning a wrapped
// error describing the first problem found.
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.InitFile != "" && c.InitPattern != "" {
		return fmt.Errorf("config: --init-file and --init-pattern are mutually exclusive")
	}
	if c.OutputCols < 0 {
		return fmt.Errorf("config: output-cols must be >= 0, got %d", c.OutputCols)
	}
	if c.ViewFreq < 0 {
		return fmt.Errorf("config: view-freq must be >= 0, got %d", c.ViewFreq)
	}
	if c.DumpFreq < 0 {
		return fmt.Errorf("config: dump-freq must be >= 0, got %d", c.DumpFreq)
	}
	for _, r := range c.Exclude {
		if r.Row1 < 1 || r.Row1 > r.Row2 || r.Row2 > c.Params.RowMax ||
			r.Col1 < 1 || r.Col1 > r.Col2 || r.Col2 > c.Params.ColMax {
			return fmt.Errorf("config: --exclude rectangle (%d,%d)-(%d,%d) illegal for %dx%d grid", r.Row1, r.Col1, r.Row2, r.Col2, c.Params.RowMax, c.Params.ColMax)
		}
	}
	for _, cell := range c.Freeze {
		if cell.Row < 1 || cell.Row > c.Params.RowMax || cell.Col < 1 || cell.Col > c.Params.ColMax {
			return fmt.Errorf("config: --freeze cell (%d,%d) outside %dx%d grid", cell.Row, cell.Col, c.Params.RowMax, c.Params.ColMax)
		}
	}
	return nil
}
