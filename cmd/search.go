/*
Copyright © 2025 Liys <liys87x@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package cmd contains the command line interface for the search tool.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/config"
	"github.com/telepair/lifesearch/internal/dump"
	"github.com/telepair/lifesearch/internal/search"
	"github.com/telepair/lifesearch/monitor"
	"github.com/telepair/lifesearch/pkg/ui"
)

// searchCmd represents the periodic-pattern search command.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for periodic Life-like patterns (spaceships, oscillators, still-lifes)",
	Long: `Search a bounded row x col x gen cell space for a pattern that, under the
given cellular-automaton rule, reproduces generation 0 after genMax
generations (optionally translated/flipped), using the same
constraint-propagation backtracking search as Dean Hickerson's and
David I. Bell's lifesrc.

Results are written as bounding-box grids ('.', '*', '?', 'X'); progress
can be checked into a dump file and resumed later with --load-file.`,
	Run: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	f := searchCmd.Flags()

	f.Int("rows", 3, "Number of rows")
	f.Int("cols", 3, "Number of columns")
	f.Int("gens", 2, "Number of generations (the period to search for)")

	f.Int("row-trans", 0, "Row translation applied at generation wraparound")
	f.Int("col-trans", 0, "Column translation applied at generation wraparound")
	f.Int("flip-rows", 0, "Column where the row-flip fold starts at generation wraparound (0 = off)")
	f.Int("flip-cols", 0, "Row where the column-flip fold starts at generation wraparound (0 = off)")
	f.Bool("flip-quads", false, "Rotate 90 degrees at generation wraparound (requires rows == cols)")

	f.Int("row-sym", 0, "Column where a row-mirror symmetry fold starts (0 = off)")
	f.Int("col-sym", 0, "Row where a column-mirror symmetry fold starts (0 = off)")
	f.Bool("point-sym", false, "180-degree rotational symmetry")
	f.Bool("fwd-sym", false, "Diagonal symmetry (requires rows == cols)")
	f.Bool("bwd-sym", false, "Anti-diagonal symmetry (requires rows == cols)")

	f.Int("near-cols", 0, "Require every ON cell within this many columns of another ON cell")
	f.Int("col-width", 0, "Maximum row-span of ON cells allowed in any one column")
	f.Int("max-count", 0, "Maximum number of ON cells allowed at generation 0")
	f.Int("col-cells", 0, "Maximum number of ON cells allowed in any one column")
	f.Int("use-row", 0, "Require this row to contain at least one ON cell")
	f.Int("use-col", 0, "Require this column to contain at least one ON cell")

	f.Bool("order-wide", false, "Prefer branching on cells far from the middle row")
	f.Bool("order-gens", false, "Order branching by column before generation")
	f.Bool("order-middle", false, "Prefer branching on cells near the middle column")

	f.Bool("parent", false, "Search for ancestors: generation 0 need not follow from the last generation")
	f.Bool("all-objects", false, "Report objects whose period is a proper divisor of gens too")

	f.Bool("follow", false, "Prefer branching near the average row position of the nearest previous column's ON cells")
	f.Bool("follow-gens", false, "Prefer the state already decided by a cell's previous or next generation")

	f.Int("view-freq", 0, "Log a status line every N search branch steps (0 = never)")
	f.Int("dump-freq", 0, "Write a checkpoint every N search branch steps (0 = never)")
	f.String("dump-file", "", "Checkpoint file path")
	f.String("load-file", "", "Resume from a checkpoint file instead of starting fresh")

	f.String("init-file", "", "Read an initial partial pattern from this grid file")
	f.Bool("init-deep", false, "Pin the init file's OFF cells across every generation, not just generation 0")
	f.String("init-pattern", "", "Seed with a built-in pattern (glider, glider-gun, blinker, pulsar, pentomino)")
	f.StringSlice("exclude", nil, "Exclude a generation-0 rectangle \"row1,col1,row2,col2\" from the search (repeatable)")
	f.StringSlice("freeze", nil, "Freeze a generation-0 cell \"row,col\" across all generations (repeatable)")

	f.Int("output-cols", 0, "Report progress each time N more columns become fully decided (0 = never)")
	f.String("output-file", "", "Append every found result to this file instead of stdout")
	f.String("rule", "B3/S23", "Cellular automaton rule (\"born/live\", \"Bxxx/Syyy\", or a Wolfram hex code)")
	f.Bool("quiet", false, "Suppress progress/status output")
	f.Bool("monitor", false, "Run an interactive live-search TUI instead of a batch search")
}

func runSearch(cmd *cobra.Command, _ []string) {
	InitLog()

	ctx := context.Background()
	InitProfile(ctx)

	cfg, err := configFromFlags(cmd)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	built, err := cfg.Build(slog.Default())
	if err != nil {
		slog.Error("failed to build search engine", "error", err)
		os.Exit(1)
	}

	if cfg.Monitor {
		m := monitor.New(built.Engine, built.Graph, cfg.Params, cfg.Spec, cfg.RuleString, cfg.DumpFile)
		if err := ui.RunModel("Periodic Pattern Search", m, lang, refreshInterval); err != nil {
			slog.Error("monitor exited with an error", "error", err)
			os.Exit(1)
		}
		return
	}

	runBatch(cfg, built)
}

func runBatch(cfg *config.Config, built *config.Built) {
	e := built.Engine

	var out *os.File
	if cfg.OutputFile != "" {
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("cannot open output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	viewCount := 0
	hooks := search.Reporter{
		Checkpoint: func(e *search.Engine) {
			if cfg.DumpFile == "" {
				return
			}
			f, err := os.Create(cfg.DumpFile)
			if err != nil {
				slog.Error("cannot write checkpoint", "error", err)
				return
			}
			defer f.Close()
			if err := dump.DumpState(f, e, search.StatusOK, cfg.Spec, cfg.RuleString); err != nil {
				slog.Error("checkpoint write failed", "error", err)
			}
		},
		Progress: func(e *search.Engine) {
			if cfg.Quiet {
				return
			}
			slog.Info("search progress", "fullColumns", e.FullColumns)
		},
		// Interrupted is polled on every top-level branch regardless of
		// outputCols; batch mode never actually pauses, so this only
		// drives the periodic branch-count log below.
		Interrupted: func() bool {
			if cfg.ViewFreq > 0 && !cfg.Quiet {
				viewCount++
				if viewCount >= cfg.ViewFreq {
					viewCount = 0
					slog.Info("search branching", "fullColumns", e.FullColumns)
				}
			}
			return false
		},
	}

	found := 0
	for {
		status := e.SearchObject(hooks, cfg.DumpFreq)

		switch status {
		case search.StatusFound:
			found++
			if !cfg.Quiet {
				slog.Info("object found", "count", found)
			}
			if out != nil {
				_ = dump.WriteGen(out, built.Graph, cfg.Params, 0, false, true)
			} else {
				_ = dump.WriteGen(os.Stdout, built.Graph, cfg.Params, 0, true, false)
			}
			if cfg.Params.MaxCount != 0 && found >= cfg.Params.MaxCount {
				return
			}
			continue

		case search.StatusNotExist:
			if !cfg.Quiet {
				slog.Info("search exhausted", "found", found)
			}
			return

		default:
			slog.Error("search ended unexpectedly", "status", status.String())
			os.Exit(1)
		}
	}
}

func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()

	cfg.Params.RowMax, _ = f.GetInt("rows")
	cfg.Params.ColMax, _ = f.GetInt("cols")
	cfg.Params.GenMax, _ = f.GetInt("gens")

	cfg.Params.RowTrans, _ = f.GetInt("row-trans")
	cfg.Params.ColTrans, _ = f.GetInt("col-trans")
	cfg.Params.FlipRows, _ = f.GetInt("flip-rows")
	cfg.Params.FlipCols, _ = f.GetInt("flip-cols")
	cfg.Params.FlipQuads, _ = f.GetBool("flip-quads")

	cfg.Params.RowSym, _ = f.GetInt("row-sym")
	cfg.Params.ColSym, _ = f.GetInt("col-sym")
	cfg.Params.PointSym, _ = f.GetBool("point-sym")
	cfg.Params.FwdSym, _ = f.GetBool("fwd-sym")
	cfg.Params.BwdSym, _ = f.GetBool("bwd-sym")

	cfg.Params.NearCols, _ = f.GetInt("near-cols")
	cfg.Params.ColWidth, _ = f.GetInt("col-width")
	cfg.Params.MaxCount, _ = f.GetInt("max-count")
	cfg.Params.ColCells, _ = f.GetInt("col-cells")
	cfg.Params.UseRow, _ = f.GetInt("use-row")
	cfg.Params.UseCol, _ = f.GetInt("use-col")

	cfg.Params.OrderWide, _ = f.GetBool("order-wide")
	cfg.Params.OrderGens, _ = f.GetBool("order-gens")
	cfg.Params.OrderMiddle, _ = f.GetBool("order-middle")

	cfg.Params.Parent, _ = f.GetBool("parent")
	cfg.Params.AllObjects, _ = f.GetBool("all-objects")

	cfg.Params.Follow, _ = f.GetBool("follow")
	cfg.Params.FollowGens, _ = f.GetBool("follow-gens")

	cfg.ViewFreq, _ = f.GetInt("view-freq")
	cfg.DumpFreq, _ = f.GetInt("dump-freq")
	cfg.DumpFile, _ = f.GetString("dump-file")
	cfg.LoadFile, _ = f.GetString("load-file")

	cfg.InitFile, _ = f.GetString("init-file")
	cfg.InitDeep, _ = f.GetBool("init-deep")
	cfg.InitPattern, _ = f.GetString("init-pattern")

	excludeFlags, _ := f.GetStringSlice("exclude")
	for _, s := range excludeFlags {
		rect, err := parseRect(s)
		if err != nil {
			return nil, err
		}
		cfg.Exclude = append(cfg.Exclude, rect)
	}

	freezeFlags, _ := f.GetStringSlice("freeze")
	for _, s := range freezeFlags {
		cell, err := parseCell(s)
		if err != nil {
			return nil, err
		}
		cfg.Freeze = append(cfg.Freeze, cell)
	}

	cfg.OutputCols, _ = f.GetInt("output-cols")
	cfg.OutputFile, _ = f.GetString("output-file")
	cfg.Quiet, _ = f.GetBool("quiet")
	cfg.Monitor, _ = f.GetBool("monitor")

	ruleStr, _ := f.GetString("rule")
	if err := cfg.SetRule(ruleStr); err != nil {
		return nil, fmt.Errorf("--rule: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseRect parses "row1,col1,row2,col2" or the single-cell shorthand
// "row,col" (treated as a 1x1 rectangle).
func parseRect(s string) (config.Rect, error) {
	nums, err := splitInts(s)
	if err != nil {
		return config.Rect{}, fmt.Errorf("--exclude %q: %w", s, err)
	}
	switch len(nums) {
	case 2:
		return config.Rect{Row1: nums[0], Col1: nums[1], Row2: nums[0], Col2: nums[1]}, nil
	case 4:
		return config.Rect{Row1: nums[0], Col1: nums[1], Row2: nums[2], Col2: nums[3]}, nil
	default:
		return config.Rect{}, fmt.Errorf("--exclude %q: expected \"row,col\" or \"row1,col1,row2,col2\"", s)
	}
}

func parseCell(s string) (config.Cell, error) {
	nums, err := splitInts(s)
	if err != nil {
		return config.Cell{}, fmt.Errorf("--freeze %q: %w", s, err)
	}
	if len(nums) != 2 {
		return config.Cell{}, fmt.Errorf("--freeze %q: expected \"row,col\"", s)
	}
	return config.Cell{Row: nums[0], Col: nums[1]}, nil
}

func splitInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", p)
		}
		nums[i] = n
	}
	return nums, nil
}
