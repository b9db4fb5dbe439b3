// Package dump implements the engine's two externalization formats: a
// bit-stable checkpoint/resume dump and a bounding-box result grid.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/search"
)

// Version is the dump file format version this package reads and
// writes. Bumped only by appending new trailing parameter fields.
const Version = 6

// paramValues returns p's fields in the exact order params.Fields names,
// the order the dump format pins as its serialization contract.
func paramValues(status search.Status, p params.Params) []int {
	boolInt := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	return []int{
		int(status),
		p.RowMax, p.ColMax, p.GenMax,
		p.RowTrans, p.ColTrans,
		p.RowSym, p.ColSym,
		boolInt(p.PointSym), boolInt(p.FwdSym), boolInt(p.BwdSym),
		p.FlipRows, p.FlipCols, boolInt(p.FlipQuads),
		boolInt(p.Parent), boolInt(p.AllObjects),
		p.NearCols, p.MaxCount, p.UseRow, p.UseCol, p.ColCells, p.ColWidth,
		boolInt(p.Follow), boolInt(p.OrderWide), boolInt(p.OrderGens),
		boolInt(p.OrderMiddle), boolInt(p.FollowGens),
	}
}

// DumpState writes e's full state to w: version, optional rule string,
// parameter vector, every set cell, excluded cells, frozen generation-0
// cells, the set-stack offsets, and a terminator line.
func DumpState(w io.Writer, e *search.Engine, status search.Status, spec rule.Spec, ruleStr string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "V %d\n", Version)

	if !spec.IsLife() {
		fmt.Fprintf(bw, "R %s\n", ruleStr)
	}

	fmt.Fprint(bw, "P")
	for _, v := range paramValues(status, e.P) {
		fmt.Fprintf(bw, " %d", v)
	}
	fmt.Fprint(bw, "\n")

	for i := 0; i < e.NewSet; i++ {
		idx := e.SetStack[i]
		c := &e.Graph.Cells[idx]
		free := 0
		if c.Free {
			free = 1
		}
		fmt.Fprintf(bw, "S %d %d %d %d %d\n", c.Row, c.Col, c.Gen, int(c.State), free)
	}

	p := e.P
	for row := 1; row <= p.RowMax; row++ {
		for col := 1; col <= p.ColMax; col++ {
			for gen := 0; gen < p.GenMax; gen++ {
				idx, _ := e.Graph.Index(row, col, gen)
				if e.Graph.Cells[idx].Choose {
					continue
				}
				fmt.Fprintf(bw, "X %d %d %d\n", row, col, gen)
			}
		}
	}

	for row := 1; row <= p.RowMax; row++ {
		for col := 1; col <= p.ColMax; col++ {
			idx, _ := e.Graph.Index(row, col, 0)
			if e.Graph.Cells[idx].Frozen {
				fmt.Fprintf(bw, "F %d %d\n", row, col)
			}
		}
	}

	fmt.Fprintf(bw, "T %d %d\n", e.BaseSet, e.NextSet)
	fmt.Fprint(bw, "E\n")

	return bw.Flush()
}

// Loaded is the result of successfully loading a dump: a freshly built
// engine plus the rule it was searching under.
type Loaded struct {
	Engine *search.Engine
	Spec   rule.Spec
	Status search.Status
}

// LoadState reconstructs an engine from a dump written by DumpState.
// Almost no checks are made for validity of the state beyond what's
// below.
func LoadState(r io.Reader) (*Loaded, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(line, "V") {
		return nil, fmt.Errorf("dump: missing version line")
	}
	if v, err := atoiField(line, 1); err != nil || v != Version {
		return nil, fmt.Errorf("dump: unknown dump version")
	}

	line, ok = nextLine(sc)
	if !ok {
		return nil, fmt.Errorf("dump: missing parameter line")
	}

	spec := rule.Life
	ruleStr := "B3/S23"
	if strings.HasPrefix(line, "R") {
		ruleStr = strings.TrimSpace(line[1:])
		parsed, err := rule.ParseRule(ruleStr)
		if err != nil {
			return nil, fmt.Errorf("dump: bad rule in state file: %w", err)
		}
		spec = parsed

		line, ok = nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("dump: missing parameter line")
		}
	}

	if !strings.HasPrefix(line, "P") {
		return nil, fmt.Errorf("dump: missing parameter line")
	}

	fields := strings.Fields(line[1:])
	get := func(i int) int {
		if i >= len(fields) {
			return 0
		}
		n, _ := strconv.Atoi(fields[i])
		return n
	}

	status := search.Status(get(0))
	p := params.Params{
		RowMax: get(1), ColMax: get(2), GenMax: get(3),
		RowTrans: get(4), ColTrans: get(5),
		RowSym: get(6), ColSym: get(7),
		PointSym: get(8) != 0, FwdSym: get(9) != 0, BwdSym: get(10) != 0,
		FlipRows: get(11), FlipCols: get(12), FlipQuads: get(13) != 0,
		Parent: get(14) != 0, AllObjects: get(15) != 0,
		NearCols: get(16), MaxCount: get(17), UseRow: get(18), UseCol: get(19),
		ColCells: get(20), ColWidth: get(21),
		Follow: get(22) != 0, OrderWide: get(23) != 0, OrderGens: get(24) != 0,
		OrderMiddle: get(25) != 0, FollowGens: get(26) != 0,
	}

	graph, err := cellgraph.NewGraph(p)
	if err != nil {
		return nil, fmt.Errorf("dump: rebuilding cell graph: %w", err)
	}
	table := rule.NewTable(spec)
	engine := search.NewEngine(graph, table, p, nil)

	for {
		line, ok = nextLine(sc)
		if !ok || !strings.HasPrefix(line, "S") {
			break
		}
		f := strings.Fields(line[1:])
		if len(f) < 5 {
			return nil, fmt.Errorf("dump: malformed S line %q", line)
		}
		row, _ := strconv.Atoi(f[0])
		col, _ := strconv.Atoi(f[1])
		gen, _ := strconv.Atoi(f[2])
		state, _ := strconv.Atoi(f[3])
		free, _ := strconv.Atoi(f[4])

		idx, err := graph.Index(row, col, gen)
		if err != nil {
			return nil, err
		}
		if engine.SetCell(idx, rule.State(state), free != 0) != search.StatusOK {
			return nil, fmt.Errorf("dump: inconsistently setting cell at r%d c%d g%d", row, col, gen)
		}
	}

	for ok && strings.HasPrefix(line, "X") {
		f := strings.Fields(line[1:])
		row, _ := strconv.Atoi(f[0])
		col, _ := strconv.Atoi(f[1])
		gen, _ := strconv.Atoi(f[2])
		idx, err := graph.Index(row, col, gen)
		if err != nil {
			return nil, err
		}
		graph.Cells[idx].Choose = false
		line, ok = nextLine(sc)
	}

	for ok && strings.HasPrefix(line, "F") {
		f := strings.Fields(line[1:])
		row, _ := strconv.Atoi(f[0])
		col, _ := strconv.Atoi(f[1])
		graph.FreezeCell(row, col)
		line, ok = nextLine(sc)
	}

	if !ok || !strings.HasPrefix(line, "T") {
		return nil, fmt.Errorf("dump: missing set-stack offset line")
	}
	f := strings.Fields(line[1:])
	if len(f) < 2 {
		return nil, fmt.Errorf("dump: malformed T line %q", line)
	}
	base, _ := strconv.Atoi(f[0])
	next, _ := strconv.Atoi(f[1])
	engine.BaseSet = base
	engine.NextSet = next

	line, ok = nextLine(sc)
	if !ok || !strings.HasPrefix(line, "E") {
		return nil, fmt.Errorf("dump: missing end-of-file line")
	}

	return &Loaded{Engine: engine, Spec: spec, Status: status}, nil
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

func atoiField(line string, _ int) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line[1:]))
}
