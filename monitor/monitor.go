// Package monitor adapts a bubbletea live display into a viewer for a
// running periodic-pattern search: rather than stepping a fresh
// simulation every tick, it polls a snapshot of the search engine's cell
// graph that is only ever refreshed at the safe points the engine itself
// calls out (between top-level branch decisions, never mid-propagation),
// so no cell is read and written across goroutines at once.
package monitor

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/dump"
	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/search"
	"github.com/telepair/lifesearch/pkg/ui"
)

var _ ui.StepEngine = (*Monitor)(nil)

// snapshot is a point-in-time copy of the cell graph's display-relevant
// fields, taken on the search goroutine and read by the UI goroutine —
// the only data that crosses between them.
type snapshot struct {
	status      search.Status
	branchCount int
	fullColumns int
	finished    bool
	// cells[gen][row][col] holds one display byte: '.', '*', '?', or 'X'.
	cells [][][]byte
}

// Monitor drives a search.Engine on a background goroutine and exposes
// its progress through the ui.StepEngine contract.
type Monitor struct {
	engine  *search.Engine
	graph   *cellgraph.Graph
	p       params.Params
	spec    rule.Spec
	ruleStr string
	dumpTo  string

	mu         sync.Mutex
	displayGen int
	snap       snapshot

	interruptRequested atomic.Bool
	dumpRequested      atomic.Bool
	resumeCh           chan struct{}
	started            bool

	screen *ui.Screen
	buf    []rune
}

// New builds a Monitor ready to drive engine's search. dumpTo, if
// non-empty, is the path the "D" key checkpoints to.
func New(engine *search.Engine, graph *cellgraph.Graph, p params.Params, spec rule.Spec, ruleStr, dumpTo string) *Monitor {
	m := &Monitor{
		engine:   engine,
		graph:    graph,
		p:        p,
		spec:     spec,
		ruleStr:  ruleStr,
		dumpTo:   dumpTo,
		resumeCh: make(chan struct{}, 1),
	}
	m.takeSnapshot(search.StatusOK, 0)
	return m
}

// View renders the current display generation.
func (m *Monitor) View() string {
	m.renderDisplayGen()
	return m.screen.View()
}

// Step polls the running search's latest snapshot. The search itself
// advances continuously on its own goroutine; Step never blocks.
func (m *Monitor) Step() (int, bool) {
	if !m.started {
		m.started = true
		go m.run()
	}

	m.mu.Lock()
	branches := m.snap.branchCount
	finished := m.snap.finished
	m.mu.Unlock()

	return branches, !finished
}

// Header returns the header text.
func (m *Monitor) Header(lang ui.Language) string {
	if lang == ui.Chinese {
		return "🔎 周期图样搜索 🔎"
	}
	return "🔎 Periodic Pattern Search 🔎"
}

// Status returns the current search status line.
func (m *Monitor) Status(lang ui.Language) []ui.Status {
	m.mu.Lock()
	s := m.snap
	displayGen := m.displayGen
	m.mu.Unlock()

	paused := "no"
	if m.interruptRequested.Load() {
		paused = "yes"
	}

	if lang == ui.Chinese {
		return []ui.Status{
			{Label: "代", Value: strconv.Itoa(displayGen)},
			{Label: "分支数", Value: strconv.Itoa(s.branchCount)},
			{Label: "满列数", Value: strconv.Itoa(s.fullColumns)},
			{Label: "状态", Value: s.status.String()},
			{Label: "已暂停", Value: paused},
		}
	}
	return []ui.Status{
		{Label: "Gen", Value: strconv.Itoa(displayGen)},
		{Label: "Branches", Value: strconv.Itoa(s.branchCount)},
		{Label: "FullCols", Value: strconv.Itoa(s.fullColumns)},
		{Label: "Status", Value: s.status.String()},
		{Label: "Paused", Value: paused},
	}
}

// HandleKeys describes the monitor's own keys on top of pkg/ui's
// language/speed/quit controls.
func (m *Monitor) HandleKeys(lang ui.Language) []ui.Control {
	if lang == ui.Chinese {
		return []ui.Control{
			{Keys: []string{"N"}, Label: "下一代"},
			{Keys: []string{"I"}, Label: "暂停/继续搜索"},
			{Keys: []string{"D"}, Label: "写入存档点"},
		}
	}
	return []ui.Control{
		{Keys: []string{"N"}, Label: "Next gen"},
		{Keys: []string{"I"}, Label: "Pause/resume search"},
		{Keys: []string{"D"}, Label: "Checkpoint dump"},
	}
}

// Handle processes monitor-specific keys.
func (m *Monitor) Handle(key string) (bool, error) {
	switch key {
	case "n":
		if m.p.GenMax > 0 {
			m.mu.Lock()
			m.displayGen = (m.displayGen + 1) % m.p.GenMax
			m.mu.Unlock()
		}
		m.renderDisplayGen()
		return true, nil

	case "i":
		if m.interruptRequested.Load() {
			m.interruptRequested.Store(false)
			select {
			case m.resumeCh <- struct{}{}:
			default:
			}
		} else {
			m.interruptRequested.Store(true)
		}
		return true, nil

	case "d":
		if m.dumpTo == "" {
			return false, fmt.Errorf("monitor: no checkpoint path configured")
		}
		m.dumpRequested.Store(true)
		return true, nil
	}

	return false, nil
}

// Reset resizes the display screen. A checkpoint reload only
// re-initializes cell contents, never the graph's shape, so Reset only
// resizes the viewer, not the underlying search.
func (m *Monitor) Reset(height, width int) error {
	if m.screen == nil {
		m.screen = ui.NewScreen(height, width)
	} else {
		m.screen.SetSize(width, height)
	}
	m.screen.SetCharColor('*', lipgloss.Color("#00FF00"))
	m.screen.SetCharColor('?', lipgloss.Color("#94A3B8"))
	m.screen.SetCharColor('X', lipgloss.Color("#FF5555"))
	m.buf = make([]rune, width)
	m.renderDisplayGen()
	return nil
}

// IsFinished reports whether the search has reached a terminal status.
func (m *Monitor) IsFinished() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.finished
}

// Stop requests the background search goroutine unblock if parked, so
// the process can exit promptly.
func (m *Monitor) Stop() {
	m.interruptRequested.Store(false)
	select {
	case m.resumeCh <- struct{}{}:
	default:
	}
}

func (m *Monitor) run() {
	branches := 0
	hooks := search.Reporter{
		Checkpoint: func(e *search.Engine) {
			if m.dumpRequested.Load() {
				m.dumpRequested.Store(false)
				m.writeCheckpoint(e)
			}
		},
		Progress: func(e *search.Engine) {
			branches++
			m.takeSnapshotFrom(e, branches)
		},
		Interrupted: func() bool {
			return m.interruptRequested.Load()
		},
		Yield: func(e *search.Engine) {
			branches++
			m.takeSnapshotFrom(e, branches)
			<-m.resumeCh
		},
	}

	// dumpFreq 1 polls Checkpoint after every step; it writes only when
	// the "D" key has requested a dump.
	status := m.engine.SearchObject(hooks, 1)

	m.mu.Lock()
	m.snap.status = status
	m.snap.finished = true
	m.mu.Unlock()
}

func (m *Monitor) writeCheckpoint(e *search.Engine) {
	f, err := os.Create(m.dumpTo)
	if err != nil {
		return
	}
	defer f.Close()
	_ = dump.DumpState(f, e, m.snap.status, m.spec, m.ruleStr)
}

func (m *Monitor) takeSnapshotFrom(e *search.Engine, branches int) {
	cells := make([][][]byte, m.p.GenMax)
	for gen := 0; gen < m.p.GenMax; gen++ {
		cells[gen] = make([][]byte, m.p.RowMax)
		for row := 1; row <= m.p.RowMax; row++ {
			line := make([]byte, m.p.ColMax)
			for col := 1; col <= m.p.ColMax; col++ {
				idx, err := e.Graph.Index(row, col, gen)
				if err != nil {
					line[col-1] = '.'
					continue
				}
				c := &e.Graph.Cells[idx]
				switch c.State {
				case rule.OFF:
					line[col-1] = '.'
				case rule.ON:
					line[col-1] = '*'
				case rule.UNK:
					if c.Choose {
						line[col-1] = '?'
					} else {
						line[col-1] = 'X'
					}
				}
			}
			cells[gen][row-1] = line
		}
	}

	m.mu.Lock()
	m.snap.branchCount = branches
	m.snap.fullColumns = e.FullColumns
	m.snap.cells = cells
	m.mu.Unlock()
}

func (m *Monitor) takeSnapshot(status search.Status, branches int) {
	m.mu.Lock()
	m.snap.status = status
	m.snap.branchCount = branches
	m.mu.Unlock()
}

// renderDisplayGen copies the current snapshot's display generation into
// the screen buffer. Only ever called from the UI goroutine (View,
// Reset, Handle), so m.screen/m.buf need no locking; the snapshot fields
// it reads are copied out under mu first.
func (m *Monitor) renderDisplayGen() {
	if m.screen == nil {
		return
	}
	m.mu.Lock()
	cells := m.snap.cells
	displayGen := m.displayGen
	m.mu.Unlock()

	if cells == nil || displayGen >= len(cells) {
		return
	}
	for _, line := range cells[displayGen] {
		for i, ch := range line {
			if i < len(m.buf) {
				m.buf[i] = rune(ch)
			}
		}
		m.screen.Append(m.buf)
	}
}
