package pattern

import (
	"bufio"
	"fmt"
	"io"

	"github.com/telepair/lifesearch/internal/rule"
)

// GridCell is a single pre-set cell decoded from a grid file: its
// position (row-relative to the file, 0-based) and the state the file
// pins it to. '?' decodes to UNK with choose left true (still a free
// search variable); 'X' decodes to UNK with choose forced false (an
// excluded cell, never branched on).
type GridCell struct {
	Row, Col int
	State    rule.State
	Excluded bool
}

// ReadGrid parses a line-oriented `.`/`*`/`?`/`X` grid, the same
// character set the result dump uses, as an initial-pattern file. A
// blank line terminates the grid.
func ReadGrid(r io.Reader) ([]GridCell, int, int, error) {
	sc := bufio.NewScanner(r)

	var cells []GridCell
	row := 0
	width := 0

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			if row == 0 {
				continue
			}
			break
		}
		if len(line) > width {
			width = len(line)
		}
		for col, ch := range line {
			switch ch {
			case '.':
				cells = append(cells, GridCell{Row: row, Col: col, State: rule.OFF})
			case '*':
				cells = append(cells, GridCell{Row: row, Col: col, State: rule.ON})
			case '?':
				cells = append(cells, GridCell{Row: row, Col: col, State: rule.UNK})
			case 'X':
				cells = append(cells, GridCell{Row: row, Col: col, State: rule.UNK, Excluded: true})
			default:
				return nil, 0, 0, fmt.Errorf("pattern: invalid grid character %q at line %d", ch, row+1)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, 0, 0, err
	}

	return cells, row, width, nil
}
