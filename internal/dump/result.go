package dump

import (
	"bufio"
	"io"

	"github.com/telepair/lifesearch/internal/cellgraph"
	"github.com/telepair/lifesearch/internal/params"
	"github.com/telepair/lifesearch/internal/rule"
)

// WriteGen writes the bounding box of the ON cells at gen to w as a
// grid of '.', '*', '?', and 'X' characters, one row per line. Rows and
// columns outside the box are not written; a generation with no ON cells
// degenerates to the single cell at row 1, column 1. The caller selects
// the "#\n" stdout header via toStdout and the append-style trailing
// blank line via appendBlank, since this package never owns a terminal.
func WriteGen(w io.Writer, g *cellgraph.Graph, p params.Params, gen int, toStdout, appendBlank bool) error {
	bw := bufio.NewWriter(w)

	minRow, maxRow := p.RowMax, 1
	minCol, maxCol := p.ColMax, 1

	for row := 1; row <= p.RowMax; row++ {
		for col := 1; col <= p.ColMax; col++ {
			idx, err := g.Index(row, col, gen)
			if err != nil {
				return err
			}
			if g.Cells[idx].State != rule.ON {
				continue
			}
			if row < minRow {
				minRow = row
			}
			if row > maxRow {
				maxRow = row
			}
			if col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	if minRow > maxRow {
		minRow, maxRow = 1, 1
		minCol, maxCol = 1, 1
	}

	if toStdout {
		if _, err := bw.WriteString("#\n"); err != nil {
			return err
		}
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			idx, err := g.Index(row, col, gen)
			if err != nil {
				return err
			}
			c := &g.Cells[idx]

			var ch byte
			switch c.State {
			case rule.OFF:
				ch = '.'
			case rule.ON:
				ch = '*'
			case rule.UNK:
				if c.Choose {
					ch = '?'
				} else {
					ch = 'X'
				}
			}
			if err := bw.WriteByte(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if appendBlank {
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
