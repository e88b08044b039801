package components

import (
	"fmt"
	"strings"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/tui/styles"
)

// Grid geometry. Every row starts with a gutter holding the 1-based number
// of its first item, followed by fixed-width cells.
const (
	GridGutter = 6 // "1000 │"
	CellWidth  = 3 // " ■ " or "[■]" when hovered

	MinColumns = 5
	MaxColumns = 25
)

// ColumnsFor picks how many cells fit in width. limit > 0 caps the result.
func ColumnsFor(width, limit int) int {
	cols := (width - GridGutter) / CellWidth
	if limit > 0 && cols > limit {
		cols = limit
	}
	if cols > MaxColumns {
		cols = MaxColumns
	}
	if cols < MinColumns {
		cols = MinColumns
	}
	return cols
}

// Grid renders the full sequence as rows of toggle cells.
type Grid struct {
	Items   []bool
	Hovered int // -1 for none
	Columns int
	Styles  styles.Board
}

// Rows is the number of rendered lines.
func (g Grid) Rows() int {
	cols := g.columns()
	return (checklist.TotalItems + cols - 1) / cols
}

// RowOf returns the line holding index.
func (g Grid) RowOf(index int) int {
	return index / g.columns()
}

// CellAt maps a column offset within a grid line and the line number to an
// item index. ok is false for the gutter, trailing space and cells past the
// last item.
func (g Grid) CellAt(x, row int) (index int, ok bool) {
	if x < GridGutter || row < 0 {
		return 0, false
	}
	cols := g.columns()
	col := (x - GridGutter) / CellWidth
	if col >= cols {
		return 0, false
	}
	index = row*cols + col
	if index >= checklist.TotalItems {
		return 0, false
	}
	return index, true
}

func (g Grid) columns() int {
	if g.Columns <= 0 {
		return MinColumns
	}
	return g.Columns
}

// Render returns all rows joined by newlines.
func (g Grid) Render() string {
	cols := g.columns()
	st := g.Styles

	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		first := row * cols
		b.WriteString(st.CellNumber.Render(fmt.Sprintf("%4d │", first+1)))

		for i := first; i < first+cols && i < checklist.TotalItems; i++ {
			b.WriteString(g.renderCell(i))
		}
		if row < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (g Grid) renderCell(i int) string {
	st := g.Styles
	checked := i < len(g.Items) && g.Items[i]

	glyph := "□"
	style := st.CellUnchecked
	if checked {
		glyph = "■"
		style = st.CellChecked
	}
	if i == g.Hovered {
		return st.CellHover.Render("[" + glyph + "]")
	}
	return style.Render(" " + glyph + " ")
}
