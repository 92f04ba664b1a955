package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// table lays out cells in columns sized by display width, so names with wide
// runes stay aligned.
type table struct {
	header []string
	right  []bool
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header, right: make([]bool, len(header))}
}

// alignRight right-aligns the given columns.
func (t *table) alignRight(cols ...int) *table {
	for _, c := range cols {
		if c >= 0 && c < len(t.right) {
			t.right[c] = true
		}
	}
	return t
}

// add appends a row. Missing cells render empty; extra cells are dropped.
func (t *table) add(cells ...string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *table) widths() []int {
	w := make([]int, len(t.header))
	for _, row := range append([][]string{t.header}, t.rows...) {
		for i, cell := range row {
			w[i] = max(w[i], runewidth.StringWidth(cell))
		}
	}
	return w
}

func (t *table) render(sb *strings.Builder) {
	w := t.widths()
	line := func(row []string) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if t.right[i] {
				cells[i] = runewidth.FillLeft(cell, w[i])
			} else {
				cells[i] = runewidth.FillRight(cell, w[i])
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, columnGap), " "))
		sb.WriteByte('\n')
	}

	line(t.header)
	for _, row := range t.rows {
		line(row)
	}
}

func (t *table) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}
