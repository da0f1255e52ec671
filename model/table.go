package model

import (
	"strings"
)

// Cell represents a single table cell holding one column's value on one row.
type Cell struct {
	Text string
}

// Table represents a table with cells organized in rows and columns.
// The first row is conventionally the header when one is present.
type Table struct {
	Rows [][]Cell
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow appends a row of cell values to the table.
func (t *Table) AddRow(cells []string) {
	row := make([]Cell, len(cells))
	for i, c := range cells {
		row[i] = Cell{Text: c}
	}
	t.Rows = append(t.Rows, row)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// MaxColCount returns the widest row's column count. It differs from
// ColCount only before normalization.
func (t *Table) MaxColCount() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Normalize pads every row with trailing empty cells so that all rows share
// the same column count.
func (t *Table) Normalize() {
	max := t.MaxColCount()
	for i, row := range t.Rows {
		for len(row) < max {
			row = append(row, Cell{})
		}
		t.Rows[i] = row
	}
}

// Header returns the text values of the first row, or nil for an empty table.
func (t *Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.RowText(0)
}

// RowText returns the text values of the row at the given index.
func (t *Table) RowText(i int) []string {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	out := make([]string, len(t.Rows[i]))
	for j, cell := range t.Rows[i] {
		out[j] = cell.Text
	}
	return out
}

// Column returns the text values of one column across the data rows,
// excluding the header row. Rows too short to reach the column are skipped.
func (t *Table) Column(col int) []string {
	if len(t.Rows) == 0 {
		return nil
	}
	var out []string
	for _, row := range t.Rows[1:] {
		if col < len(row) {
			out = append(out, row[col].Text)
		}
	}
	return out
}

// GetText returns the table as tab-separated plain text, one line per row.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
