package tables

import (
	"strings"

	"github.com/fakturo/fakturo/model"
)

// Renderer serializes a classified table as a markdown pipe table.
//
// Numeric columns get a centered ":---:" separator marker to signal
// alignment, and amount cells are re-grouped with a space every three digits
// per Norwegian convention. The decimal separator is left untouched; OCR
// output already carries the comma.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts the table to markdown. The first row is treated as the
// header. A table with no rows renders to the empty string. Rendering is
// deterministic: the same table and column types always produce identical
// output.
func (r *Renderer) Render(t *model.Table, types map[int]model.ColumnType) string {
	if t == nil || t.RowCount() == 0 {
		return ""
	}

	var sb strings.Builder
	header := t.Header()

	sb.WriteString("| ")
	sb.WriteString(strings.Join(header, " | "))
	sb.WriteString(" |\n")

	sb.WriteString("|")
	for col := range header {
		if types[col].Numeric() {
			sb.WriteString(":---:")
		} else {
			sb.WriteString("---")
		}
		sb.WriteString("|")
	}
	sb.WriteString("\n")

	for i := 1; i < t.RowCount(); i++ {
		cells := t.RowText(i)
		for col, cell := range cells {
			if types[col] == model.ColumnAmount {
				cells[col] = GroupThousands(cell)
			}
		}
		sb.WriteString("| ")
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString(" |\n")
	}

	return sb.String()
}

// GroupThousands inserts a space every three digits, counted from the
// right, into every run of more than three consecutive digits. Runs of
// three or fewer digits, and everything between runs, pass through
// unchanged, so decimal fractions like the ",56" in "1234,56" keep their
// shape while the integer part becomes "1 234".
func GroupThousands(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			sb.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		writeGrouped(&sb, s[i:j])
		i = j
	}
	return sb.String()
}

func writeGrouped(sb *strings.Builder, digits string) {
	n := len(digits)
	if n <= 3 {
		sb.WriteString(digits)
		return
	}
	lead := n % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(digits[i : i+3])
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
