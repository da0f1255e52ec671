package tables

import (
	"regexp"
	"strings"
)

// gapPattern matches runs of two or more whitespace characters. This is the
// dominant column separator in OCR output, where columns are visually
// separated by wide gaps but carry no explicit delimiter.
var gapPattern = regexp.MustCompile(`\s{2,}`)

// SplitCells splits one raw text line into an ordered sequence of candidate
// cell strings. Delimiters are tried in priority order: pipe characters,
// runs of two or more whitespace characters, then tabs. A delimiter wins
// only when it produces at least two non-empty cells; otherwise the whole
// trimmed line is a single cell. An empty or blank line yields nil.
//
// Single spaces never split, so space-grouped numbers like "1 234,56" stay
// in one cell as long as the surrounding column gap is wider.
func SplitCells(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.Contains(line, "|") {
		cells := trimNonEmpty(strings.Split(line, "|"))
		if len(cells) > 0 {
			return cells
		}
		return nil
	}

	if cells := trimNonEmpty(gapPattern.Split(line, -1)); len(cells) > 1 {
		return cells
	}

	if cells := trimNonEmpty(strings.Split(line, "\t")); len(cells) > 1 {
		return cells
	}

	return []string{line}
}

// trimNonEmpty trims every piece and drops the empty ones, preserving order.
func trimNonEmpty(pieces []string) []string {
	cells := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}
