package ocr

import (
	"sort"
)

// Word is one recognized word with its bounding box on the page, as
// reported by the OCR engine.
type Word struct {
	Text       string
	Left       int
	Top        int
	Width      int
	Height     int
	Confidence float64
}

// Layout groups a page's words into vertical sections.
type Layout struct {
	Header []Word
	Body   []Word
	Footer []Word
}

// SectionLayout splits words into header, body, and footer by vertical
// position: the top 20% of the occupied page height is header, the bottom
// 20% footer, the rest body. Words are returned in top-to-bottom order
// within each section. Empty input yields an empty layout.
func SectionLayout(words []Word) Layout {
	var layout Layout
	if len(words) == 0 {
		return layout
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Top < sorted[j].Top
	})

	maxY := 0
	for _, w := range sorted {
		if bottom := w.Top + w.Height; bottom > maxY {
			maxY = bottom
		}
	}

	headerEnd := float64(maxY) * 0.2
	footerStart := float64(maxY) * 0.8

	for _, w := range sorted {
		y := float64(w.Top)
		switch {
		case y < headerEnd:
			layout.Header = append(layout.Header, w)
		case y > footerStart:
			layout.Footer = append(layout.Footer, w)
		default:
			layout.Body = append(layout.Body, w)
		}
	}
	return layout
}
