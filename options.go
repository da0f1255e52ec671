package fakturo

import (
	"golang.org/x/text/language"
)

// ExtractOptions holds configuration for invoice extraction.
type ExtractOptions struct {
	// Table detection
	minRows         int
	minCols         int
	columnTolerance int

	// Document language. language.Und means auto-detect by keyword.
	language language.Tag

	// Whether to run OCR misread corrections over PDF-sourced text.
	enhance bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		minRows:         2,
		minCols:         2,
		columnTolerance: 1,
		language:        language.Und,
		enhance:         true,
	}
}

// clone creates a copy of ExtractOptions. All fields are values, so a
// shallow copy is a deep copy.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
