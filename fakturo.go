// Package fakturo provides a fluent API for extracting structured invoice
// data from scanned Norwegian and English PDF documents and re-rendering it
// as markdown or other output formats.
//
// Basic usage with already-OCR'd text:
//
//	tables, err := fakturo.FromText(text).Tables()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	md, err := fakturo.FromText(text).
//	    MinRows(3).
//	    Language(language.Norwegian).
//	    Markdown()
//
// From a scanned PDF (requires building with -tags ocr and a Tesseract
// installation):
//
//	out, err := fakturo.FromPDF("faktura.pdf").Format(format.NewJSONFormatter())
//
// For advanced use cases the lower-level tables, norsk, docgen, format,
// ocr, and pdfdoc packages are also available.
package fakturo

import (
	"strings"

	"github.com/fakturo/fakturo/format"
	"github.com/fakturo/fakturo/model"
	"github.com/fakturo/fakturo/tables"
)

// FromText creates an Extractor over already-OCR'd text.
//
// Example:
//
//	rendered, err := fakturo.FromText(text).Tables()
func FromText(text string) *Extractor {
	return &Extractor{
		text:    text,
		hasText: true,
		options: defaultOptions(),
	}
}

// FromPDF creates an Extractor over a scanned PDF file. The PDF's page
// images are run through OCR when a terminal operation is called, which
// requires building with the "ocr" tag; without it every terminal
// operation returns ocr.ErrOCRNotEnabled.
//
// Example:
//
//	md, err := fakturo.FromPDF("faktura.pdf").Markdown()
func FromPDF(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// ExtractTables renders every table detected in text as a markdown table,
// in detection order, using default options. Text with no detectable
// tables yields an empty slice, never an error.
func ExtractTables(text string) []string {
	rendered, _ := FromText(text).Tables()
	return rendered
}

// StructuredTables returns the detected tables in structured form, with
// inferred column types, using default options. Formatters that want raw
// rows rather than markdown consume this.
func StructuredTables(text string) []format.ExtractedTable {
	structured, _ := FromText(text).Structured()
	return structured
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := fakturo.Must(fakturo.FromText(text).Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// detectTables runs the core detection pipeline over text with the given
// options and returns the normalized tables.
func detectTables(text string, opts ExtractOptions) []*model.Table {
	detector := tables.NewDetector()
	detector.Configure(tables.Config{
		MinRows:         opts.minRows,
		MinCols:         opts.minCols,
		ColumnTolerance: opts.columnTolerance,
	})
	return detector.Detect(strings.Split(text, "\n"))
}
