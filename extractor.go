package fakturo

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/fakturo/fakturo/docgen"
	"github.com/fakturo/fakturo/format"
	"github.com/fakturo/fakturo/ocr"
	"github.com/fakturo/fakturo/pdfdoc"
	"github.com/fakturo/fakturo/tables"
)

// Extractor provides a fluent interface for extracting invoice content.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	text     string
	hasText  bool
	filename string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		text:     e.text,
		hasText:  e.hasText,
		filename: e.filename,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// MinRows sets the minimum number of rows a line run must have to be
// accepted as a table. Values below 2 are clamped to 2; single rows are
// never tables.
func (e *Extractor) MinRows(n int) *Extractor {
	ne := e.clone()
	if n < 2 {
		n = 2
	}
	ne.options.minRows = n
	return ne
}

// ColumnTolerance sets the allowed deviation of a row's cell count from
// the first row of its table. Negative values are clamped to 0.
func (e *Extractor) ColumnTolerance(n int) *Extractor {
	ne := e.clone()
	if n < 0 {
		n = 0
	}
	ne.options.columnTolerance = n
	return ne
}

// Language fixes the document language instead of auto-detecting it.
func (e *Extractor) Language(tag language.Tag) *Extractor {
	ne := e.clone()
	ne.options.language = tag
	return ne
}

// NoEnhance disables the OCR misread corrections applied to PDF-sourced
// text.
func (e *Extractor) NoEnhance() *Extractor {
	ne := e.clone()
	ne.options.enhance = false
	return ne
}

// source returns the document text, running PDF extraction and OCR when
// the extractor was created with FromPDF.
func (e *Extractor) source() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if e.hasText {
		return e.text, nil
	}
	if e.filename == "" {
		return "", fmt.Errorf("no input specified")
	}
	return e.ocrText()
}

// ocrText validates the PDF, extracts its page images, and recognizes each
// page in order. Pages are joined with newlines so row structure survives.
func (e *Extractor) ocrText() (string, error) {
	if err := pdfdoc.Validate(e.filename); err != nil {
		return "", err
	}

	images, err := pdfdoc.ExtractPageImages(e.filename)
	if err != nil {
		return "", err
	}

	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	pages := make([]string, 0, len(images))
	for i, img := range images {
		data, err := pdfdoc.NormalizePNG(img)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		text, err := client.RecognizeImage(data)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}

	text := strings.Join(pages, "\n")
	if e.options.enhance {
		text = ocr.Enhance(text)
	}
	return text, nil
}

// Tables extracts and renders every detected table as markdown, in
// detection order. Input with no detectable tables yields an empty slice.
func (e *Extractor) Tables() ([]string, error) {
	text, err := e.source()
	if err != nil {
		return nil, err
	}

	classifier := tables.NewClassifier()
	renderer := tables.NewRenderer()

	var rendered []string
	for _, t := range detectTables(text, e.options) {
		out := renderer.Render(t, classifier.Classify(t))
		if out != "" {
			rendered = append(rendered, out)
		}
	}
	return rendered, nil
}

// Structured returns the detected tables with their inferred column types,
// for formatters that want raw rows rather than markdown.
func (e *Extractor) Structured() ([]format.ExtractedTable, error) {
	text, err := e.source()
	if err != nil {
		return nil, err
	}

	classifier := tables.NewClassifier()

	var structured []format.ExtractedTable
	for _, t := range detectTables(text, e.options) {
		structured = append(structured, format.ExtractedTable{
			Table: t,
			Types: classifier.Classify(t),
		})
	}
	return structured, nil
}

// Markdown renders the whole document as markdown: the text organized into
// keyword sections by the docgen generator, followed by the detected tables.
func (e *Extractor) Markdown() (string, error) {
	text, err := e.source()
	if err != nil {
		return "", err
	}

	lang := e.options.language
	if lang == language.Und {
		lang = docgen.DetectLanguage(text)
	}

	var sb strings.Builder
	sb.WriteString(docgen.Generate(text, lang))

	rendered, err := e.Tables()
	if err != nil {
		return "", err
	}
	for _, t := range rendered {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimRight(t, "\n"))
	}
	return strings.TrimSpace(sb.String()) + "\n", nil
}

// Format harvests the invoice header fields from the document, pairs them
// with the detected tables, and serializes both with the given formatter.
func (e *Extractor) Format(f format.Formatter) (string, error) {
	text, err := e.source()
	if err != nil {
		return "", err
	}

	structured, err := e.Structured()
	if err != nil {
		return "", err
	}

	return f.Format(ParseInvoice(text), structured)
}

// DetectLanguage returns the document language, honoring a language fixed
// via Language().
func (e *Extractor) DetectLanguage() (language.Tag, error) {
	text, err := e.source()
	if err != nil {
		return language.Und, err
	}
	if e.options.language != language.Und {
		return e.options.language, nil
	}
	return docgen.DetectLanguage(text), nil
}
