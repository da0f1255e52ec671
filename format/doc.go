// Package format serializes extracted invoice data and tables into the
// supported output formats: JSON, XML, CSV, YAML, and HTML.
//
// Every writer implements [Formatter] over the same inputs: an [Invoice]
// holding the harvested header fields and a slice of [ExtractedTable]
// holding the detected line-item tables with their column types. The
// writers are purely mechanical; all structure inference happens upstream
// in the tables package.
//
// Monetary fields are re-formatted in Norwegian style via the norsk
// package, and amount-typed table columns keep the rendering rules of the
// markdown renderer (right alignment in HTML, grouped digits).
package format
