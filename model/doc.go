// Package model provides the intermediate representation (IR) for content
// extracted from scanned invoices.
//
// This package defines the user-facing data structures produced by table
// detection and consumed by the renderers and output formatters, making them
// the primary API for working with extracted content.
//
// # Tables
//
// The [Table] type is a plain grid of text cells recovered from OCR output.
// The first row is conventionally the header. Tables built up during
// detection may be ragged; [Table.Normalize] pads every row with empty cells
// so all rows share the same column count.
//
// # Column types
//
// [ColumnType] tags a table column with the semantic class inferred from its
// contents:
//
//   - [ColumnText] - free text (the default)
//   - [ColumnQuantity] - bare numbers such as item counts
//   - [ColumnAmount] - monetary amounts, optionally carrying kr/NOK markers
//
// Column types drive rendering decisions such as numeric alignment and
// thousands grouping.
package model
