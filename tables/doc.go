// Package tables recovers tabular structure from OCR'd invoice text.
//
// Scanned invoices carry no reliable layout geometry, so this package infers
// structure from the text alone: column boundaries from delimiters and
// whitespace gaps, table extents from runs of structurally compatible lines,
// and column semantics from the shape of cell contents.
//
// # Pipeline
//
// Detection runs in four stages:
//
//  1. [SplitCells] breaks a single line into candidate cells using pipe
//     delimiters, runs of two or more spaces, or tabs, in that order.
//  2. [Detector] scans the lines once, growing a pending table while
//     consecutive lines produce compatible cell counts and emitting it when
//     the run ends.
//  3. [Classifier] votes each column into text, quantity, or amount using
//     regular-expression rules evaluated in fixed priority order.
//  4. [Renderer] serializes the classified table as an aligned markdown
//     pipe table with type-aware cell formatting.
//
// # Configuration
//
// Detector behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MinRows = 3
//	detector := tables.NewDetector()
//	detector.Configure(config)
//
// All stages are pure functions over their inputs and safe for concurrent
// use; the only shared state is the precompiled, read-only patterns.
package tables
