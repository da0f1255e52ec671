package tables

import (
	"github.com/fakturo/fakturo/model"
)

// Config holds detector configuration.
type Config struct {
	// Minimum rows for a valid table. Runs shorter than this are
	// discarded, which filters stray "Key: Value" lines out of the output.
	MinRows int

	// Minimum columns for a row to start or extend a table.
	MinCols int

	// ColumnTolerance is the allowed deviation of a row's cell count from
	// the first row of the pending table.
	ColumnTolerance int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:         2,
		MinCols:         2,
		ColumnTolerance: 1,
	}
}

// Detector groups OCR text lines into tables. It performs a single linear
// scan with two states: outside any table, or growing a pending table while
// incoming lines remain structurally compatible with it.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// Configure sets detector parameters. Non-positive minimums fall back to
// the defaults.
func (d *Detector) Configure(config Config) {
	def := DefaultConfig()
	if config.MinRows < 2 {
		config.MinRows = def.MinRows
	}
	if config.MinCols < 2 {
		config.MinCols = def.MinCols
	}
	if config.ColumnTolerance < 0 {
		config.ColumnTolerance = def.ColumnTolerance
	}
	d.config = config
}

// Detect scans lines and returns the tables found, in input order. Every
// returned table has at least Config.MinRows rows and is normalized so all
// rows share the same column count.
func (d *Detector) Detect(lines []string) []*model.Table {
	var found []*model.Table

	var pending *model.Table
	firstCols := 0

	finalize := func() {
		if pending != nil && pending.RowCount() >= d.config.MinRows {
			pending.Normalize()
			found = append(found, pending)
		}
		pending = nil
	}

	for _, line := range lines {
		cells := SplitCells(line)

		if len(cells) < d.config.MinCols {
			// Blank or non-tabular line ends the current run.
			finalize()
			continue
		}

		if pending == nil {
			pending = model.NewTable()
			pending.AddRow(cells)
			firstCols = len(cells)
			continue
		}

		if d.compatible(len(cells), firstCols) {
			pending.AddRow(cells)
			continue
		}

		// Column count diverged: the line belongs to a different table.
		finalize()
		pending = model.NewTable()
		pending.AddRow(cells)
		firstCols = len(cells)
	}

	finalize()
	return found
}

// compatible reports whether a row with n cells can extend a table whose
// first row had firstCols cells.
func (d *Detector) compatible(n, firstCols int) bool {
	diff := n - firstCols
	if diff < 0 {
		diff = -diff
	}
	return diff <= d.config.ColumnTolerance
}
