package format

import (
	"github.com/fakturo/fakturo/model"
)

// Invoice holds the header fields harvested from an invoice document.
// Fields that could not be found are empty strings.
type Invoice struct {
	Registration  string // organization number
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	ContactPerson string
	Total         string
	Tax           string
	BankAccount   string
	Reference     string // KID payment reference
}

// ExtractedTable bundles a detected table with its inferred column types.
type ExtractedTable struct {
	Table *model.Table
	Types map[int]model.ColumnType
}

// Headers returns the table's header row.
func (e ExtractedTable) Headers() []string {
	if e.Table == nil {
		return nil
	}
	return e.Table.Header()
}

// DataRows returns the table's rows after the header.
func (e ExtractedTable) DataRows() [][]string {
	if e.Table == nil || e.Table.RowCount() < 2 {
		return nil
	}
	rows := make([][]string, 0, e.Table.RowCount()-1)
	for i := 1; i < e.Table.RowCount(); i++ {
		rows = append(rows, e.Table.RowText(i))
	}
	return rows
}

// Formatter serializes an invoice and its tables into one output format.
type Formatter interface {
	// Format returns the serialized document.
	Format(inv Invoice, tables []ExtractedTable) (string, error)

	// Name returns the format name ("json", "html", ...).
	Name() string
}
