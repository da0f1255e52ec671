package format

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fakturo/fakturo/norsk"
)

// CSVFormatter serializes invoices as CSV: Field/Value pairs for the header
// fields, followed by the raw table blocks separated by blank records.
type CSVFormatter struct{}

// NewCSVFormatter creates a CSV formatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Name() string { return "csv" }

// Format returns the invoice and tables as CSV.
func (f *CSVFormatter) Format(inv Invoice, tables []ExtractedTable) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"Field", "Value"}}
	if inv.Registration != "" {
		records = append(records, []string{"Company Registration", norsk.FormatOrganizationNumber(inv.Registration)})
	}
	records = append(records,
		[]string{"Invoice Number", inv.InvoiceNumber},
		[]string{"Issue Date", inv.IssueDate},
		[]string{"Due Date", inv.DueDate},
		[]string{"Contact Person", inv.ContactPerson},
	)
	if inv.Total != "" {
		records = append(records, []string{"Total Amount", norsk.FormatAmountString(inv.Total)})
	}
	if inv.Tax != "" {
		records = append(records, []string{"Tax", norsk.FormatAmountString(inv.Tax)})
	}
	if inv.BankAccount != "" {
		records = append(records, []string{"Bank Account", inv.BankAccount})
	}
	if inv.Reference != "" {
		records = append(records, []string{"Reference", inv.Reference})
	}

	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}

	if len(tables) > 0 {
		if err := w.WriteAll([][]string{{""}, {"Table Data"}}); err != nil {
			return "", fmt.Errorf("failed to write CSV: %w", err)
		}
		for _, t := range tables {
			if err := w.Write([]string{""}); err != nil {
				return "", fmt.Errorf("failed to write CSV: %w", err)
			}
			if headers := t.Headers(); len(headers) > 0 {
				if err := w.Write(headers); err != nil {
					return "", fmt.Errorf("failed to write CSV: %w", err)
				}
			}
			if err := w.WriteAll(t.DataRows()); err != nil {
				return "", fmt.Errorf("failed to write CSV: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}
