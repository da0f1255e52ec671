package format

import (
	"encoding/json"
	"fmt"

	"github.com/fakturo/fakturo/norsk"
)

// jsonDocument mirrors the nested invoice_details layout of the JSON output.
type jsonDocument struct {
	InvoiceDetails jsonDetails `json:"invoice_details"`
	Tables         []jsonTable `json:"tables,omitempty"`
}

type jsonDetails struct {
	CompanyRegistration string        `json:"company_registration"`
	InvoiceNumber       string        `json:"invoice_number"`
	IssueDate           string        `json:"issue_date"`
	DueDate             string        `json:"due_date"`
	ContactPerson       string        `json:"contact_person"`
	Financial           jsonFinancial `json:"financial"`
	Payment             jsonPayment   `json:"payment"`
}

type jsonFinancial struct {
	TotalAmount string `json:"total_amount"`
	Tax         string `json:"tax"`
}

type jsonPayment struct {
	BankAccount string `json:"bank_account"`
	Reference   string `json:"reference"`
}

type jsonTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// JSONFormatter serializes invoices as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Name() string { return "json" }

// Format returns the invoice and tables as a JSON document.
func (f *JSONFormatter) Format(inv Invoice, tables []ExtractedTable) (string, error) {
	doc := jsonDocument{
		InvoiceDetails: jsonDetails{
			CompanyRegistration: norsk.FormatOrganizationNumber(inv.Registration),
			InvoiceNumber:       inv.InvoiceNumber,
			IssueDate:           inv.IssueDate,
			DueDate:             inv.DueDate,
			ContactPerson:       inv.ContactPerson,
			Financial: jsonFinancial{
				TotalAmount: norsk.FormatAmountString(inv.Total),
				Tax:         norsk.FormatAmountString(inv.Tax),
			},
			Payment: jsonPayment{
				BankAccount: inv.BankAccount,
				Reference:   inv.Reference,
			},
		},
	}

	for _, t := range tables {
		doc.Tables = append(doc.Tables, jsonTable{
			Headers: t.Headers(),
			Rows:    t.DataRows(),
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(out), nil
}
