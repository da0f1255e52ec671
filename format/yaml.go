package format

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/fakturo/fakturo/norsk"
)

// yamlDocument mirrors the JSON layout with YAML field names.
type yamlDocument struct {
	InvoiceDetails yamlDetails `yaml:"invoice_details"`
	Tables         []yamlTable `yaml:"tables,omitempty"`
}

type yamlDetails struct {
	CompanyRegistration string        `yaml:"company_registration"`
	InvoiceNumber       string        `yaml:"invoice_number"`
	IssueDate           string        `yaml:"issue_date"`
	DueDate             string        `yaml:"due_date"`
	ContactPerson       string        `yaml:"contact_person"`
	Financial           yamlFinancial `yaml:"financial"`
	Payment             yamlPayment   `yaml:"payment"`
}

type yamlFinancial struct {
	TotalAmount string `yaml:"total_amount"`
	Tax         string `yaml:"tax"`
}

type yamlPayment struct {
	BankAccount string `yaml:"bank_account"`
	Reference   string `yaml:"reference"`
}

type yamlTable struct {
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
}

// YAMLFormatter serializes invoices as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Name() string { return "yaml" }

// Format returns the invoice and tables as a YAML document.
func (f *YAMLFormatter) Format(inv Invoice, tables []ExtractedTable) (string, error) {
	doc := yamlDocument{
		InvoiceDetails: yamlDetails{
			CompanyRegistration: norsk.FormatOrganizationNumber(inv.Registration),
			InvoiceNumber:       inv.InvoiceNumber,
			IssueDate:           inv.IssueDate,
			DueDate:             inv.DueDate,
			ContactPerson:       inv.ContactPerson,
			Financial: yamlFinancial{
				TotalAmount: norsk.FormatAmountString(inv.Total),
				Tax:         norsk.FormatAmountString(inv.Tax),
			},
			Payment: yamlPayment{
				BankAccount: inv.BankAccount,
				Reference:   inv.Reference,
			},
		},
	}

	for _, t := range tables {
		doc.Tables = append(doc.Tables, yamlTable{
			Headers: t.Headers(),
			Rows:    t.DataRows(),
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(out), nil
}
