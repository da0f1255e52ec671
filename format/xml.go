package format

import (
	"encoding/xml"
	"fmt"

	"github.com/fakturo/fakturo/norsk"
)

// xmlInvoice mirrors the invoice element layout of the XML output.
type xmlInvoice struct {
	XMLName   xml.Name     `xml:"invoice"`
	Company   xmlCompany   `xml:"company"`
	Details   xmlDetails   `xml:"details"`
	Financial xmlFinancial `xml:"financial"`
	Payment   xmlPayment   `xml:"payment"`
	Tables    *xmlTables   `xml:"tables,omitempty"`
}

type xmlCompany struct {
	Registration string `xml:",chardata"`
}

type xmlDetails struct {
	InvoiceNumber string `xml:"invoice_number"`
	IssueDate     string `xml:"issue_date"`
	DueDate       string `xml:"due_date"`
	ContactPerson string `xml:"contact_person"`
}

type xmlFinancial struct {
	TotalAmount string `xml:"total_amount"`
	Tax         string `xml:"tax"`
}

type xmlPayment struct {
	BankAccount string `xml:"bank_account"`
	Reference   string `xml:"reference"`
}

type xmlTables struct {
	Tables []xmlTable `xml:"table"`
}

type xmlTable struct {
	Headers *xmlHeaders `xml:"headers,omitempty"`
	Rows    xmlRows     `xml:"rows"`
}

type xmlHeaders struct {
	Headers []string `xml:"header"`
}

type xmlRows struct {
	Rows []xmlRow `xml:"row"`
}

type xmlRow struct {
	Cells []string `xml:"cell"`
}

// XMLFormatter serializes invoices as XML.
type XMLFormatter struct{}

// NewXMLFormatter creates an XML formatter.
func NewXMLFormatter() *XMLFormatter {
	return &XMLFormatter{}
}

func (f *XMLFormatter) Name() string { return "xml" }

// Format returns the invoice and tables as an XML document.
func (f *XMLFormatter) Format(inv Invoice, tables []ExtractedTable) (string, error) {
	doc := xmlInvoice{
		Company: xmlCompany{Registration: norsk.FormatOrganizationNumber(inv.Registration)},
		Details: xmlDetails{
			InvoiceNumber: inv.InvoiceNumber,
			IssueDate:     inv.IssueDate,
			DueDate:       inv.DueDate,
			ContactPerson: inv.ContactPerson,
		},
		Financial: xmlFinancial{
			TotalAmount: norsk.FormatAmountString(inv.Total),
			Tax:         norsk.FormatAmountString(inv.Tax),
		},
		Payment: xmlPayment{
			BankAccount: inv.BankAccount,
			Reference:   inv.Reference,
		},
	}

	if len(tables) > 0 {
		doc.Tables = &xmlTables{}
		for _, t := range tables {
			xt := xmlTable{}
			if headers := t.Headers(); len(headers) > 0 {
				xt.Headers = &xmlHeaders{Headers: headers}
			}
			for _, row := range t.DataRows() {
				xt.Rows.Rows = append(xt.Rows.Rows, xmlRow{Cells: row})
			}
			doc.Tables.Tables = append(doc.Tables.Tables, xt)
		}
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return string(out), nil
}
