package format

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/fakturo/fakturo/model"
	"github.com/fakturo/fakturo/norsk"
)

// HTMLFormatter serializes invoices as a standalone HTML document. Amount
// and quantity columns are rendered right-aligned.
type HTMLFormatter struct{}

// NewHTMLFormatter creates an HTML formatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

func (f *HTMLFormatter) Name() string { return "html" }

// Format returns the invoice and tables as a complete HTML page.
func (f *HTMLFormatter) Format(inv Invoice, tables []ExtractedTable) (string, error) {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
<title>Invoice Details</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
td.num { text-align: right; }
</style>
</head>
<body>
<h1>Invoice Details</h1>
`)

	if inv.Registration != "" {
		sb.WriteString("<h2>Company Registration</h2>\n<p>")
		sb.WriteString(html.EscapeString(norsk.FormatOrganizationNumber(inv.Registration)))
		sb.WriteString("</p>\n")
	}

	sb.WriteString("<h2>Basic Information</h2>\n")
	writeFieldTable(&sb, [][2]string{
		{"Invoice Number", inv.InvoiceNumber},
		{"Issue Date", inv.IssueDate},
		{"Due Date", inv.DueDate},
		{"Contact Person", inv.ContactPerson},
	})

	sb.WriteString("<h2>Financial Information</h2>\n")
	var financial [][2]string
	if inv.Total != "" {
		financial = append(financial, [2]string{"Total Amount", norsk.FormatAmountString(inv.Total)})
	}
	if inv.Tax != "" {
		financial = append(financial, [2]string{"Tax", norsk.FormatAmountString(inv.Tax)})
	}
	writeFieldTable(&sb, financial)

	sb.WriteString("<h2>Payment Information</h2>\n")
	var payment [][2]string
	if inv.BankAccount != "" {
		payment = append(payment, [2]string{"Bank Account", norsk.FormatAccountNumber(inv.BankAccount)})
	}
	if inv.Reference != "" {
		payment = append(payment, [2]string{"Reference", inv.Reference})
	}
	writeFieldTable(&sb, payment)

	if len(tables) > 0 {
		sb.WriteString("<h2>Table Data</h2>\n")
		for _, t := range tables {
			writeDataTable(&sb, t)
		}
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// writeFieldTable emits a two-column Field/Value table.
func writeFieldTable(sb *strings.Builder, fields [][2]string) {
	sb.WriteString("<table>\n<tr><th>Field</th><th>Value</th></tr>\n")
	for _, f := range fields {
		sb.WriteString("<tr><td>")
		sb.WriteString(html.EscapeString(f[0]))
		sb.WriteString("</td><td>")
		sb.WriteString(html.EscapeString(f[1]))
		sb.WriteString("</td></tr>\n")
	}
	sb.WriteString("</table>\n")
}

// writeDataTable emits one extracted table, right-aligning numeric columns.
func writeDataTable(sb *strings.Builder, t ExtractedTable) {
	sb.WriteString("<table>\n")
	if headers := t.Headers(); len(headers) > 0 {
		sb.WriteString("<tr>")
		for _, h := range headers {
			sb.WriteString("<th>")
			sb.WriteString(html.EscapeString(h))
			sb.WriteString("</th>")
		}
		sb.WriteString("</tr>\n")
	}
	for _, row := range t.DataRows() {
		sb.WriteString("<tr>")
		for col, cell := range row {
			if t.Types[col] == model.ColumnAmount {
				cell = norsk.FormatAmountString(cell)
			}
			if t.Types[col].Numeric() {
				sb.WriteString(`<td class="num">`)
			} else {
				sb.WriteString("<td>")
			}
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</table>\n<br>\n")
}
