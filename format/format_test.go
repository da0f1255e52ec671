package format

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/fakturo/fakturo/model"
)

func testInvoice() Invoice {
	return Invoice{
		Registration:  "923609016",
		InvoiceNumber: "1122",
		IssueDate:     "19.11.2024",
		DueDate:       "19.12.2024",
		ContactPerson: "Ola Nordmann",
		Total:         "6250,00",
		Tax:           "1250,00",
		BankAccount:   "12345678903",
		Reference:     "2345676",
	}
}

func testTables() []ExtractedTable {
	tbl := model.NewTable()
	tbl.AddRow([]string{"Description", "Amount"})
	tbl.AddRow([]string{"Item <1>", "1000,00"})
	tbl.AddRow([]string{"Item 2", "500,00"})

	return []ExtractedTable{{
		Table: tbl,
		Types: map[int]model.ColumnType{0: model.ColumnText, 1: model.ColumnAmount},
	}}
}

func TestFormatterNames(t *testing.T) {
	tests := []struct {
		f    Formatter
		want string
	}{
		{NewJSONFormatter(), "json"},
		{NewYAMLFormatter(), "yaml"},
		{NewXMLFormatter(), "xml"},
		{NewCSVFormatter(), "csv"},
		{NewHTMLFormatter(), "html"},
	}
	for _, tt := range tests {
		if got := tt.f.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSONFormatter().Format(testInvoice(), testTables())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.InvoiceDetails.CompanyRegistration != "923 609 016" {
		t.Errorf("company_registration = %q, want '923 609 016'", doc.InvoiceDetails.CompanyRegistration)
	}
	if doc.InvoiceDetails.InvoiceNumber != "1122" {
		t.Errorf("invoice_number = %q, want '1122'", doc.InvoiceDetails.InvoiceNumber)
	}
	if doc.InvoiceDetails.Financial.TotalAmount != "6 250,00" {
		t.Errorf("total_amount = %q, want '6 250,00'", doc.InvoiceDetails.Financial.TotalAmount)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("tables count = %d, want 1", len(doc.Tables))
	}
	if len(doc.Tables[0].Headers) != 2 {
		t.Errorf("headers = %v, want 2 entries", doc.Tables[0].Headers)
	}
	if got := doc.Tables[0].Rows[0][1]; got != "1000,00" {
		t.Errorf("table cell = %q, want raw '1000,00'", got)
	}
}

func TestJSONFormatter_NoTables(t *testing.T) {
	out, err := NewJSONFormatter().Format(testInvoice(), nil)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if strings.Contains(out, `"tables"`) {
		t.Error("tables key should be omitted when no tables were found")
	}
}

func TestYAMLFormatter(t *testing.T) {
	out, err := NewYAMLFormatter().Format(testInvoice(), testTables())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if doc.InvoiceDetails.InvoiceNumber != "1122" {
		t.Errorf("invoice_number = %q, want '1122'", doc.InvoiceDetails.InvoiceNumber)
	}
	if doc.InvoiceDetails.Financial.Tax != "1 250,00" {
		t.Errorf("tax = %q, want '1 250,00'", doc.InvoiceDetails.Financial.Tax)
	}
	if len(doc.Tables) != 1 || len(doc.Tables[0].Rows) != 2 {
		t.Errorf("tables not round-tripped: %+v", doc.Tables)
	}
}

func TestXMLFormatter(t *testing.T) {
	out, err := NewXMLFormatter().Format(testInvoice(), testTables())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var doc xmlInvoice
	if err := xml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}

	if doc.Details.InvoiceNumber != "1122" {
		t.Errorf("invoice_number = %q, want '1122'", doc.Details.InvoiceNumber)
	}
	if doc.Company.Registration != "923 609 016" {
		t.Errorf("company = %q, want '923 609 016'", doc.Company.Registration)
	}
	if !strings.Contains(out, "<invoice_number>1122</invoice_number>") {
		t.Errorf("missing invoice_number element:\n%s", out)
	}
	if !strings.Contains(out, "<cell>1000,00</cell>") {
		t.Errorf("missing table cell element:\n%s", out)
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := NewCSVFormatter().Format(testInvoice(), testTables())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) == 0 || records[0][0] != "Field" {
		t.Fatalf("first record = %v, want Field/Value header", records[0])
	}

	found := false
	for _, rec := range records {
		if len(rec) == 2 && rec[0] == "Invoice Number" && rec[1] == "1122" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing 'Invoice Number,1122' record:\n%s", out)
	}
	if !strings.Contains(out, "Table Data") {
		t.Errorf("missing table section:\n%s", out)
	}
	if !strings.Contains(out, "Description,Amount") {
		t.Errorf("missing table header record:\n%s", out)
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := NewHTMLFormatter().Format(testInvoice(), testTables())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output should start with a doctype")
	}
	if !strings.Contains(out, "Item &lt;1&gt;") {
		t.Error("cell content was not HTML-escaped")
	}
	if !strings.Contains(out, `<td class="num">`) {
		t.Error("amount column should be rendered with the num class")
	}
	if !strings.Contains(out, "1 000,00") {
		t.Error("amount cell should be re-grouped")
	}
	if !strings.Contains(out, "1234.56.78903") {
		t.Error("bank account should be rendered with grouping dots")
	}
}

func TestHTMLFormatter_NoTables(t *testing.T) {
	out, err := NewHTMLFormatter().Format(Invoice{}, nil)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	if strings.Contains(out, "Table Data") {
		t.Error("table section should be omitted when no tables were found")
	}
}

func TestExtractedTable_Accessors(t *testing.T) {
	et := testTables()[0]

	if got := et.Headers(); len(got) != 2 || got[0] != "Description" {
		t.Errorf("Headers() = %v", got)
	}
	if got := et.DataRows(); len(got) != 2 || got[1][0] != "Item 2" {
		t.Errorf("DataRows() = %v", got)
	}

	empty := ExtractedTable{}
	if empty.Headers() != nil || empty.DataRows() != nil {
		t.Error("empty ExtractedTable should return nil headers and rows")
	}
}
