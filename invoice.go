package fakturo

import (
	"regexp"
	"strings"

	"github.com/fakturo/fakturo/format"
	"github.com/fakturo/fakturo/norsk"
)

// Field patterns cover the Norwegian and English labels found on invoices.
// Each captures the value following the label on the same line.
var (
	reInvoiceNumber = regexp.MustCompile(`(?im)^.*?(?:fakturan(?:ummer|r)\.?|invoice\s*(?:number|no\.?|#))\s*[:.]?\s*([A-Za-z0-9-]+)\s*$`)
	reIssueDate     = regexp.MustCompile(`(?i)(?:fakturadato|invoice\s*date)\s*[:.]?\s*(\d{2}\.\d{2}\.\d{4})`)
	reDueDate       = regexp.MustCompile(`(?i)(?:forfall(?:sdato)?|due\s*date)\s*[:.]?\s*(\d{2}\.\d{2}\.\d{4})`)
	reContact       = regexp.MustCompile(`(?im)^(?:kontaktperson|contact\s*person)\s*[:.]?\s*(.+?)\s*$`)
	reTotal         = regexp.MustCompile(`(?im)(?:totalt?|sum|å\s*betale|amount\s*due)\s*[:.]?\s*(\d[\d\s.,]*)(?:\s*(?:kr|NOK))?\s*$`)
	reTax           = regexp.MustCompile(`(?im)(?:mva|vat|tax)\s*[:.]?\s*(\d[\d\s.,]*)(?:\s*(?:kr|NOK))?\s*$`)
	reOrgNumber     = regexp.MustCompile(`(?i)(?:org(?:anisasjons)?\.?\s*n(?:ummer|r)\.?)\s*[:.]?\s*(?:NO\s*)?((?:\d\s?){9})(?:\s*MVA)?`)
	reAccount       = regexp.MustCompile(`(?i)(?:konton(?:ummer|r)\.?|bank\s*account|account\s*n(?:umber|o)\.?)\s*[:.]?\s*(\d[\d. ]{9,16})`)
	reKID           = regexp.MustCompile(`(?i)\bkid\s*[:.]?\s*(\d{2,25})`)
)

// ParseInvoice harvests invoice header fields from OCR'd text. Fields that
// cannot be found, or that fail Norwegian validation where one applies, are
// left empty; harvesting never fails.
func ParseInvoice(text string) format.Invoice {
	inv := format.Invoice{
		InvoiceNumber: firstMatch(reInvoiceNumber, text),
		IssueDate:     firstMatch(reIssueDate, text),
		DueDate:       firstMatch(reDueDate, text),
		ContactPerson: firstMatch(reContact, text),
		Total:         strings.TrimSpace(firstMatch(reTotal, text)),
		Tax:           strings.TrimSpace(firstMatch(reTax, text)),
	}

	if org := digitsOnly(firstMatch(reOrgNumber, text)); norsk.ValidOrganizationNumber(org) {
		inv.Registration = org
	}
	if acct := digitsOnly(firstMatch(reAccount, text)); norsk.ValidAccountNumber(acct) {
		inv.BankAccount = acct
	}
	if kid := firstMatch(reKID, text); norsk.ValidKID(kid) {
		inv.Reference = kid
	}

	if !norsk.ValidDate(inv.IssueDate) {
		inv.IssueDate = ""
	}
	if !norsk.ValidDate(inv.DueDate) {
		inv.DueDate = ""
	}
	return inv
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
