package norsk

import (
	"strconv"
	"strings"
)

// FormatCurrency formats an amount in Norwegian style with the NOK prefix:
// space-separated thousands groups and a comma decimal separator, always
// with two decimals ("NOK 1 234,56").
func FormatCurrency(amount float64) string {
	return "NOK " + formatDecimal(strconv.FormatFloat(amount, 'f', 2, 64))
}

// FormatAmountString re-formats an OCR-recovered amount string in Norwegian
// style without a currency prefix ("1000,00" becomes "1 000,00"). Spaces
// and kr/NOK markers are stripped before parsing; input that does not parse
// as a number is returned unchanged.
func FormatAmountString(s string) string {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "kr", "")
	cleaned = strings.ReplaceAll(cleaned, "NOK", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return s
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return s
	}
	return formatDecimal(strconv.FormatFloat(v, 'f', 2, 64))
}

// FormatPhone formats a Norwegian phone number in the conventional pairs
// ("94 89 89 26"); 9-digit mobile-style numbers get a leading triple.
// Anything else is returned digits-only.
func FormatPhone(s string) string {
	digits := onlyDigits(s)
	switch len(digits) {
	case 8:
		return digits[:2] + " " + digits[2:4] + " " + digits[4:6] + " " + digits[6:]
	case 9:
		return digits[:3] + " " + digits[3:5] + " " + digits[5:7] + " " + digits[7:]
	}
	return digits
}

// FormatAccountNumber formats an 11-digit bank account number with the
// conventional dots ("1234.56.78903"). Anything else is returned
// digits-only.
func FormatAccountNumber(s string) string {
	digits := onlyDigits(s)
	if len(digits) == 11 {
		return digits[:4] + "." + digits[4:6] + "." + digits[6:]
	}
	return digits
}

// FormatOrganizationNumber formats a 9-digit organization number in the
// conventional spaced triples ("923 609 016"). Anything else is returned
// digits-only.
func FormatOrganizationNumber(s string) string {
	digits := onlyDigits(s)
	if len(digits) == 9 {
		return digits[:3] + " " + digits[3:6] + " " + digits[6:]
	}
	return digits
}

// formatDecimal converts a plain "1234.56" decimal string to Norwegian
// style: comma decimal separator and space-grouped integer digits.
func formatDecimal(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		sb.WriteByte(',')
		sb.WriteString(fracPart)
	}
	return sb.String()
}

func onlyDigits(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
