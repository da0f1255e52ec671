package norsk

import (
	"strings"
)

// Weights for the modulus 11 control digit schemes.
var (
	orgWeights       = []int{3, 2, 7, 6, 5, 4, 3, 2}
	accountWeights   = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
	personalWeights1 = []int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	personalWeights2 = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// ValidOrganizationNumber reports whether s is a valid 9-digit Norwegian
// organization number with a correct modulus 11 control digit.
func ValidOrganizationNumber(s string) bool {
	digits, ok := toDigits(s)
	if !ok || len(digits) != 9 {
		return false
	}
	control, ok := mod11(digits[:8], orgWeights)
	return ok && control == digits[8]
}

// ValidAccountNumber reports whether s is a valid 11-digit Norwegian bank
// account number. Grouping dots ("1234.56.78903") are allowed.
func ValidAccountNumber(s string) bool {
	s = strings.ReplaceAll(s, ".", "")
	digits, ok := toDigits(s)
	if !ok || len(digits) != 11 {
		return false
	}
	control, ok := mod11(digits[:10], accountWeights)
	return ok && control == digits[10]
}

// ValidPersonalNumber reports whether s is a valid 11-digit Norwegian
// personal number (fødselsnummer): a plausible DDMMYY date followed by an
// individual number and two modulus 11 control digits.
func ValidPersonalNumber(s string) bool {
	digits, ok := toDigits(s)
	if !ok || len(digits) != 11 {
		return false
	}

	day := digits[0]*10 + digits[1]
	month := digits[2]*10 + digits[3]
	year := digits[4]*10 + digits[5]
	if !plausibleDate(day, month, year) {
		return false
	}

	control1, ok := mod11(digits[:9], personalWeights1)
	if !ok || control1 != digits[9] {
		return false
	}
	control2, ok := mod11(digits[:10], personalWeights2)
	return ok && control2 == digits[10]
}

// ValidVATNumber reports whether s is a valid Norwegian VAT number. The
// "NO" prefix, "MVA" suffix, and spaces are stripped before the underlying
// organization number is checked.
func ValidVATNumber(s string) bool {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "NO", "")
	s = strings.ReplaceAll(s, "MVA", "")
	s = strings.ReplaceAll(s, " ", "")
	return ValidOrganizationNumber(s)
}

// ValidKID reports whether s is a valid KID payment reference: 2 to 25
// digits with a correct modulus 10 (Luhn) control digit.
func ValidKID(s string) bool {
	digits, ok := toDigits(s)
	if !ok || len(digits) < 2 || len(digits) > 25 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidPhone reports whether s is a valid Norwegian phone number: 8 digits
// after stripping separators and the +47/0047/47 country prefix.
func ValidPhone(s string) bool {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '-', '+', '(', ')':
		default:
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "0047"):
		digits = digits[4:]
	case strings.HasPrefix(digits, "47") && len(digits) == 10:
		digits = digits[2:]
	}

	d, ok := toDigits(digits)
	return ok && len(d) == 8
}

// ValidPostalCode reports whether s is a valid Norwegian postal code:
// exactly 4 digits and not the unused "0000".
func ValidPostalCode(s string) bool {
	d, ok := toDigits(s)
	return ok && len(d) == 4 && s != "0000"
}

// ValidDate reports whether s is a date in Norwegian DD.MM.YYYY form that
// exists on the calendar.
func ValidDate(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}
	dd, ok1 := toDigits(parts[0])
	mm, ok2 := toDigits(parts[1])
	yy, ok3 := toDigits(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	day := dd[0]*10 + dd[1]
	month := mm[0]*10 + mm[1]
	year := yy[0]*1000 + yy[1]*100 + yy[2]*10 + yy[3]

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	switch month {
	case 4, 6, 9, 11:
		return day <= 30
	case 2:
		if isLeap(year) {
			return day <= 29
		}
		return day <= 28
	}
	return true
}

// mod11 computes the modulus 11 control digit for the given digits and
// weights. A remainder of 1 yields control digit 10, which is invalid; in
// that case ok is false.
func mod11(digits, weights []int) (control int, ok bool) {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	control = (11 - sum%11) % 11
	if control == 10 {
		return 0, false
	}
	return control, true
}

// plausibleDate checks a DDMMYY birth date. The two-digit year is applied
// to the leap rule directly; without the century the rule is approximate,
// which matches how the registers validate the date part.
func plausibleDate(day, month, year int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	switch month {
	case 4, 6, 9, 11:
		return day <= 30
	case 2:
		leap := (year%4 == 0 && year%100 != 0) || year%400 == 0
		if leap {
			return day <= 29
		}
		return day <= 28
	}
	return true
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// toDigits converts a string of ASCII digits to a digit slice. ok is false
// if s is empty or contains any non-digit.
func toDigits(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
		digits[i] = int(s[i] - '0')
	}
	return digits, true
}
