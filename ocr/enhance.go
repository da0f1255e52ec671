package ocr

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// correction rewrites one recurring OCR misread. Go regular expressions
// have no lookaround, so the surrounding context is captured and kept.
type correction struct {
	pattern *regexp.Regexp
	replace string
}

// corrections fix the misreads Tesseract commonly produces on invoices:
// letters read in place of digits, separators injected into digit groups,
// and inconsistent currency markers.
var corrections = []correction{
	{regexp.MustCompile(`l(\d)`), "1$1"},           // letter l before a digit
	{regexp.MustCompile(`O(\d)`), "0$1"},           // letter O before a digit
	{regexp.MustCompile(`(\d)O`), "${1}0"},         // letter O after a digit
	{regexp.MustCompile(`(\d),(\d{3})`), "$1$2"},   // thousands comma
	{regexp.MustCompile(`(\d)\.(\d{3})`), "$1$2"},  // thousands dot
	{regexp.MustCompile(`(\d)kr\.?`), "$1 kr"},     // currency glued to amount
	{regexp.MustCompile(`(\d)NOK`), "$1 NOK"},
	{regexp.MustCompile(`[®©™]`), ""},
}

// digraphs maps ASCII digraph fallbacks back to Norwegian letters. OCR of
// Norwegian text frequently degrades æ/ø/å to their two-letter spellings.
var digraphs = []struct{ wrong, right string }{
	{"ae", "æ"}, {"oe", "ø"}, {"aa", "å"},
	{"AE", "Æ"}, {"OE", "Ø"}, {"AA", "Å"},
}

// Enhance post-processes OCR output: it applies the misread corrections,
// restores Norwegian letters from digraph fallbacks, trims each line, and
// normalizes the text to NFC. Line breaks and interior whitespace runs are
// preserved; both carry the row and column structure the table detector
// depends on.
func Enhance(text string) string {
	for _, c := range corrections {
		text = c.pattern.ReplaceAllString(text, c.replace)
	}
	for _, d := range digraphs {
		text = strings.ReplaceAll(text, d.wrong, d.right)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return norm.NFC.String(strings.TrimSpace(strings.Join(lines, "\n")))
}
