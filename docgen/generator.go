// Package docgen turns OCR-recovered invoice text into a sectioned markdown
// document. Lines containing a known invoice keyword ("Faktura", "Beløp",
// "Invoice", "Total", ...) become section headings; everything else
// accumulates under the current section.
//
// The language of a document is detected by keyword vote between Norwegian
// and English, expressed as golang.org/x/text language tags.
package docgen

import (
	"strings"

	"golang.org/x/text/language"
)

// invoiceKeywords holds the section keywords per supported language.
var invoiceKeywords = map[language.Tag][]string{
	language.English:   {"Invoice", "Date", "Amount", "Tax", "Total"},
	language.Norwegian: {"Faktura", "Dato", "Beløp", "MVA", "Total"},
}

// DetectLanguage detects the document language by counting keyword hits.
// Norwegian wins only when it has strictly more hits than English; the
// default is English.
func DetectLanguage(text string) language.Tag {
	lower := strings.ToLower(text)

	count := func(tag language.Tag) int {
		n := 0
		for _, kw := range invoiceKeywords[tag] {
			if strings.Contains(lower, strings.ToLower(kw)) {
				n++
			}
		}
		return n
	}

	if count(language.Norwegian) > count(language.English) {
		return language.Norwegian
	}
	return language.English
}

// section is one heading plus its accumulated body lines.
type section struct {
	title string
	body  strings.Builder
}

// Generate converts text into markdown for the given language. A line
// containing any of the language's invoice keywords starts a new "##"
// section titled with that line; other lines accumulate under the current
// section. Text before the first keyword line is emitted verbatim, without
// a heading. Blank input produces the empty string.
func Generate(text string, lang language.Tag) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	keywords, ok := invoiceKeywords[lang]
	if !ok {
		keywords = invoiceKeywords[language.English]
	}

	general := &section{}
	sections := []*section{general}
	current := general

	for _, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if containsKeyword(line, keywords) {
			current = &section{title: line}
			sections = append(sections, current)
			continue
		}
		current.body.WriteString(line)
		current.body.WriteString("\n")
	}

	var sb strings.Builder
	for _, s := range sections {
		if s.title == "" {
			sb.WriteString(s.body.String())
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("## ")
		sb.WriteString(s.title)
		sb.WriteString("\n\n")
		sb.WriteString(s.body.String())
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

func containsKeyword(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
