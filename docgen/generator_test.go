package docgen

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestDetectLanguage_Norwegian(t *testing.T) {
	text := "Faktura 1122\nFakturadato: 19.11.2024\nBeløp: 6250,00\nMVA: 1250,00"

	if got := DetectLanguage(text); got != language.Norwegian {
		t.Errorf("DetectLanguage() = %v, want Norwegian", got)
	}
}

func TestDetectLanguage_English(t *testing.T) {
	text := "Invoice 1122\nInvoice date: 19.11.2024\nAmount due: 6250.00\nTax: 1250.00"

	if got := DetectLanguage(text); got != language.English {
		t.Errorf("DetectLanguage() = %v, want English", got)
	}
}

func TestDetectLanguage_DefaultsToEnglish(t *testing.T) {
	if got := DetectLanguage("no keywords here"); got != language.English {
		t.Errorf("DetectLanguage() = %v, want English default", got)
	}
	if got := DetectLanguage(""); got != language.English {
		t.Errorf("DetectLanguage(\"\") = %v, want English default", got)
	}
}

func TestGenerate_Sections(t *testing.T) {
	text := "Meltek AS\nStorgata 1\n\nFaktura 1122\nLeveranse av kabel\n\nTotal 6250,00"

	out := Generate(text, language.Norwegian)

	if !strings.HasPrefix(out, "Meltek AS") {
		t.Errorf("output should start with the general text, got:\n%s", out)
	}
	if !strings.Contains(out, "## Faktura 1122") {
		t.Errorf("missing section heading for 'Faktura 1122':\n%s", out)
	}
	if !strings.Contains(out, "## Total 6250,00") {
		t.Errorf("missing section heading for 'Total 6250,00':\n%s", out)
	}
	if !strings.Contains(out, "Leveranse av kabel") {
		t.Errorf("section body dropped:\n%s", out)
	}
}

func TestGenerate_BodyFollowsItsHeading(t *testing.T) {
	text := "Faktura 1122\nLinje en\nLinje to"

	out := Generate(text, language.Norwegian)

	heading := strings.Index(out, "## Faktura 1122")
	body := strings.Index(out, "Linje en")
	if heading < 0 || body < 0 || body < heading {
		t.Errorf("body should follow its heading:\n%s", out)
	}
}

func TestGenerate_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	text := "Invoice 42\nline item"

	out := Generate(text, language.German)
	if !strings.Contains(out, "## Invoice 42") {
		t.Errorf("fallback keywords not applied:\n%s", out)
	}
}

func TestGenerate_Empty(t *testing.T) {
	if out := Generate("", language.Norwegian); out != "" {
		t.Errorf("Generate(\"\") = %q, want empty string", out)
	}
	if out := Generate("   \n  ", language.English); out != "" {
		t.Errorf("Generate(blank) = %q, want empty string", out)
	}
}
