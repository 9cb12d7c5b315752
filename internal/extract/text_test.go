package extract

import (
	"strings"
	"testing"
)

func TestStripMarkup_PlainTextUntouched(t *testing.T) {
	text := "A randomized trial of aspirin in 120 patients."

	if got := StripMarkup(text); got != text {
		t.Errorf("Expected plain text unchanged, got %q", got)
	}
}

func TestStripMarkup_RemovesInlineTags(t *testing.T) {
	raw := "Effect of <i>Helicobacter pylori</i> eradication on CD4<sup>+</sup> counts."

	got := StripMarkup(raw)

	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("Expected tags removed, got %q", got)
	}
	if !strings.Contains(got, "Helicobacter pylori") {
		t.Errorf("Expected tag content preserved, got %q", got)
	}
}

func TestStripMarkup_SkipsScriptContent(t *testing.T) {
	raw := `<p>A cohort study of statins.</p><script>var x = "placebo";</script>`

	got := StripMarkup(raw)

	if strings.Contains(got, "placebo") {
		t.Error("Should not keep script content")
	}
	if !strings.Contains(got, "cohort study of statins") {
		t.Errorf("Expected visible text kept, got %q", got)
	}
}

func TestNormalizeText_LowercasesAndJoins(t *testing.T) {
	got := NormalizeText("Aspirin RCT", "Double-Blind Placebo-Controlled.")

	if got != "aspirin rct double-blind placebo-controlled." {
		t.Errorf("Unexpected normalized text: %q", got)
	}
}

func TestNormalizeText_EmptyFields(t *testing.T) {
	if got := NormalizeText("", ""); strings.TrimSpace(got) != "" {
		t.Errorf("Expected empty result for empty fields, got %q", got)
	}
}
