package cli

import "testing"

func TestParseYearRange(t *testing.T) {
	r, err := parseYearRange("2018-2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != 2018 || r.End != 2025 {
		t.Errorf("got %d-%d, want 2018-2025", r.Start, r.End)
	}
}

func TestParseYearRangeEmpty(t *testing.T) {
	r, err := parseYearRange("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Start != 0 || r.End != 0 {
		t.Errorf("empty input should yield the zero range, got %d-%d", r.Start, r.End)
	}
}

func TestParseYearRangeInvalid(t *testing.T) {
	for _, input := range []string{"2025", "abc-def", "2025-2018"} {
		if _, err := parseYearRange(input); err == nil {
			t.Errorf("parseYearRange(%q) should fail", input)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 70); got != "short" {
		t.Errorf("short titles should pass through, got %q", got)
	}
	long := "Effectiveness of azithromycin versus doxycycline in community-acquired pneumonia"
	got := truncate(long, 40)
	if len(got) != 40 {
		t.Errorf("truncated length = %d, want 40", len(got))
	}
	if got[37:] != "..." {
		t.Errorf("truncated title should end with ellipsis, got %q", got)
	}
}
