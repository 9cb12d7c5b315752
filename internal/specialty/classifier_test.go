package specialty

import (
	"testing"

	"github.com/ahidayatxx/evidentia/internal/model"
)

func pinned(t *testing.T) *Classifier {
	t.Helper()
	c := NewClassifier()
	c.Year = 2025
	return c
}

func TestSearchRange_SpecialSituationOverridesSpecialty(t *testing.T) {
	c := pinned(t)

	// Pregnancy (15y) wins over diabetes (established, 8y).
	got := c.SearchRange("pregnant women with diabetes", "insulin therapy", "")

	if got != (model.YearRange{Start: 2010, End: 2025}) {
		t.Errorf("Expected 15-year pregnancy window, got %+v", got)
	}
}

func TestSearchRange_SpecialtyCategories(t *testing.T) {
	c := pinned(t)

	tests := []struct {
		name         string
		intervention string
		wantStart    int
	}{
		{"rapidly evolving", "immunotherapy for melanoma", 2021},
		{"moderately evolving", "anticoagulation in atrial fibrillation", 2019},
		{"established", "antihypertensive therapy for hypertension", 2017},
		{"mental health", "antidepressant therapy", 2017},
		{"emergency", "early goal-directed therapy in sepsis", 2021},
	}

	for _, tt := range tests {
		got := c.SearchRange("adults", tt.intervention, "")
		if got.Start != tt.wantStart || got.End != 2025 {
			t.Errorf("%s: expected start %d, got %+v", tt.name, tt.wantStart, got)
		}
	}
}

func TestSearchRange_PandemicUsesNarrowestWindow(t *testing.T) {
	c := pinned(t)

	got := c.SearchRange("adults", "antiviral treatment", "covid pneumonia")

	if got != (model.YearRange{Start: 2022, End: 2025}) {
		t.Errorf("Expected 3-year pandemic window, got %+v", got)
	}
}

func TestSearchRange_DefaultSevenYears(t *testing.T) {
	c := pinned(t)

	got := c.SearchRange("adults", "vitamin supplementation", "")

	if got != (model.YearRange{Start: 2018, End: 2025}) {
		t.Errorf("Expected default 7-year window, got %+v", got)
	}
}

func TestSearchRange_CaseInsensitive(t *testing.T) {
	c := pinned(t)

	got := c.SearchRange("PREGNANT patients", "Treatment", "")

	if got.Start != 2010 {
		t.Errorf("Expected case-insensitive keyword match, got %+v", got)
	}
}

func TestRangeForPICO(t *testing.T) {
	c := pinned(t)

	got := c.RangeForPICO(model.PICO{
		Population:   "children with asthma",
		Intervention: "inhaled corticosteroids",
	})

	// Pediatric (10y) overrides asthma (established, 8y).
	if got != (model.YearRange{Start: 2015, End: 2025}) {
		t.Errorf("Expected 10-year pediatric window, got %+v", got)
	}
}
