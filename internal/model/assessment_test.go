package model

import "testing"

func TestBandForScore_Boundaries(t *testing.T) {
	cases := []struct {
		percent int
		want    QualityBand
	}{
		{100, BandHigh},
		{80, BandHigh},
		{79, BandModerate},
		{60, BandModerate},
		{59, BandLow},
		{0, BandLow},
	}

	for _, tc := range cases {
		if got := BandForScore(tc.percent); got != tc.want {
			t.Errorf("BandForScore(%d) = %s, want %s", tc.percent, got, tc.want)
		}
	}
}

func TestEvidenceLevel_Names(t *testing.T) {
	cases := []struct {
		level EvidenceLevel
		want  string
	}{
		{LevelSystematicReview, "Systematic Review & Meta-Analysis"},
		{LevelRCT, "Randomized Controlled Trial"},
		{LevelCohort, "Cohort Study"},
		{LevelCaseControl, "Case-Control Study"},
		{LevelCaseSeries, "Case Series / Case Report"},
		{LevelAnimalInVitro, "Animal Research / In Vitro"},
	}

	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("Level %d: expected %q, got %q", tc.level, tc.want, got)
		}
	}
}

func TestEvidenceLevel_OutOfRangeFallsBackToUnknownName(t *testing.T) {
	if got := EvidenceLevel(0).String(); got != "Animal Research / In Vitro" {
		t.Errorf("Expected unknown-level name, got %q", got)
	}
}

func TestEvidenceLevel_Valid(t *testing.T) {
	if EvidenceLevel(0).Valid() || EvidenceLevel(7).Valid() {
		t.Error("Expected out-of-range levels to be invalid")
	}
	for l := LevelSystematicReview; l <= LevelAnimalInVitro; l++ {
		if !l.Valid() {
			t.Errorf("Expected level %d to be valid", l)
		}
	}
}
