package model

// QualityBand is the categorical summary of a numeric quality score.
type QualityBand string

const (
	BandHigh     QualityBand = "High"
	BandModerate QualityBand = "Moderate"
	BandLow      QualityBand = "Low"
)

// Band thresholds, inclusive on the lower edge of each band.
const (
	highThreshold     = 80
	moderateThreshold = 60
)

// BandForScore derives the quality band from a 0-100 score.
func BandForScore(percent int) QualityBand {
	switch {
	case percent >= highThreshold:
		return BandHigh
	case percent >= moderateThreshold:
		return BandModerate
	default:
		return BandLow
	}
}

// Criterion is one evaluated checklist entry. Points is the fixed weight
// the criterion contributes when satisfied.
type Criterion struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Points    int    `json:"points"`
	Satisfied bool   `json:"satisfied"`
}

// Assessment is the result of running a design-specific appraisal
// checklist over one article. Criteria keep checklist order.
type Assessment struct {
	Checklist      string      `json:"checklist"` // rule set name, e.g. "rct"
	Criteria       []Criterion `json:"criteria"`
	TotalPossible  int         `json:"total_possible"`
	TotalEarned    int         `json:"total_earned"`
	QualityPercent int         `json:"quality_percent"` // floor(100*earned/possible)
	CriteriaMet    int         `json:"criteria_met"`
	CriteriaTotal  int         `json:"criteria_total"`
	Quality        QualityBand `json:"quality"`
}
