package model

import "time"

// PICO is the clinical-question decomposition consumed upstream of the
// core. The core treats it as opaque pass-through for reporting.
type PICO struct {
	Population       string   `json:"P"`
	Intervention     string   `json:"I"`
	Comparison       string   `json:"C,omitempty"`
	Outcomes         []string `json:"O"`
	QuestionType     string   `json:"question_type,omitempty"` // therapy, diagnosis, prognosis, harm
	OriginalQuestion string   `json:"original_question,omitempty"`
	Source           string   `json:"source,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// YearRange is the inclusive publication-year window used for the search.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// QualitySummary aggregates quality bands over a set of assessed
// articles, commonly the top-N subset.
type QualitySummary struct {
	HighQuality     int     `json:"high_quality"`
	ModerateQuality int     `json:"moderate_quality"`
	LowQuality      int     `json:"low_quality"`
	AverageScore    float64 `json:"average_score"` // mean quality percent, one decimal, 0 if empty
}

// BatchSummary is the aggregate over a processed article batch.
// LevelCounts covers the entire batch; Quality covers TopArticles.
type BatchSummary struct {
	TotalArticles int                   `json:"total_articles"`
	LevelCounts   map[EvidenceLevel]int `json:"level_counts"`
	TopArticles   []Article             `json:"top_articles"`
	Quality       QualitySummary        `json:"quality_summary"`
	KeyFindings   []string              `json:"key_findings"` // capped at 20, attributed
}

// Analysis is the complete record of one analysis run.
type Analysis struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"` // question, clinical_note, articles

	PICO        *PICO     `json:"pico,omitempty"`
	SearchYears YearRange `json:"search_years"`

	// Articles holds the full classified and assessed batch in original
	// input order. Downstream consumers only read it.
	Articles []Article    `json:"articles"`
	Summary  BatchSummary `json:"summary"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional, never affects scoring
}

// LLMSummary is an optional generated plain-language summary. It is kept
// clearly separated from the scored data and never feeds back into
// classification, appraisal, or ranking.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
