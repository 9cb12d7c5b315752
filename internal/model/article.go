package model

// Article is a literature record supplied by the ingestion layer,
// typically one entry of a PubMed result set. Source fields are
// read-mostly: the pipeline adds the derived classification and
// assessment fields exactly once and never rewrites the rest.
type Article struct {
	Title               string   `json:"title"`
	Abstract            string   `json:"abstract,omitempty"`
	PublicationTypeTags []string `json:"publicationTypeTags,omitempty"`
	FirstAuthor         string   `json:"firstAuthor,omitempty"`
	PubYear             string   `json:"pubYear,omitempty"`
	Authors             []Author `json:"authors,omitempty"`
	DOI                 string   `json:"doi,omitempty"`
	Journal             string   `json:"journal,omitempty"`
	JournalVolume       string   `json:"journalVolume,omitempty"`
	JournalIssue        string   `json:"journalIssue,omitempty"`
	Pages               string   `json:"pages,omitempty"`

	// Derived by the pipeline.
	EvidenceLevel     EvidenceLevel `json:"evidence_level,omitempty"`
	EvidenceLevelName string        `json:"evidence_level_name,omitempty"`
	Assessment        *Assessment   `json:"assessment,omitempty"`
}

// Author is one entry of an article's ordered author list.
type Author struct {
	LastName string `json:"lastName,omitempty"`
	Initials string `json:"initials,omitempty"`
	Name     string `json:"name,omitempty"` // collective or pre-formatted name
}

// EvidenceLevel is an evidence pyramid level: 1 (strongest design) to 6
// (weakest, also the unknown default).
type EvidenceLevel int

const (
	LevelSystematicReview EvidenceLevel = 1
	LevelRCT              EvidenceLevel = 2
	LevelCohort           EvidenceLevel = 3
	LevelCaseControl      EvidenceLevel = 4
	LevelCaseSeries       EvidenceLevel = 5
	LevelAnimalInVitro    EvidenceLevel = 6
)

// levelNames is the canonical name table for the pyramid.
var levelNames = map[EvidenceLevel]string{
	LevelSystematicReview: "Systematic Review & Meta-Analysis",
	LevelRCT:              "Randomized Controlled Trial",
	LevelCohort:           "Cohort Study",
	LevelCaseControl:      "Case-Control Study",
	LevelCaseSeries:       "Case Series / Case Report",
	LevelAnimalInVitro:    "Animal Research / In Vitro",
}

func (l EvidenceLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return levelNames[LevelAnimalInVitro]
}

// Valid reports whether the level is inside the pyramid.
func (l EvidenceLevel) Valid() bool {
	return l >= LevelSystematicReview && l <= LevelAnimalInVitro
}
