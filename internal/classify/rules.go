package classify

import "github.com/ahidayatxx/evidentia/internal/model"

// levelRule binds one pyramid level to its keyword set. Rules are scanned
// strictly in slice order (level 1 → 6) with first match winning: keyword
// sets overlap on purpose ("clinical trial" concerns both the RCT and
// cohort buckets), and the scan order is the quality-first tie-break.
// Reordering silently changes outcomes.
type levelRule struct {
	Level    model.EvidenceLevel
	Keywords []string
}

// tagRules match against controlled-vocabulary publication type tags.
var tagRules = []levelRule{
	{model.LevelSystematicReview, []string{
		"meta-analysis",
		"systematic review",
		"research support, u.s. gov't",
	}},
	{model.LevelRCT, []string{
		"randomized controlled trial",
		"clinical trial",
		"clinical trial, phase i",
		"clinical trial, phase ii",
		"clinical trial, phase iii",
		"clinical trial, phase iv",
		"controlled clinical trial",
		"pragmatic clinical trial",
	}},
	{model.LevelCohort, []string{
		"cohort study",
		"follow-up study",
		"longitudinal studies",
		"observational study",
		"prospective study",
	}},
	{model.LevelCaseControl, []string{
		"case-control studies",
		"retrospective studies",
		"case-control study",
	}},
	{model.LevelCaseSeries, []string{
		"case reports",
		"case series",
	}},
	{model.LevelAnimalInVitro, []string{
		"animal experiment",
		"in vitro",
		"animals",
		"animal model",
	}},
}

// textRules are the expanded keyword sets used against title+abstract text
// when no tag matched.
var textRules = []levelRule{
	{model.LevelSystematicReview, []string{
		"meta-analysis", "meta analysis", "systematic review",
		"systematic literature review", "pooled analysis",
	}},
	{model.LevelRCT, []string{
		"randomized", "randomised", "randomized controlled trial",
		"rct", "double-blind", "double blind", "single-blind",
		"single blind", "placebo-controlled",
	}},
	{model.LevelCohort, []string{
		"cohort", "prospective study", "prospective follow-up",
		"longitudinal", "observational cohort",
	}},
	{model.LevelCaseControl, []string{
		"case-control", "case control", "retrospective cohort",
	}},
	{model.LevelCaseSeries, []string{
		"case report", "case series", "single case",
	}},
	{model.LevelAnimalInVitro, []string{
		"animal", "mouse", "rat", "in vitro", "cell line",
		"experimental model", "animal model",
	}},
}
