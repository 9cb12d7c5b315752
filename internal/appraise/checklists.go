package appraise

import "github.com/ahidayatxx/evidentia/internal/model"

// criterionRule is one entry of an appraisal checklist: a fixed point
// weight and the predicate that decides whether the article earns it.
type criterionRule struct {
	ID       string
	Question string
	Points   int
	Check    predicate
}

// checklist is an ordered, design-specific appraisal rule set. The rule
// tables are data: adding or tuning a criterion never touches control
// flow in the evaluator.
type checklist struct {
	Name     string
	Criteria []criterionRule
}

// checklistFor selects the rule set appropriate to a study design.
// Levels 5 and 6 (and anything out of range) fall back to the generic
// checklist.
func checklistFor(level model.EvidenceLevel) checklist {
	switch level {
	case model.LevelSystematicReview:
		return systematicReviewChecklist
	case model.LevelRCT:
		return rctChecklist
	case model.LevelCohort:
		return cohortChecklist
	case model.LevelCaseControl:
		return caseControlChecklist
	default:
		return genericChecklist
	}
}

var rctChecklist = checklist{
	Name: "rct",
	Criteria: []criterionRule{
		{"randomization", "Was randomization used?", 10, hasKeyword(
			"random", "randomized", "randomised", "randomly assigned",
			"random allocation")},
		{"allocation_concealment", "Was allocation concealed?", 10, hasKeyword(
			"allocation concealed", "concealed allocation",
			"central randomization", "sealed opaque envelope")},
		{"blinding_participants", "Were participants blinded?", 5, hasKeyword(
			"participant blinded", "patient blinded", "double-blind",
			"single-blind")},
		{"blinding_personnel", "Were personnel blinded?", 5, hasKeyword(
			"investigator blinded", "personnel blinded",
			"double-blind", "assessor blinded")},
		{"blinding_outcome", "Were outcome assessors blinded?", 5, hasKeyword(
			"outcome assessor blinded", "blinded outcome assessment",
			"double-blind")},
		{"follow_up_complete", "Was follow-up complete (>80%)?", 15, hasAdequateFollowUp},
		{"intention_to_treat", "Was intention-to-treat analysis used?", 15, hasKeyword(
			"intention to treat", "intention-to-treat", "itt analysis",
			"analyzed as randomized")},
		{"baseline_similarity", "Were groups similar at baseline?", 10, hasKeyword(
			"baseline characteristics", "similar at baseline",
			"no significant difference at baseline", "balanced")},
		{"equal_treatment", "Were groups treated equally?", 10, hasKeyword(
			"co-intervention", "equal treatment", "except for intervention")},
		{"reliable_measures", "Were outcomes measured reliably?", 10, hasKeyword(
			"validated", "reliable measure", "standardized measure")},
		{"appropriate_analysis", "Was appropriate statistical analysis used?", 5, hasStatisticalAnalysis},
		{"conflicts_declared", "Were conflicts of interest declared?", 10, hasConflictDeclaration},
	},
}

var systematicReviewChecklist = checklist{
	Name: "systematic_review",
	Criteria: []criterionRule{
		{"question_defined", "Was the review question clearly defined?", 10, hasKeyword(
			"objective", "research question", "aim of this review",
			"purpose of this review")},
		{"inclusion_criteria", "Were appropriate inclusion criteria defined?", 10, hasKeyword(
			"inclusion criteria", "eligibility criteria",
			"inclusion and exclusion")},
		{"search_strategy", "Was the search strategy comprehensive?", 20, hasKeyword(
			"comprehensive search", "multiple databases",
			"medline", "pubmed", "embase", "cochrane",
			"systematic search")},
		{"study_selection", "Were studies selected independently?", 10, hasKeyword(
			"independent selection", "two reviewers",
			"two independent reviewers")},
		{"quality_assessment", "Was study quality assessed?", 15, hasKeyword(
			"quality assessment", "risk of bias", "critical appraisal",
			"methodological quality")},
		{"data_extraction", "Was data extracted independently?", 10, hasKeyword(
			"independent extraction", "two reviewers", "data extraction")},
		{"synthesis_methods", "Were appropriate synthesis methods used?", 15, hasKeyword(
			"meta-analysis", "pooled", "heterogeneity",
			"publication bias", "sensitivity analysis")},
		{"conflicts_declared", "Were conflicts of interest declared?", 10, hasConflictDeclaration},
	},
}

var cohortChecklist = checklist{
	Name: "cohort",
	Criteria: []criterionRule{
		{"representative", "Was the sample representative?", 10, hasKeyword(
			"representative", "consecutive", "population-based")},
		{"groups_defined", "Were exposure groups clearly defined?", 15, hasKeyword(
			"exposure group", "exposed group", "unexposed",
			"comparison group")},
		{"confounding_identified", "Were confounding factors identified?", 10, hasKeyword(
			"confound", "confounding", "potential confounder")},
		{"confounding_controlled", "Were strategies to deal with confounding used?", 10, hasKeyword(
			"adjusted", "multivariate", "regression", "propensity score",
			"matched", "stratified")},
		{"outcomes_objective", "Were outcomes measured objectively?", 20, hasKeyword(
			"objective outcome", "standardized", "validated")},
		{"follow_up_adequate", "Was follow-up adequate?", 15, hasAdequateFollowUp},
		{"appropriate_analysis", "Was appropriate statistical analysis used?", 15, hasStatisticalAnalysis},
		{"conflicts_declared", "Were conflicts of interest declared?", 5, hasConflictDeclaration},
	},
}

var caseControlChecklist = checklist{
	Name: "case_control",
	Criteria: []criterionRule{
		{"cases_defined", "Were cases clearly defined?", 15, hasKeyword(
			"case definition", "cases defined", "inclusion criteria")},
		{"cases_representative", "Were cases representative?", 10, hasKeyword(
			"consecutive", "all cases", "population-based")},
		{"controls_appropriate", "Were controls appropriately selected?", 20, hasKeyword(
			"matched", "control group", "comparison group",
			"same population")},
		{"exposure_objective", "Was exposure assessed objectively?", 20, hasKeyword(
			"standardized", "validated", "blinded assessment")},
		{"confounding_controlled", "Were confounding factors controlled?", 15, hasKeyword(
			"adjusted", "multivariate", "regression",
			"matched", "stratified")},
		{"appropriate_analysis", "Was appropriate statistical analysis used?", 10, hasStatisticalAnalysis},
		{"conflicts_declared", "Were conflicts of interest declared?", 10, hasConflictDeclaration},
	},
}

var genericChecklist = checklist{
	Name: "generic",
	Criteria: []criterionRule{
		{"design_appropriate", "Was study design appropriate for the question?", 15, hasKeyword(
			"study", "design", "method")},
		{"sample_adequate", "Was the sample adequate?", 15, hasAdequateSampleSize},
		{"objective_measures", "Were measures objective?", 20, hasKeyword(
			"objective", "validated", "standardized", "reliable")},
		{"confounding_addressed", "Was confounding addressed?", 20, hasKeyword(
			"confound", "adjusted", "controlled")},
		{"follow_up_adequate", "Was follow-up adequate?", 15, hasAdequateFollowUp},
		{"appropriate_analysis", "Was appropriate analysis used?", 15, hasStatisticalAnalysis},
	},
}
