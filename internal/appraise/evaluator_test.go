package appraise

import (
	"testing"

	"github.com/ahidayatxx/evidentia/internal/model"
)

func TestEvaluator_ChecklistDispatch(t *testing.T) {
	evaluator := NewEvaluator()

	cases := []struct {
		level model.EvidenceLevel
		want  string
	}{
		{model.LevelSystematicReview, "systematic_review"},
		{model.LevelRCT, "rct"},
		{model.LevelCohort, "cohort"},
		{model.LevelCaseControl, "case_control"},
		{model.LevelCaseSeries, "generic"},
		{model.LevelAnimalInVitro, "generic"},
		{model.EvidenceLevel(0), "generic"},
	}

	for _, tc := range cases {
		assessment := evaluator.Assess(model.Article{Title: "A study"}, tc.level)
		if assessment.Checklist != tc.want {
			t.Errorf("Level %d: expected checklist %q, got %q", tc.level, tc.want, assessment.Checklist)
		}
	}
}

func TestEvaluator_ChecklistWeightSums(t *testing.T) {
	evaluator := NewEvaluator()

	cases := []struct {
		level model.EvidenceLevel
		want  int
	}{
		{model.LevelSystematicReview, 100},
		{model.LevelRCT, 110},
		{model.LevelCohort, 100},
		{model.LevelCaseControl, 100},
		{model.LevelCaseSeries, 100},
	}

	for _, tc := range cases {
		assessment := evaluator.Assess(model.Article{}, tc.level)
		if assessment.TotalPossible != tc.want {
			t.Errorf("Level %d: expected total possible %d, got %d", tc.level, tc.want, assessment.TotalPossible)
		}
	}
}

func TestEvaluator_RichRCTScoresHigherThanBare(t *testing.T) {
	evaluator := NewEvaluator()

	rich := model.Article{
		Title: "Aspirin versus placebo: a trial",
		Abstract: "In this double-blind study, outcomes were analyzed by " +
			"intention-to-treat and adjusted for confounders; p < 0.01.",
	}
	bare := model.Article{
		Title:    "Aspirin versus placebo: a trial",
		Abstract: "We compared outcomes between the two groups.",
	}

	richScore := evaluator.Assess(rich, model.LevelRCT).QualityPercent
	bareScore := evaluator.Assess(bare, model.LevelRCT).QualityPercent

	if richScore <= bareScore {
		t.Errorf("Expected rich abstract to outscore bare one: %d <= %d", richScore, bareScore)
	}
}

func TestEvaluator_QualityPercentFloors(t *testing.T) {
	evaluator := NewEvaluator()

	// Only the three blinding criteria match: 15 of 110 points.
	article := model.Article{Abstract: "A double-blind comparison."}

	assessment := evaluator.Assess(article, model.LevelRCT)

	if assessment.TotalEarned != 15 {
		t.Fatalf("Expected 15 points earned, got %d", assessment.TotalEarned)
	}
	// 15/110 = 13.63..., floored.
	if assessment.QualityPercent != 13 {
		t.Errorf("Expected floored percent 13, got %d", assessment.QualityPercent)
	}
}

func TestEvaluator_EmptyArticleScoresLow(t *testing.T) {
	evaluator := NewEvaluator()

	assessment := evaluator.Assess(model.Article{}, model.LevelAnimalInVitro)

	if assessment.QualityPercent != 0 {
		t.Errorf("Expected 0%% for empty article, got %d", assessment.QualityPercent)
	}
	if assessment.Quality != model.BandLow {
		t.Errorf("Expected Low band, got %s", assessment.Quality)
	}
	if assessment.CriteriaMet != 0 {
		t.Errorf("Expected no criteria met, got %d", assessment.CriteriaMet)
	}
	if assessment.CriteriaTotal != 6 {
		t.Errorf("Expected 6 generic criteria, got %d", assessment.CriteriaTotal)
	}
}

func TestEvaluator_CriteriaKeepChecklistOrder(t *testing.T) {
	evaluator := NewEvaluator()

	assessment := evaluator.Assess(model.Article{}, model.LevelRCT)

	if len(assessment.Criteria) != 12 {
		t.Fatalf("Expected 12 RCT criteria, got %d", len(assessment.Criteria))
	}
	if assessment.Criteria[0].ID != "randomization" {
		t.Errorf("Expected randomization first, got %q", assessment.Criteria[0].ID)
	}
	if assessment.Criteria[11].ID != "conflicts_declared" {
		t.Errorf("Expected conflicts_declared last, got %q", assessment.Criteria[11].ID)
	}
}

func TestEvaluator_ConflictDeclarationCriterion(t *testing.T) {
	evaluator := NewEvaluator()

	article := model.Article{
		Abstract: "The authors declare no conflict of interest.",
	}

	assessment := evaluator.Assess(article, model.LevelRCT)

	for _, criterion := range assessment.Criteria {
		if criterion.ID == "conflicts_declared" {
			if !criterion.Satisfied {
				t.Error("Expected conflicts_declared to be satisfied")
			}
			return
		}
	}
	t.Error("conflicts_declared criterion missing")
}

func TestEvaluator_Idempotent(t *testing.T) {
	evaluator := NewEvaluator()

	article := model.Article{
		Title:    "A prospective cohort study",
		Abstract: "Adjusted hazard ratio 0.7; complete follow-up in 96% of the exposed group.",
	}

	first := evaluator.Assess(article, model.LevelCohort)
	second := evaluator.Assess(article, model.LevelCohort)

	if first.QualityPercent != second.QualityPercent || first.CriteriaMet != second.CriteriaMet {
		t.Errorf("Reassessment changed result: %d/%d -> %d/%d",
			first.QualityPercent, first.CriteriaMet, second.QualityPercent, second.CriteriaMet)
	}
}
