package rank

import (
	"testing"

	"github.com/ahidayatxx/evidentia/internal/model"
)

func assessed(level model.EvidenceLevel, percent int, doi string) model.Article {
	return model.Article{
		DOI:           doi,
		EvidenceLevel: level,
		Assessment: &model.Assessment{
			QualityPercent: percent,
			Quality:        model.BandForScore(percent),
		},
	}
}

func TestSortByEvidence_LevelBeatsQuality(t *testing.T) {
	articles := []model.Article{
		assessed(model.LevelCohort, 95, "a"),
		assessed(model.LevelSystematicReview, 10, "b"),
	}

	sorted := SortByEvidence(articles)

	if sorted[0].DOI != "b" {
		t.Errorf("Expected level 1 ranked before level 3 regardless of quality, got %q first", sorted[0].DOI)
	}
}

func TestSortByEvidence_QualityBreaksLevelTies(t *testing.T) {
	articles := []model.Article{
		assessed(model.LevelRCT, 40, "low"),
		assessed(model.LevelRCT, 90, "high"),
	}

	sorted := SortByEvidence(articles)

	if sorted[0].DOI != "high" || sorted[1].DOI != "low" {
		t.Errorf("Expected higher quality first within a level, got %q, %q", sorted[0].DOI, sorted[1].DOI)
	}
}

func TestSortByEvidence_EqualKeysPreserveInputOrder(t *testing.T) {
	articles := []model.Article{
		assessed(model.LevelRCT, 70, "first"),
		assessed(model.LevelRCT, 70, "second"),
		assessed(model.LevelRCT, 70, "third"),
	}

	sorted := SortByEvidence(articles)

	for i, want := range []string{"first", "second", "third"} {
		if sorted[i].DOI != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, sorted[i].DOI)
		}
	}
}

func TestSortByEvidence_DoesNotMutateInput(t *testing.T) {
	articles := []model.Article{
		assessed(model.LevelCohort, 10, "a"),
		assessed(model.LevelSystematicReview, 10, "b"),
	}

	SortByEvidence(articles)

	if articles[0].DOI != "a" {
		t.Error("Expected input slice untouched")
	}
}

func TestTopN_DefaultAndTruncation(t *testing.T) {
	articles := make([]model.Article, 15)
	for i := range articles {
		articles[i] = assessed(model.LevelRCT, 50, "x")
	}

	if got := len(TopN(articles, 0)); got != 10 {
		t.Errorf("Expected default top 10, got %d", got)
	}
	if got := len(TopN(articles, 3)); got != 3 {
		t.Errorf("Expected top 3, got %d", got)
	}
	if got := len(TopN(articles[:2], 10)); got != 2 {
		t.Errorf("Expected short batch returned whole, got %d", got)
	}
}

func TestFilterByLevel_InclusiveRangePreservesOrder(t *testing.T) {
	articles := []model.Article{
		assessed(model.LevelCohort, 0, "c3"),
		assessed(model.LevelSystematicReview, 0, "c1"),
		assessed(model.LevelAnimalInVitro, 0, "c6"),
		assessed(model.LevelRCT, 0, "c2"),
	}

	filtered := FilterByLevel(articles, model.LevelSystematicReview, model.LevelRCT)

	if len(filtered) != 2 {
		t.Fatalf("Expected 2 articles in range 1-2, got %d", len(filtered))
	}
	if filtered[0].DOI != "c1" || filtered[1].DOI != "c2" {
		t.Errorf("Expected original relative order c1, c2; got %q, %q", filtered[0].DOI, filtered[1].DOI)
	}
}

func TestLevelCounts_FixedBatch(t *testing.T) {
	// 12 articles with known levels {1:2, 2:5, 3:3, 6:2}.
	var articles []model.Article
	for level, n := range map[model.EvidenceLevel]int{
		model.LevelSystematicReview: 2,
		model.LevelRCT:              5,
		model.LevelCohort:           3,
		model.LevelAnimalInVitro:    2,
	} {
		for i := 0; i < n; i++ {
			articles = append(articles, assessed(level, 0, ""))
		}
	}

	counts := LevelCounts(articles)

	want := map[model.EvidenceLevel]int{1: 2, 2: 5, 3: 3, 6: 2}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d distinct levels, got %d", len(want), len(counts))
	}
	for level, n := range want {
		if counts[level] != n {
			t.Errorf("Level %d: expected count %d, got %d", level, n, counts[level])
		}
	}
}

func TestQuality_EmptySubset(t *testing.T) {
	summary := Quality(nil)

	if summary.AverageScore != 0 {
		t.Errorf("Expected 0 mean for empty subset, got %.1f", summary.AverageScore)
	}
	if summary.HighQuality != 0 || summary.ModerateQuality != 0 || summary.LowQuality != 0 {
		t.Error("Expected zero band counts for empty subset")
	}
}

func TestQuality_BandsAndRoundedMean(t *testing.T) {
	subset := []model.Article{
		assessed(model.LevelRCT, 85, ""),
		assessed(model.LevelRCT, 70, ""),
		assessed(model.LevelRCT, 40, ""),
	}

	summary := Quality(subset)

	if summary.HighQuality != 1 || summary.ModerateQuality != 1 || summary.LowQuality != 1 {
		t.Errorf("Unexpected band counts: %+v", summary)
	}
	// (85+70+40)/3 = 65.0
	if summary.AverageScore != 65.0 {
		t.Errorf("Expected mean 65.0, got %.1f", summary.AverageScore)
	}
}

func TestQuality_MeanRoundsToOneDecimal(t *testing.T) {
	subset := []model.Article{
		assessed(model.LevelRCT, 80, ""),
		assessed(model.LevelRCT, 81, ""),
		assessed(model.LevelRCT, 81, ""),
	}

	summary := Quality(subset)

	// 242/3 = 80.666... -> 80.7
	if summary.AverageScore != 80.7 {
		t.Errorf("Expected mean 80.7, got %.10f", summary.AverageScore)
	}
}

func TestBuildSummary_Composition(t *testing.T) {
	articles := []model.Article{
		assessed(model.LevelAnimalInVitro, 10, "low"),
		{
			DOI:           "sr",
			FirstAuthor:   "Smith",
			PubYear:       "2020",
			Abstract:      "Treatment was effective at reducing all-cause mortality substantially.",
			EvidenceLevel: model.LevelSystematicReview,
			Assessment:    &model.Assessment{QualityPercent: 90, Quality: model.BandHigh},
		},
	}

	summary := BuildSummary(articles, 1, 20)

	if summary.TotalArticles != 2 {
		t.Errorf("Expected total 2, got %d", summary.TotalArticles)
	}
	// Level counts cover the whole batch, not just top-N.
	if summary.LevelCounts[model.LevelSystematicReview] != 1 || summary.LevelCounts[model.LevelAnimalInVitro] != 1 {
		t.Errorf("Unexpected level counts: %v", summary.LevelCounts)
	}
	if len(summary.TopArticles) != 1 || summary.TopArticles[0].DOI != "sr" {
		t.Fatalf("Expected top-1 to be the systematic review")
	}
	// Quality covers the top-N subset only.
	if summary.Quality.HighQuality != 1 || summary.Quality.LowQuality != 0 {
		t.Errorf("Expected quality summary over top-N only: %+v", summary.Quality)
	}
	if len(summary.KeyFindings) != 1 {
		t.Fatalf("Expected 1 key finding, got %d", len(summary.KeyFindings))
	}
}
