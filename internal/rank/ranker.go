// Package rank combines classified and assessed articles into batch-level
// summaries: stable top-N selection, pyramid level counts, quality-band
// aggregates, and bounded key-finding extraction.
package rank

import (
	"math"
	"sort"

	"github.com/ahidayatxx/evidentia/internal/extract"
	"github.com/ahidayatxx/evidentia/internal/model"
)

func qualityPercent(a model.Article) int {
	if a.Assessment == nil {
		return 0
	}
	return a.Assessment.QualityPercent
}

// SortByEvidence returns a stably sorted copy: evidence level ascending,
// then quality percent descending. Equal keys keep their original
// relative input order, which downstream determinism depends on.
func SortByEvidence(articles []model.Article) []model.Article {
	sorted := make([]model.Article, len(articles))
	copy(sorted, articles)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EvidenceLevel != sorted[j].EvidenceLevel {
			return sorted[i].EvidenceLevel < sorted[j].EvidenceLevel
		}
		return qualityPercent(sorted[i]) > qualityPercent(sorted[j])
	})

	return sorted
}

// TopN returns the first n articles of the evidence-sorted batch.
// n <= 0 selects the default of 10.
func TopN(articles []model.Article, n int) []model.Article {
	if n <= 0 {
		n = 10
	}

	sorted := SortByEvidence(articles)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FilterByLevel returns the inclusive-range subset, preserving relative
// order. Levels 1-2 isolate "top evidence".
func FilterByLevel(articles []model.Article, min, max model.EvidenceLevel) []model.Article {
	filtered := make([]model.Article, 0, len(articles))
	for _, article := range articles {
		if article.EvidenceLevel >= min && article.EvidenceLevel <= max {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

// LevelCounts counts articles per pyramid level over the entire set.
func LevelCounts(articles []model.Article) map[model.EvidenceLevel]int {
	counts := make(map[model.EvidenceLevel]int)
	for _, article := range articles {
		counts[article.EvidenceLevel]++
	}
	return counts
}

// Quality aggregates quality bands and the mean quality percent over a
// subset. The mean is 0 for an empty subset and rounded to one decimal.
func Quality(subset []model.Article) model.QualitySummary {
	var summary model.QualitySummary
	if len(subset) == 0 {
		return summary
	}

	total := 0
	for _, article := range subset {
		score := qualityPercent(article)
		total += score

		switch model.BandForScore(score) {
		case model.BandHigh:
			summary.HighQuality++
		case model.BandModerate:
			summary.ModerateQuality++
		default:
			summary.LowQuality++
		}
	}

	mean := float64(total) / float64(len(subset))
	summary.AverageScore = math.Round(mean*10) / 10
	return summary
}

// BuildSummary assembles the complete batch summary: level counts over
// the full set, band counts and mean over the top-N subset, and key
// findings extracted from the ranked articles.
func BuildSummary(articles []model.Article, topN, maxFindings int) model.BatchSummary {
	top := TopN(articles, topN)

	return model.BatchSummary{
		TotalArticles: len(articles),
		LevelCounts:   LevelCounts(articles),
		TopArticles:   top,
		Quality:       Quality(top),
		KeyFindings:   extract.KeyFindings(top, maxFindings),
	}
}
