package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ahidayatxx/evidentia/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = 4
	return cfg
}

func batch() []model.Article {
	return []model.Article{
		{
			Title:               "Systematic review of azithromycin in pneumonia",
			Abstract:            "Treatment was effective; comprehensive search of databases with inclusion criteria. Quality assessment and meta-analysis performed. Heterogeneity assessed; publication bias examined.",
			PublicationTypeTags: []string{"Systematic Review"},
			FirstAuthor:         "Smith",
			PubYear:             "2022",
		},
		{
			Title:       "A randomized controlled trial of azithromycin",
			Abstract:    "Participants were randomly assigned and double-blind treatment allocated. 320 patients enrolled. Statistical analysis with regression; p < 0.05.",
			FirstAuthor: "Lee",
			PubYear:     "2021",
		},
		{
			Title:       "In vitro activity of azithromycin against pneumococcus",
			Abstract:    "Cell culture assays.",
			FirstAuthor: "Chen",
			PubYear:     "2018",
		},
	}
}

func TestAnalyzeQuestion_EndToEnd(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	analysis, err := analyzer.AnalyzeQuestion(context.Background(),
		"In adults with pneumonia, is azithromycin more effective than doxycycline?", batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if analysis.ID == "" {
		t.Error("Expected a run ID")
	}
	if analysis.Source != "question" {
		t.Errorf("Expected question source, got %q", analysis.Source)
	}
	if analysis.PICO == nil {
		t.Fatal("Expected PICO")
	}
	if analysis.SearchYears.End == 0 {
		t.Error("Expected a search year range")
	}

	// Input order preserved in Articles.
	if analysis.Articles[0].FirstAuthor != "Smith" || analysis.Articles[2].FirstAuthor != "Chen" {
		t.Error("Expected articles in input order")
	}

	// Every article classified and assessed.
	for i, article := range analysis.Articles {
		if !article.EvidenceLevel.Valid() {
			t.Errorf("Article %d has invalid level %d", i, article.EvidenceLevel)
		}
		if article.Assessment == nil {
			t.Errorf("Article %d missing assessment", i)
		}
	}

	// Ranking: systematic review ahead of the in-vitro study.
	top := analysis.Summary.TopArticles
	if len(top) == 0 || top[0].FirstAuthor != "Smith" {
		t.Errorf("Expected the systematic review ranked first, got %+v", top)
	}
	if analysis.Summary.TotalArticles != 3 {
		t.Errorf("Expected 3 total articles, got %d", analysis.Summary.TotalArticles)
	}
	if analysis.LLM != nil {
		t.Error("Expected no LLM section when provider disabled")
	}
}

func TestAnalyzeNote_SetsSource(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	analysis, err := analyzer.AnalyzeNote(context.Background(),
		"72-year-old male admitted with severe pneumonia. Plan: IV antibiotics.", batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if analysis.Source != "clinical_note" {
		t.Errorf("Expected clinical_note source, got %q", analysis.Source)
	}
	if analysis.PICO == nil || analysis.PICO.Intervention == "" {
		t.Error("Expected PICO constructed from note context")
	}
}

func TestAnalyzeArticles_NoPICO(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	analysis, err := analyzer.AnalyzeArticles(context.Background(), batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if analysis.PICO != nil {
		t.Error("Expected no PICO for raw article batches")
	}
	if analysis.Source != "articles" {
		t.Errorf("Expected articles source, got %q", analysis.Source)
	}
}

func TestAnalyze_DeterministicAcrossRuns(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	first, err := analyzer.AnalyzeArticles(context.Background(), batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := analyzer.AnalyzeArticles(context.Background(), batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Articles, second.Articles) {
		t.Error("Expected identical article results across runs")
	}
	if !reflect.DeepEqual(first.Summary, second.Summary) {
		t.Error("Expected identical summaries across runs")
	}
}

func TestAnalyze_CacheDisabledMatchesEnabled(t *testing.T) {
	withCache := NewAnalyzer(testConfig())

	noCacheCfg := testConfig()
	noCacheCfg.Cache.Enabled = false
	withoutCache := NewAnalyzer(noCacheCfg)

	a, err := withCache.AnalyzeArticles(context.Background(), batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := withoutCache.AnalyzeArticles(context.Background(), batch())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a.Articles, b.Articles) {
		t.Error("Expected memoization to not change results")
	}
}

func TestAnalyze_CancelledContext(t *testing.T) {
	analyzer := NewAnalyzer(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := analyzer.AnalyzeArticles(ctx, batch()); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestReadArticles_ArrayAndWrapped(t *testing.T) {
	dir := t.TempDir()

	arrayPath := filepath.Join(dir, "array.json")
	os.WriteFile(arrayPath, []byte(`[{"title":"A"},{"title":"B"}]`), 0o644)

	wrappedPath := filepath.Join(dir, "wrapped.json")
	os.WriteFile(wrappedPath, []byte(`{"articles":[{"title":"C"}]}`), 0o644)

	articles, warnings, err := ReadArticles(arrayPath)
	if err != nil || len(warnings) != 0 {
		t.Fatalf("Unexpected err=%v warnings=%v", err, warnings)
	}
	if len(articles) != 2 || articles[0].Title != "A" {
		t.Errorf("Unexpected articles: %+v", articles)
	}

	articles, _, err = ReadArticles(wrappedPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "C" {
		t.Errorf("Unexpected wrapped articles: %+v", articles)
	}
}

func TestDecodeArticles_SkipsBadRecords(t *testing.T) {
	articles, warnings, err := DecodeArticles([]byte(`[{"title":"ok"},42,{"title":"also ok"}]`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(articles) != 2 {
		t.Errorf("Expected 2 decoded articles, got %d", len(articles))
	}
	if len(warnings) != 1 {
		t.Errorf("Expected 1 warning for bad record, got %v", warnings)
	}
}

func TestDecodeArticles_InvalidDocument(t *testing.T) {
	if _, _, err := DecodeArticles([]byte(`"not a batch"`)); err == nil {
		t.Error("Expected error for non-batch JSON")
	}
}
