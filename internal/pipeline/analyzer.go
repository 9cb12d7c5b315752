// Package pipeline orchestrates the full analysis: PICO extraction,
// year-range selection, parallel classification and appraisal, ranking
// and the optional LLM narrative.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ahidayatxx/evidentia/internal/appraise"
	"github.com/ahidayatxx/evidentia/internal/cache"
	"github.com/ahidayatxx/evidentia/internal/classify"
	"github.com/ahidayatxx/evidentia/internal/llm"
	"github.com/ahidayatxx/evidentia/internal/model"
	"github.com/ahidayatxx/evidentia/internal/notes"
	"github.com/ahidayatxx/evidentia/internal/pico"
	"github.com/ahidayatxx/evidentia/internal/rank"
	"github.com/ahidayatxx/evidentia/internal/specialty"
	"github.com/ahidayatxx/evidentia/internal/worker"
)

// Analyzer wires the analysis components together.
type Analyzer struct {
	classifier *classify.Classifier
	evaluator  *appraise.Evaluator
	extractor  *pico.Extractor
	noteParser *notes.Parser
	specialty  *specialty.Classifier
	pool       *worker.Pool
	memo       cache.Cache // nil when caching is disabled
	summarizer *llm.Summarizer
	config     *model.Config
}

// NewAnalyzer creates an analyzer from configuration.
func NewAnalyzer(cfg *model.Config) *Analyzer {
	var memo cache.Cache
	if cfg.Cache.Enabled {
		memo = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	ranges := specialty.NewClassifier()
	if cfg.Analysis.DefaultRangeYears > 0 {
		ranges.DefaultYears = cfg.Analysis.DefaultRangeYears
	}

	return &Analyzer{
		classifier: classify.NewClassifier(),
		evaluator:  appraise.NewEvaluator(),
		extractor:  pico.NewExtractor(),
		noteParser: notes.NewParser(),
		specialty:  ranges,
		pool:       worker.NewPool(cfg.Concurrency.Workers),
		memo:       memo,
		summarizer: summarizer,
		config:     cfg,
	}
}

// AnalyzeQuestion runs the full analysis for a direct clinical question.
func (a *Analyzer) AnalyzeQuestion(ctx context.Context, question string, articles []model.Article) (*model.Analysis, error) {
	p := a.extractor.FromQuestion(question)
	years := a.specialty.SearchRange(p.Population, p.Intervention, p.OriginalQuestion)
	return a.run(ctx, "question", &p, years, articles)
}

// AnalyzeNote parses a clinical note, constructs PICO from its context
// and runs the full analysis.
func (a *Analyzer) AnalyzeNote(ctx context.Context, note string, articles []model.Article) (*model.Analysis, error) {
	clinicalCtx := a.noteParser.Parse(note)
	p := a.extractor.FromContext(clinicalCtx)
	years := a.specialty.SearchRange(p.Population, p.Intervention, clinicalCtx.PrimaryCondition.Diagnosis)
	return a.run(ctx, "clinical_note", &p, years, articles)
}

// AnalyzeArticles runs classification, appraisal and ranking over a
// pre-fetched batch without a clinical question.
func (a *Analyzer) AnalyzeArticles(ctx context.Context, articles []model.Article) (*model.Analysis, error) {
	return a.run(ctx, "articles", nil, model.YearRange{}, articles)
}

// AnalyzePICO runs the full analysis with a caller-supplied PICO
// framework, skipping extraction. When years is the zero range it is
// derived from the framework.
func (a *Analyzer) AnalyzePICO(ctx context.Context, p model.PICO, years model.YearRange, articles []model.Article) (*model.Analysis, error) {
	if years == (model.YearRange{}) {
		years = a.specialty.RangeForPICO(p)
	}
	return a.run(ctx, "pico", &p, years, articles)
}

func (a *Analyzer) run(ctx context.Context, source string, p *model.PICO, years model.YearRange, articles []model.Article) (*model.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	processed := a.pool.Map(ctx, articles, a.evaluateArticle)

	analysis := &model.Analysis{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		PICO:        p,
		SearchYears: years,
		Articles:    processed,
		Summary: rank.BuildSummary(processed,
			a.config.Analysis.TopN, a.config.Analysis.MaxFindings),
	}

	// The narrative is generated last so it can never influence
	// classification, appraisal or ranking.
	if a.summarizer != nil && a.summarizer.Enabled() {
		analysis.LLM = a.summarizer.Summarize(ctx, *analysis)
	}

	return analysis, nil
}

// cachedResult captures the derived fields worth memoizing.
type cachedResult struct {
	Level      model.EvidenceLevel `json:"level"`
	LevelName  string              `json:"level_name"`
	Assessment model.Assessment    `json:"assessment"`
}

// evaluateArticle classifies and appraises one article, consulting the
// memoization cache first. The cache only skips recomputation; results
// are identical either way.
func (a *Analyzer) evaluateArticle(article model.Article) model.Article {
	var key string
	if a.memo != nil {
		key = cache.ArticleKey(article.Title, article.Abstract, article.PublicationTypeTags)
		if data, ok := a.memo.Get(key); ok {
			var cached cachedResult
			if err := json.Unmarshal(data, &cached); err == nil {
				article.EvidenceLevel = cached.Level
				article.EvidenceLevelName = cached.LevelName
				assessment := cached.Assessment
				article.Assessment = &assessment
				return article
			}
		}
	}

	article = a.classifier.Apply(article)
	article = a.evaluator.Apply(article)

	if a.memo != nil && article.Assessment != nil {
		data, err := json.Marshal(cachedResult{
			Level:      article.EvidenceLevel,
			LevelName:  article.EvidenceLevelName,
			Assessment: *article.Assessment,
		})
		if err == nil {
			_ = a.memo.Set(key, data, a.config.Cache.TTL)
		}
	}

	return article
}
