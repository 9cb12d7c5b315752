// Package llm produces optional plain-language narratives over a
// finished analysis. The narrative is presentation-only: it is
// generated after classification, appraisal and ranking complete, and
// nothing here feeds back into them.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a narrative summary of the analysis
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Analysis is the completed evidence analysis to narrate
	Analysis model.Analysis

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated narrative text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults with the provider disabled.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// NewProvider creates an LLM provider based on configuration. An empty
// provider name disables summarization and returns nil.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts the application LLM config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}

// BuildPrompt constructs the default summarization prompt. It hands
// the model only already-computed aggregates and constrains it to
// describing evidence, never giving clinical advice.
func BuildPrompt(a model.Analysis) string {
	var b strings.Builder

	b.WriteString(`You are summarizing an evidence-based medicine analysis. The analysis classifies published studies on the evidence pyramid and scores their methodological quality - it never establishes clinical truth.

CRITICAL RULES:
1. Describe only the studies and aggregates listed below. Do not cite or invent external sources.
2. Do not give medical advice or dosing recommendations.
3. Focus on evidence level and methodological quality. Use phrases like:
   - "The question is addressed by X systematic reviews..."
   - "Quality of the randomized trials is predominantly..."
   - "Evidence below level 3 dominates, suggesting..."
4. If evidence is sparse or low quality, state that explicitly.

`)

	if p := a.PICO; p != nil {
		fmt.Fprintf(&b, "Clinical question (PICO): %s | %s", p.Population, p.Intervention)
		if p.Comparison != "" {
			fmt.Fprintf(&b, " vs %s", p.Comparison)
		}
		if len(p.Outcomes) > 0 {
			fmt.Fprintf(&b, " | outcomes: %s", strings.Join(p.Outcomes, ", "))
		}
		b.WriteString("\n\n")
	}

	s := a.Summary
	fmt.Fprintf(&b, "Batch: %d articles screened.\nEvidence pyramid counts:\n", s.TotalArticles)
	for level := model.LevelSystematicReview; level <= model.LevelAnimalInVitro; level++ {
		if n := s.LevelCounts[level]; n > 0 {
			fmt.Fprintf(&b, "- Level %d (%s): %d\n", level, level.String(), n)
		}
	}

	q := s.Quality
	fmt.Fprintf(&b, "\nTop-ranked subset quality: %d high, %d moderate, %d low; mean score %.1f%%.\n",
		q.HighQuality, q.ModerateQuality, q.LowQuality, q.AverageScore)

	if len(s.KeyFindings) > 0 {
		b.WriteString("\nExtracted findings:\n")
		for i, finding := range s.KeyFindings {
			if i >= 10 {
				fmt.Fprintf(&b, "... and %d more findings\n", len(s.KeyFindings)-10)
				break
			}
			fmt.Fprintf(&b, "- %s\n", finding)
		}
	}

	b.WriteString("\nProvide a 3-5 sentence summary of the strength and quality of this evidence base.")

	return b.String()
}
