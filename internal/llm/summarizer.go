package llm

import (
	"context"
	"fmt"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// Summarizer attaches an optional narrative to a finished analysis.
// Provider failures degrade to warnings; they never fail the run or
// alter any computed score.
type Summarizer struct {
	provider Provider
}

// NewSummarizer builds a summarizer from configuration. A disabled
// provider yields a summarizer that reports Enabled=false.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider}, nil
}

// Enabled reports whether a provider is configured.
func (s *Summarizer) Enabled() bool {
	return s.provider != nil
}

// Summarize produces the LLM section for an analysis, or nil when no
// provider is configured.
func (s *Summarizer) Summarize(ctx context.Context, a model.Analysis) *model.LLMSummary {
	if s.provider == nil {
		return nil
	}

	summary := &model.LLMSummary{
		Enabled:  true,
		Provider: s.provider.Name(),
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Analysis: a})
	if err != nil {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("summary generation failed: %v", err))
		return summary
	}

	summary.Model = resp.Model
	summary.SummaryMD = resp.Summary
	return summary
}
