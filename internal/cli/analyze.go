package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahidayatxx/evidentia/internal/model"
	"github.com/ahidayatxx/evidentia/internal/pipeline"
	"github.com/ahidayatxx/evidentia/internal/report"
)

var (
	analyzeQuestion string
	analyzeNote     string
	analyzePICO     string
	analyzeYears    string
	analyzeArticles string
	outJSON         string
	outMD           string
	topN            int
	maxFindings     int
	workers         int
	analyzeTimeout  time.Duration
	noCache         bool
	noFooter        bool
	llmEnabled      bool
	llmModel        string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full evidence analysis over an article batch",
	Long: `Analyze classifies every article onto the evidence pyramid, scores its
methodological quality, ranks the batch and renders a complete report.

The article batch is a JSON file (array of articles, or an object with
an "articles" field). Provide either a clinical question or a clinical
note to frame the analysis with PICO; without either, the batch is
analyzed on its own.

Example:
  evidentia analyze --articles results.json --question "Is azithromycin more effective than doxycycline for pneumonia?"
  evidentia analyze --articles results.json --note note.txt --md report.md --json report.json
  evidentia analyze --articles results.json --llm --llm-model gpt-4o-mini`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeArticles, "articles", "", "JSON file with the article batch (required)")
	analyzeCmd.Flags().StringVar(&analyzeQuestion, "question", "", "clinical question text")
	analyzeCmd.Flags().StringVar(&analyzeNote, "note", "", "file containing a clinical note")
	analyzeCmd.Flags().StringVar(&analyzePICO, "pico", "", "JSON file with a pre-built PICO framework")
	analyzeCmd.Flags().StringVar(&analyzeYears, "years", "", "publication-year window override, e.g. 2018-2025")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	analyzeCmd.Flags().IntVar(&topN, "top", 0, "ranked articles kept for the summary (default from config)")
	analyzeCmd.Flags().IntVar(&maxFindings, "max-findings", 0, "key-finding cap (default from config)")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "concurrent evaluations (default: CPU count)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable assessment memoization")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")

	_ = analyzeCmd.MarkFlagRequired("articles")
	analyzeCmd.MarkFlagsMutuallyExclusive("question", "note", "pico")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := loadConfig()
	if topN > 0 {
		cfg.Analysis.TopN = topN
	}
	if maxFindings > 0 {
		cfg.Analysis.MaxFindings = maxFindings
	}
	if workers > 0 {
		cfg.Concurrency.Workers = workers
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	articles, warnings, err := pipeline.ReadArticles(analyzeArticles)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d articles\n", len(articles))
	}

	analyzer := pipeline.NewAnalyzer(cfg)

	var analysis *model.Analysis
	switch {
	case analyzeQuestion != "":
		analysis, err = analyzer.AnalyzeQuestion(ctx, analyzeQuestion, articles)
	case analyzeNote != "":
		note, readErr := os.ReadFile(analyzeNote)
		if readErr != nil {
			return fmt.Errorf("read note: %w", readErr)
		}
		analysis, err = analyzer.AnalyzeNote(ctx, string(note), articles)
	case analyzePICO != "":
		p, picoErr := readPICOFile(analyzePICO)
		if picoErr != nil {
			return picoErr
		}
		years, yearsErr := parseYearRange(analyzeYears)
		if yearsErr != nil {
			return yearsErr
		}
		analysis, err = analyzer.AnalyzePICO(ctx, p, years, articles)
	default:
		analysis, err = analyzer.AnalyzeArticles(ctx, articles)
	}
	if err != nil {
		return err
	}
	if analyzeYears != "" && analyzePICO == "" {
		years, yearsErr := parseYearRange(analyzeYears)
		if yearsErr != nil {
			return yearsErr
		}
		analysis.SearchYears = years
	}

	return writeOutputs(analysis, cfg)
}

func readPICOFile(path string) (model.PICO, error) {
	var p model.PICO
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read PICO file: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse PICO file: %w", err)
	}
	return p, nil
}

// parseYearRange parses "2018-2025"; an empty string yields the zero range.
func parseYearRange(s string) (model.YearRange, error) {
	if s == "" {
		return model.YearRange{}, nil
	}
	var r model.YearRange
	if _, err := fmt.Sscanf(s, "%d-%d", &r.Start, &r.End); err != nil {
		return r, fmt.Errorf("invalid year range %q (expected START-END)", s)
	}
	if r.Start > r.End {
		return r, fmt.Errorf("invalid year range %q: start after end", s)
	}
	return r, nil
}

func writeOutputs(analysis *model.Analysis, cfg *model.Config) error {
	if outJSON != "" {
		data, err := report.JSON(*analysis)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outJSON, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}

	md := report.MarkdownWith(*analysis, report.Options{IncludeFooter: cfg.Output.IncludeFooter})
	if outMD != "" {
		if err := os.WriteFile(outMD, []byte(md+"\n"), 0o644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	} else if outJSON == "" {
		fmt.Println(md)
	}

	return nil
}
