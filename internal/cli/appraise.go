package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahidayatxx/evidentia/internal/appraise"
	"github.com/ahidayatxx/evidentia/internal/classify"
	"github.com/ahidayatxx/evidentia/internal/pipeline"
	"github.com/ahidayatxx/evidentia/internal/rank"
)

var (
	appraiseArticles string
	appraiseJSONOut  bool
	appraiseDetail   bool
	appraiseSummary  bool
)

// appraiseCmd represents the appraise command
var appraiseCmd = &cobra.Command{
	Use:   "appraise",
	Short: "Score methodological quality of each article",
	Long: `Appraise runs a design-specific critical appraisal checklist over every
article and reports the weighted quality score. The checklist is picked
from the article's evidence level, so classification runs first.

Scores map to bands: High at 80% and above, Moderate at 60%, Low below.

Example:
  evidentia appraise --articles results.json
  evidentia appraise --articles results.json --detail`,
	RunE: runAppraise,
}

func init() {
	rootCmd.AddCommand(appraiseCmd)

	appraiseCmd.Flags().StringVar(&appraiseArticles, "articles", "", "JSON file with the article batch (required)")
	appraiseCmd.Flags().BoolVar(&appraiseJSONOut, "json", false, "emit results as JSON instead of a table")
	appraiseCmd.Flags().BoolVar(&appraiseDetail, "detail", false, "print each checklist criterion")
	appraiseCmd.Flags().BoolVar(&appraiseSummary, "summary", false, "print band counts and mean score after the table")

	_ = appraiseCmd.MarkFlagRequired("articles")
}

func runAppraise(cmd *cobra.Command, args []string) error {
	articles, warnings, err := pipeline.ReadArticles(appraiseArticles)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	classifier := classify.NewClassifier()
	evaluator := appraise.NewEvaluator()
	for i := range articles {
		articles[i] = evaluator.Apply(classifier.Apply(articles[i]))
	}

	if appraiseJSONOut {
		data, err := json.MarshalIndent(articles, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tBAND\tCHECKLIST\tTITLE")
	for _, a := range articles {
		if a.Assessment == nil {
			continue
		}
		fmt.Fprintf(w, "%d%%\t%s\t%s\t%s\n",
			a.Assessment.QualityPercent, a.Assessment.Quality, a.Assessment.Checklist, truncate(a.Title, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if appraiseDetail {
		for _, a := range articles {
			if a.Assessment == nil {
				continue
			}
			fmt.Printf("\n%s\n", a.Title)
			for _, c := range a.Assessment.Criteria {
				mark := "no"
				if c.Satisfied {
					mark = "yes"
				}
				fmt.Printf("  [%s] %s (%d pts)\n", mark, c.Question, c.Points)
			}
			fmt.Printf("  %d/%d points, %d/%d criteria met\n",
				a.Assessment.TotalEarned, a.Assessment.TotalPossible,
				a.Assessment.CriteriaMet, a.Assessment.CriteriaTotal)
		}
	}

	if appraiseSummary {
		q := rank.Quality(articles)
		fmt.Printf("\nQuality: %d high, %d moderate, %d low; mean score %.1f%%\n",
			q.HighQuality, q.ModerateQuality, q.LowQuality, q.AverageScore)
	}
	return nil
}
