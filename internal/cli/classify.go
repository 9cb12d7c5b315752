package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahidayatxx/evidentia/internal/classify"
	"github.com/ahidayatxx/evidentia/internal/model"
	"github.com/ahidayatxx/evidentia/internal/pipeline"
	"github.com/ahidayatxx/evidentia/internal/rank"
)

var (
	classifyArticles string
	classifyJSONOut  bool
	classifyFilter   string
	classifyMax      int
	classifySummary  bool
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify articles onto the evidence pyramid",
	Long: `Classify assigns each article an evidence pyramid level from 1
(systematic reviews and meta-analyses) to 6 (animal and in vitro work).
Publication-type tags are checked first, then the title and abstract
text. Articles that match nothing default to level 6.

Example:
  evidentia classify --articles results.json
  evidentia classify --articles results.json --json`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyArticles, "articles", "", "JSON file with the article batch (required)")
	classifyCmd.Flags().BoolVar(&classifyJSONOut, "json", false, "emit results as JSON instead of a table")
	classifyCmd.Flags().StringVar(&classifyFilter, "filter-level", "", "keep only levels in an inclusive range, e.g. 1-2")
	classifyCmd.Flags().IntVar(&classifyMax, "max", 0, "keep only the first N strongest articles")
	classifyCmd.Flags().BoolVar(&classifySummary, "summary", false, "print per-level counts after the table")

	_ = classifyCmd.MarkFlagRequired("articles")
}

func runClassify(cmd *cobra.Command, args []string) error {
	articles, warnings, err := pipeline.ReadArticles(classifyArticles)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	classifier := classify.NewClassifier()
	for i := range articles {
		articles[i] = classifier.Apply(articles[i])
	}

	counts := rank.LevelCounts(articles)

	if classifyFilter != "" {
		var min, max int
		if _, err := fmt.Sscanf(classifyFilter, "%d-%d", &min, &max); err != nil {
			return fmt.Errorf("invalid level range %q (expected MIN-MAX)", classifyFilter)
		}
		articles = rank.FilterByLevel(articles, model.EvidenceLevel(min), model.EvidenceLevel(max))
	}
	if classifyMax > 0 {
		articles = rank.TopN(rank.SortByEvidence(articles), classifyMax)
	}

	if classifyJSONOut {
		data, err := json.MarshalIndent(articles, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tDESIGN\tTITLE")
	for _, a := range articles {
		fmt.Fprintf(w, "%d\t%s\t%s\n", a.EvidenceLevel, a.EvidenceLevelName, truncate(a.Title, 70))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if classifySummary {
		fmt.Println("\nEvidence pyramid:")
		for level := model.LevelSystematicReview; level <= model.LevelAnimalInVitro; level++ {
			if n := counts[level]; n > 0 {
				fmt.Printf("  Level %d (%s): %d\n", level, level, n)
			}
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
