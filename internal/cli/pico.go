package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahidayatxx/evidentia/internal/model"
	"github.com/ahidayatxx/evidentia/internal/notes"
	"github.com/ahidayatxx/evidentia/internal/pico"
	"github.com/ahidayatxx/evidentia/internal/specialty"
)

var (
	picoQuestion string
	picoNote     string
	picoOutput   string
)

// picoCmd represents the pico command
var picoCmd = &cobra.Command{
	Use:   "pico",
	Short: "Extract a PICO framework from a question or clinical note",
	Long: `Pico decomposes a clinical question, or a free-text clinical note, into
the PICO framework (Population, Intervention, Comparison, Outcomes)
and derives the recommended publication-year search window.

Output formats:
  formatted  human-readable breakdown (default)
  json       the full PICO structure
  query      a boolean search string ready for PubMed

Example:
  evidentia pico --question "Is azithromycin more effective than doxycycline for pneumonia?"
  evidentia pico --note note.txt --output query`,
	RunE: runPico,
}

func init() {
	rootCmd.AddCommand(picoCmd)

	picoCmd.Flags().StringVar(&picoQuestion, "question", "", "clinical question text")
	picoCmd.Flags().StringVar(&picoNote, "note", "", "file containing a clinical note")
	picoCmd.Flags().StringVarP(&picoOutput, "output", "o", "formatted", "output format: formatted, json, query")

	picoCmd.MarkFlagsMutuallyExclusive("question", "note")
	picoCmd.MarkFlagsOneRequired("question", "note")
}

func runPico(cmd *cobra.Command, args []string) error {
	extractor := pico.NewExtractor()
	ranges := specialty.NewClassifier()

	var p model.PICO
	var years model.YearRange
	if picoQuestion != "" {
		p = extractor.FromQuestion(picoQuestion)
		years = ranges.SearchRange(p.Population, p.Intervention, p.OriginalQuestion)
	} else {
		note, err := os.ReadFile(picoNote)
		if err != nil {
			return fmt.Errorf("read note: %w", err)
		}
		ctx := notes.NewParser().Parse(string(note))
		p = extractor.FromContext(ctx)
		years = ranges.SearchRange(p.Population, p.Intervention, ctx.PrimaryCondition.Diagnosis)
	}

	switch picoOutput {
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal PICO: %w", err)
		}
		fmt.Println(string(data))
	case "query":
		fmt.Println(pico.SearchQuery(p))
	case "formatted":
		printPICO(p, years)
	default:
		return fmt.Errorf("unknown output format: %s (supported: formatted, json, query)", picoOutput)
	}
	return nil
}

func printPICO(p model.PICO, years model.YearRange) {
	fmt.Println("PICO Framework")
	fmt.Println("==============")
	fmt.Printf("Population:    %s\n", p.Population)
	fmt.Printf("Intervention:  %s\n", p.Intervention)
	if p.Comparison != "" {
		fmt.Printf("Comparison:    %s\n", p.Comparison)
	}
	fmt.Printf("Outcomes:      %s\n", strings.Join(p.Outcomes, "; "))
	fmt.Printf("Question type: %s\n", p.QuestionType)
	fmt.Printf("Search window: %d-%d\n", years.Start, years.End)
	fmt.Printf("Search query:  %s\n", pico.SearchQuery(p))
	if len(p.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range p.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
