// Package report renders a completed analysis as a markdown document
// or indented JSON. Rendering is read-only over the analysis record.
package report

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ahidayatxx/evidentia/internal/citation"
	"github.com/ahidayatxx/evidentia/internal/model"
)

var (
	resultSentenceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:results|found|showed|demonstrated|revealed):.*?[.!?]`),
		regexp.MustCompile(`(?i)(?:significant|reduced|increased).*?[.!?]`),
	}

	sampleSizeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)n\s*=\s*(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:patients|participants|subjects)`),
		regexp.MustCompile(`(?i)sample\s*(?:of\s*)?(\d+)`),
	}
)

var levelDescriptions = map[model.EvidenceLevel]string{
	model.LevelSystematicReview: "Highest quality evidence",
	model.LevelRCT:              "Direct experimental evidence",
	model.LevelCohort:           "Observational evidence",
	model.LevelCaseControl:      "Retrospective evidence",
	model.LevelCaseSeries:       "Limited evidence",
	model.LevelAnimalInVitro:    "Preclinical evidence",
}

// designPriority orders publication-type tags by specificity for the
// Design column.
var designPriority = []string{
	"meta-analysis",
	"systematic review",
	"randomized controlled trial",
	"clinical trial",
	"cohort study",
	"case-control",
	"case series",
}

// Options controls optional document sections.
type Options struct {
	IncludeFooter bool
}

// Markdown renders the full analysis document: header, PICO table,
// pyramid summary, evidence tables, per-study appraisal, bottom line,
// references and key findings.
func Markdown(a model.Analysis) string {
	return MarkdownWith(a, Options{IncludeFooter: true})
}

// MarkdownWith renders the document with explicit options.
func MarkdownWith(a model.Analysis, opts Options) string {
	sections := []string{
		header(a),
		picoFramework(a.PICO),
		pyramidSummary(a.Summary.LevelCounts),
		evidenceTable(a.Articles),
		appraisalSection(a.Summary.TopArticles),
		bottomLine(a.Summary),
		keyFindings(a.Summary.KeyFindings),
	}

	if a.LLM != nil && a.LLM.SummaryMD != "" {
		sections = append(sections, llmSection(a.LLM))
	}

	sections = append(sections, references(a.Articles))
	if opts.IncludeFooter {
		sections = append(sections, footer(a))
	}

	return strings.Join(sections, "\n\n---\n\n")
}

func header(a model.Analysis) string {
	title := "Evidence Review"
	question := ""

	if p := a.PICO; p != nil {
		if p.Comparison != "" {
			title = fmt.Sprintf("%s vs %s for %s", p.Intervention, p.Comparison, p.Population)
		} else {
			title = fmt.Sprintf("%s for %s", p.Intervention, p.Population)
		}

		question = p.OriginalQuestion
		if question == "" {
			question = fmt.Sprintf("Should I use %s for %s?", p.Intervention, p.Population)
			if p.Comparison != "" {
				question = fmt.Sprintf("Should I use %s or %s for %s?", p.Intervention, p.Comparison, p.Population)
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Evidence-Based Medicine Analysis: %s\n\n", title)
	fmt.Fprintf(&b, "**Date:** %s\n", a.GeneratedAt.Format("January 2, 2006"))
	if question != "" {
		fmt.Fprintf(&b, "**Clinical Question:** %s\n", question)
	}
	if a.SearchYears != (model.YearRange{}) {
		fmt.Fprintf(&b, "**Search Range:** %d-%d (%d years)\n",
			a.SearchYears.Start, a.SearchYears.End, a.SearchYears.End-a.SearchYears.Start)
	}
	fmt.Fprintf(&b, "**Articles Screened:** %d", a.Summary.TotalArticles)

	return b.String()
}

func picoFramework(p *model.PICO) string {
	if p == nil {
		return "## PICO Framework\n\nNot available for this analysis source."
	}

	comparison := p.Comparison
	if comparison == "" {
		comparison = "Not applicable"
	}

	outcomes := "Not specified"
	if len(p.Outcomes) > 0 {
		shown := p.Outcomes
		if len(shown) > 3 {
			shown = shown[:3]
		}
		outcomes = strings.Join(shown, ", ")
	}

	questionType := p.QuestionType
	if questionType == "" {
		questionType = "therapy"
	}

	return fmt.Sprintf(`## PICO Framework

| Component | Value |
|-----------|-------|
| **P** (Population) | %s |
| **I** (Intervention) | %s |
| **C** (Comparison) | %s |
| **O** (Outcome) | %s |
| **Question Type** | %s |`,
		p.Population, p.Intervention, comparison, outcomes, titleCase(questionType))
}

func pyramidSummary(counts map[model.EvidenceLevel]int) string {
	levels := make([]model.EvidenceLevel, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	var b strings.Builder
	b.WriteString("## Evidence Pyramid Summary\n\n")
	b.WriteString("| Evidence Level | Count | Description |\n")
	b.WriteString("|---------------|-------|-------------|\n")
	for _, level := range levels {
		fmt.Fprintf(&b, "| Level %d (%s) | %d | %s |\n",
			level, level.String(), counts[level], levelDescriptions[level])
	}

	return strings.TrimRight(b.String(), "\n")
}

// evidenceTable renders per-level study tables for the top three
// pyramid levels, capped at ten studies per level.
func evidenceTable(articles []model.Article) string {
	byLevel := make(map[model.EvidenceLevel][]model.Article)
	for _, article := range articles {
		byLevel[article.EvidenceLevel] = append(byLevel[article.EvidenceLevel], article)
	}

	var b strings.Builder
	b.WriteString("## Critical Evidence Table\n")

	for _, level := range []model.EvidenceLevel{model.LevelSystematicReview, model.LevelRCT, model.LevelCohort} {
		group := byLevel[level]
		if len(group) == 0 {
			continue
		}
		if len(group) > 10 {
			group = group[:10]
		}

		fmt.Fprintf(&b, "\n### Level %d: %s\n\n", level, level.String())
		b.WriteString("| Level | Study | Authors | Year | Design | Sample | Key Finding | Quality |\n")
		b.WriteString("|-------|-------|---------|------|--------|--------|-------------|---------|\n")

		for _, article := range group {
			b.WriteString(evidenceRow(article))
			b.WriteByte('\n')
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func evidenceRow(article model.Article) string {
	title := article.Title
	if title == "" {
		title = "Unknown"
	}
	if len(title) > 60 {
		title = title[:60]
	}

	authors := orUnknown(article.FirstAuthor)
	year := orUnknown(article.PubYear)

	quality := "Unknown"
	score := 0
	if article.Assessment != nil {
		quality = string(article.Assessment.Quality)
		score = article.Assessment.QualityPercent
	}

	return fmt.Sprintf("| **%d** | %s | %s | %s | %s | %s | %s | **%s (%d%%)** |",
		article.EvidenceLevel, title, authors, year,
		studyDesign(article), sampleSize(article.Abstract),
		abstractFinding(article.Abstract), quality, score)
}

func studyDesign(article model.Article) string {
	for _, design := range designPriority {
		for _, tag := range article.PublicationTypeTags {
			if strings.Contains(strings.ToLower(tag), design) {
				return titleCase(strings.ReplaceAll(design, "-", " "))
			}
		}
	}
	return "Study"
}

func sampleSize(abstract string) string {
	if abstract == "" {
		return "N/R"
	}
	for _, re := range sampleSizeRes {
		if m := re.FindStringSubmatch(abstract); m != nil {
			return "n=" + m[1]
		}
	}
	return "N/R"
}

// abstractFinding pulls a single results sentence out of an abstract
// for table cells, falling back to the truncated first sentence.
func abstractFinding(abstract string) string {
	if abstract == "" {
		return "No abstract available"
	}

	for _, re := range resultSentenceRes {
		if m := re.FindString(abstract); m != "" {
			finding := strings.TrimSpace(m)
			if len(finding) > 20 && len(finding) < 150 {
				return finding
			}
		}
	}

	first := abstract
	if i := strings.IndexByte(first, '.'); i >= 0 {
		first = first[:i]
	}
	if len(first) > 100 {
		return first[:100] + "..."
	}
	return first
}

// appraisalSection renders the criteria table for each top study.
func appraisalSection(top []model.Article) string {
	var b strings.Builder
	b.WriteString("## Critical Appraisal\n")

	shown := top
	if len(shown) > 5 {
		shown = shown[:5]
	}

	n := 0
	for _, article := range shown {
		if article.Assessment == nil {
			continue
		}
		n++

		fmt.Fprintf(&b, "\n### %d. %s et al. (%s)\n\n",
			n, orUnknown(article.FirstAuthor), orUnknown(article.PubYear))
		fmt.Fprintf(&b, "**Evidence Level:** %d (%s) | **Quality Score:** %d%% (%s)\n\n",
			article.EvidenceLevel, article.EvidenceLevel.String(),
			article.Assessment.QualityPercent, article.Assessment.Quality)

		b.WriteString("| Criterion | Assessment |\n")
		b.WriteString("|-----------|------------|\n")
		for _, criterion := range article.Assessment.Criteria {
			status := "No"
			if criterion.Satisfied {
				status = "Yes"
			}
			fmt.Fprintf(&b, "| %s | %s |\n", criterion.Question, status)
		}

		fmt.Fprintf(&b, "\n**Key Finding:** %s\n", abstractFinding(article.Abstract))
	}

	if n == 0 {
		b.WriteString("\nNo assessed studies available.")
	}

	return strings.TrimRight(b.String(), "\n")
}

func bottomLine(summary model.BatchSummary) string {
	q := summary.Quality

	evidenceQuality := "Low"
	switch {
	case q.AverageScore >= 75:
		evidenceQuality = "High"
	case q.AverageScore >= 60:
		evidenceQuality = "Moderate"
	}

	return fmt.Sprintf(`## Clinical Bottom Line

> **Net Clinical Benefit Assessment**
>
> Based on **%d high-quality** and **%d moderate-quality** studies:
> - Average quality score: **%.1f%%**
> - Evidence quality: **%s**
>
> Recommendations should be individualized based on patient-specific factors and clinical judgment.`,
		q.HighQuality, q.ModerateQuality, q.AverageScore, evidenceQuality)
}

func keyFindings(findings []string) string {
	var b strings.Builder
	b.WriteString("## Key Findings\n")
	if len(findings) == 0 {
		b.WriteString("\nNo attributable findings extracted.")
		return b.String()
	}
	for _, finding := range findings {
		b.WriteString("\n- " + finding)
	}
	return b.String()
}

func llmSection(llm *model.LLMSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Generated Summary\n\n%s\n\n", llm.SummaryMD)
	fmt.Fprintf(&b, "*Generated by %s (%s). This narrative does not affect classification or scoring.*",
		llm.Provider, llm.Model)
	return b.String()
}

func references(articles []model.Article) string {
	if len(articles) == 0 {
		return "## References\n\nNone."
	}
	return "## References\n\n" + citation.FormatReferences(articles)
}

func footer(a model.Analysis) string {
	return fmt.Sprintf("*This evidence analysis was generated on %s. All recommendations should be individualized based on patient-specific factors and clinical judgment.*",
		a.GeneratedAt.Format("January 2, 2006"))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
