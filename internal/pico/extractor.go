// Package pico decomposes clinical questions and parsed note contexts
// into P-I-C-O elements (Population, Intervention, Comparison,
// Outcome) and renders them as a search query.
package pico

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ahidayatxx/evidentia/internal/model"
)

var (
	populationRe = regexp.MustCompile(`(?i)(?:in|for|among)\s+([^,]+?)(?:,|\swith\s|\swho\s|\sundergoing)`)

	interventionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)does\s+([^,\s]+(?:\s+[^,\s]+)?)\s+(?:improve|reduce|treat|prevent|help)`),
		regexp.MustCompile(`(?i)effect\s+of\s+([^,\s]+(?:\s+[^,\s]+)?)\s+(?:on|for)`),
		regexp.MustCompile(`(?i)(?:is|are)\s+([^,\s]+(?:\s+[^,\s]+)?)\s+(?:effective|better)`),
	}

	comparisonRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:versus|vs\.?|compared\s+(?:to|with)|against)\s+([^,\s]+(?:\s+[^,\s]+)?)`),
		regexp.MustCompile(`(?i)(?:than|instead\s+of)\s+([^,\s]+(?:\s+[^,\s]+)?)`),
	}

	outcomeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:reduce|prevent|improve|decrease|lower)\s+([^,.]+)`),
		regexp.MustCompile(`(?i)(?:for|to\s+treat|to\s+prevent)\s+([^,.]+)`),
		regexp.MustCompile(`(?i)outcomes?\s+(?:of|includes?:?)\s+([^,.]+)`),
	}

	queryStopWordsRe = regexp.MustCompile(`\b(with|and|or|the|a|an|for|to)\b`)
)

// questionTypeKeywords classify a question into the four classic EBM
// question types. Checked in order; therapy is the default.
var questionTypeKeywords = []struct {
	Type     string
	Keywords []string
}{
	{"therapy", []string{"treatment", "therapy", "manage", "effective"}},
	{"diagnosis", []string{"diagnos", "detect", "screen", "accuracy"}},
	{"prognosis", []string{"prognos", "risk", "predict", "course", "outcome"}},
	{"harm", []string{"cause", "harm", "adverse", "risk factor", "associate"}},
}

// Extractor builds PICO structures from questions or note contexts.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// FromQuestion extracts PICO elements from a direct clinical question.
// Missing elements fall back to generic placeholders and are reported
// in Warnings.
func (e *Extractor) FromQuestion(question string) model.PICO {
	p := model.PICO{
		QuestionType:     classifyQuestionType(question),
		OriginalQuestion: strings.TrimSpace(question),
		Source:           "question",
		Population:       firstMatch([]*regexp.Regexp{populationRe}, question),
		Intervention:     firstMatch(interventionRes, question),
		Comparison:       firstMatch(comparisonRes, question),
	}

	if p.Population == "" {
		p.Population = extractLeadingPopulation(question)
	}
	if outcome := firstMatch(outcomeRes, question); outcome != "" {
		p.Outcomes = []string{outcome}
	}

	return validate(p)
}

// FromContext constructs PICO from a parsed clinical note. Clinical
// notes are treated as therapy questions.
func (e *Extractor) FromContext(ctx model.ClinicalContext) model.PICO {
	intervention := interventionFromContext(ctx)

	p := model.PICO{
		Population:   populationFromContext(ctx),
		Intervention: intervention,
		Comparison:   comparisonFromContext(ctx, intervention),
		Outcomes:     outcomesFromContext(ctx),
		QuestionType: "therapy",
		Source:       "clinical_note",
	}

	return validate(p)
}

func classifyQuestionType(question string) string {
	lower := strings.ToLower(question)
	for _, entry := range questionTypeKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Type
			}
		}
	}
	return "therapy"
}

func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractLeadingPopulation recovers "X with Y" population phrases from
// the first sentence when no prepositional pattern matched.
func extractLeadingPopulation(question string) string {
	first := question
	if i := strings.IndexByte(first, '.'); i >= 0 {
		first = first[:i]
	}

	lower := strings.ToLower(first)
	i := strings.Index(lower, " with ")
	if i < 0 {
		return ""
	}

	pop := strings.TrimSpace(lower[:i])
	condition := lower[i+len(" with "):]
	if j := strings.IndexByte(condition, ','); j >= 0 {
		condition = condition[:j]
	}

	return pop + " with " + strings.TrimSpace(condition)
}

func populationFromContext(ctx model.ClinicalContext) string {
	var parts []string

	if ctx.Demographics.AgeGroup != "" {
		parts = append(parts, ctx.Demographics.AgeGroup)
	}

	diagnosis := ctx.PrimaryCondition.Diagnosis
	if ctx.Demographics.Sex != "" && diagnosis != "" && sexSpecific(diagnosis) {
		parts = append(parts, ctx.Demographics.Sex)
	}

	if diagnosis != "" {
		parts = append(parts, "with "+diagnosis)
	}

	if len(ctx.Comorbidities) > 0 {
		relevant := ctx.Comorbidities
		if len(relevant) > 2 {
			relevant = relevant[:2]
		}
		parts = append(parts, "and "+strings.Join(relevant, " "))
	}

	if len(parts) == 0 {
		return "Adults"
	}
	return strings.Join(parts, " ")
}

var sexSpecificTerms = []string{"prostate", "ovarian", "breast", "uterine", "testicular", "pregnancy"}

func sexSpecific(diagnosis string) bool {
	lower := strings.ToLower(diagnosis)
	for _, term := range sexSpecificTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// conditionInterventions maps common conditions to their default
// first-line intervention description.
var conditionInterventions = []struct {
	Condition    string
	Intervention string
}{
	{"pneumonia", "antibiotic therapy"},
	{"stroke", "thrombolysis or anticoagulation"},
	{"diabetes", "glycemic control"},
	{"hypertension", "antihypertensive therapy"},
	{"depression", "antidepressant therapy or psychotherapy"},
	{"heart failure", "ACE inhibitors or beta-blockers"},
}

func interventionFromContext(ctx model.ClinicalContext) string {
	if len(ctx.TreatmentDecisions) > 0 {
		return ctx.TreatmentDecisions[0]
	}

	primary := strings.ToLower(ctx.PrimaryCondition.Diagnosis)
	for _, entry := range conditionInterventions {
		if strings.Contains(primary, entry.Condition) {
			return entry.Intervention
		}
	}

	if len(ctx.Contraindications) > 0 {
		return fmt.Sprintf("appropriate treatment (avoiding %s)", ctx.Contraindications[0])
	}

	return "treatment"
}

func comparisonFromContext(ctx model.ClinicalContext, intervention string) string {
	if intervention == "" {
		return ""
	}

	switch ctx.PrimaryCondition.ConditionType {
	case "Acute":
		return "standard care or placebo"
	case "Chronic":
		return "usual care or alternative management"
	}

	lower := strings.ToLower(intervention)
	switch {
	case strings.Contains(lower, "antibiotic"):
		return "alternative antibiotic regimen"
	case strings.Contains(lower, "surgery"), strings.Contains(lower, "surgical"):
		return "conservative management"
	case strings.Contains(lower, "drug"), strings.Contains(lower, "medication"):
		return "placebo or standard therapy"
	}

	return "standard care or placebo"
}

// conditionOutcomes lists outcomes worth searching for per condition,
// added between the always-relevant mortality and adverse effects.
var conditionOutcomes = []struct {
	Condition string
	Outcomes  []string
}{
	{"pneumonia", []string{"clinical response", "hospital length of stay"}},
	{"stroke", []string{"functional independence", "recurrent stroke", "intracranial hemorrhage"}},
	{"diabetes", []string{"HbA1c reduction", "hypoglycemic events"}},
	{"hypertension", []string{"blood pressure control", "cardiovascular events"}},
	{"depression", []string{"symptom remission", "quality of life"}},
	{"heart failure", []string{"hospitalization", "quality of life", "functional status"}},
}

func outcomesFromContext(ctx model.ClinicalContext) []string {
	outcomes := []string{"mortality"}

	primary := strings.ToLower(ctx.PrimaryCondition.Diagnosis)
	for _, entry := range conditionOutcomes {
		if strings.Contains(primary, entry.Condition) {
			outcomes = append(outcomes, entry.Outcomes...)
			break
		}
	}

	outcomes = append(outcomes, "adverse effects")

	if ctx.Care.Severity == "Critical" {
		outcomes = append(outcomes, "ICU length of stay")
	}

	return outcomes
}

// validate fills required elements with placeholders and records a
// warning for each element that could not be pinned down.
func validate(p model.PICO) model.PICO {
	if p.Population == "" {
		p.Population = "Patients"
	}
	if p.Intervention == "" {
		p.Intervention = "treatment"
	}
	if len(p.Outcomes) == 0 {
		p.Outcomes = []string{"clinical outcome"}
	}

	var warnings []string
	if p.Population == "Patients" {
		warnings = append(warnings, "Population not clearly specified")
	}
	if p.Intervention == "treatment" {
		warnings = append(warnings, "Intervention not clearly specified")
	}
	if p.Comparison == "" && p.QuestionType == "therapy" {
		warnings = append(warnings, "Comparison not specified - consider standard care or placebo")
	}
	if len(p.Outcomes) == 1 && p.Outcomes[0] == "clinical outcome" {
		warnings = append(warnings, "Outcome not clearly specified")
	}

	p.Warnings = warnings
	return p
}

// SearchQuery renders PICO elements as a quoted AND-joined PubMed
// query. Filler words are stripped from each element.
func SearchQuery(p model.PICO) string {
	var parts []string

	for _, element := range []string{p.Population, p.Intervention, p.Comparison} {
		if element == "" {
			continue
		}
		cleaned := queryStopWordsRe.ReplaceAllString(element, "")
		cleaned = strings.Join(strings.Fields(cleaned), " ")
		if cleaned != "" {
			parts = append(parts, `"`+cleaned+`"`)
		}
	}

	return strings.Join(parts, " AND ")
}
