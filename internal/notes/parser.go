// Package notes parses free-text clinical note summaries into the
// structured context used for PICO construction and year-range
// selection. Extraction is keyword and regex driven; no text leaves
// the process.
package notes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ahidayatxx/evidentia/internal/model"
)

var (
	ageRe = regexp.MustCompile(`(?i)(\d+)[- ]?(years?-old|yo|y\.o\.|years old)`)
	sexRe = regexp.MustCompile(`(?i)\b(male|female|man|woman|boy|girl)\b`)

	comorbidityRes = []*regexp.Regexp{
		regexp.MustCompile(`history of ([^.]+?)(?:,|\.)`),
		regexp.MustCompile(`with ([^.]+?)(?:,|\.)`),
		regexp.MustCompile(`past medical history[:\s]+([^.]+)`),
		regexp.MustCompile(`pmh[:\s]+([^.]+)`),
		regexp.MustCompile(`comorbidities[:\s]+([^.]+)`),
	}

	decisionRes = []*regexp.Regexp{
		regexp.MustCompile(`plan[:\s]+([^.]+)`),
		regexp.MustCompile(`decision[:\s]+([^.]+)`),
		regexp.MustCompile(`question[:\s]+([^.]+)`),
		regexp.MustCompile(`considering ([^.]+)`),
		regexp.MustCompile(`need to decide ([^.]+)`),
	}

	contraindicationRes = []*regexp.Regexp{
		regexp.MustCompile(`allergy[:\s]+([^.]+)`),
		regexp.MustCompile(`allergic to ([^.]+)`),
		regexp.MustCompile(`contraindicated ([^.]+)`),
		regexp.MustCompile(`contraindication[:\s]+([^.]+)`),
	}

	durationRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(days?|weeks?|months?|years?)\s+(history|ago)`),
		regexp.MustCompile(`(\d+)\s*(day|week|month|year)-old`),
	}

	comorbiditySplitRe = regexp.MustCompile(`[,;]|\sand\s`)

	specialPopulations = []struct {
		Factor  string
		Pattern *regexp.Regexp
	}{
		{"Pregnant", regexp.MustCompile(`pregnant|pregnancy|prenatal|gestating`)},
		{"Postpartum", regexp.MustCompile(`postpartum|post[- ]partum`)},
		{"Breastfeeding", regexp.MustCompile(`breastfeeding|breast[- ]feeding|lactating`)},
		{"Immunocompromised", regexp.MustCompile(`immunocompromised|immunosuppressed|on chemotherapy|hiv|aids|transplant`)},
		{"Frail", regexp.MustCompile(`frail|frailty`)},
		{"Obese", regexp.MustCompile(`obese|bmi >|obesity`)},
	}
)

var diagnosisRes = compileDiagnosisPatterns(
	"diagnosis", "admitted with", "presenting with",
	"primary diagnosis", "principal diagnosis",
	"reason for admission", "chief complaint",
)

func compileDiagnosisPatterns(keywords ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(keywords))
	for _, keyword := range keywords {
		res = append(res, regexp.MustCompile(regexp.QuoteMeta(keyword)+`[:\s]+([^.]+\.?)`))
	}
	return res
}

// Parser extracts structured clinical context from note text.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse expands abbreviations and extracts every context component from
// a clinical note. Parsing never fails; absent components come back as
// zero values.
func (p *Parser) Parse(note string) model.ClinicalContext {
	expanded := expandAbbreviations(note)

	return model.ClinicalContext{
		OriginalNote:       strings.TrimSpace(note),
		Demographics:       extractDemographics(expanded),
		PrimaryCondition:   extractPrimaryCondition(expanded),
		Comorbidities:      extractComorbidities(expanded),
		Care:               extractCareContext(expanded),
		TreatmentDecisions: matchAll(decisionRes, expanded),
		Contraindications:  matchAll(contraindicationRes, expanded),
		PatientFactors:     extractPatientFactors(expanded),
	}
}

func expandAbbreviations(text string) string {
	words := strings.Fields(text)
	expanded := make([]string, 0, len(words))

	for _, word := range words {
		clean := strings.Trim(strings.ToLower(word), ".,;:!?")
		if full, ok := abbreviations[clean]; ok {
			expanded = append(expanded, full)
		} else {
			expanded = append(expanded, word)
		}
	}

	return strings.Join(expanded, " ")
}

func extractDemographics(text string) model.Demographics {
	var demo model.Demographics

	if m := ageRe.FindStringSubmatch(text); m != nil {
		demo.Age, _ = strconv.Atoi(m[1])
	}

	if m := sexRe.FindStringSubmatch(text); m != nil {
		switch strings.ToLower(m[1]) {
		case "male", "man", "boy":
			demo.Sex = "Male"
		case "female", "woman", "girl":
			demo.Sex = "Female"
		}
	}

	demo.AgeGroup = ageGroup(demo.Age)
	return demo
}

func ageGroup(age int) string {
	switch {
	case age <= 0:
		return ""
	case age < 12:
		return "Child"
	case age < 18:
		return "Adolescent"
	case age < 40:
		return "Young Adult"
	case age < 65:
		return "Middle-aged Adult"
	default:
		return "Elderly"
	}
}

func extractPrimaryCondition(text string) model.PrimaryCondition {
	lower := strings.ToLower(text)

	var diagnosis string
	for _, re := range diagnosisRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			diagnosis = strings.TrimSpace(m[1])
			break
		}
	}

	// Fall back to the first sentence, which usually names the
	// presenting problem.
	if diagnosis == "" {
		sentences := regexp.MustCompile(`[.!?]+`).Split(text, -1)
		if len(sentences) > 0 {
			diagnosis = strings.TrimSpace(sentences[0])
		}
	}

	return model.PrimaryCondition{
		Diagnosis:     diagnosis,
		ConditionType: classifyConditionType(lower),
	}
}

var (
	acuteIndicators = []string{
		"acute", "emergency", "urgent", "sudden",
		"admitted", "presented to er", "presented to ed",
	}
	chronicIndicators = []string{
		"chronic", "history of", "long-standing",
		"follow-up", "routine", "outpatient",
	}
)

func classifyConditionType(lower string) string {
	acute := countMatches(lower, acuteIndicators)
	chronic := countMatches(lower, chronicIndicators)

	switch {
	case acute > chronic:
		return "Acute"
	case chronic > acute:
		return "Chronic"
	case acute > 0:
		return "Acute-on-chronic"
	default:
		return "Unknown"
	}
}

func countMatches(lower string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			n++
		}
	}
	return n
}

var nonMedicalTerms = []string{"unremarkable", "none", "denies", "negative"}

func extractComorbidities(text string) []string {
	lower := strings.ToLower(text)

	var comorbidities []string
	for _, re := range comorbidityRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			for _, item := range comorbiditySplitRe.Split(m[1], -1) {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				if containsAny(item, nonMedicalTerms) {
					continue
				}
				comorbidities = append(comorbidities, item)
			}
		}
	}

	return dedupe(comorbidities)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

var settingIndicators = []struct {
	Setting    string
	Indicators []string
}{
	{"Inpatient", []string{"admitted", "inpatient", "hospitalized"}},
	{"Outpatient", []string{"outpatient", "clinic", "office"}},
	{"ICU", []string{"icu", "intensive care"}},
	{"Emergency Department", []string{"ed", "er", "emergency"}},
}

var severityIndicators = []struct {
	Severity   string
	Indicators []string
}{
	{"Critical", []string{"critical", "severe", "unstable", "life-threatening"}},
	{"Moderate", []string{"moderate", "stable"}},
	{"Mild", []string{"mild", "minor"}},
}

func extractCareContext(text string) model.CareContext {
	lower := strings.ToLower(text)

	care := model.CareContext{Setting: "Unknown", Severity: "Unknown"}

	for _, entry := range settingIndicators {
		if containsAny(lower, entry.Indicators) {
			care.Setting = entry.Setting
			break
		}
	}

	for _, entry := range severityIndicators {
		if containsAny(lower, entry.Indicators) {
			care.Severity = entry.Severity
			break
		}
	}

	for _, re := range durationRes {
		if m := re.FindString(lower); m != "" {
			care.Duration = m
			break
		}
	}

	return care
}

func extractPatientFactors(text string) []string {
	lower := strings.ToLower(text)

	var factors []string
	for _, pop := range specialPopulations {
		if pop.Pattern.MatchString(lower) {
			factors = append(factors, pop.Factor)
		}
	}
	return factors
}

func matchAll(patterns []*regexp.Regexp, text string) []string {
	lower := strings.ToLower(text)

	var results []string
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if item := strings.TrimSpace(m[1]); item != "" {
				results = append(results, item)
			}
		}
	}
	return dedupe(results)
}

// dedupe removes duplicates while keeping first-seen order, so repeated
// parses of the same note produce identical output.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
