package appraise

import (
	"regexp"
	"strconv"
	"strings"
)

// predicate evaluates one checklist criterion against the normalized
// article text. Predicates are pure and total: malformed or missing text
// yields false, never an error.
type predicate func(text string) bool

var (
	lossToFollowUpRe = regexp.MustCompile(`loss to follow[- ]up[:\s]+(\d+)`)
	sampleSizeRe     = regexp.MustCompile(`(\d+)\s*(participants|patients|subjects)`)
)

// hasKeyword matches when any phrase of the set appears as a substring.
func hasKeyword(keywords ...string) predicate {
	return func(text string) bool {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
		return false
	}
}

// hasAdequateFollowUp accepts a reported loss to follow-up below 20%, or
// explicit complete-follow-up phrasing.
func hasAdequateFollowUp(text string) bool {
	if m := lossToFollowUpRe.FindStringSubmatch(text); m != nil {
		if loss, err := strconv.Atoi(m[1]); err == nil && loss < 20 {
			return true
		}
	}

	for _, keyword := range []string{"complete follow-up", "followed up", "no loss to follow"} {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return false
}

// hasAdequateSampleSize requires a reported sample above 50.
func hasAdequateSampleSize(text string) bool {
	m := sampleSizeRe.FindStringSubmatch(text)
	if m == nil {
		return false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return n > 50
}

// hasStatisticalAnalysis matches common statistical-reporting vocabulary.
var hasStatisticalAnalysis = hasKeyword(
	"p value", "p-value", "statistically significant",
	"confidence interval", "odds ratio", "relative risk",
	"hazard ratio", "regression", "anova", "t-test",
)

// hasConflictDeclaration matches a conflict-of-interest declaration.
// Declarations usually live in the full text, but abstracts carry them
// often enough to be worth checking.
var hasConflictDeclaration = hasKeyword(
	"conflict of interest", "no conflict", "disclosures",
)
