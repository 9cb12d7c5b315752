package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// Key-finding sentence patterns, bounded by sentence-terminating
// punctuation. The efficacy pass runs over every article before the
// statistic pass so that narrative findings lead the list.
var findingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:significant|reduced|increased|improved|efficacy|effective).*?[.!?](?:\s|$)`),
	regexp.MustCompile(`(?i)(?:RR|OR|HR|CI|p-value|p < |p=).*?[.!?](?:\s|$)`),
}

const (
	findingMinLen      = 20
	findingMaxLen      = 200
	findingArticleSpan = 10 // only the first 10 ranked articles contribute
)

// KeyFindings extracts attributed finding sentences from the abstracts of
// ranked articles. Matches outside [findingMinLen, findingMaxLen] are
// dropped; the result is capped at max entries (<=0 means 20).
func KeyFindings(articles []model.Article, max int) []string {
	if max <= 0 {
		max = 20
	}

	span := articles
	if len(span) > findingArticleSpan {
		span = span[:findingArticleSpan]
	}

	var findings []string
	for _, pattern := range findingPatterns {
		for _, article := range span {
			if len(findings) >= max {
				return findings
			}
			findings = appendFindings(findings, article, pattern, max)
		}
	}

	return findings
}

func appendFindings(findings []string, article model.Article, pattern *regexp.Regexp, max int) []string {
	abstract := StripMarkup(article.Abstract)
	if abstract == "" {
		return findings
	}

	author := article.FirstAuthor
	if author == "" {
		author = "Unknown"
	}
	year := article.PubYear
	if year == "" {
		year = "Unknown"
	}

	for _, match := range pattern.FindAllString(abstract, -1) {
		finding := strings.TrimSpace(match)
		if len(finding) < findingMinLen || len(finding) > findingMaxLen {
			continue
		}
		findings = append(findings, fmt.Sprintf("**%s et al. (%s)**: %s", author, year, finding))
		if len(findings) >= max {
			break
		}
	}

	return findings
}
