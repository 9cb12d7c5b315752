// Package citation renders article references in APA 7th edition
// style with markdown emphasis, as used in the analysis report.
package citation

import (
	"fmt"
	"strings"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// FormatArticle renders one APA 7th edition citation. index > 0
// prefixes a numbered-list marker.
//
//	**Smith, J. & Lee, K.** (2020). Title. *Journal*, *10*(2), 123-45. https://doi.org/...
func FormatArticle(article model.Article, index int) string {
	var b strings.Builder

	if index > 0 {
		fmt.Fprintf(&b, "%d. ", index)
	}

	year := article.PubYear
	if year == "" {
		year = "n.d."
	}

	title := strings.TrimRight(article.Title, ".")

	journal := article.Journal
	if journal == "" {
		journal = "Unknown Journal"
	}

	fmt.Fprintf(&b, "**%s** (%s). %s. *%s*", formatAuthors(article), year, title, journal)

	if article.JournalVolume != "" {
		fmt.Fprintf(&b, ", *%s*", article.JournalVolume)
		if article.JournalIssue != "" {
			fmt.Fprintf(&b, "(%s)", article.JournalIssue)
		}
	}

	if article.Pages != "" {
		fmt.Fprintf(&b, ", %s", article.Pages)
	}

	if doi := article.DOI; doi != "" {
		if !strings.HasPrefix(doi, "http") {
			doi = "https://doi.org/" + doi
		}
		fmt.Fprintf(&b, ". %s", doi)
	}

	return b.String()
}

// FormatReferences renders a numbered references section, one blank
// line between entries.
func FormatReferences(articles []model.Article) string {
	references := make([]string, 0, len(articles))
	for i, article := range articles {
		references = append(references, FormatArticle(article, i+1))
	}
	return strings.Join(references, "\n\n")
}

// formatAuthors applies the APA 7th author rules: two authors joined
// with &, three to twenty all listed with & before the last, and
// twenty-one or more truncated to the first nineteen, an ellipsis,
// and the final author.
func formatAuthors(article model.Article) string {
	authors := article.Authors
	if len(authors) == 0 {
		return fallbackAuthor(article)
	}

	if len(authors) <= 20 {
		names := authorNames(authors)
		if len(names) == 0 {
			return fallbackAuthor(article)
		}

		switch len(names) {
		case 1:
			return names[0]
		case 2:
			return names[0] + " & " + names[1]
		default:
			return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
		}
	}

	first := authorNames(authors[:19])
	if len(first) == 0 {
		return fallbackAuthor(article)
	}
	last := authors[len(authors)-1]
	return strings.Join(first, ", ") + ", ... , " + last.LastName + ", " + last.Initials
}

func authorNames(authors []model.Author) []string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		switch {
		case a.LastName != "" && a.Initials != "":
			names = append(names, a.LastName+", "+a.Initials)
		case a.Name != "":
			names = append(names, a.Name)
		}
	}
	return names
}

func fallbackAuthor(article model.Article) string {
	if article.FirstAuthor != "" {
		return article.FirstAuthor
	}
	return "Unknown Author"
}
