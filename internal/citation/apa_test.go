package citation

import (
	"strings"
	"testing"

	"github.com/ahidayatxx/evidentia/internal/model"
)

func TestFormatArticle_Complete(t *testing.T) {
	article := model.Article{
		Title:         "Effect of treatment on outcomes.",
		Authors:       []model.Author{{LastName: "Smith", Initials: "J. A."}},
		PubYear:       "2020",
		Journal:       "The Lancet",
		JournalVolume: "396",
		JournalIssue:  "10248",
		Pages:         "123-134",
		DOI:           "10.1016/S0140-6736(20)30000-1",
	}

	got := FormatArticle(article, 0)
	want := "**Smith, J. A.** (2020). Effect of treatment on outcomes. *The Lancet*, *396*(10248), 123-134. https://doi.org/10.1016/S0140-6736(20)30000-1"

	if got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestFormatArticle_IndexedAndDefaults(t *testing.T) {
	article := model.Article{Title: "An untitled finding", FirstAuthor: "Jones"}

	got := FormatArticle(article, 3)

	if !strings.HasPrefix(got, "3. **Jones** (n.d.).") {
		t.Errorf("Expected numbered entry with n.d. year, got %q", got)
	}
	if !strings.Contains(got, "*Unknown Journal*") {
		t.Errorf("Expected journal fallback, got %q", got)
	}
}

func TestFormatArticle_DOIAlreadyURL(t *testing.T) {
	article := model.Article{
		Title:       "T",
		FirstAuthor: "A",
		DOI:         "https://doi.org/10.1000/x",
	}

	got := FormatArticle(article, 0)

	if strings.Contains(got, "doi.org/https") {
		t.Errorf("Expected URL DOI left as-is, got %q", got)
	}
}

func TestFormatAuthors_TwoAuthors(t *testing.T) {
	article := model.Article{
		Title: "T",
		Authors: []model.Author{
			{LastName: "Smith", Initials: "J."},
			{LastName: "Lee", Initials: "K."},
		},
	}

	got := FormatArticle(article, 0)

	if !strings.Contains(got, "**Smith, J. & Lee, K.**") {
		t.Errorf("Expected ampersand join for two authors, got %q", got)
	}
}

func TestFormatAuthors_ThreeAuthors(t *testing.T) {
	article := model.Article{
		Title: "T",
		Authors: []model.Author{
			{LastName: "Smith", Initials: "J."},
			{LastName: "Lee", Initials: "K."},
			{LastName: "Patel", Initials: "R."},
		},
	}

	got := FormatArticle(article, 0)

	if !strings.Contains(got, "**Smith, J., Lee, K., & Patel, R.**") {
		t.Errorf("Expected serial comma with & before last, got %q", got)
	}
}

func TestFormatAuthors_TwentyOnePlus(t *testing.T) {
	authors := make([]model.Author, 25)
	for i := range authors {
		authors[i] = model.Author{LastName: "Author" + string(rune('A'+i)), Initials: "X."}
	}

	got := FormatArticle(model.Article{Title: "T", Authors: authors}, 0)

	if !strings.Contains(got, ", ... , AuthorY, X.") {
		t.Errorf("Expected ellipsis then final author, got %q", got)
	}
	if strings.Contains(got, "AuthorT") {
		t.Errorf("Expected authors 20-24 omitted, got %q", got)
	}
}

func TestFormatAuthors_NameFallbackPerAuthor(t *testing.T) {
	article := model.Article{
		Title:   "T",
		Authors: []model.Author{{Name: "Collaborative Study Group"}},
	}

	got := FormatArticle(article, 0)

	if !strings.Contains(got, "**Collaborative Study Group**") {
		t.Errorf("Expected collective name used, got %q", got)
	}
}

func TestFormatReferences_NumbersSequentially(t *testing.T) {
	articles := []model.Article{
		{Title: "First", FirstAuthor: "A"},
		{Title: "Second", FirstAuthor: "B"},
	}

	got := FormatReferences(articles)

	if !strings.Contains(got, "1. **A**") || !strings.Contains(got, "2. **B**") {
		t.Errorf("Expected numbered references, got %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Error("Expected blank line between references")
	}
}
