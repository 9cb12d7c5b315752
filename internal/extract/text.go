package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes inline markup from article text, keeping only
// visible text. PubMed abstracts occasionally carry HTML fragments
// (sub/sup, italics, structured-abstract labels), which would otherwise
// leak into keyword matching.
func StripMarkup(raw string) string {
	if !strings.ContainsRune(raw, '<') {
		return raw
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}

// NormalizeText produces the canonical lower-cased text that every
// classification and appraisal predicate runs against: stripped title and
// abstract joined with a single space. Missing fields resolve to empty
// strings, never an error.
func NormalizeText(title, abstract string) string {
	joined := StripMarkup(title) + " " + StripMarkup(abstract)
	return strings.ToLower(joined)
}
