// Package classify assigns evidence pyramid levels to article records.
//
// Classification is a pure, total, idempotent function of the article's
// publication type tags, title, and abstract: tags are consulted first,
// then free text, then a weak-signal override, then the unknown default.
package classify

import (
	"strings"

	"github.com/ahidayatxx/evidentia/internal/extract"
	"github.com/ahidayatxx/evidentia/internal/model"
)

// Classifier assigns evidence pyramid levels from the rule tables.
type Classifier struct {
	tagRules  []levelRule
	textRules []levelRule
}

// NewClassifier creates a new classifier.
func NewClassifier() *Classifier {
	return &Classifier{
		tagRules:  tagRules,
		textRules: textRules,
	}
}

// Classify returns the evidence level and its canonical name for an
// article. It never fails: articles with no usable signal land on
// level 6.
func (c *Classifier) Classify(article model.Article) (model.EvidenceLevel, string) {
	if level, ok := c.classifyByTags(article.PublicationTypeTags); ok {
		return level, level.String()
	}

	text := extract.NormalizeText(article.Title, article.Abstract)
	if level, ok := c.classifyByText(text); ok {
		return level, level.String()
	}

	// Bare "clinical trial" without any randomization qualifier still
	// signals an interventional design.
	if strings.Contains(text, "clinical trial") {
		return model.LevelRCT, model.LevelRCT.String()
	}

	return model.LevelAnimalInVitro, model.LevelAnimalInVitro.String()
}

// Apply returns a copy of the article with the derived level fields set.
func (c *Classifier) Apply(article model.Article) model.Article {
	level, name := c.Classify(article)
	article.EvidenceLevel = level
	article.EvidenceLevelName = name
	return article
}

func (c *Classifier) classifyByTags(tags []string) (model.EvidenceLevel, bool) {
	if len(tags) == 0 {
		return 0, false
	}

	lowered := make([]string, len(tags))
	for i, tag := range tags {
		lowered[i] = strings.ToLower(tag)
	}

	for _, rule := range c.tagRules {
		for _, keyword := range rule.Keywords {
			for _, tag := range lowered {
				if strings.Contains(tag, keyword) {
					return rule.Level, true
				}
			}
		}
	}

	return 0, false
}

func (c *Classifier) classifyByText(text string) (model.EvidenceLevel, bool) {
	for _, rule := range c.textRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Level, true
			}
		}
	}

	return 0, false
}
