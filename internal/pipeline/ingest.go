package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// articleBatch accepts either a bare JSON array of articles or an
// object wrapping them under "articles".
type articleBatch struct {
	Articles []json.RawMessage `json:"articles"`
}

// ReadArticles loads an article batch from a JSON file. Records that
// fail to decode are skipped and reported as warnings rather than
// failing the batch.
func ReadArticles(path string) ([]model.Article, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read articles: %w", err)
	}
	return DecodeArticles(data)
}

// DecodeArticles parses a batch from raw JSON.
func DecodeArticles(data []byte) ([]model.Article, []string, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapped articleBatch
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil || wrapped.Articles == nil {
			return nil, nil, fmt.Errorf("decode articles: %w", err)
		}
		records = wrapped.Articles
	}

	articles := make([]model.Article, 0, len(records))
	var warnings []string
	for i, raw := range records {
		var article model.Article
		if err := json.Unmarshal(raw, &article); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping record %d: %v", i, err))
			continue
		}
		articles = append(articles, article)
	}

	return articles, warnings, nil
}
