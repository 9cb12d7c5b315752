package report

import (
	"encoding/json"
	"fmt"

	"github.com/ahidayatxx/evidentia/internal/model"
)

// JSON renders the analysis as indented JSON for machine consumers.
func JSON(a model.Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}
	return data, nil
}
