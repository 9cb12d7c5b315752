// Package specialty maps clinical topics to publication-year search
// windows. Fast-moving fields get narrow windows; slow-accumulating
// evidence (pregnancy safety, rare diseases) gets wide ones.
package specialty

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ahidayatxx/evidentia/internal/model"
)

//go:embed specialties.yaml
var specialtiesYAML []byte

const defaultYears = 7

type topicRule struct {
	Name     string   `yaml:"name"`
	Years    int      `yaml:"years"`
	Keywords []string `yaml:"keywords"`
}

type rangeConfig struct {
	SpecialSituations []topicRule `yaml:"special_situations"`
	Specialties       []topicRule `yaml:"specialties"`
}

func loadConfig() (rangeConfig, error) {
	var cfg rangeConfig
	if err := yaml.Unmarshal(specialtiesYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing specialty config: %w", err)
	}
	return cfg, nil
}

// Classifier determines search year ranges from PICO text.
type Classifier struct {
	config rangeConfig

	// Year anchors the end of every range. Defaults to the current
	// year; tests pin it.
	Year int

	// DefaultYears is the fallback window when no rule matches.
	DefaultYears int
}

func NewClassifier() *Classifier {
	cfg, err := loadConfig()
	if err != nil {
		// The config is embedded; failing to parse it is a build
		// defect, not a runtime condition.
		panic(err)
	}
	return &Classifier{config: cfg, Year: time.Now().Year(), DefaultYears: defaultYears}
}

// SearchRange picks the year window for a literature search. Special
// situations (pregnancy, pediatric, pandemic) take precedence over
// specialty categories; nothing matching falls back to 7 years.
func (c *Classifier) SearchRange(population, intervention, condition string) model.YearRange {
	text := strings.ToLower(population + " " + intervention + " " + condition)

	if years, ok := matchRules(c.config.SpecialSituations, text); ok {
		return c.window(years)
	}
	if years, ok := matchRules(c.config.Specialties, text); ok {
		return c.window(years)
	}
	return c.window(c.DefaultYears)
}

// RangeForPICO derives the window from an extracted PICO structure.
func (c *Classifier) RangeForPICO(p model.PICO) model.YearRange {
	return c.SearchRange(p.Population, p.Intervention, strings.Join(p.Outcomes, " "))
}

func (c *Classifier) window(years int) model.YearRange {
	return model.YearRange{Start: c.Year - years, End: c.Year}
}

func matchRules(rules []topicRule, text string) (int, bool) {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Years, true
			}
		}
	}
	return 0, false
}
