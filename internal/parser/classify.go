package parser

import (
	"strings"

	"jizhang/internal/core"
)

// Classify returns the category of the first keyword found in text,
// scanning categories in table order. No scoring, no weighting: the first
// substring hit wins. Text matching nothing classifies as CategoryOther.
func Classify(text string) core.Category {
	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}
	return core.CategoryOther
}
