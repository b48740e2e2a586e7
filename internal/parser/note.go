package parser

import (
	"strings"
	"unicode/utf8"

	"jizhang/internal/core"
)

// ExtractNote strips every recognized token from text and returns the
// residual as the free-text note. Removal is sequential single-occurrence
// substring deletion over a running value: amount patterns first (they embed
// the numeric value, which later removals would not touch), then category
// keywords, time keywords and filler words. A residual shorter than two
// characters is replaced by the default phrase of the text's category,
// classified from the original text rather than the stripped residual.
func ExtractNote(text string, amounts []float64) string {
	note := text

	for _, amount := range amounts {
		a := core.FormatAmount(amount)
		for _, pattern := range []string{a + "元", a + " 元", "花了" + a, "付了" + a, "支出" + a} {
			note = strings.Replace(note, pattern, "", 1)
		}
	}

	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			note = strings.Replace(note, keyword, "", 1)
		}
	}

	for _, entry := range timeTable {
		for _, keyword := range entry.keywords {
			note = strings.Replace(note, keyword, "", 1)
		}
	}

	for _, word := range fillerWords {
		note = strings.Replace(note, word, "", 1)
	}

	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) < 2 {
		return defaultNotes[Classify(text)]
	}
	return note
}
