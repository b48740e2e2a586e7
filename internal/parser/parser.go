// Package parser turns free-form Chinese spending sentences into structured
// expense records. It is deterministic and total: unparseable input yields an
// empty result, never an error.
package parser

import (
	"regexp"
	"strconv"
	"time"

	"jizhang/internal/core"
)

// amountPattern matches integers and decimals with one or two fractional
// digits, in order of appearance.
var amountPattern = regexp.MustCompile(`\d+(?:\.\d{1,2})?`)

// contextRunes bounds the text window considered around each amount when an
// input carries several of them.
const contextRunes = 50

// Parse extracts zero or more expense records from input, dated relative to
// the current time.
func Parse(input string) []core.ExpenseRecord {
	return ParseAt(input, time.Now())
}

// ParseAt is Parse with an explicit reference date.
//
// All numeric amounts are collected left to right and one date is resolved
// for the whole input. A single amount parses against the full text. With
// several amounts the text is consumed through a cursor: each amount is
// located in the not-yet-consumed text, classified within a window reaching
// up to contextRunes characters back from the match, and the cursor then
// advances past the match so later amounts never re-scan consumed text.
// Non-positive and unlocatable amounts are skipped without advancing, so the
// result may be shorter than the number of amounts found.
func ParseAt(input string, ref time.Time) []core.ExpenseRecord {
	matches := amountPattern.FindAllString(input, -1)
	if len(matches) == 0 {
		return nil
	}

	date := ResolveDate(input, ref)

	if len(matches) == 1 {
		amount, err := strconv.ParseFloat(matches[0], 64)
		if err != nil || amount <= 0 {
			return nil
		}
		return []core.ExpenseRecord{{
			Date:     date,
			Amount:   amount,
			Category: Classify(input),
			Note:     ExtractNote(input, []float64{amount}),
		}}
	}

	var records []core.ExpenseRecord
	remaining := []rune(input)
	for _, raw := range matches {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			continue
		}

		needle := []rune(raw)
		idx := runeIndex(remaining, needle)
		if idx < 0 {
			continue
		}

		start := idx - contextRunes
		if start < 0 {
			start = 0
		}
		end := idx + len(needle)
		window := string(remaining[start:end])

		records = append(records, core.ExpenseRecord{
			Date:     date,
			Amount:   amount,
			Category: Classify(window),
			Note:     ExtractNote(window, []float64{amount}),
		})

		remaining = remaining[end:]
	}
	return records
}

// runeIndex returns the rune offset of the first occurrence of needle in
// haystack, or -1.
func runeIndex(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
