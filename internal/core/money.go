// Package core holds the shared data shapes and amount helpers used by the
// parsing and analytics engines.
//
// Amounts are plain float64 values with at most two meaningful fractional
// digits. All rounding happens on the cent boundary via Round2.
package core

import (
	"math"
	"strconv"
)

// Round2 rounds v to two decimal places, half-up on the cent boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount in its shortest decimal form: 35 -> "35",
// 12.5 -> "12.5", 12.34 -> "12.34". This is the form embedded in amount
// patterns during note extraction and printed in narrative summaries.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
