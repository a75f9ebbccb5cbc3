package report

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Stat renders a stat rounded to a whole number with thousands separators.
// Non-finite values render as "-".
func Stat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	r := math.Round(v)
	if r == 0 {
		return "0" // avoids "-0"
	}
	return humanize.Commaf(r)
}

// Multiplier renders v as "x1.25".
func Multiplier(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return "x" + humanize.FtoaWithDigits(v, 2)
}

// Percent renders a fraction as "12.5%".
func Percent(frac float64) string {
	if math.IsNaN(frac) || math.IsInf(frac, 0) {
		return "-"
	}
	return humanize.FtoaWithDigits(frac*100, 1) + "%"
}

// Level renders a level with at most one decimal.
func Level(v float64) string {
	return humanize.FtoaWithDigits(v, 1)
}
