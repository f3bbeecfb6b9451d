// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/teaser/pkg/constants"
)

// Round rounds val to the given number of decimals, half away from zero.
func Round(val float64, places int) float64 {
	if places <= 0 {
		return math.Round(val)
	}
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}

// PercentFilled reports how much of the hard cap has been raised. Missing
// data, meaning a zero or NaN hard cap or available balance, reports 100.
func PercentFilled(hardCap, availableBalance float64) float64 {
	if !present(hardCap) || !present(availableBalance) {
		return constants.PercentFilledFallback
	}
	return (1 - availableBalance/hardCap) * constants.PercentageMultiplier
}

// Multiply returns a*b rounded to places decimals after rounding a to the same
// precision, the way a fixed precision money type would.
func Multiply(a, b float64, places int) float64 {
	return Round(Round(a, places)*b, places)
}

func present(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}
