package utils

import (
	"fmt"
	"math"
)

// Money amounts are carried as int64 cents (2-decimal fixed point).

// FormatMoney renders cents as "1234.56".
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// CentsFromFloat converts a currency-unit amount to cents, rounding half
// away from zero.
func CentsFromFloat(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FloatFromCents converts cents back to currency units for wire payloads.
func FloatFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// PercentOf applies a whole percentage to a cent amount, rounding half up.
func PercentOf(cents int64, percent int) int64 {
	v := cents * int64(percent)
	if v >= 0 {
		return (v + 50) / 100
	}
	return (v - 50) / 100
}

// Ratio reports part/whole as a percentage rounded to 2 decimals.
func Ratio(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}
