package common

import (
	"fmt"
	"math"
	"strconv"
)

// FormatNumber renders a volume or market capitalization with a T/B/M/K suffix and one decimal.
// Zero (or anything not a number) renders as "N/A"; values under a thousand render as an integer.
func FormatNumber(value float64) string {
	switch {
	case value == 0 || math.IsNaN(value):
		return "N/A"
	case value >= 1e12:
		return fmt.Sprintf("%.1fT", value/1e12)
	case value >= 1e9:
		return fmt.Sprintf("%.1fB", value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%.1fM", value/1e6)
	case value >= 1e3:
		return fmt.Sprintf("%.1fK", value/1e3)
	default:
		return strconv.FormatInt(int64(value), 10)
	}
}

// RoundPrice rounds a price to two decimals
func RoundPrice(value float64) float64 {
	return math.Round(value*100) / 100
}
