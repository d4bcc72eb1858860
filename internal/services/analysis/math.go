package analysis

import (
	"math"
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// ClampFloat64 constrains a value to a range
func ClampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Mean calculates the arithmetic mean
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Round rounds half up (toward positive infinity), so Round(-2.5) == -2.
func Round(value float64) float64 {
	return math.Floor(value + 0.5)
}

// RoundTo rounds half up to the given number of decimal places
func RoundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return Round(value*scale) / scale
}

var suffixedNumber = regexp.MustCompile(`^([\d.]+)([KMB]?)$`)

var suffixMultipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// ParseVolume converts a display string such as "45.2M" into a number.
// Strings that do not match DIGITS[K|M|B] (including "N/A" and "T" values) parse as 0.
func ParseVolume(s string) float64 {
	match := suffixedNumber.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	if multiplier, ok := suffixMultipliers[match[2]]; ok {
		return n * multiplier
	}
	return n
}

// ParseMarketCap converts a display market capitalization into a number
func ParseMarketCap(s string) float64 {
	return ParseVolume(s)
}

// formatNumber prints a value with the fewest digits that round-trip ("32.5", "40", "0.07")
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatSigned prints a value with one decimal and a leading "+" unless negative
func formatSigned(value float64) string {
	s := strconv.FormatFloat(value, 'f', 1, 64)
	if s[0] != '-' {
		s = "+" + s
	}
	return s
}
