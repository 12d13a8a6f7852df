package tui

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the literal forms accepted by ParsePosition and
// ParseDimension: a non-negative decimal, optionally followed by '%'.
var numberPattern = regexp.MustCompile(`^\d+(\.\d+)?%?$`)

// parseLiteral splits a literal into its numeric value and whether it is a percentage.
func parseLiteral(s string) (float64, bool, error) {
	if !numberPattern.MatchString(s) {
		return 0, false, &ParseError{Input: s}
	}
	percent := strings.HasSuffix(s, "%")
	value, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false, &ParseError{Input: s}
	}
	return value, percent, nil
}

func checkPercent(p float64) error {
	if p < 0 || p > 100 || math.IsNaN(p) {
		return &RangeError{Value: p}
	}
	return nil
}

// roundCell rounds half up to the nearest whole cell.
func roundCell(f float64) int {
	return int(math.Floor(f + 0.5))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func viewLabel(v *View) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
