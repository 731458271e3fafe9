package analysis

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// FormatScore renders any score-like value with exactly two decimals.
// Missing, non-numeric and non-finite input renders as "0.00".
func FormatScore(value any) string {
	f := ToScore(value)
	out := strconv.FormatFloat(f, 'f', 2, 64)
	if out == "-0.00" {
		return "0.00"
	}
	return out
}

// ToScore coerces value to a finite float64, defaulting to 0.
func ToScore(value any) float64 {
	if value == nil {
		return 0
	}
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
