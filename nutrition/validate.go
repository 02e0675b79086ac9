package nutrition

import (
	"math"
	"strings"
)

/* ─── Shared input checks ────────────────────────────────────────────── */

// NaN and ±Inf count as non-numeric.
func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requirePositive(op, arg string, v float64) error {
	if !isNumber(v) || v <= 0 {
		return invalid(op, arg, "must be a positive number")
	}
	return nil
}

func requireNonNegative(op, arg string, v float64) error {
	if !isNumber(v) || v < 0 {
		return invalid(op, arg, "must be a non-negative number")
	}
	return nil
}

// normalizeKey lowercases a categorical input before table lookup. Matching
// must not depend on locale.
func normalizeKey(s string) string {
	return strings.ToLower(s)
}
