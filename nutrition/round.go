package nutrition

import (
	"math"
	"strconv"
)

// roundTo rounds v to the given number of decimal places using the exact
// binary value of v, breaking true ties to even. strconv does the decimal
// conversion exactly, so 3.4965 (stored as 3.49650000000000016...) becomes
// 3.5 while 2.675 (stored just below) becomes 2.67.
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		// FormatFloat output always parses for finite input.
		return v
	}
	return r
}

// roundToInt rounds half to even, matching roundTo at zero places.
func roundToInt(v float64) int {
	return int(math.RoundToEven(v))
}
