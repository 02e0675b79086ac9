package nutrition

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Real is any built-in integer or floating-point type.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FormatNutritionResult renders the four-line nutrition summary. Each value is
// printed in its natural form: integers without a decimal point, floats with
// their shortest exact representation and at least one fractional digit, so
// FormatNutritionResult(2000, 112.0, 328.5, 73.0) prints "112.0 g" while an
// int 150 prints "150 g". Values are checked in argument order and must be
// non-negative numbers.
func FormatNutritionResult[C, P, K, F Real](calories C, protein P, carbs K, fat F) (string, error) {
	const op = "FormatNutritionResult"

	fields := []struct {
		arg string
		v   any
	}{
		{"calories", calories},
		{"protein", protein},
		{"carbs", carbs},
		{"fat", fat},
	}
	text := make([]string, len(fields))
	for i, f := range fields {
		s, num := naturalString(f.v)
		if err := requireNonNegative(op, f.arg, num); err != nil {
			return "", err
		}
		text[i] = s
	}

	var b strings.Builder
	b.WriteString("Nutrition Summary:\n")
	fmt.Fprintf(&b, "- Calories: %s kcal\n", text[0])
	fmt.Fprintf(&b, "- Protein: %s g\n", text[1])
	fmt.Fprintf(&b, "- Carbohydrates: %s g\n", text[2])
	fmt.Fprintf(&b, "- Fat: %s g", text[3])
	return b.String(), nil
}

// FormatNumber returns v in the same natural form FormatNutritionResult uses.
func FormatNumber[T Real](v T) string {
	s, _ := naturalString(v)
	return s
}

// naturalString returns the display form of v and its value as float64.
// v is always one of the Real kinds.
func naturalString(v any) (string, float64) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), float64(rv.Uint())
	case reflect.Float32:
		return floatString(rv.Float(), 32), rv.Float()
	default:
		return floatString(rv.Float(), 64), rv.Float()
	}
}

// floatString formats f as the shortest string that parses back to the same
// value. Whole numbers keep a ".0" suffix, and very large or very small
// magnitudes switch to exponent form.
func floatString(f float64, bitSize int) string {
	if !isNumber(f) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
