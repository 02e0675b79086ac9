package nutrition

import (
	"math"
	"strings"
)

// Gender values accepted by CalculateCalories (after lowercasing).
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// activityMultipliers maps calorie-context activity levels to their TDEE
// multiplier. It is the single source of truth for valid levels in this
// context; protein estimates use their own vocabulary (see proteinFactors).
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very active": 1.9,
}

// calorieActivityOrder lists activityMultipliers keys from least to most active.
var calorieActivityOrder = []string{"sedentary", "light", "moderate", "active", "very active"}

// CalorieActivityLevels returns the accepted calorie activity levels, least
// active first.
func CalorieActivityLevels() []string {
	return append([]string(nil), calorieActivityOrder...)
}

// CalculateCalories estimates daily calorie needs with the Harris-Benedict
// equation: BMR from weight, height (converted to cm), age and gender, scaled
// by the activity multiplier and rounded half-to-even to whole kcal.
// Arguments are validated in order and the first failure is returned.
func CalculateCalories(weightKg, heightM float64, age int, gender, activityLevel string) (int, error) {
	const op = "CalculateCalories"
	if err := requirePositive(op, "weight_kg", weightKg); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "height_m", heightM); err != nil {
		return 0, err
	}
	if age <= 0 {
		return 0, invalid(op, "age", "must be a positive integer")
	}
	g := normalizeKey(gender)
	if g != GenderMale && g != GenderFemale {
		return 0, invalid(op, "gender", "must be 'male' or 'female'")
	}
	mult, found := activityMultipliers[normalizeKey(activityLevel)]
	if !found {
		return 0, invalid(op, "activity_level", "must be one of: "+strings.Join(calorieActivityOrder, ", "))
	}

	bmr := basalMetabolicRate(weightKg, heightM*100, float64(age), g)
	kcal := bmr * mult
	// int conversion is undefined outside the int range.
	switch {
	case !isNumber(kcal) || kcal >= math.MaxInt:
		return 0, invalid(op, "weight_kg", "too large for a calorie estimate")
	case kcal < math.MinInt:
		return 0, invalid(op, "age", "too large for a calorie estimate")
	}
	return roundToInt(kcal), nil
}

// basalMetabolicRate applies the revised Harris-Benedict coefficients.
// Each product is converted explicitly so the compiler can't fuse it into a
// multiply-add; results must be identical on every architecture.
func basalMetabolicRate(weightKg, heightCM, age float64, gender string) float64 {
	if gender == GenderMale {
		return 88.362 + float64(13.397*weightKg) + float64(4.799*heightCM) - float64(5.677*age)
	}
	return 447.593 + float64(9.247*weightKg) + float64(3.098*heightCM) - float64(4.330*age)
}
