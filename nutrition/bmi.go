package nutrition

// BMI category labels, returned verbatim by BMICategory.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// CalculateBMI returns weight / height² rounded to two decimal places.
// Both inputs must be positive; weight is checked first.
func CalculateBMI(weightKg, heightM float64) (float64, error) {
	const op = "CalculateBMI"
	if err := requirePositive(op, "weight_kg", weightKg); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "height_m", heightM); err != nil {
		return 0, err
	}
	bmi := weightKg / (heightM * heightM)
	if !isNumber(bmi) {
		// height² underflowed to zero
		return 0, invalid(op, "height_m", "too small to compute BMI")
	}
	return roundTo(bmi, 2), nil
}

// BMICategory classifies a BMI value. Intervals are left-closed, so a value
// sitting exactly on a threshold belongs to the higher category. The sign of
// bmi is not checked.
func BMICategory(bmi float64) (string, error) {
	if !isNumber(bmi) {
		return "", invalid("BMICategory", "bmi", "must be a number")
	}
	switch {
	case bmi < 18.5:
		return CategoryUnderweight, nil
	case bmi < 25:
		return CategoryNormal, nil
	case bmi < 30:
		return CategoryOverweight, nil
	default:
		return CategoryObese, nil
	}
}
