package nutrition

// DefaultActivityFactor is the water multiplier for a sedentary day.
const DefaultActivityFactor = 1.0

// waterMLPerKg is the base daily intake per kg of body weight.
const waterMLPerKg = 33.3

// CalculateWaterIntake returns recommended daily water in liters, rounded to
// two decimals. activityFactor is a continuous multiplier and must be >= 1.0
// (typical values: 1.2 light, 1.5 moderate, 2.0 intense).
func CalculateWaterIntake(weightKg, activityFactor float64) (float64, error) {
	const op = "CalculateWaterIntake"
	if err := requirePositive(op, "weight_kg", weightKg); err != nil {
		return 0, err
	}
	if !isNumber(activityFactor) || activityFactor < 1.0 {
		return 0, invalid(op, "activity_factor", "must be a number greater than or equal to 1.0")
	}
	ml := waterMLPerKg * weightKg * activityFactor
	return roundTo(ml/1000, 2), nil
}
