package nutrition

import "strings"

// DefaultProteinActivity is used when CalculateProteinNeeds gets an empty level.
const DefaultProteinActivity = "moderate"

// proteinFactors are grams of protein per kg of body weight. This vocabulary
// is deliberately different from activityMultipliers.
var proteinFactors = map[string]float64{
	"light":    1.2,
	"moderate": 1.6,
	"intense":  2.0,
}

var proteinActivityOrder = []string{"light", "moderate", "intense"}

// ProteinActivityLevels returns the accepted protein activity levels.
func ProteinActivityLevels() []string {
	return append([]string(nil), proteinActivityOrder...)
}

// CalculateProteinNeeds returns daily protein in grams, rounded to one
// decimal place. The empty string is the only stand-in for
// DefaultProteinActivity; whitespace-only or other unknown levels are rejected.
func CalculateProteinNeeds(weightKg float64, activityLevel string) (float64, error) {
	const op = "CalculateProteinNeeds"
	if err := requirePositive(op, "weight_kg", weightKg); err != nil {
		return 0, err
	}
	if activityLevel == "" {
		activityLevel = DefaultProteinActivity
	}
	factor, found := proteinFactors[normalizeKey(activityLevel)]
	if !found {
		return 0, invalid(op, "activity_level", "must be one of: "+strings.Join(proteinActivityOrder, ", "))
	}
	return roundTo(weightKg*factor, 1), nil
}
