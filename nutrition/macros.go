package nutrition

// Energy density of macronutrients, kcal per gram.
const (
	kcalPerGramCarbs = 4
	kcalPerGramFat   = 9
)

// MacroSplit derives carbohydrate and fat grams from a calorie total using a
// fixed split: 50% of calories from carbs and 25% from fat. Protein is
// expected to come from CalculateProteinNeeds. Results are not rounded.
func MacroSplit(calories int) (carbsG, fatG float64, err error) {
	if calories < 0 {
		return 0, 0, invalid("MacroSplit", "calories", "must be a non-negative number")
	}
	kcal := float64(calories)
	return kcal * 0.5 / kcalPerGramCarbs, kcal * 0.25 / kcalPerGramFat, nil
}
