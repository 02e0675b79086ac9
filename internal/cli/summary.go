package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lg/nutrition-calc/internal/logger"
	"lg/nutrition-calc/nutrition"
)

// newSummaryCmd chains every calculation for one profile: BMI feeds the
// category, calories feed the 50/25 macro split, and the result is printed as
// the formatted nutrition summary.
func newSummaryCmd(a *app) *cobra.Command {
	var b body
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "All estimates plus a formatted nutrition summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolve(cmd, &b)
			r, err := summarize(b)
			if err != nil {
				return err
			}
			logger.L().Debug("calc.summary", "bmi", r.bmi, "kcal", r.calories)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI: %s (%s)\n", nutrition.FormatNumber(r.bmi), r.category)
			fmt.Fprintf(out, "Water Intake: %s liters\n\n", nutrition.FormatNumber(r.waterL))
			fmt.Fprintln(out, r.text)
			return nil
		},
	}
	addWeightFlag(cmd, &b)
	addHeightFlag(cmd, &b)
	addCalorieFlags(cmd, &b)
	addProteinFlag(cmd, &b, "protein-activity")
	addWaterFlag(cmd, &b)
	return cmd
}

type summary struct {
	bmi      float64
	category string
	calories int
	proteinG float64
	carbsG   float64
	fatG     float64
	waterL   float64
	text     string
}

// summarize stops at the first invalid input, so nothing is printed for a
// partially valid profile.
func summarize(b body) (summary, error) {
	var (
		s   summary
		err error
	)
	if s.bmi, err = nutrition.CalculateBMI(b.weightKg, b.heightM); err != nil {
		return summary{}, fmt.Errorf("bmi: %w", err)
	}
	if s.category, err = nutrition.BMICategory(s.bmi); err != nil {
		return summary{}, fmt.Errorf("bmi category: %w", err)
	}
	if s.calories, err = nutrition.CalculateCalories(b.weightKg, b.heightM, b.age, b.gender, b.activityLevel); err != nil {
		return summary{}, fmt.Errorf("calories: %w", err)
	}
	if s.proteinG, err = nutrition.CalculateProteinNeeds(b.weightKg, b.proteinActivity); err != nil {
		return summary{}, fmt.Errorf("protein: %w", err)
	}
	if s.waterL, err = nutrition.CalculateWaterIntake(b.weightKg, b.waterFactor); err != nil {
		return summary{}, fmt.Errorf("water: %w", err)
	}
	if s.carbsG, s.fatG, err = nutrition.MacroSplit(s.calories); err != nil {
		return summary{}, fmt.Errorf("macros: %w", err)
	}
	if s.text, err = nutrition.FormatNutritionResult(s.calories, s.proteinG, s.carbsG, s.fatG); err != nil {
		return summary{}, fmt.Errorf("format: %w", err)
	}
	return s, nil
}
