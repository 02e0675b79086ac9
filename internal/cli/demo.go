package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lg/nutrition-calc/nutrition"
)

// Reference profile used by the demo walkthrough.
const (
	demoWeightKg = 70.0
	demoHeightM  = 1.75
	demoAge      = 30
	demoGender   = "male"
	demoActivity = "moderate"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every calculation with a reference profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(out io.Writer) error {
	fmt.Fprintln(out, "===== NUTRITION CALCULATOR =====")

	fmt.Fprintln(out, "\n1. BMI Calculation:")
	bmi, err := nutrition.CalculateBMI(demoWeightKg, demoHeightM)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Weight: %s kg, Height: %s m\n", nutrition.FormatNumber(demoWeightKg), nutrition.FormatNumber(demoHeightM))
	fmt.Fprintf(out, "BMI: %s\n", nutrition.FormatNumber(bmi))

	fmt.Fprintln(out, "\n2. BMI Category:")
	category, err := nutrition.BMICategory(bmi)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "BMI Category: %s\n", category)

	fmt.Fprintln(out, "\n3. Calorie Calculation:")
	kcal, err := nutrition.CalculateCalories(demoWeightKg, demoHeightM, demoAge, demoGender, demoActivity)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Daily Calorie Needs: %d kcal\n", kcal)

	fmt.Fprintln(out, "\n4. Protein Calculation (Default Level):")
	protein, err := nutrition.CalculateProteinNeeds(demoWeightKg, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Daily Protein Needs (Moderate activity): %s g\n", nutrition.FormatNumber(protein))

	fmt.Fprintln(out, "\n5. Protein Calculation (Intense):")
	proteinIntense, err := nutrition.CalculateProteinNeeds(demoWeightKg, "intense")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Daily Protein Needs (Intense activity): %s g\n", nutrition.FormatNumber(proteinIntense))

	fmt.Fprintln(out, "\n6. Water Intake Calculation:")
	for _, w := range []struct {
		label  string
		factor float64
	}{
		{"Sedentary", nutrition.DefaultActivityFactor},
		{"Moderate", 1.5},
		{"Intense", 2.0},
	} {
		liters, err := nutrition.CalculateWaterIntake(demoWeightKg, w.factor)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Water Intake (%s): %s liters\n", w.label, nutrition.FormatNumber(liters))
	}

	fmt.Fprintln(out, "\n7. Formatted Nutrition Summary:")
	carbs, fat, err := nutrition.MacroSplit(kcal)
	if err != nil {
		return err
	}
	text, err := nutrition.FormatNutritionResult(kcal, protein, carbs, fat)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}
