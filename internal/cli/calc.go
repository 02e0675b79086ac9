package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lg/nutrition-calc/internal/logger"
	"lg/nutrition-calc/nutrition"
)

// bmi --weight 70 --height 1.75
func newBMICmd(a *app) *cobra.Command {
	var b body
	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body Mass Index and its category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolve(cmd, &b)
			bmi, err := nutrition.CalculateBMI(b.weightKg, b.heightM)
			if err != nil {
				return fmt.Errorf("bmi: %w", err)
			}
			category, err := nutrition.BMICategory(bmi)
			if err != nil {
				return fmt.Errorf("bmi category: %w", err)
			}
			logger.L().Debug("calc.bmi", "weight_kg", b.weightKg, "height_m", b.heightM, "bmi", bmi)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMI: %s\n", nutrition.FormatNumber(bmi))
			fmt.Fprintf(out, "BMI Category: %s\n", category)
			return nil
		},
	}
	addWeightFlag(cmd, &b)
	addHeightFlag(cmd, &b)
	return cmd
}

func newCaloriesCmd(a *app) *cobra.Command {
	var b body
	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Daily calorie needs (Harris-Benedict)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolve(cmd, &b)
			kcal, err := nutrition.CalculateCalories(b.weightKg, b.heightM, b.age, b.gender, b.activityLevel)
			if err != nil {
				return fmt.Errorf("calories: %w", err)
			}
			logger.L().Debug("calc.calories", "activity_level", b.activityLevel, "kcal", kcal)

			fmt.Fprintf(cmd.OutOrStdout(), "Daily Calorie Needs: %d kcal\n", kcal)
			return nil
		},
	}
	addWeightFlag(cmd, &b)
	addHeightFlag(cmd, &b)
	addCalorieFlags(cmd, &b)
	return cmd
}

func newProteinCmd(a *app) *cobra.Command {
	var b body
	cmd := &cobra.Command{
		Use:   "protein",
		Short: "Daily protein needs in grams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolve(cmd, &b)
			grams, err := nutrition.CalculateProteinNeeds(b.weightKg, b.proteinActivity)
			if err != nil {
				return fmt.Errorf("protein: %w", err)
			}
			logger.L().Debug("calc.protein", "activity_level", b.proteinActivity, "grams", grams)

			fmt.Fprintf(cmd.OutOrStdout(), "Daily Protein Needs (%s activity): %s g\n",
				b.proteinActivity, nutrition.FormatNumber(grams))
			return nil
		},
	}
	addWeightFlag(cmd, &b)
	addProteinFlag(cmd, &b, "activity")
	return cmd
}

func newWaterCmd(a *app) *cobra.Command {
	var b body
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Recommended daily water intake in liters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolve(cmd, &b)
			liters, err := nutrition.CalculateWaterIntake(b.weightKg, b.waterFactor)
			if err != nil {
				return fmt.Errorf("water: %w", err)
			}
			logger.L().Debug("calc.water", "activity_factor", b.waterFactor, "liters", liters)

			fmt.Fprintf(cmd.OutOrStdout(), "Water Intake: %s liters\n", nutrition.FormatNumber(liters))
			return nil
		},
	}
	addWeightFlag(cmd, &b)
	addWaterFlag(cmd, &b)
	return cmd
}
