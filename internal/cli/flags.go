package cli

import "github.com/spf13/cobra"

// body holds measurement flags. Values not set on the command line fall back
// to the loaded profile, then to config defaults, via resolve.
type body struct {
	weightKg        float64
	heightM         float64
	age             int
	gender          string
	activityLevel   string
	proteinActivity string
	waterFactor     float64

	proteinFlag string // "activity" on the protein command, "protein-activity" elsewhere
}

func addWeightFlag(cmd *cobra.Command, b *body) {
	cmd.Flags().Float64Var(&b.weightKg, "weight", 0, "body weight in kg")
}

func addHeightFlag(cmd *cobra.Command, b *body) {
	cmd.Flags().Float64Var(&b.heightM, "height", 0, "height in meters")
}

func addCalorieFlags(cmd *cobra.Command, b *body) {
	cmd.Flags().IntVar(&b.age, "age", 0, "age in years")
	cmd.Flags().StringVar(&b.gender, "gender", "", "male or female")
	cmd.Flags().StringVar(&b.activityLevel, "activity", "", "sedentary, light, moderate, active or \"very active\"")
}

func addProteinFlag(cmd *cobra.Command, b *body, name string) {
	b.proteinFlag = name
	cmd.Flags().StringVar(&b.proteinActivity, name, "", "protein activity: light, moderate or intense (default $NUTRITION_PROTEIN_ACTIVITY)")
}

func addWaterFlag(cmd *cobra.Command, b *body) {
	cmd.Flags().Float64Var(&b.waterFactor, "factor", 0, "water activity factor >= 1.0 (default $NUTRITION_WATER_FACTOR)")
}

// resolve fills every field that was not given as a flag.
func (a *app) resolve(cmd *cobra.Command, b *body) {
	set := cmd.Flags().Changed
	p := a.profile

	if !set("weight") {
		b.weightKg = p.WeightKg
	}
	if !set("height") {
		b.heightM = p.HeightM
	}
	if !set("age") {
		b.age = p.Age
	}
	if !set("gender") {
		b.gender = p.Gender
	}
	if !set("activity") || b.proteinFlag == "activity" {
		b.activityLevel = p.ActivityLevel
	}
	if b.proteinFlag == "" || !set(b.proteinFlag) {
		b.proteinActivity = firstNonEmpty(p.ProteinActivity, a.cfg.ProteinActivity)
	}
	if !set("factor") {
		b.waterFactor = p.WaterFactor
		if b.waterFactor == 0 {
			b.waterFactor = a.cfg.WaterFactor
		}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
