// Package coach derives energy expenditure, weight-change projections and
// macronutrient targets from a body profile. Every function is pure: no I/O,
// no shared state, and unknown enum values fall back to defaults instead of
// returning errors, so a stale selection from the UI never breaks a render.
package coach

// Profile is the biometric input for one calculation. WeightKG and HeightCM
// must be positive.
type Profile struct {
	Gender         Gender        `json:"gender"`
	Age            int           `json:"age"`
	HeightCM       float64       `json:"height_cm"`
	WeightKG       float64       `json:"weight_kg"`
	TargetWeightKG float64       `json:"target_weight_kg"`
	ActivityLevel  ActivityLevel `json:"activity_level"`
	Goal           Goal          `json:"goal"`
	DietType       DietType      `json:"diet_type"`
}

// Targets is the metabolic summary for a profile.
type Targets struct {
	BMR         int         `json:"bmr"`
	TDEE        int         `json:"tdee"`
	KcalTarget  int         `json:"kcal_target"`
	ProteinG    int         `json:"protein_g"`
	FatG        int         `json:"fat_g"`
	CarbsG      int         `json:"carbs_g"`
	BMI         float64     `json:"bmi"`
	BMICategory BMICategory `json:"bmi_category"`
}

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day, floored at 0.
func BMR(p Profile) float64 {
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	if bmr < 0 {
		return 0
	}
	return bmr
}

// BMI returns weight/height² rounded to one decimal.
func BMI(weightKG, heightCM float64) float64 {
	m := heightCM / 100
	return roundTo(weightKG/(m*m), 1)
}

// CalculateTargets computes BMR, TDEE, the goal-adjusted calorie target, a
// goal-aware macro split and BMI for p.
func CalculateTargets(p Profile) Targets {
	bmr := BMR(p)
	tdee := bmr * p.ActivityLevel.Factor()

	// Truncated, not rounded: the target never exceeds the exact value.
	kcalTarget := int(tdee * (1 + p.Goal.Adjustment()))

	protein := roundInt(p.WeightKG * 2.0)
	if p.Goal == GoalBulk {
		protein = roundInt(p.WeightKG * 2.2)
	}
	fat := roundInt(p.WeightKG * 0.9)
	carbs := remainderGrams(kcalTarget, protein*kcalPerGramProtein+fat*kcalPerGramFat, kcalPerGramCarbs)

	bmi := BMI(p.WeightKG, p.HeightCM)
	return Targets{
		BMR:         int(bmr),
		TDEE:        int(tdee),
		KcalTarget:  kcalTarget,
		ProteinG:    protein,
		FatG:        fat,
		CarbsG:      carbs,
		BMI:         bmi,
		BMICategory: CategorizeBMI(bmi),
	}
}

// remainderGrams converts the calories left after usedKcal into grams of a
// macro with the given density. Never negative.
func remainderGrams(kcalTarget, usedKcal, kcalPerGram int) int {
	left := kcalTarget - usedKcal
	if left < 0 {
		left = 0
	}
	return roundInt(float64(left) / float64(kcalPerGram))
}
