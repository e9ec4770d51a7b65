package coach

// MacroBreakdown is a daily macro target in whole grams. DietType is empty
// for the diet-agnostic baseline.
type MacroBreakdown struct {
	ProteinG   int      `json:"protein_g"`
	FatG       int      `json:"fat_g"`
	CarbsG     int      `json:"carbs_g"`
	KcalTarget int      `json:"kcal_target"`
	DietType   DietType `json:"diet_type,omitempty"`
}

// Kcal returns the energy of the grams themselves, which may differ from
// KcalTarget by gram-level rounding.
func (m MacroBreakdown) Kcal() int {
	return kcalFromGrams(m.ProteinG, m.CarbsG, m.FatG)
}

// MacroTargets splits kcalTarget into 2 g/kg protein, 27% fat (never under
// 0.8 g/kg) and carbohydrates for the rest.
func MacroTargets(weightKG float64, kcalTarget int) MacroBreakdown {
	protein := roundInt(weightKG * 2.0)

	fat := roundInt(float64(kcalTarget) * 0.27 / kcalPerGramFat)
	if floor := roundInt(weightKG * 0.8); fat < floor {
		fat = floor
	}

	carbs := remainderGrams(kcalTarget, protein*kcalPerGramProtein+fat*kcalPerGramFat, kcalPerGramCarbs)

	return MacroBreakdown{
		ProteinG:   protein,
		FatG:       fat,
		CarbsG:     carbs,
		KcalTarget: kcalTarget,
	}
}

// SplitMeals divides a daily target evenly across meals, truncating each
// value. meals below 1 is treated as a single meal.
func SplitMeals(m MacroBreakdown, meals int) MacroBreakdown {
	if meals < 1 {
		meals = 1
	}
	return MacroBreakdown{
		ProteinG:   m.ProteinG / meals,
		FatG:       m.FatG / meals,
		CarbsG:     m.CarbsG / meals,
		KcalTarget: m.KcalTarget / meals,
		DietType:   m.DietType,
	}
}
