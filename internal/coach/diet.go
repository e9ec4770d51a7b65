package coach

// AdjustedMacrosByDiet re-derives grams under diet's constraints, starting
// from base (normally MacroTargets output). Diets without a rule, Estándar
// included, keep base's grams. KcalTarget is always recomputed from the
// resulting grams, so callers should display it instead of the metabolic target.
func AdjustedMacrosByDiet(p Profile, base MacroBreakdown, diet DietType) MacroBreakdown {
	w := p.WeightKG
	kcal := base.KcalTarget
	protein, fat, carbs := base.ProteinG, base.FatG, base.CarbsG

	switch diet {
	case DietKeto:
		carbs = min(40, roundInt(w*0.5))
		protein = roundInt(w * 1.8)
		fatKcal := kcal - protein*kcalPerGramProtein - carbs*kcalPerGramCarbs
		fat = max(roundInt(float64(fatKcal)/kcalPerGramFat), 50)

	case DietVegan:
		// Plant protein is less bioavailable.
		protein = roundInt(w * 2.2)
		fat = roundInt(float64(kcal) * 0.25 / kcalPerGramFat)
		carbs = remainderGrams(kcal, protein*kcalPerGramProtein+fat*kcalPerGramFat, kcalPerGramCarbs)

	case DietVegetarian:
		protein = roundInt(w * 2.0)
		fat = roundInt(float64(kcal) * 0.28 / kcalPerGramFat)
		carbs = remainderGrams(kcal, protein*kcalPerGramProtein+fat*kcalPerGramFat, kcalPerGramCarbs)

	case DietPaleo:
		carbs = roundInt(float64(carbs) * 0.75)
		protein = roundInt(w * 2.0)
		fat = remainderGrams(kcal, protein*kcalPerGramProtein+carbs*kcalPerGramCarbs, kcalPerGramFat)

	case DietMediterranean:
		fat = roundInt(float64(kcal) * 0.33 / kcalPerGramFat)
		protein = roundInt(w * 1.8)
		carbs = remainderGrams(kcal, protein*kcalPerGramProtein+fat*kcalPerGramFat, kcalPerGramCarbs)
	}

	return MacroBreakdown{
		ProteinG:   protein,
		FatG:       fat,
		CarbsG:     carbs,
		KcalTarget: kcalFromGrams(protein, carbs, fat),
		DietType:   diet,
	}
}
