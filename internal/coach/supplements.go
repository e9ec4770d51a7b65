package coach

// SupplementDisclaimer accompanies every supplement suggestion.
const SupplementDisclaimer = "⚠️ Suplementos sugeridos basados en déficits comunes. Consulta médico antes de consumir."

// Supplement is one suggestion shown alongside the plan.
type Supplement struct {
	Label      string `json:"label"`
	Disclaimer string `json:"disclaimer"`
}

var supplementCatalog = map[string][]string{
	string(GoalCut): {
		"Multivitamínico para prevenir deficiencias",
		"Omega-3 (antiinflamatorio)",
		"Vitamina D si hay poca exposición solar",
		"Proteína en polvo para alcanzar la meta diaria",
	},
	string(GoalBulk): {
		"Creatina monohidratada 5g/día",
		"Multivitamínico",
		"Proteína en polvo post-entreno",
	},
	string(DietKeto): {
		"Electrolitos (sodio, potasio, magnesio)",
		"Aceite MCT para energía rápida",
		"Omega-3",
	},
	string(DietVegan): {
		"Vitamina B12 (crítico)",
		"Hierro + Vitamina C",
		"Omega-3 de algas",
		"Proteína vegetal en polvo",
	},
	string(DietVegetarian): {
		"Omega-3 de algas",
		"Vitamina B12",
		"Proteína vegetal en polvo",
	},
	string(DietMediterranean): {"Omega-3", "Vitamina D", "Multivitamínico suave"},
	string(DietPaleo):         {"Omega-3", "Magnesio", "Vitamina D"},
}

// RecommendSupplements suggests supplements for a goal and diet. A diet with
// its own list is merged with the goal's list (diet first, no duplicates);
// otherwise the goal's list is used, and the Mediterránea list covers goals
// without one.
func RecommendSupplements(goal Goal, diet DietType) []Supplement {
	key := string(diet)
	if diet == DietStandard {
		key = string(goal)
	}

	labels, ok := supplementCatalog[key]
	if !ok {
		labels, ok = supplementCatalog[string(goal)]
	}
	if !ok {
		labels = supplementCatalog[string(DietMediterranean)]
	}

	if _, dietListed := supplementCatalog[string(diet)]; dietListed {
		merged := make([]string, 0, len(labels))
		merged = append(merged, labels...)
		merged = append(merged, supplementCatalog[string(goal)]...)
		labels = dedupe(merged)
	}

	out := make([]Supplement, len(labels))
	for i, l := range labels {
		out[i] = Supplement{Label: l, Disclaimer: SupplementDisclaimer}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
