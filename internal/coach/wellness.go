package coach

// WeightRange is an inclusive kg range.
type WeightRange struct {
	MinKG float64 `json:"min_kg"`
	MaxKG float64 `json:"max_kg"`
}

// IdealWeightRange returns the weights that keep BMI within 18.5–24.9.
func IdealWeightRange(heightCM float64) WeightRange {
	m := heightCM / 100
	sq := m * m
	return WeightRange{
		MinKG: roundTo(18.5*sq, 1),
		MaxKG: roundTo(24.9*sq, 1),
	}
}

// WaterIntakeLiters recommends 33 ml/kg plus half a liter for activity
// levels above moderate-light (factor > 1.5).
func WaterIntakeLiters(weightKG float64, activity ActivityLevel) float64 {
	liters := weightKG * 0.033
	if activity.Factor() > 1.5 {
		liters += 0.5
	}
	return roundTo(liters, 1)
}

// Intensity is the perceived effort of an exercise session.
type Intensity string

const (
	IntensityLow    Intensity = "Baja"
	IntensityMedium Intensity = "Media"
	IntensityHigh   Intensity = "Alta"
)

// metTable holds MET values per exercise for low/medium/high intensity.
var metTable = map[string][3]float64{
	"Caminar":  {2.5, 3.3, 4.0},
	"Correr":   {6.0, 7.5, 9.5},
	"Ciclismo": {3.5, 5.5, 8.0},
	"Natación": {5, 7, 9},
	"Pesas":    {3, 4.5, 6},
	"HIIT":     {6, 8, 10},
	"Yoga":     {2, 3, 4},
	"Cardio":   {4, 6, 8},
}

const defaultMET = 5

// Exercises lists the exercises with a known MET profile.
func Exercises() []string {
	return []string{"Caminar", "Correr", "Ciclismo", "Natación", "Pesas", "HIIT", "Yoga", "Cardio"}
}

// MET returns the metabolic equivalent for an exercise. Unknown exercises
// use the Cardio row; unknown intensities use MET 5.
func MET(exercise string, intensity Intensity) float64 {
	row, ok := metTable[exercise]
	if !ok {
		row = metTable["Cardio"]
	}
	switch intensity {
	case IntensityLow:
		return row[0]
	case IntensityMedium:
		return row[1]
	case IntensityHigh:
		return row[2]
	default:
		return defaultMET
	}
}

// CaloriesBurned estimates kcal as MET × kg × hours.
func CaloriesBurned(weightKG float64, exercise string, minutes float64, intensity Intensity) int {
	return roundInt(MET(exercise, intensity) * weightKG * minutes / 60)
}
