package coach

import (
	"math"
	"strconv"
)

// Gram outputs round half to even. One/two-decimal outputs round the exact
// binary value to the nearest decimal, so 24.95 (stored as 24.9499...) is 24.9.

func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

func roundTo(x float64, places int) float64 {
	// FormatFloat rounds correctly from the exact value; scaling by 10^n first
	// would round twice.
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	return v
}

// Energy density, kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

func kcalFromGrams(protein, carbs, fat int) int {
	return protein*kcalPerGramProtein + carbs*kcalPerGramCarbs + fat*kcalPerGramFat
}
