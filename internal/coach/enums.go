package coach

// Gender selects the Mifflin-St Jeor sex constant.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ActivityLevel is the self-reported activity bucket used to scale BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "Sedentario"
	ActivityLight      ActivityLevel = "Ligero"
	ActivityModerate   ActivityLevel = "Moderado"
	ActivityActive     ActivityLevel = "Activo"
	ActivityVeryActive ActivityLevel = "Muy activo"
)

// ActivityLevels lists the accepted activity levels, least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// Factor returns the TDEE multiplier. Unknown levels are treated as sedentary.
func (a ActivityLevel) Factor() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

// Valid reports whether a is one of ActivityLevels.
func (a ActivityLevel) Valid() bool {
	for _, l := range ActivityLevels {
		if a == l {
			return true
		}
	}
	return false
}

// Goal is the user's body-composition goal.
type Goal string

const (
	GoalCut      Goal = "Definir"
	GoalMaintain Goal = "Mantener"
	GoalBulk     Goal = "Volumen"
)

// Goals lists the accepted goals.
var Goals = []Goal{GoalCut, GoalMaintain, GoalBulk}

// Adjustment is the fractional change applied to TDEE for the goal.
// Unknown goals get no adjustment.
func (g Goal) Adjustment() float64 {
	switch g {
	case GoalCut:
		return -0.15
	case GoalMaintain:
		return 0
	case GoalBulk:
		return 0.10
	default:
		return 0
	}
}

func (g Goal) Valid() bool {
	return g == GoalCut || g == GoalMaintain || g == GoalBulk
}

// DietType names a macro-split policy.
type DietType string

const (
	DietStandard      DietType = "Estándar"
	DietKeto          DietType = "Keto"
	DietVegan         DietType = "Vegana"
	DietVegetarian    DietType = "Vegetariana"
	DietPaleo         DietType = "Paleo"
	DietMediterranean DietType = "Mediterránea"
)

// DietTypes lists the accepted diet types.
var DietTypes = []DietType{
	DietStandard, DietKeto, DietVegan, DietVegetarian, DietPaleo, DietMediterranean,
}

func (d DietType) Valid() bool {
	for _, t := range DietTypes {
		if d == t {
			return true
		}
	}
	return false
}

// ParseDietType maps s to a known diet type, falling back to DietStandard.
func ParseDietType(s string) DietType {
	if d := DietType(s); d.Valid() {
		return d
	}
	return DietStandard
}

// BMICategory is the WHO adult weight bucket for a BMI value.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Bajo peso"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Sobrepeso"
	BMIObese       BMICategory = "Obesidad"
)

// CategorizeBMI buckets bmi with lower-inclusive boundaries (25.0 is Sobrepeso).
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
