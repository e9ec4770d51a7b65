package coach

import "time"

// Plan bundles everything the dashboard renders for one profile and mode.
type Plan struct {
	Mode        ModeConfig         `json:"mode"`
	Targets     Targets            `json:"targets"`
	Projection  ProjectionSnapshot `json:"projection"`
	Baseline    MacroBreakdown     `json:"baseline_macros"`
	Macros      MacroBreakdown     `json:"macros"`
	PerMeal     MacroBreakdown     `json:"per_meal"`
	IdealWeight WeightRange        `json:"ideal_weight"`
	WaterLiters float64            `json:"water_liters"`
	Supplements []Supplement       `json:"supplements"`
	Trajectory  []TrajectoryPoint  `json:"trajectory"`
}

// MealsPerDay is how many meals the per-meal split assumes.
const MealsPerDay = 3

// BuildPlan runs the full pipeline: metabolic targets, the projection for
// mode off the resulting TDEE, baseline macros on the projection's daily
// calories, then the diet adjustment.
func BuildPlan(p Profile, mode string, today time.Time) Plan {
	cfg := ResolveMode(mode)
	targets := CalculateTargets(p)
	proj := ProjectionAt(p.WeightKG, p.TargetWeightKG, float64(targets.TDEE), cfg.Name, today)
	base := MacroTargets(p.WeightKG, proj.DailyCalories)
	adjusted := AdjustedMacrosByDiet(p, base, p.DietType)

	return Plan{
		Mode:        cfg,
		Targets:     targets,
		Projection:  proj,
		Baseline:    base,
		Macros:      adjusted,
		PerMeal:     SplitMeals(adjusted, MealsPerDay),
		IdealWeight: IdealWeightRange(p.HeightCM),
		WaterLiters: WaterIntakeLiters(p.WeightKG, p.ActivityLevel),
		Supplements: RecommendSupplements(p.Goal, p.DietType),
		Trajectory:  Trajectory(today, p.WeightKG, p.TargetWeightKG, proj.WeeklyRate, DefaultTrajectoryWeeks),
	}
}
