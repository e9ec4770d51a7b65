package coach

import "testing"

// TestBuildPlan_Pipeline runs the reference profile on a Keto diet at
// Acelerado. Baseline macros are taken on the projection's 2185 kcal (not the
// 2476 metabolic target); Keto then gives fat = (2185-648-160)/9 = 153.
func TestBuildPlan_Pipeline(t *testing.T) {
	p := Profile{Gender: GenderMale, Age: 30, HeightCM: 180, WeightKG: 90, TargetWeightKG: 80,
		ActivityLevel: ActivityModerate, Goal: GoalCut, DietType: DietKeto}

	plan := BuildPlan(p, ModeAccelerated, fixedToday)

	if plan.Targets.TDEE != 2914 || plan.Targets.KcalTarget != 2476 {
		t.Errorf("targets = %+v", plan.Targets)
	}
	if plan.Projection.DailyCalories != 2185 {
		t.Errorf("daily calories = %d, want 2185", plan.Projection.DailyCalories)
	}
	if want := (MacroBreakdown{ProteinG: 180, FatG: 72, CarbsG: 204, KcalTarget: 2185}); plan.Baseline != want {
		t.Errorf("baseline = %+v, want %+v", plan.Baseline, want)
	}
	if want := (MacroBreakdown{ProteinG: 162, FatG: 153, CarbsG: 40, KcalTarget: 2185, DietType: DietKeto}); plan.Macros != want {
		t.Errorf("macros = %+v, want %+v", plan.Macros, want)
	}
	if plan.PerMeal.KcalTarget != 728 {
		t.Errorf("per-meal kcal = %d, want 728", plan.PerMeal.KcalTarget)
	}
	if len(plan.Trajectory) != DefaultTrajectoryWeeks+1 || plan.Trajectory[1].WeightKG != 89.1 {
		t.Errorf("trajectory = %+v", plan.Trajectory)
	}
	if len(plan.Supplements) == 0 {
		t.Error("expected supplement suggestions")
	}
}

func TestBuildPlan_UnknownModeUsesModerate(t *testing.T) {
	p := Profile{Gender: GenderFemale, Age: 35, HeightCM: 165, WeightKG: 68, TargetWeightKG: 62,
		ActivityLevel: ActivityLight, Goal: GoalCut, DietType: DietStandard}
	plan := BuildPlan(p, "", fixedToday)
	if plan.Mode.Name != ModeModerate {
		t.Errorf("mode = %q, want %q", plan.Mode.Name, ModeModerate)
	}
	if plan.Projection.Color != ResolveMode(ModeModerate).Color {
		t.Errorf("projection color = %q", plan.Projection.Color)
	}
}
