// CLI tool to print a coaching plan for a profile given on the command line.
// No database or .env needed.
// Usage: go run ./cmd/coachcalc -gender M -age 30 -height 180 -weight 90 -target 80 -mode Acelerado
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"lg/coach-api/internal/coach"
)

func main() {
	var (
		p      coach.Profile
		gender string
		act    string
		goal   string
		diet   string
		mode   string
		asJSON bool
	)
	flag.StringVar(&gender, "gender", "M", "M or F")
	flag.IntVar(&p.Age, "age", 30, "age in years")
	flag.Float64Var(&p.HeightCM, "height", 175, "height in cm")
	flag.Float64Var(&p.WeightKG, "weight", 80, "current weight in kg")
	flag.Float64Var(&p.TargetWeightKG, "target", 75, "target weight in kg")
	flag.StringVar(&act, "activity", string(coach.ActivityModerate), "activity level")
	flag.StringVar(&goal, "goal", string(coach.GoalCut), "Definir, Mantener or Volumen")
	flag.StringVar(&diet, "diet", string(coach.DietStandard), "diet type")
	flag.StringVar(&mode, "mode", coach.DefaultMode, "Acelerado, Moderado or Conservador")
	flag.BoolVar(&asJSON, "json", false, "print the full plan as JSON")
	flag.Parse()

	if p.WeightKG <= 0 || p.HeightCM <= 0 {
		fmt.Fprintln(os.Stderr, "weight and height must be positive")
		os.Exit(2)
	}
	p.Gender = coach.Gender(gender)
	p.ActivityLevel = coach.ActivityLevel(act)
	p.Goal = coach.Goal(goal)
	p.DietType = coach.ParseDietType(diet)

	plan := coach.BuildPlan(p, mode, time.Now().UTC())

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plan: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printPlan(os.Stdout, plan)
}

func printPlan(w io.Writer, plan coach.Plan) {
	t, pr, m := plan.Targets, plan.Projection, plan.Macros
	fmt.Fprintf(w, "Mode:         %s\n", plan.Mode.Name)
	fmt.Fprintf(w, "BMR / TDEE:   %d / %d kcal\n", t.BMR, t.TDEE)
	fmt.Fprintf(w, "BMI:          %.1f (%s)\n", t.BMI, t.BMICategory)
	fmt.Fprintf(w, "Daily kcal:   %d\n", pr.DailyCalories)
	fmt.Fprintf(w, "Weekly rate:  %.2f kg\n", pr.WeeklyRate)
	fmt.Fprintf(w, "Duration:     %.1f weeks (%.1f months), until %s\n", pr.Weeks, pr.Months, pr.TargetDate)
	fmt.Fprintf(w, "Macros (%s): P %dg  F %dg  C %dg  = %d kcal\n", m.DietType, m.ProteinG, m.FatG, m.CarbsG, m.KcalTarget)
	fmt.Fprintf(w, "Water:        %.1f L\n", plan.WaterLiters)
	for _, warn := range pr.Warnings {
		fmt.Fprintf(w, "! %s\n", warn)
	}
}
