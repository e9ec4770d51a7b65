package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"lg/coach-api/internal/coach"
)

func TestPrintPlan(t *testing.T) {
	p := coach.Profile{Gender: coach.GenderMale, Age: 30, HeightCM: 180, WeightKG: 90, TargetWeightKG: 80,
		ActivityLevel: coach.ActivityModerate, Goal: coach.GoalCut, DietType: coach.DietStandard}
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		mode string
		want []string
	}{
		{coach.ModeConservative, []string{
			"Mode:         Conservador",
			"BMR / TDEE:   1880 / 2914 kcal",
			"Weekly rate:  0.35 kg",
		}},
		{coach.ModeAccelerated, []string{
			"Daily kcal:   2185",
			"Weekly rate:  0.90 kg",
			"! " + coach.WarnRateCapped,
			"! " + coach.WarnDeepDeficit,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			var buf bytes.Buffer
			printPlan(&buf, coach.BuildPlan(p, tc.mode, today))
			out := buf.String()
			for _, line := range tc.want {
				if !strings.Contains(out, line) {
					t.Errorf("output missing %q:\n%s", line, out)
				}
			}
		})
	}
}
