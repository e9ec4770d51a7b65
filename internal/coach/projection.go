package coach

import (
	"math"
	"time"
)

// Projection warnings, in the order they are emitted.
const (
	WarnRateCapped    = "⚠️ Velocidad de pérdida ajustada al 1% de tu peso corporal por semana (máximo recomendado)."
	WarnAggressiveBig = "⚠️ Objetivo >15kg en modo Acelerado puede causar pérdida muscular y efecto rebote."
	WarnSplitGoal     = "💡 Considera dividir tu objetivo en metas intermedias de 5-10kg para mejor adherencia."
	WarnDeepDeficit   = "⚠️ Déficit calórico muy alto. Puede afectar metabolismo y energía."
)

const (
	maxLossPctPerWeek = 0.01 // of current body weight
	minWeeklyRate     = 0.1  // kg/week, divisor floor
	maxDeficitPct     = 0.25
	maxSurplusPct     = 0.15
	minDailyCalories  = 1200
	weeksPerMonth     = 4.3

	// TargetDateLayout is the display format of ProjectionSnapshot.TargetDate.
	TargetDateLayout = "02 Jan 2006"
)

// ProjectionSnapshot describes how long reaching the target weight takes at
// a given mode and what to eat per day on the way.
type ProjectionSnapshot struct {
	Weeks         float64  `json:"weeks"`
	Months        float64  `json:"months"`
	TargetDate    string   `json:"target_date"`
	DailyCalories int      `json:"daily_calories"`
	WeeklyRate    float64  `json:"weekly_rate"`
	RiskMsg       string   `json:"risk_msg"`
	Color         string   `json:"color"`
	Warnings      []string `json:"warnings"`
}

// CalculateProjection projects from today's UTC date.
func CalculateProjection(currentKG, targetKG, tdee float64, mode string) ProjectionSnapshot {
	return ProjectionAt(currentKG, targetKG, tdee, mode, time.Now().UTC())
}

// ProjectionAt is CalculateProjection with an explicit "today". Only the
// calendar date of today is used.
func ProjectionAt(currentKG, targetKG, tdee float64, mode string, today time.Time) ProjectionSnapshot {
	cfg := ResolveMode(mode)
	isLoss := currentKG > targetKG

	rate := cfg.GainRate
	if isLoss {
		rate = cfg.LossRate
	}

	warnings := []string{}

	// Losing more than 1% of body weight a week costs muscle.
	if maxSafe := currentKG * maxLossPctPerWeek; isLoss && rate > maxSafe {
		rate = maxSafe
		warnings = append(warnings, WarnRateCapped)
	}

	delta := math.Abs(currentKG - targetKG)
	weeks := delta / math.Max(rate, minWeeklyRate)

	if cfg.Name == ModeAccelerated && delta >= 15 {
		warnings = append(warnings, WarnAggressiveBig)
	}
	if delta >= 20 {
		warnings = append(warnings, WarnSplitGoal)
	}

	daily := dailyCalories(tdee, cfg.DeficitPct, isLoss)
	// Only trips at the 25% cap, when truncating daily pushes the deficit a
	// fraction of a kcal past it.
	if isLoss && tdee-float64(daily) > tdee*maxDeficitPct {
		warnings = append(warnings, WarnDeepDeficit)
	}

	return ProjectionSnapshot{
		Weeks:         roundTo(weeks, 1),
		Months:        roundTo(weeks/weeksPerMonth, 1),
		TargetDate:    addWeeks(today, weeks).Format(TargetDateLayout),
		DailyCalories: daily,
		WeeklyRate:    roundTo(rate, 2),
		RiskMsg:       cfg.RiskMsg,
		Color:         cfg.Color,
		Warnings:      warnings,
	}
}

// dailyCalories applies the mode's deficit (capped at 25%, floored at 1200
// kcal) or surplus (capped at 15%) to tdee, truncating to whole kcal.
func dailyCalories(tdee, pct float64, isLoss bool) int {
	if isLoss {
		kcal := int(tdee * (1 - math.Min(pct, maxDeficitPct)))
		if kcal < minDailyCalories {
			return minDailyCalories
		}
		return kcal
	}
	return int(tdee * (1 + math.Min(pct, maxSurplusPct)))
}

// addWeeks moves the calendar date of t forward by the whole days contained
// in weeks. The day count is taken after rounding to the microsecond so
// values like 76.9999999 days land on 77.
func addWeeks(t time.Time, weeks float64) time.Time {
	const usPerDay = 86400 * 1e6
	us := math.Round(weeks * 7 * usPerDay)
	days := int(math.Floor(us / usPerDay))
	y, m, d := t.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC)
}
