package coach

import (
	"math"
	"time"
)

// adherenceTolerance is how far from target (as a fraction) a day may land
// and still count as on plan.
const adherenceTolerance = 0.1

// Adherence returns the percentage of logged days whose consumed calories
// were within 10% of kcalTarget, and the number of days considered.
func Adherence(consumed []int, kcalTarget int) (pct float64, days int) {
	if len(consumed) == 0 {
		return 0, 0
	}
	limit := float64(kcalTarget) * adherenceTolerance
	onPlan := 0
	for _, kcal := range consumed {
		if math.Abs(float64(kcal-kcalTarget)) <= limit {
			onPlan++
		}
	}
	return float64(onPlan) / float64(len(consumed)) * 100, len(consumed)
}

// DefaultTrajectoryWeeks is the horizon of the dashboard's projected trend line.
const DefaultTrajectoryWeeks = 8

// TrajectoryPoint is the expected weight at a week boundary.
type TrajectoryPoint struct {
	Week     int     `json:"week"`
	Date     string  `json:"date"` // YYYY-MM-DD
	WeightKG float64 `json:"weight_kg"`
}

// Trajectory walks from startKG toward targetKG at weeklyRate for the given
// number of weeks. Point 0 is the start; weights stop at the target instead
// of overshooting it.
func Trajectory(start time.Time, startKG, targetKG, weeklyRate float64, weeks int) []TrajectoryPoint {
	if weeks < 0 {
		weeks = 0
	}
	dir := 1.0
	if targetKG < startKG {
		dir = -1
	}
	y, m, d := start.Date()
	points := make([]TrajectoryPoint, 0, weeks+1)
	for i := 0; i <= weeks; i++ {
		w := startKG + dir*weeklyRate*float64(i)
		if (dir < 0 && w < targetKG) || (dir > 0 && w > targetKG) {
			w = targetKG
		}
		points = append(points, TrajectoryPoint{
			Week:     i,
			Date:     time.Date(y, m, d+7*i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			WeightKG: roundTo(w, 1),
		})
	}
	return points
}
