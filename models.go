package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/coach-api/internal/coach"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate lets pgx scan PostgreSQL date columns into DateOnly.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// profileRecord maps to coach_profiles, one row per user. Body fields are
// nullable so a freshly created user has a row before onboarding finishes.
type profileRecord struct {
	UserID         int        `json:"user_id"          db:"user_id"`
	Gender         *string    `json:"gender"           db:"gender"`
	Age            *int       `json:"age"              db:"age"`
	HeightCM       *float64   `json:"height_cm"        db:"height_cm"`
	WeightKG       *float64   `json:"weight_kg"        db:"weight_kg"`
	TargetWeightKG *float64   `json:"target_weight_kg" db:"target_weight_kg"`
	ActivityLevel  *string    `json:"activity_level"   db:"activity_level"`
	Goal           *string    `json:"goal"             db:"goal"`
	DietType       string     `json:"diet_type"        db:"diet_type"`
	Mode           string     `json:"mode"             db:"mode"`
	UpdatedAt      *time.Time `json:"updated_at"       db:"updated_at"`
}

// toProfile converts the record into an engine profile. ok is false while
// any field the calculations need is still missing.
func (r profileRecord) toProfile() (p coach.Profile, ok bool) {
	if r.Gender == nil || r.Age == nil || r.HeightCM == nil || r.WeightKG == nil ||
		r.TargetWeightKG == nil || r.ActivityLevel == nil || r.Goal == nil {
		return coach.Profile{}, false
	}
	if *r.HeightCM <= 0 || *r.WeightKG <= 0 {
		return coach.Profile{}, false
	}
	return coach.Profile{
		Gender:         coach.Gender(*r.Gender),
		Age:            *r.Age,
		HeightCM:       *r.HeightCM,
		WeightKG:       *r.WeightKG,
		TargetWeightKG: *r.TargetWeightKG,
		ActivityLevel:  coach.ActivityLevel(*r.ActivityLevel),
		Goal:           coach.Goal(*r.Goal),
		DietType:       coach.ParseDietType(r.DietType),
	}, true
}

// dailyLogEntry maps to coach_daily_log: one row per user per day with the
// morning weight and the calories eaten. Either may be missing.
type dailyLogEntry struct {
	ID           int        `json:"id"            db:"id"`
	UserID       int        `json:"user_id"       db:"user_id"`
	Date         DateOnly   `json:"date"          db:"date"`
	WeightKG     *float64   `json:"weight_kg"     db:"weight_kg"`
	CaloriesKcal *int       `json:"calories_kcal" db:"calories_kcal"`
	CreatedAt    *time.Time `json:"created_at"    db:"created_at"`
}

// planSnapshot maps to coach_snapshots, written by the nightly job so the
// dashboard can chart how the target date moves.
type planSnapshot struct {
	ID            int        `json:"id"             db:"id"`
	UserID        int        `json:"user_id"        db:"user_id"`
	Date          DateOnly   `json:"date"           db:"date"`
	Mode          string     `json:"mode"           db:"mode"`
	WeightKG      float64    `json:"weight_kg"      db:"weight_kg"`
	TDEE          int        `json:"tdee"           db:"tdee"`
	DailyCalories int        `json:"daily_calories" db:"daily_calories"`
	Weeks         float64    `json:"weeks"          db:"weeks"`
	TargetDate    string     `json:"target_date"    db:"target_date"`
	WeeklyRate    float64    `json:"weekly_rate"    db:"weekly_rate"`
	CreatedAt     *time.Time `json:"created_at"     db:"created_at"`
}

/* ─── Request / response shapes ──────────────────────────────────────── */

// patchProfileRequest is the body for PATCH /api/profile. Only non-nil
// fields are applied.
type patchProfileRequest struct {
	Gender         *string  `json:"gender"`
	Age            *int     `json:"age"`
	HeightCM       *float64 `json:"height_cm"`
	WeightKG       *float64 `json:"weight_kg"`
	TargetWeightKG *float64 `json:"target_weight_kg"`
	ActivityLevel  *string  `json:"activity_level"`
	Goal           *string  `json:"goal"`
	DietType       *string  `json:"diet_type"`
	Mode           *string  `json:"mode"`
}

// previewRequest is the body for POST /api/plan/preview.
type previewRequest struct {
	coach.Profile
	Mode string `json:"mode"`
}

// upsertDailyLogRequest is the body for POST /api/daily-log.
type upsertDailyLogRequest struct {
	Date         string   `json:"date"`
	WeightKG     *float64 `json:"weight_kg"`
	CaloriesKcal *int     `json:"calories_kcal"`
}

// burnRequest is the body for POST /api/exercise/burn.
type burnRequest struct {
	Exercise  string  `json:"exercise"`
	Minutes   float64 `json:"minutes"`
	Intensity string  `json:"intensity"`
	WeightKG  float64 `json:"weight_kg"` // optional; falls back to the stored profile
}

// adherenceResponse is the shape of GET /api/daily-log/adherence.
type adherenceResponse struct {
	Pct           float64 `json:"pct"`
	DaysLogged    int     `json:"days_logged"`
	DailyCalories int     `json:"daily_calories"`
	WindowDays    int     `json:"window_days"`
}
