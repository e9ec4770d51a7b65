package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProfileNotFound is returned when a user has no coach_profiles row.
var ErrProfileNotFound = errors.New("profile not found")

// profileStore persists one profileRecord per user id.
type profileStore interface {
	Get(ctx context.Context, userID int) (profileRecord, error)
	Save(ctx context.Context, rec profileRecord) (profileRecord, error)
	List(ctx context.Context) ([]profileRecord, error)
}

// pgProfileStore is the Postgres profileStore.
type pgProfileStore struct {
	db *pgxpool.Pool
}

func (s *pgProfileStore) Get(ctx context.Context, userID int) (profileRecord, error) {
	rec, err := queryOne[profileRecord](s.db, ctx,
		"SELECT * FROM coach_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, ErrProfileNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("get profile %d: %w", userID, err)
	}
	return rec, nil
}

// Save writes every column of rec, creating the row if needed.
func (s *pgProfileStore) Save(ctx context.Context, rec profileRecord) (profileRecord, error) {
	saved, err := queryOne[profileRecord](s.db, ctx,
		`INSERT INTO coach_profiles
			(user_id, gender, age, height_cm, weight_kg, target_weight_kg,
			 activity_level, goal, diet_type, mode, updated_at)
		 VALUES
			(@userID, @gender, @age, @heightCM, @weightKG, @targetWeightKG,
			 @activityLevel, @goal, @dietType, @mode, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			gender           = EXCLUDED.gender,
			age              = EXCLUDED.age,
			height_cm        = EXCLUDED.height_cm,
			weight_kg        = EXCLUDED.weight_kg,
			target_weight_kg = EXCLUDED.target_weight_kg,
			activity_level   = EXCLUDED.activity_level,
			goal             = EXCLUDED.goal,
			diet_type        = EXCLUDED.diet_type,
			mode             = EXCLUDED.mode,
			updated_at       = now()
		 RETURNING *`,
		pgx.NamedArgs{
			"userID":         rec.UserID,
			"gender":         rec.Gender,
			"age":            rec.Age,
			"heightCM":       rec.HeightCM,
			"weightKG":       rec.WeightKG,
			"targetWeightKG": rec.TargetWeightKG,
			"activityLevel":  rec.ActivityLevel,
			"goal":           rec.Goal,
			"dietType":       rec.DietType,
			"mode":           rec.Mode,
		})
	if err != nil {
		return saved, fmt.Errorf("save profile %d: %w", rec.UserID, err)
	}
	return saved, nil
}

func (s *pgProfileStore) List(ctx context.Context) ([]profileRecord, error) {
	recs, err := queryMany[profileRecord](s.db, ctx,
		"SELECT * FROM coach_profiles ORDER BY user_id", nil)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return recs, nil
}
