package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron"
	"go.uber.org/zap"

	"lg/coach-api/internal/coach"
	"lg/coach-api/internal/logger"
)

// snapshotTimeout bounds one full snapshot run.
const snapshotTimeout = 5 * time.Minute

// newSnapshot flattens a plan into the row stored in coach_snapshots.
func newSnapshot(rec profileRecord, p coach.Profile, plan coach.Plan, today time.Time) planSnapshot {
	return planSnapshot{
		UserID:        rec.UserID,
		Date:          DateOnly{today},
		Mode:          plan.Mode.Name,
		WeightKG:      p.WeightKG,
		TDEE:          plan.Targets.TDEE,
		DailyCalories: plan.Projection.DailyCalories,
		Weeks:         plan.Projection.Weeks,
		TargetDate:    plan.Projection.TargetDate,
		WeeklyRate:    plan.Projection.WeeklyRate,
	}
}

// snapshotStore records one plan snapshot per user per day.
type snapshotStore interface {
	Save(ctx context.Context, s planSnapshot) error
}

// pgSnapshotStore is the Postgres snapshotStore.
type pgSnapshotStore struct {
	db *pgxpool.Pool
}

// snapshotPlans recomputes every complete profile's plan and records it for
// today. Incomplete profiles are skipped and a failed write is logged and
// skipped, so one bad row never blocks the users after it. err is set only
// when the profiles cannot be listed.
func (h *Handler) snapshotPlans(ctx context.Context) (written, failed int, err error) {
	recs, err := h.profiles.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	today := h.now()
	for _, rec := range recs {
		p, ok := rec.toProfile()
		if !ok {
			continue
		}
		snap := newSnapshot(rec, p, coach.BuildPlan(p, rec.Mode, today), today)
		if err := h.snapshots.Save(ctx, snap); err != nil {
			logger.Error("[snapshotPlans] save failed", zap.Int("user_id", rec.UserID), zap.Error(err))
			failed++
			continue
		}
		written++
	}
	return written, failed, nil
}

// Save upserts on (user_id, date) so a rerun on the same day replaces the
// earlier row.
func (s *pgSnapshotStore) Save(ctx context.Context, snap planSnapshot) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO coach_snapshots
			(user_id, date, mode, weight_kg, tdee, daily_calories, weeks, target_date, weekly_rate)
		 VALUES
			(@userID, @date, @mode, @weightKG, @tdee, @dailyCalories, @weeks, @targetDate, @weeklyRate)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			mode           = EXCLUDED.mode,
			weight_kg      = EXCLUDED.weight_kg,
			tdee           = EXCLUDED.tdee,
			daily_calories = EXCLUDED.daily_calories,
			weeks          = EXCLUDED.weeks,
			target_date    = EXCLUDED.target_date,
			weekly_rate    = EXCLUDED.weekly_rate`,
		pgx.NamedArgs{
			"userID":        snap.UserID,
			"date":          snap.Date.Format("2006-01-02"),
			"mode":          snap.Mode,
			"weightKG":      snap.WeightKG,
			"tdee":          snap.TDEE,
			"dailyCalories": snap.DailyCalories,
			"weeks":         snap.Weeks,
			"targetDate":    snap.TargetDate,
			"weeklyRate":    snap.WeeklyRate,
		})
	if err != nil {
		return fmt.Errorf("save snapshot user %d: %w", snap.UserID, err)
	}
	return nil
}

// startSnapshotJob schedules snapshotPlans on the given cron schedule
// (e.g. "@daily" or "0 30 4 * * *") and starts the scheduler.
func startSnapshotJob(h *Handler, schedule string) (*cron.Cron, error) {
	c := cron.New()
	err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		written, failed, err := h.snapshotPlans(ctx)
		if err != nil {
			logger.Error("[snapshotJob] run failed", zap.Error(err))
			return
		}
		if failed > 0 {
			logger.Warn("[snapshotJob] run finished with failures",
				zap.Int("written", written), zap.Int("failed", failed))
			return
		}
		logger.Info("[snapshotJob] run complete", zap.Int("written", written))
	})
	if err != nil {
		return nil, fmt.Errorf("schedule %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}
