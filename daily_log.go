package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lg/coach-api/internal/coach"
	"lg/coach-api/internal/logger"
)

const defaultAdherenceDays = 7

// getDailyLog returns daily log entries for the authenticated user within [start, end].
// GET /api/daily-log?start=YYYY-MM-DD&end=YYYY-MM-DD. Both params required.
func (h *Handler) getDailyLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}

	entries, err := queryMany[dailyLogEntry](h.db, c,
		`SELECT * FROM coach_daily_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch daily log")
		return
	}
	if entries == nil {
		entries = []dailyLogEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// validateDailyLog checks an upsert body. At least one measurement is required.
func validateDailyLog(b upsertDailyLogRequest) string {
	if b.Date == "" {
		return "date is required"
	}
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return "invalid date, expected YYYY-MM-DD"
	}
	if b.WeightKG == nil && b.CaloriesKcal == nil {
		return "weight_kg or calories_kcal is required"
	}
	if b.WeightKG != nil && (*b.WeightKG <= 0 || *b.WeightKG > 600) {
		return "weight_kg must be between 0 and 600"
	}
	if b.CaloriesKcal != nil && (*b.CaloriesKcal < 0 || *b.CaloriesKcal > 20000) {
		return "calories_kcal must be between 0 and 20000"
	}
	return ""
}

// upsertDailyLog creates or updates the entry for the given date.
// POST /api/daily-log. Body: { "date": "YYYY-MM-DD", "weight_kg"?: 82.4, "calories_kcal"?: 2100 }.
// Omitted fields keep their stored values. A weight logged for today or later
// also becomes the profile's current weight, so the plan follows the scale.
func (h *Handler) upsertDailyLog(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body upsertDailyLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateDailyLog(body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	entry, err := queryOne[dailyLogEntry](h.db, c,
		`INSERT INTO coach_daily_log (user_id, date, weight_kg, calories_kcal)
		 VALUES (@userID, @date, @weightKG, @calories)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			weight_kg     = COALESCE(EXCLUDED.weight_kg, coach_daily_log.weight_kg),
			calories_kcal = COALESCE(EXCLUDED.calories_kcal, coach_daily_log.calories_kcal)
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "date": body.Date, "weightKG": body.WeightKG, "calories": body.CaloriesKcal})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to upsert daily log entry")
		return
	}

	if body.WeightKG != nil && body.Date >= h.now().Format("2006-01-02") {
		h.syncProfileWeight(c, userID, *body.WeightKG)
	}

	c.JSON(http.StatusCreated, entry)
}

// syncProfileWeight copies a fresh weigh-in onto the profile. Failures are
// logged only; the log entry itself was already stored.
func (h *Handler) syncProfileWeight(c *gin.Context, userID int, weightKG float64) {
	rec, err := h.profiles.Get(c, userID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			logger.Warn("[syncProfileWeight] load failed", zap.Int("user_id", userID), zap.Error(err))
		}
		return
	}
	rec.WeightKG = &weightKG
	if _, err := h.profiles.Save(c, rec); err != nil {
		logger.Warn("[syncProfileWeight] save failed", zap.Int("user_id", userID), zap.Error(err))
	}
}

// deleteDailyLog removes a daily log entry by ID.
// DELETE /api/daily-log/:id. Returns 204 on success, 404 if not found.
func (h *Handler) deleteDailyLog(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.db.Exec(c,
		"DELETE FROM coach_daily_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		logger.Error("[deleteDailyLog] delete failed", zap.Int("user_id", userID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to delete daily log entry")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "daily log entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// getAdherence reports how many of the last N logged days landed within 10%
// of the plan's daily calories. GET /api/daily-log/adherence?days=7.
func (h *Handler) getAdherence(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultAdherenceDays)))
	if err != nil || days < 1 || days > 90 {
		apiError(c, http.StatusBadRequest, "days must be between 1 and 90")
		return
	}

	rec, p, ok := h.loadPlanProfile(c)
	if !ok {
		return
	}
	today := h.now()
	plan := coach.BuildPlan(p, rec.Mode, today)

	start := today.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
	rows, err := h.db.Query(c,
		`SELECT calories_kcal FROM coach_daily_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		   AND calories_kcal IS NOT NULL
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": rec.UserID, "start": start, "end": today.Format("2006-01-02")})
	if err != nil {
		logger.Error("[getAdherence] query failed", zap.Int("user_id", rec.UserID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch daily log")
		return
	}
	consumed, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		logger.Error("[getAdherence] scan failed", zap.Int("user_id", rec.UserID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch daily log")
		return
	}

	pct, logged := coach.Adherence(consumed, plan.Projection.DailyCalories)
	c.JSON(http.StatusOK, adherenceResponse{
		Pct:           pct,
		DaysLogged:    logged,
		DailyCalories: plan.Projection.DailyCalories,
		WindowDays:    days,
	})
}
