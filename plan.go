package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lg/coach-api/internal/coach"
	"lg/coach-api/internal/logger"
)

// getModes returns the pacing mode catalog. GET /api/modes (public).
func (h *Handler) getModes(c *gin.Context) {
	c.JSON(http.StatusOK, coach.Modes())
}

// loadPlanProfile fetches the caller's profile and converts it for the
// engine, writing the error response itself when that is not possible.
func (h *Handler) loadPlanProfile(c *gin.Context) (profileRecord, coach.Profile, bool) {
	userID := c.GetInt("user_id")

	rec, err := h.profiles.Get(c, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			logger.Error("[loadPlanProfile] load failed", zap.Int("user_id", userID), zap.Error(err))
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return rec, coach.Profile{}, false
	}

	p, ok := rec.toProfile()
	if !ok {
		apiError(c, http.StatusUnprocessableEntity, "profile incomplete")
		return rec, coach.Profile{}, false
	}
	return rec, p, true
}

// planMode picks the ?mode= override or the stored mode. Unknown names are
// passed through; the engine resolves them to Moderado.
func planMode(c *gin.Context, rec profileRecord) string {
	if m := c.Query("mode"); m != "" {
		return m
	}
	return rec.Mode
}

// getPlan returns the full coaching plan for the stored profile.
// GET /api/plan?mode=Acelerado (mode optional).
func (h *Handler) getPlan(c *gin.Context) {
	rec, p, ok := h.loadPlanProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, coach.BuildPlan(p, planMode(c, rec), h.now()))
}

// previewPlan computes a plan for an ad-hoc profile without storing it.
// POST /api/plan/preview (public). Used by onboarding before sign-up.
func (h *Handler) previewPlan(c *gin.Context) {
	var body previewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.WeightKG <= 0 || body.HeightCM <= 0 {
		apiError(c, http.StatusBadRequest, "weight_kg and height_cm must be positive")
		return
	}
	if body.Age < 0 {
		apiError(c, http.StatusBadRequest, "age must not be negative")
		return
	}

	c.JSON(http.StatusOK, coach.BuildPlan(body.Profile, body.Mode, h.now()))
}

// getPlanHistory returns the nightly plan snapshots, newest first.
// GET /api/plan/history?limit=30.
func (h *Handler) getPlanHistory(c *gin.Context) {
	userID := c.GetInt("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit < 1 || limit > 365 {
		apiError(c, http.StatusBadRequest, "limit must be between 1 and 365")
		return
	}

	snaps, err := queryMany[planSnapshot](h.db, c,
		`SELECT * FROM coach_snapshots
		 WHERE user_id = @userID
		 ORDER BY date DESC
		 LIMIT @limit`,
		pgx.NamedArgs{"userID": userID, "limit": limit})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch plan history")
		return
	}
	if snaps == nil {
		snaps = []planSnapshot{}
	}

	c.JSON(http.StatusOK, snaps)
}

// estimateBurn estimates calories burned for an exercise session.
// POST /api/exercise/burn. weight_kg defaults to the stored profile weight.
func (h *Handler) estimateBurn(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body burnRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Minutes <= 0 || body.Minutes > 24*60 {
		apiError(c, http.StatusBadRequest, "minutes must be between 0 and 1440")
		return
	}

	weight := body.WeightKG
	if weight <= 0 {
		rec, err := h.profiles.Get(c, userID)
		if err != nil || rec.WeightKG == nil {
			apiError(c, http.StatusBadRequest, "weight_kg is required when the profile has no weight")
			return
		}
		weight = *rec.WeightKG
	}

	c.JSON(http.StatusOK, gin.H{
		"exercise":  body.Exercise,
		"minutes":   body.Minutes,
		"intensity": body.Intensity,
		"met":       coach.MET(body.Exercise, coach.Intensity(body.Intensity)),
		"calories":  coach.CaloriesBurned(weight, body.Exercise, body.Minutes, coach.Intensity(body.Intensity)),
	})
}
