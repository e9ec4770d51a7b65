package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/coach-api/internal/coach"
	"lg/coach-api/internal/logger"
)

// profileResponse is a stored profile plus its metabolic summary once every
// required field is present.
type profileResponse struct {
	profileRecord
	Complete bool           `json:"complete"`
	Targets  *coach.Targets `json:"targets,omitempty"`
}

func newProfileResponse(rec profileRecord) profileResponse {
	resp := profileResponse{profileRecord: rec}
	if p, ok := rec.toProfile(); ok {
		t := coach.CalculateTargets(p)
		resp.Complete = true
		resp.Targets = &t
	}
	return resp
}

// getProfile returns the authenticated user's profile.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	rec, err := h.profiles.Get(c, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			apiError(c, http.StatusNotFound, "profile not found")
			return
		}
		logger.Error("[getProfile] load failed", zap.Int("user_id", userID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(rec))
}

// patchProfile updates only the provided profile fields, creating the
// profile on first write. PATCH /api/profile.
//
// Enum fields are validated here even though the engine tolerates unknown
// values: a typo stored now would silently turn into a default forever.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateProfilePatch(body); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.profiles.Get(c, userID)
	switch {
	case errors.Is(err, ErrProfileNotFound):
		rec = profileRecord{UserID: userID, DietType: string(coach.DietStandard), Mode: coach.DefaultMode}
	case err != nil:
		logger.Error("[patchProfile] load failed", zap.Int("user_id", userID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	if !applyProfilePatch(&rec, body) {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	saved, err := h.profiles.Save(c, rec)
	if err != nil {
		logger.Error("[patchProfile] save failed", zap.Int("user_id", userID), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(saved))
}

// validateProfilePatch checks ranges and enum membership of the provided fields.
func validateProfilePatch(b patchProfileRequest) error {
	if b.Gender != nil && *b.Gender != string(coach.GenderMale) && *b.Gender != string(coach.GenderFemale) {
		return errors.New("gender must be one of: M, F")
	}
	if b.Age != nil && (*b.Age < 0 || *b.Age > 130) {
		return errors.New("age must be between 0 and 130")
	}
	if b.HeightCM != nil && (*b.HeightCM <= 0 || *b.HeightCM > 300) {
		return errors.New("height_cm must be between 0 and 300")
	}
	if b.WeightKG != nil && (*b.WeightKG <= 0 || *b.WeightKG > 600) {
		return errors.New("weight_kg must be between 0 and 600")
	}
	if b.TargetWeightKG != nil && (*b.TargetWeightKG <= 0 || *b.TargetWeightKG > 600) {
		return errors.New("target_weight_kg must be between 0 and 600")
	}
	if b.ActivityLevel != nil && !coach.ActivityLevel(*b.ActivityLevel).Valid() {
		return fmt.Errorf("activity_level must be one of: %s", joinValues(coach.ActivityLevels))
	}
	if b.Goal != nil && !coach.Goal(*b.Goal).Valid() {
		return fmt.Errorf("goal must be one of: %s", joinValues(coach.Goals))
	}
	if b.DietType != nil && !coach.DietType(*b.DietType).Valid() {
		return fmt.Errorf("diet_type must be one of: %s", joinValues(coach.DietTypes))
	}
	if b.Mode != nil && !coach.IsMode(*b.Mode) {
		return errors.New("mode must be one of: Acelerado, Moderado, Conservador")
	}
	return nil
}

// applyProfilePatch copies the non-nil fields of b onto rec and reports
// whether anything was provided.
func applyProfilePatch(rec *profileRecord, b patchProfileRequest) bool {
	changed := false
	set := func(dst **string, v *string) {
		if v != nil {
			*dst = v
			changed = true
		}
	}
	setF := func(dst **float64, v *float64) {
		if v != nil {
			*dst = v
			changed = true
		}
	}

	set(&rec.Gender, b.Gender)
	set(&rec.ActivityLevel, b.ActivityLevel)
	set(&rec.Goal, b.Goal)
	setF(&rec.HeightCM, b.HeightCM)
	setF(&rec.WeightKG, b.WeightKG)
	setF(&rec.TargetWeightKG, b.TargetWeightKG)
	if b.Age != nil {
		rec.Age = b.Age
		changed = true
	}
	if b.DietType != nil {
		rec.DietType = *b.DietType
		changed = true
	}
	if b.Mode != nil {
		rec.Mode = *b.Mode
		changed = true
	}
	return changed
}

func joinValues[T ~string](vals []T) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
