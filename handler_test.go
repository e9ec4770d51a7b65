package main

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"lg/coach-api/internal/coach"
)

// testNow pins "today" so target dates and trajectories are deterministic.
var testNow = time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)

// memProfileStore is an in-memory profileStore for handler tests.
type memProfileStore struct {
	mu   sync.Mutex
	recs map[int]profileRecord
	err  error // returned from every call when set
}

func newMemProfileStore(recs ...profileRecord) *memProfileStore {
	s := &memProfileStore{recs: make(map[int]profileRecord)}
	for _, r := range recs {
		s.recs[r.UserID] = r
	}
	return s
}

func (s *memProfileStore) Get(_ context.Context, userID int) (profileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return profileRecord{}, s.err
	}
	rec, ok := s.recs[userID]
	if !ok {
		return profileRecord{}, ErrProfileNotFound
	}
	return rec, nil
}

func (s *memProfileStore) Save(_ context.Context, rec profileRecord) (profileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return profileRecord{}, s.err
	}
	now := testNow
	rec.UpdatedAt = &now
	s.recs[rec.UserID] = rec
	return rec, nil
}

func (s *memProfileStore) List(_ context.Context) ([]profileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]profileRecord, 0, len(s.recs))
	for _, r := range s.recs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// fullProfile is the reference profile: 30 y/o male, 180 cm, 90 → 80 kg,
// moderately active, cutting on Keto at Acelerado.
func fullProfile(userID int) profileRecord {
	gender, age, height, weight, target := "M", 30, 180.0, 90.0, 80.0
	act, goal := string(coach.ActivityModerate), string(coach.GoalCut)
	return profileRecord{
		UserID:         userID,
		Gender:         &gender,
		Age:            &age,
		HeightCM:       &height,
		WeightKG:       &weight,
		TargetWeightKG: &target,
		ActivityLevel:  &act,
		Goal:           &goal,
		DietType:       string(coach.DietKeto),
		Mode:           coach.ModeAccelerated,
	}
}

// setupHandlerTest builds a router with every route registered and auth
// replaced by a middleware that sets user_id = 1. No DB is attached, so only
// handlers that stay on the profile store (or fail validation first) can run.
func setupHandlerTest(store profileStore) (*gin.Engine, *Handler) {
	gin.SetMode(gin.TestMode)
	h := &Handler{profiles: store, now: func() time.Time { return testNow }}
	router := gin.New()
	h.registerRoutes(router, func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	})
	return router, h
}

// doRequest sends a request with an optional JSON body.
func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
