package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lg/coach-api/internal/coach"
)

/* ─── GET /api/modes ─────────────────────────────────────────────────── */

func TestGetModes(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore())

	w := doRequest(router, "GET", "/api/modes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var modes []coach.ModeConfig
	if err := json.Unmarshal(w.Body.Bytes(), &modes); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(modes) != 3 {
		t.Fatalf("expected 3 modes, got %d", len(modes))
	}
	if modes[0].Name != coach.ModeAccelerated || modes[0].DeficitPct != 0.25 {
		t.Errorf("first mode = %+v", modes[0])
	}
}

/* ─── GET /api/plan ──────────────────────────────────────────────────── */

func TestGetPlan_StoredMode(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore(fullProfile(1)))

	w := doRequest(router, "GET", "/api/plan", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var plan coach.Plan
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if plan.Mode.Name != coach.ModeAccelerated {
		t.Errorf("mode = %q, want %q", plan.Mode.Name, coach.ModeAccelerated)
	}
	if plan.Projection.DailyCalories != 2185 {
		t.Errorf("daily calories = %d, want 2185", plan.Projection.DailyCalories)
	}
	if plan.Projection.TargetDate != "19 Mar 2026" {
		t.Errorf("target date = %q, want 19 Mar 2026", plan.Projection.TargetDate)
	}
	want := coach.MacroBreakdown{ProteinG: 162, FatG: 153, CarbsG: 40, KcalTarget: 2185, DietType: coach.DietKeto}
	if plan.Macros != want {
		t.Errorf("macros = %+v, want %+v", plan.Macros, want)
	}
}

func TestGetPlan_QueryModeOverrides(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore(fullProfile(1)))

	w := doRequest(router, "GET", "/api/plan?mode=Conservador", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var plan coach.Plan
	json.Unmarshal(w.Body.Bytes(), &plan)
	if plan.Mode.Name != coach.ModeConservative {
		t.Errorf("mode = %q, want %q", plan.Mode.Name, coach.ModeConservative)
	}
}

func TestGetPlan_UnknownModeFallsBack(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore(fullProfile(1)))

	w := doRequest(router, "GET", "/api/plan?mode=Turbo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var plan coach.Plan
	json.Unmarshal(w.Body.Bytes(), &plan)
	if plan.Mode.Name != coach.ModeModerate {
		t.Errorf("mode = %q, want %q", plan.Mode.Name, coach.ModeModerate)
	}
}

func TestGetPlan_IncompleteProfile(t *testing.T) {
	rec := fullProfile(1)
	rec.Goal = nil
	router, _ := setupHandlerTest(newMemProfileStore(rec))

	w := doRequest(router, "GET", "/api/plan", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetPlan_NoProfile(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore())

	w := doRequest(router, "GET", "/api/plan", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetPlan_StoreError(t *testing.T) {
	store := newMemProfileStore(fullProfile(1))
	store.err = errors.New("connection reset")
	router, _ := setupHandlerTest(store)

	w := doRequest(router, "GET", "/api/plan", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

/* ─── POST /api/plan/preview ─────────────────────────────────────────── */

func TestPreviewPlan(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore())

	body := `{"gender":"M","age":30,"height_cm":180,"weight_kg":90,"target_weight_kg":80,
		"activity_level":"Moderado","goal":"Definir","diet_type":"Estándar","mode":"Acelerado"}`
	w := doRequest(router, "POST", "/api/plan/preview", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var plan coach.Plan
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if plan.Targets.TDEE != 2914 {
		t.Errorf("tdee = %d, want 2914", plan.Targets.TDEE)
	}
	if plan.Projection.WeeklyRate != 0.9 {
		t.Errorf("weekly rate = %v, want 0.9", plan.Projection.WeeklyRate)
	}
	want := []string{coach.WarnRateCapped, coach.WarnDeepDeficit}
	if len(plan.Projection.Warnings) != 2 || plan.Projection.Warnings[0] != want[0] || plan.Projection.Warnings[1] != want[1] {
		t.Errorf("warnings = %v, want %v", plan.Projection.Warnings, want)
	}
}

func TestPreviewPlan_Validation(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore())

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"gender":`},
		{"zero weight", `{"gender":"M","age":30,"height_cm":180,"weight_kg":0,"target_weight_kg":80}`},
		{"zero height", `{"gender":"M","age":30,"height_cm":0,"weight_kg":90,"target_weight_kg":80}`},
		{"negative age", `{"gender":"M","age":-1,"height_cm":180,"weight_kg":90,"target_weight_kg":80}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/plan/preview", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

/* ─── GET /api/plan/history ──────────────────────────────────────────── */

func TestGetPlanHistory_InvalidLimit(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore())

	for _, q := range []string{"0", "366", "abc"} {
		w := doRequest(router, "GET", "/api/plan/history?limit="+q, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", q, w.Code)
		}
	}
}

/* ─── POST /api/exercise/burn ────────────────────────────────────────── */

func TestEstimateBurn(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore(fullProfile(1)))

	cases := []struct {
		name     string
		body     string
		wantCode int
		wantKcal int
	}{
		// 9.5 MET × 80 kg × 0.5 h
		{"explicit weight", `{"exercise":"Correr","minutes":30,"intensity":"Alta","weight_kg":80}`, 200, 380},
		// 9.5 × 90 × 0.5 = 427.5, rounds half to even
		{"profile weight", `{"exercise":"Correr","minutes":30,"intensity":"Alta"}`, 200, 428},
		// unknown exercise uses the Cardio row: 6 × 80 × 1
		{"unknown exercise", `{"exercise":"Escalada","minutes":60,"intensity":"Media","weight_kg":80}`, 200, 480},
		{"zero minutes", `{"exercise":"Correr","minutes":0,"intensity":"Alta"}`, 400, 0},
		{"malformed", `{"exercise":`, 400, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/exercise/burn", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			if tc.wantCode != http.StatusOK {
				return
			}
			var resp struct {
				Calories int `json:"calories"`
			}
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Calories != tc.wantKcal {
				t.Errorf("calories = %d, want %d", resp.Calories, tc.wantKcal)
			}
		})
	}
}

func TestEstimateBurn_NoWeightAnywhere(t *testing.T) {
	router, _ := setupHandlerTest(newMemProfileStore())

	w := doRequest(router, "POST", "/api/exercise/burn", `{"exercise":"Yoga","minutes":45,"intensity":"Baja"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

/* ─── CORS ───────────────────────────────────────────────────────────── */

func TestNewServer_CORS(t *testing.T) {
	h := &Handler{profiles: newMemProfileStore(), now: func() time.Time { return testNow }}
	srv := newServer(h, []string{"*"})

	req := httptest.NewRequest("GET", "/api/modes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
