package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	"lg/coach-api/internal/coach"
)

func TestNewSnapshot(t *testing.T) {
	rec := fullProfile(7)
	p, _ := rec.toProfile()
	plan := coach.BuildPlan(p, rec.Mode, testNow)

	got := newSnapshot(rec, p, plan, testNow)
	want := planSnapshot{
		UserID:        7,
		Date:          DateOnly{testNow},
		Mode:          coach.ModeAccelerated,
		WeightKG:      90,
		TDEE:          2914,
		DailyCalories: 2185,
		Weeks:         11.1,
		TargetDate:    "19 Mar 2026",
		WeeklyRate:    0.9,
	}
	if got != want {
		t.Errorf("newSnapshot() =\n  %+v\nwant\n  %+v", got, want)
	}
}

func TestSnapshotPlans_SkipsIncomplete(t *testing.T) {
	rec := fullProfile(1)
	rec.Gender = nil
	_, h := setupHandlerTest(newMemProfileStore(rec))

	written, failed, err := h.snapshotPlans(context.Background())
	if err != nil {
		t.Fatalf("snapshotPlans: %v", err)
	}
	if written != 0 || failed != 0 {
		t.Errorf("written/failed = %d/%d, want 0/0", written, failed)
	}
}

func TestSnapshotPlans_ListError(t *testing.T) {
	store := newMemProfileStore()
	store.err = errors.New("db down")
	_, h := setupHandlerTest(store)

	if _, _, err := h.snapshotPlans(context.Background()); err == nil {
		t.Error("expected an error when profiles cannot be listed")
	}
}

// memSnapshotStore records saved snapshots and fails for the listed users.
type memSnapshotStore struct {
	mu     sync.Mutex
	saved  []planSnapshot
	failOn map[int]bool
}

func (s *memSnapshotStore) Save(_ context.Context, snap planSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn[snap.UserID] {
		return errors.New("duplicate key value violates unique constraint")
	}
	s.saved = append(s.saved, snap)
	return nil
}

func TestSnapshotPlans_WritesEveryCompleteProfile(t *testing.T) {
	incomplete := fullProfile(2)
	incomplete.Goal = nil
	_, h := setupHandlerTest(newMemProfileStore(fullProfile(1), incomplete, fullProfile(3)))
	snaps := &memSnapshotStore{}
	h.snapshots = snaps

	written, failed, err := h.snapshotPlans(context.Background())
	if err != nil {
		t.Fatalf("snapshotPlans: %v", err)
	}
	if written != 2 || failed != 0 {
		t.Errorf("written/failed = %d/%d, want 2/0", written, failed)
	}
	if len(snaps.saved) != 2 || snaps.saved[0].UserID != 1 || snaps.saved[1].UserID != 3 {
		t.Errorf("saved = %+v", snaps.saved)
	}
}

// A failed write is counted and the users after it are still snapshotted.
func TestSnapshotPlans_ContinuesAfterFailedSave(t *testing.T) {
	_, h := setupHandlerTest(newMemProfileStore(fullProfile(1), fullProfile(2), fullProfile(3)))
	snaps := &memSnapshotStore{failOn: map[int]bool{1: true}}
	h.snapshots = snaps

	written, failed, err := h.snapshotPlans(context.Background())
	if err != nil {
		t.Fatalf("snapshotPlans: %v", err)
	}
	if written != 2 || failed != 1 {
		t.Errorf("written/failed = %d/%d, want 2/1", written, failed)
	}
	if len(snaps.saved) != 2 || snaps.saved[0].UserID != 2 || snaps.saved[1].UserID != 3 {
		t.Errorf("saved = %+v", snaps.saved)
	}
}

func TestStartSnapshotJob(t *testing.T) {
	_, h := setupHandlerTest(newMemProfileStore())

	if _, err := startSnapshotJob(h, "not a schedule"); err == nil {
		t.Error("expected an error for an invalid schedule")
	}

	job, err := startSnapshotJob(h, "@every 1h")
	if err != nil {
		t.Fatalf("startSnapshotJob: %v", err)
	}
	job.Stop()
}
