package progress

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/abhisek/hearo/internal/store"
)

var day1 = time.Date(2026, 3, 9, 20, 0, 0, 0, time.Local)

func TestRecordSession_AccumulatesAndAverages(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	if _, err := s.RecordSession(ctx, 5, 80, day1); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if s.TotalPerfects() != 5 || s.TotalTrainingSessions() != 1 {
		t.Fatalf("perfects/sessions = %d/%d", s.TotalPerfects(), s.TotalTrainingSessions())
	}
	if s.AverageAccuracy() != 80 {
		t.Fatalf("average = %v, want 80", s.AverageAccuracy())
	}

	// Second session: weighted mean of 80 and 60.
	if _, err := s.RecordSession(ctx, 3, 60, day1.Add(time.Hour)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if math.Abs(s.AverageAccuracy()-70) > 1e-9 {
		t.Errorf("average = %v, want 70", s.AverageAccuracy())
	}
	if s.TotalPerfects() != 8 {
		t.Errorf("totalPerfects = %d, want 8", s.TotalPerfects())
	}
}

func TestRecordSession_LevelTransition(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	tr, err := s.RecordSession(ctx, 9, 100, day1)
	if err != nil || tr != nil {
		t.Fatalf("transition = %+v, err = %v; want none below threshold", tr, err)
	}

	// Crossing 10 total perfects reaches level 2.
	tr, err = s.RecordSession(ctx, 1, 100, day1)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if tr == nil || tr.From.Level != 1 || tr.To.Level != 2 {
		t.Fatalf("transition = %+v, want 1 -> 2", tr)
	}

	// Staying within the level reports nothing.
	tr, _ = s.RecordSession(ctx, 1, 100, day1)
	if tr != nil {
		t.Errorf("transition = %+v within a level, want nil", tr)
	}
}

func TestConsecutiveDays(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	s.RecordSession(ctx, 1, 100, day1)
	if s.ConsecutiveDays() != 1 {
		t.Fatalf("streak = %d after first session, want 1", s.ConsecutiveDays())
	}

	// Same day: no increment.
	s.RecordSession(ctx, 1, 100, day1.Add(2*time.Hour))
	if s.ConsecutiveDays() != 1 {
		t.Fatalf("streak = %d same day, want 1", s.ConsecutiveDays())
	}

	// Next day increments.
	s.RecordSession(ctx, 1, 100, day1.AddDate(0, 0, 1))
	if s.ConsecutiveDays() != 2 {
		t.Fatalf("streak = %d next day, want 2", s.ConsecutiveDays())
	}

	// A week-long gap still adds one day rather than resetting.
	s.RecordSession(ctx, 1, 100, day1.AddDate(0, 0, 8))
	if s.ConsecutiveDays() != 3 {
		t.Errorf("streak = %d after gap, want 3", s.ConsecutiveDays())
	}
}

type failingSaver struct{ err error }

func (f failingSaver) Save(context.Context) error { return f.err }

func TestRecordSession_KeepsMemoryOnSaveFailure(t *testing.T) {
	saveErr := errors.New("disk full")
	s := NewService(nil, failingSaver{err: saveErr})

	_, err := s.RecordSession(context.Background(), 4, 90, day1)
	if !errors.Is(err, saveErr) {
		t.Fatalf("err = %v, want wrapped save failure", err)
	}
	// Optimistic update: the in-memory ledger moved on.
	if s.TotalPerfects() != 4 || s.TotalTrainingSessions() != 1 {
		t.Errorf("ledger rolled back on save failure: %d perfects, %d sessions",
			s.TotalPerfects(), s.TotalTrainingSessions())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()
	s.RecordSession(ctx, 12, 85, day1)
	s.RecordSession(ctx, 3, 95, day1.AddDate(0, 0, 1))

	restored := NewService(&store.SnapshotData{Progress: s.SnapshotData()}, nil)
	if restored.TotalPerfects() != s.TotalPerfects() ||
		restored.TotalTrainingSessions() != s.TotalTrainingSessions() ||
		restored.ConsecutiveDays() != s.ConsecutiveDays() ||
		restored.AverageAccuracy() != s.AverageAccuracy() ||
		restored.LastTrainingDate() != s.LastTrainingDate() {
		t.Errorf("restored ledger differs: %+v vs %+v", restored.SnapshotData(), s.SnapshotData())
	}
	if restored.Level().Level != 2 {
		t.Errorf("restored level = %d, want 2", restored.Level().Level)
	}
}
