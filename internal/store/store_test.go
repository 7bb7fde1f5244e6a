package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, SnapshotData{
		Version: 1,
		Progress: &ProgressData{
			TotalPerfects:         12,
			TotalTrainingSessions: 3,
			ConsecutiveDays:       2,
			AverageAccuracy:       85,
			LastTrainingDate:      "2026-03-09",
		},
		Mastery: &MasteryData{MasteredWords: []string{"나비", "사과"}},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.Progress == nil || snap.Data.Progress.TotalPerfects != 12 {
		t.Errorf("Progress = %+v", snap.Data.Progress)
	}
	if snap.Data.Mastery == nil || len(snap.Data.Mastery.MasteredWords) != 2 {
		t.Errorf("Mastery = %+v", snap.Data.Mastery)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "s1",
		Action:     "start",
		Mode:       "catch",
		Difficulty: "normal",
		Speed:      "normal",
		SetNumber:  1,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendResponseEvent(ctx, ResponseEventData{
		SessionID:    "s1",
		Mode:         "catch",
		StimulusKind: "sound",
		Stimulus:     "삐",
		Tier:         "perfect",
		ElapsedMs:    120,
		Points:       100,
		Combo:        1,
	})
	if err != nil {
		t.Fatalf("append response: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "s1",
		Action:     "end",
		Mode:       "catch",
		Difficulty: "normal",
		Speed:      "normal",
		SetNumber:  1,
		Questions:  10,
		Perfects:   7,
		TotalScore: 850,
		MaxCombo:   4,
		Accuracy:   0.7,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	// Only "end" events appear in summaries.
	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Perfects != 7 {
		t.Fatalf("summaries = %+v", summaries)
	}

	counts, err := repo.TierCounts(ctx)
	if err != nil {
		t.Fatalf("tier counts: %v", err)
	}
	if counts["perfect"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRewardEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rank := 2
	err := repo.AppendRewardEvent(ctx, RewardEventData{
		AwardType: "perfect",
		Points:    30,
		Reason:    "5연속 콤보!",
		SessionID: "s1",
		NewRank:   &rank,
	})
	if err != nil {
		t.Fatalf("append reward: %v", err)
	}

	events, err := repo.QueryRewardEvents(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query rewards: %v", err)
	}
	if len(events) != 1 || events[0].NewRank == nil || *events[0].NewRank != 2 {
		t.Fatalf("events = %+v", events)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	t.Setenv("HEARO_DB", t.TempDir()+"/custom/hearo.db")
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p == "" || p[len(p)-len("hearo.db"):] != "hearo.db" {
		t.Errorf("path = %q", p)
	}
}
