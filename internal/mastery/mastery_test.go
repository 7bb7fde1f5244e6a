package mastery

import (
	"testing"

	"github.com/abhisek/hearo/internal/store"
)

func TestRecord_AddOnly(t *testing.T) {
	s := NewService(nil)

	if !s.Record("나비") {
		t.Fatal("first correct answer should be new")
	}
	if s.Record("나비") {
		t.Fatal("repeat answer reported as new")
	}
	if s.Record("") {
		t.Fatal("empty word recorded")
	}
	if !s.IsMastered("나비") || s.Count() != 1 {
		t.Errorf("ledger = %v", s.Words())
	}
}

func TestStageThresholds(t *testing.T) {
	cases := []struct {
		count int
		want  Stage
	}{
		{0, StageSeedling},
		{24, StageSeedling},
		{25, StageSapling},
		{49, StageSapling},
		{50, StageTree},
		{79, StageTree},
		{80, StageGolden},
		{200, StageGolden},
	}
	for _, c := range cases {
		if got := StageFor(c.count); got != c.want {
			t.Errorf("StageFor(%d) = %s, want %s", c.count, got, c.want)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewService(nil)
	s.Record("나비")
	s.Record("사과")

	restored := NewService(&store.SnapshotData{Mastery: s.SnapshotData()})
	if restored.Count() != 2 || !restored.IsMastered("사과") {
		t.Errorf("restored ledger = %v", restored.Words())
	}
	// Exported words are sorted for stable snapshots.
	words := restored.Words()
	if len(words) != 2 || words[0] > words[1] {
		t.Errorf("Words() = %v, want sorted", words)
	}
}
