package rewards

import (
	"context"
	"testing"

	"github.com/abhisek/hearo/internal/store"
)

func TestRankForPoints(t *testing.T) {
	cases := []struct {
		points int
		rank   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{600, 4},
		{999, 4},
		{1000, 5},
		{5000, 5},
	}
	for _, c := range cases {
		if got := RankForPoints(c.points); got.Rank != c.rank {
			t.Errorf("RankForPoints(%d) = %d, want %d", c.points, got.Rank, c.rank)
		}
	}
}

func TestNextRank(t *testing.T) {
	if n := NextRank(RankTable[0]); n == nil || n.Rank != 2 {
		t.Errorf("NextRank(1) = %+v, want rank 2", n)
	}
	if n := NextRank(RankTable[len(RankTable)-1]); n != nil {
		t.Errorf("NextRank(top) = %+v, want nil", n)
	}
}

func TestRecordPerfect_ComboMilestones(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	if a := s.RecordPerfect(ctx, 1, "s1"); a.Points != PerfectPoints {
		t.Errorf("combo 1: points = %d, want %d", a.Points, PerfectPoints)
	}
	if a := s.RecordPerfect(ctx, 5, "s1"); a.Points != PerfectPoints+20 {
		t.Errorf("combo 5: points = %d, want %d", a.Points, PerfectPoints+20)
	}
	if a := s.RecordPerfect(ctx, 6, "s1"); a.Points != PerfectPoints {
		t.Errorf("combo 6: points = %d, want %d", a.Points, PerfectPoints)
	}
	if a := s.RecordPerfect(ctx, 10, "s1"); a.Points != PerfectPoints+50 {
		t.Errorf("combo 10: points = %d, want %d", a.Points, PerfectPoints+50)
	}
	if len(s.SessionAwards) != 4 {
		t.Errorf("SessionAwards = %d, want 4", len(s.SessionAwards))
	}
}

func TestRecordPerfect_RankUp(t *testing.T) {
	s := NewService(&store.SnapshotData{Rewards: &store.RewardsData{TotalPoints: 95}}, nil)
	a := s.RecordPerfect(context.Background(), 1, "s1")
	if a.RankUp == nil || a.RankUp.Rank != 2 {
		t.Fatalf("RankUp = %+v, want rank 2", a.RankUp)
	}
	if s.Rank().Rank != 2 {
		t.Errorf("Rank = %d, want 2", s.Rank().Rank)
	}
	// The next perfect stays within rank 2.
	if a := s.RecordPerfect(context.Background(), 2, "s1"); a.RankUp != nil {
		t.Errorf("RankUp = %+v within a rank, want nil", a.RankUp)
	}
}

func TestAwardPiece_CompletesArtifactAtTen(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()

	for i := 1; i <= 9; i++ {
		if a := s.AwardPiece(ctx, "s1"); a.ArtifactComplete {
			t.Fatalf("piece %d completed an artifact early", i)
		}
	}
	a := s.AwardPiece(ctx, "s1")
	if !a.ArtifactComplete || a.Type != AwardArtifact {
		t.Fatalf("tenth piece award = %+v, want completion", a)
	}
	if s.ArtifactPieces() != 0 || s.ArtifactsCompleted() != 1 {
		t.Errorf("pieces/completed = %d/%d, want 0/1", s.ArtifactPieces(), s.ArtifactsCompleted())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewService(nil, nil)
	ctx := context.Background()
	s.RecordPerfect(ctx, 1, "s1")
	s.AwardPiece(ctx, "s1")

	restored := NewService(&store.SnapshotData{Rewards: s.SnapshotData()}, nil)
	if restored.Points() != s.Points() ||
		restored.ArtifactPieces() != s.ArtifactPieces() ||
		restored.ArtifactsCompleted() != s.ArtifactsCompleted() {
		t.Errorf("restored = %+v vs %+v", restored.SnapshotData(), s.SnapshotData())
	}
}
