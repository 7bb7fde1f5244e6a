// Package rewards manages discrimination-mode reward points, the listening
// rank ladder and artifact-piece collection.
package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/hearo/internal/store"
)

const (
	// PerfectPoints is earned per perfect discrimination answer.
	PerfectPoints = 10

	// Combo milestones add on top of the per-answer points.
	comboSmallThreshold = 5
	comboSmallBonus     = 20
	comboLargeThreshold = 10
	comboLargeBonus     = 50

	// ArtifactPiecesNeeded completes one artifact and resets the count.
	ArtifactPiecesNeeded = 10
)

// AwardType distinguishes the reward events.
type AwardType string

const (
	AwardPerfect  AwardType = "perfect"
	AwardCombo    AwardType = "combo"
	AwardPiece    AwardType = "piece"
	AwardArtifact AwardType = "artifact"
)

// Award is one reward granted during a session.
type Award struct {
	Type      AwardType
	Points    int
	Reason    string
	SessionID string
	AwardedAt time.Time

	// RankUp is set when the award pushed total points over a rank
	// threshold.
	RankUp *Rank
	// ArtifactComplete is set when a piece finished an artifact.
	ArtifactComplete bool
}

// Service tracks reward points and artifact pieces across sessions.
type Service struct {
	eventRepo store.EventRepo

	points             int
	artifactPieces     int
	artifactsCompleted int

	// SessionAwards accumulates awards granted during the current session.
	SessionAwards []Award
}

// NewService creates a rewards service, loading totals from the snapshot.
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{eventRepo: eventRepo}
	if snap == nil || snap.Rewards == nil {
		return s
	}
	r := snap.Rewards
	s.points = r.TotalPoints
	s.artifactPieces = r.ArtifactPieces
	s.artifactsCompleted = r.ArtifactsCompleted
	return s
}

func (s *Service) Points() int             { return s.points }
func (s *Service) ArtifactPieces() int     { return s.artifactPieces }
func (s *Service) ArtifactsCompleted() int { return s.artifactsCompleted }

// Rank returns the current ladder rank for the accumulated points.
func (s *Service) Rank() Rank { return RankForPoints(s.points) }

// ResetSession clears the session award accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionAwards = nil
}

// RecordPerfect grants the per-answer points plus any combo milestone bonus
// the new combo value just reached. Returns the award; RankUp is set when a
// threshold was crossed.
func (s *Service) RecordPerfect(ctx context.Context, combo int, sessionID string) *Award {
	points := PerfectPoints
	reason := "정확한 판별"
	switch combo {
	case comboSmallThreshold:
		points += comboSmallBonus
		reason = fmt.Sprintf("%d연속 콤보!", combo)
	case comboLargeThreshold:
		points += comboLargeBonus
		reason = fmt.Sprintf("%d연속 콤보!", combo)
	}

	oldRank := RankForPoints(s.points)
	s.points += points
	newRank := RankForPoints(s.points)

	award := &Award{
		Type:      AwardPerfect,
		Points:    points,
		Reason:    reason,
		SessionID: sessionID,
		AwardedAt: time.Now(),
	}
	if newRank.Rank > oldRank.Rank {
		award.RankUp = &newRank
	}
	s.persist(ctx, award)
	s.SessionAwards = append(s.SessionAwards, *award)
	return award
}

// AwardPiece grants one artifact piece for a correct discrimination answer.
// The tenth piece completes an artifact and resets the piece count.
func (s *Service) AwardPiece(ctx context.Context, sessionID string) *Award {
	s.artifactPieces++
	award := &Award{
		Type:      AwardPiece,
		Reason:    "유물 조각 발견",
		SessionID: sessionID,
		AwardedAt: time.Now(),
	}
	if s.artifactPieces >= ArtifactPiecesNeeded {
		s.artifactPieces = 0
		s.artifactsCompleted++
		award.Type = AwardArtifact
		award.Reason = "유물 완성!"
		award.ArtifactComplete = true
	}
	s.persist(ctx, award)
	s.SessionAwards = append(s.SessionAwards, *award)
	return award
}

// SnapshotData exports the reward totals for persistence.
func (s *Service) SnapshotData() *store.RewardsData {
	return &store.RewardsData{
		TotalPoints:        s.points,
		ArtifactPieces:     s.artifactPieces,
		ArtifactsCompleted: s.artifactsCompleted,
	}
}

func (s *Service) persist(ctx context.Context, award *Award) {
	if s.eventRepo == nil {
		return
	}
	data := store.RewardEventData{
		AwardType: string(award.Type),
		Points:    award.Points,
		Reason:    award.Reason,
		SessionID: award.SessionID,
	}
	if award.RankUp != nil {
		data.NewRank = &award.RankUp.Rank
	}
	_ = s.eventRepo.AppendRewardEvent(ctx, data)
}
