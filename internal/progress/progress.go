// Package progress maintains the cross-session training ledger: cumulative
// perfect counts, the derived level, a running accuracy average and the
// consecutive-day streak.
package progress

import (
	"context"
	"time"

	"github.com/abhisek/hearo/internal/levels"
	"github.com/abhisek/hearo/internal/store"
)

// DateLayout is the calendar-day granularity used for streak tracking.
const DateLayout = "2006-01-02"

// Saver persists the full snapshot after a ledger mutation. The app wires
// this to the store; tests leave it nil.
type Saver interface {
	Save(ctx context.Context) error
}

// LevelTransition reports a level-up caused by a recorded session.
type LevelTransition struct {
	From levels.Level
	To   levels.Level
}

// Service owns the progression ledger for one learner.
type Service struct {
	saver Saver

	totalPerfects         int
	totalTrainingSessions int
	consecutiveDays       int
	averageAccuracy       float64 // percent, [0, 100]
	lastTrainingDate      string  // DateLayout, empty before the first session
}

// NewService creates a progression service, loading state from the snapshot.
func NewService(snap *store.SnapshotData, saver Saver) *Service {
	s := &Service{saver: saver}
	if snap == nil || snap.Progress == nil {
		return s
	}
	p := snap.Progress
	s.totalPerfects = p.TotalPerfects
	s.totalTrainingSessions = p.TotalTrainingSessions
	s.consecutiveDays = p.ConsecutiveDays
	s.averageAccuracy = p.AverageAccuracy
	s.lastTrainingDate = p.LastTrainingDate
	return s
}

func (s *Service) TotalPerfects() int         { return s.totalPerfects }
func (s *Service) TotalTrainingSessions() int { return s.totalTrainingSessions }
func (s *Service) ConsecutiveDays() int       { return s.consecutiveDays }
func (s *Service) AverageAccuracy() float64   { return s.averageAccuracy }
func (s *Service) LastTrainingDate() string   { return s.lastTrainingDate }

// Level returns the current level, always recomputed from totalPerfects.
func (s *Service) Level() levels.Level {
	return levels.ForPerfects(s.totalPerfects)
}

// RecordSession folds a finished set into the ledger and persists it.
// accuracyPercent is in [0, 100]. Returns a LevelTransition when the added
// perfects crossed a level threshold, nil otherwise.
//
// The in-memory ledger keeps its updated state even when persistence fails;
// the error tells the caller the disk copy is stale.
func (s *Service) RecordSession(ctx context.Context, perfects int, accuracyPercent float64, now time.Time) (*LevelTransition, error) {
	oldLevel := levels.ForPerfects(s.totalPerfects)
	s.totalPerfects += perfects
	newLevel := levels.ForPerfects(s.totalPerfects)

	// The running average weights prior sessions by the pre-increment count.
	oldCount := s.totalTrainingSessions
	s.averageAccuracy = (s.averageAccuracy*float64(oldCount) + accuracyPercent) / float64(oldCount+1)
	s.totalTrainingSessions = oldCount + 1

	// Any new calendar day extends the streak. A multi-day gap still counts
	// as one more day rather than resetting; the streak is a gentle
	// encouragement counter, not a strict attendance record.
	today := now.Format(DateLayout)
	if today != s.lastTrainingDate {
		s.consecutiveDays++
	}
	s.lastTrainingDate = today

	var err error
	if s.saver != nil {
		err = s.saver.Save(ctx)
	}

	if newLevel.Level > oldLevel.Level {
		return &LevelTransition{From: oldLevel, To: newLevel}, err
	}
	return nil, err
}

// SnapshotData exports the ledger for persistence.
func (s *Service) SnapshotData() *store.ProgressData {
	return &store.ProgressData{
		TotalPerfects:         s.totalPerfects,
		TotalTrainingSessions: s.totalTrainingSessions,
		ConsecutiveDays:       s.consecutiveDays,
		AverageAccuracy:       s.averageAccuracy,
		LastTrainingDate:      s.lastTrainingDate,
	}
}
