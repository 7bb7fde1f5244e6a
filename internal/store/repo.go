package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressData is the persisted form of the progression ledger.
type ProgressData struct {
	TotalPerfects         int     `json:"total_perfects"`
	TotalTrainingSessions int     `json:"total_training_sessions"`
	ConsecutiveDays       int     `json:"consecutive_days"`
	AverageAccuracy       float64 `json:"average_accuracy"`
	LastTrainingDate      string  `json:"last_training_date"`
}

// MasteryData is the persisted form of the mastered-word ledger.
type MasteryData struct {
	MasteredWords []string `json:"mastered_words"`
}

// RewardsData is the persisted form of the reward totals.
type RewardsData struct {
	TotalPoints        int `json:"total_points"`
	ArtifactPieces     int `json:"artifact_pieces"`
	ArtifactsCompleted int `json:"artifacts_completed"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int           `json:"version"`
	Progress *ProgressData `json:"progress,omitempty"`
	Mastery  *MasteryData  `json:"mastery,omitempty"`
	Rewards  *RewardsData  `json:"rewards,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot stamped with the current sequence.
	Save(ctx context.Context, data SnapshotData) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a set lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string // start, end or abort
	Mode          string
	Difficulty    string
	Speed         string
	SetNumber     int
	Questions     int
	Perfects      int
	TotalScore    int
	MaxCombo      int
	AvgReactionMs int
	Accuracy      float64
}

// SessionSummaryRecord is a finished set as read back for the stats screen.
type SessionSummaryRecord struct {
	SessionID     string
	Timestamp     time.Time
	Mode          string
	Difficulty    string
	Questions     int
	Perfects      int
	TotalScore    int
	MaxCombo      int
	AvgReactionMs int
	Accuracy      float64
}

// ResponseEventData captures one judged learner response.
type ResponseEventData struct {
	SessionID    string
	Mode         string
	StimulusKind string
	Stimulus     string
	Answer       string
	Tier         string
	ElapsedMs    int
	Points       int
	Combo        int
}

// RewardEventData captures one reward award.
type RewardEventData struct {
	AwardType string
	Points    int
	Reason    string
	SessionID string
	NewRank   *int
}

// RewardEventRecord is a reward event as read back for the stats screen.
type RewardEventRecord struct {
	AwardType string
	Points    int
	Reason    string
	SessionID string
	NewRank   *int
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a set lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendResponseEvent records a judged response.
	AppendResponseEvent(ctx context.Context, data ResponseEventData) error

	// AppendRewardEvent records a reward award.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QuerySessionSummaries returns finished sets, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryRewardEvents returns reward events, newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// TierCounts returns per-tier response totals across all sessions.
	TierCounts(ctx context.Context) (map[string]int, error)
}
