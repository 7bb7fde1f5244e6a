package game

import (
	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/mastery"
	"github.com/abhisek/hearo/internal/progress"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/session"
	"github.com/abhisek/hearo/internal/stimuli"
)

// Event is a notification from the engine to the UI. Events are emitted
// outside the engine lock, in order, on the goroutine that caused them
// (a timer callback or a Respond call).
type Event interface {
	isEvent()
}

// SetStarted announces a new set beginning its warm-up.
type SetStarted struct {
	SetNumber int
}

// StimulusShown announces a stimulus the learner can now respond to.
type StimulusShown struct {
	Stimulus stimuli.Stimulus
	Question int // zero-based index of the question being asked
}

// PairSound announces one half of a discrimination pair being played.
// The pair becomes answerable when the second sound has played.
type PairSound struct {
	Position int // 1 or 2
	Symbol   string
}

// StimulusCleared announces an unanswered catch stimulus timing out.
type StimulusCleared struct{}

// Judged announces the outcome of a response.
type Judged struct {
	Outcome session.Outcome
	// Award is the discrimination reward granted for a perfect, nil
	// otherwise.
	Award *rewards.Award
	// Piece is the artifact piece a perfect discrimination answer earned,
	// nil otherwise.
	Piece *rewards.Award
	// NewWord is set when an identification answer mastered a new word.
	NewWord bool
}

// SetFinished announces a completed or stopped set with its aggregates.
type SetFinished struct {
	Result  session.Result
	Stopped bool // true when the learner quit mid-set

	LevelUp *progress.LevelTransition
	// PiecesEarned counts the artifact pieces collected during the set,
	// 0 outside discrimination mode.
	PiecesEarned int
	// ArtifactComplete is set when one of those pieces finished an
	// artifact.
	ArtifactComplete bool
	Stage            mastery.Stage
	// PersistErr reports a failed ledger write; the in-memory state is
	// still advanced.
	PersistErr error
}

func (SetStarted) isEvent()      {}
func (StimulusShown) isEvent()   {}
func (PairSound) isEvent()       {}
func (StimulusCleared) isEvent() {}
func (Judged) isEvent()          {}
func (SetFinished) isEvent()     {}

// strategyFor selects the judging strategy fixed for a session's lifetime.
func strategyFor(mode gamecfg.Mode, profile judge.DifficultyProfile) judge.Strategy {
	switch mode {
	case gamecfg.ModeDiscrimination:
		return judge.SameDifferent{}
	case gamecfg.ModeIdentification:
		return judge.Match{}
	default:
		return judge.Timed{Profile: profile}
	}
}
