// Package session implements the per-set response state machine: it owns the
// pending stimulus, scoring, combo tracking and per-tier counts for one run
// of questionCount questions, and finalizes into a Result.
package session

import (
	"time"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/stimuli"
)

// Phase is the session's lifecycle phase.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseFinished
	PhaseStopped
)

// comboBonuses are the one-time awards fired when the combo reaches a
// threshold exactly. A combo reset clears the climb, so reclimbing through
// the same threshold re-awards it.
var comboBonuses = map[int]int{
	5:  500,
	10: 1000,
	20: 2000,
}

// StimulusEvent is one emitted stimulus awaiting a response. At most one is
// outstanding per session.
type StimulusEvent struct {
	Stimulus  stimuli.Stimulus
	EmittedAt time.Time
}

// Outcome describes what a single response produced.
type Outcome struct {
	Tier     judge.Tier
	Points   int // base points plus any combo bonus
	Bonus    int // combo bonus portion, 0 if none
	Combo    int // combo after this response
	Finished bool
}

// Session tracks one set in progress. It is not safe for concurrent use; the
// engine serializes timer callbacks and responds.
type Session struct {
	cfg       gamecfg.Config
	strategy  judge.Strategy
	setNumber int
	phase     Phase

	questionIndex int
	score         int
	combo         int
	maxCombo      int
	counts        map[judge.Tier]int

	// trackReaction enables reaction-time sampling (catch mode only;
	// correctness modes report a zero average).
	trackReaction bool
	reactionMs    []int

	pending *StimulusEvent
}

// New creates an active session for one set.
func New(cfg gamecfg.Config, strategy judge.Strategy, setNumber int) *Session {
	return &Session{
		cfg:           cfg,
		strategy:      strategy,
		setNumber:     setNumber,
		trackReaction: cfg.Mode == gamecfg.ModeCatch,
		counts:        make(map[judge.Tier]int),
	}
}

func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) QuestionIndex() int     { return s.questionIndex }
func (s *Session) Score() int             { return s.score }
func (s *Session) Combo() int             { return s.combo }
func (s *Session) MaxCombo() int          { return s.maxCombo }
func (s *Session) SetNumber() int         { return s.setNumber }
func (s *Session) Config() gamecfg.Config { return s.cfg }

// Count returns how many responses landed in the tier.
func (s *Session) Count(t judge.Tier) int { return s.counts[t] }

// Pending returns the outstanding stimulus, nil if none.
func (s *Session) Pending() *StimulusEvent { return s.pending }

// Present replaces the pending stimulus. Called on the scheduler's emit
// path; a still-pending previous stimulus is discarded.
func (s *Session) Present(ev StimulusEvent) {
	if s.phase != PhaseActive {
		return
	}
	s.pending = &ev
}

// ClearPending discards an unanswered stimulus (presentation window lapsed).
func (s *Session) ClearPending() {
	s.pending = nil
}

// Respond judges the learner's input against the pending stimulus and
// updates score, combo and counters. Returns nil when there is nothing to
// respond to: no pending stimulus, or the session is over. A stray tap is
// expected, not an error.
func (s *Session) Respond(answer string, now time.Time) *Outcome {
	if s.phase != PhaseActive || s.pending == nil {
		return nil
	}

	r := judge.Response{
		ElapsedMs: int(now.Sub(s.pending.EmittedAt).Milliseconds()),
		Answer:    answer,
	}
	switch s.pending.Stimulus.Kind {
	case stimuli.KindPair:
		r.WantSame = s.pending.Stimulus.Pair.Same
	case stimuli.KindWord:
		r.Expected = s.pending.Stimulus.Word.Word
	}

	tier := s.strategy.Judge(r)
	if tier == judge.TierIgnored {
		// Too late to count: the stimulus is spent but the question is not.
		s.pending = nil
		return &Outcome{Tier: judge.TierIgnored, Combo: s.combo}
	}

	points := tier.Points()
	bonus := 0
	if tier == judge.TierPerfect {
		s.combo++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}
		bonus = comboBonuses[s.combo]
	} else {
		s.combo = 0
	}
	s.score += points + bonus

	s.counts[tier]++
	if s.trackReaction {
		s.reactionMs = append(s.reactionMs, clampNonNegative(r.ElapsedMs))
	}
	s.pending = nil
	s.questionIndex++

	finished := s.questionIndex >= s.cfg.QuestionCount
	if finished {
		s.phase = PhaseFinished
	}

	return &Outcome{
		Tier:     tier,
		Points:   points + bonus,
		Bonus:    bonus,
		Combo:    s.combo,
		Finished: finished,
	}
}

// Stop abandons an active session. Idempotent; a finished session stays
// finished.
func (s *Session) Stop() {
	if s.phase == PhaseActive {
		s.phase = PhaseStopped
		s.pending = nil
	}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
