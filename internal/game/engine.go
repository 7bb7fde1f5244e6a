// Package game is the engine facade: it wires the stimulus picker, the
// scheduler, the response session and the judging strategy for one training
// run, feeds finished sets into the progression and reward ledgers, and
// notifies the UI through events.
//
// All entry points serialize on one mutex. Timer callbacks and Respond calls
// mutate state under the lock and emit their events after releasing it, so an
// event handler may call back into the engine.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/mastery"
	"github.com/abhisek/hearo/internal/progress"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/scheduler"
	"github.com/abhisek/hearo/internal/session"
	"github.com/abhisek/hearo/internal/stimuli"
	"github.com/abhisek/hearo/internal/store"
)

const (
	// SetWarmup precedes the first prompt of discrimination and
	// identification sets. Catch mode warms up inside the scheduler.
	SetWarmup = 1000 * time.Millisecond

	// PairSettle is how long the second pair sound plays before answers
	// are accepted.
	PairSettle = 1500 * time.Millisecond

	// FeedbackDelay shows the judgment before the next prompt is armed.
	FeedbackDelay = 2000 * time.Millisecond

	// WordRevealDelay separates identification challenges after feedback.
	WordRevealDelay = 1000 * time.Millisecond
)

var pairKinds = []stimuli.PairKind{stimuli.PairPitch, stimuli.PairDuration, stimuli.PairWord}

// Options configures a new Engine. Clock, Rng and Picker default to real
// implementations; the repos and ledgers are optional.
type Options struct {
	Config gamecfg.Config
	Emit   func(Event)

	Clock  scheduler.Clock
	Rng    *rand.Rand
	Picker *stimuli.Picker

	Events   store.EventRepo
	Progress *progress.Service
	Rewards  *rewards.Service
	Mastery  *mastery.Service
}

// Engine runs training sets for one fixed configuration.
type Engine struct {
	mu sync.Mutex

	cfg      gamecfg.Config
	speed    gamecfg.SpeedProfile
	strategy judge.Strategy
	clock    scheduler.Clock
	rng      *rand.Rand
	picker   *stimuli.Picker
	emit     func(Event)

	eventRepo store.EventRepo
	progress  *progress.Service
	rewards   *rewards.Service
	mastery   *mastery.Service

	sessionID string
	setNumber int
	sess      *session.Session
	sched     *scheduler.Scheduler
	paceTimer scheduler.Timer
	running   bool
}

// New creates an Engine for the configuration. The strategy is selected here
// and fixed for the engine's lifetime.
func New(opts Options) (*Engine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	speed, err := gamecfg.SpeedProfileFor(opts.Config.Speed)
	if err != nil {
		return nil, err
	}
	profile, err := gamecfg.DifficultyProfile(opts.Config.Difficulty)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = scheduler.RealClock()
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	picker := opts.Picker
	if picker == nil {
		picker = stimuli.NewPicker(rng)
	}
	emit := opts.Emit
	if emit == nil {
		emit = func(Event) {}
	}

	return &Engine{
		cfg:       opts.Config,
		speed:     speed,
		strategy:  strategyFor(opts.Config.Mode, profile),
		clock:     clock,
		rng:       rng,
		picker:    picker,
		emit:      emit,
		eventRepo: opts.Events,
		progress:  opts.Progress,
		rewards:   opts.Rewards,
		mastery:   opts.Mastery,
	}, nil
}

// Start begins the first set. Starting a running engine is an error.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return fmt.Errorf("engine already running")
	}
	e.setNumber = 1
	events := e.startSetLocked()
	e.mu.Unlock()

	e.emitAll(events)
	return nil
}

// StartNextSet begins the following set after one finished. At most
// gamecfg.MaxSets sets chain in one run.
func (e *Engine) StartNextSet() error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return fmt.Errorf("set still in progress")
	}
	if e.sess == nil || e.sess.Phase() != session.PhaseFinished {
		e.mu.Unlock()
		return fmt.Errorf("no finished set to continue from")
	}
	if e.setNumber >= gamecfg.MaxSets {
		e.mu.Unlock()
		return fmt.Errorf("run complete after %d sets", gamecfg.MaxSets)
	}
	e.setNumber++
	events := e.startSetLocked()
	e.mu.Unlock()

	e.emitAll(events)
	return nil
}

func (e *Engine) startSetLocked() []Event {
	e.sessionID = uuid.NewString()
	e.sess = session.New(e.cfg, e.strategy, e.setNumber)
	e.running = true
	if e.rewards != nil {
		e.rewards.ResetSession()
	}

	e.appendSessionEvent("start", nil)

	switch e.cfg.Mode {
	case gamecfg.ModeCatch:
		e.sched = scheduler.New(e.clock, e.rng, e.speed, e.onPresent, e.onClear)
		e.sched.Start()
	case gamecfg.ModeDiscrimination:
		e.paceTimer = e.clock.AfterFunc(SetWarmup, e.startPairSequence)
	case gamecfg.ModeIdentification:
		e.paceTimer = e.clock.AfterFunc(SetWarmup+WordRevealDelay, e.presentWord)
	}

	return []Event{SetStarted{SetNumber: e.setNumber}}
}

// Respond judges the learner's input against the pending stimulus. A tap
// with nothing pending is silently dropped.
func (e *Engine) Respond(answer string) {
	e.mu.Lock()
	if !e.running || e.sess == nil {
		e.mu.Unlock()
		return
	}

	// The stimulus must be captured before the session consumes it.
	pend := e.sess.Pending()
	var answeredWord string
	if pend != nil && pend.Stimulus.Kind == stimuli.KindWord {
		answeredWord = pend.Stimulus.Word.Word
	}

	out := e.sess.Respond(answer, e.clock.Now())
	if out == nil {
		e.mu.Unlock()
		return
	}

	e.appendResponseEvent(pend, answer, out)

	var events []Event
	judged := Judged{Outcome: *out}

	if out.Tier == judge.TierPerfect {
		switch e.cfg.Mode {
		case gamecfg.ModeDiscrimination:
			if e.rewards != nil {
				ctx := context.Background()
				judged.Award = e.rewards.RecordPerfect(ctx, out.Combo, e.sessionID)
				judged.Piece = e.rewards.AwardPiece(ctx, e.sessionID)
			}
		case gamecfg.ModeIdentification:
			if e.mastery != nil && answeredWord != "" {
				judged.NewWord = e.mastery.Record(answeredWord)
			}
		}
	}
	events = append(events, judged)

	switch {
	case out.Finished:
		events = append(events, e.finishSetLocked(false))
	case out.Tier == judge.TierIgnored:
		// Too late: the stimulus is spent, the question repeats.
		if e.sched != nil {
			e.sched.Accepted()
		}
	default:
		e.armNextLocked()
	}
	e.mu.Unlock()

	e.emitAll(events)
}

// Stop abandons the run. Idempotent; pending timers never fire afterwards.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	ev := e.finishSetLocked(true)
	e.mu.Unlock()

	e.emit(ev)
}

// SessionID identifies the current set's event stream.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// SetNumber returns the current set number within the run.
func (e *Engine) SetNumber() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setNumber
}

// Running reports whether a set is in progress.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// armNextLocked schedules the next prompt after a counted answer.
func (e *Engine) armNextLocked() {
	switch e.cfg.Mode {
	case gamecfg.ModeCatch:
		e.sched.Accepted()
	case gamecfg.ModeDiscrimination:
		e.paceTimer = e.clock.AfterFunc(FeedbackDelay, e.startPairSequence)
	case gamecfg.ModeIdentification:
		e.paceTimer = e.clock.AfterFunc(FeedbackDelay+WordRevealDelay, e.presentWord)
	}
}

// onPresent is the catch-mode scheduler callback for a new stimulus.
func (e *Engine) onPresent(at time.Time) {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	s := e.picker.Sound()
	e.sess.Present(session.StimulusEvent{Stimulus: s, EmittedAt: at})
	q := e.sess.QuestionIndex()
	e.mu.Unlock()

	e.emit(StimulusShown{Stimulus: s, Question: q})
}

// onClear is the catch-mode scheduler callback for a lapsed stimulus.
func (e *Engine) onClear() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.sess.ClearPending()
	e.mu.Unlock()

	e.emit(StimulusCleared{})
}

// startPairSequence plays a discrimination pair: first sound, gap, second
// sound, then the pair becomes answerable.
func (e *Engine) startPairSequence() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	kind := pairKinds[e.rng.Intn(len(pairKinds))]
	s := e.picker.Pair(kind, e.cfg.Difficulty)

	firstDelay := time.Duration(e.speed.MinIntervalMs*60/100) * time.Millisecond
	gap := time.Duration(e.speed.MinIntervalMs*40/100) * time.Millisecond

	first := s.Pair.First
	second := s.Pair.Second
	e.paceTimer = e.clock.AfterFunc(firstDelay, func() {
		e.mu.Lock()
		if !e.running {
			e.mu.Unlock()
			return
		}
		e.paceTimer = e.clock.AfterFunc(gap, func() {
			e.mu.Lock()
			if !e.running {
				e.mu.Unlock()
				return
			}
			e.paceTimer = e.clock.AfterFunc(PairSettle, func() {
				e.presentStimulus(s)
			})
			e.mu.Unlock()
			e.emit(PairSound{Position: 2, Symbol: second})
		})
		e.mu.Unlock()
		e.emit(PairSound{Position: 1, Symbol: first})
	})
	e.mu.Unlock()
}

// presentWord reveals the next identification challenge.
func (e *Engine) presentWord() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	s := e.picker.Word(e.cfg.Difficulty)
	e.mu.Unlock()

	e.presentStimulus(s)
}

// presentStimulus hands a held prompt to the session and announces it.
func (e *Engine) presentStimulus(s stimuli.Stimulus) {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.sess.Present(session.StimulusEvent{Stimulus: s, EmittedAt: e.clock.Now()})
	q := e.sess.QuestionIndex()
	e.mu.Unlock()

	e.emit(StimulusShown{Stimulus: s, Question: q})
}

// finishSetLocked tears down timers, persists the result and folds it into
// the ledgers. Returns the SetFinished event for the caller to emit.
func (e *Engine) finishSetLocked(stopped bool) Event {
	e.running = false
	if e.sched != nil {
		e.sched.Stop()
		e.sched = nil
	}
	if e.paceTimer != nil {
		e.paceTimer.Stop()
		e.paceTimer = nil
	}
	if stopped {
		e.sess.Stop()
	}

	result := e.sess.Result()
	fin := SetFinished{Result: result, Stopped: stopped}

	action := "end"
	if stopped {
		action = "abort"
	}
	e.appendSessionEvent(action, &result)

	if stopped {
		// An abandoned set earns nothing.
		return fin
	}

	ctx := context.Background()
	if e.progress != nil {
		transition, err := e.progress.RecordSession(ctx, result.Perfects, result.Accuracy*100, e.clock.Now())
		fin.LevelUp = transition
		fin.PersistErr = err
	}
	if e.cfg.Mode == gamecfg.ModeDiscrimination && e.rewards != nil {
		for _, a := range e.rewards.SessionAwards {
			switch a.Type {
			case rewards.AwardPiece, rewards.AwardArtifact:
				fin.PiecesEarned++
			}
			if a.ArtifactComplete {
				fin.ArtifactComplete = true
			}
		}
	}
	if e.mastery != nil {
		fin.Stage = e.mastery.Stage()
	}
	return fin
}

func (e *Engine) appendSessionEvent(action string, result *session.Result) {
	if e.eventRepo == nil {
		return
	}
	data := store.SessionEventData{
		SessionID:  e.sessionID,
		Action:     action,
		Mode:       string(e.cfg.Mode),
		Difficulty: string(e.cfg.Difficulty),
		Speed:      string(e.cfg.Speed),
		SetNumber:  e.setNumber,
	}
	if result != nil {
		data.Questions = result.TotalQuestions
		data.Perfects = result.Perfects
		data.TotalScore = result.TotalScore
		data.MaxCombo = result.MaxCombo
		data.AvgReactionMs = result.AverageReactionTimeMs
		data.Accuracy = result.Accuracy
	}
	_ = e.eventRepo.AppendSessionEvent(context.Background(), data)
}

func (e *Engine) appendResponseEvent(pend *session.StimulusEvent, answer string, out *session.Outcome) {
	if e.eventRepo == nil || pend == nil {
		return
	}
	data := store.ResponseEventData{
		SessionID:    e.sessionID,
		Mode:         string(e.cfg.Mode),
		StimulusKind: string(pend.Stimulus.Kind),
		Answer:       answer,
		Tier:         out.Tier.String(),
		ElapsedMs:    int(e.clock.Now().Sub(pend.EmittedAt).Milliseconds()),
		Points:       out.Points,
		Combo:        out.Combo,
	}
	switch pend.Stimulus.Kind {
	case stimuli.KindPair:
		data.Stimulus = pend.Stimulus.Pair.First + "/" + pend.Stimulus.Pair.Second
	case stimuli.KindWord:
		data.Stimulus = pend.Stimulus.Word.Word
	default:
		data.Stimulus = pend.Stimulus.Symbol
	}
	_ = e.eventRepo.AppendResponseEvent(context.Background(), data)
}

func (e *Engine) emitAll(events []Event) {
	for _, ev := range events {
		e.emit(ev)
	}
}
