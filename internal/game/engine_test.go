package game

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/mastery"
	"github.com/abhisek/hearo/internal/progress"
	"github.com/abhisek/hearo/internal/rewards"
	"github.com/abhisek/hearo/internal/scheduler"
)

// fakeClock is a manually advanced clock for deterministic engine tests.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) scheduler.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, deadline: c.now.Add(d), fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves time forward, firing due timers in deadline order. Callbacks
// run without the clock lock so they can schedule new timers.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.deadline.After(target) {
				continue
			}
			if next == nil || t.deadline.Before(next.deadline) {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		next.fired = true
		if next.deadline.After(c.now) {
			c.now = next.deadline
		}
		fn := next.fn
		c.mu.Unlock()
		fn()
	}
}

// eventRec collects engine events in emission order.
type eventRec struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRec) emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRec) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *eventRec) lastShown() *StimulusShown {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if ev, ok := r.events[i].(StimulusShown); ok {
			return &ev
		}
	}
	return nil
}

func (r *eventRec) finished() *SetFinished {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if ev, ok := r.events[i].(SetFinished); ok {
			return &ev
		}
	}
	return nil
}

func (r *eventRec) judgedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if _, ok := ev.(Judged); ok {
			n++
		}
	}
	return n
}

type harness struct {
	engine   *Engine
	clock    *fakeClock
	rec      *eventRec
	progress *progress.Service
	rewards  *rewards.Service
	mastery  *mastery.Service
}

func newHarness(t *testing.T, cfg gamecfg.Config) *harness {
	t.Helper()
	h := &harness{
		clock:    newFakeClock(),
		rec:      &eventRec{},
		progress: progress.NewService(nil, nil),
		rewards:  rewards.NewService(nil, nil),
		mastery:  mastery.NewService(nil),
	}
	e, err := New(Options{
		Config:   cfg,
		Emit:     h.rec.emit,
		Clock:    h.clock,
		Rng:      rand.New(rand.NewSource(11)),
		Progress: h.progress,
		Rewards:  h.rewards,
		Mastery:  h.mastery,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.engine = e
	return h
}

func catchConfig(n int) gamecfg.Config {
	cfg := gamecfg.DefaultConfig()
	cfg.QuestionCount = n
	return cfg
}

func (h *harness) shownCount() int {
	n := 0
	for _, ev := range h.rec.all() {
		if _, ok := ev.(StimulusShown); ok {
			n++
		}
	}
	return n
}

// answerNextCatch steps time until the next stimulus appears, then answers
// 100-150ms after onset, inside the perfect cutoff.
func (h *harness) answerNextCatch(t *testing.T) {
	t.Helper()
	prev := h.shownCount()
	for i := 0; i < 200 && h.shownCount() == prev; i++ {
		h.clock.Advance(50 * time.Millisecond)
	}
	if h.shownCount() == prev {
		t.Fatal("no stimulus appeared within 10s")
	}
	h.clock.Advance(100 * time.Millisecond)
	h.engine.Respond("")
}

func TestCatchRun_FullSet(t *testing.T) {
	h := newHarness(t, catchConfig(5))
	if err := h.engine.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 5; i++ {
		h.answerNextCatch(t)
	}

	fin := h.rec.finished()
	if fin == nil {
		t.Fatal("set never finished")
	}
	if fin.Result.TotalQuestions != 5 || fin.Result.Perfects != 5 {
		t.Fatalf("result = %+v", fin.Result)
	}
	// 5 perfects x 100 plus the combo-5 bonus.
	if fin.Result.TotalScore != 1000 {
		t.Errorf("score = %d, want 1000", fin.Result.TotalScore)
	}
	if h.rec.judgedCount() != 5 {
		t.Errorf("judged events = %d, want 5", h.rec.judgedCount())
	}
	if h.progress.TotalPerfects() != 5 || h.progress.TotalTrainingSessions() != 1 {
		t.Errorf("ledger perfects/sessions = %d/%d", h.progress.TotalPerfects(), h.progress.TotalTrainingSessions())
	}
	if h.engine.Running() {
		t.Error("engine still running after the set finished")
	}
}

func TestCatchRun_StrayTapEmitsNothing(t *testing.T) {
	h := newHarness(t, catchConfig(5))
	h.engine.Start()

	// Tap before the warm-up produced any stimulus.
	h.engine.Respond("")
	if h.rec.judgedCount() != 0 {
		t.Errorf("judged events = %d for a stray tap", h.rec.judgedCount())
	}
}

func TestCatchRun_UnansweredStimulusRepeatsQuestion(t *testing.T) {
	h := newHarness(t, catchConfig(5))
	h.engine.Start()

	// Let the first stimulus lapse unanswered.
	h.clock.Advance(scheduler.WarmupDelay + scheduler.PresentationWindow)

	cleared := false
	for _, ev := range h.rec.all() {
		if _, ok := ev.(StimulusCleared); ok {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("no StimulusCleared after the window lapsed")
	}
	if h.rec.judgedCount() != 0 {
		t.Error("a lapsed stimulus must not be judged")
	}
}

func TestStop_NoEventsAfter(t *testing.T) {
	h := newHarness(t, catchConfig(5))
	h.engine.Start()
	h.clock.Advance(scheduler.WarmupDelay)
	h.engine.Stop()

	fin := h.rec.finished()
	if fin == nil || !fin.Stopped {
		t.Fatalf("finished = %+v, want stopped", fin)
	}
	// An abandoned set earns nothing.
	if h.progress.TotalTrainingSessions() != 0 {
		t.Error("aborted set recorded in the ledger")
	}

	before := len(h.rec.all())
	h.clock.Advance(time.Minute)
	if len(h.rec.all()) != before {
		t.Error("events emitted after Stop")
	}
	// Stop is idempotent.
	h.engine.Stop()
}

func TestDiscriminationRun(t *testing.T) {
	cfg := gamecfg.Config{
		Mode:          gamecfg.ModeDiscrimination,
		Difficulty:    gamecfg.DifficultyNormal,
		Speed:         gamecfg.SpeedNormal,
		QuestionCount: 5,
	}
	h := newHarness(t, cfg)
	h.engine.Start()

	for i := 0; i < 5; i++ {
		// Warm-up or feedback delay, then both pair sounds and the settle.
		h.clock.Advance(10 * time.Second)
		shown := h.rec.lastShown()
		if shown == nil || shown.Stimulus.Pair == nil {
			t.Fatalf("question %d: no pair presented", i)
		}
		answer := judge.AnswerDifferent
		if shown.Stimulus.Pair.Same {
			answer = judge.AnswerSame
		}
		h.engine.Respond(answer)
	}

	fin := h.rec.finished()
	if fin == nil {
		t.Fatal("set never finished")
	}
	if fin.Result.Perfects != 5 {
		t.Fatalf("result = %+v", fin.Result)
	}
	// One piece per correct answer.
	if fin.PiecesEarned != 5 {
		t.Errorf("pieces earned = %d, want 5", fin.PiecesEarned)
	}
	if fin.ArtifactComplete {
		t.Error("five pieces must not complete an artifact")
	}
	// 5 perfects x 10 plus the combo-5 milestone.
	if h.rewards.Points() != 5*rewards.PerfectPoints+20 {
		t.Errorf("reward points = %d", h.rewards.Points())
	}
	if h.rewards.ArtifactPieces() != 5 {
		t.Errorf("artifact pieces = %d, want 5", h.rewards.ArtifactPieces())
	}
}

func TestDiscrimination_PairSoundOrder(t *testing.T) {
	cfg := gamecfg.Config{
		Mode:          gamecfg.ModeDiscrimination,
		Difficulty:    gamecfg.DifficultyNormal,
		Speed:         gamecfg.SpeedNormal,
		QuestionCount: 5,
	}
	h := newHarness(t, cfg)
	h.engine.Start()
	h.clock.Advance(10 * time.Second)

	var positions []int
	for _, ev := range h.rec.all() {
		if ps, ok := ev.(PairSound); ok {
			positions = append(positions, ps.Position)
		}
	}
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 2 {
		t.Fatalf("pair sounds = %v, want [1 2]", positions)
	}
}

// stubTimer models a timer whose callback is already past the point Stop
// can cancel it, as a real timer goroutine can be.
type stubTimer struct{}

func (stubTimer) Stop() bool { return false }

// stubClock queues callbacks for the test to run by hand.
type stubClock struct {
	now time.Time
	fns []func()
}

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) AfterFunc(d time.Duration, f func()) scheduler.Timer {
	c.fns = append(c.fns, f)
	return stubTimer{}
}

func TestStop_DropsInFlightPairSound(t *testing.T) {
	clock := &stubClock{now: time.Unix(1700000000, 0)}
	rec := &eventRec{}
	e, err := New(Options{
		Config: gamecfg.Config{
			Mode:          gamecfg.ModeDiscrimination,
			Difficulty:    gamecfg.DifficultyNormal,
			Speed:         gamecfg.SpeedNormal,
			QuestionCount: 5,
		},
		Emit:  rec.emit,
		Clock: clock,
		Rng:   rand.New(rand.NewSource(11)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Warm-up arms the first pair sound; stop before it plays, then run the
	// callback Stop could not cancel.
	clock.fns[0]()
	e.Stop()
	clock.fns[1]()

	for _, ev := range rec.all() {
		if ps, ok := ev.(PairSound); ok {
			t.Fatalf("pair sound %d emitted after stop", ps.Position)
		}
	}
	if fin := rec.finished(); fin == nil || !fin.Stopped {
		t.Fatalf("finished = %+v, want a stopped set", fin)
	}
}

func TestIdentificationRun_MastersNewWords(t *testing.T) {
	cfg := gamecfg.Config{
		Mode:          gamecfg.ModeIdentification,
		Difficulty:    gamecfg.DifficultyNormal,
		Speed:         gamecfg.SpeedNormal,
		QuestionCount: 5,
	}
	h := newHarness(t, cfg)
	h.engine.Start()

	for i := 0; i < 5; i++ {
		h.clock.Advance(10 * time.Second)
		shown := h.rec.lastShown()
		if shown == nil || shown.Stimulus.Word == nil {
			t.Fatalf("question %d: no word presented", i)
		}
		h.engine.Respond(shown.Stimulus.Word.Word)
	}

	fin := h.rec.finished()
	if fin == nil || fin.Result.Perfects != 5 {
		t.Fatalf("finished = %+v", fin)
	}
	if h.mastery.Count() == 0 {
		t.Error("no words mastered after correct answers")
	}
	if h.mastery.Count() > 5 {
		t.Errorf("mastered %d words from 5 answers", h.mastery.Count())
	}
	if fin.Stage != mastery.StageSeedling {
		t.Errorf("stage = %s, want seedling", fin.Stage)
	}
}

func TestIdentification_WrongAnswerNotMastered(t *testing.T) {
	cfg := gamecfg.Config{
		Mode:          gamecfg.ModeIdentification,
		Difficulty:    gamecfg.DifficultyNormal,
		Speed:         gamecfg.SpeedNormal,
		QuestionCount: 5,
	}
	h := newHarness(t, cfg)
	h.engine.Start()
	h.clock.Advance(10 * time.Second)

	h.engine.Respond("오답")
	if h.mastery.Count() != 0 {
		t.Errorf("mastered %d words from a wrong answer", h.mastery.Count())
	}
	if h.rec.judgedCount() != 1 {
		t.Fatalf("judged events = %d, want 1", h.rec.judgedCount())
	}
}

func TestStartNextSet(t *testing.T) {
	h := newHarness(t, catchConfig(5))
	h.engine.Start()

	if err := h.engine.StartNextSet(); err == nil {
		t.Fatal("StartNextSet succeeded mid-set")
	}

	for i := 0; i < 5; i++ {
		h.answerNextCatch(t)
	}
	if h.engine.Running() {
		t.Fatal("still running after 5 answers")
	}

	if err := h.engine.StartNextSet(); err != nil {
		t.Fatalf("StartNextSet: %v", err)
	}
	if h.engine.SetNumber() != 2 {
		t.Errorf("set number = %d, want 2", h.engine.SetNumber())
	}
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := New(Options{Config: gamecfg.Config{Mode: "karaoke"}})
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
