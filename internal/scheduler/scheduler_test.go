package scheduler

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/hearo/internal/gamecfg"
)

// fakeClock is a manually advanced clock for deterministic scheduler tests.
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

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
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

type recorder struct {
	mu       sync.Mutex
	presents []time.Time
	clears   int
}

func (r *recorder) onPresent(at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presents = append(r.presents, at)
}

func (r *recorder) onClear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *recorder) presentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.presents)
}

var testSpeed = gamecfg.SpeedProfile{Name: gamecfg.SpeedNormal, MinIntervalMs: 2000, MaxIntervalMs: 4000}

func newTestScheduler(rec *recorder) (*Scheduler, *fakeClock) {
	clock := newFakeClock()
	s := New(clock, rand.New(rand.NewSource(7)), testSpeed, rec.onPresent, rec.onClear)
	return s, clock
}

func TestStart_FirstStimulusAfterWarmup(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestScheduler(rec)

	s.Start()
	if s.State() != StateScheduled {
		t.Fatalf("state = %v after Start, want StateScheduled", s.State())
	}

	clock.Advance(999 * time.Millisecond)
	if rec.presentCount() != 0 {
		t.Fatal("stimulus fired before warm-up elapsed")
	}

	clock.Advance(1 * time.Millisecond)
	if rec.presentCount() != 1 {
		t.Fatalf("presents = %d after warm-up, want 1", rec.presentCount())
	}
	if s.State() != StatePresenting {
		t.Errorf("state = %v, want StatePresenting", s.State())
	}
}

func TestUnansweredStimulusClearsAndRearms(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestScheduler(rec)
	s.Start()
	clock.Advance(WarmupDelay)

	// Let the presentation window lapse with no answer.
	clock.Advance(PresentationWindow)
	rec.mu.Lock()
	clears := rec.clears
	rec.mu.Unlock()
	if clears != 1 {
		t.Fatalf("clears = %d, want 1", clears)
	}
	if s.State() != StateScheduled {
		t.Fatalf("state = %v after clear, want StateScheduled", s.State())
	}

	// The next stimulus arrives within the speed profile bounds.
	clock.Advance(time.Duration(testSpeed.MaxIntervalMs) * time.Millisecond)
	if rec.presentCount() != 2 {
		t.Errorf("presents = %d, want 2", rec.presentCount())
	}
}

func TestAccepted_CancelsWindowAndArmsNext(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestScheduler(rec)
	s.Start()
	clock.Advance(WarmupDelay)

	s.Accepted()
	if s.State() != StateScheduled {
		t.Fatalf("state = %v after Accepted, want StateScheduled", s.State())
	}

	// The old presentation window must not fire a clear.
	clock.Advance(PresentationWindow)
	rec.mu.Lock()
	clears := rec.clears
	rec.mu.Unlock()
	if clears != 0 {
		t.Errorf("clears = %d after accepted response, want 0", clears)
	}
}

func TestStop_CancelsPendingTimers(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestScheduler(rec)
	s.Start()
	clock.Advance(WarmupDelay) // presenting

	s.Stop()
	if s.State() != StateStopped {
		t.Fatalf("state = %v, want StateStopped", s.State())
	}

	// No ghost stimuli after stop.
	clock.Advance(time.Minute)
	if rec.presentCount() != 1 {
		t.Errorf("presents = %d after stop, want 1", rec.presentCount())
	}
	rec.mu.Lock()
	clears := rec.clears
	rec.mu.Unlock()
	if clears != 0 {
		t.Errorf("clears = %d after stop, want 0", clears)
	}
}

func TestStop_Idempotent(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestScheduler(rec)
	s.Start()
	s.Stop()
	s.Stop() // second stop is a no-op
	if s.State() != StateStopped {
		t.Errorf("state = %v, want StateStopped", s.State())
	}
}

func TestStartAfterStopIsNoOp(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestScheduler(rec)
	s.Start()
	s.Stop()
	s.Start()
	clock.Advance(time.Minute)
	if rec.presentCount() != 0 {
		t.Errorf("presents = %d, want 0 after stop", rec.presentCount())
	}
}

func TestIntervalsStayWithinSpeedBounds(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestScheduler(rec)
	s.Start()

	clock.Advance(5 * time.Minute)
	s.Stop()

	rec.mu.Lock()
	presents := append([]time.Time(nil), rec.presents...)
	rec.mu.Unlock()
	if len(presents) < 10 {
		t.Fatalf("presents = %d, want many over 5 minutes", len(presents))
	}
	if !sort.SliceIsSorted(presents, func(i, j int) bool { return presents[i].Before(presents[j]) }) {
		t.Fatal("stimulus timestamps out of order")
	}

	min := time.Duration(testSpeed.MinIntervalMs) * time.Millisecond
	max := time.Duration(testSpeed.MaxIntervalMs) * time.Millisecond
	for i := 1; i < len(presents); i++ {
		// Gap includes the presentation window when the previous stimulus
		// timed out unanswered.
		gap := presents[i].Sub(presents[i-1]) - PresentationWindow
		if gap < min || gap > max {
			t.Fatalf("interval %d out of bounds: %v", i, gap)
		}
	}
}
