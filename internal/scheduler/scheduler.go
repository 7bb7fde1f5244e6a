// Package scheduler drives catch-mode stimulus pacing: a warm-up delay, then
// stimuli at randomized intervals, each visible for a fixed presentation
// window. Discrimination and identification modes hold a prompt until the
// learner answers, so they pace themselves and do not use this package.
package scheduler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/abhisek/hearo/internal/gamecfg"
)

// State is the scheduler's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateScheduled
	StatePresenting
	StateStopped
)

const (
	// WarmupDelay precedes the first stimulus so the learner can settle.
	WarmupDelay = 1000 * time.Millisecond
	// PresentationWindow is how long an unanswered stimulus stays visible
	// before it is cleared.
	PresentationWindow = 800 * time.Millisecond
)

// Scheduler emits presentation callbacks at randomized intervals bounded by a
// speed profile. Callbacks fire without the scheduler's lock held, so they may
// call back into the scheduler.
type Scheduler struct {
	mu    sync.Mutex
	clock Clock
	rng   *rand.Rand
	speed gamecfg.SpeedProfile
	state State

	armTimer   Timer // pending next-stimulus timer
	clearTimer Timer // presentation-window timer

	onPresent func(at time.Time)
	onClear   func()
}

// New creates a Scheduler. onPresent fires when a stimulus should appear,
// onClear when an unanswered stimulus times out.
func New(clock Clock, rng *rand.Rand, speed gamecfg.SpeedProfile, onPresent func(at time.Time), onClear func()) *Scheduler {
	return &Scheduler{
		clock:     clock,
		rng:       rng,
		speed:     speed,
		onPresent: onPresent,
		onClear:   onClear,
	}
}

// State returns the current lifecycle phase.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start arms the first stimulus after the warm-up delay. Starting a scheduler
// that is not idle is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return
	}
	s.state = StateScheduled
	s.armTimer = s.clock.AfterFunc(WarmupDelay, s.fire)
}

// Accepted tells the scheduler the pending stimulus was consumed by a
// response. It cancels the presentation window and arms the next stimulus.
func (s *Scheduler) Accepted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StatePresenting {
		return
	}
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	s.armLocked()
}

// Stop cancels all pending timers. Safe to call repeatedly and from within a
// callback; a stopped scheduler never fires again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	if s.armTimer != nil {
		s.armTimer.Stop()
		s.armTimer = nil
	}
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
}

// fire transitions Scheduled → Presenting and notifies the engine.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.state != StateScheduled {
		s.mu.Unlock()
		return
	}
	s.state = StatePresenting
	at := s.clock.Now()
	s.clearTimer = s.clock.AfterFunc(PresentationWindow, s.expire)
	onPresent := s.onPresent
	s.mu.Unlock()

	if onPresent != nil {
		onPresent(at)
	}
}

// expire clears an unanswered stimulus and arms the next one.
func (s *Scheduler) expire() {
	s.mu.Lock()
	if s.state != StatePresenting {
		s.mu.Unlock()
		return
	}
	s.clearTimer = nil
	s.armLocked()
	onClear := s.onClear
	s.mu.Unlock()

	if onClear != nil {
		onClear()
	}
}

// armLocked schedules the next stimulus after a uniform random delay drawn
// from the speed profile. Caller holds the lock.
func (s *Scheduler) armLocked() {
	s.state = StateScheduled
	s.armTimer = s.clock.AfterFunc(s.nextDelay(), s.fire)
}

func (s *Scheduler) nextDelay() time.Duration {
	min := s.speed.MinIntervalMs
	max := s.speed.MaxIntervalMs
	d := min
	if max > min {
		d = min + s.rng.Intn(max-min+1)
	}
	return time.Duration(d) * time.Millisecond
}
