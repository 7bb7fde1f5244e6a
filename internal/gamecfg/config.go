// Package gamecfg defines the enumerated game profiles: training mode,
// difficulty, stimulus speed and question count. The tables here are static
// configuration consumed by the engine, never computed by it.
package gamecfg

import (
	"fmt"

	"github.com/abhisek/hearo/internal/judge"
)

// Mode selects which training stage a session runs.
type Mode string

const (
	// ModeCatch is stage 1: react to a randomly timed stimulus, judged by
	// reaction time.
	ModeCatch Mode = "catch"
	// ModeDiscrimination is stage 2: hear a pair and answer same/different.
	ModeDiscrimination Mode = "discrimination"
	// ModeIdentification is stage 3: hear a word and type it back.
	ModeIdentification Mode = "identification"
)

// Difficulty names a reaction-time profile tier and also gates which content
// items are eligible (harder word pairs and rarer words unlock on harder
// settings).
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Speed names a stimulus pacing tier.
type Speed string

const (
	SpeedVerySlow Speed = "veryslow"
	SpeedSlow     Speed = "slow"
	SpeedNormal   Speed = "normal"
	SpeedFast     Speed = "fast"
	SpeedVeryFast Speed = "veryfast"
)

// SpeedProfile bounds the randomized delay before the next stimulus.
type SpeedProfile struct {
	Name          Speed
	MinIntervalMs int
	MaxIntervalMs int
}

// Validate checks the interval invariant.
func (p SpeedProfile) Validate() error {
	if p.MinIntervalMs <= 0 || p.MaxIntervalMs <= 0 {
		return fmt.Errorf("speed %q: intervals must be positive", p.Name)
	}
	if p.MinIntervalMs > p.MaxIntervalMs {
		return fmt.Errorf("speed %q: min interval %d exceeds max %d", p.Name, p.MinIntervalMs, p.MaxIntervalMs)
	}
	return nil
}

// MaxSets is the longest run of back-to-back sets a learner can chain.
const MaxSets = 5

// QuestionCounts are the selectable set lengths.
var QuestionCounts = []int{5, 10, 15, 20}

// difficultyProfiles maps each difficulty to its reaction-time cutoffs.
var difficultyProfiles = map[Difficulty]judge.DifficultyProfile{
	DifficultyEasy:   {Name: "easy", PerfectCutoffMs: 200, GoodCutoffMs: 400, MissCutoffMs: 700},
	DifficultyNormal: {Name: "normal", PerfectCutoffMs: 150, GoodCutoffMs: 350, MissCutoffMs: 600},
	DifficultyHard:   {Name: "hard", PerfectCutoffMs: 100, GoodCutoffMs: 250, MissCutoffMs: 450},
}

// speedProfiles maps each speed to its stimulus interval bounds.
var speedProfiles = map[Speed]SpeedProfile{
	SpeedVerySlow: {Name: SpeedVerySlow, MinIntervalMs: 4000, MaxIntervalMs: 6000},
	SpeedSlow:     {Name: SpeedSlow, MinIntervalMs: 3000, MaxIntervalMs: 5000},
	SpeedNormal:   {Name: SpeedNormal, MinIntervalMs: 2000, MaxIntervalMs: 4000},
	SpeedFast:     {Name: SpeedFast, MinIntervalMs: 1500, MaxIntervalMs: 3000},
	SpeedVeryFast: {Name: SpeedVeryFast, MinIntervalMs: 1000, MaxIntervalMs: 2000},
}

// DifficultyProfile returns the reaction-time cutoffs for a difficulty.
func DifficultyProfile(d Difficulty) (judge.DifficultyProfile, error) {
	p, ok := difficultyProfiles[d]
	if !ok {
		return judge.DifficultyProfile{}, fmt.Errorf("unknown difficulty %q", d)
	}
	return p, nil
}

// SpeedProfileFor returns the pacing bounds for a speed.
func SpeedProfileFor(s Speed) (SpeedProfile, error) {
	p, ok := speedProfiles[s]
	if !ok {
		return SpeedProfile{}, fmt.Errorf("unknown speed %q", s)
	}
	return p, nil
}

// Config is the full configuration for one session.
type Config struct {
	Mode          Mode
	Difficulty    Difficulty
	Speed         Speed
	QuestionCount int
}

// DefaultConfig returns the settings the original trainer starts with.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeCatch,
		Difficulty:    DifficultyNormal,
		Speed:         SpeedNormal,
		QuestionCount: 10,
	}
}

// Validate checks that every field names a known profile.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeCatch, ModeDiscrimination, ModeIdentification:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := DifficultyProfile(c.Difficulty); err != nil {
		return err
	}
	if _, err := SpeedProfileFor(c.Speed); err != nil {
		return err
	}
	for _, n := range QuestionCounts {
		if c.QuestionCount == n {
			return nil
		}
	}
	return fmt.Errorf("question count %d not in %v", c.QuestionCount, QuestionCounts)
}
