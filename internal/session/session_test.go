package session

import (
	"testing"
	"time"

	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
	"github.com/abhisek/hearo/internal/stimuli"
)

var normalProfile = judge.DifficultyProfile{
	Name:            "normal",
	PerfectCutoffMs: 150,
	GoodCutoffMs:    350,
	MissCutoffMs:    600,
}

func newCatchSession(questionCount int) *Session {
	cfg := gamecfg.DefaultConfig()
	cfg.QuestionCount = questionCount
	return New(cfg, judge.Timed{Profile: normalProfile}, 1)
}

var base = time.Unix(1700000000, 0)

// presentAndRespond emits a sound stimulus and answers it after elapsed.
func presentAndRespond(s *Session, elapsed time.Duration) *Outcome {
	s.Present(StimulusEvent{
		Stimulus:  stimuli.Stimulus{Kind: stimuli.KindSound, Symbol: "삐"},
		EmittedAt: base,
	})
	return s.Respond("", base.Add(elapsed))
}

func TestRespond_TierByReactionTime(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		tier    judge.Tier
		points  int
	}{
		{100 * time.Millisecond, judge.TierPerfect, 100},
		{200 * time.Millisecond, judge.TierGood, 50},
		{400 * time.Millisecond, judge.TierMiss, 0},
	}
	for _, c := range cases {
		s := newCatchSession(10)
		out := presentAndRespond(s, c.elapsed)
		if out == nil {
			t.Fatalf("%v: no outcome", c.elapsed)
		}
		if out.Tier != c.tier || out.Points != c.points {
			t.Errorf("%v: got %v/%d points, want %v/%d", c.elapsed, out.Tier, out.Points, c.tier, c.points)
		}
		if s.QuestionIndex() != 1 {
			t.Errorf("%v: questionIndex = %d, want 1", c.elapsed, s.QuestionIndex())
		}
	}
}

func TestComboBonusFiresOnceAtThreshold(t *testing.T) {
	s := newCatchSession(20)
	for i := 1; i <= 6; i++ {
		out := presentAndRespond(s, 100*time.Millisecond)
		wantBonus := 0
		if i == 5 {
			wantBonus = 500
		}
		if out.Bonus != wantBonus {
			t.Errorf("perfect #%d: bonus = %d, want %d", i, out.Bonus, wantBonus)
		}
		if out.Combo != i {
			t.Errorf("perfect #%d: combo = %d, want %d", i, out.Combo, i)
		}
	}
	// 6 perfects, one 500 bonus.
	if s.Score() != 6*100+500 {
		t.Errorf("score = %d, want %d", s.Score(), 6*100+500)
	}
}

func TestComboResetsAndReawardsOnReclimb(t *testing.T) {
	s := newCatchSession(20)
	for i := 0; i < 5; i++ {
		presentAndRespond(s, 100*time.Millisecond)
	}
	out := presentAndRespond(s, 200*time.Millisecond) // Good breaks the combo
	if out.Combo != 0 {
		t.Fatalf("combo = %d after Good, want 0", out.Combo)
	}
	for i := 1; i <= 5; i++ {
		out = presentAndRespond(s, 100*time.Millisecond)
	}
	if out.Bonus != 500 {
		t.Errorf("reclimbed combo bonus = %d, want 500", out.Bonus)
	}
	if s.MaxCombo() != 5 {
		t.Errorf("maxCombo = %d, want 5", s.MaxCombo())
	}
}

func TestTooLateResponseIsIgnored(t *testing.T) {
	s := newCatchSession(10)
	out := presentAndRespond(s, 700*time.Millisecond)
	if out.Tier != judge.TierIgnored {
		t.Fatalf("tier = %v, want TierIgnored", out.Tier)
	}
	if s.QuestionIndex() != 0 {
		t.Errorf("questionIndex = %d after ignored response, want 0", s.QuestionIndex())
	}
	if s.Pending() != nil {
		t.Error("pending stimulus survived an ignored response")
	}
	if s.Score() != 0 || s.Combo() != 0 {
		t.Errorf("score/combo = %d/%d changed by ignored response", s.Score(), s.Combo())
	}
}

func TestStrayTapIsNoOp(t *testing.T) {
	s := newCatchSession(10)
	if out := s.Respond("", base); out != nil {
		t.Fatalf("outcome %+v for a tap with no pending stimulus", out)
	}
	if s.QuestionIndex() != 0 || s.Score() != 0 {
		t.Error("stray tap mutated the session")
	}
}

func TestFinishesExactlyAtQuestionCount(t *testing.T) {
	s := newCatchSession(5)
	for i := 1; i <= 5; i++ {
		out := presentAndRespond(s, 100*time.Millisecond)
		if out.Finished != (i == 5) {
			t.Fatalf("question %d: Finished = %v", i, out.Finished)
		}
	}
	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want PhaseFinished", s.Phase())
	}
	// The set is over; further input does nothing.
	if out := presentAndRespond(s, 100*time.Millisecond); out != nil {
		t.Errorf("outcome %+v after the set finished", out)
	}
}

func TestCountsSumToQuestionIndex(t *testing.T) {
	s := newCatchSession(10)
	elapsed := []time.Duration{
		100 * time.Millisecond, // perfect
		200 * time.Millisecond, // good
		400 * time.Millisecond, // miss
		700 * time.Millisecond, // ignored, not counted
		120 * time.Millisecond, // perfect
	}
	for _, e := range elapsed {
		presentAndRespond(s, e)
	}
	sum := s.Count(judge.TierPerfect) + s.Count(judge.TierGood) + s.Count(judge.TierMiss)
	if sum != s.QuestionIndex() {
		t.Errorf("tier counts sum %d != questionIndex %d", sum, s.QuestionIndex())
	}
	if s.QuestionIndex() != 4 {
		t.Errorf("questionIndex = %d, want 4", s.QuestionIndex())
	}
}

func TestResult(t *testing.T) {
	s := newCatchSession(4)
	presentAndRespond(s, 100*time.Millisecond)
	presentAndRespond(s, 120*time.Millisecond)
	presentAndRespond(s, 200*time.Millisecond)
	presentAndRespond(s, 400*time.Millisecond)

	r := s.Result()
	if r.TotalQuestions != 4 || r.Perfects != 2 || r.Goods != 1 || r.Misses != 1 {
		t.Fatalf("counts = %+v", r)
	}
	if r.TotalScore != 250 {
		t.Errorf("TotalScore = %d, want 250", r.TotalScore)
	}
	if r.MaxCombo != 2 {
		t.Errorf("MaxCombo = %d, want 2", r.MaxCombo)
	}
	if r.AverageReactionTimeMs != (100+120+200+400)/4 {
		t.Errorf("AverageReactionTimeMs = %d", r.AverageReactionTimeMs)
	}
	if r.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", r.Accuracy)
	}
}

func TestMatchStrategySession(t *testing.T) {
	cfg := gamecfg.Config{
		Mode:          gamecfg.ModeIdentification,
		Difficulty:    gamecfg.DifficultyNormal,
		Speed:         gamecfg.SpeedNormal,
		QuestionCount: 5,
	}
	s := New(cfg, judge.Match{}, 1)
	s.Present(StimulusEvent{
		Stimulus: stimuli.Stimulus{
			Kind: stimuli.KindWord,
			Word: &stimuli.WordChallenge{Word: "나비", Category: stimuli.WordCommon},
		},
		EmittedAt: base,
	})
	out := s.Respond("나비", base.Add(3*time.Second))
	if out == nil || out.Tier != judge.TierPerfect {
		t.Fatalf("outcome = %+v, want Perfect for exact match", out)
	}
	// Correctness modes do not sample reaction time.
	if r := s.Result(); r.AverageReactionTimeMs != 0 {
		t.Errorf("AverageReactionTimeMs = %d, want 0", r.AverageReactionTimeMs)
	}
}

func TestSameDifferentStrategySession(t *testing.T) {
	cfg := gamecfg.Config{
		Mode:          gamecfg.ModeDiscrimination,
		Difficulty:    gamecfg.DifficultyNormal,
		Speed:         gamecfg.SpeedNormal,
		QuestionCount: 5,
	}
	s := New(cfg, judge.SameDifferent{}, 1)
	s.Present(StimulusEvent{
		Stimulus: stimuli.Stimulus{
			Kind: stimuli.KindPair,
			Pair: &stimuli.Pair{Kind: stimuli.PairPitch, Same: false},
		},
		EmittedAt: base,
	})
	out := s.Respond(judge.AnswerDifferent, base.Add(time.Second))
	if out == nil || out.Tier != judge.TierPerfect {
		t.Fatalf("outcome = %+v, want Perfect for correct judgment", out)
	}
}

func TestStop(t *testing.T) {
	s := newCatchSession(10)
	presentAndRespond(s, 100*time.Millisecond)
	s.Present(StimulusEvent{
		Stimulus:  stimuli.Stimulus{Kind: stimuli.KindSound, Symbol: "땡"},
		EmittedAt: base,
	})
	s.Stop()
	if s.Phase() != PhaseStopped {
		t.Fatalf("phase = %v, want PhaseStopped", s.Phase())
	}
	if s.Pending() != nil {
		t.Error("pending stimulus survived Stop")
	}
	if out := s.Respond("", base); out != nil {
		t.Errorf("outcome %+v after Stop", out)
	}
	// The partial result is still reportable.
	if r := s.Result(); r.TotalQuestions != 1 {
		t.Errorf("TotalQuestions = %d, want 1", r.TotalQuestions)
	}
}
