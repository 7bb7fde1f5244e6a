package judge

import "testing"

var testProfile = DifficultyProfile{
	Name:            "normal",
	PerfectCutoffMs: 150,
	GoodCutoffMs:    350,
	MissCutoffMs:    600,
}

func TestClassify_Tiers(t *testing.T) {
	cases := []struct {
		elapsed int
		want    Tier
	}{
		{0, TierPerfect},
		{100, TierPerfect},
		{149, TierPerfect},
		{150, TierGood}, // cutoff belongs to the next tier
		{349, TierGood},
		{350, TierMiss},
		{500, TierMiss},
		{599, TierMiss},
		{600, TierIgnored},
		{5000, TierIgnored},
	}
	for _, c := range cases {
		got := Classify(c.elapsed, testProfile)
		if got != c.want {
			t.Errorf("Classify(%d) = %v, want %v", c.elapsed, got, c.want)
		}
	}
}

func TestClassify_NegativeElapsedClampsToZero(t *testing.T) {
	if got := Classify(-50, testProfile); got != TierPerfect {
		t.Errorf("Classify(-50) = %v, want TierPerfect", got)
	}
}

func TestTierPoints(t *testing.T) {
	if TierPerfect.Points() != 100 {
		t.Errorf("Perfect points = %d, want 100", TierPerfect.Points())
	}
	if TierGood.Points() != 50 {
		t.Errorf("Good points = %d, want 50", TierGood.Points())
	}
	if TierMiss.Points() != 0 {
		t.Errorf("Miss points = %d, want 0", TierMiss.Points())
	}
	if TierIgnored.Points() != 0 {
		t.Errorf("Ignored points = %d, want 0", TierIgnored.Points())
	}
}

func TestProfileValidate(t *testing.T) {
	if err := testProfile.Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}

	bad := DifficultyProfile{Name: "inverted", PerfectCutoffMs: 400, GoodCutoffMs: 300, MissCutoffMs: 600}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for inverted cutoffs")
	}

	zero := DifficultyProfile{Name: "zero", PerfectCutoffMs: 0, GoodCutoffMs: 300, MissCutoffMs: 600}
	if err := zero.Validate(); err == nil {
		t.Error("expected error for zero perfect cutoff")
	}
}

func TestTimedStrategy(t *testing.T) {
	s := Timed{Profile: testProfile}
	if got := s.Judge(Response{ElapsedMs: 100}); got != TierPerfect {
		t.Errorf("Judge(100ms) = %v, want TierPerfect", got)
	}
	if got := s.Judge(Response{ElapsedMs: 500}); got != TierMiss {
		t.Errorf("Judge(500ms) = %v, want TierMiss", got)
	}
}

func TestMatchStrategy(t *testing.T) {
	s := Match{}
	if got := s.Judge(Response{Answer: "사과", Expected: "사과"}); got != TierPerfect {
		t.Errorf("exact match = %v, want TierPerfect", got)
	}
	if got := s.Judge(Response{Answer: " 사과 ", Expected: "사과"}); got != TierPerfect {
		t.Errorf("whitespace-padded match = %v, want TierPerfect", got)
	}
	if got := s.Judge(Response{Answer: "학교", Expected: "사과"}); got != TierMiss {
		t.Errorf("mismatch = %v, want TierMiss", got)
	}
}

func TestSameDifferentStrategy(t *testing.T) {
	s := SameDifferent{}
	cases := []struct {
		answer   string
		wantSame bool
		want     Tier
	}{
		{AnswerSame, true, TierPerfect},
		{AnswerDifferent, false, TierPerfect},
		{AnswerSame, false, TierMiss},
		{AnswerDifferent, true, TierMiss},
	}
	for _, c := range cases {
		got := s.Judge(Response{Answer: c.answer, WantSame: c.wantSame})
		if got != c.want {
			t.Errorf("Judge(%q, wantSame=%v) = %v, want %v", c.answer, c.wantSame, got, c.want)
		}
	}
}
