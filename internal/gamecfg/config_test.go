package gamecfg

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}

func TestConfigValidate_Rejections(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"unknown mode", Config{Mode: "drum", Difficulty: DifficultyNormal, Speed: SpeedNormal, QuestionCount: 10}},
		{"unknown difficulty", Config{Mode: ModeCatch, Difficulty: "extreme", Speed: SpeedNormal, QuestionCount: 10}},
		{"unknown speed", Config{Mode: ModeCatch, Difficulty: DifficultyNormal, Speed: "ludicrous", QuestionCount: 10}},
		{"bad question count", Config{Mode: ModeCatch, Difficulty: DifficultyNormal, Speed: SpeedNormal, QuestionCount: 7}},
	}
	for _, c := range cases {
		if err := c.cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestDifficultyProfilesAreOrdered(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		p, err := DifficultyProfile(d)
		if err != nil {
			t.Fatalf("DifficultyProfile(%s): %v", d, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("profile %s invalid: %v", d, err)
		}
	}
}

func TestSpeedProfilesAreValid(t *testing.T) {
	for _, s := range []Speed{SpeedVerySlow, SpeedSlow, SpeedNormal, SpeedFast, SpeedVeryFast} {
		p, err := SpeedProfileFor(s)
		if err != nil {
			t.Fatalf("SpeedProfileFor(%s): %v", s, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("speed %s invalid: %v", s, err)
		}
	}
}

func TestHarderMeansFaster(t *testing.T) {
	easy, _ := DifficultyProfile(DifficultyEasy)
	hard, _ := DifficultyProfile(DifficultyHard)
	if hard.PerfectCutoffMs >= easy.PerfectCutoffMs {
		t.Errorf("hard perfect cutoff %d should be tighter than easy %d", hard.PerfectCutoffMs, easy.PerfectCutoffMs)
	}
}
