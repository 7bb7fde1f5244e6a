package stimuli

import (
	"math/rand"
	"testing"

	"github.com/abhisek/hearo/internal/gamecfg"
)

func newTestPicker() *Picker {
	return NewPicker(rand.New(rand.NewSource(42)))
}

func TestSound(t *testing.T) {
	p := newTestPicker()
	s := p.Sound()
	if s.Kind != KindSound {
		t.Fatalf("Kind = %v, want KindSound", s.Kind)
	}
	found := false
	for _, sym := range CatchSounds {
		if s.Symbol == sym {
			found = true
		}
	}
	if !found {
		t.Errorf("Symbol %q not in CatchSounds", s.Symbol)
	}
}

func TestPair_WordFilteredByDifficulty(t *testing.T) {
	p := newTestPicker()
	for i := 0; i < 100; i++ {
		s := p.Pair(PairWord, gamecfg.DifficultyEasy)
		if s.Kind != KindPair || s.Pair == nil {
			t.Fatal("expected a pair stimulus")
		}
		if s.Pair.Difficulty != PairEasy {
			t.Fatalf("easy game drew %s word pair", s.Pair.Difficulty)
		}
	}
}

func TestPair_NormalExcludesHard(t *testing.T) {
	p := newTestPicker()
	for i := 0; i < 100; i++ {
		s := p.Pair(PairWord, gamecfg.DifficultyNormal)
		if s.Pair.Difficulty == PairHard {
			t.Fatal("normal game drew a hard word pair")
		}
	}
}

func TestPair_PitchAndDuration(t *testing.T) {
	p := newTestPicker()
	if s := p.Pair(PairPitch, gamecfg.DifficultyNormal); s.Pair.Kind != PairPitch {
		t.Errorf("pitch pool returned %s pair", s.Pair.Kind)
	}
	if s := p.Pair(PairDuration, gamecfg.DifficultyNormal); s.Pair.Kind != PairDuration {
		t.Errorf("duration pool returned %s pair", s.Pair.Kind)
	}
}

func TestWord_FilteredByDifficulty(t *testing.T) {
	p := newTestPicker()
	for i := 0; i < 100; i++ {
		s := p.Word(gamecfg.DifficultyEasy)
		if s.Kind != KindWord || s.Word == nil {
			t.Fatal("expected a word stimulus")
		}
		if s.Word.Category != WordCommon {
			t.Fatalf("easy game drew %s word", s.Word.Category)
		}
	}
}

func TestWord_HardAllowsAdvanced(t *testing.T) {
	p := newTestPicker()
	sawAdvanced := false
	for i := 0; i < 500; i++ {
		if p.Word(gamecfg.DifficultyHard).Word.Category == WordAdvanced {
			sawAdvanced = true
			break
		}
	}
	if !sawAdvanced {
		t.Error("hard game never drew an advanced word in 500 draws")
	}
}

func TestPickerWithPack(t *testing.T) {
	pack := &Pack{
		Name: "p",
		WordChallenges: []WordChallenge{
			{Word: "나비", Category: WordCommon},
		},
	}
	p := NewPickerWithPack(rand.New(rand.NewSource(1)), pack)
	s := p.Word(gamecfg.DifficultyEasy)
	if s.Word.Word != "나비" {
		t.Errorf("pack word not used, got %q", s.Word.Word)
	}
}
