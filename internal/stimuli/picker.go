package stimuli

import (
	"math/rand"

	"github.com/abhisek/hearo/internal/gamecfg"
)

// Picker draws random stimuli from the content tables, filtered by the
// session's difficulty. A Picker is not safe for concurrent use; the engine
// serializes all access.
type Picker struct {
	rng            *rand.Rand
	wordPairs      []Pair
	wordChallenges []WordChallenge
}

// NewPicker creates a Picker over the built-in tables.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{
		rng:            rng,
		wordPairs:      WordPairs,
		wordChallenges: WordChallenges,
	}
}

// NewPickerWithPack creates a Picker whose word content comes from an
// external pack instead of the built-in tables.
func NewPickerWithPack(rng *rand.Rand, pack *Pack) *Picker {
	p := NewPicker(rng)
	if pack == nil {
		return p
	}
	if len(pack.WordPairs) > 0 {
		p.wordPairs = pack.WordPairs
	}
	if len(pack.WordChallenges) > 0 {
		p.wordChallenges = pack.WordChallenges
	}
	return p
}

// Sound returns a random catch-mode sound stimulus.
func (p *Picker) Sound() Stimulus {
	s := CatchSounds[p.rng.Intn(len(CatchSounds))]
	return Stimulus{Kind: KindSound, Symbol: s}
}

// pairDifficulties maps game difficulty to the word-pair grades it allows.
var pairDifficulties = map[gamecfg.Difficulty][]PairDifficulty{
	gamecfg.DifficultyEasy:   {PairEasy},
	gamecfg.DifficultyNormal: {PairEasy, PairMedium},
	gamecfg.DifficultyHard:   {PairEasy, PairMedium, PairHard},
}

// Pair returns a random discrimination pair of the given kind. Word pairs
// are filtered so harder grades only appear on harder game difficulties.
func (p *Picker) Pair(kind PairKind, difficulty gamecfg.Difficulty) Stimulus {
	var pool []Pair
	switch kind {
	case PairPitch:
		pool = PitchPairs
	case PairDuration:
		pool = DurationPairs
	default:
		allowed := pairDifficulties[difficulty]
		for _, pr := range p.wordPairs {
			for _, d := range allowed {
				if pr.Difficulty == d {
					pool = append(pool, pr)
					break
				}
			}
		}
	}
	if len(pool) == 0 {
		pool = PitchPairs
	}
	pair := pool[p.rng.Intn(len(pool))]
	return Stimulus{Kind: KindPair, Pair: &pair}
}

// wordCategories maps game difficulty to the word categories it allows.
var wordCategories = map[gamecfg.Difficulty][]WordCategory{
	gamecfg.DifficultyEasy:   {WordCommon},
	gamecfg.DifficultyNormal: {WordCommon, WordIntermediate},
	gamecfg.DifficultyHard:   {WordCommon, WordIntermediate, WordAdvanced},
}

// Word returns a random identification challenge for the difficulty.
func (p *Picker) Word(difficulty gamecfg.Difficulty) Stimulus {
	allowed := wordCategories[difficulty]
	var pool []WordChallenge
	for _, w := range p.wordChallenges {
		for _, c := range allowed {
			if w.Category == c {
				pool = append(pool, w)
				break
			}
		}
	}
	if len(pool) == 0 {
		pool = p.wordChallenges
	}
	w := pool[p.rng.Intn(len(pool))]
	return Stimulus{Kind: KindWord, Word: &w}
}
