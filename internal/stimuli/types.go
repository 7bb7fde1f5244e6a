// Package stimuli holds the content the trainer presents: catch-mode sound
// symbols, discrimination pairs and identification word challenges, plus the
// difficulty-filtered random pickers over them.
package stimuli

// Kind tags the variant a Stimulus carries.
type Kind string

const (
	KindSound Kind = "sound"
	KindPair  Kind = "pair"
	KindWord  Kind = "word"
)

// PairKind distinguishes what a discrimination pair varies on.
type PairKind string

const (
	PairPitch    PairKind = "pitch"
	PairDuration PairKind = "duration"
	PairWord     PairKind = "word"
)

// PairDifficulty grades word pairs by how subtle the phonetic difference is.
type PairDifficulty string

const (
	PairEasy   PairDifficulty = "easy"
	PairMedium PairDifficulty = "medium"
	PairHard   PairDifficulty = "hard"
)

// Pair is one discrimination prompt: two sounds or words presented in
// sequence, with the same/different ground truth.
type Pair struct {
	Kind       PairKind
	First      string
	Second     string
	Same       bool
	Difficulty PairDifficulty // word pairs only
}

// WordCategory grades identification words by frequency of use.
type WordCategory string

const (
	WordCommon       WordCategory = "common"
	WordIntermediate WordCategory = "intermediate"
	WordAdvanced     WordCategory = "advanced"
)

// WordChallenge is one identification prompt: the learner hears the word and
// types it back. Pronunciation is shown as the stand-in for audio playback;
// the hint appears after a wrong answer.
type WordChallenge struct {
	Word          string
	Pronunciation string
	Category      WordCategory
	Hint          string
}

// Stimulus is one prompt presented to the learner. Exactly one of the
// variant fields is set, indicated by Kind.
type Stimulus struct {
	Kind   Kind
	Symbol string         // KindSound
	Pair   *Pair          // KindPair
	Word   *WordChallenge // KindWord
}
