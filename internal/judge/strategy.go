package judge

import "strings"

// Answer values for same/different judging.
const (
	AnswerSame      = "same"
	AnswerDifferent = "different"
)

// Response is what the session hands to a judging strategy: the learner's
// input plus the facts about the stimulus it answers.
type Response struct {
	ElapsedMs int    // time since the stimulus was presented
	Answer    string // typed or chosen answer, if any
	Expected  string // expected answer for match judging
	WantSame  bool   // ground truth for same/different judging
}

// Strategy classifies a response into a tier. Selection happens once at
// session configuration time; the session never inspects which strategy is
// active.
type Strategy interface {
	Judge(r Response) Tier
}

// Timed judges by reaction time against a difficulty profile. Three scoring
// tiers plus Ignored for responses past the miss cutoff.
type Timed struct {
	Profile DifficultyProfile
}

func (t Timed) Judge(r Response) Tier {
	return Classify(r.ElapsedMs, t.Profile)
}

// Match judges by exact-value equality: Perfect or Miss, no Good tier.
// Comparison trims surrounding whitespace, as typed input carries it.
type Match struct{}

func (Match) Judge(r Response) Tier {
	if strings.TrimSpace(r.Answer) == strings.TrimSpace(r.Expected) {
		return TierPerfect
	}
	return TierMiss
}

// SameDifferent judges a binary same/different choice about a stimulus pair:
// Perfect or Miss, independent of timing.
type SameDifferent struct{}

func (SameDifferent) Judge(r Response) Tier {
	saidSame := r.Answer == AnswerSame
	if saidSame == r.WantSame {
		return TierPerfect
	}
	return TierMiss
}
