package session

import (
	"github.com/abhisek/hearo/internal/gamecfg"
	"github.com/abhisek/hearo/internal/judge"
)

// Result is the immutable summary of a finished or abandoned set.
type Result struct {
	Mode           gamecfg.Mode
	Difficulty     gamecfg.Difficulty
	SetNumber      int
	TotalQuestions int

	Perfects int
	Goods    int
	Misses   int

	TotalScore int
	MaxCombo   int

	// AverageReactionTimeMs is the mean reaction time over counted responses,
	// 0 for modes without timing and for sets with no responses.
	AverageReactionTimeMs int

	// Accuracy is perfects over answered questions, in [0, 1].
	Accuracy float64
}

// Result snapshots the session's totals. Valid at any point; the engine calls
// it once the session finishes or is stopped.
func (s *Session) Result() Result {
	r := Result{
		Mode:           s.cfg.Mode,
		Difficulty:     s.cfg.Difficulty,
		SetNumber:      s.setNumber,
		TotalQuestions: s.questionIndex,
		Perfects:       s.counts[judge.TierPerfect],
		Goods:          s.counts[judge.TierGood],
		Misses:         s.counts[judge.TierMiss],
		TotalScore:     s.score,
		MaxCombo:       s.maxCombo,
	}
	if len(s.reactionMs) > 0 {
		sum := 0
		for _, ms := range s.reactionMs {
			sum += ms
		}
		r.AverageReactionTimeMs = sum / len(s.reactionMs)
	}
	if r.TotalQuestions > 0 {
		r.Accuracy = float64(r.Perfects) / float64(r.TotalQuestions)
	}
	return r
}
