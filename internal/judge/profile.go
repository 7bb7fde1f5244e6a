package judge

import "fmt"

// DifficultyProfile holds the three ascending reaction-time cutoffs used by
// timed judging. A cutoff is the exclusive upper bound of its tier: a response
// landing exactly on PerfectCutoffMs is Good, not Perfect.
type DifficultyProfile struct {
	Name            string
	PerfectCutoffMs int
	GoodCutoffMs    int
	MissCutoffMs    int
}

// Validate checks the cutoff ordering invariant.
func (p DifficultyProfile) Validate() error {
	if p.PerfectCutoffMs <= 0 {
		return fmt.Errorf("profile %q: perfect cutoff must be positive, got %d", p.Name, p.PerfectCutoffMs)
	}
	if p.PerfectCutoffMs >= p.GoodCutoffMs {
		return fmt.Errorf("profile %q: perfect cutoff %d must be below good cutoff %d", p.Name, p.PerfectCutoffMs, p.GoodCutoffMs)
	}
	if p.GoodCutoffMs >= p.MissCutoffMs {
		return fmt.Errorf("profile %q: good cutoff %d must be below miss cutoff %d", p.Name, p.GoodCutoffMs, p.MissCutoffMs)
	}
	return nil
}

// Classify maps elapsed milliseconds since stimulus onset to a tier.
// Negative elapsed times (clock skew) are clamped to zero rather than rejected:
// a mis-timed tap must degrade, never error.
func Classify(elapsedMs int, p DifficultyProfile) Tier {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	switch {
	case elapsedMs < p.PerfectCutoffMs:
		return TierPerfect
	case elapsedMs < p.GoodCutoffMs:
		return TierGood
	case elapsedMs < p.MissCutoffMs:
		return TierMiss
	}
	return TierIgnored
}
