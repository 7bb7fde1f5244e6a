package judge

// Tier classifies a single response.
type Tier int

const (
	TierPerfect Tier = iota
	TierGood
	TierMiss
	// TierIgnored marks a response that arrived too late to count. It awards
	// nothing and does not advance the question index.
	TierIgnored
)

// Points returns the base score awarded for the tier, before combo bonuses.
func (t Tier) Points() int {
	switch t {
	case TierPerfect:
		return 100
	case TierGood:
		return 50
	}
	return 0
}

func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierGood:
		return "good"
	case TierMiss:
		return "miss"
	case TierIgnored:
		return "ignored"
	}
	return "unknown"
}

// TierFromString parses a tier string back to the Tier type.
func TierFromString(s string) Tier {
	switch s {
	case "perfect":
		return TierPerfect
	case "good":
		return TierGood
	case "ignored":
		return TierIgnored
	}
	return TierMiss
}
