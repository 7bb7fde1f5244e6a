package rewards

// Rank is one tier of the discrimination-mode listening rank ladder.
type Rank struct {
	Rank           int
	RequiredPoints int
	Name           string
}

// RankTable is ordered by ascending threshold. Rank 1 is always attainable.
var RankTable = []Rank{
	{Rank: 1, RequiredPoints: 0, Name: "초급 청취자"},
	{Rank: 2, RequiredPoints: 100, Name: "발음 감별사"},
	{Rank: 3, RequiredPoints: 300, Name: "소리 탐정"},
	{Rank: 4, RequiredPoints: 600, Name: "청각 마스터"},
	{Rank: 5, RequiredPoints: 1000, Name: "음성 전문가"},
}

// RankForPoints returns the highest rank whose threshold the points meet.
func RankForPoints(points int) Rank {
	r := RankTable[0]
	for _, cand := range RankTable {
		if points >= cand.RequiredPoints {
			r = cand
		}
	}
	return r
}

// NextRank returns the rank after r, or nil at the top of the ladder.
func NextRank(r Rank) *Rank {
	for i := range RankTable {
		if RankTable[i].Rank == r.Rank && i+1 < len(RankTable) {
			next := RankTable[i+1]
			return &next
		}
	}
	return nil
}
