// Package levels holds the avatar level table and the lookup from cumulative
// perfect counts to a level. The table is display metadata plus thresholds;
// the current level is always derived from totalPerfects, never stored.
package levels

import "fmt"

// Level is one row of the level table.
type Level struct {
	Level            int
	RequiredPerfects int
	Name             string
	Badge            string
}

// Table is the ordered level ladder. Thresholds are strictly increasing and
// level 1 starts at zero so every learner has a level.
var Table = []Level{
	{Level: 1, RequiredPerfects: 0, Name: "Hatchling Listener", Badge: "🥚"},
	{Level: 2, RequiredPerfects: 10, Name: "Budding Reactor", Badge: "🐣"},
	{Level: 3, RequiredPerfects: 30, Name: "Steady Reactor", Badge: "🐤"},
	{Level: 4, RequiredPerfects: 60, Name: "Sharp Reactor", Badge: "🐦"},
	{Level: 5, RequiredPerfects: 100, Name: "Sound Chaser", Badge: "🦉"},
	{Level: 6, RequiredPerfects: 150, Name: "Echo Hunter", Badge: "🦅"},
	{Level: 7, RequiredPerfects: 220, Name: "Golden Ear", Badge: "🐲"},
	{Level: 8, RequiredPerfects: 300, Name: "Hearing Virtuoso", Badge: "👑"},
}

// ForPerfects returns the highest level whose threshold is at or below the
// cumulative perfect count.
func ForPerfects(totalPerfects int) Level {
	return forPerfects(Table, totalPerfects)
}

func forPerfects(table []Level, totalPerfects int) Level {
	current := table[0]
	for _, l := range table {
		if totalPerfects >= l.RequiredPerfects {
			current = l
		}
	}
	return current
}

// Next returns the level after the given one, or false at the top of the
// ladder.
func Next(level int) (Level, bool) {
	for _, l := range Table {
		if l.Level == level+1 {
			return l, true
		}
	}
	return Level{}, false
}

// Progress returns the fraction [0,1] of the way from the current level's
// threshold to the next one. At the top level it reports 1.
func Progress(totalPerfects int) float64 {
	cur := ForPerfects(totalPerfects)
	next, ok := Next(cur.Level)
	if !ok {
		return 1
	}
	span := next.RequiredPerfects - cur.RequiredPerfects
	if span <= 0 {
		return 1
	}
	p := float64(totalPerfects-cur.RequiredPerfects) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Validate checks the table invariants: strictly increasing thresholds,
// level 1 at zero, contiguous level numbers.
func Validate(table []Level) error {
	if len(table) == 0 {
		return fmt.Errorf("level table is empty")
	}
	if table[0].RequiredPerfects != 0 {
		return fmt.Errorf("level %d threshold must be 0, got %d", table[0].Level, table[0].RequiredPerfects)
	}
	for i := 1; i < len(table); i++ {
		if table[i].RequiredPerfects <= table[i-1].RequiredPerfects {
			return fmt.Errorf("level %d threshold %d not above previous %d",
				table[i].Level, table[i].RequiredPerfects, table[i-1].RequiredPerfects)
		}
		if table[i].Level != table[i-1].Level+1 {
			return fmt.Errorf("level numbers not contiguous at %d", table[i].Level)
		}
	}
	return nil
}
