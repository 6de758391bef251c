// Package testutil provides ledger fixtures shared by package tests.
package testutil

import (
	"math"
	"time"

	"github.com/roach88/guildtrack/internal/ledger"
)

// Gap marks a day with no observation in Series.
const Gap = math.MinInt

// Days returns n consecutive dates starting at start (YYYY-MM-DD).
//
// Panics if start is not a valid date; fixtures are static.
func Days(start string, n int) []ledger.Date {
	t, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic("testutil: bad start date " + start)
	}
	days := make([]ledger.Date, n)
	for i := range days {
		days[i] = ledger.DateOf(t.AddDate(0, 0, i))
	}
	return days
}

// Series records one entity on consecutive days from start. A Gap level
// leaves that day unrecorded.
//
//	testutil.Series("2025-03-01", "alice", 10, 12, 15)
//	testutil.Series("2025-03-01", "bob", 10, testutil.Gap, 15)
func Series(start, name string, levels ...int) []ledger.Observation {
	days := Days(start, len(levels))
	var out []ledger.Observation
	for i, level := range levels {
		if level == Gap {
			continue
		}
		out = append(out, ledger.Observation{
			Date:  days[i],
			Name:  name,
			Level: ledger.IntLevel(level),
		})
	}
	return out
}

// Join concatenates fixture slices in order.
func Join(parts ...[]ledger.Observation) []ledger.Observation {
	var out []ledger.Observation
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Snapshot builds the entries one acquisition run would return.
func Snapshot(pairs ...any) []ledger.Entry {
	out := make([]ledger.Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, ledger.Entry{Name: pairs[i].(string), Level: pairs[i+1].(int)})
	}
	return out
}
