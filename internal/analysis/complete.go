package analysis

import (
	"slices"

	"github.com/roach88/guildtrack/internal/ledger"
)

// Series is one entity's levels across a window, one per window date.
type Series struct {
	Name   string
	Levels []int
}

// First returns the level on the oldest window date.
func (s Series) First() int { return s.Levels[0] }

// Last returns the level on the newest window date.
func (s Series) Last() int { return s.Levels[len(s.Levels)-1] }

type dayKey struct {
	date ledger.Date
	name string
}

// FilterComplete returns, in ascending name order, the entities that have a
// valid level on every date of window. Invalid levels count as absent. When
// the ledger holds several rows for one (date, name), the last one wins.
func FilterComplete(observations []ledger.Observation, window []ledger.Date) []Series {
	if len(window) == 0 {
		return []Series{}
	}

	inWindow := make(map[ledger.Date]struct{}, len(window))
	for _, d := range window {
		inWindow[d] = struct{}{}
	}

	levels := make(map[dayKey]int)
	names := make(map[string]struct{})
	for _, obs := range observations {
		if _, ok := inWindow[obs.Date]; !ok {
			continue
		}
		if !obs.Level.Valid {
			continue
		}
		levels[dayKey{obs.Date, obs.Name}] = obs.Level.Value
		names[obs.Name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	slices.Sort(sorted)

	complete := []Series{}
	for _, name := range sorted {
		series := Series{Name: name, Levels: make([]int, 0, len(window))}
		for _, d := range window {
			level, ok := levels[dayKey{d, name}]
			if !ok {
				break
			}
			series.Levels = append(series.Levels, level)
		}
		if len(series.Levels) == len(window) {
			complete = append(complete, series)
		}
	}
	return complete
}
