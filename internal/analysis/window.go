package analysis

import (
	"slices"

	"github.com/roach88/guildtrack/internal/ledger"
)

// Dates returns the distinct dates present in observations, ascending.
func Dates(observations []ledger.Observation) []ledger.Date {
	seen := make(map[ledger.Date]struct{}, len(observations))
	dates := []ledger.Date{}
	for _, obs := range observations {
		if _, ok := seen[obs.Date]; ok {
			continue
		}
		seen[obs.Date] = struct{}{}
		dates = append(dates, obs.Date)
	}
	slices.Sort(dates)
	return dates
}

// SelectWindow returns the trailing size distinct dates of dates in
// ascending order, or all of them when fewer exist. Input order and
// duplicates do not matter. size <= 0 yields an empty window.
func SelectWindow(dates []ledger.Date, size int) []ledger.Date {
	if size <= 0 {
		return []ledger.Date{}
	}

	distinct := slices.Clone(dates)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)

	if len(distinct) > size {
		distinct = distinct[len(distinct)-size:]
	}
	return distinct
}
