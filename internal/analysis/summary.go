package analysis

import "github.com/roach88/guildtrack/internal/ledger"

// DaySummary counts the entities with a valid level on one recorded date.
type DaySummary struct {
	Date     ledger.Date `json:"date"`
	Entities int         `json:"entities"`
	Rows     int         `json:"rows"`
}

// Summarize returns one DaySummary per distinct date, ascending. Rows counts
// every ledger row for the date, including duplicates and invalid levels;
// Entities counts distinct names with a valid level.
func Summarize(observations []ledger.Observation) []DaySummary {
	rows := make(map[ledger.Date]int)
	names := make(map[ledger.Date]map[string]struct{})
	for _, obs := range observations {
		rows[obs.Date]++
		if !obs.Level.Valid {
			continue
		}
		if names[obs.Date] == nil {
			names[obs.Date] = make(map[string]struct{})
		}
		names[obs.Date][obs.Name] = struct{}{}
	}

	dates := Dates(observations)
	summaries := make([]DaySummary, 0, len(dates))
	for _, d := range dates {
		summaries = append(summaries, DaySummary{
			Date:     d,
			Entities: len(names[d]),
			Rows:     rows[d],
		})
	}
	return summaries
}
