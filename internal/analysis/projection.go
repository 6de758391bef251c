package analysis

import "github.com/roach88/guildtrack/internal/ledger"

// ProjectionDays is both the window the projection reads and the horizon it
// extrapolates over.
const ProjectionDays = 7

// ProjectionRecord extrapolates one entity's last-window delta forward.
type ProjectionRecord struct {
	Name      string `json:"name"`
	From      int    `json:"from"`
	Current   int    `json:"current"`
	Delta     int    `json:"delta"`
	Projected int    `json:"projected"`
}

// ProjectionReport ranks complete entities by projected level, lowest first.
type ProjectionReport struct {
	WindowSize   int                `json:"window_size"`
	Window       []ledger.Date      `json:"window"`
	RecordedDays int                `json:"recorded_days"`
	Status       Status             `json:"status"`
	Records      []ProjectionRecord `json:"projections"`
}

// ProjectNext projects each complete entity's level ProjectionDays ahead,
// assuming its delta over the last ProjectionDays recorded days repeats.
// Values are not clamped. At most topN records are kept; topN <= 0 means no
// limit.
func ProjectNext(observations []ledger.Observation, topN int) ProjectionReport {
	dates := Dates(observations)
	report := ProjectionReport{
		WindowSize:   ProjectionDays,
		Window:       []ledger.Date{},
		RecordedDays: len(dates),
		Records:      []ProjectionRecord{},
	}

	switch {
	case len(observations) == 0:
		report.Status = StatusEmptyLedger
		return report
	case len(dates) < ProjectionDays:
		report.Status = StatusInsufficientHistory
		return report
	}

	report.Window = SelectWindow(dates, ProjectionDays)
	trends := trendRecords(FilterComplete(observations, report.Window))
	if len(trends) == 0 {
		report.Status = StatusNoQualifying
		return report
	}

	projections := make([]ProjectionRecord, 0, len(trends))
	for _, t := range trends {
		projections = append(projections, ProjectionRecord{
			Name:      t.Name,
			From:      t.From,
			Current:   t.To,
			Delta:     t.Delta,
			Projected: t.To + t.Delta,
		})
	}

	report.Records = rank(projections, func(p ProjectionRecord) int { return p.Projected }, false, topN)
	report.Status = StatusOK
	return report
}
