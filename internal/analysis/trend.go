package analysis

import "github.com/roach88/guildtrack/internal/ledger"

// MinTrendDays is the number of distinct recorded dates a trend needs.
const MinTrendDays = 2

// TrendRecord is one entity's change across a window.
type TrendRecord struct {
	Name  string `json:"name"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Delta int    `json:"delta"`
}

// TrendReport ranks complete entities by delta over a window.
type TrendReport struct {
	WindowSize   int           `json:"window_size"`
	Window       []ledger.Date `json:"window"`
	RecordedDays int           `json:"recorded_days"`
	Status       Status        `json:"status"`

	// Worst is ascending by delta (least developed first).
	Worst []TrendRecord `json:"worst"`

	// Best is descending by delta (most developed first).
	Best []TrendRecord `json:"best"`
}

// ComputeTrend ranks every entity with complete data over the trailing
// windowSize recorded days. Each ranked list holds at most topN records;
// topN <= 0 means no limit.
func ComputeTrend(observations []ledger.Observation, windowSize, topN int) TrendReport {
	dates := Dates(observations)
	report := TrendReport{
		WindowSize:   windowSize,
		Window:       []ledger.Date{},
		RecordedDays: len(dates),
		Worst:        []TrendRecord{},
		Best:         []TrendRecord{},
	}

	switch {
	case len(observations) == 0:
		report.Status = StatusEmptyLedger
		return report
	case len(dates) < MinTrendDays:
		report.Status = StatusInsufficientHistory
		return report
	}

	report.Window = SelectWindow(dates, windowSize)
	records := trendRecords(FilterComplete(observations, report.Window))
	if len(records) == 0 {
		report.Status = StatusNoQualifying
		return report
	}

	byDelta := func(r TrendRecord) int { return r.Delta }
	report.Worst = rank(records, byDelta, false, topN)
	report.Best = rank(records, byDelta, true, topN)
	report.Status = StatusOK
	return report
}

func trendRecords(series []Series) []TrendRecord {
	records := make([]TrendRecord, 0, len(series))
	for _, s := range series {
		records = append(records, TrendRecord{
			Name:  s.Name,
			From:  s.First(),
			To:    s.Last(),
			Delta: s.Last() - s.First(),
		})
	}
	return records
}
