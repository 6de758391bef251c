package report

import (
	"fmt"
	"io"

	"github.com/roach88/guildtrack/internal/analysis"
)

// TrendTables returns the "least developed" and "most developed" tables of
// an OK trend report.
func TrendTables(r analysis.TrendReport) []Table {
	headers := []string{"name", "from", "to", "delta"}
	rows := func(records []analysis.TrendRecord) [][]string {
		out := make([][]string, len(records))
		for i, rec := range records {
			out[i] = []string{rec.Name, itoa(rec.From), itoa(rec.To), SignedDelta(rec.Delta)}
		}
		return out
	}

	return []Table{
		{
			Title:   fmt.Sprintf("Least developed over the last %s (top %d)", days(len(r.Window)), len(r.Worst)),
			Headers: headers,
			Rows:    rows(r.Worst),
		},
		{
			Title:   fmt.Sprintf("Most developed over the last %s (top %d)", days(len(r.Window)), len(r.Best)),
			Headers: headers,
			Rows:    rows(r.Best),
		},
	}
}

// ProjectionTable returns the table of an OK projection report.
func ProjectionTable(r analysis.ProjectionReport) Table {
	rows := make([][]string, len(r.Records))
	for i, rec := range r.Records {
		rows[i] = []string{rec.Name, itoa(rec.From), itoa(rec.Current), SignedDelta(rec.Delta), itoa(rec.Projected)}
	}
	return Table{
		Title:   fmt.Sprintf("Projected level in %s (top %d)", days(r.WindowSize), len(r.Records)),
		Headers: []string{"name", "from", "current", "delta", "projected"},
		Rows:    rows,
	}
}

// DatesTable lists recorded days.
func DatesTable(summaries []analysis.DaySummary) Table {
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{string(s.Date), itoa(s.Entities), itoa(s.Rows)}
	}
	return Table{
		Title:   fmt.Sprintf("Recorded days (%d)", len(summaries)),
		Headers: []string{"date", "entities", "rows"},
		Rows:    rows,
	}
}

// WriteTrend renders a trend report, or its advisory message.
func WriteTrend(w io.Writer, r analysis.TrendReport) error {
	switch r.Status {
	case analysis.StatusEmptyLedger:
		return writeLines(w, "Ledger is empty; no trend analysis.")
	case analysis.StatusInsufficientHistory:
		return writeLines(w, fmt.Sprintf("Fewer than %d recorded days (have %d); not enough history for a trend yet.",
			analysis.MinTrendDays, r.RecordedDays))
	}

	if err := writeLines(w, fmt.Sprintf("Trend window (%s): %s", days(len(r.Window)), joinDates(r.Window))); err != nil {
		return err
	}
	if r.Status == analysis.StatusNoQualifying {
		return writeLines(w, fmt.Sprintf("No entities with complete data over the last %s.", days(len(r.Window))))
	}

	for _, t := range TrendTables(r) {
		if err := t.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteProjection renders a projection report, or its advisory message.
func WriteProjection(w io.Writer, r analysis.ProjectionReport) error {
	switch r.Status {
	case analysis.StatusEmptyLedger:
		return writeLines(w, "Ledger is empty; no projection.")
	case analysis.StatusInsufficientHistory:
		return writeLines(w, fmt.Sprintf("Fewer than %d recorded days (have %d); cannot project %s ahead yet.",
			r.WindowSize, r.RecordedDays, days(r.WindowSize)))
	}

	if err := writeLines(w, fmt.Sprintf("Projection window (%s): %s", days(len(r.Window)), joinDates(r.Window))); err != nil {
		return err
	}
	if r.Status == analysis.StatusNoQualifying {
		return writeLines(w, fmt.Sprintf("No entities with complete data over the last %s; no projection.", days(len(r.Window))))
	}

	return ProjectionTable(r).Render(w)
}

// WriteDates renders the recorded-days table.
func WriteDates(w io.Writer, summaries []analysis.DaySummary) error {
	if len(summaries) == 0 {
		return writeLines(w, "Ledger is empty.")
	}
	return DatesTable(summaries).Render(w)
}

// writeLines writes each line and then a terminating blank line.
func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
