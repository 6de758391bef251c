package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/guildtrack/internal/analysis"
	"github.com/roach88/guildtrack/internal/ledger"
	"github.com/roach88/guildtrack/internal/report"
)

func seedWeek(h *cliHarness, days int) {
	snapshots := make([][]ledger.Entry, days)
	for i := range snapshots {
		snapshots[i] = weekSnapshot(i)
	}
	h.seed("2025-03-01", snapshots...)
}

func TestProject_Text(t *testing.T) {
	h := newHarness(t)
	seedWeek(h, 7)

	require.Equal(t, ExitSuccess, h.exec("project"), h.stderr.String())

	var want bytes.Buffer
	require.NoError(t, report.WriteProjection(&want, analysis.ProjectNext(weekObservations(), 10)))
	assert.Equal(t, want.String(), h.stdout.String())
}

func TestProject_Top(t *testing.T) {
	h := newHarness(t)
	seedWeek(h, 7)

	require.Equal(t, ExitSuccess, h.exec("project", "--top", "1"))
	assert.Contains(t, h.stdout.String(), "Projected level in 7 days (top 1)")
	assert.Contains(t, h.stdout.String(), "bob   50    52       +2     54")
	assert.NotContains(t, h.stdout.String(), "alice")
}

func TestProject_InsufficientHistory(t *testing.T) {
	h := newHarness(t)
	seedWeek(h, 6)

	require.Equal(t, ExitSuccess, h.exec("project"))
	assert.Equal(t, "Fewer than 7 recorded days (have 6); cannot project 7 days ahead yet.\n\n", h.stdout.String())
}

func TestProject_JSON(t *testing.T) {
	h := newHarness(t)
	seedWeek(h, 7)

	require.Equal(t, ExitSuccess, h.exec("project", "--format", "json"))

	var projection analysis.ProjectionReport
	resp := decodeResponse(t, h.stdout.Bytes(), &projection)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 7, projection.WindowSize)
	assert.Equal(t, []analysis.ProjectionRecord{
		{Name: "bob", From: 50, Current: 52, Delta: 2, Projected: 54},
		{Name: "carol", From: 80, Current: 74, Delta: -6, Projected: 68},
		{Name: "alice", From: 100, Current: 130, Delta: 30, Projected: 160},
	}, projection.Records)
}
