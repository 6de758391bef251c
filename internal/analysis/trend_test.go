package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/guildtrack/internal/ledger"
	"github.com/roach88/guildtrack/internal/testutil"
)

func TestComputeTrend_DeltaIsLastMinusFirst(t *testing.T) {
	obs := testutil.Series("2025-03-01", "alice", 10, 12, 15)

	report := ComputeTrend(obs, 3, 10)

	require.Equal(t, StatusOK, report.Status)
	want := []TrendRecord{{Name: "alice", From: 10, To: 15, Delta: 5}}
	assert.Equal(t, want, report.Worst)
	assert.Equal(t, want, report.Best)
	assert.Equal(t, testutil.Days("2025-03-01", 3), report.Window)
	assert.Equal(t, 3, report.RecordedDays)
}

func TestComputeTrend_UsesTrailingWindow(t *testing.T) {
	obs := testutil.Series("2025-03-01", "alice", 1, 5, 10, 20, 40)

	report := ComputeTrend(obs, 3, 10)

	assert.Equal(t, testutil.Days("2025-03-03", 3), report.Window)
	assert.Equal(t, []TrendRecord{{Name: "alice", From: 10, To: 40, Delta: 30}}, report.Worst)
}

func TestComputeTrend_ShortHistoryUsesAllDays(t *testing.T) {
	obs := testutil.Series("2025-03-01", "alice", 10, 13)

	report := ComputeTrend(obs, 7, 10)

	require.Equal(t, StatusOK, report.Status)
	assert.Len(t, report.Window, 2)
	assert.Equal(t, 3, report.Worst[0].Delta)
}

func TestComputeTrend_RanksBothDirections(t *testing.T) {
	obs := testutil.Join(
		testutil.Series("2025-03-01", "slow", 50, 51, 51),
		testutil.Series("2025-03-01", "fast", 10, 20, 30),
		testutil.Series("2025-03-01", "mid", 5, 8, 10),
		testutil.Series("2025-03-01", "down", 9, 8, 7),
	)

	report := ComputeTrend(obs, 3, 10)

	assert.Equal(t, []string{"down", "slow", "mid", "fast"}, trendNames(report.Worst))
	assert.Equal(t, []string{"fast", "mid", "slow", "down"}, trendNames(report.Best))
	assert.Equal(t, -2, report.Worst[0].Delta)
}

func TestComputeTrend_TiesKeepNameOrderInBothLists(t *testing.T) {
	obs := testutil.Join(
		testutil.Series("2025-03-01", "carol", 1, 4),
		testutil.Series("2025-03-01", "alice", 1, 4),
		testutil.Series("2025-03-01", "bob", 1, 4),
		testutil.Series("2025-03-01", "dave", 1, 9),
	)

	report := ComputeTrend(obs, 2, 10)

	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, trendNames(report.Worst))
	assert.Equal(t, []string{"dave", "alice", "bob", "carol"}, trendNames(report.Best))
}

func TestComputeTrend_TruncatesToTopN(t *testing.T) {
	obs := testutil.Join(
		testutil.Series("2025-03-01", "a", 0, 1),
		testutil.Series("2025-03-01", "b", 0, 2),
		testutil.Series("2025-03-01", "c", 0, 3),
	)

	report := ComputeTrend(obs, 2, 2)
	assert.Equal(t, []string{"a", "b"}, trendNames(report.Worst))
	assert.Equal(t, []string{"c", "b"}, trendNames(report.Best))

	report = ComputeTrend(obs, 2, 0)
	assert.Len(t, report.Worst, 3, "topN <= 0 keeps everything")
}

func TestComputeTrend_IncompleteEntitiesExcluded(t *testing.T) {
	obs := testutil.Join(
		testutil.Series("2025-03-01", "A", 10, 11, 12),
		testutil.Series("2025-03-01", "B", 10, testutil.Gap, 99),
	)

	report := ComputeTrend(obs, 3, 10)
	assert.Equal(t, []string{"A"}, trendNames(report.Worst))
}

func TestComputeTrend_AdvisoryOutcomes(t *testing.T) {
	tests := []struct {
		name string
		obs  []ledger.Observation
		want Status
	}{
		{name: "empty ledger", obs: nil, want: StatusEmptyLedger},
		{name: "single day", obs: testutil.Series("2025-03-01", "a", 1), want: StatusInsufficientHistory},
		{
			name: "single day many entities",
			obs: testutil.Join(
				testutil.Series("2025-03-01", "a", 1),
				testutil.Series("2025-03-01", "b", 2),
			),
			want: StatusInsufficientHistory,
		},
		{
			name: "no complete entity",
			obs: testutil.Join(
				testutil.Series("2025-03-01", "a", 1, testutil.Gap),
				testutil.Series("2025-03-01", "b", testutil.Gap, 2),
			),
			want: StatusNoQualifying,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ComputeTrend(tt.obs, 3, 10)
			assert.Equal(t, tt.want, report.Status)
			assert.True(t, report.Status.Advisory())
			assert.Empty(t, report.Worst)
			assert.Empty(t, report.Best)
			assert.NotNil(t, report.Worst)
			assert.NotNil(t, report.Best)
		})
	}
}

func TestComputeTrend_ZeroWindowHasNoQualifying(t *testing.T) {
	obs := testutil.Series("2025-03-01", "a", 1, 2)

	report := ComputeTrend(obs, 0, 10)
	assert.Equal(t, StatusNoQualifying, report.Status)
	assert.Empty(t, report.Window)
}

func TestComputeTrend_DoesNotAssumeMonotonicLevels(t *testing.T) {
	obs := testutil.Series("2025-03-01", "reset", 80, 90, 1)

	report := ComputeTrend(obs, 3, 10)
	assert.Equal(t, []TrendRecord{{Name: "reset", From: 80, To: 1, Delta: -79}}, report.Worst)
}

func trendNames(records []TrendRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
