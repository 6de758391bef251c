package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/guildtrack/internal/acquire"
	"github.com/roach88/guildtrack/internal/clock"
	"github.com/roach88/guildtrack/internal/config"
	"github.com/roach88/guildtrack/internal/ledger"
)

const testRunID = "0190a6e4-0000-7000-8000-000000000001"

type constantID string

func (c constantID) Generate() string { return string(c) }

// cliHarness runs the command tree against a temporary ledger with a fixed
// clock and an in-memory fetcher.
type cliHarness struct {
	t      *testing.T
	opts   *RootOptions
	ledger string
	clock  *clock.Fixed
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()
	t.Setenv(config.EnvFetcher, "")

	h := &cliHarness{
		t:      t,
		ledger: filepath.Join(t.TempDir(), "data", "guild_levels.csv"),
		clock:  clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)),
	}
	h.opts = &RootOptions{
		Clock:  h.clock,
		RunIDs: constantID(testRunID),
	}
	return h
}

// serve makes the fetcher return entries on every call.
func (h *cliHarness) serve(entries []ledger.Entry) {
	h.opts.Fetcher = acquire.FetcherFunc(func(ctx context.Context) ([]ledger.Entry, error) {
		return entries, nil
	})
}

// failWith makes the fetcher return err.
func (h *cliHarness) failWith(err error) {
	h.opts.Fetcher = acquire.FetcherFunc(func(ctx context.Context) ([]ledger.Entry, error) {
		return nil, err
	})
}

// exec runs the CLI with --ledger pointing at the harness ledger and
// returns the exit code. Output buffers are reset first.
func (h *cliHarness) exec(args ...string) int {
	h.t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()
	args = append(args, "--ledger", h.ledger)
	return execute(context.Background(), newRootCommand(h.opts), args, &h.stdout, &h.stderr)
}

// nextDay advances the clock by one calendar day.
func (h *cliHarness) nextDay() {
	h.clock.Advance(24 * time.Hour)
}

// readLedger returns the ledger contents.
func (h *cliHarness) readLedger() []ledger.Observation {
	h.t.Helper()
	obs, err := ledger.OpenCSV(h.ledger).ReadAll(context.Background())
	require.NoError(h.t, err)
	return obs
}

// seed appends one snapshot per day starting at start.
func (h *cliHarness) seed(start string, days ...[]ledger.Entry) {
	h.t.Helper()
	st := ledger.OpenCSV(h.ledger)
	first, err := time.Parse("2006-01-02", start)
	require.NoError(h.t, err)
	for i, entries := range days {
		_, err := st.Append(context.Background(), ledger.DateOf(first.AddDate(0, 0, i)), entries)
		require.NoError(h.t, err)
	}
}

// decodeResponse parses a JSON envelope and decodes its data into out.
func decodeResponse(t *testing.T, raw []byte, out any) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	if out != nil && resp.Data != nil {
		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, out))
	}
	return resp
}
