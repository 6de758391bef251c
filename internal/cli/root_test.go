package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "guildtrack", cmd.Use)
	assert.Contains(t, cmd.Long, "append-only ledger")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"run", "record", "trend", "project", "dates"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"config", "ledger", "backend"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue, name)
	}
}

func TestRecordCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	recordCmd, _, err := cmd.Find([]string{"record"})
	require.NoError(t, err)

	fromFlag := recordCmd.Flags().Lookup("from")
	require.NotNil(t, fromFlag)
	assert.Equal(t, "", fromFlag.DefValue)
}

func TestTrendCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	trendCmd, _, err := cmd.Find([]string{"trend"})
	require.NoError(t, err)

	daysFlag := trendCmd.Flags().Lookup("days")
	require.NotNil(t, daysFlag)
	assert.Equal(t, "7", daysFlag.DefValue)

	topFlag := trendCmd.Flags().Lookup("top")
	require.NotNil(t, topFlag)
	assert.Equal(t, "0", topFlag.DefValue)
}

func TestProjectCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	projectCmd, _, err := cmd.Find([]string{"project"})
	require.NoError(t, err)

	require.NotNil(t, projectCmd.Flags().Lookup("top"))
	assert.Nil(t, projectCmd.Flags().Lookup("days"))
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat(""))
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "help",
			args:       []string{"--help"},
			wantCode:   ExitSuccess,
			wantStdout: "Usage:",
		},
		{
			name:       "unknown command",
			args:       []string{"frobnicate"},
			wantCode:   ExitCommandError,
			wantStderr: `unknown command "frobnicate"`,
		},
		{
			name:       "unknown flag",
			args:       []string{"dates", "--nope"},
			wantCode:   ExitCommandError,
			wantStderr: "unknown flag: --nope",
		},
		{
			name:       "invalid format",
			args:       []string{"dates", "--format", "xml"},
			wantCode:   ExitCommandError,
			wantStderr: `invalid format "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := Execute(context.Background(), tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStdout != "" {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestExecute_ReportedErrorPrintedOnce(t *testing.T) {
	h := newHarness(t)
	h.serve(nil)

	assert.Equal(t, ExitCommandError, h.exec("dates", "--backend", "xml"))
	assert.Equal(t, 1, bytes.Count(h.stderr.Bytes(), []byte("unknown ledger backend")))
}
