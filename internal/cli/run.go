package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/guildtrack/internal/analysis"
	"github.com/roach88/guildtrack/internal/report"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
}

// RunResult is the JSON payload of the run command.
type RunResult struct {
	Record     RecordResult              `json:"record"`
	Trends     []analysis.TrendReport    `json:"trends"`
	Projection analysis.ProjectionReport `json:"projection"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch today's levels, record them and print every report",
		Long: `Run the daily job: fetch a snapshot of levels from the fetcher,
append it to the ledger under today's date, then print the configured trend
reports (3 and 7 days by default) and the 7-day projection.

A fetch failure stops the run before the ledger is touched. Reports that
lack history print an advisory line instead of a table.

Example:
  guildtrack run
  guildtrack run --ledger ./data/levels.db --backend sqlite --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaily(opts, cmd)
		},
	}

	return cmd
}

func runDaily(opts *RunOptions, cmd *cobra.Command) error {
	s, err := begin(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	ctx := s.commandContext(cmd)

	recorded, err := s.record(ctx, s.fetcher())
	if err != nil {
		return err
	}

	observations, err := s.readLedger(ctx)
	if err != nil {
		return s.fail("failed to read ledger", err)
	}

	topN := s.cfg.Analysis.TopN
	result := RunResult{
		Record:     recorded,
		Trends:     make([]analysis.TrendReport, 0, len(s.cfg.Analysis.TrendWindows)),
		Projection: analysis.ProjectNext(observations, topN),
	}
	for _, days := range s.cfg.Analysis.TrendWindows {
		trend := analysis.ComputeTrend(observations, days, topN)
		s.logger.Debug("trend computed", "days", days, "status", trend.Status, "window", len(trend.Window))
		result.Trends = append(result.Trends, trend)
	}
	s.logger.Debug("projection computed", "status", result.Projection.Status)

	return s.formatter.Success(result, func(w io.Writer) error {
		return writeRunText(w, result)
	})
}

func writeRunText(w io.Writer, result RunResult) error {
	if err := writeRecordText(w, result.Record); err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, trend := range result.Trends {
		if err := report.WriteTrend(w, trend); err != nil {
			return err
		}
	}
	return report.WriteProjection(w, result.Projection)
}
