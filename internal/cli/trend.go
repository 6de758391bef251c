package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/guildtrack/internal/analysis"
	"github.com/roach88/guildtrack/internal/report"
)

// TrendOptions holds flags for the trend command.
type TrendOptions struct {
	*RootOptions
	Days int
	Top  int
}

// NewTrendCommand creates the trend command.
func NewTrendCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrendOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Rank members by level change over the last N recorded days",
		Long: `Rank members by how much their level changed across the last N
distinct recorded days. Only members with a level on every day of the
window are ranked. Ties are listed in name order.

Example:
  guildtrack trend --days 7
  guildtrack trend --days 3 --top 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrend(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Days, "days", 7, "window size in recorded days")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "entries per list, 0 for all (defaults to analysis.top_n)")

	return cmd
}

func runTrend(opts *TrendOptions, cmd *cobra.Command) error {
	if opts.Days < 1 {
		return NewExitError(ExitCommandError, "--days must be at least 1")
	}

	s, err := begin(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	observations, err := s.readLedger(s.commandContext(cmd))
	if err != nil {
		return s.fail("failed to read ledger", err)
	}

	trend := analysis.ComputeTrend(observations, opts.Days, s.topN(cmd, opts.Top))
	s.logger.Debug("trend computed", "days", opts.Days, "status", trend.Status)

	return s.formatter.Success(trend, func(w io.Writer) error {
		return report.WriteTrend(w, trend)
	})
}

// topN returns the --top flag when given, else the configured default.
func (s *session) topN(cmd *cobra.Command, flag int) int {
	if !cmd.Flags().Changed("top") {
		return s.cfg.Analysis.TopN
	}
	return flag
}
