package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/guildtrack/internal/analysis"
	"github.com/roach88/guildtrack/internal/report"
)

// DatesResult is the JSON payload of the dates command.
type DatesResult struct {
	Days []analysis.DaySummary `json:"days"`
}

// NewDatesCommand creates the dates command.
func NewDatesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List recorded days in the ledger",
		Long: `List every distinct recorded day with the number of members that have
a valid level on it and the number of ledger rows.

Example:
  guildtrack dates
  guildtrack dates --ledger ./data/levels.db --backend sqlite`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDates(rootOpts, cmd)
		},
	}

	return cmd
}

func runDates(opts *RootOptions, cmd *cobra.Command) error {
	s, err := begin(opts, cmd)
	if err != nil {
		return err
	}

	observations, err := s.readLedger(s.commandContext(cmd))
	if err != nil {
		return s.fail("failed to read ledger", err)
	}
	summaries := analysis.Summarize(observations)

	return s.formatter.Success(DatesResult{Days: summaries}, func(w io.Writer) error {
		return report.WriteDates(w, summaries)
	})
}
