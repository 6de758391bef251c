package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/guildtrack/internal/analysis"
	"github.com/roach88/guildtrack/internal/report"
)

// ProjectOptions holds flags for the project command.
type ProjectOptions struct {
	*RootOptions
	Top int
}

// NewProjectCommand creates the project command.
func NewProjectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProjectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project each member's level 7 days ahead",
		Long: `Project each member's level 7 days ahead by repeating their change
over the last 7 recorded days. Members expected to end lowest are listed
first. Needs at least 7 recorded days.

Example:
  guildtrack project
  guildtrack project --top 0 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Top, "top", 0, "entries to list, 0 for all (defaults to analysis.top_n)")

	return cmd
}

func runProject(opts *ProjectOptions, cmd *cobra.Command) error {
	s, err := begin(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	observations, err := s.readLedger(s.commandContext(cmd))
	if err != nil {
		return s.fail("failed to read ledger", err)
	}

	projection := analysis.ProjectNext(observations, s.topN(cmd, opts.Top))
	s.logger.Debug("projection computed", "status", projection.Status)

	return s.formatter.Success(projection, func(w io.Writer) error {
		return report.WriteProjection(w, projection)
	})
}
