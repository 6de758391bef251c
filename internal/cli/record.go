package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/guildtrack/internal/acquire"
	"github.com/roach88/guildtrack/internal/ledger"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	From string
}

// RecordResult describes one append of a snapshot to the ledger.
type RecordResult struct {
	Date     ledger.Date `json:"date"`
	Recorded int         `json:"recorded"`
	Ledger   string      `json:"ledger"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Fetch today's levels and append them to the ledger",
		Long: `Fetch a snapshot of levels and append it to the ledger under today's
date, without printing any report.

With --from the snapshot is read from a JSON file in fetcher output format
instead of running the fetcher; "-" reads standard input.

Example:
  guildtrack record
  guildtrack record --from snapshot.json
  sf_fetcher | guildtrack record --from -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", `read the snapshot from a file ("-" for stdin) instead of the fetcher`)

	return cmd
}

func runRecord(opts *RecordOptions, cmd *cobra.Command) error {
	s, err := begin(opts.RootOptions, cmd)
	if err != nil {
		return err
	}

	fetcher := s.fetcher()
	if opts.From != "" {
		fetcher = s.fileFetcher(opts.From)
	}

	result, err := s.record(s.commandContext(cmd), fetcher)
	if err != nil {
		return err
	}

	return s.formatter.Success(result, func(w io.Writer) error {
		return writeRecordText(w, result)
	})
}

// record fetches a snapshot and appends it under today's date. The ledger
// is not opened when the fetch fails or returns nothing.
func (s *session) record(ctx context.Context, fetcher acquire.Fetcher) (RecordResult, error) {
	result := RecordResult{
		Date:   s.today(),
		Ledger: s.cfg.Ledger.Path,
	}

	s.logger.Info("fetching levels")
	entries, err := fetcher.Fetch(ctx)
	if err != nil {
		return RecordResult{}, s.fail("failed to fetch levels", err)
	}
	s.formatter.VerboseLog("Fetched %d entries", len(entries))

	if len(entries) == 0 {
		s.logger.Info("nothing to record", "date", result.Date)
		return result, nil
	}

	st, err := s.openLedger()
	if err != nil {
		return RecordResult{}, s.fail("failed to open ledger", err)
	}
	defer s.closeLedger(st)

	n, err := st.Append(ctx, result.Date, entries)
	if err != nil {
		return RecordResult{}, s.fail("failed to append to ledger", err)
	}
	result.Recorded = n

	s.logger.Info("levels recorded", "date", result.Date, "rows", n, "ledger", result.Ledger)
	return result, nil
}

func writeRecordText(w io.Writer, r RecordResult) error {
	if r.Recorded == 0 {
		_, err := fmt.Fprintln(w, "No levels to record today.")
		return err
	}
	_, err := fmt.Fprintf(w, "Recorded %d levels for %s in %s\n", r.Recorded, r.Date, r.Ledger)
	return err
}
