package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/guildtrack/internal/acquire"
	"github.com/roach88/guildtrack/internal/clock"
	"github.com/roach88/guildtrack/internal/config"
	"github.com/roach88/guildtrack/internal/ledger"
	"github.com/roach88/guildtrack/internal/runid"
)

// session is the resolved state shared by one command invocation.
type session struct {
	opts      *RootOptions
	cfg       config.Config
	logger    *slog.Logger
	formatter *OutputFormatter
}

// begin resolves configuration, assigns a run ID and configures logging.
// Configuration problems are reported and returned as command errors.
func begin(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	gen := opts.RunIDs
	if gen == nil {
		gen = runid.UUIDv7Generator{}
	}
	runID := gen.Generate()

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
		TraceID:   runID,
	}

	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler).With("run_id", runID, "command", cmd.Name())
	slog.SetDefault(logger)

	cfg, err := config.Load(opts.ConfigPath)
	if err == nil {
		if opts.LedgerPath != "" {
			cfg.Ledger.Path = opts.LedgerPath
		}
		if opts.Backend != "" {
			cfg.Ledger.Backend = opts.Backend
		}
		err = cfg.Validate()
	}
	if err != nil {
		return nil, reportError(formatter, "invalid configuration", err)
	}

	logger.Debug("configuration resolved",
		"config", opts.ConfigPath,
		"ledger", cfg.Ledger.Path,
		"backend", cfg.Ledger.Backend,
		"fetcher", cfg.Acquisition.Command)

	return &session{
		opts:      opts,
		cfg:       cfg,
		logger:    logger,
		formatter: formatter,
	}, nil
}

// commandContext returns the command context, or Background outside cobra.
func (s *session) commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// today is the local calendar date of the session clock.
func (s *session) today() ledger.Date {
	c := s.opts.Clock
	if c == nil {
		c = clock.System{}
	}
	return ledger.DateOf(c.Now())
}

// fetcher returns the override fetcher or one built from config.
func (s *session) fetcher() acquire.Fetcher {
	if s.opts.Fetcher != nil {
		return s.opts.Fetcher
	}
	return &acquire.ExecFetcher{
		Command: s.cfg.Acquisition.Command,
		Args:    s.cfg.Acquisition.Args,
		Timeout: s.cfg.Acquisition.Timeout,
		Strict:  s.cfg.Acquisition.StrictLevels,
	}
}

// fileFetcher reads a snapshot from path, or stdin for "-".
func (s *session) fileFetcher(path string) acquire.Fetcher {
	return &acquire.FileFetcher{
		Path:   path,
		Stdin:  s.opts.Stdin,
		Strict: s.cfg.Acquisition.StrictLevels,
	}
}

// openLedger opens the configured ledger backend.
func (s *session) openLedger() (ledger.Store, error) {
	s.logger.Debug("opening ledger", "path", s.cfg.Ledger.Path, "backend", s.cfg.Ledger.Backend)
	return ledger.Open(ledger.Config{
		Path:    s.cfg.Ledger.Path,
		Backend: s.cfg.Ledger.Backend,
	})
}

// closeLedger closes st, logging any error.
func (s *session) closeLedger(st ledger.Store) {
	if err := st.Close(); err != nil {
		s.logger.Error("error closing ledger", "error", err)
	}
}

// readLedger opens the ledger and returns its full contents.
func (s *session) readLedger(ctx context.Context) ([]ledger.Observation, error) {
	st, err := s.openLedger()
	if err != nil {
		return nil, err
	}
	defer s.closeLedger(st)

	observations, err := st.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("ledger read", "rows", len(observations))
	return observations, nil
}

// fail reports err and returns the command's ExitError.
func (s *session) fail(message string, err error) error {
	s.logger.Error(message, "error", err)
	return reportError(s.formatter, message, err)
}
