package ledger

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Store is an append-only ledger.
type Store interface {
	// Append writes one row per entry tagged with date and returns the
	// number of rows written. Empty entries is a no-op.
	Append(ctx context.Context, date Date, entries []Entry) (int, error)

	// ReadAll returns every row in append order. Never nil.
	ReadAll(ctx context.Context) ([]Observation, error)

	Close() error
}

// Config selects and locates a ledger backend.
type Config struct {
	Path    string
	Backend string // "csv" (default) | "sqlite"
}

// Open returns the Store described by cfg.
func Open(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("ledger path is required")
	}
	switch cfg.Backend {
	case "", BackendCSV:
		return OpenCSV(cfg.Path), nil
	case BackendSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q: must be %q or %q", cfg.Backend, BackendCSV, BackendSQLite)
	}
}
