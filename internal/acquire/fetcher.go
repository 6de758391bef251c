package acquire

import (
	"context"

	"github.com/roach88/guildtrack/internal/ledger"
)

// Fetcher returns today's snapshot or a classified *Error.
type Fetcher interface {
	Fetch(ctx context.Context) ([]ledger.Entry, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]ledger.Entry, error)

// Fetch calls f(ctx).
func (f FetcherFunc) Fetch(ctx context.Context) ([]ledger.Entry, error) {
	return f(ctx)
}
