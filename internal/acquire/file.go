package acquire

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/roach88/guildtrack/internal/ledger"
)

// FileFetcher reads a snapshot in fetcher output format from a file, or
// from Stdin when Path is "-".
type FileFetcher struct {
	Path string

	// Stdin is read when Path is "-". Defaults to os.Stdin.
	Stdin io.Reader

	Strict bool
}

// Fetch reads and parses the snapshot.
func (f *FileFetcher) Fetch(ctx context.Context) ([]ledger.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := f.read()
	if err != nil {
		kind := KindFailed
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindUnavailable
		}
		return nil, &Error{
			Kind:    kind,
			Message: "snapshot could not be read",
			Source:  f.Path,
			Err:     err,
		}
	}

	entries, err := Parse(data, ParseOptions{Strict: f.Strict})
	if err != nil {
		var ae *Error
		if errors.As(err, &ae) {
			ae.Source = f.Path
		}
		return nil, err
	}
	return entries, nil
}

func (f *FileFetcher) read() ([]byte, error) {
	if f.Path != "-" {
		return os.ReadFile(f.Path)
	}
	stdin := f.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return io.ReadAll(stdin)
}
