package acquire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/roach88/guildtrack/internal/ledger"
)

// waitDelay bounds how long Fetch waits for output pipes after the fetcher
// is killed on cancellation.
const waitDelay = 2 * time.Second

// ExecFetcher runs an external fetcher binary and parses its stdout.
type ExecFetcher struct {
	// Command is a path to the fetcher, or a bare name looked up in PATH.
	Command string

	Args []string

	// Dir is the working directory; empty means the current one.
	Dir string

	// Timeout bounds the run. Zero means no limit.
	Timeout time.Duration

	// Strict is passed to Parse.
	Strict bool
}

// Fetch runs the fetcher once. The ledger is never touched here; callers
// append only after Fetch succeeds.
func (f *ExecFetcher) Fetch(ctx context.Context) ([]ledger.Entry, error) {
	path, err := f.resolve()
	if err != nil {
		return nil, err
	}

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, path, f.Args...)
	command.Dir = f.Dir
	command.Stdout = &stdout
	command.Stderr = &stderr
	command.WaitDelay = waitDelay

	if err := command.Run(); err != nil {
		return nil, f.classify(ctx, err, stdout.String(), stderr.String())
	}

	entries, err := Parse(stdout.Bytes(), ParseOptions{Strict: f.Strict})
	if err != nil {
		var ae *Error
		if errors.As(err, &ae) {
			ae.Source = f.Command
			ae.Stderr = stderr.String()
		}
		return nil, err
	}
	return entries, nil
}

func (f *ExecFetcher) resolve() (string, error) {
	if f.Command == "" {
		return "", &Error{
			Kind:    KindUnavailable,
			Message: "no fetcher command configured",
		}
	}

	if !strings.ContainsRune(f.Command, os.PathSeparator) {
		path, err := exec.LookPath(f.Command)
		if err != nil {
			return "", &Error{
				Kind:    KindUnavailable,
				Message: "fetcher not found in PATH",
				Source:  f.Command,
				Err:     err,
			}
		}
		return path, nil
	}

	info, err := os.Stat(f.Command)
	if err != nil {
		return "", &Error{
			Kind:    KindUnavailable,
			Message: "fetcher binary does not exist; build it first (cargo build --release)",
			Source:  f.Command,
			Err:     err,
		}
	}
	if info.IsDir() {
		return "", &Error{
			Kind:    KindUnavailable,
			Message: "fetcher path is a directory",
			Source:  f.Command,
		}
	}
	return f.Command, nil
}

func (f *ExecFetcher) classify(ctx context.Context, err error, stdout, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &Error{
			Kind:    KindFailed,
			Message: "fetcher did not finish",
			Source:  f.Command,
			Stdout:  stdout,
			Stderr:  stderr,
			Err:     ctxErr,
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Error{
			Kind:     KindFailed,
			Message:  fmt.Sprintf("fetcher exited with code %d", exitErr.ExitCode()),
			Source:   f.Command,
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout,
			Stderr:   stderr,
		}
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || errors.Is(err, exec.ErrNotFound) {
		return &Error{
			Kind:    KindUnavailable,
			Message: "fetcher could not be started",
			Source:  f.Command,
			Err:     err,
		}
	}

	return &Error{
		Kind:    KindFailed,
		Message: "fetcher could not be run",
		Source:  f.Command,
		Err:     err,
	}
}
