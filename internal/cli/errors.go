package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/guildtrack/internal/acquire"
	"github.com/roach88/guildtrack/internal/config"
	"github.com/roach88/guildtrack/internal/ledger"
)

// Error codes reported in the JSON envelope and text diagnostics.
const (
	ErrCodeGeneric = "E001" // Generic/unknown error
	ErrCodeConfig  = "E005" // Unusable config file, flag or path

	ErrCodeAcquisitionUnavailable = "E201" // Fetcher binary or snapshot missing
	ErrCodeAcquisitionFailed      = "E202" // Fetcher exited non-zero or timed out
	ErrCodeAcquisitionMalformed   = "E203" // Fetcher output not parseable

	ErrCodeStorage = "E301" // Ledger unreadable or unwritable
)

// classify maps an error to its code, exit code and diagnostic details.
func classify(err error) (code string, exit int, details any) {
	var (
		acqErr *acquire.Error
		stErr  *ledger.StorageError
	)
	switch {
	case config.IsConfigError(err):
		return ErrCodeConfig, ExitCommandError, nil
	case errors.As(err, &acqErr):
		return acquisitionCode(acqErr.Kind), ExitFailure, acqErr.Details()
	case errors.As(err, &stErr):
		return ErrCodeStorage, ExitFailure, map[string]string{"op": stErr.Op, "path": stErr.Path}
	default:
		return ErrCodeGeneric, ExitFailure, nil
	}
}

func acquisitionCode(kind acquire.Kind) string {
	switch kind {
	case acquire.KindUnavailable:
		return ErrCodeAcquisitionUnavailable
	case acquire.KindMalformed:
		return ErrCodeAcquisitionMalformed
	default:
		return ErrCodeAcquisitionFailed
	}
}

// reportError writes err through the formatter and returns the ExitError the
// command should return.
func reportError(formatter *OutputFormatter, message string, err error) error {
	code, exit, details := classify(err)
	_ = formatter.Error(code, fmt.Sprintf("%s: %v", message, err), details)

	exitErr := WrapExitError(exit, fmt.Sprintf("%s: %s", code, message), err)
	exitErr.Reported = true
	return exitErr
}
