package ledger

import (
	"errors"
	"fmt"
)

// StorageError reports that the ledger medium could not be read or written
// (permissions, corruption, driver failure). An absent ledger is not an error.
type StorageError struct {
	// Op is the failing operation: "open", "append" or "read".
	Op string

	// Path is the ledger location.
	Path string

	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
