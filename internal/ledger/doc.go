// Package ledger provides the append-only store of dated level observations.
//
// The ledger records one row per (date, name) observation and is never
// rewritten:
//   - Append: writes today's snapshot, one row per entry
//   - ReadAll: returns every row ever appended, in append order
//
// # Backends
//
//   - csv: a comma-separated file with header "date,name,level". The header
//     is written only when the file is new. An absent file reads as empty.
//   - sqlite: an observations table ordered by an autoincrement seq column,
//     opened with WAL mode and versioned through PRAGMA user_version.
//
// # Duplicates
//
// Neither backend rejects duplicate (date, name) rows. Readers that build
// lookups let the latest-appended row win.
//
// Failures of the underlying medium are reported as *StorageError.
package ledger
