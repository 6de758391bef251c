package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (pre-migration)
// 1 - Added index on observations(date, name)
const currentSchemaVersion = 1

// SQLiteStore keeps the ledger in a SQLite database.
// Rows are read back in seq order, which is append order.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite creates or opens a SQLite ledger at path, creating parent
// directories as needed. Applies pragmas and migrations.
//
// The database is configured with:
//   - WAL mode for reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout
//
// Safe to call repeatedly on the same path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: fmt.Errorf("connect: %w", err)}
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append inserts one row per entry in a single transaction.
func (s *SQLiteStore) Append(ctx context.Context, date Date, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &StorageError{Op: "append", Path: s.path, Err: fmt.Errorf("begin tx: %w", err)}
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO observations (date, name, level) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, &StorageError{Op: "append", Path: s.path, Err: fmt.Errorf("prepare insert: %w", err)}
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, string(date), e.Name, e.Level); err != nil {
			return 0, &StorageError{Op: "append", Path: s.path, Err: fmt.Errorf("insert %q: %w", e.Name, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: "append", Path: s.path, Err: fmt.Errorf("commit: %w", err)}
	}
	return len(entries), nil
}

// ReadAll returns every row ordered by seq. A NULL or non-integer level
// reads as invalid, the same as in the CSV ledger.
func (s *SQLiteStore) ReadAll(ctx context.Context) ([]Observation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, name, level
		FROM observations
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: fmt.Errorf("query observations: %w", err)}
	}
	defer rows.Close()

	observations := []Observation{}
	for rows.Next() {
		var (
			rawDate string
			name    string
			level   sql.NullString
		)
		if err := rows.Scan(&rawDate, &name, &level); err != nil {
			return nil, &StorageError{Op: "read", Path: s.path, Err: fmt.Errorf("scan observation: %w", err)}
		}
		date, err := ParseDate(rawDate)
		if err != nil {
			return nil, &StorageError{Op: "read", Path: s.path, Err: err}
		}
		obs := Observation{Date: date, Name: name}
		if level.Valid {
			obs.Level = ParseLevel(level.String)
		}
		observations = append(observations, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: fmt.Errorf("iterate observations: %w", err)}
	}

	return observations, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and runs migrations.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// runMigrations applies incremental schema migrations based on user_version.
func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 1 {
		if err := migrateToV1(db); err != nil {
			return err
		}
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV1 indexes the (date, name) lookup used by window reads.
func migrateToV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_observations_date_name
		ON observations(date, name)
	`)
	if err != nil {
		return fmt.Errorf("migrate to v1: %w", err)
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *SQLiteStore) verifyPragma(name, expected string) error {
	var value string
	if err := s.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
