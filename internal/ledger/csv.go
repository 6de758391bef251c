package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"date", "name", "level"}

// CSVStore keeps the ledger in a comma-separated file.
type CSVStore struct {
	path string
}

// OpenCSV returns a store for the file at path. The file and its parent
// directories are created on the first Append.
func OpenCSV(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the ledger file location.
func (s *CSVStore) Path() string {
	return s.path
}

// Append writes one row per entry. The header is written only when the file
// is absent or empty.
func (s *CSVStore) Append(ctx context.Context, date Date, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return 0, &StorageError{Op: "append", Path: s.path, Err: err}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, &StorageError{Op: "append", Path: s.path, Err: err}
	}

	if err := writeRows(f, date, entries); err != nil {
		f.Close()
		return 0, &StorageError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &StorageError{Op: "append", Path: s.path, Err: err}
	}

	return len(entries), nil
}

func writeRows(f *os.File, date Date, entries []Entry) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, e := range entries {
		if err := w.Write([]string{string(date), e.Name, strconv.Itoa(e.Level)}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadAll returns every row in file order. A missing or empty file yields an
// empty slice. Columns are located by header name, so extra or reordered
// columns are tolerated; a level that is not an integer is kept as invalid.
func (s *CSVStore) ReadAll(ctx context.Context) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Observation{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	defer f.Close()

	observations, err := readRows(f)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	return observations, nil
}

func readRows(r io.Reader) ([]Observation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []Observation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := headerColumns(header)
	if err != nil {
		return nil, err
	}

	observations := []Observation{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		if len(record) <= cols.name || len(record) <= cols.date {
			return nil, fmt.Errorf("line %d: expected date and name columns, got %d fields", line, len(record))
		}

		date, err := ParseDate(record[cols.date])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var level Level
		if cols.level < len(record) {
			level = ParseLevel(record[cols.level])
		}

		observations = append(observations, Observation{
			Date:  date,
			Name:  record[cols.name],
			Level: level,
		})
	}

	return observations, nil
}

type columns struct {
	date, name, level int
}

func headerColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{"date", &cols.date},
		{"name", &cols.name},
		{"level", &cols.level},
	} {
		i, ok := index[c.name]
		if !ok {
			return columns{}, fmt.Errorf("header %v: missing %q column", header, c.name)
		}
		*c.dst = i
	}
	return cols, nil
}

// Close is a no-op; the file is opened per operation.
func (s *CSVStore) Close() error {
	return nil
}
