package ledger

import (
	"path/filepath"
	"testing"
)

// backends opens one empty store per backend under a temp dir.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqliteStore, err := OpenSQLite(filepath.Join(dir, "ledger.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		BackendCSV:    OpenCSV(filepath.Join(dir, "data", "guild_levels.csv")),
		BackendSQLite: sqliteStore,
	}
}

func entries(pairs ...any) []Entry {
	out := make([]Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Entry{Name: pairs[i].(string), Level: pairs[i+1].(int)})
	}
	return out
}
