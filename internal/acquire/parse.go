package acquire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/guildtrack/internal/ledger"
)

// ParseOptions controls how entries with unusable levels are handled.
type ParseOptions struct {
	// Strict rejects the whole snapshot when a level cannot be coerced to
	// an integer. Otherwise such entries are dropped.
	Strict bool
}

// Parse decodes fetcher output: a JSON array of objects with "name" and
// "level". Entries without a non-empty string name or without a level are
// dropped. A level may be a JSON integer, an integral JSON float, or a
// decimal integer string. Names are NFC-normalized so the same visible name
// always keys the same entity.
func Parse(data []byte, opts ParseOptions) ([]ledger.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, malformed(data, "invalid JSON from fetcher", err)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, malformed(data, "unexpected data after JSON array", err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, malformed(data, fmt.Sprintf("expected a JSON array, got %s", jsonKind(doc)), nil)
	}

	entries := []ledger.Entry{}
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}

		name, ok := fields["name"].(string)
		if !ok || name == "" {
			continue
		}

		raw, ok := fields["level"]
		if !ok || raw == nil {
			continue
		}

		level, ok := coerceLevel(raw)
		if !ok {
			if opts.Strict {
				return nil, malformed(data, fmt.Sprintf("entry %d (%q): level %v is not an integer", i, name, raw), nil)
			}
			continue
		}

		entries = append(entries, ledger.Entry{Name: norm.NFC.String(name), Level: level})
	}

	return entries, nil
}

// maxExactFloat is the largest magnitude at which every integer is a float64.
const maxExactFloat = 1 << 53

func coerceLevel(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(string(x), 10, 0); err == nil {
			return int(n), true
		}
		f, err := x.Float64()
		if err != nil || math.Trunc(f) != f || math.Abs(f) > maxExactFloat {
			return 0, false
		}
		return int(f), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
