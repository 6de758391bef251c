package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in ISO 8601 form (YYYY-MM-DD).
// Lexicographic order of valid Dates is chronological order.
type Date string

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// ParseDate validates s as a YYYY-MM-DD day.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return string(d)
}

// Level is a stored level value. Valid is false when the stored text was
// not an integer; such observations count as absent in analysis.
type Level struct {
	Value int
	Valid bool
}

// IntLevel returns a valid Level.
func IntLevel(v int) Level {
	return Level{Value: v, Valid: true}
}

// ParseLevel converts stored level text. Surrounding whitespace is ignored.
func ParseLevel(s string) Level {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Level{}
	}
	return IntLevel(n)
}

// Observation is one ledger row.
type Observation struct {
	Date  Date
	Name  string
	Level Level
}

// Entry is a single (name, level) pair from a snapshot, before it is
// stamped with a date.
type Entry struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}
