package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/guildtrack/internal/ledger"
)

// SignedDelta formats d with an explicit sign: "+12", "-3", "+0".
func SignedDelta(d int) string {
	return fmt.Sprintf("%+d", d)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func joinDates(dates []ledger.Date) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
