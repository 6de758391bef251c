package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnGap separates adjacent columns.
const columnGap = "  "

// Table is a titled grid of already-formatted cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Render writes the table followed by a blank line. Rows shorter than the
// header are padded with empty cells. The last column is not padded, so
// lines carry no trailing spaces.
func (t Table) Render(w io.Writer) error {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteByte('\n')

	writeLine(&b, t.Headers, widths)

	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}
	writeLine(&b, separator, widths)

	for _, row := range t.Rows {
		writeLine(&b, row, widths)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLine(b *strings.Builder, cells []string, widths []int) {
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteString(columnGap)
		}
		if i == len(widths)-1 {
			b.WriteString(cell)
			continue
		}
		b.WriteString(runewidth.FillRight(cell, width))
	}
	b.WriteByte('\n')
}
