package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedDelta(t *testing.T) {
	assert.Equal(t, "+12", SignedDelta(12))
	assert.Equal(t, "-3", SignedDelta(-3))
	assert.Equal(t, "+0", SignedDelta(0))
}

func TestTable_Render(t *testing.T) {
	table := Table{
		Title:   "Levels",
		Headers: []string{"name", "level"},
		Rows: [][]string{
			{"alexandra", "1"},
			{"bo", "12345678"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))
	assert.Equal(t,
		"Levels\n"+
			"name       level\n"+
			"---------  --------\n"+
			"alexandra  1\n"+
			"bo         12345678\n"+
			"\n",
		buf.String())
}

func TestTable_RenderNoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table{Title: "Empty", Headers: []string{"a", "bb"}}.Render(&buf))
	assert.Equal(t, "Empty\na  bb\n-  --\n\n", buf.String())
}

func TestTable_RenderShortRow(t *testing.T) {
	var buf bytes.Buffer
	table := Table{Title: "T", Headers: []string{"a", "b", "c"}, Rows: [][]string{{"x"}}}
	require.NoError(t, table.Render(&buf))
	assert.Equal(t, "T\na  b  c\n-  -  -\nx     \n\n", buf.String())
}

func TestTable_RenderWideRunes(t *testing.T) {
	// East Asian wide characters occupy two columns each.
	table := Table{
		Title:   "W",
		Headers: []string{"name", "lv"},
		Rows:    [][]string{{"勇者", "9"}, {"Åsa", "10"}},
	}

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))
	assert.Equal(t,
		"W\n"+
			"name  lv\n"+
			"----  --\n"+
			"勇者  9\n"+
			"Åsa   10\n"+
			"\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTable_RenderWriteError(t *testing.T) {
	err := Table{Title: "T", Headers: []string{"a"}}.Render(failingWriter{})
	assert.EqualError(t, err, "disk full")
}
