// Package report renders analysis results as plain text tables.
//
// A table is a title line, a header row, a dashed separator and the data
// rows, with left-justified columns as wide as their widest cell in
// terminal display width. A blank line ends every table and every advisory
// message. Deltas are always signed ("+12", "-3", "+0").
package report
