// Package models defines data structures for ledger extraction.
package models

import "strings"

// Row is one row of untyped cell text. Cells past the end read as empty.
type Row []string

// Cell returns the trimmed text at column col, or "" when col is out of range.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Raw returns the untrimmed text at column col, or "" when col is out of range.
func (r Row) Raw(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Text joins every cell with a space and upper-cases the result.
// Anchor phrases are searched in this text.
func (r Row) Text() string {
	return strings.ToUpper(strings.Join(r, " "))
}

// Grid is the raw two-dimensional cell text of one sheet.
type Grid [][]string

// Len returns the number of rows.
func (g Grid) Len() int {
	return len(g)
}

// Row returns row i, or nil when i is out of range.
func (g Grid) Row(i int) Row {
	if i < 0 || i >= len(g) {
		return nil
	}
	return Row(g[i])
}

// Width returns the length of the widest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}
