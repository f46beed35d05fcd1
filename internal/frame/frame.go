// Package frame holds tabular datasets in memory and computes the
// numeric summaries the summarize command reports on.
package frame

import (
	"math"
	"strconv"
	"strings"
)

// Frame is a loaded dataset. Cells are kept as strings exactly as the
// source produced them; numeric interpretation happens on demand.
type Frame struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// NumericColumn is a column coerced to float64. Cells that did not
// parse are NaN.
type NumericColumn struct {
	Name   string
	Values []float64
}

// Count returns the number of non-NaN values.
func (c NumericColumn) Count() int {
	n := 0
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Cell returns the value at (row, col), or "" when the row is ragged.
func (f *Frame) Cell(row, col int) string {
	if row < 0 || row >= len(f.Rows) {
		return ""
	}
	r := f.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Head returns up to n leading rows.
func (f *Frame) Head(n int) [][]string {
	if n > len(f.Rows) {
		n = len(f.Rows)
	}
	return f.Rows[:n]
}

// Numeric coerces every column to float64 and returns the columns that
// contain at least one parseable value, in original column order.
// Unparseable cells (including empty ones) become NaN.
func (f *Frame) Numeric() []NumericColumn {
	var out []NumericColumn
	for i, name := range f.Columns {
		col := NumericColumn{Name: name, Values: make([]float64, len(f.Rows))}
		any := false
		for r := range f.Rows {
			v, ok := parseCell(f.Cell(r, i))
			if ok {
				any = true
			}
			col.Values[r] = v
		}
		if any {
			out = append(out, col)
		}
	}
	return out
}

// Kind reports whether column i holds numeric or text data, judged the
// same way Numeric selects columns.
func (f *Frame) Kind(i int) string {
	for r := range f.Rows {
		if _, ok := parseCell(f.Cell(r, i)); ok {
			return "numeric"
		}
	}
	return "text"
}

// NonNull returns the number of rows with a non-empty cell in column i.
func (f *Frame) NonNull(i int) int {
	n := 0
	for r := range f.Rows {
		if strings.TrimSpace(f.Cell(r, i)) != "" {
			n++
		}
	}
	return n
}

func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}
