package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vinothraj/aqlens/internal/frame"
)

const (
	barGlyph    = "█"
	maxBarWidth = 40
	axisWidth   = 57
)

// Histogram prints a horizontal-bar histogram of the column.
func (r *Renderer) Histogram(col frame.NumericColumn, bins int) {
	r.Title(fmt.Sprintf("Histogram of %s", col.Name))

	counts, lo, step := Bin(col.Values, bins)
	if counts == nil {
		r.Printf("no values\n")
		return
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	for i, c := range counts {
		width := 0
		if maxCount > 0 {
			width = c * maxBarWidth / maxCount
		}
		if c > 0 && width == 0 {
			width = 1
		}
		label := fmt.Sprintf("%10.4g – %-10.4g", lo+float64(i)*step, lo+float64(i+1)*step)
		r.Printf("%s %s %d\n", label, bar.Render(strings.Repeat(barGlyph, width)), c)
	}
}

// Bin buckets the non-NaN values into n equal-width bins and returns
// the counts with the low edge and bin width. A single distinct value
// collapses into one bin; no values at all returns nil counts.
func Bin(values []float64, n int) (counts []int, lo, step float64) {
	var vals []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, 0, 0
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []int{len(vals)}, lo, 1
	}

	counts = make([]int, n)
	step = (hi - lo) / float64(n)
	for _, v := range vals {
		i := int((v - lo) / step)
		if i >= n {
			i = n - 1 // hi itself lands in the last bin
		}
		counts[i]++
	}
	return counts, lo, step
}

// Boxplot prints a five-number summary and its axis rendering.
func (r *Renderer) Boxplot(col frame.NumericColumn) {
	r.Title(fmt.Sprintf("Boxplot for %s", col.Name))

	var vals []float64
	for _, v := range col.Values {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		r.Printf("no values\n")
		return
	}
	sort.Float64s(vals)

	min, max := vals[0], vals[len(vals)-1]
	q1 := frame.Quantile(vals, 0.25)
	med := frame.Quantile(vals, 0.50)
	q3 := frame.Quantile(vals, 0.75)

	r.Printf("min %s   q1 %s   median %s   q3 %s   max %s\n",
		fmtFloat(min), fmtFloat(q1), fmtFloat(med), fmtFloat(q3), fmtFloat(max))
	r.Printf("%s\n", renderAxis(min, q1, med, q3, max))
}

// renderAxis draws whiskers, box and median on a fixed-width axis.
func renderAxis(min, q1, med, q3, max float64) string {
	if max == min {
		return "[" + strings.Repeat("=", axisWidth-2) + "]"
	}
	scale := func(v float64) int {
		p := int((v - min) / (max - min) * float64(axisWidth-1))
		if p < 0 {
			p = 0
		}
		if p > axisWidth-1 {
			p = axisWidth - 1
		}
		return p
	}

	row := make([]rune, axisWidth)
	for i := range row {
		row[i] = '-'
	}
	b1, b2 := scale(q1), scale(q3)
	for i := b1; i <= b2; i++ {
		row[i] = '='
	}
	row[0], row[axisWidth-1] = '|', '|'
	row[b1], row[b2] = '[', ']'
	row[scale(med)] = 'M'
	return string(row)
}

// Heatmap prints the annotated correlation matrix with cell
// backgrounds on the cold-warm scale.
func (r *Renderer) Heatmap(cols []frame.NumericColumn, matrix [][]float64) {
	r.Title("Correlation Heatmap")

	const cell = 8
	var head strings.Builder
	head.WriteString(pad("", cell, false))
	for _, c := range cols {
		head.WriteString(pad(truncate(c.Name, cell-1), cell, true))
	}
	r.Printf("%s\n", r.header.Render(head.String()))

	for i, c := range cols {
		var line strings.Builder
		line.WriteString(r.header.Render(pad(truncate(c.Name, cell-1), cell, false)))
		for j := range cols {
			v := matrix[i][j]
			text := "   nan  "
			if !math.IsNaN(v) {
				text = fmt.Sprintf("  %5.2f ", v)
			}
			bg := HeatColor(v)
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(bg)).
				Foreground(lipgloss.Color(textOn(bg)))
			line.WriteString(style.Render(text))
		}
		r.Printf("%s\n", line.String())
	}
}
