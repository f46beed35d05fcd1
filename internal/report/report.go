// Package report renders dataset summaries and text charts to a
// terminal, degrading color through a colorprofile writer so piped
// output stays clean.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/vinothraj/aqlens/internal/frame"
)

// Renderer writes report sections to a single output.
type Renderer struct {
	w *colorprofile.Writer

	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
}

// New returns a renderer for w, detecting the color profile from the
// process environment.
func New(w io.Writer) *Renderer {
	return newRenderer(colorprofile.NewWriter(w, os.Environ()))
}

// NewPlain returns a renderer that never emits escape sequences. Used
// when writing charts to files and in tests.
func NewPlain(w io.Writer) *Renderer {
	cw := colorprofile.NewWriter(w, nil)
	cw.Profile = colorprofile.NoTTY
	return newRenderer(cw)
}

func newRenderer(cw *colorprofile.Writer) *Renderer {
	return &Renderer{
		w:      cw,
		title:  lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true),
		header: lipgloss.NewStyle().Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)),
	}
}

// Printf formats through the profile-aware writer.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Title prints a styled section heading.
func (r *Renderer) Title(s string) {
	r.Printf("\n%s\n", r.title.Render(s))
}

// Head prints the first n rows of the frame as an aligned table.
func (r *Renderer) Head(f *frame.Frame, n int) {
	rows := f.Head(n)
	widths := columnWidths(f.Columns, rows)
	numeric := make([]bool, len(f.Columns))
	for i := range f.Columns {
		numeric[i] = f.Kind(i) == "numeric"
	}

	var b strings.Builder
	for i, col := range f.Columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pad(col, widths[i], false))
	}
	r.Printf("%s\n", r.header.Render(b.String()))

	for _, row := range rows {
		var line strings.Builder
		for i := range f.Columns {
			if i > 0 {
				line.WriteString("  ")
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			line.WriteString(pad(cell, widths[i], numeric[i]))
		}
		r.Printf("%s\n", line.String())
	}
}

// Info prints a per-column schema summary: index, name, non-null
// count, and inferred kind.
func (r *Renderer) Info(f *frame.Frame) {
	r.Printf("%s\n", r.header.Render(fmt.Sprintf("%3s  %-20s  %9s  %s", "#", "Column", "Non-Null", "Kind")))
	for i, col := range f.Columns {
		r.Printf("%3d  %s  %9d  %s\n", i, pad(col, 20, false), f.NonNull(i), f.Kind(i))
	}
	r.Printf("%s\n", r.muted.Render(fmt.Sprintf("%d rows x %d columns", len(f.Rows), len(f.Columns))))
}

// Describe prints the statistics table: one column per numeric column,
// one row per statistic.
func (r *Renderer) Describe(stats []frame.Stats) {
	if len(stats) == 0 {
		r.Printf("no numeric columns\n")
		return
	}

	labels := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	cells := make([][]string, len(stats))
	for i, s := range stats {
		cells[i] = []string{
			strconv.Itoa(s.Count),
			fmtFloat(s.Mean), fmtFloat(s.Std), fmtFloat(s.Min),
			fmtFloat(s.P25), fmtFloat(s.P50), fmtFloat(s.P75), fmtFloat(s.Max),
		}
	}

	widths := make([]int, len(stats))
	for i, s := range stats {
		widths[i] = utf8.RuneCountInString(s.Column)
		for _, c := range cells[i] {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	var b strings.Builder
	b.WriteString(pad("", 5, false))
	for i, s := range stats {
		b.WriteString("  ")
		b.WriteString(pad(s.Column, widths[i], true))
	}
	r.Printf("%s\n", r.header.Render(b.String()))

	for row, label := range labels {
		var line strings.Builder
		line.WriteString(pad(label, 5, false))
		for i := range stats {
			line.WriteString("  ")
			line.WriteString(pad(cells[i][row], widths[i], true))
		}
		r.Printf("%s\n", line.String())
	}
}

func fmtFloat(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// pad and truncate measure in runes so multibyte column names line
// up with their cells.
func pad(s string, width int, right bool) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return truncate(s, width)
	}
	fill := strings.Repeat(" ", width-n)
	if right {
		return fill + s
	}
	return s + fill
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

func columnWidths(cols []string, rows [][]string) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}
