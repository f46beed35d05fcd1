package report

import (
	"fmt"
	"math"
)

// Heatmap scale endpoints, cold through warm.
const (
	coldColor    = "#3b4cc0"
	neutralColor = "#dcdcdc"
	warmColor    = "#b40426"

	accentColor = "#cba6f7"
	mutedColor  = "#9399b2"
)

// HeatColor maps a correlation coefficient in [-1, 1] to a hex color
// on the cold-neutral-warm scale.
func HeatColor(v float64) string {
	if math.IsNaN(v) {
		return neutralColor
	}
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	if v < 0 {
		return InterpolateColor(coldColor, neutralColor, v+1)
	}
	return InterpolateColor(neutralColor, warmColor, v)
}

// InterpolateColor blends between two hex colors based on position (0.0 to 1.0)
func InterpolateColor(colorA, colorB string, pos float64) string {
	r1, g1, b1 := ParseHexColor(colorA)
	r2, g2, b2 := ParseHexColor(colorB)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos)

	return FormatHexColor(r, g, b)
}

// ParseHexColor extracts RGB values from hex color string
func ParseHexColor(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}

	return r, g, b
}

// FormatHexColor converts RGB values to hex color string
func FormatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// textOn picks a readable foreground for the given background color.
func textOn(bg string) string {
	r, g, b := ParseHexColor(bg)
	// Rec. 601 luma
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luma > 140 {
		return "#1e1e2e"
	}
	return "#f5f5f5"
}
