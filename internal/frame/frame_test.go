package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() *Frame {
	return &Frame{
		Name:    "readings",
		Columns: []string{"station", "pm25", "pm10", "note"},
		Rows: [][]string{
			{"alpha", "12.5", "30", "ok"},
			{"beta", "14.0", "28", ""},
			{"gamma", "n/a", "35", "sensor drift"},
			{"delta", "11.5", "", "ok"},
		},
	}
}

func TestHead(t *testing.T) {
	f := sampleFrame()

	head := f.Head(2)
	require.Len(t, head, 2)
	assert.Equal(t, "alpha", head[0][0])
	assert.Equal(t, "beta", head[1][0])

	// Asking past the end returns everything
	assert.Len(t, f.Head(10), 4)
}

func TestCellRagged(t *testing.T) {
	f := &Frame{
		Columns: []string{"a", "b"},
		Rows:    [][]string{{"1"}},
	}

	assert.Equal(t, "1", f.Cell(0, 0))
	assert.Equal(t, "", f.Cell(0, 1))
	assert.Equal(t, "", f.Cell(5, 0))
}

func TestNumericCoercion(t *testing.T) {
	f := sampleFrame()

	cols := f.Numeric()
	require.Len(t, cols, 2, "only pm25 and pm10 should coerce")

	assert.Equal(t, "pm25", cols[0].Name)
	assert.Equal(t, "pm10", cols[1].Name)

	// Unparseable and empty cells become NaN
	assert.True(t, math.IsNaN(cols[0].Values[2]))
	assert.True(t, math.IsNaN(cols[1].Values[3]))

	assert.Equal(t, 3, cols[0].Count())
	assert.Equal(t, 3, cols[1].Count())
}

func TestNumericWhitespace(t *testing.T) {
	f := &Frame{
		Columns: []string{"v"},
		Rows:    [][]string{{" 1.5 "}, {"\t2"}, {"  "}},
	}

	cols := f.Numeric()
	require.Len(t, cols, 1)
	assert.Equal(t, 1.5, cols[0].Values[0])
	assert.Equal(t, 2.0, cols[0].Values[1])
	assert.True(t, math.IsNaN(cols[0].Values[2]))
}

func TestNumericAllText(t *testing.T) {
	f := &Frame{
		Columns: []string{"city"},
		Rows:    [][]string{{"chennai"}, {"madurai"}},
	}

	assert.Empty(t, f.Numeric())
}

func TestKindAndNonNull(t *testing.T) {
	f := sampleFrame()

	assert.Equal(t, "text", f.Kind(0))
	assert.Equal(t, "numeric", f.Kind(1))
	assert.Equal(t, "numeric", f.Kind(2))
	assert.Equal(t, "text", f.Kind(3))

	assert.Equal(t, 4, f.NonNull(0))
	assert.Equal(t, 3, f.NonNull(2), "empty pm10 cell is null")
	assert.Equal(t, 3, f.NonNull(3))
}
