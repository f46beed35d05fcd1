package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	f := &Frame{
		Columns: []string{"label", "v"},
		Rows: [][]string{
			{"a", "1"},
			{"b", "2"},
			{"c", "3"},
			{"d", "4"},
			{"e", "bad"},
		},
	}

	stats := f.Describe()
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, "v", s.Column)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 1.2909944487, s.Std, 1e-9)
	assert.Equal(t, 1.0, s.Min)
	assert.InDelta(t, 1.75, s.P25, 1e-9)
	assert.InDelta(t, 2.5, s.P50, 1e-9)
	assert.InDelta(t, 3.25, s.P75, 1e-9)
	assert.Equal(t, 4.0, s.Max)
}

func TestDescribeSingleValue(t *testing.T) {
	f := &Frame{
		Columns: []string{"v"},
		Rows:    [][]string{{"7"}},
	}

	stats := f.Describe()
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 7.0, s.Mean)
	assert.True(t, math.IsNaN(s.Std), "std undefined for a single value")
	assert.Equal(t, 7.0, s.Min)
	assert.Equal(t, 7.0, s.P50)
	assert.Equal(t, 7.0, s.Max)
}

func TestDescribeNoNumericColumns(t *testing.T) {
	f := &Frame{
		Columns: []string{"name"},
		Rows:    [][]string{{"x"}, {"y"}},
	}

	assert.Empty(t, f.Describe())
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		q      float64
		want   float64
	}{
		{"median of even count interpolates", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"median of odd count is exact", []float64{1, 2, 3}, 0.5, 2},
		{"first quartile", []float64{10, 20, 30, 40, 50}, 0.25, 20},
		{"interpolated quartile", []float64{0, 10}, 0.75, 7.5},
		{"zeroth quantile is min", []float64{3, 9}, 0, 3},
		{"full quantile is max", []float64{3, 9}, 1, 9},
		{"single element", []float64{5}, 0.25, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantile(tt.sorted, tt.q), 1e-9)
		})
	}
}

func TestQuantileEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}
