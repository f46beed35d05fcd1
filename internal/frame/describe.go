package frame

import (
	"math"
	"sort"
)

// Stats is the eight-number summary reported for one numeric column.
type Stats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation; NaN when Count < 2
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
}

// Describe computes summary statistics for every numeric column.
// Columns with no parseable values are omitted entirely.
func (f *Frame) Describe() []Stats {
	cols := f.Numeric()
	out := make([]Stats, 0, len(cols))
	for _, c := range cols {
		out = append(out, describeColumn(c))
	}
	return out
}

func describeColumn(c NumericColumn) Stats {
	vals := dropNaN(c.Values)
	s := Stats{Column: c.Name, Count: len(vals)}
	if len(vals) == 0 {
		s.Mean, s.Std = math.NaN(), math.NaN()
		s.Min, s.P25, s.P50, s.P75, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}

	sort.Float64s(vals)
	s.Min = vals[0]
	s.Max = vals[len(vals)-1]
	s.Mean = mean(vals)
	s.Std = sampleStd(vals, s.Mean)
	s.P25 = Quantile(vals, 0.25)
	s.P50 = Quantile(vals, 0.50)
	s.P75 = Quantile(vals, 0.75)
	return s
}

// Quantile returns the q-th quantile of sorted, using linear
// interpolation between the two nearest order statistics.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func sampleStd(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	ss := 0.0
	for _, v := range vals {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}

func dropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
