package frame

import "math"

// Corr computes the Pearson correlation matrix for the given columns
// over pairwise-complete observations. The diagonal is 1 wherever the
// column has any values; a cell is NaN when fewer than two complete
// pairs exist or either side has zero variance.
func Corr(cols []NumericColumn) [][]float64 {
	n := len(cols)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			switch {
			case i == j:
				if cols[i].Count() > 0 {
					m[i][j] = 1
				} else {
					m[i][j] = math.NaN()
				}
			case j < i:
				m[i][j] = m[j][i]
			default:
				m[i][j] = pearson(cols[i].Values, cols[j].Values)
			}
		}
	}
	return m
}

func pearson(a, b []float64) float64 {
	var xs, ys []float64
	for i := range a {
		if i >= len(b) {
			break
		}
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	mx, my := mean(xs), mean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}
