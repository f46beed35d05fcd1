package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinothraj/aqlens/internal/frame"
)

func TestSavePlots(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "aq_")
	cols := []frame.NumericColumn{
		{Name: "PM 2.5", Values: []float64{1, 2, 3, 4}},
		{Name: "pm10", Values: []float64{2, 4, 6, 8}},
	}

	saved, err := SavePlots(cols, frame.Corr(cols), 30, prefix)
	require.NoError(t, err)
	require.Len(t, saved, 3)

	assert.Equal(t, "heatmap", saved[0].Kind)
	assert.Equal(t, prefix+"heatmap.txt", saved[0].Path)

	// Column names are slugged into the file stems
	assert.Equal(t, prefix+"pm-2-5_histogram.txt", saved[1].Path)
	assert.Equal(t, prefix+"pm-2-5_boxplot.txt", saved[2].Path)

	for _, s := range saved {
		data, err := os.ReadFile(s.Path)
		require.NoError(t, err, "chart file %s must exist", s.Path)
		assert.NotEmpty(t, data)
		assert.NotContains(t, string(data), "\x1b[", "saved charts are plain text")
	}
}

func TestSavePlotsNoNumericColumns(t *testing.T) {
	saved, err := SavePlots(nil, nil, 30, "aq_")
	require.NoError(t, err)
	assert.Empty(t, saved)
}
