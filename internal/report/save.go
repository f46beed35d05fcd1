package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gosimple/slug"

	"github.com/vinothraj/aqlens/internal/frame"
)

// Saved records one chart written to disk.
type Saved struct {
	Kind string
	Path string
}

// SavePlots renders the heatmap, histogram and boxplot without color
// and writes each to its own file under the given name prefix. The
// histogram and boxplot cover the first numeric column, matching what
// the printed report shows.
func SavePlots(cols []frame.NumericColumn, matrix [][]float64, bins int, prefix string) ([]Saved, error) {
	if len(cols) == 0 {
		return nil, nil
	}

	first := cols[0]
	stem := slug.Make(first.Name)

	out := []Saved{
		{Kind: "heatmap", Path: prefix + "heatmap.txt"},
		{Kind: "histogram", Path: fmt.Sprintf("%s%s_histogram.txt", prefix, stem)},
		{Kind: "boxplot", Path: fmt.Sprintf("%s%s_boxplot.txt", prefix, stem)},
	}

	renders := []func(r *Renderer){
		func(r *Renderer) { r.Heatmap(cols, matrix) },
		func(r *Renderer) { r.Histogram(first, bins) },
		func(r *Renderer) { r.Boxplot(first) },
	}

	for i, s := range out {
		var buf bytes.Buffer
		renders[i](NewPlain(&buf))
		if err := os.WriteFile(s.Path, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", s.Path, err)
		}
	}
	return out, nil
}
