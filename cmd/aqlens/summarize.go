package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinothraj/aqlens/internal/config"
	"github.com/vinothraj/aqlens/internal/frame"
	"github.com/vinothraj/aqlens/internal/logger"
	"github.com/vinothraj/aqlens/internal/report"
)

const (
	headRows       = 5
	histogramBins  = 30
	maxHeatmapCols = 5
)

var summarizeFlags struct {
	savePlots bool
	outPrefix string
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Load a dataset and print summaries and charts",
	Long: `Load a dataset and print a head sample, per-column schema info,
descriptive statistics, and text charts.

The dataset comes from exactly one source: a local CSV file (--csv), a
local Excel workbook (--excel), a link-readable Google Sheet (--url or
--id), or a ClickHouse query (--query with --dsn).

Charts cover the numeric columns only: a correlation heatmap of up to
the first five numeric columns, then a histogram and boxplot of the
first numeric column. With --save-plots the charts are written to text
files instead of printed.`,
	RunE: runSummarize,
}

func init() {
	addSourceFlags(summarizeCmd)
	summarizeCmd.Flags().BoolVar(&summarizeFlags.savePlots, "save-plots", false, "Save charts to files instead of printing them")
	summarizeCmd.Flags().StringVar(&summarizeFlags.outPrefix, "out-prefix", "aq_", "Filename prefix for saved charts")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	src, err := buildSource(cmd, cfg)
	if err != nil {
		return err
	}

	logger.Info("summarize: loading %s", src.Name())
	f, err := src.Load(cmd.Context())
	if err != nil {
		return err
	}
	logger.Info("summarize: loaded %d rows, %d columns", len(f.Rows), len(f.Columns))

	r := report.New(cmd.OutOrStdout())
	r.Printf("Data loaded successfully from %s. Showing first %d rows:\n\n", f.Name, headRows)
	r.Head(f, headRows)

	r.Title("Dataset info")
	r.Info(f)

	r.Title("Statistical summary (numeric columns)")
	r.Describe(f.Describe())

	cols := f.Numeric()
	if len(cols) == 0 {
		r.Printf("\nNo numeric columns found - skipping plots.\n")
		return nil
	}

	heatCols := cols
	if len(heatCols) > maxHeatmapCols {
		heatCols = heatCols[:maxHeatmapCols]
	}
	matrix := frame.Corr(heatCols)

	if summarizeFlags.savePlots {
		prefix := stringSetting(cmd, "out-prefix", summarizeFlags.outPrefix, cfg.OutPrefix)
		saved, err := report.SavePlots(heatCols, matrix, histogramBins, prefix)
		if err != nil {
			return err
		}
		for _, s := range saved {
			r.Printf("Saved %s to %s\n", s.Kind, s.Path)
		}
		return nil
	}

	r.Heatmap(heatCols, matrix)
	r.Histogram(cols[0], histogramBins)
	r.Boxplot(cols[0])
	return nil
}
