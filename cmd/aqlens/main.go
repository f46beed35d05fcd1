package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vinothraj/aqlens/internal/logger"
	"github.com/vinothraj/aqlens/internal/source"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(source.ExitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "aqlens",
	Short: "Explore air quality datasets from the command line",
}

func init() {
	rootCmd.Long = `aqlens loads a tabular dataset from a local CSV or Excel file, a
link-readable Google Sheet, or a ClickHouse query, and prints a head
sample, per-column schema info, descriptive statistics, and text charts
(correlation heatmap, histogram, boxplot).

Configuration is loaded from multiple sources with the following precedence:
  CLI flags > Environment variables > Project config > Global config > Defaults

Project config: ./aqlens.yml
Global config: ~/.config/aqlens/aqlens.yml`

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(setupCmd)
}
