package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// isolate keeps tests away from any real config files.
func isolate(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmpDir))
	return tmpDir
}

func writeCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "air.csv")
	data := "station,pm25,pm10\nalpha,12.5,30\nbeta,14,28\ngamma,11,35\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestSummarizeCSV(t *testing.T) {
	dir := isolate(t)
	path := writeCSV(t, dir)

	out, err := execute(t, "summarize", "--csv", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Data loaded successfully from air.csv")
	assert.Contains(t, out, "station")
	assert.Contains(t, out, "Dataset info")
	assert.Contains(t, out, "Statistical summary")
	assert.Contains(t, out, "Correlation Heatmap")
	assert.Contains(t, out, "Histogram of pm25")
	assert.Contains(t, out, "Boxplot for pm25")
}

func TestSummarizeNoNumericColumns(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "names.csv")
	require.NoError(t, os.WriteFile(path, []byte("city,state\nchennai,tn\nkochi,kl\n"), 0644))

	out, err := execute(t, "summarize", "--csv", path)
	require.NoError(t, err)

	assert.Contains(t, out, "No numeric columns found - skipping plots.")
	assert.NotContains(t, out, "Histogram")
}

func TestSummarizeSavePlots(t *testing.T) {
	dir := isolate(t)
	path := writeCSV(t, dir)
	prefix := filepath.Join(dir, "aq_")

	out, err := execute(t, "summarize", "--csv", path, "--save-plots", "--out-prefix", prefix)
	require.NoError(t, err)

	assert.Contains(t, out, "Saved heatmap to "+prefix+"heatmap.txt")
	assert.Contains(t, out, "Saved histogram to ")
	assert.FileExists(t, prefix+"heatmap.txt")
	assert.FileExists(t, prefix+"pm25_histogram.txt")
	assert.FileExists(t, prefix+"pm25_boxplot.txt")

	// Reset for other tests sharing the flag set
	summarizeFlags.savePlots = false
}

func TestSummarizeMissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "summarize", "--csv", filepath.Join(dir, "nope.csv"))
	require.Error(t, err)
}

func TestSummarizeNoSource(t *testing.T) {
	isolate(t)
	resetSourceFlags()

	_, err := execute(t, "summarize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data source given")
}

func TestSummarizeConflictingSources(t *testing.T) {
	dir := isolate(t)
	path := writeCSV(t, dir)

	_, err := execute(t, "summarize", "--csv", path, "--id", "abc123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple data sources")
	resetSourceFlags()
}

func TestCheckCSV(t *testing.T) {
	dir := isolate(t)
	path := writeCSV(t, dir)

	out, err := execute(t, "check", "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK: air.csv is reachable")
}

func TestSetupProject(t *testing.T) {
	isolate(t)
	resetSourceFlags()

	out, err := execute(t, "setup", "--project")
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to: aqlens.yml")
	assert.FileExists(t, "aqlens.yml")

	// Second run without --force refuses to overwrite
	_, err = execute(t, "setup", "--project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	setupFlags.project = false
}

// resetSourceFlags clears sticky package-level flag state between runs.
func resetSourceFlags() {
	srcFlags.csvPath = ""
	srcFlags.excelPath = ""
	srcFlags.url = ""
	srcFlags.id = ""
	srcFlags.dsn = ""
	srcFlags.query = ""
}
