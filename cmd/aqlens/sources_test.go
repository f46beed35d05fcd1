package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinothraj/aqlens/internal/config"
	"github.com/vinothraj/aqlens/internal/source"
)

func testConfig() *config.Config {
	return &config.Config{Separator: ",", OutPrefix: "aq_"}
}

func TestBuildSourceCSV(t *testing.T) {
	resetSourceFlags()
	srcFlags.csvPath = "data.csv"

	src, err := buildSource(summarizeCmd, testConfig())
	require.NoError(t, err)

	csv, ok := src.(*source.CSVSource)
	require.True(t, ok)
	assert.Equal(t, "data.csv", csv.Path)
	assert.Equal(t, ',', csv.Sep)
}

func TestBuildSourceCSVSeparatorFromConfig(t *testing.T) {
	resetSourceFlags()
	srcFlags.csvPath = "data.csv"

	cfg := testConfig()
	cfg.Separator = ";"

	src, err := buildSource(checkCmd, cfg)
	require.NoError(t, err)
	assert.Equal(t, ';', src.(*source.CSVSource).Sep)
}

func TestBuildSourceExcel(t *testing.T) {
	resetSourceFlags()
	srcFlags.excelPath = "book.xlsx"
	srcFlags.sheet = ""

	cfg := testConfig()
	cfg.Sheet = "readings"

	src, err := buildSource(checkCmd, cfg)
	require.NoError(t, err)

	xl, ok := src.(*source.ExcelSource)
	require.True(t, ok)
	assert.Equal(t, "readings", xl.Sheet, "sheet name falls back to config")
}

func TestBuildSourceSheetsFromURL(t *testing.T) {
	resetSourceFlags()
	srcFlags.url = "https://docs.google.com/spreadsheets/d/1AbC/edit#gid=0"

	src, err := buildSource(checkCmd, testConfig())
	require.NoError(t, err)

	sh, ok := src.(*source.SheetsSource)
	require.True(t, ok)
	assert.Equal(t, "1AbC", sh.SpreadsheetID)
}

func TestBuildSourceSheetsBadURL(t *testing.T) {
	resetSourceFlags()
	srcFlags.url = "https://docs.google.com/spreadsheets/d//edit"

	_, err := buildSource(checkCmd, testConfig())
	require.Error(t, err)
}

func TestBuildSourceQueryNeedsDSN(t *testing.T) {
	resetSourceFlags()
	srcFlags.query = "SELECT 1"

	_, err := buildSource(checkCmd, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dsn")
}

func TestBuildSourceQueryDSNFromConfig(t *testing.T) {
	resetSourceFlags()
	srcFlags.query = "SELECT 1"

	cfg := testConfig()
	cfg.ClickHouseDSN = "clickhouse://localhost:9000"

	src, err := buildSource(checkCmd, cfg)
	require.NoError(t, err)

	ch, ok := src.(*source.ClickHouseSource)
	require.True(t, ok)
	assert.Equal(t, "clickhouse://localhost:9000", ch.DSN)
}

func TestBuildSourceNothingSelected(t *testing.T) {
	resetSourceFlags()

	_, err := buildSource(checkCmd, testConfig())
	require.Error(t, err)
}
