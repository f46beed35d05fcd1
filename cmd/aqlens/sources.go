package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinothraj/aqlens/internal/config"
	"github.com/vinothraj/aqlens/internal/source"
)

// Source selection flags, shared by summarize and check.
var srcFlags struct {
	csvPath   string
	excelPath string
	url       string
	id        string
	dsn       string
	query     string
	sheet     string
	sep       string
	worksheet int
}

func addSourceFlags(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&srcFlags.csvPath, "csv", "", "Path to a local CSV (or .txt) file")
	fl.StringVar(&srcFlags.excelPath, "excel", "", "Path to a local .xlsx/.xls workbook")
	fl.StringVar(&srcFlags.url, "url", "", "Full Google Sheets URL")
	fl.StringVar(&srcFlags.id, "id", "", "Spreadsheet ID (the long id in the URL)")
	fl.StringVar(&srcFlags.dsn, "dsn", "", "ClickHouse DSN, e.g. clickhouse://localhost:9000/default")
	fl.StringVar(&srcFlags.query, "query", "", "SQL query to run against ClickHouse")
	fl.StringVar(&srcFlags.sheet, "sheet", "", "Excel sheet name (default: first sheet in the workbook)")
	fl.IntVar(&srcFlags.worksheet, "worksheet", 0, "Google Sheets tab gid (default 0)")
	fl.StringVar(&srcFlags.sep, "sep", ",", "CSV separator (default ',')")
}

// buildSource resolves flags against the loaded config and returns the
// one selected source. Exactly one of --csv, --excel, --url/--id, or
// --query must be given.
func buildSource(cmd *cobra.Command, cfg *config.Config) (source.Source, error) {
	selected := 0
	for _, set := range []bool{
		srcFlags.csvPath != "",
		srcFlags.excelPath != "",
		srcFlags.url != "" || srcFlags.id != "",
		srcFlags.query != "",
	} {
		if set {
			selected++
		}
	}
	if selected == 0 {
		return nil, fmt.Errorf("no data source given: use --csv, --excel, --url/--id, or --query")
	}
	if selected > 1 {
		return nil, fmt.Errorf("multiple data sources given: use exactly one of --csv, --excel, --url/--id, --query")
	}

	switch {
	case srcFlags.csvPath != "":
		sep := stringSetting(cmd, "sep", srcFlags.sep, cfg.Separator)
		return source.NewCSV(srcFlags.csvPath, sep), nil

	case srcFlags.excelPath != "":
		sheet := stringSetting(cmd, "sheet", srcFlags.sheet, cfg.Sheet)
		return source.NewExcel(srcFlags.excelPath, sheet), nil

	case srcFlags.url != "" || srcFlags.id != "":
		id := srcFlags.id
		if srcFlags.url != "" {
			var err error
			if id, err = source.ExtractSpreadsheetID(srcFlags.url); err != nil {
				return nil, err
			}
		}
		worksheet := intSetting(cmd, "worksheet", srcFlags.worksheet, cfg.Worksheet)
		return source.NewSheets(id, worksheet), nil

	default:
		dsn := stringSetting(cmd, "dsn", srcFlags.dsn, cfg.ClickHouseDSN)
		if dsn == "" {
			return nil, fmt.Errorf("--query requires --dsn or clickhouse_dsn in the config")
		}
		return source.NewClickHouse(dsn, srcFlags.query), nil
	}
}

// stringSetting applies flag-over-config precedence for one setting.
func stringSetting(cmd *cobra.Command, name, flagValue, cfgValue string) string {
	if cmd.Flags().Changed(name) || cfgValue == "" {
		return flagValue
	}
	return cfgValue
}

func intSetting(cmd *cobra.Command, name string, flagValue, cfgValue int) int {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return cfgValue
}
