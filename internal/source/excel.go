package source

import (
	"context"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vinothraj/aqlens/internal/frame"
	"github.com/vinothraj/aqlens/internal/logger"
)

// ExcelSource reads a .xlsx/.xls workbook. Sheet selects a worksheet
// by name; empty means the first sheet in the workbook.
type ExcelSource struct {
	Path  string
	Sheet string
}

func NewExcel(path, sheet string) *ExcelSource {
	return &ExcelSource{Path: path, Sheet: sheet}
}

func (s *ExcelSource) Name() string {
	return filepath.Base(s.Path)
}

func (s *ExcelSource) Check(ctx context.Context) error {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return loadErr("opening workbook %s: %v", s.Path, err)
	}
	defer f.Close()

	if _, err := s.sheetName(f); err != nil {
		return err
	}
	return nil
}

func (s *ExcelSource) Load(ctx context.Context) (*frame.Frame, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, loadErr("opening workbook %s: %v", s.Path, err)
	}
	defer f.Close()

	sheet, err := s.sheetName(f)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, loadErr("reading sheet %q of %s: %v", sheet, s.Path, err)
	}
	logger.Debug("excel: read %d rows from %s!%s", len(rows), s.Path, sheet)
	return frameFromRecords(s.Name(), rows)
}

func (s *ExcelSource) sheetName(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", loadErr("workbook %s has no sheets", s.Path)
	}
	if s.Sheet == "" {
		return sheets[0], nil
	}
	for _, name := range sheets {
		if name == s.Sheet {
			return name, nil
		}
	}
	return "", loadErr("sheet %q not found in %s", s.Sheet, s.Path)
}
