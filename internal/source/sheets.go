package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vinothraj/aqlens/internal/frame"
	"github.com/vinothraj/aqlens/internal/logger"
)

const sheetsExportBase = "https://docs.google.com/spreadsheets/d"

// SheetsSource fetches a link-readable Google Sheet through its CSV
// export endpoint. Worksheet is the tab gid (0 is the first tab).
type SheetsSource struct {
	SpreadsheetID string
	Worksheet     int

	// BaseURL overrides the export host, for tests.
	BaseURL string
	Client  *http.Client
}

func NewSheets(spreadsheetID string, worksheet int) *SheetsSource {
	return &SheetsSource{SpreadsheetID: spreadsheetID, Worksheet: worksheet}
}

// ExtractSpreadsheetID pulls the spreadsheet id out of a full Sheets
// URL, or returns the input unchanged when it already looks like an id.
func ExtractSpreadsheetID(url string) (string, error) {
	if !strings.Contains(url, "/d/") {
		return url, nil
	}
	rest := strings.SplitN(url, "/d/", 2)[1]
	id := strings.SplitN(rest, "/", 2)[0]
	id = strings.SplitN(id, "?", 2)[0]
	if id == "" {
		return "", fmt.Errorf("couldn't parse spreadsheet id from URL: %s", url)
	}
	return id, nil
}

func (s *SheetsSource) Name() string {
	return "sheet " + s.SpreadsheetID
}

func (s *SheetsSource) Check(ctx context.Context) error {
	resp, err := s.get(ctx)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (s *SheetsSource) Load(ctx context.Context) (*frame.Frame, error) {
	resp, err := s.get(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	records, err := readRecords(csv.NewReader(resp.Body))
	if err != nil {
		return nil, loadErr("parsing sheet export: %v", err)
	}
	logger.Debug("sheets: fetched %d records for %s gid=%d", len(records), s.SpreadsheetID, s.Worksheet)
	return frameFromRecords(s.Name(), records)
}

func (s *SheetsSource) get(ctx context.Context) (*http.Response, error) {
	base := s.BaseURL
	if base == "" {
		base = sheetsExportBase
	}
	url := fmt.Sprintf("%s/%s/export?format=csv&gid=%d", base, s.SpreadsheetID, s.Worksheet)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, connectErr("building export request: %v", err)
	}

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, connectErr("fetching sheet export: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, loadErr("sheet export returned %s (is the sheet link-readable?)", resp.Status)
	}
	return resp, nil
}
