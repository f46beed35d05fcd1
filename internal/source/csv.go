package source

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vinothraj/aqlens/internal/frame"
	"github.com/vinothraj/aqlens/internal/logger"
)

// CSVSource reads a local delimited text file. Exported spreadsheets
// are frequently UTF-16 with a BOM; those are decoded transparently.
type CSVSource struct {
	Path string
	Sep  rune
}

// NewCSV returns a CSV source for path. sep defaults to ',' when the
// separator string is empty; only its first rune is used.
func NewCSV(path, sep string) *CSVSource {
	r := ','
	if sep != "" {
		r = []rune(sep)[0]
	}
	return &CSVSource{Path: path, Sep: r}
}

func (s *CSVSource) Name() string {
	return filepath.Base(s.Path)
}

func (s *CSVSource) Check(ctx context.Context) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return loadErr("local data file not found: %s", s.Path)
	}
	defer f.Close()

	r := s.reader(f)
	if _, err := r.Read(); err != nil {
		return loadErr("reading header of %s: %v", s.Path, err)
	}
	return nil
}

func (s *CSVSource) Load(ctx context.Context) (*frame.Frame, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadErr("local data file not found: %s", s.Path)
	}
	defer f.Close()

	records, err := readRecords(s.reader(f))
	if err != nil {
		return nil, loadErr("parsing %s: %v", s.Path, err)
	}
	logger.Debug("csv: read %d records from %s", len(records), s.Path)
	return frameFromRecords(s.Name(), records)
}

func (s *CSVSource) reader(f *os.File) *csv.Reader {
	br := bufio.NewReader(f)
	// Spreadsheet exports are sometimes UTF-16; sniff the BOM and
	// decode before handing bytes to the CSV parser.
	if b, _ := br.Peek(2); len(b) >= 2 &&
		((b[0] == 0xFF && b[1] == 0xFE) || (b[0] == 0xFE && b[1] == 0xFF)) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		br = bufio.NewReader(transform.NewReader(br, dec))
	}
	r := csv.NewReader(br)
	r.Comma = s.Sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

func readRecords(r *csv.Reader) ([][]string, error) {
	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(records) == 0 && len(rec) > 0 {
			// a UTF-8 BOM survives into the first header cell
			rec[0] = strings.TrimPrefix(rec[0], "\uFEFF")
		}
		records = append(records, rec)
	}
	return records, nil
}
