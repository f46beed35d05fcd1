// Package source loads tabular datasets from local files, Google
// Sheets, and ClickHouse into frames.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinothraj/aqlens/internal/frame"
)

// Source produces a frame from some backing dataset.
type Source interface {
	// Name identifies the source in logs and report headers.
	Name() string
	// Check verifies the source is reachable without loading it fully.
	Check(ctx context.Context) error
	// Load reads the full dataset.
	Load(ctx context.Context) (*frame.Frame, error)
}

// ConnectError means the backing service could not be reached or
// refused us. Maps to exit code 2.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return fmt.Sprintf("connecting to source: %v", e.Err) }
func (e *ConnectError) Unwrap() error { return e.Err }

// LoadError means the source was reached but its data was missing or
// unusable. Maps to exit code 3.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("loading data: %v", e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

func connectErr(format string, args ...any) error {
	return &ConnectError{Err: fmt.Errorf(format, args...)}
}

func loadErr(format string, args ...any) error {
	return &LoadError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps a command error to the process exit code: 2 for
// connection failures, 3 for data loading failures, 1 otherwise.
func ExitCode(err error) int {
	var ce *ConnectError
	if errors.As(err, &ce) {
		return 2
	}
	var le *LoadError
	if errors.As(err, &le) {
		return 3
	}
	return 1
}

// frameFromRecords builds a frame from raw records, treating the first
// record as the header and padding ragged rows to the header width.
func frameFromRecords(name string, records [][]string) (*frame.Frame, error) {
	if len(records) < 2 {
		return nil, loadErr("%s contains no data or no header row", name)
	}
	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		copy(row, rec)
		rows = append(rows, row)
	}
	return &frame.Frame{Name: name, Columns: header, Rows: rows}, nil
}
