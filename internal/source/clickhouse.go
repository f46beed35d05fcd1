package source

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/vinothraj/aqlens/internal/frame"
	"github.com/vinothraj/aqlens/internal/logger"
)

// ClickHouseSource runs a query against a ClickHouse server and treats
// the result set as the dataset.
type ClickHouseSource struct {
	DSN   string
	Query string
}

func NewClickHouse(dsn, query string) *ClickHouseSource {
	return &ClickHouseSource{DSN: dsn, Query: query}
}

func (s *ClickHouseSource) Name() string {
	return "clickhouse query"
}

func (s *ClickHouseSource) Check(ctx context.Context) error {
	conn, err := s.open(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}

func (s *ClickHouseSource) Load(ctx context.Context) (*frame.Frame, error) {
	conn, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(ctx, s.Query)
	if err != nil {
		return nil, loadErr("running query: %v", err)
	}
	defer rows.Close()

	cols := rows.Columns()
	types := rows.ColumnTypes()

	records := [][]string{cols}
	for rows.Next() {
		dests := make([]any, len(types))
		for i, ct := range types {
			dests[i] = reflect.New(ct.ScanType()).Interface()
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, loadErr("scanning row: %v", err)
		}
		records = append(records, renderRow(dests))
	}
	if err := rows.Err(); err != nil {
		return nil, loadErr("reading result set: %v", err)
	}
	logger.Debug("clickhouse: query returned %d rows", len(records)-1)
	return frameFromRecords(s.Name(), records)
}

func (s *ClickHouseSource) open(ctx context.Context) (driver.Conn, error) {
	opts, err := clickhouse.ParseDSN(s.DSN)
	if err != nil {
		return nil, connectErr("parsing DSN: %v", err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, connectErr("opening connection: %v", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, connectErr("pinging %v: %v", opts.Addr, err)
	}
	return conn, nil
}

// renderRow flattens scanned column pointers into display cells.
func renderRow(dests []any) []string {
	out := make([]string, len(dests))
	for i, d := range dests {
		v := reflect.ValueOf(d).Elem().Interface()
		out[i] = fmt.Sprint(v)
	}
	return out
}
