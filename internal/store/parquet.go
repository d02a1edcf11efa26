package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"solarday/internal/domain"
)

// Compile-time interface check.
var _ RecordSink = (*ParquetRecordSink)(nil)

// ParquetRecordSink writes one run's daily summaries to a single Parquet
// file, replacing any previous file at Path.
type ParquetRecordSink struct {
	Path string
}

// NewParquetRecordSink creates a sink writing to path.
func NewParquetRecordSink(path string) *ParquetRecordSink {
	return &ParquetRecordSink{Path: path}
}

// ---------------------------------------------------------------------------
// Parquet record type (on-disk schema)
// ---------------------------------------------------------------------------

// DayRecordRow is the Parquet schema for a daily summary. Column names match
// the weewx archive_day_* columns.
type DayRecordRow struct {
	DateTime int64   `parquet:"dateTime"` // Unix s
	Min      float64 `parquet:"min"`
	MinTime  int64   `parquet:"mintime"`
	Max      float64 `parquet:"max"`
	MaxTime  int64   `parquet:"maxtime"`
	Sum      float64 `parquet:"sum"`
	Count    int64   `parquet:"count"`
	WSum     float64 `parquet:"wsum"`
	SumTime  int64   `parquet:"sumtime"`
}

// WriteRecords writes records to a temporary file next to Path and renames
// it into place, so a failed run leaves any earlier file untouched.
func (s *ParquetRecordSink) WriteRecords(_ context.Context, records []domain.DayRecord) error {
	rows := make([]DayRecordRow, len(records))
	for i, r := range records {
		rows[i] = DayRecordRow(r)
	}

	tmp := s.Path + ".tmp"
	if err := writeParquetFile(tmp, rows); err != nil {
		os.Remove(tmp)
		return &domain.DataSinkError{Op: "write " + tmp, Err: err}
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return &domain.DataSinkError{Op: "rename " + tmp, Err: err}
	}
	return nil
}

// Close is a no-op; each WriteRecords call opens and closes its own file.
func (s *ParquetRecordSink) Close() error { return nil }

// ReadDayRecords loads a file written by ParquetRecordSink.
func ReadDayRecords(path string) ([]domain.DayRecord, error) {
	rows, err := readParquetFile[DayRecordRow](path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	records := make([]domain.DayRecord, len(rows))
	for i, r := range rows {
		records[i] = domain.DayRecord(r)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Parquet file helpers
// ---------------------------------------------------------------------------

func writeParquetFile[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return parquet.WriteFile(path, records)
}

func readParquetFile[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
