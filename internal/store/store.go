// Package store defines the source and sink interfaces around the daily
// aggregation and their SQLite, PostgreSQL and Parquet implementations.
package store

import (
	"context"
	"fmt"
	"regexp"

	"solarday/internal/domain"
)

// SampleSource reads a complete high/low series.
type SampleSource interface {
	// FetchAllSamples returns every sample, sorted ascending by timestamp.
	FetchAllSamples(ctx context.Context) ([]domain.Sample, error)

	// Close releases the underlying connection.
	Close() error
}

// RecordSink persists daily summary records.
type RecordSink interface {
	// WriteRecords persists the batch, all or nothing.
	WriteRecords(ctx context.Context, records []domain.DayRecord) error

	// Close releases the underlying connection.
	Close() error
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// checkTable rejects table names that would need quoting. Table names are
// interpolated into SQL text, so only plain identifiers are accepted.
func checkTable(table string) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	return nil
}
