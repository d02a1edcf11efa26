package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"solarday/internal/domain"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Compile-time interface checks.
var _ SampleSource = (*SQLiteSampleSource)(nil)
var _ RecordSink = (*SQLiteRecordSink)(nil)

// ---------------------------------------------------------------------------
// Source: wview high/low database
// ---------------------------------------------------------------------------

// SQLiteSampleSource reads a wview high/low table such as solarRadiation
// from wview-hilow.sdb.
type SQLiteSampleSource struct {
	db    *sql.DB
	table string
}

// NewSQLiteSampleSource opens the existing SQLite database at dbPath. It does
// not create a missing file.
func NewSQLiteSampleSource(ctx context.Context, dbPath, table string) (*SQLiteSampleSource, error) {
	if err := checkTable(table); err != nil {
		return nil, &domain.DataSourceError{Op: "open", Err: err}
	}
	db, err := openExisting(ctx, dbPath)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "open", Err: err}
	}
	return &SQLiteSampleSource{db: db, table: table}, nil
}

// FetchAllSamples reads every row of the table ordered by dateTime.
func (s *SQLiteSampleSource) FetchAllSamples(ctx context.Context) ([]domain.Sample, error) {
	query := fmt.Sprintf(
		"SELECT dateTime, low, timeLow, high, timeHigh, cumulative, samples FROM %s ORDER BY dateTime ASC",
		s.table,
	)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "query " + s.table, Err: err}
	}
	defer rows.Close()

	var samples []domain.Sample
	for rows.Next() {
		var smp domain.Sample
		if err := rows.Scan(
			&smp.Timestamp,
			&smp.MinValue, &smp.MinTime,
			&smp.MaxValue, &smp.MaxTime,
			&smp.Cumulative, &smp.SampleCount,
		); err != nil {
			return nil, &domain.DataSourceError{Op: "scan " + s.table, Err: err}
		}
		samples = append(samples, smp)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.DataSourceError{Op: "query " + s.table, Err: err}
	}
	return samples, nil
}

// Close closes the underlying database connection.
func (s *SQLiteSampleSource) Close() error {
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Sink: weewx archive database
// ---------------------------------------------------------------------------

// SQLiteRecordSink writes daily summaries into a weewx SQLite archive such
// as weewx.sdb. The table must already exist.
type SQLiteRecordSink struct {
	sqlRecordSink
}

// NewSQLiteRecordSink opens the existing weewx database at dbPath.
func NewSQLiteRecordSink(ctx context.Context, dbPath, table string, replace bool) (*SQLiteRecordSink, error) {
	if err := checkTable(table); err != nil {
		return nil, &domain.DataSinkError{Op: "open", Err: err}
	}
	db, err := openExisting(ctx, dbPath)
	if err != nil {
		return nil, &domain.DataSinkError{Op: "open", Err: err}
	}
	return &SQLiteRecordSink{sqlRecordSink{
		db:          db,
		table:       table,
		replace:     replace,
		placeholder: questionMark,
	}}, nil
}

// openExisting opens a SQLite file and checks it can be queried. sql.Open
// alone would create an empty database for a mistyped path.
func openExisting(ctx context.Context, dbPath string) (*sql.DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func questionMark(int) string { return "?" }
