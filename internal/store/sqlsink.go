package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"solarday/internal/domain"
)

// dayColumns are the weewx daily summary columns, in insert order.
var dayColumns = []string{
	"dateTime",
	"min", "mintime",
	"max", "maxtime",
	"sum", "count",
	"wsum", "sumtime",
}

// sqlRecordSink is the database/sql insert path shared by the SQLite and
// PostgreSQL sinks. placeholder renders the bind marker for the 1-based
// argument position.
type sqlRecordSink struct {
	db          *sql.DB
	table       string
	replace     bool
	placeholder func(int) string
}

// WriteRecords inserts all records in a single transaction. With replace set
// the table is emptied first inside the same transaction.
func (s *sqlRecordSink) WriteRecords(ctx context.Context, records []domain.DayRecord) error {
	if len(records) == 0 && !s.replace {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.DataSinkError{Op: "begin", Err: err}
	}
	defer tx.Rollback()

	if s.replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.table); err != nil {
			return &domain.DataSinkError{Op: "delete " + s.table, Err: err}
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery(s.table, s.placeholder))
	if err != nil {
		return &domain.DataSinkError{Op: "prepare insert " + s.table, Err: err}
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.DateTime,
			r.Min, r.MinTime,
			r.Max, r.MaxTime,
			r.Sum, r.Count,
			r.WSum, r.SumTime,
		)
		if err != nil {
			return &domain.DataSinkError{
				Op:  fmt.Sprintf("insert %s dateTime=%d", s.table, r.DateTime),
				Err: err,
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return &domain.DataSinkError{Op: "commit", Err: err}
	}
	return nil
}

// Close closes the underlying database connection.
func (s *sqlRecordSink) Close() error {
	return s.db.Close()
}

// insertQuery renders the INSERT statement for a daily summary table.
func insertQuery(table string, placeholder func(int) string) string {
	marks := make([]string, len(dayColumns))
	for i := range marks {
		marks[i] = placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(dayColumns, ", "), strings.Join(marks, ", "))
}
