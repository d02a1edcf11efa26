package store

import (
	"context"
	"database/sql"
	"strconv"

	"solarday/internal/domain"

	_ "github.com/lib/pq"
)

var _ RecordSink = (*PostgresRecordSink)(nil)

// PostgresRecordSink writes daily summaries into a weewx archive kept in
// PostgreSQL. The table must already exist.
type PostgresRecordSink struct {
	sqlRecordSink
}

// NewPostgresRecordSink connects using dsn and checks the server is
// reachable.
func NewPostgresRecordSink(ctx context.Context, dsn, table string, replace bool) (*PostgresRecordSink, error) {
	if err := checkTable(table); err != nil {
		return nil, &domain.DataSinkError{Op: "open", Err: err}
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, &domain.DataSinkError{Op: "open", Err: err}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &domain.DataSinkError{Op: "ping", Err: err}
	}
	return &PostgresRecordSink{sqlRecordSink{
		db:          db,
		table:       table,
		replace:     replace,
		placeholder: dollarN,
	}}, nil
}

func dollarN(i int) string { return "$" + strconv.Itoa(i) }
