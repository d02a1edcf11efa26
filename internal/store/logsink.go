package store

import (
	"context"
	"log/slog"

	"solarday/internal/domain"
)

var _ RecordSink = (*LogRecordSink)(nil)

// LogRecordSink is the dry-run sink: it logs every record and persists
// nothing.
type LogRecordSink struct {
	log *slog.Logger
}

// NewLogRecordSink creates a dry-run sink logging through log.
func NewLogRecordSink(log *slog.Logger) *LogRecordSink {
	return &LogRecordSink{log: log}
}

// WriteRecords logs each record at info level.
func (s *LogRecordSink) WriteRecords(ctx context.Context, records []domain.DayRecord) error {
	for _, r := range records {
		s.log.InfoContext(ctx, "day record",
			"dateTime", r.DateTime,
			"min", r.Min, "mintime", r.MinTime,
			"max", r.Max, "maxtime", r.MaxTime,
			"sum", r.Sum, "count", r.Count,
			"wsum", r.WSum, "sumtime", r.SumTime,
		)
	}
	s.log.InfoContext(ctx, "dry run, nothing written", "records", len(records))
	return nil
}

// Close is a no-op.
func (s *LogRecordSink) Close() error { return nil }
