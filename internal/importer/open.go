package importer

import (
	"context"
	"fmt"
	"log/slog"

	"solarday/internal/aggregate"
	"solarday/internal/config"
	"solarday/internal/store"
)

// OpenSource opens the configured high/low source.
func OpenSource(ctx context.Context, cfg config.Source) (store.SampleSource, error) {
	return store.NewSQLiteSampleSource(ctx, cfg.SQLitePath, cfg.Table)
}

// OpenSink opens the sink selected by cfg.Driver. The log driver writes
// records to log and persists nothing.
func OpenSink(ctx context.Context, cfg config.Sink, log *slog.Logger) (store.RecordSink, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return store.NewSQLiteRecordSink(ctx, cfg.SQLitePath, cfg.Table, cfg.Replace)
	case config.DriverPostgres:
		return store.NewPostgresRecordSink(ctx, cfg.PostgresDSN, cfg.Table, cfg.Replace)
	case config.DriverParquet:
		return store.NewParquetRecordSink(cfg.ParquetPath), nil
	case config.DriverLog:
		return store.NewLogRecordSink(log), nil
	default:
		return nil, fmt.Errorf("unknown sink driver %q", cfg.Driver)
	}
}

// Options converts the aggregate config section.
func Options(cfg config.Aggregate) (aggregate.Options, error) {
	policy, err := aggregate.ParseExtremaPolicy(cfg.Extrema)
	if err != nil {
		return aggregate.Options{}, err
	}
	return aggregate.Options{
		Extrema:          policy,
		IncludeBootstrap: cfg.IncludeBootstrap,
	}, nil
}
