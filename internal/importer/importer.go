// Package importer runs the one-shot wview high/low to weewx daily summary
// import: fetch every sample, fold them into days, write the days.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"solarday/internal/aggregate"
	"solarday/internal/store"
)

// Result summarises one run.
type Result struct {
	Samples  int
	Records  int
	FirstDay int64
	LastDay  int64
}

// Importer moves one high/low table into one daily summary table.
type Importer struct {
	source store.SampleSource
	sink   store.RecordSink
	opts   aggregate.Options
	log    *slog.Logger
}

// New creates an Importer. Every log line it emits carries a run_id.
func New(source store.SampleSource, sink store.RecordSink, opts aggregate.Options, log *slog.Logger) *Importer {
	return &Importer{
		source: source,
		sink:   sink,
		opts:   opts,
		log:    log.With("run_id", uuid.NewString()),
	}
}

// Name returns the importer identifier.
func (im *Importer) Name() string { return "solar-day-import" }

// Run reads the full source series, aggregates it and writes the result.
// Nothing is written if reading or aggregation fails.
func (im *Importer) Run(ctx context.Context) (Result, error) {
	im.log.Info("fetching samples")
	samples, err := im.source.FetchAllSamples(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetching samples: %w", err)
	}
	im.log.Info("fetched samples", "samples", len(samples))

	records, err := aggregate.Daily(samples, im.opts)
	if err != nil {
		return Result{}, fmt.Errorf("aggregating %d samples: %w", len(samples), err)
	}
	for _, r := range records {
		im.log.Debug("day", "dateTime", r.DateTime, "count", r.Count, "sum", r.Sum, "wsum", r.WSum, "sumtime", r.SumTime)
	}

	res := Result{
		Samples:  len(samples),
		Records:  len(records),
		FirstDay: records[0].DateTime,
		LastDay:  records[len(records)-1].DateTime,
	}
	im.log.Info("aggregated",
		"records", res.Records,
		"first_day", res.FirstDay,
		"last_day", res.LastDay,
		"extrema", im.opts.Extrema.String(),
	)

	if err := im.sink.WriteRecords(ctx, records); err != nil {
		return res, fmt.Errorf("writing %d records: %w", len(records), err)
	}
	im.log.Info("records written", "records", res.Records)

	return res, nil
}
