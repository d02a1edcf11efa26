// One-shot tool: fold the wview high/low solarRadiation table into the weewx
// archive_day_radiation daily summary table.
//
// Usage:
//
//	go run ./cmd/solar-day-import [-config path] [-source db] [-dest db] [-dry-run] [-replace]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"solarday/internal/config"
	"solarday/internal/importer"
	"solarday/internal/util"
)

const defaultConfigPath = "config/solarday.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("solar-day-import failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath  = flag.String("config", "", "YAML config file (default $SOLARDAY_CONFIG or "+defaultConfigPath+")")
		source   = flag.String("source", "", "wview high/low SQLite database")
		dest     = flag.String("dest", "", "weewx SQLite database")
		driver   = flag.String("driver", "", "sink driver: sqlite, postgres, parquet or log")
		dryRun   = flag.Bool("dry-run", false, "log the records instead of writing them")
		replace  = flag.Bool("replace", false, "delete existing rows of the destination table first")
		seedZero = flag.Bool("seed-zero", false, "reset each day's min/max to 0 like the legacy import")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: solar-day-import [options]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Only an explicitly named config file has to exist.
	path, allowMissing := *cfgPath, false
	if path == "" {
		path = os.Getenv("SOLARDAY_CONFIG")
	}
	if path == "" {
		path, allowMissing = defaultConfigPath, true
	}

	cfg, err := config.Load(path, allowMissing)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if *source != "" {
		cfg.Source.SQLitePath = *source
	}
	if *dest != "" {
		cfg.Sink.SQLitePath = *dest
	}
	if *driver != "" {
		cfg.Sink.Driver = *driver
	}
	if *dryRun {
		cfg.Sink.Driver = config.DriverLog
	}
	if *replace {
		cfg.Sink.Replace = true
	}
	if *seedZero {
		cfg.Aggregate.Extrema = "zero"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	opts, err := importer.Options(cfg.Aggregate)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	src, err := importer.OpenSource(ctx, cfg.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	sink, err := importer.OpenSink(ctx, cfg.Sink, logger)
	if err != nil {
		return err
	}
	defer sink.Close()

	logger.Info("starting import",
		"source", cfg.Source.SQLitePath,
		"source_table", cfg.Source.Table,
		"sink", cfg.Sink.Driver,
		"sink_table", cfg.Sink.Table,
		"replace", cfg.Sink.Replace,
	)

	res, err := importer.New(src, sink, opts, logger).Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("import complete", "samples", res.Samples, "records", res.Records)
	return nil
}
