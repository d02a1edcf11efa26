package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for solar-day-import.
type Config struct {
	Source    Source    `yaml:"source"`
	Sink      Sink      `yaml:"sink"`
	Aggregate Aggregate `yaml:"aggregate"`
	Logging   Logging   `yaml:"logging"`
}

// Source locates the wview high/low table to read.
type Source struct {
	SQLitePath string `yaml:"sqlite_path"`
	Table      string `yaml:"table"`
}

// Sink locates the weewx daily summary table to write.
type Sink struct {
	// Driver is one of "sqlite", "postgres", "parquet" or "log".
	Driver      string `yaml:"driver"`
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
	ParquetPath string `yaml:"parquet_path"`
	Table       string `yaml:"table"`
	// Replace deletes existing rows of Table in the same transaction before
	// inserting.
	Replace bool `yaml:"replace"`
}

// Aggregate tunes the daily fold.
type Aggregate struct {
	// Extrema is "seed" or "zero".
	Extrema          string `yaml:"extrema"`
	IncludeBootstrap bool   `yaml:"include_bootstrap"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Sink drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverParquet  = "parquet"
	DriverLog      = "log"
)

// Default returns the configuration used when no file is present: the stock
// wview and weewx install locations.
func Default() *Config {
	return &Config{
		Source: Source{
			SQLitePath: "/var/lib/wview/archive/wview-hilow.sdb",
			Table:      "solarRadiation",
		},
		Sink: Sink{
			Driver:     DriverSQLite,
			SQLitePath: "/var/lib/weewx/weewx.sdb",
			Table:      "archive_day_radiation",
		},
		Aggregate: Aggregate{
			Extrema: "seed",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads the YAML configuration file at the given path over the defaults
// and then applies environment variable overrides. If allowMissing is set a
// nonexistent file is not an error.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case allowMissing && errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WVIEW_HILOW_DB"); v != "" {
		cfg.Source.SQLitePath = v
	}

	if v := os.Getenv("WEEWX_DB"); v != "" {
		cfg.Sink.SQLitePath = v
	}

	if v := os.Getenv("WEEWX_POSTGRES_DSN"); v != "" {
		cfg.Sink.PostgresDSN = v
	}

	if v := os.Getenv("SOLARDAY_SINK_DRIVER"); v != "" {
		cfg.Sink.Driver = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate reports the first setting that cannot produce a working run.
func (c *Config) Validate() error {
	if c.Source.SQLitePath == "" {
		return fmt.Errorf("source sqlite_path cannot be empty")
	}
	if c.Source.Table == "" {
		return fmt.Errorf("source table cannot be empty")
	}

	switch c.Sink.Driver {
	case DriverSQLite:
		if c.Sink.SQLitePath == "" {
			return fmt.Errorf("sink sqlite_path cannot be empty for driver %q", c.Sink.Driver)
		}
	case DriverPostgres:
		if c.Sink.PostgresDSN == "" {
			return fmt.Errorf("sink postgres_dsn cannot be empty for driver %q", c.Sink.Driver)
		}
	case DriverParquet:
		if c.Sink.ParquetPath == "" {
			return fmt.Errorf("sink parquet_path cannot be empty for driver %q", c.Sink.Driver)
		}
	case DriverLog:
	default:
		return fmt.Errorf("unknown sink driver %q", c.Sink.Driver)
	}
	if c.Sink.Table == "" && (c.Sink.Driver == DriverSQLite || c.Sink.Driver == DriverPostgres) {
		return fmt.Errorf("sink table cannot be empty")
	}

	switch c.Aggregate.Extrema {
	case "", "seed", "zero":
	default:
		return fmt.Errorf("unknown aggregate extrema policy %q", c.Aggregate.Extrema)
	}

	return nil
}
