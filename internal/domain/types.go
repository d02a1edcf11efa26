// Package domain defines the core data types shared across solarday: raw
// high/low samples read from the wview archive and the daily summary records
// written to the weewx archive.
package domain

// ---------------------------------------------------------------------------
// Input
// ---------------------------------------------------------------------------

// Sample is one row of a wview high/low table. All timestamps are Unix
// seconds.
type Sample struct {
	Timestamp   int64
	MinValue    float64
	MinTime     int64
	MaxValue    float64
	MaxTime     int64
	Cumulative  float64
	SampleCount int64 // device readings folded into this row, >= 1
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

// DayRecord is one row of a weewx daily summary table (archive_day_*).
// Field names follow the weewx column names.
type DayRecord struct {
	DateTime int64 // start of the day, Unix seconds
	Min      float64
	MinTime  int64
	Max      float64
	MaxTime  int64
	Sum      float64
	Count    int64
	WSum     float64 // time-weighted sum
	SumTime  int64   // seconds covered by the day's samples
}
