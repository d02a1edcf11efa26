// Package aggregate folds an ordered series of high/low samples into one
// summary record per fixed-width, epoch-aligned day.
package aggregate

import (
	"fmt"

	"solarday/internal/domain"
)

// SecondsPerDay is the width of a day bucket. Buckets are aligned to the Unix
// epoch and are not timezone aware.
const SecondsPerDay int64 = 86400

// ExtremaPolicy controls what a freshly opened day compares its first
// sample's extrema against.
type ExtremaPolicy int

const (
	// SeedFromFirst takes min and max from the first sample folded into the
	// day.
	SeedFromFirst ExtremaPolicy = iota

	// ZeroBaseline resets min and max to 0 at the start of every day and
	// compares every sample against that, as the legacy weewx import did. For
	// non-negative data the day's min stays 0.
	ZeroBaseline
)

// String returns the config spelling of the policy.
func (p ExtremaPolicy) String() string {
	switch p {
	case SeedFromFirst:
		return "seed"
	case ZeroBaseline:
		return "zero"
	default:
		return fmt.Sprintf("ExtremaPolicy(%d)", int(p))
	}
}

// ParseExtremaPolicy maps a config value to a policy. The empty string
// selects SeedFromFirst.
func ParseExtremaPolicy(s string) (ExtremaPolicy, error) {
	switch s {
	case "", "seed":
		return SeedFromFirst, nil
	case "zero":
		return ZeroBaseline, nil
	default:
		return 0, fmt.Errorf("unknown extrema policy %q (want \"seed\" or \"zero\")", s)
	}
}

// Options tunes Daily. The zero value is the default behaviour.
type Options struct {
	Extrema ExtremaPolicy

	// IncludeBootstrap folds the first sample of the series into its day
	// with a zero interval instead of only using it to anchor the next
	// sample's interval.
	IncludeBootstrap bool
}

// DayBoundary returns the start of the epoch-aligned day containing ts,
// i.e. floor(ts/86400)*86400.
func DayBoundary(ts int64) int64 {
	d := ts / SecondsPerDay
	if ts%SecondsPerDay < 0 {
		d--
	}
	return d * SecondsPerDay
}

// Daily folds samples, which must be sorted ascending by timestamp, into one
// record per distinct day boundary, in ascending day order.
//
// The first sample of the series only anchors the interval of the sample
// after it: it contributes nothing to count, sum or wsum unless
// opts.IncludeBootstrap is set. Its day is still emitted. Each sample adds
// cumulative*(ts-prevTs)/sampleCount to its day's wsum. A day closed by a
// later day gets sumtime = nextDay - day; the last day gets
// sumtime = lastTs - day.
//
// Daily does not modify samples. It returns a *domain.PreconditionError if
// samples is empty, unsorted, or has a sample count below 1.
func Daily(samples []domain.Sample, opts Options) ([]domain.DayRecord, error) {
	if err := Validate(samples); err != nil {
		return nil, err
	}

	var (
		records []domain.DayRecord
		cur     *dayBucket
		prevTs  int64
	)
	for i, s := range samples {
		day := DayBoundary(s.Timestamp)
		if cur == nil || day != cur.dayStart {
			if i == 0 {
				prevTs = s.Timestamp
				cur = newDayBucket(day)
				if !opts.IncludeBootstrap {
					continue
				}
			} else {
				records = append(records, cur.close(day-cur.dayStart))
				cur = newDayBucket(day)
			}
		}

		cur.add(s, prevTs, opts.Extrema)
		prevTs = s.Timestamp
	}

	var span int64
	if cur.observed {
		span = prevTs - cur.dayStart
	}
	records = append(records, cur.close(span))

	return records, nil
}

// Validate checks the preconditions Daily relies on.
func Validate(samples []domain.Sample) error {
	if len(samples) == 0 {
		return &domain.PreconditionError{Index: -1, Reason: "no samples"}
	}
	for i, s := range samples {
		if s.SampleCount < 1 {
			return &domain.PreconditionError{
				Index:  i,
				Reason: fmt.Sprintf("sample count %d at timestamp %d, want >= 1", s.SampleCount, s.Timestamp),
			}
		}
		if i > 0 && s.Timestamp < samples[i-1].Timestamp {
			return &domain.PreconditionError{
				Index:  i,
				Reason: fmt.Sprintf("timestamp %d before previous %d", s.Timestamp, samples[i-1].Timestamp),
			}
		}
	}
	return nil
}
