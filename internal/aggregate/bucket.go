package aggregate

import "solarday/internal/domain"

// dayBucket accumulates the samples of one day. It is owned by the fold loop
// until close hands its values off as an immutable record.
type dayBucket struct {
	dayStart    int64
	min         float64
	minTime     int64
	max         float64
	maxTime     int64
	count       int64
	sum         float64
	weightedSum float64

	// observed is set once a sample has been folded in.
	observed bool
}

func newDayBucket(dayStart int64) *dayBucket {
	return &dayBucket{dayStart: dayStart}
}

// add folds s into the bucket. prevTs is the timestamp of the sample before
// s in the whole series.
func (b *dayBucket) add(s domain.Sample, prevTs int64, policy ExtremaPolicy) {
	if !b.observed && policy == SeedFromFirst {
		b.min, b.minTime = s.MinValue, s.MinTime
		b.max, b.maxTime = s.MaxValue, s.MaxTime
	} else {
		if s.MinValue <= b.min {
			b.min, b.minTime = s.MinValue, s.MinTime
		}
		if s.MaxValue >= b.max {
			b.max, b.maxTime = s.MaxValue, s.MaxTime
		}
	}

	interval := float64(s.Timestamp-prevTs) / float64(s.SampleCount)
	b.sum += s.Cumulative
	b.weightedSum += s.Cumulative * interval
	b.count += s.SampleCount
	b.observed = true
}

func (b *dayBucket) close(spanSeconds int64) domain.DayRecord {
	return domain.DayRecord{
		DateTime: b.dayStart,
		Min:      b.min,
		MinTime:  b.minTime,
		Max:      b.max,
		MaxTime:  b.maxTime,
		Sum:      b.sum,
		Count:    b.count,
		WSum:     b.weightedSum,
		SumTime:  spanSeconds,
	}
}
