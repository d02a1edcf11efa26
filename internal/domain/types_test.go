package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestTypesExist(t *testing.T) {
	// Verify Sample can be instantiated with zero values.
	s := Sample{}
	if s.Timestamp != 0 || s.MinTime != 0 || s.MaxTime != 0 {
		t.Error("expected zero timestamps for zero-value Sample")
	}
	if s.MinValue != 0 || s.MaxValue != 0 || s.Cumulative != 0 || s.SampleCount != 0 {
		t.Error("expected zero values for zero-value Sample")
	}

	// Verify DayRecord can be instantiated with zero values.
	r := DayRecord{}
	if r.DateTime != 0 || r.MinTime != 0 || r.MaxTime != 0 || r.SumTime != 0 {
		t.Error("expected zero timestamps for zero-value DayRecord")
	}
	if r.Min != 0 || r.Max != 0 || r.Sum != 0 || r.WSum != 0 || r.Count != 0 {
		t.Error("expected zero accumulators for zero-value DayRecord")
	}
}

func TestErrorClassification(t *testing.T) {
	cause := io.ErrUnexpectedEOF

	tests := []struct {
		name     string
		err      error
		sentinel error
		unwraps  bool
	}{
		{"source", &DataSourceError{Op: "query", Err: cause}, ErrDataSource, true},
		{"sink", &DataSinkError{Op: "insert", Err: cause}, ErrDataSink, true},
		{"precondition", &PreconditionError{Index: 3, Reason: "sample count 0"}, ErrPrecondition, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("run: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			if got := errors.Is(wrapped, cause); got != tt.unwraps {
				t.Errorf("errors.Is(%v, cause) = %v, want %v", wrapped, got, tt.unwraps)
			}
		})
	}

	if errors.Is(&DataSourceError{Op: "query", Err: cause}, ErrDataSink) {
		t.Error("DataSourceError should not match ErrDataSink")
	}
}

func TestPreconditionErrorMessage(t *testing.T) {
	whole := &PreconditionError{Index: -1, Reason: "no samples"}
	if got, want := whole.Error(), "precondition violation: no samples"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	at := &PreconditionError{Index: 2, Reason: "timestamp 10 before 20"}
	if got, want := at.Error(), "precondition violation at sample 2: timestamp 10 before 20"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
