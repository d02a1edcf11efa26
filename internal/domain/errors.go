package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these to classify a failure
// regardless of which layer wrapped it.
var (
	ErrDataSource   = errors.New("data source error")
	ErrDataSink     = errors.New("data sink error")
	ErrPrecondition = errors.New("precondition violation")
)

// DataSourceError reports a failure reading from the source store.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func (e *DataSourceError) Is(target error) bool { return target == ErrDataSource }

// DataSinkError reports a failure writing to the destination store.
type DataSinkError struct {
	Op  string
	Err error
}

func (e *DataSinkError) Error() string {
	return fmt.Sprintf("sink: %s: %v", e.Op, e.Err)
}

func (e *DataSinkError) Unwrap() error { return e.Err }

func (e *DataSinkError) Is(target error) bool { return target == ErrDataSink }

// PreconditionError reports input the aggregator refuses to fold: an empty
// series, a non-positive sample count, or out-of-order timestamps. Index is
// the offending sample position, or -1 when the error concerns the whole
// series.
type PreconditionError struct {
	Index  int
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("precondition violation: %s", e.Reason)
	}
	return fmt.Sprintf("precondition violation at sample %d: %s", e.Index, e.Reason)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }
