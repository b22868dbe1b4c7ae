package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedStationTable matches any MalformedStationTableError via errors.Is.
	ErrMalformedStationTable = errors.New("malformed station table")
	// ErrStationNotFound matches any StationNotFoundError via errors.Is.
	ErrStationNotFound = errors.New("station not found")
	// ErrMalformedArrival matches any MalformedArrivalError via errors.Is.
	ErrMalformedArrival = errors.New("malformed arrival")
)

// MalformedStationTableError reports a station table line that could not be parsed.
type MalformedStationTableError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *MalformedStationTableError) Error() string {
	msg := fmt.Sprintf("station table line %d %q: %s", e.Line, e.Text, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedStationTableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedStationTable}
	}
	return []error{ErrMalformedStationTable, e.Err}
}

// StationNotFoundError reports a shot file whose station code has no table entry.
type StationNotFoundError struct {
	Code string
}

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("station %q not found in station table", e.Code)
}

func (e *StationNotFoundError) Unwrap() error {
	return ErrStationNotFound
}

// MalformedArrivalError reports a shot file line with a missing or non-numeric column.
type MalformedArrivalError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *MalformedArrivalError) Error() string {
	msg := fmt.Sprintf("arrival line %d %q: %s", e.Line, e.Text, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedArrivalError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedArrival}
	}
	return []error{ErrMalformedArrival, e.Err}
}
