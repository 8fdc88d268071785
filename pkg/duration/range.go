package duration

import (
	"time"

	"github.com/timegrid/timegrid/pkg/errors"
)

// Range enumerates the ascending sequence of calendar dates
//
//	start, start + k·unit, start + 2k·unit, ...
//
// for dates strictly before end. Every emitted date is recomputed from
// the original start and the current step count, never by repeatedly
// adding a constant offset, so a run across a DST transition or into a
// shorter month still lands on the calendar-correct date.
//
// A Range is restartable via [Range.Reset] and supports one-step
// lookahead via [Range.Peek]. It is not safe for concurrent use.
type Range struct {
	origin   time.Time
	end      time.Time
	unit     Duration
	multiple int64
	i        int64
}

// NewRange creates an enumerator from start (inclusive) to end
// (exclusive) stepping by multiple copies of the round unit.
func NewRange(start, end time.Time, unit Duration, multiple int64) (*Range, error) {
	if !unit.IsRoundUnit() {
		return nil, errors.New(errors.ErrCodeInvalidUnit, "range step %s is not a round unit", unit)
	}
	if multiple < 1 {
		return nil, errors.New(errors.ErrCodeInvalidRange, "range multiple must be >= 1, got %d", multiple)
	}
	return &Range{origin: start, end: end, unit: unit, multiple: multiple}, nil
}

// Next returns the next date in the sequence, advancing the enumerator.
// ok is false once the sequence is exhausted.
func (r *Range) Next() (t time.Time, ok bool) {
	t, ok = r.at(r.i)
	if ok {
		r.i++
	}
	return t, ok
}

// Peek returns the date Next would return, without advancing.
func (r *Range) Peek() (time.Time, bool) {
	return r.at(r.i)
}

// Reset restarts the enumerator at its original start date.
func (r *Range) Reset() { r.i = 0 }

func (r *Range) at(i int64) (time.Time, bool) {
	t := Add(r.origin, r.unit, i*r.multiple)
	if !t.Before(r.end) {
		return time.Time{}, false
	}
	return t, true
}
