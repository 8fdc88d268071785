package duration

import (
	"time"

	"github.com/timegrid/timegrid/pkg/errors"
)

// Floor rounds t down to the nearest multiple of the round unit d,
// honoring calendar semantics: flooring to 1 month snaps the day of
// month to 1, flooring to 6 hours snaps to 00:00/06:00/12:00/18:00, and
// so on. All slots finer than the unit's slot are zeroed.
//
// Floor panics with an INVALID_UNIT error when d is not a round unit;
// per the engine contract that is a caller bug, not a runtime condition.
func Floor(t time.Time, d Duration) time.Time {
	slot, n, ok := d.RoundSlot()
	if !ok {
		panic(errors.New(errors.ErrCodeInvalidUnit, "duration %s is not a round unit", d))
	}
	loc := t.Location()
	y, mo, day := t.Date()
	h, mi, s := t.Clock()
	ms := int64(t.Nanosecond()) / int64(time.Millisecond)

	switch slot {
	case SlotYears:
		return time.Date(int(floorMul(int64(y), n)), time.January, 1, 0, 0, 0, 0, loc)
	case SlotMonths:
		m := floorMul(int64(mo-1), n)
		return time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, loc)
	case SlotDays:
		dd := floorMul(int64(day-1), n) + 1
		return time.Date(y, mo, int(dd), 0, 0, 0, 0, loc)
	case SlotHours:
		return time.Date(y, mo, day, int(floorMul(int64(h), n)), 0, 0, 0, loc)
	case SlotMinutes:
		return time.Date(y, mo, day, h, int(floorMul(int64(mi), n)), 0, 0, loc)
	case SlotSeconds:
		return time.Date(y, mo, day, h, mi, int(floorMul(int64(s), n)), 0, loc)
	default: // SlotMillis
		f := floorMul(ms, n)
		return time.Date(y, mo, day, h, mi, s, int(f)*int(time.Millisecond), loc)
	}
}

// Ceil rounds t up to the nearest multiple of the round unit d. Any
// residue in slots finer than the unit carries upward: ceiling a date
// with one day and one hour of residue to whole days lands on the next
// day rather than truncating the hour away.
//
// Like Floor, Ceil panics when d is not a round unit.
func Ceil(t time.Time, d Duration) time.Time {
	f := Floor(t, d)
	if f.Before(t) {
		return Add(f, d, 1)
	}
	return f
}

// Add returns t advanced by k whole copies of d using calendar-correct
// stepping: month and year slots step through time.Date normalization,
// so a run across a DST transition or into a shorter month still lands
// on the calendar-correct instant. k may be negative.
func Add(t time.Time, d Duration, k int64) time.Time {
	if k == 0 || d.IsZero() {
		return t
	}
	loc := t.Location()
	y, mo, day := t.Date()
	h, mi, s := t.Clock()
	ms := int64(t.Nanosecond()) / int64(time.Millisecond)

	y64 := int64(y) + k*d[SlotYears]
	mo64 := int64(mo) + k*d[SlotMonths]
	day64 := int64(day) + k*d[SlotDays]
	h64 := int64(h) + k*d[SlotHours]
	mi64 := int64(mi) + k*d[SlotMinutes]
	s64 := int64(s) + k*d[SlotSeconds]
	ms64 := ms + k*d[SlotMillis]

	return time.Date(int(y64), time.Month(mo64), int(day64),
		int(h64), int(mi64), int(s64), int(ms64)*int(time.Millisecond), loc)
}

// FloorWeek rounds t down to the preceding Monday at midnight. The
// gridline search applies this on top of the day-unit floor so that
// day-spaced gridlines align to ISO week starts.
func FloorWeek(t time.Time) time.Time {
	y, mo, day := t.Date()
	midnight := time.Date(y, mo, day, 0, 0, 0, 0, t.Location())
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	back := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -back)
}

// floorMul rounds v down to a multiple of n (n >= 1).
func floorMul(v, n int64) int64 {
	if n <= 1 {
		return v
	}
	if v >= 0 {
		return v - v%n
	}
	m := v % n
	if m == 0 {
		return v
	}
	return v - m - n
}
