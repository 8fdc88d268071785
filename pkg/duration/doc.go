// Package duration implements calendar duration arithmetic for time-axis
// layout.
//
// A [Duration] is a 7-slot magnitude vector (milliseconds, seconds,
// minutes, hours, days, months, years). A duration with exactly one
// non-zero slot is a "round unit" (1 month, 6 hours, ...); multiplying a
// round unit by an integer yields a gridline spacing, not a new unit.
//
// The package provides:
//
//   - [Floor], [Ceil] and [Add]: calendar-correct rounding and stepping
//     (a 1-month floor snaps the day-of-month to 1 rather than to a fixed
//     30-day boundary; stepping across DST transitions or into shorter
//     months lands on the calendar-correct date)
//   - [RoundMillis]: nearest-entry search over a sorted round-duration
//     table, compared in log space, with optional geometric extrapolation
//     beyond the table's end
//   - [Range]: a restartable ascending enumerator of dates spaced by an
//     integer multiple of one round unit
//
// Durations round-trip through an ISO-8601-style string form
// ("P2M", "PT6H", "P1YT0.500S") via [Duration.String] and [Parse].
package duration
