package duration

import (
	"math"

	"github.com/timegrid/timegrid/pkg/errors"
)

// DefaultTable returns the default round-duration table, ascending from
// 1 millisecond to 100 years. Every entry is a round unit. The last
// [DefaultRepeat] entries repeat geometrically beyond the table's end,
// so spans coarser than a century round against 500y, 2500y, 5000y, ...
func DefaultTable() []Duration {
	return []Duration{
		Of(Millisecond, 1), Of(Millisecond, 5), Of(Millisecond, 10),
		Of(Millisecond, 50), Of(Millisecond, 100), Of(Millisecond, 500),
		Of(Second, 1), Of(Second, 5), Of(Second, 10), Of(Second, 30),
		Of(Minute, 1), Of(Minute, 5), Of(Minute, 10), Of(Minute, 30),
		Of(Hour, 1), Of(Hour, 3), Of(Hour, 6), Of(Hour, 12),
		Of(Day, 1), Of(Day, 2), Of(Week, 1),
		Of(Month, 1), Of(Month, 2), Of(Quarter, 1), Of(Month, 6),
		Of(Year, 1), Of(Year, 2), Of(Year, 5),
		Of(Year, 10), Of(Year, 50), Of(Year, 100),
	}
}

// DefaultRepeat is the repeat count paired with [DefaultTable]: the last
// three entries (10y, 50y, 100y) extend as an infinite geometric
// sequence.
const DefaultRepeat = 3

// RoundMillis maps a raw millisecond span to the closest entry of the
// sorted round-duration table. Closeness is measured in log space, so it
// is multiplicative: 7 minutes is closer to 5 minutes than to 10.
//
// When repeat > 0 and ms exceeds the table's largest entry, the last
// repeat entries are treated as an infinitely repeating geometric
// sequence. A tail of [1, 2, 5] repeats by powers of ten (10, 20, 50,
// 100, ...); the nearest simulated entry is synthesized by exponentiating
// back out of log space and re-rounding against the table's coarsest
// unit.
//
// RoundMillis panics with an INVALID_DURATION error for an empty table,
// a table entry that is not a round unit, or a non-positive span; all
// are caller bugs.
func RoundMillis(ms float64, table []Duration, repeat int) Duration {
	if len(table) == 0 {
		panic(errors.New(errors.ErrCodeInvalidDuration, "round-duration table is empty"))
	}
	if ms <= 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		panic(errors.New(errors.ErrCodeInvalidDuration, "cannot round non-positive span %v ms", ms))
	}
	approx := make([]float64, len(table))
	for i, d := range table {
		if !d.IsRoundUnit() {
			panic(errors.New(errors.ErrCodeInvalidUnit, "table entry %s is not a round unit", d))
		}
		approx[i] = d.ApproxMillis()
	}

	last := len(table) - 1
	if repeat > 0 && ms > approx[last] {
		return extrapolate(ms, table, approx, repeat)
	}

	logMS := math.Log(ms)
	best, bestDist := 0, math.Inf(1)
	for i, a := range approx {
		if dist := math.Abs(logMS - math.Log(a)); dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return table[best]
}

// extrapolate synthesizes the nearest entry of the infinite geometric
// extension of the table's tail. The tail's block period is the ratio
// that maps the tail onto its next repetition: span of the tail times
// the tail's first internal ratio (tail [1,2,5] -> period 10).
func extrapolate(ms float64, table []Duration, approx []float64, repeat int) Duration {
	n := len(table)
	if repeat > n {
		repeat = n
	}
	tail := approx[n-repeat:]

	var period float64
	if repeat >= 2 {
		period = tail[repeat-1] / tail[0] * (tail[1] / tail[0])
	} else if n >= 2 {
		period = approx[n-1] / approx[n-2]
	} else {
		period = 10
	}

	logMS := math.Log(ms)
	bestVal, bestDist := approx[n-1], math.Abs(logMS-math.Log(approx[n-1]))
	for _, base := range tail {
		// Candidate exponents bracketing ms for this tail entry.
		p := math.Floor((logMS - math.Log(base)) / math.Log(period))
		for _, q := range []float64{p, p + 1} {
			if q < 1 {
				continue
			}
			v := base * math.Pow(period, q)
			if dist := math.Abs(logMS - math.Log(v)); dist < bestDist {
				bestVal, bestDist = v, dist
			}
		}
	}

	// Re-round the simulated value against the table's coarsest unit.
	slot, _, _ := table[n-1].RoundSlot()
	count := math.Round(bestVal / slotMillis[slot])
	if count < 1 {
		count = 1
	}
	var out Duration
	out[slot] = int64(count)
	return out
}
