package duration

// Unit identifies a calendar granularity. The declaration order defines
// the "finer than" relation: a unit with a smaller value is finer.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

var unitNames = [...]string{
	Millisecond: "ms",
	Second:      "sec",
	Minute:      "min",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Quarter:     "quarter",
	Year:        "year",
}

// String returns the canonical short name of the unit ("ms", "sec", ...).
func (u Unit) String() string {
	if u < Millisecond || u > Year {
		return "unknown"
	}
	return unitNames[u]
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool { return u >= Millisecond && u <= Year }

// Finer returns the next finer unit and true, or u and false when u is
// already the finest unit.
func (u Unit) Finer() (Unit, bool) {
	if u <= Millisecond {
		return u, false
	}
	return u - 1, true
}

// Coarser returns the next coarser unit and true, or u and false when u
// is already the coarsest unit.
func (u Unit) Coarser() (Unit, bool) {
	if u >= Year {
		return u, false
	}
	return u + 1, true
}

// ParseUnit converts a unit name produced by [Unit.String] back into a
// Unit. It returns false for unrecognized names.
func ParseUnit(s string) (Unit, bool) {
	for u, name := range unitNames {
		if s == name {
			return Unit(u), true
		}
	}
	return 0, false
}

// Of builds the duration vector for n of the given unit. Week and
// Quarter are expressed through the day and month slots (7 days,
// 3 months), so Of always yields a round unit for n != 0.
func Of(u Unit, n int64) Duration {
	var d Duration
	switch u {
	case Millisecond:
		d[SlotMillis] = n
	case Second:
		d[SlotSeconds] = n
	case Minute:
		d[SlotMinutes] = n
	case Hour:
		d[SlotHours] = n
	case Day:
		d[SlotDays] = n
	case Week:
		d[SlotDays] = 7 * n
	case Month:
		d[SlotMonths] = n
	case Quarter:
		d[SlotMonths] = 3 * n
	case Year:
		d[SlotYears] = n
	}
	return d
}
