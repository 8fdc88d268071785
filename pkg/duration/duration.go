package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/timegrid/timegrid/pkg/errors"
)

// Slot indices into the Duration vector, finest first.
const (
	SlotMillis = iota
	SlotSeconds
	SlotMinutes
	SlotHours
	SlotDays
	SlotMonths
	SlotYears

	slotCount
)

// Millisecond counts used for approximate magnitude comparison. Months
// and years use the conventional 30/365-day approximations; exact
// calendar lengths only matter for stepping, never for comparing spans.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerMonth  = 30 * msPerDay
	msPerYear   = 365 * msPerDay
)

var slotMillis = [slotCount]float64{
	SlotMillis:  1,
	SlotSeconds: msPerSecond,
	SlotMinutes: msPerMinute,
	SlotHours:   msPerHour,
	SlotDays:    msPerDay,
	SlotMonths:  msPerMonth,
	SlotYears:   msPerYear,
}

// Duration is an ordered 7-slot magnitude vector:
// [milliseconds, seconds, minutes, hours, days, months, years].
//
// The arithmetic layer does not partially validate vectors; operations
// documented as requiring a round unit (exactly one non-zero slot) treat
// a violation as a caller bug.
type Duration [slotCount]int64

// IsZero reports whether every slot is zero.
func (d Duration) IsZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsRoundUnit reports whether exactly one slot is non-zero.
func (d Duration) IsRoundUnit() bool {
	nonZero := 0
	for _, v := range d {
		if v != 0 {
			nonZero++
		}
	}
	return nonZero == 1
}

// RoundSlot returns the slot index and magnitude of a round unit.
// ok is false when d is not a round unit.
func (d Duration) RoundSlot() (slot int, n int64, ok bool) {
	slot = -1
	for i, v := range d {
		if v == 0 {
			continue
		}
		if slot >= 0 {
			return 0, 0, false
		}
		slot, n = i, v
	}
	if slot < 0 {
		return 0, 0, false
	}
	return slot, n, true
}

// Scale returns d with every slot multiplied by k.
func (d Duration) Scale(k int64) Duration {
	var out Duration
	for i, v := range d {
		out[i] = v * k
	}
	return out
}

// ApproxMillis returns the approximate span of d in milliseconds, using
// 30-day months and 365-day years. Suitable for ordering and log-space
// comparison, not for calendar stepping.
func (d Duration) ApproxMillis() float64 {
	var ms float64
	for i, v := range d {
		ms += float64(v) * slotMillis[i]
	}
	return ms
}

// String renders d in an ISO-8601-style form, e.g. "P2M", "PT6H",
// "P1Y2M3DT4H5M6.007S". The zero duration renders as "PT0S".
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteByte('P')
	if v := d[SlotYears]; v != 0 {
		fmt.Fprintf(&b, "%dY", v)
	}
	if v := d[SlotMonths]; v != 0 {
		fmt.Fprintf(&b, "%dM", v)
	}
	if v := d[SlotDays]; v != 0 {
		fmt.Fprintf(&b, "%dD", v)
	}
	if d[SlotHours] != 0 || d[SlotMinutes] != 0 || d[SlotSeconds] != 0 || d[SlotMillis] != 0 {
		b.WriteByte('T')
		if v := d[SlotHours]; v != 0 {
			fmt.Fprintf(&b, "%dH", v)
		}
		if v := d[SlotMinutes]; v != 0 {
			fmt.Fprintf(&b, "%dM", v)
		}
		sec, ms := d[SlotSeconds], d[SlotMillis]
		if sec != 0 || ms != 0 {
			if ms != 0 {
				fmt.Fprintf(&b, "%d.%03dS", sec, ms)
			} else {
				fmt.Fprintf(&b, "%dS", sec)
			}
		}
	}
	return b.String()
}

var isoPattern = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:\.(\d{1,3}))?S)?)?$`)

// Parse converts an ISO-8601-style duration string produced by
// [Duration.String] back into a vector. Week designators and negative
// components are not supported.
func Parse(s string) (Duration, error) {
	var d Duration
	m := isoPattern.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return d, errors.New(errors.ErrCodeInvalidDuration, "parse duration %q: malformed ISO duration", s)
	}
	slots := []int{SlotYears, SlotMonths, SlotDays, SlotHours, SlotMinutes, SlotSeconds}
	for i, slot := range slots {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return Duration{}, errors.Wrap(errors.ErrCodeInvalidDuration, err, "parse duration %q", s)
		}
		d[slot] = v
	}
	if m[7] != "" {
		// Fractional seconds carry into the millisecond slot,
		// right-padded to three digits ("5" means 500ms).
		frac := m[7] + strings.Repeat("0", 3-len(m[7]))
		v, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Duration{}, errors.Wrap(errors.ErrCodeInvalidDuration, err, "parse duration %q", s)
		}
		d[SlotMillis] = v
	}
	return d, nil
}
