package duration

import (
	"testing"
	"time"
)

func date(y int, mo time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, mo, d, h, mi, s, 0, time.UTC)
}

func TestFloor(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		d    Duration
		want time.Time
	}{
		{"year", date(2007, time.June, 15, 13, 45, 30), Of(Year, 1), date(2007, time.January, 1, 0, 0, 0)},
		{"5 years", date(2007, time.June, 15, 0, 0, 0), Of(Year, 5), date(2005, time.January, 1, 0, 0, 0)},
		{"month snaps day to 1", date(2007, time.June, 15, 13, 0, 0), Of(Month, 1), date(2007, time.June, 1, 0, 0, 0)},
		{"quarter", date(2007, time.May, 20, 0, 0, 0), Of(Quarter, 1), date(2007, time.April, 1, 0, 0, 0)},
		{"6 hours", date(2007, time.June, 15, 13, 45, 30), Of(Hour, 6), date(2007, time.June, 15, 12, 0, 0)},
		{"30 minutes", date(2007, time.June, 15, 13, 45, 30), Of(Minute, 30), date(2007, time.June, 15, 13, 30, 0)},
		{"day", date(2007, time.June, 15, 23, 59, 59), Of(Day, 1), date(2007, time.June, 15, 0, 0, 0)},
		{"already floored", date(2008, time.January, 1, 0, 0, 0), Of(Year, 1), date(2008, time.January, 1, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Floor(tt.in, tt.d)
			if !got.Equal(tt.want) {
				t.Errorf("Floor(%v, %s) = %v, want %v", tt.in, tt.d, got, tt.want)
			}
		})
	}
}

func TestCeil_CarriesResidue(t *testing.T) {
	// One day plus one hour of residue must carry into the next day,
	// not silently truncate the hour away.
	in := date(2007, time.June, 2, 1, 0, 0)
	got := Ceil(in, Of(Day, 1))
	want := date(2007, time.June, 3, 0, 0, 0)
	if !got.Equal(want) {
		t.Errorf("Ceil(%v, day) = %v, want %v", in, got, want)
	}
}

func TestCeil_ExactBoundaryUnchanged(t *testing.T) {
	in := date(2010, time.January, 1, 0, 0, 0)
	got := Ceil(in, Of(Year, 1))
	if !got.Equal(in) {
		t.Errorf("Ceil(%v, year) = %v, want unchanged", in, got)
	}
}

func TestCeil_Month(t *testing.T) {
	in := date(2007, time.February, 2, 0, 0, 0)
	got := Ceil(in, Of(Month, 1))
	want := date(2007, time.March, 1, 0, 0, 0)
	if !got.Equal(want) {
		t.Errorf("Ceil(%v, month) = %v, want %v", in, got, want)
	}
}

func TestAdd_MonthStepping(t *testing.T) {
	// Month stepping from a month-start stays on month starts through
	// short months.
	start := date(2007, time.January, 1, 0, 0, 0)
	want := []time.Time{
		date(2007, time.February, 1, 0, 0, 0),
		date(2007, time.March, 1, 0, 0, 0),
		date(2007, time.April, 1, 0, 0, 0),
	}
	for i, w := range want {
		got := Add(start, Of(Month, 1), int64(i+1))
		if !got.Equal(w) {
			t.Errorf("Add(+%d months) = %v, want %v", i+1, got, w)
		}
	}
}

func TestAdd_NoDriftAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2021-03-28 is a DST transition in Berlin. Day stepping must keep
	// landing on local midnight, not drift by an hour.
	start := time.Date(2021, time.March, 27, 0, 0, 0, 0, loc)
	for k := int64(1); k <= 3; k++ {
		got := Add(start, Of(Day, 1), k)
		if got.Hour() != 0 {
			t.Errorf("Add(+%d days) = %v, want local midnight", k, got)
		}
	}
}

func TestAdd_Negative(t *testing.T) {
	start := date(2007, time.March, 1, 0, 0, 0)
	got := Add(start, Of(Month, 1), -1)
	want := date(2007, time.February, 1, 0, 0, 0)
	if !got.Equal(want) {
		t.Errorf("Add(-1 month) = %v, want %v", got, want)
	}
}

func TestFloorWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		// 2007-06-15 is a Friday; the preceding Monday is 2007-06-11.
		{date(2007, time.June, 15, 13, 0, 0), date(2007, time.June, 11, 0, 0, 0)},
		// A Monday floors to itself at midnight.
		{date(2007, time.June, 11, 5, 0, 0), date(2007, time.June, 11, 0, 0, 0)},
		// A Sunday floors back six days.
		{date(2007, time.June, 17, 0, 0, 0), date(2007, time.June, 11, 0, 0, 0)},
	}
	for _, tt := range tests {
		if got := FloorWeek(tt.in); !got.Equal(tt.want) {
			t.Errorf("FloorWeek(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloor_PanicsOnNonRoundUnit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Floor should panic on a non-round-unit duration")
		}
	}()
	var d Duration
	d[SlotDays] = 1
	d[SlotHours] = 1
	Floor(date(2007, time.June, 15, 0, 0, 0), d)
}
