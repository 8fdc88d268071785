package duration

import "testing"

func TestDuration_IsRoundUnit(t *testing.T) {
	if (Duration{}).IsRoundUnit() {
		t.Error("zero duration should not be a round unit")
	}
	if !Of(Month, 1).IsRoundUnit() {
		t.Error("1 month should be a round unit")
	}
	if !Of(Week, 2).IsRoundUnit() {
		t.Error("2 weeks (14 days) should be a round unit")
	}
	var mixed Duration
	mixed[SlotDays] = 1
	mixed[SlotHours] = 1
	if mixed.IsRoundUnit() {
		t.Error("1 day 1 hour should not be a round unit")
	}
}

func TestDuration_RoundSlot(t *testing.T) {
	slot, n, ok := Of(Hour, 6).RoundSlot()
	if !ok || slot != SlotHours || n != 6 {
		t.Errorf("RoundSlot() = (%d, %d, %v), want (%d, 6, true)", slot, n, ok, SlotHours)
	}
	if _, _, ok := (Duration{}).RoundSlot(); ok {
		t.Error("RoundSlot() on zero duration should report !ok")
	}
}

func TestDuration_Scale(t *testing.T) {
	d := Of(Month, 1).Scale(3)
	if d != Of(Quarter, 1) {
		t.Errorf("1 month x3 = %s, want %s", d, Of(Quarter, 1))
	}
	if d.IsRoundUnit() != true {
		t.Error("scaled round unit should stay a round unit")
	}
}

func TestDuration_StringAndParse(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{Of(Year, 1), "P1Y"},
		{Of(Quarter, 1), "P3M"},
		{Of(Week, 1), "P7D"},
		{Of(Hour, 6), "PT6H"},
		{Of(Millisecond, 500), "PT0.500S"},
		{Duration{}, "PT0S"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.d, got, tt.want)
		}
		parsed, err := Parse(tt.want)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.want, err)
			continue
		}
		if parsed != tt.d {
			t.Errorf("Parse(%q) = %v, want %v", tt.want, parsed, tt.d)
		}
	}
}

func TestParse_Mixed(t *testing.T) {
	d, err := Parse("P1Y2M3DT4H5M6.007S")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Duration{7, 6, 5, 4, 3, 2, 1}
	if d != want {
		t.Errorf("Parse() = %v, want %v", d, want)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "P", "PT", "1Y", "P1H", "PT1D"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestUnit_Ordering(t *testing.T) {
	if f, ok := Year.Finer(); !ok || f != Quarter {
		t.Errorf("Year.Finer() = %v, %v; want Quarter, true", f, ok)
	}
	if _, ok := Millisecond.Finer(); ok {
		t.Error("Millisecond.Finer() should report !ok")
	}
	if c, ok := Day.Coarser(); !ok || c != Week {
		t.Errorf("Day.Coarser() = %v, %v; want Week, true", c, ok)
	}
	if _, ok := Year.Coarser(); ok {
		t.Error("Year.Coarser() should report !ok")
	}
}

func TestParseUnit_RoundTrip(t *testing.T) {
	for u := Millisecond; u <= Year; u++ {
		got, ok := ParseUnit(u.String())
		if !ok || got != u {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v, true", u.String(), got, ok, u)
		}
	}
	if _, ok := ParseUnit("fortnight"); ok {
		t.Error("ParseUnit should reject unknown names")
	}
}
