package duration

import (
	"testing"
)

func TestDefaultTable_RoundUnitInvariant(t *testing.T) {
	table := DefaultTable()
	if len(table) == 0 {
		t.Fatal("DefaultTable() is empty")
	}
	prev := -1.0
	for i, d := range table {
		if !d.IsRoundUnit() {
			t.Errorf("table[%d] = %s is not a round unit", i, d)
		}
		if ms := d.ApproxMillis(); ms <= prev {
			t.Errorf("table[%d] = %s is not strictly ascending", i, d)
		} else {
			prev = ms
		}
	}
}

func TestRoundMillis_NearestEntry(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		name string
		ms   float64
		want Duration
	}{
		{"exact entry", float64(msPerMinute), Of(Minute, 1)},
		{"just above entry", float64(msPerMinute) * 1.01, Of(Minute, 1)},
		{"7 min closer to 5 than 10 in log space", 7 * float64(msPerMinute), Of(Minute, 5)},
		{"8 min rounds up to 10", 8 * float64(msPerMinute), Of(Minute, 10)},
		{"90 sec", 90 * float64(msPerSecond), Of(Minute, 1)},
		{"below table floor", 0.3, Of(Millisecond, 1)},
		{"40 days", 40 * float64(msPerDay), Of(Month, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundMillis(tt.ms, table, 0)
			if got != tt.want {
				t.Errorf("RoundMillis(%v) = %s, want %s", tt.ms, got, tt.want)
			}
		})
	}
}

func TestRoundMillis_GeometricExtrapolation(t *testing.T) {
	// The default tail is [10y, 50y, 100y]; its block period is
	// 100/10 * 50/10 = 50, so the extension runs 500y, 2500y, 5000y, ...
	table := DefaultTable()
	tests := []struct {
		name  string
		years float64
		want  int64 // expected year count
	}{
		{"600y rounds to 500y", 600, 500},
		{"2000y rounds to 2500y", 2000, 2500},
		{"4900y rounds to 5000y", 4900, 5000},
		{"130y still rounds to table end", 130, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundMillis(tt.years*float64(msPerYear), table, DefaultRepeat)
			want := Of(Year, tt.want)
			if got != want {
				t.Errorf("RoundMillis(%vy) = %s, want %s", tt.years, got, want)
			}
		})
	}
}

func TestRoundMillis_NoRepeatClampsToTableEnd(t *testing.T) {
	got := RoundMillis(600*float64(msPerYear), DefaultTable(), 0)
	if got != Of(Year, 100) {
		t.Errorf("RoundMillis without repeat = %s, want %s", got, Of(Year, 100))
	}
}

func TestRoundMillis_PanicsOnEmptyTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RoundMillis should panic on an empty table")
		}
	}()
	RoundMillis(1000, nil, 0)
}
