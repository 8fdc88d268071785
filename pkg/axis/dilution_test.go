package axis

import (
	"math"
	"testing"

	"github.com/timegrid/timegrid/pkg/measure"
)

func makeLabels(widths []float64, interval float64) []Label {
	labels := make([]Label, len(widths))
	for i, w := range widths {
		labels[i] = Label{
			Coord: float64(i) * interval,
			Text:  "x",
			Size:  measure.Size{W: w, H: 13},
		}
	}
	return labels
}

func widths(n int, w float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = w
	}
	return out
}

func TestDiluteNoTruncationKeepsEverything(t *testing.T) {
	labels := makeLabels(widths(5, 20), 40)
	res := Dilute(labels, DilutionConfig{Interval: 40, Padding: 4, MaxAlternation: 2})

	if res.AltCount != 1 || res.Skip != 1 {
		t.Errorf("alt/skip = %d/%d, want 1/1", res.AltCount, res.Skip)
	}
	if res.Visible != 5 || res.Truncated != 0 || !res.Feasible {
		t.Errorf("visible=%d truncated=%d feasible=%v, want 5/0/true",
			res.Visible, res.Truncated, res.Feasible)
	}
}

func TestDiluteAlternationBeforeSkip(t *testing.T) {
	// Width 50 does not fit in 30px but fits in the doubled room of a
	// second alternation row.
	labels := makeLabels(widths(5, 50), 30)
	res := Dilute(labels, DilutionConfig{Interval: 30, Padding: 4, MaxAlternation: 2})

	if res.AltCount != 2 || res.Skip != 1 {
		t.Fatalf("alt/skip = %d/%d, want 2/1", res.AltCount, res.Skip)
	}
	if !res.Feasible || res.Visible != 5 {
		t.Errorf("feasible=%v visible=%d, want true/5", res.Feasible, res.Visible)
	}
	for i, x := range res.Texts {
		wantRow := i % 2
		if x.Block.Row != wantRow {
			t.Errorf("text %d row = %d, want %d", i, x.Block.Row, wantRow)
		}
		if got, want := x.Optional, wantRow > 0; got != want {
			t.Errorf("text %d optional = %v, want %v", i, got, want)
		}
	}
}

func TestDiluteSkipWhenAlternationExhausted(t *testing.T) {
	labels := makeLabels(widths(5, 50), 30)
	res := Dilute(labels, DilutionConfig{Interval: 30, Padding: 4, MaxAlternation: 1})

	if res.AltCount != 1 || res.Skip != 2 {
		t.Fatalf("alt/skip = %d/%d, want 1/2", res.AltCount, res.Skip)
	}
	if res.Visible != 3 || !res.Feasible {
		t.Errorf("visible=%d feasible=%v, want 3/true", res.Visible, res.Feasible)
	}
	wantCoords := []float64{0, 60, 120}
	for i, x := range res.Texts {
		if x.Coord != wantCoords[i] {
			t.Errorf("text %d coord = %v, want %v", i, x.Coord, wantCoords[i])
		}
	}
}

func TestDiluteMaxLinesCapsAlternation(t *testing.T) {
	labels := makeLabels(widths(5, 50), 30)
	res := Dilute(labels, DilutionConfig{
		Interval: 30, Padding: 4, MaxAlternation: 3, MaxLines: 1,
	})

	if res.AltCount != 1 {
		t.Errorf("alt = %d, want 1 under a one-line budget", res.AltCount)
	}
	if res.Skip != 2 {
		t.Errorf("skip = %d, want 2", res.Skip)
	}
}

func TestDiluteStopsBeforeSingleLabel(t *testing.T) {
	labels := makeLabels(widths(3, 1000), 10)
	res := Dilute(labels, DilutionConfig{Interval: 10, Padding: 4, MaxAlternation: 1})

	if res.Skip != 2 || res.Visible != 2 {
		t.Errorf("skip=%d visible=%d, want 2/2: dilution must keep two labels",
			res.Skip, res.Visible)
	}
	if res.Feasible {
		t.Errorf("still-truncating result must not be feasible at zero tolerance")
	}
}

func TestDiluteSingleTruncatingLabelInfeasible(t *testing.T) {
	labels := makeLabels(widths(1, 100), 10)
	res := Dilute(labels, DilutionConfig{Interval: 10, Padding: 4, MaxAlternation: 2})

	if res.Feasible {
		t.Errorf("a lone label that cannot fit must be infeasible")
	}
	if res.Visible != 1 {
		t.Errorf("visible = %d, want 1", res.Visible)
	}
}

func TestDiluteEmptyInputFeasible(t *testing.T) {
	res := Dilute(nil, DilutionConfig{Interval: 10})
	if !res.Feasible || res.Visible != 0 {
		t.Errorf("empty input: feasible=%v visible=%d, want true/0",
			res.Feasible, res.Visible)
	}
}

func TestDiluteForcedSkip(t *testing.T) {
	labels := makeLabels(widths(5, 10), 40)
	res := Dilute(labels, DilutionConfig{
		Interval: 40, Padding: 4, MaxAlternation: 2, ForcedSkip: 3,
	})

	if res.Skip != 3 {
		t.Errorf("skip = %d, want forced 3", res.Skip)
	}
	if res.Visible != 2 || !res.Feasible {
		t.Errorf("visible=%d feasible=%v, want 2/true", res.Visible, res.Feasible)
	}
}

func TestDiluteAcceptableRatio(t *testing.T) {
	// One of the two displayed labels still truncates; a 0.5 tolerance
	// accepts that, zero tolerance would not.
	labels := makeLabels([]float64{100, 10, 100, 10}, 30)
	res := Dilute(labels, DilutionConfig{
		Interval: 30, Padding: 4, MaxAlternation: 1, AcceptableRatio: 0.5,
	})

	if res.Skip != 3 || res.Visible != 2 || res.Truncated != 1 {
		t.Fatalf("skip=%d visible=%d truncated=%d, want 3/2/1",
			res.Skip, res.Visible, res.Truncated)
	}
	if !res.Feasible {
		t.Errorf("one truncation in two labels should pass a 0.5 tolerance")
	}
}

func TestSlantSkipIsContentIndependent(t *testing.T) {
	labels := makeLabels(widths(7, 30), 10)
	res := Slant(labels, 45, DilutionConfig{Interval: 10, Padding: 4, FontSize: 11})

	// ceil((11+4) / (10 * sin 45)) = ceil(2.12) = 3
	if res.Skip != 3 {
		t.Errorf("skip = %d, want 3", res.Skip)
	}
	if res.Visible != 3 || !res.Feasible {
		t.Errorf("visible=%d feasible=%v, want 3/true", res.Visible, res.Feasible)
	}
	for i, x := range res.Texts {
		if x.Block.Angle != 45 {
			t.Errorf("text %d angle = %v, want 45", i, x.Block.Angle)
		}
	}
	if !res.Slanted {
		t.Errorf("result should be marked slanted")
	}
}

func TestSlantInfeasibleBelowTwoVisible(t *testing.T) {
	labels := makeLabels(widths(2, 30), 2)
	res := Slant(labels, 45, DilutionConfig{Interval: 2, Padding: 4, FontSize: 11})

	if res.Feasible {
		t.Errorf("skip %d leaves %d visible, should be infeasible",
			res.Skip, res.Visible)
	}
}

func TestSlantHeight(t *testing.T) {
	cases := []struct {
		w, size, angle, want float64
	}{
		{100, 10, 90, 100},
		{100, 10, 0, 10},
		{100, 10, 45, (100 + 10) * math.Sqrt2 / 2},
	}
	for _, c := range cases {
		got := SlantHeight(c.w, c.size, c.angle)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("SlantHeight(%v, %v, %v) = %v, want %v",
				c.w, c.size, c.angle, got, c.want)
		}
	}
}

func TestNiceNext(t *testing.T) {
	cases := map[int]int{1: 2, 2: 3, 4: 5, 5: 10, 10: 20, 50: 100, 450: 500, 500: 1000}
	for in, want := range cases {
		if got := niceNext(in); got != want {
			t.Errorf("niceNext(%d) = %d, want %d", in, got, want)
		}
	}
}
