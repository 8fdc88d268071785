package axis

import (
	"testing"

	"github.com/timegrid/timegrid/pkg/measure"
)

func tick(coord, w float64, row int, optional bool) TickText {
	return TickText{
		Coord:    coord,
		Visible:  true,
		Optional: optional,
		Block: TextBlock{
			Text: "x",
			Size: measure.Size{W: w, H: 13},
			Row:  row,
		},
	}
}

func TestResolveCollisionsRequiredOverlapFails(t *testing.T) {
	texts := []TickText{tick(0, 20, 0, false), tick(10, 20, 0, false)}
	if ResolveCollisions(texts, 4) {
		t.Errorf("two overlapping required labels should fail")
	}
}

func TestResolveCollisionsHidesOptional(t *testing.T) {
	texts := []TickText{tick(0, 20, 0, false), tick(10, 20, 0, true)}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("overlap with an optional label should resolve")
	}
	if !texts[0].Visible {
		t.Errorf("required label should stay visible")
	}
	if texts[1].Visible {
		t.Errorf("optional label should be hidden")
	}
}

func TestResolveCollisionsHidesPreviousOptional(t *testing.T) {
	texts := []TickText{tick(0, 20, 0, true), tick(10, 20, 0, false)}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("expected resolution")
	}
	if texts[0].Visible {
		t.Errorf("earlier optional label should yield to the required one")
	}
	if !texts[1].Visible {
		t.Errorf("required label should stay visible")
	}
}

func TestResolveCollisionsRowsAreIndependent(t *testing.T) {
	texts := []TickText{tick(0, 20, 0, false), tick(10, 20, 1, false)}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("labels on different rows never collide")
	}
	if !texts[0].Visible || !texts[1].Visible {
		t.Errorf("both rows should keep their labels")
	}
}

func TestResolveCollisionsSpacedLabelsKeep(t *testing.T) {
	texts := []TickText{tick(0, 20, 0, false), tick(30, 20, 0, false)}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("non-overlapping labels should resolve")
	}
	if !texts[0].Visible || !texts[1].Visible {
		t.Errorf("nothing should be hidden")
	}
}

func TestResolveCollisionsUnsortedInput(t *testing.T) {
	texts := []TickText{tick(10, 20, 0, true), tick(0, 20, 0, false)}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("expected resolution")
	}
	if texts[0].Visible {
		t.Errorf("optional label at 10 should be hidden")
	}
	if !texts[1].Visible {
		t.Errorf("required label at 0 should stay visible")
	}
}

func TestResolveCollisionsIdempotent(t *testing.T) {
	texts := []TickText{
		tick(0, 20, 0, false), tick(10, 20, 0, true), tick(40, 20, 0, false),
	}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("expected resolution")
	}
	snap := make([]bool, len(texts))
	for i, x := range texts {
		snap[i] = x.Visible
	}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("second pass should also resolve")
	}
	for i, x := range texts {
		if x.Visible != snap[i] {
			t.Errorf("label %d visibility changed on second pass", i)
		}
	}
}

func TestResolveCollisionsSlantedFootprint(t *testing.T) {
	// Rotated 90 degrees a wide label only occupies its line height
	// horizontally.
	a := tick(0, 100, 0, false)
	b := tick(20, 100, 0, false)
	a.Block.Angle = 90
	b.Block.Angle = 90
	texts := []TickText{a, b}
	if !ResolveCollisions(texts, 4) {
		t.Fatalf("vertical labels 20px apart should not collide")
	}
	if !texts[0].Visible || !texts[1].Visible {
		t.Errorf("both slanted labels should stay visible")
	}
}
