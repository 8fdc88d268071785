package axis

import (
	"math"
	"testing"
)

func TestAllocateMinimumPassOrder(t *testing.T) {
	alloc := Allocate([]Item{
		{Key: "margin", Min: 5},
		{Key: "a", Min: 20},
		{Key: "b", Min: 50},
	}, 60)

	if !alloc.Has("margin") || !alloc.Has("a") {
		t.Fatalf("expected margin and a to survive, got %v", alloc)
	}
	if alloc.Has("b") {
		t.Errorf("b (min 50) should be dropped with 35 left, got %v", alloc.Granted("b"))
	}
	if got := alloc.Granted("a"); got != 20 {
		t.Errorf("a granted = %v, want 20", got)
	}
}

func TestAllocateDroppedItemDoesNotBlockLater(t *testing.T) {
	alloc := Allocate([]Item{
		{Key: "big", Min: 100},
		{Key: "small", Min: 20},
	}, 30)

	if alloc.Has("big") {
		t.Errorf("big should be dropped")
	}
	if got := alloc.Granted("small"); got != 20 {
		t.Errorf("small granted = %v, want 20", got)
	}
}

func TestAllocateInfiniteWeightAbsorbsLeftover(t *testing.T) {
	alloc := Allocate([]Item{
		{Key: "a", Min: 10},
		{Key: "legend", Min: 5, Weight: math.Inf(1)},
		{Key: "rest", Min: 0, Weight: 1},
	}, 100)

	if got := alloc.Granted("legend"); got != 90 {
		t.Errorf("legend granted = %v, want 90", got)
	}
	if got := alloc.Granted("rest"); got != 0 {
		t.Errorf("rest granted = %v, want 0", got)
	}
	if got := alloc.Total(); got != 100 {
		t.Errorf("total = %v, want 100", got)
	}
}

func TestAllocateProportionalLeftover(t *testing.T) {
	alloc := Allocate([]Item{
		{Key: "a", Min: 10, Weight: 1},
		{Key: "b", Min: 10, Weight: 3},
	}, 60)

	if got := alloc.Granted("a"); got != 20 {
		t.Errorf("a granted = %v, want 20", got)
	}
	if got := alloc.Granted("b"); got != 40 {
		t.Errorf("b granted = %v, want 40", got)
	}
}

func TestAllocateLeftoverWithNoTakerStaysUnspent(t *testing.T) {
	alloc := Allocate([]Item{{Key: "a", Min: 10}}, 50)

	if got := alloc.Total(); got != 10 {
		t.Errorf("total = %v, want 10", got)
	}
}

func TestAllocateNeverExceedsBudget(t *testing.T) {
	cases := [][]Item{
		{{Key: "a", Min: 10, Weight: 1}, {Key: "b", Min: 20, Weight: 2}},
		{{Key: "a", Min: 10}, {Key: "b", Min: 5, Weight: math.Inf(1)}},
		{{Key: "a", Min: 100}},
		nil,
	}
	for _, items := range cases {
		alloc := Allocate(items, 42)
		if got := alloc.Total(); got > 42+1e-9 {
			t.Errorf("Allocate(%v, 42) total = %v, exceeds budget", items, got)
		}
	}
}
