package axis

import (
	"math"
	"sort"
)

// ResolveCollisions sweeps the tick labels in ascending coordinate
// order and hides overlapping ones in place. Labels on different
// alternation rows never collide. Within a row, an overlap involving an
// optional label hides the optional side and the sweep continues; an
// overlap between two required labels means the accepted layout was
// wrong and the call reports failure. Already-hidden labels are ignored,
// so the pass is idempotent.
//
// ok=false is a signal to the caller to fall back to a sparser layout,
// not an error.
func ResolveCollisions(texts []TickText, padding float64) (ok bool) {
	order := make([]int, len(texts))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return texts[order[a]].Coord < texts[order[b]].Coord
	})

	// last kept label per alternation row
	type kept struct {
		idx  int
		end  float64
		have bool
	}
	rows := make(map[int]*kept)

	for _, i := range order {
		t := &texts[i]
		if !t.Visible {
			continue
		}
		w := footprint(t.Block)
		start := t.Coord - w/2
		end := t.Coord + w/2

		row := t.Block.Row
		prev, seen := rows[row]
		if !seen {
			prev = &kept{}
			rows[row] = prev
		}

		if prev.have && start < prev.end+padding {
			p := &texts[prev.idx]
			switch {
			case t.Optional:
				t.Visible = false
				continue
			case p.Optional:
				p.Visible = false
			default:
				return false
			}
		}
		prev.idx = i
		prev.end = end
		prev.have = true
	}
	return true
}

// footprint is the horizontal extent of a label, accounting for slant:
// the projection of the rotated text box onto the axis.
func footprint(b TextBlock) float64 {
	if b.Angle == 0 {
		return b.Size.W
	}
	rad := b.Angle * math.Pi / 180
	return math.Abs(b.Size.W*math.Cos(rad)) + math.Abs(b.Size.H*math.Sin(rad))
}
