package axis

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/timegrid/timegrid/pkg/duration"
	"github.com/timegrid/timegrid/pkg/measure"
)

// GridlinesConfig is the immutable parameter bundle for one gridline
// search pass. The orchestrator builds one per tier (major, then minor
// with the major coordinates as avoidance set).
type GridlinesConfig struct {
	Window    ViewWindow
	Unit      duration.Unit
	Multiples []int64 // ascending density, smallest spacing first
	Scale     Scale

	MinLineDistance  float64
	MinCrossDistance float64

	// Avoid holds pixel coordinates (sorted ascending) the pass must
	// keep clear of, typically the major gridlines during a minor pass.
	Avoid []float64

	Formats    []string
	UserFormat string
	Style      measure.TextStyle
	Measurer   measure.Measurer

	Brush    *Brush
	Location *time.Location
	Logger   *log.Logger
}

// SearchGridlines walks the spacing multiples from finest to coarsest
// and returns the candidate for the first multiple whose adjacent
// in-view gridlines keep MinLineDistance apart. Label formats are
// measured into batches but never judged here; acceptance is the
// caller's job, evaluated together with truncation tolerance.
//
// ok is false when no multiple survives. That is a normal outcome the
// caller answers by retrying at coarser granularity, not an error.
func SearchGridlines(cfg GridlinesConfig) (Candidate, bool) {
	unitDur := duration.Of(cfg.Unit, 1)
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	minDate := time.UnixMilli(int64(cfg.Window.Min)).In(loc)
	maxDate := time.UnixMilli(int64(cfg.Window.Max)).In(loc)

	for _, multiple := range cfg.Multiples {
		if cfg.Window.DataGranularity > 0 &&
			unitDur.ApproxMillis()*float64(multiple) < cfg.Window.DataGranularity {
			continue // finer than the data itself
		}

		start := duration.Ceil(minDate, unitDur)
		if cfg.Unit == duration.Day || cfg.Unit == duration.Week {
			start = duration.FloorWeek(start)
		}
		end := duration.Add(duration.Ceil(maxDate, unitDur), unitDur, 1)
		r, err := duration.NewRange(start, end, unitDur, multiple)
		if err != nil {
			// Unit durations from Of are always round; multiples are
			// validated by Options.
			panic(err)
		}

		lines, minGap, ok := collectGridlines(r, cfg)
		if !ok {
			if cfg.Logger != nil {
				cfg.Logger.Debug("multiple rejected: gridlines too dense",
					"unit", cfg.Unit, "multiple", multiple)
			}
			continue
		}
		if len(lines) == 0 {
			continue
		}

		lines = filterNearAvoid(lines, cfg.Avoid, cfg.MinCrossDistance)
		if len(lines) == 0 {
			continue
		}

		cand := Candidate{
			Gridlines:  lines,
			Batches:    buildFormatBatches(lines, cfg),
			Multiple:   multiple,
			MinSpacing: minGap,
		}
		if cfg.Logger != nil {
			cfg.Logger.Debug("multiple accepted",
				"unit", cfg.Unit, "multiple", multiple,
				"gridlines", len(lines), "minSpacing", minGap)
		}
		return cand, true
	}
	return Candidate{}, false
}

// collectGridlines enumerates the range, mapping dates to coordinates
// and peeking one step ahead so a too-dense multiple is rejected before
// the current gridline is committed. ok=false rejects the multiple.
func collectGridlines(r *duration.Range, cfg GridlinesConfig) (lines []Gridline, minGap float64, ok bool) {
	minGap = math.Inf(1)
	for {
		t, more := r.Next()
		if !more {
			break
		}
		ms := float64(t.UnixMilli())
		if ms < cfg.Window.Min {
			continue // pre-window date from week alignment
		}
		if ms > cfg.Window.Max {
			break
		}
		coord, mapped := cfg.Scale(ms)
		if !mapped {
			continue
		}

		if next, has := r.Peek(); has {
			nms := float64(next.UnixMilli())
			if nms <= cfg.Window.Max {
				if ncoord, m := cfg.Scale(nms); m {
					gap := math.Abs(ncoord - coord)
					if gap < cfg.MinLineDistance {
						return nil, 0, false
					}
					if gap < minGap {
						minGap = gap
					}
				}
			}
		}

		lines = append(lines, Gridline{
			Value:   t,
			Coord:   coord,
			Visible: true,
			Brush:   cfg.Brush,
		})
	}
	return lines, minGap, true
}

// filterNearAvoid drops gridlines within minDist of an entry of the
// sorted avoidance set. A single forward-scanning cursor keeps the pass
// O(n) amortized; the cursor never consumes an entry that might still
// collide with the next candidate.
func filterNearAvoid(lines []Gridline, avoid []float64, minDist float64) []Gridline {
	if len(avoid) == 0 || minDist <= 0 {
		return lines
	}

	// Candidates may run coordinate-descending on a reversed scale;
	// traverse in ascending coordinate order either way.
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	if len(lines) >= 2 && lines[0].Coord > lines[len(lines)-1].Coord {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	drop := make([]bool, len(lines))
	j := 0
	for _, idx := range order {
		c := lines[idx].Coord
		for j < len(avoid) && avoid[j] < c-minDist {
			j++
		}
		for k := j; k < len(avoid) && avoid[k] <= c+minDist; k++ {
			if math.Abs(avoid[k]-c) < minDist {
				drop[idx] = true
				break
			}
		}
	}

	out := lines[:0]
	for i, g := range lines {
		if !drop[i] {
			out = append(out, g)
		}
	}
	return out
}

// buildFormatBatches formats and measures every gridline label for each
// format alternative. An explicit user pattern short-circuits the list.
// Every batch is emitted; none is rejected here.
func buildFormatBatches(lines []Gridline, cfg GridlinesConfig) []FormatBatch {
	formats := cfg.Formats
	if cfg.UserFormat != "" {
		formats = []string{cfg.UserFormat}
	}

	batches := make([]FormatBatch, 0, len(formats))
	for _, layout := range formats {
		batch := FormatBatch{Format: layout, Labels: make([]Label, 0, len(lines))}
		for _, g := range lines {
			text := g.Value.Format(layout)
			size := cfg.Measurer.Measure(text, cfg.Style)
			if size.W > batch.MaxWidth {
				batch.MaxWidth = size.W
			}
			batch.Labels = append(batch.Labels, Label{
				Value: g.Value,
				Coord: g.Coord,
				Text:  text,
				Size:  size,
			})
		}
		batches = append(batches, batch)
	}
	return batches
}
