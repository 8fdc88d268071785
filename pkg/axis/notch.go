package axis

import (
	"time"

	"github.com/timegrid/timegrid/pkg/duration"
)

// BuildNotches inserts short unlabeled notch marks at every unlabeled
// major-unit boundary between labeled gridlines. Notches are only drawn
// when the accepted major multiple leaves room: the per-unit spacing
// (MinSpacing / multiple) must reach minNotchDistance, otherwise the
// result is nil.
//
// Minor gridlines and notches are mutually exclusive; the orchestrator
// calls this only when the minor tier was not used.
func BuildNotches(c Candidate, cfg GridlinesConfig, minNotchDistance float64, brush *Brush) []Gridline {
	if c.Multiple <= 1 || len(c.Gridlines) == 0 {
		return nil
	}
	if c.MinSpacing/float64(c.Multiple) < minNotchDistance {
		return nil
	}

	major := make(map[int64]struct{}, len(c.Gridlines))
	for _, g := range c.Gridlines {
		major[g.Value.UnixMilli()] = struct{}{}
	}

	unitDur := duration.Of(cfg.Unit, 1)
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	minDate := time.UnixMilli(int64(cfg.Window.Min)).In(loc)
	maxDate := time.UnixMilli(int64(cfg.Window.Max)).In(loc)

	start := duration.Ceil(minDate, unitDur)
	if cfg.Unit == duration.Day || cfg.Unit == duration.Week {
		start = duration.FloorWeek(start)
	}
	end := duration.Add(duration.Ceil(maxDate, unitDur), unitDur, 1)
	r, err := duration.NewRange(start, end, unitDur, 1)
	if err != nil {
		return nil
	}

	var notches []Gridline
	for {
		t, more := r.Next()
		if !more {
			break
		}
		ms := float64(t.UnixMilli())
		if ms < cfg.Window.Min {
			continue
		}
		if ms > cfg.Window.Max {
			break
		}
		if _, labeled := major[t.UnixMilli()]; labeled {
			continue
		}
		coord, mapped := cfg.Scale(ms)
		if !mapped {
			continue
		}
		notches = append(notches, Gridline{
			Value:   t,
			Coord:   coord,
			Visible: true,
			Notch:   true,
			Brush:   brush,
		})
	}
	return notches
}
