package axis

import (
	"math"
	"sort"
	"time"

	"github.com/timegrid/timegrid/pkg/duration"
	"github.com/timegrid/timegrid/pkg/errors"
	"github.com/timegrid/timegrid/pkg/observability"
)

// Outcome classifies the layout the orchestrator settled on.
type Outcome int

const (
	// OutcomeFull means horizontal labels were placed within tolerance.
	OutcomeFull Outcome = iota

	// OutcomeSlanted means the slanted-label fallback was used.
	OutcomeSlanted

	// OutcomeDegraded means no label layout was feasible; the result
	// carries gridlines only. This is a valid artifact, not an error.
	OutcomeDegraded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFull:
		return "full"
	case OutcomeSlanted:
		return "slanted"
	case OutcomeDegraded:
		return "degraded"
	}
	return "unknown"
}

// Stats summarizes the accepted layout for logging and the CLI.
type Stats struct {
	Unit      duration.Unit
	Multiple  int64
	Format    string
	AltCount  int
	Skip      int
	Attempts  int // granularities tried, including the accepted one
	Gridlines int // major gridlines in view
	Notches   int
	Minor     int
	Visible   int // labels left visible after collision resolution
	Hidden    int
	Truncated int
	Elapsed   time.Duration
}

// Result is the complete axis decoration for one view window.
type Result struct {
	Gridlines  []Gridline // majors, then notches or minors
	Texts      []TickText
	Allocation Allocation
	Outcome    Outcome
	Stats      Stats
}

// maxCoarserRetries bounds how many coarser granularities are tried
// after the initial unit before the run degrades.
const maxCoarserRetries = 2

const lineHeightFactor = 1.2

// Layout runs the full pipeline: real-estate allocation, gridline
// search, label dilution per format, the slanted fallback, minor or
// notch composition, and collision resolution.
//
// An infeasible window is not an error: when no granularity yields a
// label layout, the result degrades to gridlines with zero labels and
// Outcome reports it. Errors are reserved for invalid options and an
// unmappable view window.
func Layout(opts Options) (Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Result{}, err
	}

	p0, ok0 := opts.Scale(opts.Window.Min)
	p1, ok1 := opts.Scale(opts.Window.Max)
	if !ok0 || !ok1 {
		return Result{}, errors.New(errors.ErrCodeUnmappable,
			"view window endpoints do not map to pixel coordinates")
	}
	axisSpan := math.Abs(p1 - p0)

	started := time.Now()
	hooks := observability.Layout()
	hooks.OnLayoutStart(opts.Window.Span())

	unit := chooseUnit(&opts)
	lineHeight := opts.FontSize * lineHeightFactor
	alloc := planRealEstate(&opts, lineHeight)
	maxLines := tickLines(alloc, lineHeight)

	opts.Logger.Debug("layout start",
		"unit", unit, "axisSpan", axisSpan, "maxLines", maxLines)

	var (
		best     Result
		haveBest bool
		attempts int
	)
	u := unit
	for retry := 0; retry <= maxCoarserRetries; retry++ {
		attempts++
		res, ok := layoutUnit(&opts, u, maxLines, axisSpan, alloc, lineHeight)
		hooks.OnAttempt(u.String(), ok)
		if len(res.Gridlines) > 0 && !haveBest {
			best, haveBest = res, true
		}
		if ok {
			res.Stats.Attempts = attempts
			res.Stats.Elapsed = time.Since(started)
			opts.Logger.Info("layout accepted",
				"unit", res.Stats.Unit, "multiple", res.Stats.Multiple,
				"outcome", res.Outcome, "visible", res.Stats.Visible)
			hooks.OnLayoutComplete(res.Outcome.String(), time.Since(started), nil)
			return res, nil
		}
		next, coarser := u.Coarser()
		if !coarser {
			break
		}
		u = next
	}

	// Nothing labeled fits at any granularity: keep the gridlines of
	// the first candidate, drop all text.
	best.Texts = nil
	best.Outcome = OutcomeDegraded
	best.Allocation = alloc
	best.Stats.Attempts = attempts
	best.Stats.Elapsed = time.Since(started)
	best.Stats.Visible = 0
	best.Stats.Hidden = 0
	best.Stats.Truncated = 0
	opts.Logger.Warn("layout degraded to gridlines only",
		"unit", best.Stats.Unit, "attempts", attempts)
	hooks.OnLayoutComplete(best.Outcome.String(), time.Since(started), nil)
	return best, nil
}

// layoutUnit attempts a complete layout at one granularity. ok=false
// means the caller should retry coarser; the partial result still
// carries gridlines when the search found any, so a degraded run has
// something to show.
func layoutUnit(opts *Options, unit duration.Unit, maxLines int, axisSpan float64, alloc Allocation, lineHeight float64) (Result, bool) {
	multiples := opts.Multiples
	if len(multiples) == 0 {
		multiples = defaultMultiples(unit)
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = defaultFormats(unit)
	}
	gcfg := GridlinesConfig{
		Window:           opts.Window,
		Unit:             unit,
		Multiples:        multiples,
		Scale:            opts.Scale,
		MinLineDistance:  opts.MinLineDistance,
		MinCrossDistance: opts.MinCrossDistance,
		Formats:          formats,
		UserFormat:       opts.UserFormat,
		Style:            opts.textStyle(),
		Measurer:         opts.Measurer,
		Brush:            opts.GridBrush,
		Location:         opts.Location,
		Logger:           opts.Logger,
	}

	cand, found := SearchGridlines(gcfg)
	if !found {
		return Result{Stats: Stats{Unit: unit}}, false
	}

	res := Result{
		Gridlines:  cand.Gridlines,
		Allocation: alloc,
		Stats: Stats{
			Unit:      unit,
			Multiple:  cand.Multiple,
			Gridlines: len(cand.Gridlines),
		},
	}
	if maxLines == 0 {
		// No vertical room for any label row.
		return res, false
	}

	interval := cand.MinSpacing
	if math.IsInf(interval, 1) || interval > axisSpan {
		interval = axisSpan
	}
	ratio := 0.0
	if opts.TicksInside {
		ratio = opts.InsideTruncationRatio
	}
	dcfg := DilutionConfig{
		Interval:        interval,
		Padding:         opts.TextPadding,
		MaxAlternation:  opts.MaxAlternation,
		ForcedSkip:      opts.ForcedSkip,
		MaxLines:        maxLines,
		AcceptableRatio: ratio,
		FontSize:        opts.FontSize,
		Style:           TextBlock{Style: opts.textStyle()},
		Logger:          opts.Logger,
	}

	var (
		chosen DilutionResult
		format string
		ok     bool
	)
	if !opts.Slanted {
		for _, batch := range cand.Batches {
			r := Dilute(batch.Labels, dcfg)
			if r.Feasible {
				chosen, format, ok = r, batch.Format, true
				break
			}
		}
	}
	if !ok && !opts.TicksInside && len(cand.Batches) > 0 {
		batch := cand.Batches[0]
		h := SlantHeight(batch.MaxWidth, opts.FontSize, opts.SlantAngle)
		replanned := planRealEstate(opts, h)
		if replanned.Has(keyTickFirst) {
			r := Slant(batch.Labels, opts.SlantAngle, dcfg)
			if r.Feasible {
				chosen, format, ok = r, batch.Format, true
				res.Allocation = replanned
			}
		}
	}
	if !ok {
		return res, false
	}

	texts := chosen.Texts
	if !ResolveCollisions(texts, opts.TextPadding) {
		opts.Logger.Debug("required labels collide, retrying coarser",
			"unit", unit, "multiple", cand.Multiple)
		return res, false
	}

	// The minor tier only refines a unit-multiple grid; at a coarser
	// multiple the skipped unit boundaries get notches instead.
	if opts.MinorGridlines && cand.Multiple == 1 {
		res.Gridlines = append(res.Gridlines, buildMinor(opts, unit, cand)...)
		res.Stats.Minor = len(res.Gridlines) - res.Stats.Gridlines
	} else if !chosen.Slanted {
		notches := BuildNotches(cand, gcfg, opts.MinNotchDistance, opts.NotchBrush)
		res.Gridlines = append(res.Gridlines, notches...)
		res.Stats.Notches = len(notches)
	}

	res.Texts = texts
	res.Outcome = OutcomeFull
	if chosen.Slanted {
		res.Outcome = OutcomeSlanted
	}
	res.Stats.Format = format
	res.Stats.AltCount = chosen.AltCount
	res.Stats.Skip = chosen.Skip
	res.Stats.Truncated = chosen.Truncated
	for _, t := range texts {
		if t.Visible {
			res.Stats.Visible++
		} else {
			res.Stats.Hidden++
		}
	}
	return res, true
}

// buildMinor runs a second gridline pass one unit finer, keeping clear
// of the major coordinates. Minor gridlines are optional and unlabeled.
func buildMinor(opts *Options, unit duration.Unit, major Candidate) []Gridline {
	finer, ok := unit.Finer()
	if !ok {
		return nil
	}
	avoid := make([]float64, len(major.Gridlines))
	for i, g := range major.Gridlines {
		avoid[i] = g.Coord
	}
	sort.Float64s(avoid)

	mcfg := GridlinesConfig{
		Window:           opts.Window,
		Unit:             finer,
		Multiples:        defaultMultiples(finer),
		Scale:            opts.Scale,
		MinLineDistance:  opts.MinCrossDistance,
		MinCrossDistance: opts.MinCrossDistance,
		Avoid:            avoid,
		Formats:          defaultFormats(finer),
		Style:            opts.textStyle(),
		Measurer:         opts.Measurer,
		Brush:            opts.MinorBrush,
		Location:         opts.Location,
		Logger:           opts.Logger,
	}
	cand, found := SearchGridlines(mcfg)
	if !found {
		return nil
	}
	for i := range cand.Gridlines {
		cand.Gridlines[i].Optional = true
	}
	return cand.Gridlines
}

// chooseUnit resolves the major granularity: the explicit option when
// set, otherwise the round duration nearest span/TargetGridlines.
func chooseUnit(opts *Options) duration.Unit {
	if opts.Unit != nil {
		return *opts.Unit
	}
	per := opts.Window.Span() / float64(opts.TargetGridlines)
	d := duration.RoundMillis(per, opts.RoundTable, opts.Repeat)
	return unitOf(d)
}

// unitOf maps a round duration onto the unit ladder. Multi-day slots
// that are whole weeks map to Week; a three-month slot maps to Quarter.
func unitOf(d duration.Duration) duration.Unit {
	slot, n, _ := d.RoundSlot()
	switch slot {
	case duration.SlotMillis:
		return duration.Millisecond
	case duration.SlotSeconds:
		return duration.Second
	case duration.SlotMinutes:
		return duration.Minute
	case duration.SlotHours:
		return duration.Hour
	case duration.SlotDays:
		if n%7 == 0 {
			return duration.Week
		}
		return duration.Day
	case duration.SlotMonths:
		if n == 3 {
			return duration.Quarter
		}
		return duration.Month
	}
	return duration.Year
}

// Real-estate item keys. tick.first is the row closest to the axis;
// tick.rest funds additional alternation rows.
const (
	keyMargin    = "margin"
	keyTickFirst = "tick.first"
	keyTickRest  = "tick.rest"
	keyTitle     = "title"
	keyLegend    = "legend"
	keyColorBar  = "colorbar"
)

// planRealEstate divides the vertical budget. Priority order: margin,
// the first tick row, the title, the color bar, then the legend; the
// legend absorbs all leftover when present, otherwise leftover funds
// extra tick rows.
func planRealEstate(opts *Options, tickHeight float64) Allocation {
	lineHeight := opts.FontSize * lineHeightFactor
	items := []Item{
		{Key: keyMargin, Min: opts.Margin},
		{Key: keyTickFirst, Min: tickHeight},
	}
	if opts.Title != "" {
		items = append(items, Item{Key: keyTitle, Min: float64(opts.TitleLines) * lineHeight})
	}
	if opts.ColorBarHeight > 0 {
		items = append(items, Item{Key: keyColorBar, Min: opts.ColorBarHeight})
	}
	if opts.LegendHeight > 0 {
		items = append(items, Item{Key: keyLegend, Min: opts.LegendHeight, Weight: math.Inf(1)})
	}
	items = append(items, Item{Key: keyTickRest, Weight: 1})
	return Allocate(items, opts.Budget)
}

// tickLines converts the tick grants into a row budget for dilution.
func tickLines(alloc Allocation, lineHeight float64) int {
	if !alloc.Has(keyTickFirst) {
		return 0
	}
	return 1 + int(alloc.Granted(keyTickRest)/lineHeight)
}
