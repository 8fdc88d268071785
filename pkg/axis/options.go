package axis

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/timegrid/timegrid/pkg/duration"
	"github.com/timegrid/timegrid/pkg/errors"
	"github.com/timegrid/timegrid/pkg/measure"
)

// Default tunables. Distances are pixels.
const (
	DefaultTargetGridlines = 6
	DefaultMinLineDistance = 40.0
	DefaultMinCrossDist    = 10.0
	DefaultMinNotchDist    = 5.0
	DefaultTextPadding     = 4.0
	DefaultMaxAlternation  = 2
	DefaultSlantAngle      = 45.0
	DefaultInsideRatio     = 0.5
	DefaultFontSize        = 11.0
	DefaultBudget          = 60.0
	DefaultMargin          = 5.0
)

// Options is the typed configuration for one layout run. Every tunable
// the engine reads is resolved into this struct up front and validated
// eagerly; the passes take strongly-typed fields and never re-query a
// generic resolver.
type Options struct {
	// Window and Scale describe the domain. Both are required.
	Window ViewWindow
	Scale  Scale

	// Unit fixes the major gridline granularity. nil selects
	// automatically from the view span and the round-duration table.
	Unit *duration.Unit

	// Multiples overrides the candidate spacing multiples, ascending
	// (smallest spacing first). Empty selects per-unit defaults.
	Multiples []int64

	// RoundTable and Repeat configure automatic unit selection.
	// Empty table selects duration.DefaultTable.
	RoundTable []duration.Duration
	Repeat     int

	// TargetGridlines is the preferred major gridline count used by
	// automatic unit selection.
	TargetGridlines int

	MinLineDistance  float64 // min pixel gap between adjacent gridlines
	MinCrossDistance float64 // min gap between minor and major gridlines
	MinNotchDistance float64 // min gap between notch marks
	TextPadding      float64 // min clearance between adjacent labels

	MaxAlternation int  // max alternating label rows
	ForcedSkip     int  // user-forced label skip, 0 for none
	Slanted        bool // force slanted labels
	SlantAngle     float64
	TicksInside    bool // labels inside the plot; no slanted fallback

	// InsideTruncationRatio is the fraction of labels that may still
	// truncate before an inside-axis layout is infeasible.
	InsideTruncationRatio float64

	MinorGridlines bool

	// Formats overrides the per-unit default label format list
	// (time.Time layout strings). UserFormat short-circuits the format
	// search entirely.
	Formats    []string
	UserFormat string

	FontSize float64
	Measurer measure.Measurer

	// Budget is the vertical pixel budget shared by the axis region.
	Budget         float64
	Margin         float64
	Title          string
	TitleLines     int
	LegendHeight   float64
	ColorBarHeight float64

	GridBrush  *Brush
	NotchBrush *Brush
	MinorBrush *Brush

	Location *time.Location
	Logger   *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and fills defaults.
// Idempotent; the first error encountered is returned unfilled.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Scale == nil {
		return errors.New(errors.ErrCodeInvalidOptions, "scale function is required")
	}
	if !(o.Window.Min < o.Window.Max) {
		return errors.New(errors.ErrCodeInvalidRange,
			"view window min %v must be below max %v", o.Window.Min, o.Window.Max)
	}
	if o.Unit != nil && !o.Unit.Valid() {
		return errors.New(errors.ErrCodeInvalidUnit, "unknown axis unit %d", int(*o.Unit))
	}
	for _, m := range o.Multiples {
		if m < 1 {
			return errors.New(errors.ErrCodeInvalidOptions, "spacing multiple %d must be >= 1", m)
		}
	}
	if o.ForcedSkip < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "forced skip must not be negative")
	}

	if o.TargetGridlines <= 0 {
		o.TargetGridlines = DefaultTargetGridlines
	}
	if o.MinLineDistance <= 0 {
		o.MinLineDistance = DefaultMinLineDistance
	}
	if o.MinCrossDistance <= 0 {
		o.MinCrossDistance = DefaultMinCrossDist
	}
	if o.MinNotchDistance <= 0 {
		o.MinNotchDistance = DefaultMinNotchDist
	}
	if o.TextPadding <= 0 {
		o.TextPadding = DefaultTextPadding
	}
	if o.MaxAlternation <= 0 {
		o.MaxAlternation = DefaultMaxAlternation
	}
	if o.SlantAngle == 0 {
		o.SlantAngle = DefaultSlantAngle
	}
	if o.InsideTruncationRatio <= 0 {
		o.InsideTruncationRatio = DefaultInsideRatio
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Measurer == nil {
		o.Measurer = measure.Fixed{}
	}
	if o.Budget <= 0 {
		o.Budget = DefaultBudget
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if len(o.RoundTable) == 0 {
		o.RoundTable = duration.DefaultTable()
		if o.Repeat == 0 {
			o.Repeat = duration.DefaultRepeat
		}
	}
	if o.Title != "" && o.TitleLines == 0 {
		o.TitleLines = 1
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.GridBrush == nil {
		o.GridBrush = &Brush{Stroke: "#cccccc", Width: 1}
	}
	if o.NotchBrush == nil {
		o.NotchBrush = &Brush{Stroke: "#cccccc", Width: 1}
	}
	if o.MinorBrush == nil {
		o.MinorBrush = &Brush{Stroke: "#eeeeee", Width: 1}
	}

	o.validated = true
	return nil
}

// textStyle returns the measurement style for tick labels.
func (o *Options) textStyle() measure.TextStyle {
	return measure.TextStyle{FontSize: o.FontSize}
}

// defaultMultiples lists the candidate spacing multiples per unit,
// ascending (densest first).
func defaultMultiples(u duration.Unit) []int64 {
	switch u {
	case duration.Millisecond:
		return []int64{1, 2, 5, 10, 25, 50, 100, 250, 500}
	case duration.Second, duration.Minute:
		return []int64{1, 2, 5, 10, 15, 30}
	case duration.Hour:
		return []int64{1, 2, 3, 4, 6, 12}
	case duration.Day:
		return []int64{1, 2, 7, 14}
	case duration.Week:
		return []int64{1, 2, 4}
	case duration.Month:
		return []int64{1, 2, 3, 6}
	case duration.Quarter:
		return []int64{1, 2}
	case duration.Year:
		return []int64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}
	}
	return []int64{1, 2, 5}
}

// defaultFormats lists the label format alternatives per unit, widest
// (most informative) first. The search measures each in turn; the
// caller picks the first whose dilution outcome is acceptable.
func defaultFormats(u duration.Unit) []string {
	switch u {
	case duration.Millisecond:
		return []string{"15:04:05.000", "05.000"}
	case duration.Second:
		return []string{"15:04:05", "04:05"}
	case duration.Minute:
		return []string{"15:04", "04"}
	case duration.Hour:
		return []string{"Jan 2 15:04", "15:04"}
	case duration.Day, duration.Week:
		return []string{"Jan 2 2006", "Jan 2", "2.1."}
	case duration.Month, duration.Quarter:
		return []string{"Jan 2006", "Jan", "1/06"}
	default:
		return []string{"2006", "'06"}
	}
}
