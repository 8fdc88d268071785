package axis

import (
	"time"

	"github.com/timegrid/timegrid/pkg/measure"
)

// ViewWindow is the numeric (epoch-millisecond) domain to be decorated.
type ViewWindow struct {
	// Min and Max bound the visible value range, Min < Max.
	Min, Max float64

	// DataGranularity is the smallest real gap between data points in
	// milliseconds. When positive it bounds over-refinement: spacing
	// multiples finer than the data itself are skipped.
	DataGranularity float64
}

// Span returns the window width in milliseconds.
func (w ViewWindow) Span() float64 { return w.Max - w.Min }

// Scale maps a value to a pixel coordinate. It must be monotonic over
// the view window; ok=false marks the value unmappable, which excludes
// the candidate rather than failing the run. The engine never inverts
// the mapping. A decreasing scale renders a reversed axis.
type Scale func(value float64) (pixel float64, ok bool)

// Brush is an opaque stroke descriptor attached to output records and
// never interpreted by the engine.
type Brush struct {
	Stroke string
	Width  float64
	Dash   []float64
}

// Gridline is one positioned axis gridline or notch mark.
type Gridline struct {
	Value    time.Time
	Coord    float64
	Visible  bool
	Notch    bool // short unlabeled mark at an intermediate unit boundary
	Optional bool // minor-tier gridline, may be dropped by the caller
	Brush    *Brush
}

// TextBlock carries a formatted, measured label ready for drawing.
type TextBlock struct {
	Text  string
	Size  measure.Size
	Style measure.TextStyle
	Angle float64 // degrees from horizontal; non-zero means slanted
	Row   int     // alternation row index, 0 is closest to the axis
}

// TickText is one positioned tick label. The dilution search creates
// it, the collision resolver may flip Visible off, and it is immutable
// once the orchestrator emits it.
type TickText struct {
	Value    time.Time
	Coord    float64
	Visible  bool
	Optional bool // permitted to be hidden on collision without failing
	Block    TextBlock
}

// Label is a formatted, measured label candidate before dilution.
type Label struct {
	Value time.Time
	Coord float64
	Text  string
	Size  measure.Size
}

// FormatBatch is the measured label set for one format attempt. The
// gridline search emits every batch unjudged; acceptance happens
// downstream where format choice and truncation tolerance are evaluated
// together.
type FormatBatch struct {
	Format   string
	Labels   []Label
	MaxWidth float64
}

// Candidate is the accepted output of one gridline search pass.
type Candidate struct {
	Gridlines []Gridline
	Batches   []FormatBatch
	Multiple  int64

	// MinSpacing is the tightest observed adjacent gridline gap in
	// pixels, carried forward for notch spacing decisions. It is +Inf
	// when fewer than two gridlines are in view.
	MinSpacing float64
}
