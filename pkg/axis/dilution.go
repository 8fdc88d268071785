package axis

import (
	"math"

	"github.com/charmbracelet/log"
)

// DilutionConfig bounds one dilution search over a fixed label set.
type DilutionConfig struct {
	// Interval is the pixel distance between adjacent candidate ticks.
	// A label displayed at composite skip s has s*Interval of room.
	Interval float64

	// Padding is the minimum clearance between adjacent labels; a label
	// needs truncation when width+Padding exceeds its room.
	Padding float64

	MaxAlternation int // >= 1
	ForcedSkip     int // starting skip, 0 means 1

	// MaxLines caps the alternation rows in the realistic phase. 0
	// means unlimited (the optimistic phase).
	MaxLines int

	// AcceptableRatio is the fraction of displayed labels that may
	// still need truncation for the result to count as feasible.
	// Outside-axis ticks use 0; inside-axis ticks use 0.5.
	AcceptableRatio float64

	FontSize float64
	Style    TextBlock // template: Style.Style is cloned onto every block

	Logger *log.Logger
}

// DilutionResult is the outcome of one dilution search.
type DilutionResult struct {
	AltCount  int
	Skip      int
	Visible   int  // displayed label count across all rows
	Truncated int  // displayed labels that still need truncation
	Feasible  bool // truncation within the configured tolerance
	Slanted   bool
	Angle     float64
	Texts     []TickText
}

// Dilute finds the smallest (altCount, skip) combination that avoids or
// minimizes truncation of the pre-measured labels.
//
// Alternation is exhausted first: altCount grows while bounded by
// MaxAlternation (and MaxLines when set) and while the first alternation
// row keeps at least two labels. Only then does skip climb the nice
// number ladder (1,2,3,4,5 x powers of ten). A configuration that would
// leave fewer than two visible labels is never adopted; the last one
// with two or more wins even if truncation remains.
//
// The displayed index set for row i is {first + i*skip + k*altCount*skip};
// equivalently, every skip-th candidate is displayed and rows take
// turns. No index appears in two rows.
func Dilute(labels []Label, cfg DilutionConfig) DilutionResult {
	n := len(labels)
	if n == 0 {
		return DilutionResult{AltCount: 1, Skip: 1, Feasible: true}
	}

	maxAlt := cfg.MaxAlternation
	if maxAlt < 1 {
		maxAlt = 1
	}
	if cfg.MaxLines > 0 && maxAlt > cfg.MaxLines {
		maxAlt = cfg.MaxLines
	}

	alt := 1
	skip := cfg.ForcedSkip
	if skip < 1 {
		skip = 1
	}

	visible := func(skip int) int { return (n-1)/skip + 1 }
	truncated := func(alt, skip int) int {
		room := cfg.Interval * float64(alt*skip)
		count := 0
		for idx := 0; idx < n; idx += skip {
			if labels[idx].Size.W+cfg.Padding > room {
				count++
			}
		}
		return count
	}

	if visible(skip) < 2 && truncated(alt, skip) > 0 {
		// A single truncating label cannot be diluted into fitting;
		// report infeasible rather than emit a clipped lone label.
		return DilutionResult{AltCount: alt, Skip: skip, Visible: visible(skip),
			Truncated: truncated(alt, skip)}
	}

	for truncated(alt, skip) > 0 {
		// First alternation row keeps ceil(visible/alt) labels; growing
		// alt must leave it at least two.
		if alt < maxAlt && (visible(skip)+alt)/(alt+1) >= 2 {
			alt++
			continue
		}
		next := niceNext(skip)
		if visible(next) < 2 {
			break
		}
		skip = next
	}

	v := visible(skip)
	trunc := truncated(alt, skip)
	res := DilutionResult{
		AltCount:  alt,
		Skip:      skip,
		Visible:   v,
		Truncated: trunc,
		Feasible:  trunc <= int(cfg.AcceptableRatio*float64(v)),
		Texts:     buildTexts(labels, alt, skip, 0, cfg),
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("dilution settled",
			"alt", alt, "skip", skip, "visible", v, "truncated", trunc)
	}
	return res
}

// Slant produces the slanted-text fallback: one row of labels rotated
// by angle degrees. The skip needed so adjacent rotated labels clear
// each other depends only on font size and angle, never on content.
func Slant(labels []Label, angle float64, cfg DilutionConfig) DilutionResult {
	n := len(labels)
	res := DilutionResult{AltCount: 1, Skip: 1, Slanted: true, Angle: angle}
	if n == 0 {
		res.Feasible = true
		return res
	}

	sin := math.Abs(math.Sin(angle * math.Pi / 180))
	skip := 1
	if sin > 0 && cfg.Interval > 0 {
		skip = int(math.Ceil((cfg.FontSize + cfg.Padding) / (cfg.Interval * sin)))
	}
	if skip < 1 {
		skip = 1
	}
	if cfg.ForcedSkip > skip {
		skip = cfg.ForcedSkip
	}

	res.Skip = skip
	res.Visible = (n-1)/skip + 1
	res.Feasible = res.Visible >= 2
	res.Texts = buildTexts(labels, 1, skip, angle, cfg)
	return res
}

// SlantHeight returns the vertical room a slanted label row needs: the
// perpendicular projection of the rotated text onto the axis normal.
func SlantHeight(maxWidth, fontSize, angle float64) float64 {
	rad := angle * math.Pi / 180
	return math.Abs(maxWidth*math.Sin(rad)) + math.Abs(fontSize*math.Cos(rad))
}

// buildTexts materializes the displayed labels. Row-0 labels are
// required; labels pushed onto later alternation rows are optional and
// may be hidden by the collision resolver.
func buildTexts(labels []Label, alt, skip int, angle float64, cfg DilutionConfig) []TickText {
	var texts []TickText
	m := 0
	for idx := 0; idx < len(labels); idx += skip {
		l := labels[idx]
		row := m % alt
		texts = append(texts, TickText{
			Value:    l.Value,
			Coord:    l.Coord,
			Visible:  true,
			Optional: row > 0,
			Block: TextBlock{
				Text:  l.Text,
				Size:  l.Size,
				Style: cfg.Style.Style,
				Angle: angle,
				Row:   row,
			},
		})
		m++
	}
	return texts
}

// niceNext returns the smallest "nice" number (1,2,3,4,5 scaled by a
// power of ten) strictly greater than v.
func niceNext(v int) int {
	pow := 1
	for {
		for _, m := range []int{1, 2, 3, 4, 5} {
			if n := m * pow; n > v {
				return n
			}
		}
		pow *= 10
	}
}
