// Package pkg provides the core libraries for timegrid axis layout.
//
// # Overview
//
// Timegrid selects gridlines and arranges tick labels for date/time axes.
// Given a time window, a coordinate scale, and a pixel budget, it picks a
// calendar granularity, enumerates aligned gridlines, dilutes labels until
// they fit, and resolves residual collisions. The pkg directory is organized
// into five areas:
//
//  1. [duration] - Calendar arithmetic (mixed-unit durations, flooring, ranges)
//  2. [measure] - Text extent measurement with an embedded font
//  3. [axis] - Layout engine (gridline search, dilution, real estate, collisions)
//  4. [render] - Output sinks (SVG, PNG)
//  5. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through timegrid:
//
//	Window + Scale + Budget
//	         ↓
//	    [duration] package (granularity choice, aligned enumeration)
//	         ↓
//	    [axis] package (gridlines → labels → dilution → collisions)
//	         ↓
//	    [render] package (SVG/PNG output)
//
// # Quick Start
//
// Lay out a date axis and render it:
//
//	import (
//	    "github.com/timegrid/timegrid/pkg/axis"
//	    "github.com/timegrid/timegrid/pkg/measure"
//	    "github.com/timegrid/timegrid/pkg/render"
//	)
//
//	face, _ := measure.NewFace()
//	res, _ := axis.Layout(axis.Options{
//	    Window:   axis.Window{From: from, To: to},
//	    Scale:    scale,
//	    Measurer: face,
//	    Budget:   80,
//	})
//	svg := render.RenderSVG(res)
//
// # Main Packages
//
// [duration] - Mixed-unit calendar durations kept in separate slots so month
// and year arithmetic stays exact across DST transitions and leap years.
// Provides Floor/Ceil alignment, week flooring, nice-number rounding, and
// an allocation-free Range enumerator with Peek.
//
// [measure] - Text measurement against the embedded Go Regular font, plus a
// fixed-cell measurer for terminal output. The render sinks draw with the
// same face the engine measures with.
//
// [axis] - The layout engine. SearchGridlines walks candidate multiples from
// finest to coarsest, Dilute thins labels by alternation and skipping,
// Allocate divides the pixel budget across axis components, and
// ResolveCollisions hides optional labels that overlap. Layout orchestrates
// the whole run with coarser-unit retries and a slant fallback.
//
// [render] - SVG and PNG sinks consuming an axis.Result as-is. The sinks
// never reflow text; placement decisions belong to the engine.
//
// [observability] - Hook registry for layout and render events with no-op
// defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/axis/...       # Specific package
//	go test -run Example         # Examples only
//
// [duration]: https://pkg.go.dev/github.com/timegrid/timegrid/pkg/duration
// [measure]: https://pkg.go.dev/github.com/timegrid/timegrid/pkg/measure
// [axis]: https://pkg.go.dev/github.com/timegrid/timegrid/pkg/axis
// [render]: https://pkg.go.dev/github.com/timegrid/timegrid/pkg/render
// [observability]: https://pkg.go.dev/github.com/timegrid/timegrid/pkg/observability
package pkg
