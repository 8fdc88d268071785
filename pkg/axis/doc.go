// Package axis implements gridline selection and label layout for
// date/time-valued chart axes.
//
// Given a view window (an epoch-millisecond range), a monotonic
// value-to-pixel scale and a set of typed options, [Layout] decides
// which calendar granularity and spacing multiple to draw gridlines at,
// how to format and thin out the tick labels so they do not overlap,
// and how to split a fixed vertical pixel budget among the axis-region
// elements (tick label lines, title, legend, color bar).
//
// The engine is a pure function of its inputs: one call per redraw, no
// internal state across runs, deterministic output for identical input.
//
// # Passes
//
// A layout run threads an owned result through a fixed pass order:
//
//  1. gridline candidate search over spacing multiples ([SearchGridlines])
//  2. label format selection coupled with the dilution search ([Dilute])
//  3. real-estate allocation of the vertical budget ([Allocate])
//  4. minor gridline / notch composition
//  5. collision resolution over the positioned labels ([ResolveCollisions])
//
// Infeasible outcomes (no multiple fits, truncation that cannot be
// cleared, a fatal label collision) are ordinary results, not errors:
// the orchestrator retries at most twice at coarser granularity, then
// degrades to an unlabeled axis. Errors are reserved for caller bugs
// such as a nil scale or an inverted window.
package axis
