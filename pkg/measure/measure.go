// Package measure provides text measurement for axis label layout.
//
// The layout engine only ever needs the pixel extent of a candidate
// label; it never shapes or draws text itself. [Measurer] is that
// contract. [NewFace] returns a real implementation backed by the
// embedded Go Regular font; [Fixed] is a deterministic fixed-advance
// implementation for tests and terminal previews.
package measure

import "unicode/utf8"

// Size is a measured pixel extent.
type Size struct {
	W, H float64
}

// TextStyle carries the style inputs that affect measurement. It is
// treated as an opaque descriptor by the layout engine and attached to
// output records unchanged.
type TextStyle struct {
	// FontSize is the em size in pixels.
	FontSize float64
}

// Measurer maps a string and a style to its pixel extent. An
// implementation must be deterministic and side-effect free for a given
// (text, style) pair; it is called once per candidate label per format
// attempt, so expensive implementations should memoize.
type Measurer interface {
	Measure(text string, style TextStyle) Size
}

// Fixed is a fixed-advance Measurer: every rune is CharWidth wide and
// every line LineHeight tall. Zero fields derive from the style's font
// size (0.6em advance, 1.2em line height).
//
// Fixed is what the engine's tests use; it makes layout outcomes
// reproducible without a font stack.
type Fixed struct {
	CharWidth  float64
	LineHeight float64
}

// Measure implements Measurer.
func (f Fixed) Measure(text string, style TextStyle) Size {
	cw, lh := f.CharWidth, f.LineHeight
	if cw == 0 {
		cw = 0.6 * style.FontSize
	}
	if lh == 0 {
		lh = 1.2 * style.FontSize
	}
	return Size{W: cw * float64(utf8.RuneCountInString(text)), H: lh}
}
