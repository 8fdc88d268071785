package measure

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/timegrid/timegrid/pkg/errors"
)

// Face measures text against the embedded Go Regular font. Results are
// memoized per (text, font size) pair, so repeated format attempts over
// the same candidate labels cost one face lookup each.
//
// Face is safe for concurrent use.
type Face struct {
	fnt *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
	cache map[faceKey]Size
}

type faceKey struct {
	text string
	size float64
}

// NewFace parses the embedded font and returns a ready Measurer.
func NewFace() (*Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingFont, err, "parse embedded font")
	}
	return &Face{
		fnt:   fnt,
		faces: make(map[float64]font.Face),
		cache: make(map[faceKey]Size),
	}, nil
}

// Measure implements Measurer.
func (f *Face) Measure(text string, style TextStyle) Size {
	size := style.FontSize
	if size <= 0 {
		size = 12
	}
	key := faceKey{text: text, size: size}

	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.cache[key]; ok {
		return s
	}

	face, err := f.faceLocked(size)
	if err != nil {
		// Face creation over a successfully parsed font only fails on
		// absurd options; fall back to fixed advances rather than
		// poisoning the layout run.
		s := Fixed{}.Measure(text, style)
		f.cache[key] = s
		return s
	}

	metrics := face.Metrics()
	s := Size{
		W: fixedToFloat(font.MeasureString(face, text)),
		H: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
	f.cache[key] = s
	return s
}

// FontFace returns the font.Face for a size, created on first use and
// cached. Render sinks draw with the measuring font so text extents on
// the canvas match the extents the layout was computed from.
func (f *Face) FontFace(size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faceLocked(size)
}

func (f *Face) faceLocked(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingFont, err, "create %gpx face", size)
	}
	f.faces[size] = face
	return face, nil
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
