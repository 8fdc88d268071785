package render

import (
	"bytes"
	"time"

	"github.com/fogleman/gg"

	"github.com/timegrid/timegrid/pkg/axis"
	"github.com/timegrid/timegrid/pkg/errors"
	"github.com/timegrid/timegrid/pkg/measure"
	"github.com/timegrid/timegrid/pkg/observability"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes geometry options through to the scene setup.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the raster scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the axis decoration. Text is drawn with the same
// embedded font the layout engine measures with, so label extents on the
// canvas match the layout's assumptions.
func RenderPNG(res axis.Result, opts ...PNGOption) ([]byte, error) {
	started := time.Now()
	observability.Render().OnRenderStart("png")

	data, err := renderPNG(res, opts...)
	observability.Render().OnRenderComplete("png", len(data), time.Since(started), err)
	return data, err
}

func renderPNG(res axis.Result, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	scene := newSVGRenderer(r.svgOpts...)

	face, err := measure.NewFace()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(int(scene.width*r.scale), int(scene.height*r.scale))
	dc.Scale(r.scale, r.scale)

	if scene.background != "" {
		dc.SetHexColor(scene.background)
	} else {
		dc.SetRGB(1, 1, 1)
	}
	dc.Clear()

	for _, g := range res.Gridlines {
		if !g.Visible {
			continue
		}
		y0, y1 := 0.0, scene.axisY
		if g.Notch {
			y0, y1 = scene.axisY, scene.axisY+notchLength
		}
		applyBrush(dc, g.Brush)
		dc.DrawLine(g.Coord, y0, g.Coord, y1)
		dc.Stroke()
	}

	dc.SetDash()
	dc.SetHexColor("#333333")
	dc.SetLineWidth(1)
	dc.DrawLine(0, scene.axisY, scene.width, scene.axisY)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	var maxLabelY float64
	for _, t := range res.Texts {
		if !t.Visible {
			continue
		}
		size := t.Block.Style.FontSize
		if size <= 0 {
			size = 11
		}
		ff, err := face.FontFace(size)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(ff)

		y := scene.axisY + notchLength + size + float64(t.Block.Row)*size*1.2
		if y > maxLabelY {
			maxLabelY = y
		}
		if t.Block.Angle != 0 {
			dc.Push()
			dc.RotateAbout(gg.Radians(-t.Block.Angle), t.Coord, y)
			dc.DrawStringAnchored(t.Block.Text, t.Coord, y, 1, 0)
			dc.Pop()
			continue
		}
		dc.DrawStringAnchored(t.Block.Text, t.Coord, y, 0.5, 0)
	}

	if scene.title != "" {
		ff, err := face.FontFace(12)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(ff)
		dc.DrawStringAnchored(scene.title, scene.width/2, maxLabelY+20, 0.5, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func applyBrush(dc *gg.Context, b *axis.Brush) {
	if b == nil {
		dc.SetDash()
		dc.SetHexColor("#cccccc")
		dc.SetLineWidth(1)
		return
	}
	if len(b.Dash) > 0 {
		dc.SetDash(b.Dash...)
	} else {
		dc.SetDash()
	}
	color := b.Stroke
	if color == "" {
		color = "#cccccc"
	}
	dc.SetHexColor(color)
	width := b.Width
	if width <= 0 {
		width = 1
	}
	dc.SetLineWidth(width)
}
