package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/timegrid/timegrid/pkg/axis"
	"github.com/timegrid/timegrid/pkg/observability"
)

const notchLength = 4.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      float64
	height     float64
	axisY      float64
	background string
	title      string
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithAxisY sets the axis baseline; gridlines run from the canvas top
// down to it and labels hang below it.
func WithAxisY(y float64) SVGOption { return func(r *svgRenderer) { r.axisY = y } }

// WithBackground fills the canvas with a solid color first.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithTitle draws an axis title centered under the labels.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG writes the axis decoration as a standalone SVG document.
func RenderSVG(res axis.Result, opts ...SVGOption) []byte {
	started := time.Now()
	observability.Render().OnRenderStart("svg")

	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	if r.background != "" {
		fmt.Fprintf(&buf, `<rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			r.width, r.height, escape(r.background))
	}

	for _, g := range res.Gridlines {
		if !g.Visible {
			continue
		}
		y0, y1 := 0.0, r.axisY
		if g.Notch {
			y0, y1 = r.axisY, r.axisY+notchLength
		}
		fmt.Fprintf(&buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n",
			g.Coord, y0, g.Coord, y1, strokeAttrs(g.Brush))
	}

	fmt.Fprintf(&buf, `<line x1="0" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333333" stroke-width="1"/>`+"\n",
		r.axisY, r.width, r.axisY)

	var maxLabelY float64
	for _, t := range res.Texts {
		if !t.Visible {
			continue
		}
		size := t.Block.Style.FontSize
		if size <= 0 {
			size = 11
		}
		y := r.axisY + notchLength + size + float64(t.Block.Row)*size*1.2
		if y > maxLabelY {
			maxLabelY = y
		}
		if t.Block.Angle != 0 {
			fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="end" transform="rotate(-%.1f %.2f %.2f)">%s</text>`+"\n",
				t.Coord, y, size, t.Block.Angle, t.Coord, y, escape(t.Block.Text))
			continue
		}
		fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="middle">%s</text>`+"\n",
			t.Coord, y, size, escape(t.Block.Text))
	}

	if r.title != "" {
		fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-size="12" text-anchor="middle">%s</text>`+"\n",
			r.width/2, maxLabelY+20, escape(r.title))
	}

	buf.WriteString("</svg>\n")
	observability.Render().OnRenderComplete("svg", buf.Len(), time.Since(started), nil)
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: 800, height: 400, axisY: 340}
	for _, opt := range opts {
		opt(&r)
	}
	if r.axisY <= 0 || r.axisY > r.height {
		r.axisY = r.height * 0.85
	}
	return r
}

func strokeAttrs(b *axis.Brush) string {
	if b == nil {
		return ` stroke="#cccccc" stroke-width="1"`
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, ` stroke="%s" stroke-width="%.1f"`, escape(b.Stroke), b.Width)
	if len(b.Dash) > 0 {
		parts := make([]string, len(b.Dash))
		for i, d := range b.Dash {
			parts[i] = fmt.Sprintf("%.1f", d)
		}
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return sb.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }
