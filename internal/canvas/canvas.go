// Package canvas is the raster surface sketches paint on. It wraps a gogpu/gg
// context with the handful of primitives the sketches need and keeps logical
// coordinates independent of the output pixel ratio.
package canvas

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/zjrosen/sketchpad/internal/log"
)

// Align is horizontal text alignment relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Radii holds per-corner radii, clockwise from top-left.
type Radii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Uniform returns equal radii on every corner.
func Uniform(r float64) Radii {
	return Radii{r, r, r, r}
}

// TopBottom returns radius top on the upper corners and bottom on the lower.
func TopBottom(top, bottom float64) Radii {
	return Radii{top, top, bottom, bottom}
}

// clamp limits every radius to [0, min(w,h)/2].
func (r Radii) clamp(w, h float64) Radii {
	limit := math.Max(0, math.Min(w, h)/2)
	c := func(v float64) float64 { return math.Max(0, math.Min(v, limit)) }
	return Radii{c(r.TopLeft), c(r.TopRight), c(r.BottomRight), c(r.BottomLeft)}
}

// Canvas is a drawing surface. The zero value is not usable; call New.
type Canvas struct {
	dc     *gg.Context
	width  float64
	height float64
	ratio  float64
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithPixelRatio renders at r device pixels per logical unit.
func WithPixelRatio(r float64) Option {
	return func(c *Canvas) {
		if r > 0 {
			c.ratio = r
		}
	}
}

// New creates a w×h (logical) canvas.
func New(w, h int, opts ...Option) *Canvas {
	c := &Canvas{width: float64(max(w, 1)), height: float64(max(h, 1)), ratio: 1}
	for _, opt := range opts {
		opt(c)
	}
	pw := int(math.Ceil(c.width * c.ratio))
	ph := int(math.Ceil(c.height * c.ratio))
	c.dc = gg.NewContext(pw, ph)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	return c
}

// Width is the logical width.
func (c *Canvas) Width() float64 { return c.width }

// Height is the logical height.
func (c *Canvas) Height() float64 { return c.height }

// PixelRatio is the device pixels per logical unit.
func (c *Canvas) PixelRatio() float64 { return c.ratio }

// Size returns the device pixel dimensions.
func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

// Background fills the whole canvas with col.
func (c *Canvas) Background(col Color) {
	c.dc.ClearWithColor(col.gg())
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s := c.ratio
	c.dc.DrawRectangle(x*s, y*s, w*s, h*s)
	c.fill(col)
}

// FillRoundRect fills a rectangle with independent corner radii.
func (c *Canvas) FillRoundRect(x, y, w, h float64, r Radii, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.roundRectPath(x, y, w, h, r)
	c.fill(col)
}

// StrokeRoundRect outlines a rectangle with independent corner radii.
func (c *Canvas) StrokeRoundRect(x, y, w, h float64, r Radii, width float64, col Color) {
	if w <= 0 || h <= 0 || width <= 0 {
		return
	}
	c.roundRectPath(x, y, w, h, r)
	c.stroke(width, col)
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

func (c *Canvas) roundRectPath(x, y, w, h float64, r Radii) {
	s := c.ratio
	r = r.clamp(w, h)
	x, y, w, h = x*s, y*s, w*s, h*s
	tl, tr, br, bl := r.TopLeft*s, r.TopRight*s, r.BottomRight*s, r.BottomLeft*s

	dc := c.dc
	dc.ClearPath()
	dc.MoveTo(x+tl, y)
	dc.LineTo(x+w-tr, y)
	if tr > 0 {
		dc.CubicTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	dc.LineTo(x+w, y+h-br)
	if br > 0 {
		dc.CubicTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	dc.LineTo(x+bl, y+h)
	if bl > 0 {
		dc.CubicTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	dc.LineTo(x, y+tl)
	if tl > 0 {
		dc.CubicTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	dc.ClosePath()
}

// FillCircle fills a circle of radius r centred on (x, y).
func (c *Canvas) FillCircle(x, y, r float64, col Color) {
	if r <= 0 {
		return
	}
	s := c.ratio
	c.dc.ClearPath()
	c.dc.DrawCircle(x*s, y*s, r*s)
	c.fill(col)
}

// StrokeCircle outlines a circle of radius r centred on (x, y).
func (c *Canvas) StrokeCircle(x, y, r, width float64, col Color) {
	if r <= 0 || width <= 0 {
		return
	}
	s := c.ratio
	c.dc.ClearPath()
	c.dc.DrawCircle(x*s, y*s, r*s)
	c.stroke(width, col)
}

// Line strokes a segment.
func (c *Canvas) Line(x1, y1, x2, y2, width float64, col Color) {
	if width <= 0 {
		return
	}
	s := c.ratio
	c.dc.ClearPath()
	c.dc.MoveTo(x1*s, y1*s)
	c.dc.LineTo(x2*s, y2*s)
	c.stroke(width, col)
}

// MeasureText returns the logical advance width of s at size.
func (c *Canvas) MeasureText(s string, size float64) float64 {
	return MeasureText(s, size)
}

// MeasureText measures s at size logical units without a canvas.
func MeasureText(s string, size float64) float64 {
	if s == "" {
		return 0
	}
	f := face(size)
	if f == nil {
		return 0
	}
	return f.Advance(s)
}

// Text draws s vertically centred on y, aligned horizontally on x.
func (c *Canvas) Text(s string, x, y, size float64, align Align, col Color) {
	if s == "" || col.A <= 0 {
		return
	}
	px := size * c.ratio
	f := face(px)
	if f == nil {
		return
	}

	w := f.Advance(s)
	left := x * c.ratio
	switch align {
	case AlignCenter:
		left -= w / 2
	case AlignRight:
		left -= w
	}

	m := f.Metrics()
	baseline := y*c.ratio + (m.Ascent-m.Descent)/2

	c.dc.SetFont(f)
	c.dc.SetColor(col)
	c.dc.DrawString(s, left, baseline)
}

func (c *Canvas) fill(col Color) {
	c.dc.SetColor(col)
	if err := c.dc.Fill(); err != nil {
		log.ErrorErr(log.CatRender, "fill failed", err)
	}
}

func (c *Canvas) stroke(width float64, col Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width * c.ratio)
	if err := c.dc.Stroke(); err != nil {
		log.ErrorErr(log.CatRender, "stroke failed", err)
	}
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving png %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
