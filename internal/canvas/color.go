package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var _ color.Color = Color{}

// Black and White are used for icon fallbacks and tests.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// ParseColor accepts #RGB, #RRGGBB and #RRGGBBAA (case-insensitive, the
// leading # optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := 1.0
	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("invalid colour %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustParse is ParseColor for compile-time constants.
func MustParse(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValidHex reports whether s parses as a colour.
func IsValidHex(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

// RGBA implements color.Color (alpha-premultiplied, 16 bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	r = uint32(clamp01(c.R)*clamp01(c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

// Hex formats the colour as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) Hex() string {
	s := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
	if c.A >= 1 {
		return s
	}
	return fmt.Sprintf("%s%02x", s, uint8(math.Round(clamp01(c.A)*255)))
}

// WithAlpha replaces the alpha channel with a/255, the way "#RRGGBB" + "20"
// does in CSS.
func (c Color) WithAlpha(a uint8) Color {
	c.A = float64(a) / 255
	return c
}

// Fade multiplies the alpha channel by f.
func (c Color) Fade(f float64) Color {
	c.A = clamp01(c.A * f)
	return c
}

// Lerp blends linearly in RGB towards o.
func (c Color) Lerp(o Color, t float64) Color {
	t = clamp01(t)
	rgb := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t)
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: c.A + (o.A-c.A)*t}
}

// Luminance returns relative luminance, used to pick readable overlays.
func (c Color) Luminance() float64 {
	_, _, l := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hsl()
	return l
}

func (c Color) gg() gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
