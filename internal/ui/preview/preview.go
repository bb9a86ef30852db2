// Package preview draws a sketch into the terminal. The canvas is rendered at
// scale pixels per cell column, box-filtered down to one pixel per half cell
// and printed as "▀" glyphs with the top pixel as foreground and the bottom
// one as background.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	xdraw "golang.org/x/image/draw"

	"github.com/zjrosen/sketchpad/internal/cachemanager"
	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

// Zoom limits for the scale (canvas pixels per terminal column).
const (
	MinScale = 2.0
	MaxScale = 16.0
)

// box averages every source pixel under a destination pixel. Kernel support
// widens with the downscale factor, so 0.5 covers exactly one footprint.
var box = &xdraw.Kernel{Support: 0.5, At: func(float64) float64 { return 1 }}

// asciiRamp shades cells by luminance when the terminal has no colour.
const asciiRamp = " .:-=+*#%@"

// Renderer turns sketches into terminal frames and caches the result.
type Renderer struct {
	profile termenv.Profile
	frames  cachemanager.CacheManager[string]

	mu sync.Mutex
	// laidOut is the geometry each sketch last rendered at. Sketches lay
	// out pointer hit areas from their last render, so a cached frame is
	// only served while it still matches.
	laidOut map[sketch.Sketch]string
}

// New creates a renderer for the given colour profile.
func New(profile termenv.Profile) *Renderer {
	return &Renderer{
		profile: profile,
		frames: cachemanager.NewInMemoryCacheManager[string](
			"preview-frames", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		laidOut: make(map[sketch.Sketch]string),
	}
}

// Profile is the colour profile frames are encoded for.
func (r *Renderer) Profile() termenv.Profile { return r.profile }

// CanvasSize is the logical canvas size shown in a cols x rows pane.
func CanvasSize(cols, rows int, scale float64) (w, h int) {
	return max(int(float64(cols)*scale), 1), max(int(float64(rows*2)*scale), 1)
}

// ToCanvas maps a cell inside the pane to the canvas point at its centre.
func ToCanvas(col, row int, scale float64) (x, y float64) {
	return (float64(col) + 0.5) * scale, (float64(row) + 0.5) * 2 * scale
}

// ClampScale keeps a zoom level within limits.
func ClampScale(s float64) float64 {
	return min(max(s, MinScale), MaxScale)
}

// Render draws sk into a cols x rows frame. key identifies the sketch state;
// callers change it whenever the sketch needs a redraw, and an unchanged key
// with the same geometry is served from the cache.
func (r *Renderer) Render(sk sketch.Sketch, key string, cols, rows int, scale float64) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	geometry := fmt.Sprintf("%dx%d|%g", cols, rows, scale)
	cacheKey := fmt.Sprintf("%s|%s|%d", key, geometry, r.profile)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.laidOut[sk] == geometry {
		if frame, ok := r.frames.Get(cacheKey); ok {
			return frame
		}
	}

	w, h := CanvasSize(cols, rows, scale)
	c := canvas.New(w, h)
	defer func() { _ = c.Close() }()
	sk.Render(c)
	r.laidOut[sk] = geometry

	frame := r.Encode(Downscale(c.Image(), cols, rows*2))
	r.frames.Set(cacheKey, frame, cachemanager.DefaultExpiration)
	log.Debug(log.CatRender, "Rendered preview frame", "sketch", sk.Info().Name, "cols", cols, "rows", rows, "scale", scale)
	return frame
}

// Forget marks sk as laid out elsewhere, e.g. by an export snapshot, so its
// next Render draws it again.
func (r *Renderer) Forget(sk sketch.Sketch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.laidOut, sk)
}

// Invalidate drops every cached frame, e.g. after the colour profile of the
// theme changes.
func (r *Renderer) Invalidate() {
	r.frames.Flush()
}

// Downscale box-filters src to w x h pixels.
func Downscale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	box.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Encode prints img two pixel rows per line. img height should be even; a
// trailing odd row is dropped.
func (r *Renderer) Encode(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top, bottom := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
			sb.WriteString(r.cell(top, bottom))
		}
	}
	return sb.String()
}

func (r *Renderer) cell(top, bottom color.RGBA) string {
	if r.profile == termenv.Ascii {
		l := (luminance(top) + luminance(bottom)) / 2
		i := min(int(l*float64(len(asciiRamp))), len(asciiRamp)-1)
		return string(asciiRamp[i])
	}
	return termenv.String("▀").
		Foreground(r.profile.FromColor(top)).
		Background(r.profile.FromColor(bottom)).
		String()
}

func luminance(c color.RGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// Hit reports whether a point in pane cells lies on the canvas.
func Hit(col, row, cols, rows int) bool {
	return col >= 0 && row >= 0 && col < cols && row < rows
}

// PointerAt converts a pane cell into a pointer event on the canvas.
func PointerAt(kind sketch.PointerKind, col, row int, scale float64) sketch.PointerEvent {
	x, y := ToCanvas(col, row, scale)
	return sketch.PointerEvent{Kind: kind, X: x, Y: y}
}
