// Package sketch defines the contract between a visual-design demo and the
// front-ends that drive it (the TUI playground, the ebiten window and the
// exporter).
//
// A sketch owns its config record and transient input state. Front-ends call
// Render to paint, forward pointer and key events, and call Tick once per
// frame for animations. Pointer coordinates are in the logical space of the
// most recent Render call.
package sketch

import (
	"math/rand/v2"
	"time"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/params"
)

// Info describes a sketch for the sidebar, help overlay and exporter.
type Info struct {
	Name        string // registry key, e.g. "radio"
	Title       string
	Description string // markdown
	ExportBase  string // PNG file name without extension
}

// Sketch is one interactive demo.
type Sketch interface {
	Info() Info
	Params() *params.Set
	Render(c *canvas.Canvas)
	// Pointer handles a pointer event and reports whether a redraw is needed.
	Pointer(ev PointerEvent) bool
	// Key handles a key press. Clipboard work is returned as requests for the
	// front-end to run asynchronously.
	Key(ev KeyEvent) ([]clipboard.Request, bool)
	// Tick advances animations and reports whether a redraw is needed.
	Tick(now time.Time) bool
	Cursor() Cursor
	// Reset restores default parameters and clears input state.
	Reset()
}

// Options are passed to sketch constructors.
type Options struct {
	// Seed makes random initial state reproducible. Zero seeds from the clock.
	Seed uint64
}

// Rand returns the random source for o.
func (o Options) Rand() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Viewport remembers the size of the last render so input handlers can
// rebuild the same layout.
type Viewport struct {
	W, H float64
}

// Update records the canvas size.
func (v *Viewport) Update(c *canvas.Canvas) {
	v.W, v.H = c.Width(), c.Height()
}

// Lerp moves a toward b by t and snaps when within eps. Returns the new value
// and whether it differs from a.
func Lerp(a, b, t, eps float64) (float64, bool) {
	if a == b {
		return a, false
	}
	next := a + (b-a)*t
	if diff := next - b; diff < eps && diff > -eps {
		next = b
	}
	return next, next != a
}

// Truncate shortens s with an ellipsis so it fits maxW at size.
func Truncate(s string, size, maxW float64) string {
	if maxW <= 0 {
		return ""
	}
	if canvas.MeasureText(s, size) <= maxW {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + "…"
		if canvas.MeasureText(t, size) <= maxW {
			return t
		}
	}
	return ""
}
