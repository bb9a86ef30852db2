// Package window shows one sketch in a native window with real pointer and
// keyboard input. The ebiten front-end needs cgo; other builds get a stub
// that reports the missing support.
package window

import (
	"errors"

	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/export"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

// ErrUnsupported is returned by Run in builds without cgo.
var ErrUnsupported = errors.New("window mode requires cgo (build with CGO_ENABLED=1)")

// Options configure the window.
type Options struct {
	Sketch    sketch.Sketch
	Exporter  *export.Exporter
	Clipboard clipboard.Clipboard
	Width     int
	Height    int
	// TPS is the update rate; Tick runs once per update.
	TPS int
}

// DefaultWidth and DefaultHeight size the window when Options leave them
// zero.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultTPS    = 60
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.TPS <= 0 {
		o.TPS = DefaultTPS
	}
	return o
}

func (o Options) validate() error {
	if o.Sketch == nil {
		return errors.New("window: no sketch")
	}
	return nil
}

// pointerState turns polled button and position samples into pointer
// events.
type pointerState struct {
	down   bool
	x, y   float64
	inited bool
}

// next returns the events for one sample. justPressed and justReleased are
// the primary button transitions since the previous sample.
func (p *pointerState) next(x, y float64, justPressed, justReleased bool) []sketch.PointerEvent {
	var out []sketch.PointerEvent
	moved := !p.inited || x != p.x || y != p.y
	p.x, p.y, p.inited = x, y, true

	if moved && !justPressed {
		kind := sketch.PointerMove
		if p.down {
			kind = sketch.PointerDrag
		}
		out = append(out, sketch.PointerEvent{Kind: kind, X: x, Y: y})
	}
	if justPressed {
		p.down = true
		out = append(out, sketch.PointerEvent{Kind: sketch.PointerDown, X: x, Y: y})
	}
	if justReleased && p.down {
		p.down = false
		out = append(out, sketch.PointerEvent{Kind: sketch.PointerUp, X: x, Y: y})
	}
	return out
}

// repeatDelay and repeatInterval are in updates.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// repeats reports whether a key held for d updates should fire.
func repeats(d int) bool {
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}
