//go:build cgo

package window

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

var specialKeys = []struct {
	key  ebiten.Key
	code sketch.KeyCode
}{
	{ebiten.KeyBackspace, sketch.KeyBackspace},
	{ebiten.KeyDelete, sketch.KeyDelete},
	{ebiten.KeyArrowLeft, sketch.KeyLeft},
	{ebiten.KeyArrowRight, sketch.KeyRight},
	{ebiten.KeyHome, sketch.KeyHome},
	{ebiten.KeyEnd, sketch.KeyEnd},
	{ebiten.KeyEnter, sketch.KeyEnter},
	{ebiten.KeyEscape, sketch.KeyEscape},
	{ebiten.KeyTab, sketch.KeyTab},
}

var ctrlKeys = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyA, 'a'},
	{ebiten.KeyC, 'c'},
	{ebiten.KeyX, 'x'},
	{ebiten.KeyV, 'v'},
}

type game struct {
	ctx  context.Context
	opts Options
	sk   sketch.Sketch

	// clipboard results come back here from the request goroutines
	clip chan clipboard.Result
	ptr  pointerState

	frame *ebiten.Image
	dirty bool
	w, h  int
	scale float64
}

// Run opens the window and blocks until it is closed or ctx ends.
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return err
	}
	g := &game{
		ctx:   ctx,
		opts:  opts,
		sk:    opts.Sketch,
		clip:  make(chan clipboard.Result, 8),
		dirty: true,
		scale: 1,
	}

	info := g.sk.Info()
	ebiten.SetWindowTitle(info.Title + " · sketchpad")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	log.Info(log.CatWindow, "Opening window", "sketch", info.Name, "width", opts.Width, "height", opts.Height)

	err := ebiten.RunGame(g)
	if g.frame != nil {
		g.frame.Deallocate()
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	g.drainClipboard()
	g.pointer()
	g.keys()
	if g.sk.Tick(time.Now()) {
		g.dirty = true
	}
	ebiten.SetCursorShape(cursorShape(g.sk.Cursor()))
	return nil
}

func (g *game) drainClipboard() {
	for {
		select {
		case res := <-g.clip:
			if clipboard.Apply(res) {
				g.dirty = true
			}
		default:
			return
		}
	}
}

func (g *game) pointer() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx)/g.scale, float64(cy)/g.scale
	events := g.ptr.next(x, y,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	for _, ev := range events {
		if g.sk.Pointer(ev) {
			g.dirty = true
		}
	}
}

func (g *game) keys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	var events []sketch.KeyEvent
	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyE) {
			g.export()
		}
		for _, k := range ctrlKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				events = append(events, sketch.Ctrl(k.r))
			}
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			events = append(events, sketch.Rune(r))
		}
	}
	for _, k := range specialKeys {
		if repeats(inpututil.KeyPressDuration(k.key)) {
			events = append(events, sketch.KeyEvent{Code: k.code, Ctrl: ctrl, Shift: shift})
		}
	}

	for _, ev := range events {
		reqs, redraw := g.sk.Key(ev)
		if redraw {
			g.dirty = true
		}
		clipboard.Go(g.opts.Clipboard, reqs, g.clip)
	}
}

// export snapshots on the game goroutine and writes the PNG off it.
func (g *game) export() {
	ex := g.opts.Exporter
	if ex == nil {
		log.Warn(log.CatWindow, "Export requested without an exporter")
		return
	}
	c, err := ex.Snapshot(g.sk)
	g.dirty = true
	if err != nil {
		log.ErrorErr(log.CatWindow, "Snapshot failed", err)
		return
	}
	info := g.sk.Info()
	go func() {
		_, _ = ex.Write(g.ctx, info.Name, info.ExportBase, c)
	}()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		g.render()
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) render() {
	c := canvas.New(g.w, g.h, canvas.WithPixelRatio(g.scale))
	defer func() { _ = c.Close() }()
	g.sk.Render(c)

	if g.frame != nil {
		g.frame.Deallocate()
	}
	g.frame = ebiten.NewImageFromImage(c.Image())
	g.dirty = false
}

// Layout renders at device resolution; the sketch works in window units.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if s <= 0 {
		s = 1
	}
	if outsideWidth != g.w || outsideHeight != g.h || s != g.scale {
		g.w, g.h, g.scale = max(outsideWidth, 1), max(outsideHeight, 1), s
		g.dirty = true
		log.Debug(log.CatWindow, "Window resized", "width", g.w, "height", g.h, "scale", s)
	}
	return int(float64(g.w) * s), int(float64(g.h) * s)
}

func cursorShape(c sketch.Cursor) ebiten.CursorShapeType {
	switch c {
	case sketch.CursorPointer:
		return ebiten.CursorShapePointer
	case sketch.CursorText:
		return ebiten.CursorShapeText
	}
	return ebiten.CursorShapeDefault
}
