// Package radio is a grid of radio-button rows, one accent colour per row.
// Each row has exactly one selected button; selection animates the inner dot.
package radio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

const Name = "radio"

const description = `# Radio Buttons

A 10×10 grid of radio buttons. Each row is its own group: selecting a button
deselects the rest of its row, and selecting the active one does nothing.

- **hover** shows a tinted halo
- **r** picks a new random selection for every row
- **Button Spacing** sets the distance between button centres
`

// GridSize is the number of rows and columns.
const GridSize = 10

// Palette is the default row colour sequence.
var Palette = []string{
	"#E53935", "#FF5722", "#FF9800", "#FFC107", "#FFEB3B",
	"#8BC34A", "#4CAF50", "#00ACC1", "#2196F3", "#673AB7",
}

const (
	haloScale = 1.4
	haloAlpha = 0x20
	snapEps   = 0.01
)

// Row is the per-row override record.
type Row struct {
	Color canvas.Color
}

// Config is the parameter record.
type Config struct {
	ScreenSize     int
	RadioSize      int
	RingThickness  float64
	InnerSize      int
	Spacing        int
	AnimationSpeed float64

	Background canvas.Color
	Inactive   canvas.Color
	Rows       [GridSize]Row
}

func DefaultConfig() Config {
	c := Config{
		ScreenSize:     850,
		RadioSize:      20,
		RingThickness:  2.4,
		InnerSize:      10,
		Spacing:        100,
		AnimationSpeed: 0.2,
		Background:     canvas.MustParse("#F5F5F5"),
		Inactive:       canvas.MustParse("#747775"),
	}
	for i := range c.Rows {
		c.Rows[i].Color = canvas.MustParse(Palette[i%len(Palette)])
	}
	return c
}

type Sketch struct {
	cfg  Config
	set  *params.Set
	rng  *rand.Rand
	view sketch.Viewport

	selected [GridSize]int
	anim     [GridSize][GridSize]float64

	hoverRow, hoverCol int
}

var _ sketch.Sketch = (*Sketch)(nil)

func New(opts sketch.Options) sketch.Sketch {
	s := &Sketch{cfg: DefaultConfig(), rng: opts.Rand(), hoverRow: -1, hoverCol: -1}
	c := &s.cfg

	s.set = params.NewSet("Radio Button Controls")
	s.set.Group("Style",
		params.Int(&c.ScreenSize, "screenSize", "Grid Size", 500, 1200, 10),
		params.Int(&c.RadioSize, "radioSize", "Radio Size", 16, 36, 1),
		params.Float(&c.RingThickness, "outerRingThickness", "Ring Thickness", 1, 5, 0.5),
		params.Int(&c.InnerSize, "innerCircleSize", "Inner Circle Size", 6, 16, 1),
		params.Int(&c.Spacing, "spacing", "Button Spacing", 50, 120, 5),
		params.Float(&c.AnimationSpeed, "animationSpeed", "Animation Speed", 0.05, 0.5, 0.05),
	)
	s.set.Group("Colors",
		params.Color(&c.Background, "backgroundColor", "Background"),
		params.Color(&c.Inactive, "inactiveColor", "Inactive Ring"),
	)
	for i := range c.Rows {
		s.set.Group("Rows", params.Color(&c.Rows[i].Color, fmt.Sprintf("row%dColor", i+1), fmt.Sprintf("Row %d", i+1)))
	}

	s.Randomize()
	return s
}

func (s *Sketch) Info() sketch.Info {
	return sketch.Info{Name: Name, Title: "Radio Buttons", Description: description, ExportBase: "radio-buttons-component"}
}

func (s *Sketch) Params() *params.Set { return s.set }
func (s *Sketch) Config() Config { return s.cfg }

// Selected returns the selected column of row.
func (s *Sketch) Selected(row int) int { return s.selected[row] }

// Active reports whether the button at (row, col) is selected.
func (s *Sketch) Active(row, col int) bool { return s.selected[row] == col }

// Randomize picks one random column per row and jumps animations to match.
func (s *Sketch) Randomize() {
	for row := range s.selected {
		s.selected[row] = s.rng.IntN(GridSize)
		for col := range s.anim[row] {
			s.anim[row][col] = 0
		}
		s.anim[row][s.selected[row]] = 1
	}
}

// Select makes col the only selected button in row. Selecting the already
// selected button is a no-op and returns false.
func (s *Sketch) Select(row, col int) bool {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize || s.selected[row] == col {
		return false
	}
	s.selected[row] = col
	log.Debug(log.CatInput, "radio selected", "row", row, "col", col)
	return true
}

// spacing is the distance between neighbouring centres. The grid may
// overflow a small canvas.
func (s *Sketch) spacing() float64 {
	return float64(s.cfg.Spacing)
}

func (s *Sketch) center(row, col int) (float64, float64) {
	sp := s.spacing()
	extent := GridSize * sp
	x0 := s.view.W/2 - extent/2 + sp/2
	y0 := s.view.H/2 - extent/2 + sp/2
	return x0 + float64(col)*sp, y0 + float64(row)*sp
}

// buttonAt returns the button whose centre is nearest (x, y) within the
// radio radius.
func (s *Sketch) buttonAt(x, y float64) (int, int) {
	best := math.Inf(1)
	br, bc := -1, -1
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			cx, cy := s.center(row, col)
			if d := math.Hypot(x-cx, y-cy); d < float64(s.cfg.RadioSize) && d < best {
				best, br, bc = d, row, col
			}
		}
	}
	return br, bc
}

func (s *Sketch) Render(c *canvas.Canvas) {
	s.view.Update(c)
	cfg := &s.cfg
	radius := float64(cfg.RadioSize)

	c.Background(cfg.Background)
	for row := 0; row < GridSize; row++ {
		col := cfg.Rows[row].Color
		for j := 0; j < GridSize; j++ {
			x, y := s.center(row, j)
			a := s.anim[row][j]

			if row == s.hoverRow && j == s.hoverCol {
				c.FillCircle(x, y, radius*haloScale, col.WithAlpha(haloAlpha))
			}

			ring := cfg.Inactive
			if a > 0.5 {
				ring = col
			}
			c.StrokeCircle(x, y, radius, cfg.RingThickness, ring)

			if a > 0 {
				c.FillCircle(x, y, float64(cfg.InnerSize)*a, col)
			}
		}
	}
}

func (s *Sketch) Pointer(ev sketch.PointerEvent) bool {
	pr, pc := s.hoverRow, s.hoverCol
	s.hoverRow, s.hoverCol = s.buttonAt(ev.X, ev.Y)
	changed := pr != s.hoverRow || pc != s.hoverCol

	if ev.Kind == sketch.PointerDown && s.hoverRow >= 0 {
		changed = s.Select(s.hoverRow, s.hoverCol) || changed
	}
	return changed
}

func (s *Sketch) Key(ev sketch.KeyEvent) ([]clipboard.Request, bool) {
	if ev.Code == sketch.KeyRune && !ev.Ctrl && (ev.Rune == 'r' || ev.Rune == 'R') {
		s.Randomize()
		return nil, true
	}
	return nil, false
}

// Tick eases every inner dot toward its target state.
func (s *Sketch) Tick(time.Time) bool {
	moved := false
	for row := range s.anim {
		for col := range s.anim[row] {
			target := 0.0
			if s.selected[row] == col {
				target = 1
			}
			next, changed := sketch.Lerp(s.anim[row][col], target, s.cfg.AnimationSpeed, snapEps)
			s.anim[row][col] = next
			moved = moved || changed
		}
	}
	return moved
}

func (s *Sketch) Cursor() sketch.Cursor {
	if s.hoverRow >= 0 {
		return sketch.CursorPointer
	}
	return sketch.CursorDefault
}

func (s *Sketch) Reset() {
	s.set.Reset()
	s.hoverRow, s.hoverCol = -1, -1
	s.Randomize()
}
