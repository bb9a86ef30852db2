package textfields

import (
	"math"

	"github.com/zjrosen/sketchpad/internal/canvas"
)

// box is the geometry of one field.
type box struct {
	x, y, w, h   float64
	textX, textY float64
	labelY       float64
	helperX      float64
	helperY      float64
	// trailing icon centre
	iconCX, iconCY float64
}

func (s *Sketch) fieldHeight() float64 {
	return float64(s.cfg.FontSize) * 3.5
}

func (s *Sketch) box(i int) box {
	c := &s.cfg
	n := float64(c.FieldCount)
	w := float64(c.ScreenSize)
	h := s.fieldHeight()
	gap := float64(c.FieldGap)
	pad := float64(c.FieldPadding)

	total := n*h + (n-1)*gap
	x := s.view.W/2 - w/2
	y := s.view.H/2 - total/2 + float64(i)*(h+gap)

	b := box{x: x, y: y, w: w, h: h}
	b.textX = x + pad
	if c.ShowLeadingIcon {
		b.textX += iconSize + iconGap
	}
	b.textY = y + h/2
	if c.ShowLabel {
		b.textY += float64(c.FontSize) / 4
	}
	b.labelY = y + pad/6 + float64(c.LabelSize)
	b.helperX = x + pad
	b.helperY = y + h + pad
	b.iconCX = x + w - pad - iconSize/2
	b.iconCY = y + h/2
	return b
}

func (b box) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

func (b box) onIcon(x, y float64) bool {
	return math.Hypot(x-b.iconCX, y-b.iconCY) < iconSize/2
}

// hitTest returns the field under (x, y) and whether the point is on its
// trailing icon.
func (s *Sketch) hitTest(x, y float64) (field int, icon bool) {
	for i := 0; i < s.cfg.FieldCount; i++ {
		b := s.box(i)
		if s.cfg.ShowTrailingIcon && b.onIcon(x, y) {
			return i, true
		}
		if b.contains(x, y) {
			return i, false
		}
	}
	return -1, false
}

// prefixWidths returns the x advance before each grapheme boundary.
func prefixWidths(parts []string, size float64) []float64 {
	out := make([]float64, len(parts)+1)
	prefix := ""
	for i, p := range parts {
		prefix += p
		out[i+1] = canvas.MeasureText(prefix, size)
	}
	return out
}

// offsetAt maps an x coordinate to the nearest grapheme boundary in field i.
func (s *Sketch) offsetAt(i int, x float64) int {
	parts := clusters(s.cfg.Fields[i].Value)
	widths := prefixWidths(parts, float64(s.cfg.FontSize))
	rel := x - s.box(i).textX

	best := 0
	for k, w := range widths {
		if math.Abs(w-rel) < math.Abs(widths[best]-rel) {
			best = k
		}
	}
	return best
}

// targetRadius is where the corner radius of field i is heading.
func (s *Sketch) targetRadius(i int) float64 {
	st := s.visualState(i)
	if st == StateFocused {
		return float64(s.cfg.FocusedRadius)
	}
	if s.cfg.Pill {
		return s.fieldHeight() / 2
	}
	return float64(s.cfg.CornerRadius)
}
