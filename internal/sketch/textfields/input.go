package textfields

import (
	"time"
	"unicode"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

func (s *Sketch) Pointer(ev sketch.PointerEvent) bool {
	s.sync()
	pf, pi := s.hoverField, s.hoverIcon
	field, onIcon := s.hitTest(ev.X, ev.Y)
	s.hoverField = field
	s.hoverIcon = -1
	if onIcon {
		s.hoverIcon = field
	}
	hoverChanged := pf != s.hoverField || pi != s.hoverIcon

	switch ev.Kind {
	case sketch.PointerDown:
		return s.press(field, onIcon, ev.X) || hoverChanged
	case sketch.PointerDrag:
		if !s.dragging || s.focus < 0 {
			return hoverChanged
		}
		fs := &s.fields[s.focus]
		to := s.offsetAt(s.focus, ev.X)
		if fs.sel.End == to && fs.caret == to {
			return hoverChanged
		}
		fs.sel.End = to
		fs.caret = to
		return true
	case sketch.PointerUp:
		if !s.dragging {
			return hoverChanged
		}
		s.dragging = false
		if s.focus >= 0 {
			fs := &s.fields[s.focus]
			fs.sel = fs.sel.Normalize()
		}
		return true
	}
	return hoverChanged
}

func (s *Sketch) press(field int, onIcon bool, x float64) bool {
	if field >= 0 && s.resolve(field).state == StateDisabled {
		return false
	}

	switch {
	case onIcon:
		if canvas.IconName(s.cfg.TrailingIcon) == canvas.IconClose {
			s.Clear(field)
			return true
		}
		return false
	case field >= 0:
		at := s.offsetAt(field, x)
		s.focus = field
		s.dragging = true
		s.fields[field].sel = Selection{Start: at, End: at}
		s.fields[field].caret = at
		s.blinkReset = true
		log.Debug(log.CatInput, "field focused", "field", field, "offset", at)
		return true
	case s.focus >= 0:
		s.blur()
		return true
	}
	return false
}

func (s *Sketch) blur() {
	if s.focus >= 0 {
		fs := &s.fields[s.focus]
		fs.sel = fs.sel.Normalize()
	}
	s.focus = -1
	s.dragging = false
}

// Clear empties field i and its selection.
func (s *Sketch) Clear(i int) {
	s.cfg.Fields[i].Value = ""
	s.fields[i].sel = Selection{}
	s.fields[i].caret = 0
}

func (s *Sketch) Key(ev sketch.KeyEvent) ([]clipboard.Request, bool) {
	s.sync()
	i := s.focus
	if i < 0 {
		return nil, false
	}

	if ev.Code == sketch.KeyTab {
		s.focusNext(ev.Shift)
		return nil, true
	}
	if ev.Code == sketch.KeyEscape {
		s.blur()
		return nil, true
	}

	fs := &s.fields[i]
	buf := newBuffer(s.cfg.Fields[i].Value, fs.sel.Normalize(), fs.caret)
	var reqs []clipboard.Request
	changed := true
	// clipboard shortcuts are consumed even when there is nothing to copy
	consumed := false

	switch ev.Code {
	case sketch.KeyRune:
		if ev.Ctrl {
			r := unicode.ToLower(ev.Rune)
			consumed = r == 'a' || r == 'c' || r == 'x' || r == 'v'
			switch r {
			case 'a':
				buf.selectAll()
			case 'c':
				if text := buf.selected(); text != "" {
					reqs = append(reqs, clipboard.Write(text))
				}
				changed = false
			case 'x':
				if text := buf.selected(); text != "" {
					reqs = append(reqs, clipboard.Write(text))
					buf.deleteSelection()
				} else {
					changed = false
				}
			case 'v':
				reqs = append(reqs, clipboard.Read(func(text string) { s.paste(i, text) }))
				changed = false
			default:
				changed = false
			}
			break
		}
		if !unicode.IsPrint(ev.Rune) {
			return nil, false
		}
		buf.insert(string(ev.Rune))
	case sketch.KeyBackspace:
		changed = buf.backspace()
	case sketch.KeyDelete:
		changed = buf.deleteForward()
	case sketch.KeyLeft:
		buf.step(-1, ev.Shift)
	case sketch.KeyRight:
		buf.step(1, ev.Shift)
	case sketch.KeyHome:
		buf.move(0, ev.Shift)
	case sketch.KeyEnd:
		buf.move(len(buf.parts), ev.Shift)
	default:
		return nil, false
	}

	s.store(i, buf)
	if changed {
		s.blinkReset = true
	}
	return reqs, changed || consumed
}

// paste inserts clipboard text into field i once the read resolves.
func (s *Sketch) paste(i int, text string) {
	if i >= s.cfg.FieldCount || s.resolve(i).state == StateDisabled {
		return
	}
	fs := &s.fields[i]
	buf := newBuffer(s.cfg.Fields[i].Value, fs.sel.Normalize(), fs.caret)
	buf.insert(text)
	s.store(i, buf)
	s.blinkReset = true
}

func (s *Sketch) store(i int, buf *buffer) {
	s.cfg.Fields[i].Value = buf.String()
	s.fields[i].sel = buf.sel.Normalize()
	s.fields[i].caret = buf.caret
}

func (s *Sketch) focusNext(back bool) {
	n := s.cfg.FieldCount
	dir := 1
	if back {
		dir = -1
	}
	for step := 1; step <= n; step++ {
		j := ((s.focus+dir*step)%n + n) % n
		if s.resolve(j).state != StateDisabled {
			s.blur()
			s.focus = j
			s.fields[j].caret = clusterCount(s.cfg.Fields[j].Value)
			s.fields[j].sel = Selection{Start: s.fields[j].caret, End: s.fields[j].caret}
			s.blinkReset = true
			return
		}
	}
}

// Tick blinks the caret and eases corner radii.
func (s *Sketch) Tick(now time.Time) bool {
	s.sync()
	redraw := false

	if s.focus >= 0 {
		switch {
		case s.blinkReset || s.lastBlink.IsZero():
			s.blinkReset = false
			redraw = redraw || !s.caretOn
			s.caretOn = true
			s.lastBlink = now
		case now.Sub(s.lastBlink) > blinkInterval:
			s.caretOn = !s.caretOn
			s.lastBlink = now
			redraw = true
		}
	}

	for i := 0; i < s.cfg.FieldCount; i++ {
		next, moved := sketch.Lerp(s.fields[i].radius, s.targetRadius(i), radiusLerp, radiusEps)
		s.fields[i].radius = next
		redraw = redraw || moved
	}
	return redraw
}

func (s *Sketch) Cursor() sketch.Cursor {
	switch {
	case s.hoverIcon >= 0:
		return sketch.CursorPointer
	case s.hoverField >= 0:
		return sketch.CursorText
	}
	return sketch.CursorDefault
}
