package textfields

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Selection is a span of grapheme offsets. While dragging Start is the
// anchor and may exceed End; Normalize orders them.
type Selection struct {
	Start, End int
}

// Normalize returns the span ordered so Start <= End.
func (s Selection) Normalize() Selection {
	if s.Start > s.End {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// Empty reports whether the span selects nothing.
func (s Selection) Empty() bool { return s.Start == s.End }

func (s Selection) clamp(n int) Selection {
	return Selection{Start: min(max(s.Start, 0), n), End: min(max(s.End, 0), n)}
}

// clusters splits s into user-perceived characters.
func clusters(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func clusterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// sanitize flattens pasted text to a single line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
}

// buffer is an editable value with a caret and selection, in grapheme
// offsets.
type buffer struct {
	parts []string
	sel   Selection
	caret int
}

func newBuffer(value string, sel Selection, caret int) *buffer {
	b := &buffer{parts: clusters(value)}
	b.sel = sel.clamp(len(b.parts))
	b.caret = min(max(caret, 0), len(b.parts))
	return b
}

func (b *buffer) String() string { return strings.Join(b.parts, "") }

func (b *buffer) selected() string {
	n := b.sel.Normalize()
	return strings.Join(b.parts[n.Start:n.End], "")
}

func (b *buffer) collapse(at int) {
	b.caret = min(max(at, 0), len(b.parts))
	b.sel = Selection{Start: b.caret, End: b.caret}
}

// deleteSelection removes the selected span and reports whether it existed.
func (b *buffer) deleteSelection() bool {
	n := b.sel.Normalize()
	if n.Empty() {
		return false
	}
	b.parts = append(b.parts[:n.Start:n.Start], b.parts[n.End:]...)
	b.collapse(n.Start)
	return true
}

func (b *buffer) insert(text string) {
	b.deleteSelection()
	add := clusters(sanitize(text))
	if len(add) == 0 {
		return
	}
	parts := make([]string, 0, len(b.parts)+len(add))
	parts = append(parts, b.parts[:b.caret]...)
	parts = append(parts, add...)
	parts = append(parts, b.parts[b.caret:]...)
	b.parts = parts
	b.collapse(b.caret + len(add))
}

func (b *buffer) backspace() bool {
	if b.deleteSelection() {
		return true
	}
	if b.caret == 0 {
		return false
	}
	b.parts = append(b.parts[:b.caret-1:b.caret-1], b.parts[b.caret:]...)
	b.collapse(b.caret - 1)
	return true
}

func (b *buffer) deleteForward() bool {
	if b.deleteSelection() {
		return true
	}
	if b.caret >= len(b.parts) {
		return false
	}
	b.parts = append(b.parts[:b.caret:b.caret], b.parts[b.caret+1:]...)
	b.collapse(b.caret)
	return true
}

// move places the caret at to; extend grows the selection from its anchor.
func (b *buffer) move(to int, extend bool) {
	to = min(max(to, 0), len(b.parts))
	if !extend {
		b.collapse(to)
		return
	}
	anchor := b.caret
	if n := b.sel.Normalize(); !n.Empty() {
		anchor = n.Start
		if b.caret == n.Start {
			anchor = n.End
		}
	}
	b.caret = to
	b.sel = Selection{Start: anchor, End: to}.Normalize()
}

// step moves one grapheme left (dir < 0) or right. Without extend a
// selection collapses to its edge in that direction.
func (b *buffer) step(dir int, extend bool) {
	if n := b.sel.Normalize(); !extend && !n.Empty() {
		if dir < 0 {
			b.collapse(n.Start)
		} else {
			b.collapse(n.End)
		}
		return
	}
	if dir < 0 {
		b.move(b.caret-1, extend)
	} else {
		b.move(b.caret+1, extend)
	}
}

func (b *buffer) selectAll() {
	b.sel = Selection{Start: 0, End: len(b.parts)}
	b.caret = len(b.parts)
}
