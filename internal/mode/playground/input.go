package playground

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/sketchpad/internal/sketch"
)

// keyEvents translates a terminal key into sketch key events. Pasted text
// arrives as one message carrying many runes and becomes one event per rune.
// Returns nil for keys sketches have no use for.
func keyEvents(msg tea.KeyMsg) []sketch.KeyEvent {
	if msg.Alt {
		return nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		out := make([]sketch.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, sketch.Rune(r))
		}
		return out
	case tea.KeySpace:
		return []sketch.KeyEvent{sketch.Rune(' ')}
	case tea.KeyBackspace:
		return code(sketch.KeyBackspace, false)
	case tea.KeyDelete:
		return code(sketch.KeyDelete, false)
	case tea.KeyLeft:
		return code(sketch.KeyLeft, false)
	case tea.KeyRight:
		return code(sketch.KeyRight, false)
	case tea.KeyShiftLeft:
		return code(sketch.KeyLeft, true)
	case tea.KeyShiftRight:
		return code(sketch.KeyRight, true)
	case tea.KeyHome:
		return code(sketch.KeyHome, false)
	case tea.KeyShiftHome:
		return code(sketch.KeyHome, true)
	case tea.KeyEnd:
		return code(sketch.KeyEnd, false)
	case tea.KeyShiftEnd:
		return code(sketch.KeyEnd, true)
	case tea.KeyEnter:
		return code(sketch.KeyEnter, false)
	case tea.KeyEsc:
		return code(sketch.KeyEscape, false)
	case tea.KeyTab:
		return code(sketch.KeyTab, false)
	}

	// ctrl+<letter>; tab, enter and backspace were matched above
	if s := msg.String(); strings.HasPrefix(s, "ctrl+") {
		if rest := []rune(strings.TrimPrefix(s, "ctrl+")); len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
			return []sketch.KeyEvent{sketch.Ctrl(rest[0])}
		}
	}
	return nil
}

func code(c sketch.KeyCode, shift bool) []sketch.KeyEvent {
	return []sketch.KeyEvent{{Code: c, Shift: shift}}
}

// pointerKind maps a mouse message to a pointer event kind. dragging is
// whether the primary button went down inside the preview and has not been
// released. ok is false for wheel and other buttons.
func pointerKind(msg tea.MouseMsg, dragging bool) (kind sketch.PointerKind, ok bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return sketch.PointerDown, true
		}
	case tea.MouseActionRelease:
		if dragging || msg.Button == tea.MouseButtonLeft {
			return sketch.PointerUp, true
		}
	case tea.MouseActionMotion:
		if dragging {
			return sketch.PointerDrag, true
		}
		if msg.Button == tea.MouseButtonNone {
			return sketch.PointerMove, true
		}
	}
	return 0, false
}
