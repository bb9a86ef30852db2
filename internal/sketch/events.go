package sketch

import "fmt"

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerMove PointerKind = iota // moved with no button held
	PointerDown
	PointerUp
	PointerDrag // moved with the primary button held
)

func (k PointerKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerDrag:
		return "drag"
	}
	return fmt.Sprintf("pointer(%d)", int(k))
}

// PointerEvent is a pointer event in canvas coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// KeyCode identifies non-printable keys. Printable input uses KeyRune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a key press.
type KeyEvent struct {
	Code  KeyCode
	Rune  rune
	Ctrl  bool
	Shift bool
}

// Rune builds a printable key event.
func Rune(r rune) KeyEvent { return KeyEvent{Code: KeyRune, Rune: r} }

// Ctrl builds a ctrl+letter event.
func Ctrl(r rune) KeyEvent { return KeyEvent{Code: KeyRune, Rune: r, Ctrl: true} }

// Cursor is the pointer shape a sketch asks for.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorText:
		return "text"
	}
	return "default"
}
