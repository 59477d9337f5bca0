package input

import "github.com/hajimehoshi/ebiten/v2"

// Kind identifies a discrete input event.
type Kind int

const (
	MouseButtonDown Kind = iota + 1
	MouseButtonUp
	MouseMotion
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case MouseButtonDown:
		return "mouse_down"
	case MouseButtonUp:
		return "mouse_up"
	case MouseMotion:
		return "mouse_motion"
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	}
	return "unknown"
}

// Event is one raw input event. Mouse events carry no position; receivers
// query the cursor when the event is dispatched.
type Event struct {
	Kind   Kind
	Button ebiten.MouseButton
	Key    ebiten.Key
}

// Cursor reports the current cursor position in screen pixels.
type Cursor interface {
	CursorPosition() (int, int)
}

// CursorFunc adapts a function such as ebiten.CursorPosition to Cursor.
type CursorFunc func() (int, int)

func (f CursorFunc) CursorPosition() (int, int) {
	return f()
}

// FixedCursor always reports the same position.
type FixedCursor struct {
	X, Y int
}

func (c FixedCursor) CursorPosition() (int, int) {
	return c.X, c.Y
}
