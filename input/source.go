package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var trackedButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Frame is a snapshot of the edge-triggered input state for one tick.
type Frame struct {
	X, Y            int
	ButtonsPressed  []ebiten.MouseButton
	ButtonsReleased []ebiten.MouseButton
	KeysPressed     []ebiten.Key
	KeysReleased    []ebiten.Key
}

// Source turns ebiten's polled input into discrete events.
type Source struct {
	lastX, lastY int
	primed       bool
	frame        Frame
	events       []Event
}

func NewSource() *Source {
	return &Source{}
}

// Poll reads this tick's input from ebiten. Call it once per Update.
func (s *Source) Poll() []Event {
	f := &s.frame
	f.X, f.Y = ebiten.CursorPosition()
	f.ButtonsPressed = f.ButtonsPressed[:0]
	f.ButtonsReleased = f.ButtonsReleased[:0]
	for _, b := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			f.ButtonsPressed = append(f.ButtonsPressed, b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			f.ButtonsReleased = append(f.ButtonsReleased, b)
		}
	}
	f.KeysPressed = inpututil.AppendJustPressedKeys(f.KeysPressed[:0])
	f.KeysReleased = inpututil.AppendJustReleasedKeys(f.KeysReleased[:0])
	return s.Next(*f)
}

// Next converts a frame snapshot into events: motion first, then button
// presses and releases, then keys. The returned slice is reused by the next call.
func (s *Source) Next(f Frame) []Event {
	s.events = s.events[:0]
	if !s.primed || f.X != s.lastX || f.Y != s.lastY {
		s.events = append(s.events, Event{Kind: MouseMotion})
		s.lastX, s.lastY = f.X, f.Y
		s.primed = true
	}
	for _, b := range f.ButtonsPressed {
		s.events = append(s.events, Event{Kind: MouseButtonDown, Button: b})
	}
	for _, b := range f.ButtonsReleased {
		s.events = append(s.events, Event{Kind: MouseButtonUp, Button: b})
	}
	for _, k := range f.KeysPressed {
		s.events = append(s.events, Event{Kind: KeyDown, Key: k})
	}
	for _, k := range f.KeysReleased {
		s.events = append(s.events, Event{Kind: KeyUp, Key: k})
	}
	return s.events
}

// CursorPosition reports the cursor position seen by the last poll.
func (s *Source) CursorPosition() (int, int) {
	return s.lastX, s.lastY
}
