package system

import (
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/input"
)

// Poller yields this tick's input events and the cursor they refer to.
type Poller interface {
	Poll() []input.Event
	CursorPosition() (int, int)
}

// InputSystem polls once per tick and hands the events to every live entity.
// Inactive entities still receive input; each component decides for itself.
type InputSystem struct {
	source Poller
	last   []input.Event
}

func NewInputSystem(source Poller) *InputSystem {
	if source == nil {
		source = input.NewSource()
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	i.last = i.source.Poll()
	if len(i.last) == 0 {
		return
	}
	for _, e := range w.Entities() {
		w.UpdateEvents(e, i.last, i.source)
	}
}

// Last returns the events dispatched by the most recent Update.
func (i *InputSystem) Last() []input.Event {
	return i.last
}
