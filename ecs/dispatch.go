package ecs

import (
	"slices"

	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/input"
)

// Update runs one frame: every active entity's components in creation then
// insertion order, then the systems. Queued events are dropped at the end.
func (w *World) Update(dt float64) {
	for _, e := range w.entities.alive() {
		if !w.Active(e) {
			continue
		}
		w.UpdateEntity(e, dt)
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// UpdateEntity calls Update then UpdateDelta on each component of e and
// records dt. Hooks see the previous frame's delta time.
func (w *World) UpdateEntity(e Entity, dt float64) {
	obj := w.object(e)
	if obj == nil {
		return
	}
	for _, id := range slices.Clone(obj.components) {
		v := w.component(e, id)
		if u, ok := v.(Updater); ok {
			u.Update()
		}
		if u, ok := v.(DeltaUpdater); ok {
			u.UpdateDelta(dt)
		}
	}
	if obj := w.object(e); obj != nil {
		obj.deltaTime = dt
	}
}

// UpdateEvents hands every event to every component of e. Nothing is filtered
// by position or active state and no component can consume an event; each
// component does its own hit-testing. The cursor is read once per delivery.
func (w *World) UpdateEvents(e Entity, events []input.Event, cursor input.Cursor) {
	obj := w.object(e)
	if obj == nil {
		return
	}
	for _, ev := range events {
		for _, id := range slices.Clone(obj.components) {
			v := w.component(e, id)
			if v == nil {
				continue
			}
			dispatch(v, ev, cursor)
		}
	}
}

func dispatch(v any, ev input.Event, cursor input.Cursor) {
	switch ev.Kind {
	case input.MouseButtonDown:
		if h, ok := v.(MouseDownHandler); ok {
			h.OnMouseButtonDown(cursorPos(cursor))
		}
	case input.MouseButtonUp:
		if h, ok := v.(MouseUpHandler); ok {
			h.OnMouseButtonUp(cursorPos(cursor))
		}
	case input.MouseMotion:
		if h, ok := v.(MouseMotionHandler); ok {
			h.OnMouseButtonMotion(cursorPos(cursor))
		}
	case input.KeyDown:
		if h, ok := v.(KeyPressHandler); ok {
			h.OnKeyPressed(ev.Key)
		}
	case input.KeyUp:
		if h, ok := v.(KeyReleaseHandler); ok {
			h.OnKeyReleased(ev.Key)
		}
	}
}

func cursorPos(c input.Cursor) common.Vec2 {
	if c == nil {
		return common.Vec2{}
	}
	x, y := c.CursorPosition()
	return common.V(float64(x), float64(y))
}
