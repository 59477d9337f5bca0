package ecs

import "github.com/milk9111/objkit/ecs/component"

// Add attaches value to e under handle, replacing and destroying any
// component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	kind := handle.Kind()
	return w.addComponent(e, kind.ID(), kind.Name(), value)
}

// Remove destroys and detaches the component of handle's kind.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.removeComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.component(e, handle.Kind().ID()) != nil
}

// Get returns the component of handle's kind, or false if none is attached.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value := w.component(e, handle.Kind().ID())
	if value == nil {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// ForEach visits every component of handle's kind in storage order.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v T)) {
	s := w.stores[handle.Kind().ID()]
	if s.len() == 0 {
		return
	}
	ids := append([]entityID(nil), s.denseIDs...)
	for _, id := range ids {
		v, ok := s.get(id).(T)
		if !ok {
			continue
		}
		fn(makeEntity(id, w.entities.gen[id-1]), v)
	}
}
