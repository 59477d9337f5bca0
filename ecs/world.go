package ecs

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs/component"
)

// System runs once per frame after every active entity has been updated.
type System interface {
	Update(w *World)
}

// LayerListener is told whenever an entity changes draw layer.
type LayerListener interface {
	UpdateLayer()
}

// object is the per-entity record held in the arena.
type object struct {
	position   common.Vec2
	size       common.Vec2
	layer      int
	active     bool
	deltaTime  float64
	components []component.ComponentID
}

// World owns entities, their components, and system order. It is not safe
// for concurrent use; all calls happen on the update goroutine.
type World struct {
	entities entityStore
	objects  []*object
	stores   map[component.ComponentID]*sparseSet
	systems  []System
	events   EventQueue
	layers   LayerListener
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new active entity at the origin on layer 0.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	obj := &object{active: true}
	if idx := int(e.id()) - 1; idx < len(w.objects) {
		w.objects[idx] = obj
	} else {
		w.objects = append(w.objects, obj)
	}
	return e
}

// DestroyEntity destroys every component in insertion order, then frees the
// handle. It reports false for a dead handle.
func (w *World) DestroyEntity(e Entity) bool {
	obj := w.object(e)
	if obj == nil {
		return false
	}
	for _, id := range slices.Clone(obj.components) {
		w.removeComponent(e, id)
	}
	w.objects[e.id()-1] = nil
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns the live entities in creation order.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

// Components returns the component kinds attached to e in insertion order.
func (w *World) Components(e Entity) []component.ComponentID {
	obj := w.object(e)
	if obj == nil {
		return nil
	}
	return slices.Clone(obj.components)
}

// SetLayerListener registers the scene owner notified by SetLayer.
func (w *World) SetLayerListener(l LayerListener) {
	w.layers = l
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) object(e Entity) *object {
	if !w.entities.isAlive(e) {
		return nil
	}
	return w.objects[e.id()-1]
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) component(e Entity, id component.ComponentID) any {
	if !w.entities.isAlive(e) {
		return nil
	}
	return w.stores[id].get(e.id())
}

func (w *World) addComponent(e Entity, id component.ComponentID, name string, value any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("ecs: add %s to %s: %w", name, e, component.ErrEntityNotAlive)
	}
	if isNil(value) {
		return fmt.Errorf("ecs: add %s to %s: %w", name, e, component.ErrNilComponent)
	}
	b, _ := value.(binder)
	if b != nil && b.bound() {
		return fmt.Errorf("ecs: add %s to %s: %w", name, e, component.ErrComponentBound)
	}

	w.removeComponent(e, id)

	if b != nil {
		b.bind(w, e)
	}
	if in, ok := value.(Initializer); ok {
		if err := in.Init(); err != nil {
			if b != nil {
				b.unbind()
			}
			return fmt.Errorf("ecs: init %s on %s: %w", name, e, err)
		}
	}

	// Init may have destroyed the owner or attached the same kind itself.
	obj := w.object(e)
	if obj == nil {
		return fmt.Errorf("ecs: add %s to %s: %w", name, e, component.ErrEntityNotAlive)
	}
	w.removeComponent(e, id)
	w.store(id).set(e.id(), value)
	obj.components = append(obj.components, id)
	return nil
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	obj := w.object(e)
	if obj == nil {
		return false
	}
	v := w.stores[id].remove(e.id())
	if v == nil {
		return false
	}
	obj.components = slices.DeleteFunc(obj.components, func(c component.ComponentID) bool { return c == id })
	if d, ok := v.(Destroyer); ok {
		d.Destroy()
	}
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
