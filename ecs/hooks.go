package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/common"
)

// Component hooks are optional. A component implements only the hooks it
// cares about; a missing hook is a no-op.

// Initializer runs once, after the component is bound to its owner and before
// it becomes visible to lookups. A returned error aborts the attach.
type Initializer interface {
	Init() error
}

// Updater runs every frame with no arguments, before DeltaUpdater.
type Updater interface {
	Update()
}

// DeltaUpdater runs every frame with the elapsed time in seconds.
type DeltaUpdater interface {
	UpdateDelta(dt float64)
}

type MouseDownHandler interface {
	OnMouseButtonDown(pos common.Vec2)
}

type MouseUpHandler interface {
	OnMouseButtonUp(pos common.Vec2)
}

type MouseMotionHandler interface {
	OnMouseButtonMotion(pos common.Vec2)
}

type KeyPressHandler interface {
	OnKeyPressed(key ebiten.Key)
}

type KeyReleaseHandler interface {
	OnKeyReleased(key ebiten.Key)
}

// Destroyer runs exactly once when the component is removed, replaced, or its
// owner is destroyed. The component is already detached when it runs.
type Destroyer interface {
	Destroy()
}

// Sizer is implemented by image-bearing components; World.InitSize copies the
// first Sizer's extent onto the owner.
type Sizer interface {
	Size() common.Vec2
}

type binder interface {
	bind(w *World, owner Entity)
	unbind()
	bound() bool
}

// Owned gives a component a handle to its owner. Embed it by value; the World
// fills it in when the component is attached and never rebinds it.
type Owned struct {
	world *World
	owner Entity
}

func (o *Owned) bind(w *World, owner Entity) {
	o.world = w
	o.owner = owner
}

func (o *Owned) unbind() {
	o.world = nil
	o.owner = 0
}

func (o *Owned) bound() bool {
	return o.world != nil
}

// World returns the world the component was attached to, or nil before attach.
func (o *Owned) World() *World {
	return o.world
}

// Owner returns the owning entity handle.
func (o *Owned) Owner() Entity {
	return o.owner
}
