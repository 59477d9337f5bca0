package ecs

import "github.com/milk9111/objkit/common"

// MoveSpeed is the speed in pixels per second applied by MoveX and MoveY.
const MoveSpeed = 80

func (w *World) Position(e Entity) common.Vec2 {
	if obj := w.object(e); obj != nil {
		return obj.position
	}
	return common.Vec2{}
}

func (w *World) SetPosition(e Entity, pos common.Vec2) {
	if obj := w.object(e); obj != nil {
		obj.position = pos
	}
}

// SetPositionOnPlatform places e so that its bottom edge rests at pos.Y.
func (w *World) SetPositionOnPlatform(e Entity, pos common.Vec2) {
	if obj := w.object(e); obj != nil {
		obj.position = common.V(pos.X, pos.Y-obj.size.Y)
	}
}

// MoveX shifts e horizontally by dx scaled by the last frame's delta time.
func (w *World) MoveX(e Entity, dx float64) {
	if obj := w.object(e); obj != nil {
		obj.position.X += dx * obj.deltaTime * MoveSpeed
	}
}

// MoveY shifts e vertically by dy scaled by the last frame's delta time.
func (w *World) MoveY(e Entity, dy float64) {
	if obj := w.object(e); obj != nil {
		obj.position.Y += dy * obj.deltaTime * MoveSpeed
	}
}

func (w *World) Size(e Entity) common.Vec2 {
	if obj := w.object(e); obj != nil {
		return obj.size
	}
	return common.Vec2{}
}

func (w *World) SetSize(e Entity, size common.Vec2) {
	if obj := w.object(e); obj != nil {
		obj.size = size
	}
}

// InitSize copies the extent of the first attached Sizer onto e. It reports
// false and leaves the size alone when e carries no Sizer.
func (w *World) InitSize(e Entity) bool {
	obj := w.object(e)
	if obj == nil {
		return false
	}
	for _, id := range obj.components {
		if s, ok := w.component(e, id).(Sizer); ok {
			obj.size = s.Size()
			return true
		}
	}
	return false
}

// SetLayer moves e to layer and notifies the layer listener.
func (w *World) SetLayer(e Entity, layer int) {
	obj := w.object(e)
	if obj == nil {
		return
	}
	obj.layer = layer
	if w.layers != nil {
		w.layers.UpdateLayer()
	}
}

func (w *World) Layer(e Entity) int {
	if obj := w.object(e); obj != nil {
		return obj.layer
	}
	return 0
}

func (w *World) SetActive(e Entity, active bool) {
	if obj := w.object(e); obj != nil {
		obj.active = active
	}
}

// Active reports whether e is alive and takes part in World.Update.
func (w *World) Active(e Entity) bool {
	obj := w.object(e)
	return obj != nil && obj.active
}

// DeltaTime returns the frame time recorded by the last update of e.
func (w *World) DeltaTime(e Entity) float64 {
	if obj := w.object(e); obj != nil {
		return obj.deltaTime
	}
	return 0
}

// Crossing reports whether the boxes of a and b overlap, edges inclusive,
// with both extents scaled by xRange and yRange.
func (w *World) Crossing(a, b Entity, xRange, yRange float64) bool {
	oa, ob := w.object(a), w.object(b)
	if oa == nil || ob == nil {
		return false
	}
	boxA := common.Box(oa.position, common.V(oa.size.X*xRange, oa.size.Y*yRange))
	boxB := common.Box(ob.position, common.V(ob.size.X*xRange, ob.size.Y*yRange))
	return boxA.Intersects(boxB)
}

// Overlaps is Crossing with unit ranges.
func (w *World) Overlaps(a, b Entity) bool {
	return w.Crossing(a, b, 1, 1)
}
