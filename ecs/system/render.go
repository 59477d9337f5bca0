package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/behavior"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
)

// Renderer is a drawable that can paint itself.
type Renderer interface {
	Draw(screen *ebiten.Image, pos common.Vec2)
}

// RenderSystem draws every active entity's Image, lowest layer first and in
// creation order within a layer. The order is rebuilt lazily after
// Invalidate or when entities come and go.
type RenderSystem struct {
	order []ecs.Entity
	seen  int
	dirty bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{dirty: true}
}

// Invalidate forces a re-sort before the next draw.
func (r *RenderSystem) Invalidate() {
	r.dirty = true
}

func (r *RenderSystem) Update(w *ecs.World) {}

// Order returns the current draw order, re-sorting if needed.
func (r *RenderSystem) Order(w *ecs.World) []ecs.Entity {
	entities := w.Entities()
	if !r.dirty && len(entities) == r.seen && allAlive(w, r.order) {
		return r.order
	}
	rank := make(map[ecs.Entity]int, len(entities))
	for i, e := range entities {
		rank[e] = i
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := w.Layer(entities[i]), w.Layer(entities[j])
		if li != lj {
			return li < lj
		}
		return rank[entities[i]] < rank[entities[j]]
	})
	r.order = entities
	r.seen = len(entities)
	r.dirty = false
	return r.order
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	for _, e := range r.Order(w) {
		if !w.Active(e) {
			continue
		}
		img, ok := ecs.Get(w, e, behavior.ImageComponent)
		if !ok {
			continue
		}
		rd, ok := img.Drawable.(Renderer)
		if !ok {
			continue
		}
		rd.Draw(screen, w.Position(e))
	}
}

func allAlive(w *ecs.World, entities []ecs.Entity) bool {
	for _, e := range entities {
		if !w.IsAlive(e) {
			return false
		}
	}
	return true
}
