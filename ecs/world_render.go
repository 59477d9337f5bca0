package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem is a System that also draws each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Draw calls all render-capable systems in update order.
func (w *World) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for _, s := range w.systems {
		rs, ok := s.(RenderSystem)
		if !ok {
			continue
		}
		rs.Draw(w, screen)
	}
}
