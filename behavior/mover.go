package behavior

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/ecs/component"
)

// KeyMover walks its owner with the arrow keys or WASD.
type KeyMover struct {
	ecs.Owned

	held map[ebiten.Key]bool
}

var KeyMoverComponent = component.NewComponent[*KeyMover]("key_mover")

func NewKeyMover() *KeyMover {
	return &KeyMover{held: make(map[ebiten.Key]bool)}
}

func (m *KeyMover) OnKeyPressed(key ebiten.Key) {
	if m.held == nil {
		m.held = make(map[ebiten.Key]bool)
	}
	m.held[key] = true
}

func (m *KeyMover) OnKeyReleased(key ebiten.Key) {
	delete(m.held, key)
}

func (m *KeyMover) UpdateDelta(float64) {
	dx, dy := m.axis()
	if dx != 0 {
		m.World().MoveX(m.Owner(), dx)
	}
	if dy != 0 {
		m.World().MoveY(m.Owner(), dy)
	}
}

func (m *KeyMover) axis() (dx, dy float64) {
	if m.held[ebiten.KeyArrowLeft] || m.held[ebiten.KeyA] {
		dx--
	}
	if m.held[ebiten.KeyArrowRight] || m.held[ebiten.KeyD] {
		dx++
	}
	if m.held[ebiten.KeyArrowUp] || m.held[ebiten.KeyW] {
		dy--
	}
	if m.held[ebiten.KeyArrowDown] || m.held[ebiten.KeyS] {
		dy++
	}
	return dx, dy
}
