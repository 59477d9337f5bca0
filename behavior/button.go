package behavior

import (
	"fmt"

	"github.com/milk9111/objkit/assets"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/ecs/component"
	"github.com/milk9111/objkit/render"
)

type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHovered:
		return "hovered"
	case ButtonPressed:
		return "pressed"
	}
	return "idle"
}

const (
	tintIdle    uint8 = 255
	tintHovered uint8 = 180
	tintPressed uint8 = 120
)

// Button makes its owner clickable. It tints the sibling Image for feedback
// and calls OnClick when a release lands inside its bounds.
//
// Bounds are cached at Init and refreshed only on motion, so a press right
// after the owner moves tests against the old bounds until the cursor moves.
type Button struct {
	ecs.Owned

	OnClick func()
	// Action, if set, is pushed to the world event queue on click.
	Action string
	// Loader supplies the default image when the owner has none.
	Loader render.Loader

	image *Image
	pos   common.Vec2
	size  common.Vec2
	state ButtonState
}

var ButtonComponent = component.NewComponent[*Button]("button")

func NewButton(onClick func()) *Button {
	return &Button{OnClick: onClick}
}

func (b *Button) Init() error {
	w, owner := b.World(), b.Owner()

	img, ok := ecs.Get(w, owner, ImageComponent)
	if !ok || img.Drawable == nil {
		loader := b.Loader
		if loader == nil {
			loader = render.DefaultLoader
		}
		img = &Image{Key: assets.DefaultImage, Loader: loader}
		if err := ecs.Add(w, owner, ImageComponent, img); err != nil {
			return fmt.Errorf("button: default image: %w", err)
		}
	}

	b.image = img
	b.pos = w.Position(owner)
	b.size = img.Size()
	b.state = ButtonIdle
	return nil
}

func (b *Button) OnMouseButtonDown(pos common.Vec2) {
	if !b.contains(pos) {
		return
	}
	b.state = ButtonPressed
	b.tint(tintPressed)
}

func (b *Button) OnMouseButtonUp(pos common.Vec2) {
	inside := b.contains(pos)
	b.state = ButtonIdle
	b.tint(tintIdle)
	if inside {
		b.click()
	}
}

func (b *Button) OnMouseButtonMotion(pos common.Vec2) {
	w, owner := b.World(), b.Owner()
	b.pos = w.Position(owner)
	b.size = w.Size(owner)
	if b.contains(pos) {
		b.state = ButtonHovered
		b.tint(tintHovered)
		return
	}
	b.state = ButtonIdle
	b.tint(tintIdle)
}

func (b *Button) Destroy() {
	b.image = nil
}

func (b *Button) State() ButtonState {
	return b.state
}

// Bounds returns the cached hit-test box.
func (b *Button) Bounds() (pos, size common.Vec2) {
	return b.pos, b.size
}

func (b *Button) contains(p common.Vec2) bool {
	return common.Contains(b.pos, b.size, p)
}

func (b *Button) tint(v uint8) {
	if b.image != nil {
		b.image.SetColorAndOpacity(v, v, v, 1)
	}
}

func (b *Button) click() {
	if b.OnClick != nil {
		b.OnClick()
	}
	if b.Action != "" {
		if w := b.World(); w != nil {
			w.Events().Push(ecs.Event{Type: b.Action, Source: b.Owner()})
		}
	}
}
