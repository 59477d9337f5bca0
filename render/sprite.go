package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/common"
)

// Drawable is the narrow view components have of a rendered image.
type Drawable interface {
	Size() common.Vec2
	SetColorAndOpacity(r, g, b uint8, alpha float32)
}

// Sprite is an ebiten image with a tint.
type Sprite struct {
	Image *ebiten.Image
	tint  ebiten.ColorScale
}

func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Image: img}
}

// Size returns the image extent in pixels, or zero for an empty sprite.
func (s *Sprite) Size() common.Vec2 {
	if s == nil || s.Image == nil {
		return common.Vec2{}
	}
	b := s.Image.Bounds()
	return common.V(float64(b.Dx()), float64(b.Dy()))
}

// SetColorAndOpacity multiplies the sprite by r,g,b out of 255 and alpha in [0,1].
func (s *Sprite) SetColorAndOpacity(r, g, b uint8, alpha float32) {
	s.tint.Reset()
	s.tint.Scale(float32(r)/255, float32(g)/255, float32(b)/255, 1)
	s.tint.ScaleAlpha(alpha)
}

// Tint returns the current color scale.
func (s *Sprite) Tint() ebiten.ColorScale {
	return s.tint
}

// Draw renders the sprite with its top-left corner at pos.
func (s *Sprite) Draw(screen *ebiten.Image, pos common.Vec2) {
	if s == nil || s.Image == nil || screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale = s.tint
	screen.DrawImage(s.Image, op)
}
