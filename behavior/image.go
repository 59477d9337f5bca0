package behavior

import (
	"fmt"

	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/ecs/component"
	"github.com/milk9111/objkit/render"
)

// Image attaches a drawable to an object and sizes the object after it.
type Image struct {
	ecs.Owned

	Drawable render.Drawable
	// Key names an asset to load at Init when Drawable is nil.
	Key    string
	Loader render.Loader
}

var ImageComponent = component.NewComponent[*Image]("image")

func NewImage(d render.Drawable) *Image {
	return &Image{Drawable: d}
}

func NewImageFromKey(key string) *Image {
	return &Image{Key: key}
}

func (i *Image) Init() error {
	if i.Drawable == nil && i.Key != "" {
		loader := i.Loader
		if loader == nil {
			loader = render.DefaultLoader
		}
		d, err := loader.LoadDrawable(i.Key)
		if err != nil {
			return fmt.Errorf("image: load %s: %w", i.Key, err)
		}
		i.Drawable = d
	}
	if i.Drawable != nil {
		i.World().SetSize(i.Owner(), i.Drawable.Size())
	}
	return nil
}

func (i *Image) Size() common.Vec2 {
	if i.Drawable == nil {
		return common.Vec2{}
	}
	return i.Drawable.Size()
}

func (i *Image) SetColorAndOpacity(r, g, b uint8, alpha float32) {
	if i.Drawable != nil {
		i.Drawable.SetColorAndOpacity(r, g, b, alpha)
	}
}
