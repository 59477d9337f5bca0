package behavior

import (
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/render"
)

type fakeDrawable struct {
	size    common.Vec2
	r, g, b uint8
	alpha   float32
	tints   int
}

func (f *fakeDrawable) Size() common.Vec2 { return f.size }

func (f *fakeDrawable) SetColorAndOpacity(r, g, b uint8, alpha float32) {
	f.r, f.g, f.b, f.alpha = r, g, b, alpha
	f.tints++
}

func (f *fakeDrawable) gray() uint8 { return f.r }

func fakeLoader(size common.Vec2, keys *[]string) render.Loader {
	return render.LoaderFunc(func(key string) (render.Drawable, error) {
		if keys != nil {
			*keys = append(*keys, key)
		}
		return &fakeDrawable{size: size}, nil
	})
}
