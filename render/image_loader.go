package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/assets"
)

// Loader resolves a named image into a fresh drawable.
type Loader interface {
	LoadDrawable(key string) (Drawable, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(key string) (Drawable, error)

func (f LoaderFunc) LoadDrawable(key string) (Drawable, error) {
	return f(key)
}

// AssetLoader loads images from the embedded archive, falling back to disk.
// Decoded images are shared; each call gets its own Sprite so tints are not.
type AssetLoader struct{}

func (AssetLoader) LoadDrawable(key string) (Drawable, error) {
	img, err := LoadImage(key)
	if err != nil {
		return nil, err
	}
	return NewSprite(img), nil
}

// DefaultLoader is used by components that are not given a loader.
var DefaultLoader Loader = AssetLoader{}

// decoded images by key; only touched from the update goroutine
var imageCache = map[string]*ebiten.Image{}

// Preload registers an already-decoded image under key.
func Preload(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	imageCache[key] = img
}

// LoadImage returns the image for key, decoding and caching it on first use.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, errors.New("render: empty image key")
	}
	if img, ok := imageCache[key]; ok {
		return img, nil
	}
	img, err := decodeImage(key)
	if err != nil {
		return nil, err
	}
	imageCache[key] = img
	return img, nil
}

func decodeImage(key string) (*ebiten.Image, error) {
	img, err := assets.LoadImage(key)
	if err == nil {
		return img, nil
	}
	errs := []error{err}
	for _, p := range []string{key, filepath.Join("assets", key)} {
		b, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			errs = append(errs, fmt.Errorf("decode %s: %w", p, err))
			continue
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("render: load image %s: %w", key, errors.Join(errs...))
}
