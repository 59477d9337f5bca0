// Command scenecheck loads scene specs and builds each one into a scene
// without opening a window, reporting specs that fail to parse or build.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/objkit/assets"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/input"
	"github.com/milk9111/objkit/prefabs"
	"github.com/milk9111/objkit/render"
	"github.com/milk9111/objkit/scene"
)

type placeholder struct {
	size common.Vec2
}

func (p placeholder) Size() common.Vec2                         { return p.size }
func (placeholder) SetColorAndOpacity(_, _, _ uint8, _ float32) {}

type noInput struct{}

func (noInput) Poll() []input.Event        { return nil }
func (noInput) CursorPosition() (int, int) { return 0, 0 }

func main() {
	dir := flag.String("dir", "prefabs", "directory holding scene .yaml files")
	frames := flag.Int("frames", 60, "frames to simulate after building each scene")
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		matches, err := filepath.Glob(filepath.Join(*dir, "*.yaml"))
		if err != nil {
			log.Fatal(err)
		}
		names = matches
	}
	if len(names) == 0 {
		log.Fatalf("no scene specs in %s", *dir)
	}

	failed := 0
	for _, name := range names {
		if err := check(name, *frames); err != nil {
			fmt.Printf("FAIL %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", name)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func check(path string, frames int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	spec, err := prefabs.ParseScene(data)
	if err != nil {
		return err
	}

	// Images are checked for existence in the asset archive but never
	// decoded, so no graphics context is needed.
	loader := render.LoaderFunc(func(key string) (render.Drawable, error) {
		if _, err := assets.LoadFile(key); err != nil {
			if _, diskErr := os.Stat(key); diskErr != nil {
				return nil, err
			}
		}
		return placeholder{size: common.V(64, 64)}, nil
	})

	s := scene.New(scene.WithLoader(loader), scene.WithPoller(noInput{}))
	if err := s.Load(spec); err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		s.Update(1.0 / 60)
	}
	return nil
}
