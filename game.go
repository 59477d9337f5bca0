package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/prefabs"
	"github.com/milk9111/objkit/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames    int
	debug     bool
	paused    bool
	quit      bool
	status    string
	sceneName string

	scene   *scene.Scene
	watcher *prefabs.Watcher
	pause   *ebitenui.UI
}

func NewGame(sceneName string, debug, watch bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		sceneName: sceneName,
		scene:     scene.New(),
		status:    "ready",
	}
	if err := g.scene.LoadNamed(sceneName); err != nil {
		return nil, fmt.Errorf("load scene %s: %w", sceneName, err)
	}

	g.scene.On("start", func(ecs.Event) { g.status = "started" })
	g.scene.On("first_start", func(ev ecs.Event) { log.Printf("game: first start from %s", ev.Source) })
	g.scene.On("quit", func(ecs.Event) { g.quit = true })

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pause = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}

	g.reloadChanged()
	g.scene.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.scene.LoadNamed(g.sceneName); err != nil {
				log.Printf("game: reload after %s: %v", path, err)
				continue
			}
			log.Printf("game: reloaded %s after %s changed", g.sceneName, path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d    %s",
			g.frames, ebiten.ActualFPS(), len(g.scene.World().Entities()), g.status))
	}
	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
