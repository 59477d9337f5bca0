package scene

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/ecs/system"
	"github.com/milk9111/objkit/render"
	"golang.org/x/image/colornames"
)

// Scene owns a World and drives it: input first, then the world update, then
// draw in layer order. It is the World's layer listener.
type Scene struct {
	world      *ecs.World
	input      *system.InputSystem
	render     *system.RenderSystem
	loader     render.Loader
	named      map[string]ecs.Entity
	handlers   map[string][]func(ecs.Event)
	background color.Color
	name       string
}

type Option func(*Scene)

// WithLoader sets the image loader used for prefab images and default
// button images.
func WithLoader(l render.Loader) Option {
	return func(s *Scene) {
		s.loader = l
	}
}

// WithPoller replaces the ebiten input source.
func WithPoller(p system.Poller) Option {
	return func(s *Scene) {
		s.input = system.NewInputSystem(p)
	}
}

func New(opts ...Option) *Scene {
	s := &Scene{
		world:      ecs.NewWorld(),
		render:     system.NewRenderSystem(),
		loader:     render.DefaultLoader,
		named:      make(map[string]ecs.Entity),
		handlers:   make(map[string][]func(ecs.Event)),
		background: colornames.Black,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.input == nil {
		s.input = system.NewInputSystem(nil)
	}
	s.world.SetLayerListener(s)
	s.world.AddSystem(&eventRouter{scene: s})
	s.world.AddSystem(s.render)
	return s
}

func (s *Scene) World() *ecs.World {
	return s.world
}

func (s *Scene) Name() string {
	return s.name
}

// UpdateLayer re-sorts the draw order on the next frame.
func (s *Scene) UpdateLayer() {
	s.render.Invalidate()
}

// Spawn creates an entity, optionally registered under name.
func (s *Scene) Spawn(name string) ecs.Entity {
	e := s.world.CreateEntity()
	if name != "" {
		s.named[name] = e
	}
	s.render.Invalidate()
	return e
}

func (s *Scene) Destroy(e ecs.Entity) bool {
	for name, n := range s.named {
		if n == e {
			delete(s.named, name)
		}
	}
	return s.world.DestroyEntity(e)
}

// Lookup finds a live entity by name.
func (s *Scene) Lookup(name string) (ecs.Entity, bool) {
	e, ok := s.named[name]
	if !ok || !s.world.IsAlive(e) {
		return 0, false
	}
	return e, true
}

// Reset destroys every entity.
func (s *Scene) Reset() {
	for _, e := range s.world.Entities() {
		s.world.DestroyEntity(e)
	}
	clear(s.named)
	s.render.Invalidate()
}

// On registers fn for events of the given type raised during a frame.
func (s *Scene) On(eventType string, fn func(ecs.Event)) {
	s.handlers[eventType] = append(s.handlers[eventType], fn)
}

// Update runs one tick of dt seconds.
func (s *Scene) Update(dt float64) {
	s.input.Update(s.world)
	s.world.Update(dt)
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.world.Draw(screen)
}

// DrawOrder exposes the current layer order.
func (s *Scene) DrawOrder() []ecs.Entity {
	return s.render.Order(s.world)
}

type eventRouter struct {
	scene *Scene
}

func (r *eventRouter) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		handlers := r.scene.handlers[ev.Type]
		if len(handlers) == 0 {
			log.Printf("scene: unhandled event %q from %s", ev.Type, ev.Source)
			continue
		}
		for _, fn := range handlers {
			fn(ev)
		}
	}
}
