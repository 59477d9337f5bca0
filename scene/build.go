package scene

import (
	"fmt"
	"log"

	"github.com/milk9111/objkit/behavior"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/prefabs"
	"golang.org/x/image/colornames"
)

// Load replaces the scene's contents with the objects in spec. On error the
// scene is left empty.
func (s *Scene) Load(spec *prefabs.SceneSpec) error {
	s.Reset()
	s.name = spec.Name
	s.background = colornames.Black
	if c, ok := colornames.Map[spec.Background]; ok {
		s.background = c
	} else if spec.Background != "" {
		log.Printf("scene: %s: unknown background %q", spec.Name, spec.Background)
	}

	for _, o := range spec.Objects {
		if err := s.build(o); err != nil {
			s.Reset()
			return fmt.Errorf("scene: %s: object %q: %w", spec.Name, o.Name, err)
		}
	}
	return nil
}

// LoadNamed loads a scene spec from prefabs by name.
func (s *Scene) LoadNamed(name string) error {
	spec, err := prefabs.LoadScene(name)
	if err != nil {
		return err
	}
	return s.Load(spec)
}

func (s *Scene) build(o prefabs.ObjectSpec) error {
	w := s.world
	e := s.Spawn(o.Name)
	w.SetPosition(e, common.V(o.Position.X, o.Position.Y))
	w.SetLayer(e, o.Layer)

	if o.Image != "" {
		img := behavior.NewImageFromKey(o.Image)
		img.Loader = s.loader
		if err := ecs.Add(w, e, behavior.ImageComponent, img); err != nil {
			return err
		}
	}

	var script *behavior.Script
	if o.Script != "" {
		src, err := prefabs.LoadScript(o.Script)
		if err != nil {
			return fmt.Errorf("load script %s: %w", o.Script, err)
		}
		script = behavior.NewScript(o.Script, src)
	}

	if o.Button != nil {
		b := &behavior.Button{Action: o.Button.Action, Loader: s.loader}
		if script != nil {
			b.OnClick = func() {
				if err := script.Call(behavior.PhaseClick, nil); err != nil {
					log.Printf("scene: %s: %v", o.Name, err)
				}
			}
		}
		if err := ecs.Add(w, e, behavior.ButtonComponent, b); err != nil {
			return err
		}
	}

	if script != nil {
		if err := ecs.Add(w, e, behavior.ScriptComponent, script); err != nil {
			return err
		}
	}

	if o.Mover {
		if err := ecs.Add(w, e, behavior.KeyMoverComponent, behavior.NewKeyMover()); err != nil {
			return err
		}
	}

	if o.Platform != nil {
		w.SetPositionOnPlatform(e, common.V(o.Platform.X, o.Platform.Y))
	}
	w.SetActive(e, o.IsActive())
	return nil
}
