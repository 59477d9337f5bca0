package behavior

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/ecs/component"
)

// Script phases. A script handles a phase by defining a function under that
// key in its top-level `hooks` map: func(engine, state, arg).
const (
	PhaseInit    = "init"
	PhaseUpdate  = "update"
	PhaseClick   = "click"
	PhaseKeyDown = "key_down"
	PhaseKeyUp   = "key_up"
)

const scriptDispatch = `
__hook := hooks[__phase]
if !is_undefined(__hook) {
	__hook(__engine, __state, __arg)
}
`

// Script drives its owner from a tengo script. The engine map handed to each
// hook exposes move_x, move_y, set_position, position and emit.
type Script struct {
	ecs.Owned

	Name   string
	Source []byte

	compiled *tengo.Compiled
	state    *tengo.Map
}

var ScriptComponent = component.NewComponent[*Script]("script")

func NewScript(name string, src []byte) *Script {
	return &Script{Name: name, Source: src}
}

func (s *Script) Init() error {
	script := tengo.NewScript([]byte(string(s.Source) + "\n" + scriptDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__arg", nil)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("script %s: compile: %w", s.Name, err)
	}
	s.compiled = compiled
	s.state = &tengo.Map{Value: map[string]tengo.Object{}}
	return s.Call(PhaseInit, nil)
}

func (s *Script) UpdateDelta(dt float64) {
	s.logCall(PhaseUpdate, dt)
}

func (s *Script) OnKeyPressed(key ebiten.Key) {
	s.logCall(PhaseKeyDown, key.String())
}

func (s *Script) OnKeyReleased(key ebiten.Key) {
	s.logCall(PhaseKeyUp, key.String())
}

func (s *Script) Destroy() {
	s.compiled = nil
}

// Call runs one phase with arg passed as the hook's third parameter.
func (s *Script) Call(phase string, arg any) error {
	if s.compiled == nil {
		return fmt.Errorf("script %s: not compiled", s.Name)
	}
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", s.engine()); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Set("__arg", arg); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script %s: %s: %w", s.Name, phase, err)
	}
	return nil
}

// State returns a script state value converted to Go, or nil.
func (s *Script) State(key string) any {
	if s.state == nil {
		return nil
	}
	obj, ok := s.state.Value[key]
	if !ok {
		return nil
	}
	return tengo.ToInterface(obj)
}

func (s *Script) logCall(phase string, arg any) {
	if err := s.Call(phase, arg); err != nil {
		log.Printf("behavior: entity=%s %v", s.Owner(), err)
	}
}

func (s *Script) engine() *tengo.ImmutableMap {
	w, owner := s.World(), s.Owner()
	values := map[string]tengo.Object{}

	values["move_x"] = &tengo.UserFunction{Name: "move_x", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		d, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		w.MoveX(owner, d)
		return tengo.TrueValue, nil
	}}

	values["move_y"] = &tengo.UserFunction{Name: "move_y", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		d, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		w.MoveY(owner, d)
		return tengo.TrueValue, nil
	}}

	values["set_position"] = &tengo.UserFunction{Name: "set_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		pos := w.Position(owner)
		pos.X, pos.Y = x, y
		w.SetPosition(owner, pos)
		return tengo.TrueValue, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos := w.Position(owner)
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"x": &tengo.Float{Value: pos.X},
			"y": &tengo.Float{Value: pos.Y},
		}}, nil
	}}

	values["emit"] = &tengo.UserFunction{Name: "emit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		w.Events().Push(ecs.Event{Type: name, Source: owner})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
