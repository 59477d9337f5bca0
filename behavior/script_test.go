package behavior

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/input"
)

const testScript = `
hooks := {
	init: func(engine, state, arg) {
		state.ticks = 0
	},
	update: func(engine, state, arg) {
		state.ticks += 1
		engine.move_x(2)
	},
	click: func(engine, state, arg) {
		engine.emit("start")
	},
	key_down: func(engine, state, arg) {
		state.last_key = arg
		if arg == "Space" {
			engine.set_position(5, 6)
		}
	},
}
`

func TestScriptHooks(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	s := NewScript("test", []byte(testScript))
	if err := ecs.Add(w, e, ScriptComponent, s); err != nil {
		t.Fatalf("add script: %v", err)
	}
	if got := s.State("ticks"); got != int64(0) {
		t.Fatalf("init hook should run on attach, ticks=%v", got)
	}

	w.Update(0.5)
	w.Update(0.5)
	if got := s.State("ticks"); got != int64(2) {
		t.Fatalf("expected 2 ticks, got %v", got)
	}
	// first frame moves with zero recorded delta, second with 0.5
	if got := w.Position(e); got != common.V(80, 0) {
		t.Fatalf("expected (80,0), got %v", got)
	}

	w.UpdateEvents(e, []input.Event{{Kind: input.KeyDown, Key: ebiten.KeySpace}}, nil)
	if got := s.State("last_key"); got != "Space" {
		t.Fatalf("expected last_key Space, got %v", got)
	}
	if got := w.Position(e); got != common.V(5, 6) {
		t.Fatalf("expected (5,6), got %v", got)
	}

	if err := s.Call(PhaseClick, nil); err != nil {
		t.Fatalf("click: %v", err)
	}
	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != "start" || events[0].Source != e {
		t.Fatalf("expected start event, got %+v", events)
	}

	if err := s.Call("unknown_phase", nil); err != nil {
		t.Fatalf("phases without a hook should be no-ops, got %v", err)
	}
}

func TestScriptCompileError(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	s := NewScript("broken", []byte(`hooks := {`))
	if err := ecs.Add(w, e, ScriptComponent, s); err == nil {
		t.Fatalf("expected compile error")
	}
	if ecs.Has(w, e, ScriptComponent) {
		t.Fatalf("broken script must not be attached")
	}
	if err := s.Call(PhaseUpdate, 0.1); err == nil {
		t.Fatalf("calling an uncompiled script should fail")
	}
}
