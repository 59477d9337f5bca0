package system

import (
	"testing"

	"github.com/milk9111/objkit/behavior"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/input"
)

type scriptedPoller struct {
	frames [][]input.Event
	x, y   int
}

func (p *scriptedPoller) Poll() []input.Event {
	if len(p.frames) == 0 {
		return nil
	}
	f := p.frames[0]
	p.frames = p.frames[1:]
	return f
}

func (p *scriptedPoller) CursorPosition() (int, int) { return p.x, p.y }

type nopDrawable struct{ size common.Vec2 }

func (d nopDrawable) Size() common.Vec2                           { return d.size }
func (d nopDrawable) SetColorAndOpacity(_, _, _ uint8, _ float32) {}

func TestInputSystemDispatchesToEveryEntity(t *testing.T) {
	w := ecs.NewWorld()
	clicks := map[string]int{}

	spawn := func(name string, pos common.Vec2, active bool) {
		e := w.CreateEntity()
		w.SetPosition(e, pos)
		w.SetActive(e, active)
		if err := ecs.Add(w, e, behavior.ImageComponent, behavior.NewImage(nopDrawable{size: common.V(10, 10)})); err != nil {
			t.Fatalf("add image: %v", err)
		}
		if err := ecs.Add(w, e, behavior.ButtonComponent, behavior.NewButton(func() { clicks[name]++ })); err != nil {
			t.Fatalf("add button: %v", err)
		}
	}
	spawn("a", common.V(0, 0), true)
	spawn("b", common.V(5, 5), false)
	spawn("c", common.V(50, 50), true)

	poller := &scriptedPoller{x: 7, y: 7, frames: [][]input.Event{
		{{Kind: input.MouseButtonDown}, {Kind: input.MouseButtonUp}},
		nil,
	}}
	sys := NewInputSystem(poller)

	sys.Update(w)
	if clicks["a"] != 1 || clicks["b"] != 1 || clicks["c"] != 0 {
		t.Fatalf("overlapping buttons should all fire, got %v", clicks)
	}
	if len(sys.Last()) != 2 {
		t.Fatalf("expected 2 dispatched events, got %d", len(sys.Last()))
	}

	sys.Update(w)
	if len(sys.Last()) != 0 || clicks["a"] != 1 {
		t.Fatalf("quiet frame should dispatch nothing")
	}
}

func TestRenderOrder(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRenderSystem()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	w.SetLayer(e1, 2)
	w.SetLayer(e3, 1)

	assertOrder := func(want ...ecs.Entity) {
		t.Helper()
		got := r.Order(w)
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	assertOrder(e2, e3, e1)

	w.SetLayer(e2, 5)
	assertOrder(e2, e3, e1)
	r.Invalidate()
	assertOrder(e3, e1, e2)

	w.DestroyEntity(e3)
	e4 := w.CreateEntity()
	assertOrder(e4, e1, e2)
}
