package behavior

import (
	"errors"
	"testing"

	"github.com/milk9111/objkit/assets"
	"github.com/milk9111/objkit/common"
	"github.com/milk9111/objkit/ecs"
	"github.com/milk9111/objkit/input"
	"github.com/milk9111/objkit/render"
)

type buttonFixture struct {
	w      *ecs.World
	e      ecs.Entity
	img    *fakeDrawable
	button *Button
	clicks int
}

func newButtonFixture(t *testing.T) *buttonFixture {
	t.Helper()
	f := &buttonFixture{w: ecs.NewWorld()}
	f.e = f.w.CreateEntity()
	f.w.SetPosition(f.e, common.V(10, 10))
	f.img = &fakeDrawable{size: common.V(50, 20)}
	if err := ecs.Add(f.w, f.e, ImageComponent, NewImage(f.img)); err != nil {
		t.Fatalf("add image: %v", err)
	}
	f.button = NewButton(func() { f.clicks++ })
	if err := ecs.Add(f.w, f.e, ButtonComponent, f.button); err != nil {
		t.Fatalf("add button: %v", err)
	}
	return f
}

func TestButtonPressRelease(t *testing.T) {
	cases := []struct {
		name       string
		press      common.Vec2
		release    common.Vec2
		wantState  ButtonState // after press
		pressTint  uint8
		wantClicks int
	}{
		{"press_and_release_inside", common.V(20, 15), common.V(20, 15), ButtonPressed, 120, 1},
		{"press_inside_release_outside", common.V(20, 15), common.V(100, 100), ButtonPressed, 120, 0},
		{"press_outside_release_inside", common.V(100, 100), common.V(20, 15), ButtonIdle, 0, 1},
		{"edges_are_inside", common.V(10, 10), common.V(60, 30), ButtonPressed, 120, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newButtonFixture(t)

			f.button.OnMouseButtonDown(c.press)
			if f.button.State() != c.wantState {
				t.Fatalf("expected %s after press, got %s", c.wantState, f.button.State())
			}
			if f.img.gray() != c.pressTint {
				t.Fatalf("expected tint %d after press, got %d", c.pressTint, f.img.gray())
			}

			f.button.OnMouseButtonUp(c.release)
			if f.clicks != c.wantClicks {
				t.Fatalf("expected %d clicks, got %d", c.wantClicks, f.clicks)
			}
			if f.img.gray() != 255 || f.img.alpha != 1 {
				t.Fatalf("release must restore full brightness, got %d/%v", f.img.gray(), f.img.alpha)
			}
			if f.button.State() != ButtonIdle {
				t.Fatalf("expected idle after release, got %s", f.button.State())
			}
		})
	}
}

func TestButtonMotion(t *testing.T) {
	f := newButtonFixture(t)

	f.button.OnMouseButtonMotion(common.V(200, 200))
	if f.img.tints != 1 || f.img.gray() != 255 {
		t.Fatalf("motion outside must reset tint even without a prior hover")
	}
	if f.button.State() != ButtonIdle {
		t.Fatalf("expected idle, got %s", f.button.State())
	}

	f.button.OnMouseButtonMotion(common.V(30, 20))
	if f.button.State() != ButtonHovered || f.img.gray() != 180 {
		t.Fatalf("expected hovered tint 180, got %s/%d", f.button.State(), f.img.gray())
	}

	f.button.OnMouseButtonMotion(common.V(0, 0))
	if f.button.State() != ButtonIdle || f.img.gray() != 255 {
		t.Fatalf("expected idle tint 255, got %s/%d", f.button.State(), f.img.gray())
	}
	if f.clicks != 0 {
		t.Fatalf("motion must never click")
	}
}

func TestButtonBoundsRefreshOnlyOnMotion(t *testing.T) {
	f := newButtonFixture(t)
	f.w.SetPosition(f.e, common.V(200, 200))

	f.button.OnMouseButtonDown(common.V(210, 210))
	if f.button.State() == ButtonPressed {
		t.Fatalf("press should test against the bounds cached before the move")
	}
	f.button.OnMouseButtonDown(common.V(20, 15))
	if f.button.State() != ButtonPressed {
		t.Fatalf("press inside the stale bounds should still register")
	}

	f.button.OnMouseButtonMotion(common.V(210, 210))
	pos, size := f.button.Bounds()
	if pos != common.V(200, 200) || size != common.V(50, 20) {
		t.Fatalf("motion should refresh bounds, got %v %v", pos, size)
	}
	f.button.OnMouseButtonDown(common.V(210, 210))
	if f.button.State() != ButtonPressed {
		t.Fatalf("press inside refreshed bounds should register")
	}
}

func TestButtonCreatesDefaultImage(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	var keys []string

	b := NewButton(nil)
	b.Loader = fakeLoader(common.V(96, 32), &keys)
	if err := ecs.Add(w, e, ButtonComponent, b); err != nil {
		t.Fatalf("add button: %v", err)
	}

	if len(keys) != 1 || keys[0] != assets.DefaultImage {
		t.Fatalf("expected the default image to be loaded once, got %v", keys)
	}
	img, ok := ecs.Get(w, e, ImageComponent)
	if !ok || img.Drawable == nil {
		t.Fatalf("expected a sibling image to be attached")
	}
	if w.Size(e) != common.V(96, 32) {
		t.Fatalf("default image should size the owner, got %v", w.Size(e))
	}
	if _, size := b.Bounds(); size != common.V(96, 32) {
		t.Fatalf("button should cache the image size, got %v", size)
	}
	kinds := w.Components(e)
	if len(kinds) != 2 || kinds[0] != ImageComponent.Kind().ID() {
		t.Fatalf("image should be attached before the button, got %v", kinds)
	}

	// releasing with no callback must not panic
	b.OnMouseButtonUp(common.V(1, 1))
}

func TestButtonDefaultImageFailure(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	missing := errors.New("missing asset")

	b := NewButton(nil)
	b.Loader = render.LoaderFunc(func(string) (render.Drawable, error) { return nil, missing })
	err := ecs.Add(w, e, ButtonComponent, b)
	if !errors.Is(err, missing) {
		t.Fatalf("expected missing asset error, got %v", err)
	}
	if ecs.Has(w, e, ButtonComponent) || ecs.Has(w, e, ImageComponent) {
		t.Fatalf("nothing should be attached after a failed init")
	}
}

func TestButtonReplacement(t *testing.T) {
	f := newButtonFixture(t)
	second := 0
	if err := ecs.Add(f.w, f.e, ButtonComponent, NewButton(func() { second++ })); err != nil {
		t.Fatalf("replace button: %v", err)
	}
	count := 0
	ecs.ForEach(f.w, ButtonComponent, func(ecs.Entity, *Button) { count++ })
	if count != 1 {
		t.Fatalf("expected exactly one button, got %d", count)
	}

	f.w.UpdateEvents(f.e, []input.Event{{Kind: input.MouseButtonUp}}, input.FixedCursor{X: 20, Y: 15})
	if f.clicks != 0 || second != 1 {
		t.Fatalf("only the replacement should fire, got %d/%d", f.clicks, second)
	}
}

func TestButtonThroughWorldDispatch(t *testing.T) {
	f := newButtonFixture(t)
	f.button.Action = "start"

	cursor := input.FixedCursor{X: 20, Y: 15}
	f.w.UpdateEvents(f.e, []input.Event{
		{Kind: input.MouseMotion},
		{Kind: input.MouseButtonDown},
	}, cursor)
	if f.button.State() != ButtonPressed || f.img.gray() != 120 {
		t.Fatalf("expected pressed, got %s/%d", f.button.State(), f.img.gray())
	}

	f.w.UpdateEvents(f.e, []input.Event{{Kind: input.MouseButtonUp}}, cursor)
	if f.clicks != 1 {
		t.Fatalf("expected one click, got %d", f.clicks)
	}
	events := f.w.Events().Drain()
	if len(events) != 1 || events[0].Type != "start" || events[0].Source != f.e {
		t.Fatalf("expected a start event from the button, got %+v", events)
	}
}

func TestButtonDestroyedWithEntity(t *testing.T) {
	f := newButtonFixture(t)
	f.w.DestroyEntity(f.e)
	if f.button.image != nil {
		t.Fatalf("destroy should drop the image reference")
	}
	f.button.OnMouseButtonDown(common.V(20, 15))
}
