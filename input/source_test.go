package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func kinds(events []Event) []Kind {
	out := make([]Kind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestSourceNext(t *testing.T) {
	s := NewSource()

	cases := []struct {
		name  string
		frame Frame
		want  []Kind
	}{
		{"first_frame_primes_motion", Frame{X: 5, Y: 5}, []Kind{MouseMotion}},
		{"still_cursor_is_quiet", Frame{X: 5, Y: 5}, []Kind{}},
		{"move_then_press", Frame{X: 6, Y: 5, ButtonsPressed: []ebiten.MouseButton{ebiten.MouseButtonLeft}}, []Kind{MouseMotion, MouseButtonDown}},
		{"release_and_keys", Frame{
			X: 6, Y: 5,
			ButtonsReleased: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			KeysPressed:     []ebiten.Key{ebiten.KeyA},
			KeysReleased:    []ebiten.Key{ebiten.KeyD},
		}, []Kind{MouseButtonUp, KeyDown, KeyUp}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := kinds(s.Next(c.frame))
			if len(got) != len(c.want) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Fatalf("expected %v, got %v", c.want, got)
				}
			}
		})
	}

	if x, y := s.CursorPosition(); x != 6 || y != 5 {
		t.Fatalf("expected cursor (6,5), got (%d,%d)", x, y)
	}
}

func TestSourceNextCarriesKeys(t *testing.T) {
	s := NewSource()
	events := s.Next(Frame{KeysPressed: []ebiten.Key{ebiten.KeyArrowLeft}})
	if len(events) != 2 || events[1].Kind != KeyDown || events[1].Key != ebiten.KeyArrowLeft {
		t.Fatalf("unexpected events %+v", events)
	}
}
