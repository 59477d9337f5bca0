package common

import "testing"

func TestContains(t *testing.T) {
	pos := V(10, 10)
	size := V(50, 20)

	cases := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", V(20, 15), true},
		{"top_left_edge", V(10, 10), true},
		{"bottom_right_edge", V(60, 30), true},
		{"left_of", V(9.9, 15), false},
		{"below", V(20, 30.1), false},
		{"far", V(100, 100), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Contains(pos, size, c.p); got != c.want {
				t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestBoxOrientation(t *testing.T) {
	bb := Box(V(1, 2), V(3, 4))
	if bb.L != 1 || bb.B != 2 || bb.R != 4 || bb.T != 6 {
		t.Fatalf("unexpected box %+v", bb)
	}
}
