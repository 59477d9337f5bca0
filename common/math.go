package common

import "github.com/jakecoffman/cp"

// Vec2 is a 2D point or extent in screen pixels.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Box returns the axis-aligned box anchored at pos with the given extent.
// Screen Y grows downward, so B holds the top edge and T the bottom edge.
func Box(pos, size Vec2) cp.BB {
	return cp.BB{L: pos.X, B: pos.Y, R: pos.X + size.X, T: pos.Y + size.Y}
}

// Contains is an inclusive hit-test of p against the box at pos/size.
func Contains(pos, size, p Vec2) bool {
	return Box(pos, size).ContainsVect(p.Vector())
}
