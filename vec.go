package tess

import "math"

// Vec2 is a direction with magnitude, distinct from the positions held
// in Point. Tessellation hands out tangents and normals as Vec2 values;
// the tangents attached to segments, joins and caps are unit length.
type Vec2 struct {
	X, Y float64
}

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Neg returns v pointing the opposite way.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product of v and w. It is positive
// when w is a counter-clockwise turn from v.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Perp returns v rotated a quarter turn counter-clockwise. For a unit
// tangent this is the leftward unit normal.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Approx reports whether v and w agree within epsilon componentwise.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// PointToVec2 reinterprets a point difference as a vector.
func PointToVec2(p Point) Vec2 {
	return Vec2(p)
}
