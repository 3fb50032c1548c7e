package tess

import "sort"

// Bezier curves in Bernstein form. The tessellation engine itself works
// on control polygons; these types serve the places that need the true
// curve: derivative extrema for tight bounding boxes, and position
// sampling.

// quadBez is a quadratic bezier. p1 is the single control point.
type quadBez struct {
	p0, p1, p2 Point
}

// eval returns the curve point at parameter t in [0, 1].
func (q quadBez) eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.p0.X + 2*mt*t*q.p1.X + t*t*q.p2.X,
		Y: mt*mt*q.p0.Y + 2*mt*t*q.p1.Y + t*t*q.p2.Y,
	}
}

// extrema returns the parameters inside (0, 1) where one coordinate of
// the derivative vanishes. The derivative of a quadratic is linear, so
// each axis contributes at most one root.
func (q quadBez) extrema() []float64 {
	d0 := q.p1.Sub(q.p0)
	d1 := q.p2.Sub(q.p1)

	var out []float64
	if dd := d1.X - d0.X; dd != 0 {
		if t := -d0.X / dd; t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	if dd := d1.Y - d0.Y; dd != 0 {
		if t := -d0.Y / dd; t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return out
}

// boundingBox returns the tight axis-aligned box of the curve, from the
// endpoints and the axis extrema.
func (q quadBez) boundingBox() Rect {
	bb := NewRect(q.p0, q.p2)
	for _, t := range q.extrema() {
		bb = bb.UnionPoint(q.eval(t))
	}
	return bb
}

// cubicBez is a cubic bezier. p1 and p2 are the control points.
type cubicBez struct {
	p0, p1, p2, p3 Point
}

func (c cubicBez) eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	return Point{
		X: mt2*mt*c.p0.X + 3*mt2*t*c.p1.X + 3*mt*t2*c.p2.X + t2*t*c.p3.X,
		Y: mt2*mt*c.p0.Y + 3*mt2*t*c.p1.Y + 3*mt*t2*c.p2.Y + t2*t*c.p3.Y,
	}
}

// extrema returns the parameters in [0, 1] where one coordinate of the
// derivative vanishes. The derivative of a cubic is quadratic, so each
// axis contributes up to two roots.
func (c cubicBez) extrema() []float64 {
	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	d2 := c.p3.Sub(c.p2)

	out := make([]float64, 0, 4)
	out = append(out, solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	out = append(out, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
	sort.Float64s(out)
	return out
}

func (c cubicBez) boundingBox() Rect {
	bb := NewRect(c.p0, c.p3)
	for _, t := range c.extrema() {
		bb = bb.UnionPoint(c.eval(t))
	}
	return bb
}
