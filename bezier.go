package tess

import "math"

// bezierCurve implements CustomCurve for a Bezier curve of any degree.
// pts is the full control polygon, endpoints included.
type bezierCurve struct {
	pts []Point
}

func newBezierInterpolator(prev Interpolator, start Point, control []Point, end Point, etp EdgeType) *genericInterpolator {
	pts := make([]Point, 0, len(control)+2)
	pts = append(pts, start)
	pts = append(pts, control...)
	pts = append(pts, end)
	return newGenericInterpolator(prev, start, end, etp, &bezierCurve{pts: pts})
}

func (b *bezierCurve) Split(region CurveRegion) (CurveRegion, CurveRegion, Point) {
	pts := b.pts
	if r, ok := region.(*bezierRegion); ok {
		pts = r.pts
	}
	left, right := deCasteljauSplit(pts)
	return &bezierRegion{pts: left}, &bezierRegion{pts: right}, left[len(left)-1]
}

// MinimumRecursion returns the smallest k with 2^k control points per
// region, so the control polygon of every accepted region is short
// enough for its deviation bound to be trusted.
func (b *bezierCurve) MinimumRecursion() int {
	min := 1
	for (1 << min) < len(b.pts) {
		min++
	}
	return min
}

func (b *bezierCurve) IsFlat() bool {
	start := b.pts[0]
	end := b.pts[len(b.pts)-1]
	dir := end.Sub(start)
	for _, p := range b.pts[1 : len(b.pts)-1] {
		if dir.Cross(p.Sub(start)) != 0 {
			return false
		}
	}
	return true
}

// ApproximateBoundingBox returns a tight box for quadratic and cubic
// curves, computed from the derivative extrema. Higher degrees fall
// back to the control polygon, which contains the curve by the convex
// hull property.
func (b *bezierCurve) ApproximateBoundingBox() Rect {
	switch len(b.pts) {
	case 3:
		return quadBez{p0: b.pts[0], p1: b.pts[1], p2: b.pts[2]}.boundingBox()
	case 4:
		return cubicBez{p0: b.pts[0], p1: b.pts[1], p2: b.pts[2], p3: b.pts[3]}.boundingBox()
	}
	bb := Rect{Min: b.pts[0], Max: b.pts[0]}
	for _, p := range b.pts[1:] {
		bb = bb.UnionPoint(p)
	}
	return bb
}

// bezierRegion is the control polygon of one parametric half produced
// by repeated de Casteljau subdivision.
type bezierRegion struct {
	pts []Point
}

func (r *bezierRegion) DistanceToChord() float64 {
	start := r.pts[0]
	end := r.pts[len(r.pts)-1]
	max := 0.0
	for _, p := range r.pts[1 : len(r.pts)-1] {
		if d := distanceToSegment(p, start, end); d > max {
			max = d
		}
	}
	return max
}

func (r *bezierRegion) DistanceToArc(radius float64, center Point, towardMid Vec2, cosHalfAngle float64) float64 {
	sinHalf := math.Sqrt(math.Max(0, 1-cosHalfAngle*cosHalfAngle))
	endA := Point{
		X: center.X + radius*(towardMid.X*cosHalfAngle+towardMid.Y*sinHalf),
		Y: center.Y + radius*(-towardMid.X*sinHalf+towardMid.Y*cosHalfAngle),
	}
	endB := Point{
		X: center.X + radius*(towardMid.X*cosHalfAngle-towardMid.Y*sinHalf),
		Y: center.Y + radius*(towardMid.X*sinHalf+towardMid.Y*cosHalfAngle),
	}

	max := 0.0
	for _, p := range r.pts[1 : len(r.pts)-1] {
		v := p.Sub(center)
		l := v.Length()

		var d float64
		switch {
		case l == 0:
			d = radius
		case v.X*towardMid.X+v.Y*towardMid.Y >= cosHalfAngle*l:
			// Inside the angular wedge of the arc: radial distance.
			d = math.Abs(l - radius)
		default:
			d = math.Min(p.Distance(endA), p.Distance(endB))
		}
		if d > max {
			max = d
		}
	}
	return max
}

// deCasteljauSplit cuts a control polygon at t = 1/2 and returns the
// control polygons of the two halves. The last point of left and the
// first point of right coincide and lie on the curve.
func deCasteljauSplit(pts []Point) (left, right []Point) {
	n := len(pts)
	work := make([]Point, n)
	copy(work, pts)
	left = make([]Point, n)
	right = make([]Point, n)
	for level := 0; level < n; level++ {
		left[level] = work[0]
		right[n-1-level] = work[n-1-level]
		for i := 0; i < n-1-level; i++ {
			work[i] = work[i].Lerp(work[i+1], 0.5)
		}
	}
	return left, right
}

// distanceToSegment returns the distance from p to the segment ab.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	len2 := ab.LengthSquared()
	if len2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
