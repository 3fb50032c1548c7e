package sweep

import "math"

// The sweep orders vertices lexicographically: by x first, then by y.
// "trans" variants swap the roles of the two axes.

func vertEq(u, v *vertex) bool {
	return u.x == v.x && u.y == v.y
}

func vertLeq(u, v *vertex) bool {
	return u.x < v.x || (u.x == v.x && u.y <= v.y)
}

func transLeq(u, v *vertex) bool {
	return u.y < v.y || (u.y == v.y && u.x <= v.x)
}

func edgeGoesLeft(e *halfEdge) bool {
	return vertLeq(e.dst(), e.org)
}

func edgeGoesRight(e *halfEdge) bool {
	return vertLeq(e.org, e.dst())
}

func vertL1dist(u, v *vertex) float64 {
	return math.Abs(u.x-v.x) + math.Abs(u.y-v.y)
}

// edgeEval returns a number whose sign matches the comparison of v.y
// against the edge uw evaluated at v.x. Requires vertLeq(u, v) and
// vertLeq(v, w). The result is computed from the smaller of the two
// horizontal gaps, which keeps the error bounded when v is close to
// one endpoint.
func edgeEval(u, v, w *vertex) float64 {
	gapL := v.x - u.x
	gapR := w.x - v.x
	if gapL+gapR <= 0 {
		// vertical edges are handled by the caller
		return 0
	}
	if gapL < gapR {
		return (v.y - u.y) + (u.y-w.y)*(gapL/(gapL+gapR))
	}
	return (v.y - w.y) + (w.y-u.y)*(gapR/(gapL+gapR))
}

// edgeSign has the same sign as edgeEval but avoids the division, so
// it is cheaper when only the sign is needed.
func edgeSign(u, v, w *vertex) float64 {
	gapL := v.x - u.x
	gapR := w.x - v.x
	if gapL+gapR > 0 {
		return (v.y-w.y)*gapL + (v.y-u.y)*gapR
	}
	return 0
}

// transEval is edgeEval with the axes exchanged. Requires
// transLeq(u, v) and transLeq(v, w).
func transEval(u, v, w *vertex) float64 {
	gapL := v.y - u.y
	gapR := w.y - v.y
	if gapL+gapR <= 0 {
		return 0
	}
	if gapL < gapR {
		return (v.x - u.x) + (u.x-w.x)*(gapL/(gapL+gapR))
	}
	return (v.x - w.x) + (w.x-u.x)*(gapR/(gapL+gapR))
}

func transSign(u, v, w *vertex) float64 {
	gapL := v.y - u.y
	gapR := w.y - v.y
	if gapL+gapR > 0 {
		return (v.x-w.x)*gapL + (v.x-u.x)*gapR
	}
	return 0
}

func vertCCW(u, v, w *vertex) bool {
	return u.x*(v.y-w.y)+v.x*(w.y-u.y)+w.x*(u.y-v.y) >= 0
}

// interpolate computes (b*x + a*y)/(a+b) without risking overflow or
// a zero divisor, so each value is pulled toward the other value's
// weight. Negative weights are treated as zero; if both weights vanish
// the midpoint is returned.
func interpolate(a, x, b, y float64) float64 {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	if a <= b {
		if b == 0 {
			return (x + y) / 2
		}
		return x + (y-x)*(a/(a+b))
	}
	return y + (x-y)*(b/(a+b))
}

// edgeIntersect stores into v the intersection of the edges (o1,d1)
// and (o2,d2). The result is guaranteed to stay inside both edges'
// bounding rectangles even when the inputs barely intersect, which is
// what keeps the sweep's event ordering consistent.
func edgeIntersect(o1, d1, o2, d2, v *vertex) {
	// Order the endpoints so that o1 <= d1, o2 <= d2 and o1 <= o2.
	// The intersection then lies between the middle two vertices.
	if !vertLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !vertLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !vertLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	switch {
	case !vertLeq(o2, d1):
		// The edges do not properly overlap in x; settle for the
		// midpoint of the middle vertices.
		v.x = (o2.x + d1.x) / 2
	case vertLeq(d1, d2):
		z1 := edgeEval(o1, o2, d1)
		z2 := edgeEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.x = interpolate(z1, o2.x, z2, d1.x)
	default:
		z1 := edgeSign(o1, o2, d1)
		z2 := -edgeSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.x = interpolate(z1, o2.x, z2, d2.x)
	}

	// Repeat with the axes exchanged to compute y.
	if !transLeq(o1, d1) {
		o1, d1 = d1, o1
	}
	if !transLeq(o2, d2) {
		o2, d2 = d2, o2
	}
	if !transLeq(o1, o2) {
		o1, o2 = o2, o1
		d1, d2 = d2, d1
	}

	switch {
	case !transLeq(o2, d1):
		v.y = (o2.y + d1.y) / 2
	case transLeq(d1, d2):
		z1 := transEval(o1, o2, d1)
		z2 := transEval(o2, d1, d2)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.y = interpolate(z1, o2.y, z2, d1.y)
	default:
		z1 := transSign(o1, o2, d1)
		z2 := -transSign(o1, d2, d1)
		if z1+z2 < 0 {
			z1, z2 = -z1, -z2
		}
		v.y = interpolate(z1, o2.y, z2, d2.y)
	}
}
