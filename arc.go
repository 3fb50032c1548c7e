package tess

import "math"

// arcInterpolator is an edge along a circular arc. angle is the signed
// sweep in radians: positive counter-clockwise, negative clockwise, in
// a coordinate system where y increases upward.
type arcInterpolator struct {
	interpolatorBase
	center Point
	radius float64
	angle  float64
}

func newArcInterpolator(prev Interpolator, start Point, angle float64, end Point, etp EdgeType) *arcInterpolator {
	a := &arcInterpolator{
		interpolatorBase: interpolatorBase{prev: prev, start: start, end: end, etp: etp},
		angle:            angle,
	}

	chord := end.Sub(start)
	chordLen := chord.Length()
	if chordLen > 0 && angle != 0 {
		// The center sits on the perpendicular bisector of the chord at
		// the distance fixed by the inscribed sweep angle. For sweeps
		// beyond pi the tangent turns negative and moves the center to
		// the near side of the chord.
		half := 0.5 * math.Abs(angle)
		h := 0.5 * chordLen
		d := h / math.Tan(half)
		if angle < 0 {
			d = -d
		}
		u := chord.Div(chordLen)
		perp := Point{X: -u.Y, Y: u.X}
		mid := start.Lerp(end, 0.5)
		a.center = mid.Add(perp.Mul(d))
		a.radius = h / math.Sin(half)
	}
	return a
}

func (a *arcInterpolator) IsFlat() bool { return false }

// angleRange returns the begin/end angles of the arc around its center,
// shifted into the window AddArcSegment's quadrant table covers.
func (a *arcInterpolator) angleRange() AngleRange {
	begin := math.Atan2(a.start.Y-a.center.Y, a.start.X-a.center.X)
	end := begin + a.angle
	if math.Min(begin, end) < -0.5*math.Pi {
		begin += 2 * math.Pi
		end += 2 * math.Pi
	}
	return AngleRange{Begin: begin, End: end}
}

func (a *arcInterpolator) ApproximateBoundingBox() Rect {
	bb := NewRect(a.start, a.end)
	if a.radius <= 0 {
		return bb
	}

	// Add the axis extreme points of the circle that the arc passes
	// through.
	rng := a.angleRange()
	lo := math.Min(rng.Begin, rng.End)
	hi := math.Max(rng.Begin, rng.End)
	for k := math.Ceil(lo / (0.5 * math.Pi)); k*(0.5*math.Pi) <= hi; k++ {
		q := k * (0.5 * math.Pi)
		bb = bb.UnionPoint(Point{
			X: a.center.X + a.radius*math.Cos(q),
			Y: a.center.Y + a.radius*math.Sin(q),
		})
	}
	return bb
}

func (a *arcInterpolator) Tessellate(params TessellationParams, dst *SegmentStorage) (TessellationState, float64) {
	if a.radius <= 0 {
		dst.AddLineSegment(a.start, a.end)
		return nil, 0
	}
	if params.AllowArcs {
		// An arc segment reproduces the edge exactly; nothing to refine.
		dst.AddArcSegment(a.start, a.end, a.center, a.radius, a.angleRange())
		return nil, 0
	}

	st := &arcState{arc: a}
	dist := st.ResumeTessellation(params, dst)
	return st, dist
}

func (a *arcInterpolator) clone(prev Interpolator) Interpolator {
	c := &arcInterpolator{
		interpolatorBase: a.interpolatorBase,
		center:           a.center,
		radius:           a.radius,
		angle:            a.angle,
	}
	c.prev = prev
	return c
}

// minimumLinearRecursion returns the halving depth at which every chord
// spans at most a quarter turn, matching the monotonicity discipline of
// stored arc segments.
func (a *arcInterpolator) minimumLinearRecursion() int {
	depth := 0
	piece := math.Abs(a.angle)
	for piece > maxArcAngle && depth < MaxRecursionLimit {
		piece *= 0.5
		depth++
	}
	return depth
}

// arcState flattens an arc into 2^depth equal chords, doubling the
// count until the sagitta drops below the distance threshold.
type arcState struct {
	arc   *arcInterpolator
	depth int
}

func (st *arcState) RecursionDepth() int { return st.depth }

// sagitta returns the largest distance between the arc and the chord
// chain at the given halving depth.
func (st *arcState) sagitta(depth int) float64 {
	pieceHalf := 0.5 * math.Abs(st.arc.angle) / float64(int(1)<<depth)
	return st.arc.radius * (1 - math.Cos(pieceHalf))
}

func (st *arcState) ResumeTessellation(params TessellationParams, dst *SegmentStorage) float64 {
	maxRec := params.clampedMaxRecursion()

	depth := st.depth
	if min := st.arc.minimumLinearRecursion(); depth < min {
		depth = min
	}
	for depth < maxRec && params.MaxDistance > 0 && st.sagitta(depth) > params.MaxDistance {
		depth++
	}
	st.depth = depth

	rng := st.arc.angleRange()
	cnt := int(1) << depth
	da := rng.Delta() / float64(cnt)

	prev := st.arc.start
	for i := 1; i <= cnt; i++ {
		var next Point
		if i == cnt {
			next = st.arc.end
		} else {
			theta := rng.Begin + float64(i)*da
			next = Point{
				X: st.arc.center.X + st.arc.radius*math.Cos(theta),
				Y: st.arc.center.Y + st.arc.radius*math.Sin(theta),
			}
		}
		dst.AddLineSegment(prev, next)
		prev = next
	}
	return st.sagitta(depth)
}
