package tess

import "math"

// CurveRegion is an opaque handle to a parametric sub-range of a curve,
// produced by CustomCurve.Split. The engine never inspects a region's
// geometry directly; it only asks the region how far the curve inside it
// strays from a candidate line segment or arc.
type CurveRegion interface {
	// DistanceToChord returns an upper bound for the distance between
	// the curve restricted to the region and the chord connecting the
	// region's endpoints.
	DistanceToChord() float64

	// DistanceToArc returns an approximate upper bound for the distance
	// between the curve restricted to the region and an arc described by
	// its radius, center, the unit vector from the center toward the
	// middle of the arc, and the cosine of half the arc's angle.
	DistanceToArc(radius float64, center Point, towardMid Vec2, cosHalfAngle float64) float64
}

// CustomCurve supplies the subdivision primitives the tessellation
// engine needs to flatten an arbitrary edge shape. Values are added to
// a contour with CustomTo, CustomMove or EndContourCustom.
//
// Split must be deterministic and free of side effects: the engine
// calls it repeatedly for the same region during refinement and relies
// on getting the same subdivision every time.
type CustomCurve interface {
	// Split cuts region in half at its parametric midpoint, returning
	// the two halves and the point on the curve between them. A nil
	// region stands for the entire curve.
	Split(region CurveRegion) (left, right CurveRegion, mid Point)

	// MinimumRecursion returns a lower bound on how many times the
	// curve is cut in half regardless of measured error. Curves whose
	// shape a single midpoint sample captures poorly (near-cusps)
	// report larger values.
	MinimumRecursion() int

	// IsFlat reports whether the curve is exactly the segment between
	// its endpoints.
	IsFlat() bool

	// ApproximateBoundingBox returns a quickly computed rectangle
	// containing the curve. It need not be tight.
	ApproximateBoundingBox() Rect
}

// genericInterpolator drives the recursive subdivision engine over any
// CustomCurve. Bezier edges are the in-package user of it.
type genericInterpolator struct {
	interpolatorBase
	curve CustomCurve
}

func newGenericInterpolator(prev Interpolator, start, end Point, etp EdgeType, curve CustomCurve) *genericInterpolator {
	return &genericInterpolator{
		interpolatorBase: interpolatorBase{prev: prev, start: start, end: end, etp: etp},
		curve:            curve,
	}
}

func (g *genericInterpolator) IsFlat() bool { return g.curve.IsFlat() }

func (g *genericInterpolator) ApproximateBoundingBox() Rect {
	return g.curve.ApproximateBoundingBox()
}

func (g *genericInterpolator) Tessellate(params TessellationParams, dst *SegmentStorage) (TessellationState, float64) {
	st := &genericState{curve: g.curve}

	// The engine measures error on regions and regions only exist below
	// the root, so the curve is always split at least once.
	left, right, mid := g.curve.Split(nil)
	st.frontier = []genericLeaf{
		{region: left, start: g.start, end: mid, depth: 1},
		{region: right, start: mid, end: g.end, depth: 1},
	}
	dist := st.ResumeTessellation(params, dst)
	return st, dist
}

func (g *genericInterpolator) clone(prev Interpolator) Interpolator {
	c := &genericInterpolator{interpolatorBase: g.interpolatorBase, curve: g.curve}
	c.prev = prev
	return c
}

// genericLeaf is one accepted region of the subdivision frontier,
// carrying enough context to continue splitting it later.
type genericLeaf struct {
	region     CurveRegion
	start, end Point
	depth      int
}

// genericState resumes subdivision from the accepted frontier instead of
// the root. Refinement revisits every leaf but only splits the ones
// whose error exceeds the new threshold; the rest re-emit their segments
// unchanged.
type genericState struct {
	curve    CustomCurve
	frontier []genericLeaf
	depth    int
}

func (st *genericState) RecursionDepth() int { return st.depth }

func (st *genericState) ResumeTessellation(params TessellationParams, dst *SegmentStorage) float64 {
	w := genericWorker{
		curve:  st.curve,
		params: params,
		maxRec: params.clampedMaxRecursion(),
		minRec: st.curve.MinimumRecursion(),
		dst:    dst,
	}
	for _, leaf := range st.frontier {
		w.refine(leaf)
	}
	st.frontier = w.out
	st.depth = w.maxDepth
	return w.maxDist
}

// genericWorker holds the per-pass bookkeeping of one tessellation run.
type genericWorker struct {
	curve  CustomCurve
	params TessellationParams
	maxRec int
	minRec int
	dst    *SegmentStorage

	out      []genericLeaf
	maxDist  float64
	maxDepth int
}

// refine accepts leaf, emitting its segments, or splits it in half and
// recurses. When arcs are allowed a leaf is approximated by the circle
// through its endpoints and midpoint; otherwise by its chord.
func (w *genericWorker) refine(leaf genericLeaf) {
	if w.params.AllowArcs {
		w.refineArc(leaf)
		return
	}
	w.refineLinear(leaf)
}

func (w *genericWorker) refineLinear(leaf genericLeaf) {
	dist := leaf.region.DistanceToChord()
	if w.needSplit(leaf.depth, dist) {
		left, right, mid := w.curve.Split(leaf.region)
		w.refine(genericLeaf{region: left, start: leaf.start, end: mid, depth: leaf.depth + 1})
		w.refine(genericLeaf{region: right, start: mid, end: leaf.end, depth: leaf.depth + 1})
		return
	}
	w.dst.AddLineSegment(leaf.start, leaf.end)
	w.accept(leaf, dist)
}

func (w *genericWorker) refineArc(leaf genericLeaf) {
	// The arc candidate needs the midpoint, so the region is split ahead
	// of the accept/recurse decision.
	left, right, mid := w.curve.Split(leaf.region)

	arc, ok := fitArc(leaf.start, mid, leaf.end)
	var dist float64
	if ok {
		dist = leaf.region.DistanceToArc(arc.radius, arc.center, arc.towardMid, arc.cosHalfAngle)
	} else {
		dist = leaf.region.DistanceToChord()
	}

	if w.needSplit(leaf.depth, dist) {
		w.refine(genericLeaf{region: left, start: leaf.start, end: mid, depth: leaf.depth + 1})
		w.refine(genericLeaf{region: right, start: mid, end: leaf.end, depth: leaf.depth + 1})
		return
	}

	if ok {
		w.dst.AddArcSegment(leaf.start, leaf.end, arc.center, arc.radius, arc.angle)
	} else {
		w.dst.AddLineSegment(leaf.start, leaf.end)
	}
	w.accept(leaf, dist)
}

func (w *genericWorker) needSplit(depth int, dist float64) bool {
	if depth >= w.maxRec {
		return false
	}
	if depth < w.minRec {
		return true
	}
	return w.params.MaxDistance > 0 && dist > w.params.MaxDistance
}

func (w *genericWorker) accept(leaf genericLeaf, dist float64) {
	w.out = append(w.out, leaf)
	if dist > w.maxDist {
		w.maxDist = dist
	}
	if leaf.depth > w.maxDepth {
		w.maxDepth = leaf.depth
	}
}

// fittedArc is a circle arc candidate through three samples of a curve.
type fittedArc struct {
	center       Point
	radius       float64
	angle        AngleRange
	towardMid    Vec2
	cosHalfAngle float64
}

// fitArc computes the arc from s to e passing through m. It reports
// false when the three points are too close to collinear for a stable
// circle, or when the resulting sweep would be degenerate; the caller
// then falls back to the chord.
func fitArc(s, m, e Point) (fittedArc, bool) {
	chord := e.Sub(s)
	chordLen := chord.Length()
	if chordLen <= 0 {
		return fittedArc{}, false
	}

	// Height of m above the chord decides whether a circle fit is
	// numerically meaningful.
	h := math.Abs(chord.Cross(m.Sub(s))) / chordLen
	if h <= 1e-9*chordLen {
		return fittedArc{}, false
	}

	center, ok := circumcenter(s, m, e)
	if !ok {
		return fittedArc{}, false
	}
	radius := s.Distance(center)
	if radius <= 0 {
		return fittedArc{}, false
	}

	begin := math.Atan2(s.Y-center.Y, s.X-center.X)
	sweep := sweepThrough(begin, center, m, e)
	if math.Abs(sweep) < 1e-12 || math.Abs(sweep) > 2*math.Pi-1e-12 {
		return fittedArc{}, false
	}

	end := begin + sweep
	if math.Min(begin, end) < -0.5*math.Pi {
		begin += 2 * math.Pi
		end += 2 * math.Pi
	}

	midAngle := begin + 0.5*sweep
	return fittedArc{
		center:       center,
		radius:       radius,
		angle:        AngleRange{Begin: begin, End: end},
		towardMid:    Vec2{X: math.Cos(midAngle), Y: math.Sin(midAngle)},
		cosHalfAngle: math.Cos(0.5 * sweep),
	}, true
}

// circumcenter returns the center of the circle through three points.
func circumcenter(a, b, c Point) (Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 || !isFinite(d) {
		return Point{}, false
	}
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	return Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}, true
}

// sweepThrough returns the signed sweep from the angle begin around
// center to the angle of e, choosing the direction that passes through m.
func sweepThrough(begin float64, center, m, e Point) float64 {
	am := math.Atan2(m.Y-center.Y, m.X-center.X)
	ae := math.Atan2(e.Y-center.Y, e.X-center.X)

	ccw := normalizeAngle(ae - begin)
	mid := normalizeAngle(am - begin)
	if mid <= ccw {
		return ccw
	}
	return ccw - 2*math.Pi
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
