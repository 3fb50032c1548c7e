package tess

// PathContour is one connected run of edges of a Path. Edges are
// appended in order with the To methods; closing the contour with End,
// EndArc or EndCustom adds the final edge back to the start point.
//
// The zero value is not usable; contours are created with
// NewPathContour or through Path.
type PathContour struct {
	startPt Point
	started bool
	closed  bool
	control []Point
	interps []Interpolator
}

// NewPathContour returns a contour starting at start.
func NewPathContour(start Point) *PathContour {
	return &PathContour{startPt: start, started: true}
}

func (c *PathContour) mustUsable() {
	if !c.started {
		panic("tess: PathContour must be created with NewPathContour")
	}
}

func (c *PathContour) mustOpen() {
	c.mustUsable()
	if c.closed {
		panic("tess: contour already ended")
	}
}

// lastInterpolator returns the most recently added edge, or nil.
func (c *PathContour) lastInterpolator() Interpolator {
	if len(c.interps) == 0 {
		return nil
	}
	return c.interps[len(c.interps)-1]
}

// currentEnd returns the point the next edge will start from.
func (c *PathContour) currentEnd() Point {
	if last := c.lastInterpolator(); last != nil {
		return last.EndPoint()
	}
	return c.startPt
}

// edgeType forces the first edge of the contour to start a new edge.
func (c *PathContour) edgeType(etp EdgeType) EdgeType {
	if len(c.interps) == 0 {
		return StartsNewEdge
	}
	return etp
}

// AddControlPoint queues a control point for the next edge. The queued
// points turn the next ToPoint or End into a Bezier edge of matching
// degree.
func (c *PathContour) AddControlPoint(pt Point) {
	c.mustOpen()
	c.control = append(c.control, pt)
}

// ClearControlPoints drops all queued control points.
func (c *PathContour) ClearControlPoints() {
	c.mustUsable()
	c.control = c.control[:0]
}

// ToPoint adds an edge to pt. With control points queued the edge is a
// Bezier curve through them; otherwise it is a line segment.
func (c *PathContour) ToPoint(pt Point, etp EdgeType) {
	c.mustOpen()
	c.interps = append(c.interps, c.makeEdge(pt, etp))
}

// ToArc adds a circular arc edge sweeping angle radians to pt. A
// positive angle sweeps counter-clockwise in a y-up coordinate system.
// The angle must not be a multiple of 2*pi. Queued control points must
// be consumed or cleared first.
func (c *PathContour) ToArc(angle float64, pt Point, etp EdgeType) {
	c.mustOpen()
	c.mustHaveNoControlPoints()
	c.interps = append(c.interps,
		newArcInterpolator(c.lastInterpolator(), c.currentEnd(), angle, pt, c.edgeType(etp)))
}

// ToCustom adds an edge to pt whose shape is described by curve.
// Queued control points must be consumed or cleared first.
func (c *PathContour) ToCustom(curve CustomCurve, pt Point, etp EdgeType) {
	c.mustOpen()
	c.mustHaveNoControlPoints()
	c.interps = append(c.interps,
		newGenericInterpolator(c.lastInterpolator(), c.currentEnd(), pt, c.edgeType(etp), curve))
}

// End closes the contour with an edge back to its start point, a Bezier
// curve when control points are queued and a line segment otherwise.
func (c *PathContour) End(etp EdgeType) {
	c.mustOpen()
	c.interps = append(c.interps, c.makeEdge(c.startPt, etp))
	c.closed = true
}

// EndArc closes the contour with an arc sweeping angle radians back to
// its start point.
func (c *PathContour) EndArc(angle float64, etp EdgeType) {
	c.mustOpen()
	c.mustHaveNoControlPoints()
	c.interps = append(c.interps,
		newArcInterpolator(c.lastInterpolator(), c.currentEnd(), angle, c.startPt, c.edgeType(etp)))
	c.closed = true
}

// EndCustom closes the contour with a custom curve edge back to its
// start point.
func (c *PathContour) EndCustom(curve CustomCurve, etp EdgeType) {
	c.mustOpen()
	c.mustHaveNoControlPoints()
	c.interps = append(c.interps,
		newGenericInterpolator(c.lastInterpolator(), c.currentEnd(), c.startPt, c.edgeType(etp), curve))
	c.closed = true
}

func (c *PathContour) makeEdge(pt Point, etp EdgeType) Interpolator {
	prev := c.lastInterpolator()
	start := c.currentEnd()
	etp = c.edgeType(etp)
	if len(c.control) == 0 {
		return newFlatInterpolator(prev, start, pt, etp)
	}
	ip := newBezierInterpolator(prev, start, c.control, pt, etp)
	c.control = c.control[:0]
	return ip
}

func (c *PathContour) mustHaveNoControlPoints() {
	if len(c.control) > 0 {
		panic("tess: control points queued; consume them with ToPoint or clear them first")
	}
}

// Closed reports whether the contour has been ended.
func (c *PathContour) Closed() bool { return c.closed }

// NumberPoints returns how many distinct points the contour passes
// through: the start point plus one per edge, except that a closed
// contour's final edge returns to the start.
func (c *PathContour) NumberPoints() int {
	if c.closed {
		return len(c.interps)
	}
	return len(c.interps) + 1
}

// Point returns the i'th point of the contour. Point(0) is the start.
func (c *PathContour) Point(i int) Point {
	if i == 0 {
		return c.startPt
	}
	return c.interps[i-1].EndPoint()
}

// NumberEdges returns the number of edges added so far, the closing
// edge included.
func (c *PathContour) NumberEdges() int { return len(c.interps) }

// Edge returns the interpolator of the i'th edge.
func (c *PathContour) Edge(i int) Interpolator { return c.interps[i] }

// IsFlat reports whether every edge of the contour is a line segment.
func (c *PathContour) IsFlat() bool {
	for _, ip := range c.interps {
		if !ip.IsFlat() {
			return false
		}
	}
	return true
}

// ApproximateBoundingBox returns the union of the edge bounding boxes
// without tessellating. The second return is false for a contour with
// no geometry.
func (c *PathContour) ApproximateBoundingBox() (Rect, bool) {
	if !c.started {
		return Rect{}, false
	}
	if len(c.interps) == 0 {
		return Rect{Min: c.startPt, Max: c.startPt}, true
	}
	bb := c.interps[0].ApproximateBoundingBox()
	for _, ip := range c.interps[1:] {
		bb = bb.Union(ip.ApproximateBoundingBox())
	}
	return bb, true
}

// clone returns a deep copy with the edge chain relinked.
func (c *PathContour) clone() *PathContour {
	d := &PathContour{
		startPt: c.startPt,
		started: c.started,
		closed:  c.closed,
	}
	d.control = append([]Point(nil), c.control...)
	var prev Interpolator
	for _, ip := range c.interps {
		cp := ip.clone(prev)
		d.interps = append(d.interps, cp)
		prev = cp
	}
	return d
}
