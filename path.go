package tess

// Path is a user-authored collection of contours built from line, Bezier,
// arc and custom edges. Tessellations of a Path are constructed lazily
// and cached per error threshold; any mutation drops the caches.
//
// A Path is not safe for concurrent use. The TessellatedPath values it
// returns are immutable and may be shared across goroutines.
type Path struct {
	contours []*PathContour
	linear   tessCache
	arc      tessCache
}

// NewPath returns an empty path.
func NewPath() *Path {
	p := &Path{}
	p.arc.allowArcs = true
	return p
}

func (p *Path) invalidate() {
	p.linear.reset()
	p.arc.reset()
}

func (p *Path) currentContour() *PathContour {
	if len(p.contours) == 0 || p.contours[len(p.contours)-1].Closed() {
		panic("tess: no open contour; call Move first")
	}
	return p.contours[len(p.contours)-1]
}

// Move starts a new contour at pt. The current contour, if any, is left
// open; use EndContour or one of its variants to close it.
func (p *Path) Move(pt Point) *Path {
	p.invalidate()
	p.contours = append(p.contours, NewPathContour(pt))
	return p
}

// LineTo adds an edge to pt. Control points queued with AddControlPoint
// turn it into a Bezier edge through them.
func (p *Path) LineTo(pt Point, etp EdgeType) *Path {
	p.invalidate()
	p.currentContour().ToPoint(pt, etp)
	return p
}

// QuadraticTo adds a quadratic Bezier edge through ct to pt.
func (p *Path) QuadraticTo(ct, pt Point, etp EdgeType) *Path {
	p.invalidate()
	c := p.currentContour()
	c.AddControlPoint(ct)
	c.ToPoint(pt, etp)
	return p
}

// CubicTo adds a cubic Bezier edge through ct1 and ct2 to pt.
func (p *Path) CubicTo(ct1, ct2, pt Point, etp EdgeType) *Path {
	p.invalidate()
	c := p.currentContour()
	c.AddControlPoint(ct1)
	c.AddControlPoint(ct2)
	c.ToPoint(pt, etp)
	return p
}

// ArcTo adds a circular arc edge sweeping angle radians to pt. A
// positive angle sweeps counter-clockwise in a y-up coordinate system;
// the angle must not be a multiple of 2*pi.
func (p *Path) ArcTo(angle float64, pt Point, etp EdgeType) *Path {
	p.invalidate()
	p.currentContour().ToArc(angle, pt, etp)
	return p
}

// CustomTo adds an edge to pt whose shape is supplied by curve.
func (p *Path) CustomTo(curve CustomCurve, pt Point, etp EdgeType) *Path {
	p.invalidate()
	p.currentContour().ToCustom(curve, pt, etp)
	return p
}

// AddControlPoint queues a control point for the next LineTo or
// EndContour, turning it into a Bezier edge.
func (p *Path) AddControlPoint(pt Point) *Path {
	p.invalidate()
	p.currentContour().AddControlPoint(pt)
	return p
}

// ClearControlPoints drops all queued control points.
func (p *Path) ClearControlPoints() *Path {
	if len(p.contours) > 0 {
		p.contours[len(p.contours)-1].ClearControlPoints()
	}
	return p
}

// EndContour closes the current contour with an edge back to its start
// point: a Bezier edge through any queued control points, a line
// segment otherwise.
func (p *Path) EndContour(etp EdgeType) *Path {
	p.invalidate()
	p.currentContour().End(etp)
	return p
}

// EndContourQuadratic closes the current contour with a quadratic
// Bezier edge through ct.
func (p *Path) EndContourQuadratic(ct Point, etp EdgeType) *Path {
	p.invalidate()
	c := p.currentContour()
	c.AddControlPoint(ct)
	c.End(etp)
	return p
}

// EndContourCubic closes the current contour with a cubic Bezier edge
// through ct1 and ct2.
func (p *Path) EndContourCubic(ct1, ct2 Point, etp EdgeType) *Path {
	p.invalidate()
	c := p.currentContour()
	c.AddControlPoint(ct1)
	c.AddControlPoint(ct2)
	c.End(etp)
	return p
}

// EndContourArc closes the current contour with an arc sweeping angle
// radians back to its start point.
func (p *Path) EndContourArc(angle float64, etp EdgeType) *Path {
	p.invalidate()
	p.currentContour().EndArc(angle, etp)
	return p
}

// EndContourCustom closes the current contour with a custom curve edge
// back to its start point.
func (p *Path) EndContourCustom(curve CustomCurve, etp EdgeType) *Path {
	p.invalidate()
	p.currentContour().EndCustom(curve, etp)
	return p
}

// QuadraticMove closes the current contour with a quadratic Bezier edge
// and starts a new contour at pt.
func (p *Path) QuadraticMove(ct, pt Point, etp EdgeType) *Path {
	p.EndContourQuadratic(ct, etp)
	return p.Move(pt)
}

// CubicMove closes the current contour with a cubic Bezier edge and
// starts a new contour at pt.
func (p *Path) CubicMove(ct1, ct2, pt Point, etp EdgeType) *Path {
	p.EndContourCubic(ct1, ct2, etp)
	return p.Move(pt)
}

// ArcMove closes the current contour with an arc and starts a new
// contour at pt.
func (p *Path) ArcMove(angle float64, pt Point, etp EdgeType) *Path {
	p.EndContourArc(angle, etp)
	return p.Move(pt)
}

// CustomMove closes the current contour with a custom curve edge and
// starts a new contour at pt.
func (p *Path) CustomMove(curve CustomCurve, pt Point, etp EdgeType) *Path {
	p.EndContourCustom(curve, etp)
	return p.Move(pt)
}

// AddContour adds a deep copy of a closed contour.
func (p *Path) AddContour(c *PathContour) *Path {
	if !c.Closed() {
		panic("tess: AddContour requires a closed contour")
	}
	p.invalidate()
	p.contours = append(p.contours, c.clone())
	return p
}

// AddContours adds deep copies of all closed contours of other.
func (p *Path) AddContours(other *Path) *Path {
	for _, c := range other.contours {
		if c.Closed() {
			p.AddContour(c)
		}
	}
	return p
}

// Clear removes all contours.
func (p *Path) Clear() {
	p.invalidate()
	p.contours = nil
}

// Clone returns a deep copy of the path. Cached tessellations are not
// carried over.
func (p *Path) Clone() *Path {
	q := NewPath()
	for _, c := range p.contours {
		q.contours = append(q.contours, c.clone())
	}
	return q
}

// NumberContours returns the number of contours.
func (p *Path) NumberContours() int { return len(p.contours) }

// Contour returns the i'th contour. The returned contour must not be
// modified; mutations through it bypass cache invalidation.
func (p *Path) Contour(i int) *PathContour { return p.contours[i] }

// IsFlat reports whether every edge of every contour is a line segment.
func (p *Path) IsFlat() bool {
	for _, c := range p.contours {
		if !c.IsFlat() {
			return false
		}
	}
	return true
}

// ApproximateBoundingBox returns a bounding box containing the path
// without tessellating it. The second return is false when the path has
// no geometry.
func (p *Path) ApproximateBoundingBox() (Rect, bool) {
	var bb Rect
	has := false
	for _, c := range p.contours {
		cb, ok := c.ApproximateBoundingBox()
		if !ok {
			continue
		}
		if !has {
			bb = cb
			has = true
		} else {
			bb = bb.Union(cb)
		}
	}
	return bb, has
}

// Tessellation returns a tessellation of the path into line segments
// whose max distance from the true path is at most maxDistance. A
// non-positive maxDistance returns the coarsest cached level. Results
// are cached until the path is mutated.
func (p *Path) Tessellation(maxDistance float64) *TessellatedPath {
	return p.linear.fetch(p, maxDistance)
}

// ArcTessellation is Tessellation with arc segments allowed, producing
// far fewer segments for curved paths.
func (p *Path) ArcTessellation(maxDistance float64) *TessellatedPath {
	return p.arc.fetch(p, maxDistance)
}

// Refinement keeps digging past the recursion ceiling a few times
// before giving up on an unreachable threshold.
const (
	maxRefinePasses      = 8
	refineExtraRecursion = 2
)

// tessCache holds the tessellations of one family (linear or arc),
// ordered coarsest first, plus the refiner that extends the finest one.
type tessCache struct {
	allowArcs bool
	entries   []*TessellatedPath
	refiner   *Refiner
}

func (c *tessCache) reset() {
	c.entries = nil
	c.refiner = nil
}

func (c *tessCache) fetch(p *Path, maxDistance float64) *TessellatedPath {
	if len(c.entries) == 0 {
		params := DefaultTessellationParams()
		params.AllowArcs = c.allowArcs
		base, ref := newTessellatedPath(p, params)
		c.entries = append(c.entries, base)
		c.refiner = ref
	}

	if maxDistance <= 0 {
		return c.entries[0]
	}
	for _, tp := range c.entries {
		if tp.MaxDistance() <= maxDistance {
			return tp
		}
	}

	for pass := 0; pass < maxRefinePasses; pass++ {
		c.refiner.Refine(maxDistance, refineExtraRecursion)
		tp := c.refiner.Tessellation()
		if tp != c.entries[len(c.entries)-1] {
			c.entries = append(c.entries, tp)
		}
		if tp.MaxDistance() <= maxDistance {
			return tp
		}
	}

	finest := c.entries[len(c.entries)-1]
	Logger().Warn("tessellation refinement stopped short of threshold",
		"requested", maxDistance,
		"achieved", finest.MaxDistance(),
		"recursion", finest.MaxRecursion())
	return finest
}
