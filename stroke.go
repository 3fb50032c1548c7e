package tess

import "math"

// LineCap is the shape drawn at the open ends of a stroked contour.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half disc centered on the
	// endpoint.
	LineCapRound
	// LineCapSquare ends the stroke with a half square extending half
	// the stroke width past the endpoint.
	LineCapSquare
)

// LineJoin is the shape drawn where a stroked contour turns a corner.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet, falling
	// back to a bevel past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound connects the outer edges with a circular arc.
	LineJoinRound
	// LineJoinBevel connects the outer edges with a straight line.
	LineJoinBevel
)

// Stroke is the full style for generating a stroke outline. The With*
// methods operate on the value and return the modified copy, so styles
// derive from one another without sharing state.
type Stroke struct {
	// Width of the stroked line.
	Width float64

	// Cap drawn at the two ends of an open contour.
	Cap LineCap

	// Join drawn at the corners between edges.
	Join LineJoin

	// MiterLimit caps the ratio of miter length to stroke width;
	// corners sharper than that bevel instead.
	MiterLimit float64

	// Dash pattern, nil for a solid line.
	Dash *Dash
}

// DefaultStroke is a solid one-unit line with butt caps and miter
// joins limited at 4.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth sets the stroke width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap sets the cap shape for open contour ends.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin sets the corner shape.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit sets the miter limit. At 1 every miter bevels.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash sets the dash pattern, keeping a private copy of it. Pass
// nil to return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashPattern builds the dash pattern from alternating draw/skip
// lengths, like NewDash. WithDashPattern(5, 3) draws 5 units and skips
// 3.
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset shifts the dash pattern along the contour. Without a
// pattern there is nothing to shift.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed reports whether the stroke draws dashes rather than a solid
// line.
func (s Stroke) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone returns a copy that shares nothing with the receiver.
func (s Stroke) Clone() Stroke {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}

// StrokeJoin records a corner of a tessellated path where stroking
// places a join: the boundary between two edges of one contour.
type StrokeJoin struct {
	// Contour is the index of the contour the corner belongs to.
	Contour int

	// Point is the corner position.
	Point Point

	// EnterTangent is the unit tangent of the contour arriving at the
	// corner, LeaveTangent the unit tangent leaving it.
	EnterTangent Vec2
	LeaveTangent Vec2
}

// StrokeCap records an end of an open contour where stroking places a
// cap.
type StrokeCap struct {
	// Contour is the index of the open contour.
	Contour int

	// Point is the contour endpoint.
	Point Point

	// Tangent is the unit direction pointing out of the contour at the
	// endpoint.
	Tangent Vec2
}

// StrokedPath is the stroke preparation of a tessellated path. It
// keeps the tessellation together with the join and cap positions of
// its contours, so stroke outlines for any style can be generated
// without re-tessellating.
type StrokedPath struct {
	src   *TessellatedPath
	joins []StrokeJoin
	caps  []StrokeCap
}

func newStrokedPath(t *TessellatedPath) *StrokedPath {
	s := &StrokedPath{src: t}
	for ci := 0; ci < t.NumberContours(); ci++ {
		closed := t.ContourClosed(ci)
		numEdges := t.NumberEdges(ci)
		for ei := 0; ei < numEdges; ei++ {
			if ei == 0 && !closed {
				continue
			}
			if t.Edge(ci, ei).Type == ContinuesEdge {
				continue
			}
			prev := ei - 1
			if prev < 0 {
				prev = numEdges - 1
			}
			prevSegs := t.EdgeSegments(ci, prev)
			segs := t.EdgeSegments(ci, ei)
			if len(prevSegs) == 0 || len(segs) == 0 {
				continue
			}
			s.joins = append(s.joins, StrokeJoin{
				Contour:      ci,
				Point:        segs[0].Start,
				EnterTangent: prevSegs[len(prevSegs)-1].LeaveTangent,
				LeaveTangent: segs[0].EnterTangent,
			})
		}
		if !closed {
			segs := t.ContourSegments(ci)
			if len(segs) == 0 {
				continue
			}
			first := segs[0]
			last := segs[len(segs)-1]
			s.caps = append(s.caps,
				StrokeCap{Contour: ci, Point: first.Start, Tangent: first.EnterTangent.Neg()},
				StrokeCap{Contour: ci, Point: last.End, Tangent: last.LeaveTangent})
		}
	}
	return s
}

// Source returns the tessellation the preparation was built from.
func (s *StrokedPath) Source() *TessellatedPath { return s.src }

// Joins returns the corners where stroking places joins, in contour
// order. Edges marked as smooth continuations of their predecessor do
// not produce a join.
func (s *StrokedPath) Joins() []StrokeJoin { return s.joins }

// Caps returns the endpoints of open contours where stroking places
// caps, two per open contour.
func (s *StrokedPath) Caps() []StrokeCap { return s.caps }

// Outline expands the stroke into a fill path: the returned path
// bounds the area a pen of the given width covers when dragged along
// the source path. Line segments are offset perpendicular to their
// direction and arc segments become arcs of offset radius, so the
// outline is exact up to the tessellation of the source. Fill the
// result under the nonzero rule to rasterize the stroke.
func (s *StrokedPath) Outline(style Stroke) *Path {
	out := NewPath()
	if style.Width <= 0 {
		return out
	}
	e := &strokeExpander{
		style:  style,
		radius: 0.5 * style.Width,
		thresh: 2.0 * s.src.MaxDistance() / style.Width,
	}
	for ci := 0; ci < s.src.NumberContours(); ci++ {
		segs := liveSegments(s.src.ContourSegments(ci))
		if len(segs) == 0 {
			continue
		}
		closed := s.src.ContourClosed(ci)
		if style.IsDashed() {
			runs, covers := dashRuns(segs, closed, style.Dash)
			if covers {
				e.run(runs[0], true)
				continue
			}
			for _, r := range runs {
				e.run(r, false)
			}
		} else {
			e.run(segs, closed)
		}
	}
	e.flush(out)
	Logger().Debug("stroke outline built",
		"contours", out.NumberContours(),
		"width", style.Width,
		"dashed", style.IsDashed())
	return out
}

// liveSegments drops zero-length segments, which carry no direction.
func liveSegments(segs []Segment) []Segment {
	live := 0
	for i := range segs {
		if segs[i].Length > 0 {
			live++
		}
	}
	if live == len(segs) {
		return segs
	}
	out := make([]Segment, 0, live)
	for i := range segs {
		if segs[i].Length > 0 {
			out = append(out, segs[i])
		}
	}
	return out
}

type strokeOpKind int

const (
	strokeOpMove strokeOpKind = iota
	strokeOpLine
	strokeOpArc
	strokeOpClose
)

// strokeOp is one element of a stroke outline under construction. An
// arc op is the circular arc from the previous op's endpoint to pt
// turning by the signed sweep angle.
type strokeOp struct {
	kind  strokeOpKind
	pt    Point
	angle float64
}

type strokeBuilder struct {
	ops []strokeOp
}

func (b *strokeBuilder) isEmpty() bool { return len(b.ops) == 0 }
func (b *strokeBuilder) reset()        { b.ops = b.ops[:0] }

func (b *strokeBuilder) moveTo(p Point) {
	b.ops = append(b.ops, strokeOp{kind: strokeOpMove, pt: p})
}

func (b *strokeBuilder) lineTo(p Point) {
	b.ops = append(b.ops, strokeOp{kind: strokeOpLine, pt: p})
}

func (b *strokeBuilder) arcTo(angle float64, p Point) {
	b.ops = append(b.ops, strokeOp{kind: strokeOpArc, pt: p, angle: angle})
}

func (b *strokeBuilder) closeRing() {
	b.ops = append(b.ops, strokeOp{kind: strokeOpClose})
}

func (b *strokeBuilder) last() Point {
	return b.ops[len(b.ops)-1].pt
}

// strokeExpander walks the segment runs of one outline expansion. The
// two sides of the stroke grow in separate builders; forward follows
// the segment direction, backward is emitted reversed when a run
// finishes.
type strokeExpander struct {
	style  Stroke
	radius float64
	thresh float64

	forward  strokeBuilder
	backward strokeBuilder
	output   strokeBuilder

	startPt  Point
	startTan Vec2
	lastPt   Point
	lastTan  Vec2
}

func offsetPt(p Point, n Vec2) Point {
	return Point{X: p.X + n.X, Y: p.Y + n.Y}
}

func (e *strokeExpander) run(segs []Segment, closed bool) {
	for i := range segs {
		seg := &segs[i]
		e.doJoin(seg.Start, seg.EnterTangent)
		e.doSegment(seg)
	}
	if closed {
		e.finishClosed()
	} else {
		e.finish()
	}
}

// doJoin starts the side paths on the first segment of a run and joins
// them to the previous segment otherwise. tan is the unit tangent the
// next segment leaves p0 with.
func (e *strokeExpander) doJoin(p0 Point, tan Vec2) {
	norm := tan.Perp().Mul(e.radius)
	if e.forward.isEmpty() {
		e.forward.moveTo(offsetPt(p0, norm.Neg()))
		e.backward.moveTo(offsetPt(p0, norm))
		e.startPt = p0
		e.startTan = tan
		return
	}

	ab := e.lastTan
	cd := tan
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Straight continuations skip the join but still get the lineTo
	// pair, so the side paths stay connected across segment boundaries.
	// <= keeps exactly collinear boundaries join-free at zero threshold.
	if dot > 0 && math.Abs(cross) <= hypot*e.thresh {
		e.forward.lineTo(offsetPt(p0, norm.Neg()))
		e.backward.lineTo(offsetPt(p0, norm))
		return
	}

	switch e.style.Join {
	case LineJoinBevel:
		e.forward.lineTo(offsetPt(p0, norm.Neg()))
		e.backward.lineTo(offsetPt(p0, norm))
	case LineJoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	}
}

// miterJoin extends the outer side to the miter point when the miter
// limit allows, then bevels. The inner side cuts through the corner
// point to stay inside the stroke.
func (e *strokeExpander) miterJoin(p0 Point, norm, ab, cd Vec2, cross, dot, hypot float64) {
	limitSq := e.style.MiterLimit * e.style.MiterLimit
	if 2.0*hypot < (hypot+dot)*limitSq && cross != 0 {
		lastNorm := ab.Perp().Mul(e.radius)
		if cross > 0 {
			fpLast := offsetPt(p0, lastNorm.Neg())
			fpThis := offsetPt(p0, norm.Neg())
			h := ab.Cross(PointToVec2(fpThis.Sub(fpLast))) / cross
			e.forward.lineTo(offsetPt(fpThis, cd.Mul(-h)))
			e.backward.lineTo(p0)
		} else {
			fpLast := offsetPt(p0, lastNorm)
			fpThis := offsetPt(p0, norm)
			h := ab.Cross(PointToVec2(fpThis.Sub(fpLast))) / cross
			e.backward.lineTo(offsetPt(fpThis, cd.Mul(-h)))
			e.forward.lineTo(p0)
		}
	}
	e.forward.lineTo(offsetPt(p0, norm.Neg()))
	e.backward.lineTo(offsetPt(p0, norm))
}

// roundJoin connects the outer side with a circular arc around the
// corner. The inner side cuts straight across.
func (e *strokeExpander) roundJoin(p0 Point, norm Vec2, cross, dot float64) {
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.lineTo(offsetPt(p0, norm))
		e.forward.arcTo(angle, offsetPt(p0, norm.Neg()))
	} else {
		e.forward.lineTo(offsetPt(p0, norm.Neg()))
		e.backward.arcTo(angle, offsetPt(p0, norm))
	}
}

func (e *strokeExpander) doSegment(seg *Segment) {
	if seg.Type == SegmentLine {
		norm := seg.EnterTangent.Perp().Mul(e.radius)
		e.forward.lineTo(offsetPt(seg.End, norm.Neg()))
		e.backward.lineTo(offsetPt(seg.End, norm))
	} else {
		e.doArcSegment(seg)
	}
	e.lastPt = seg.End
	e.lastTan = seg.LeaveTangent
}

// doArcSegment offsets an arc segment to both sides. The side away
// from the arc center grows by half the width, the side toward it
// shrinks.
func (e *strokeExpander) doArcSegment(seg *Segment) {
	sweep := seg.Angle.Delta()
	sgn := 1.0
	if sweep < 0 {
		sgn = -1.0
	}
	e.sideArc(&e.forward, seg, seg.Radius+sgn*e.radius, sweep)
	e.sideArc(&e.backward, seg, seg.Radius-sgn*e.radius, sweep)
}

func (e *strokeExpander) sideArc(b *strokeBuilder, seg *Segment, radius, sweep float64) {
	if radius <= 0 {
		// The stroke is wider than the arc diameter; the inner offset
		// collapses to the center.
		b.lineTo(seg.Center)
		return
	}
	end := seg.Angle.End
	b.arcTo(sweep, Point{
		X: seg.Center.X + radius*math.Cos(end),
		Y: seg.Center.Y + radius*math.Sin(end),
	})
}

// finish completes an open run with end caps.
func (e *strokeExpander) finish() {
	if e.forward.isEmpty() {
		return
	}
	e.output.ops = append(e.output.ops, e.forward.ops...)
	e.applyCap(e.lastPt, e.lastTan, false)
	e.appendReversed(&e.backward)
	e.applyCap(e.startPt, e.startTan.Neg(), true)
	e.forward.reset()
	e.backward.reset()
}

// finishClosed completes a closed run: the forward side closes into the
// outer ring and the reversed backward side becomes a second ring of
// opposite orientation, leaving the area between them filled.
func (e *strokeExpander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}
	e.doJoin(e.startPt, e.startTan)
	e.output.ops = append(e.output.ops, e.forward.ops...)
	e.output.closeRing()
	e.output.moveTo(e.backward.last())
	e.appendReversed(&e.backward)
	e.output.closeRing()
	e.forward.reset()
	e.backward.reset()
}

// applyCap caps the stroke at center. outward is the unit direction
// pointing out of the run; the output currently sits on the right side
// of outward and the cap carries it to the left side.
func (e *strokeExpander) applyCap(center Point, outward Vec2, closePath bool) {
	norm := outward.Perp().Mul(e.radius)
	switch e.style.Cap {
	case LineCapButt:
		if closePath {
			e.output.closeRing()
		} else {
			e.output.lineTo(offsetPt(center, norm))
		}

	case LineCapRound:
		e.output.arcTo(math.Pi, offsetPt(center, norm))
		if closePath {
			e.output.closeRing()
		}

	case LineCapSquare:
		ext := outward.Mul(e.radius)
		e.output.lineTo(offsetPt(center, norm.Neg().Add(ext)))
		e.output.lineTo(offsetPt(center, norm.Add(ext)))
		if closePath {
			e.output.closeRing()
		} else {
			e.output.lineTo(offsetPt(center, norm))
		}
	}
}

// appendReversed appends the backward side to the output in reverse
// order. Reversing an arc negates its sweep.
func (e *strokeExpander) appendReversed(b *strokeBuilder) {
	ops := b.ops
	for i := len(ops) - 1; i >= 1; i-- {
		prev := ops[i-1].pt
		switch ops[i].kind {
		case strokeOpLine:
			e.output.lineTo(prev)
		case strokeOpArc:
			e.output.arcTo(-ops[i].angle, prev)
		}
	}
}

// flush replays the accumulated outline into a path.
func (e *strokeExpander) flush(out *Path) {
	for _, op := range e.output.ops {
		switch op.kind {
		case strokeOpMove:
			out.Move(op.pt)
		case strokeOpLine:
			out.LineTo(op.pt, StartsNewEdge)
		case strokeOpArc:
			out.ArcTo(op.angle, op.pt, StartsNewEdge)
		case strokeOpClose:
			out.EndContour(StartsNewEdge)
		}
	}
}

// dashRuns splits the segments of one contour into the pieces a dash
// pattern draws. The returned bool reports that a single run covers
// the whole closed contour, in which case it should be stroked closed.
// On closed contours a pattern that is mid-dash at both the start and
// the end has its first and last pieces joined across the start point.
func dashRuns(segs []Segment, closed bool, d *Dash) ([][]Segment, bool) {
	pattern := d.pattern()
	period := 0.0
	for _, l := range pattern {
		period += l
	}
	if period <= 0 {
		return [][]Segment{segs}, closed
	}

	off := d.NormalizedOffset()
	idx := 0
	for off > 0 && off >= pattern[idx] {
		off -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	rem := pattern[idx] - off
	on := idx%2 == 0
	firstOn := on

	var runs [][]Segment
	var cur []Segment
	for si := range segs {
		s := segs[si]
		for rem < s.Length {
			var head Segment
			head, s = splitSegmentAt(s, rem)
			if on {
				if head.Length > 0 {
					cur = append(cur, head)
				}
				if len(cur) > 0 {
					runs = append(runs, cur)
					cur = nil
				}
			}
			idx = (idx + 1) % len(pattern)
			on = !on
			rem = pattern[idx]
		}
		rem -= s.Length
		if on && s.Length > 0 {
			cur = append(cur, s)
		}
	}

	if on && len(cur) > 0 {
		if closed && firstOn && len(runs) == 0 {
			return [][]Segment{cur}, true
		}
		if closed && firstOn {
			runs[0] = append(cur, runs[0]...)
		} else {
			runs = append(runs, cur)
		}
	}
	return runs, false
}

// splitSegmentAt cuts a segment at the given arc length from its
// start. Arcs split at the proportional angle.
func splitSegmentAt(s Segment, at float64) (head, tail Segment) {
	head, tail = s, s
	if at <= 0 {
		head.End = s.Start
		head.Angle.End = s.Angle.Begin
		head.computeLocals()
		return head, tail
	}
	if at >= s.Length {
		tail.Start = s.End
		tail.Angle.Begin = s.Angle.End
		tail.computeLocals()
		tail.DistanceFromEdgeStart += s.Length
		tail.DistanceFromContourStart += s.Length
		return head, tail
	}

	t := at / s.Length
	var mid Point
	if s.Type == SegmentLine {
		mid = s.Start.Lerp(s.End, t)
	} else {
		midAngle := s.Angle.Begin + t*s.Angle.Delta()
		mid = Point{
			X: s.Center.X + s.Radius*math.Cos(midAngle),
			Y: s.Center.Y + s.Radius*math.Sin(midAngle),
		}
		head.Angle.End = midAngle
		tail.Angle.Begin = midAngle
	}
	head.End = mid
	tail.Start = mid
	head.computeLocals()
	tail.computeLocals()
	tail.DistanceFromEdgeStart += at
	tail.DistanceFromContourStart += at
	return head, tail
}
