package tess

import "math"

// SegmentType identifies the primitive shape a tessellated segment carries.
type SegmentType int

const (
	// SegmentLine is a straight segment from Start to End.
	SegmentLine SegmentType = iota
	// SegmentArc is a circular arc segment around Center.
	SegmentArc
)

// AngleRange is a directed interval of angles in radians. Begin may be
// greater than End, in which case the arc sweeps clockwise.
type AngleRange struct {
	Begin, End float64
}

// Delta returns the signed angular extent End - Begin.
func (a AngleRange) Delta() float64 {
	return a.End - a.Begin
}

// Segment is a single piece of a tessellated edge, either a line segment
// or a circular arc. Consecutive segments of an edge are contiguous:
// the End of one is exactly the Start of the next.
type Segment struct {
	// Type selects between line and arc.
	Type SegmentType

	// Start and End are the segment endpoints.
	Start, End Point

	// Center, Radius and Angle describe the circle an arc segment lies on.
	// They are zero for line segments. Angle.Begin is the angle of Start
	// relative to Center, Angle.End the angle of End.
	Center Point
	Radius float64
	Angle  AngleRange

	// Length is the arc length of the segment.
	Length float64

	// EnterTangent and LeaveTangent are the unit direction vectors of the
	// curve at Start and End. For a line segment both are the same.
	EnterTangent, LeaveTangent Vec2

	// DistanceFromEdgeStart is the arc-length distance from the start of
	// the containing edge to Start.
	DistanceFromEdgeStart float64

	// DistanceFromContourStart is the arc-length distance from the start
	// of the containing contour to Start.
	DistanceFromContourStart float64

	// EdgeLength is the total length of the containing edge.
	EdgeLength float64

	// OpenContourLength is the length of the containing contour without
	// its closing edge. ClosedContourLength includes the closing edge.
	// For open contours the two are equal.
	OpenContourLength   float64
	ClosedContourLength float64

	// TangentWithPredecessor is true when this segment was produced by
	// subdividing a larger arc and continues the previous segment's
	// tangent exactly.
	TangentWithPredecessor bool
}

// computeLocals fills the fields of s that depend only on its own
// geometry: Length, EnterTangent and LeaveTangent.
func (s *Segment) computeLocals() {
	if s.Type == SegmentLine {
		delta := Vec2{X: s.End.X - s.Start.X, Y: s.End.Y - s.Start.Y}
		s.Length = delta.Length()
		if s.Length > 0 {
			delta = delta.Div(s.Length)
		} else {
			delta = Vec2{X: 1, Y: 0}
		}
		s.EnterTangent = delta
		s.LeaveTangent = delta
		return
	}

	sgn := 1.0
	if s.Angle.Begin >= s.Angle.End {
		sgn = -1.0
	}
	s.Length = math.Abs(s.Angle.Delta()) * s.Radius
	s.EnterTangent = Vec2{X: -math.Sin(s.Angle.Begin), Y: math.Cos(s.Angle.Begin)}.Mul(sgn)
	s.LeaveTangent = Vec2{X: -math.Sin(s.Angle.End), Y: math.Cos(s.Angle.End)}.Mul(sgn)
}

// unionInto grows bb to cover the segment. Arc segments also add the two
// sagitta-offset points so the bulge of the arc beyond its chord is
// covered, not just the endpoints.
func (s *Segment) unionInto(bb *Rect, has *bool) {
	unionPt := func(p Point) {
		if !*has {
			*bb = Rect{Min: p, Max: p}
			*has = true
			return
		}
		*bb = bb.UnionPoint(p)
	}

	unionPt(s.Start)
	unionPt(s.End)
	if s.Type == SegmentArc {
		halfAngle := 0.5 * s.Angle.Delta()
		mid := s.Angle.Begin + halfAngle
		bulge := s.Radius * (1 - math.Cos(halfAngle))
		tau := Vec2{X: math.Cos(mid), Y: math.Sin(mid)}.Mul(bulge)
		unionPt(Point{X: s.Start.X + tau.X, Y: s.Start.Y + tau.Y})
		unionPt(Point{X: s.End.X + tau.X, Y: s.End.Y + tau.Y})
	}
}

// maxArcAngle is the largest angular extent a single stored arc segment
// may have. Larger arcs are subdivided so every stored piece is monotonic
// and well approximated by its chord and sagitta.
const maxArcAngle = math.Pi / 4

// SegmentStorage collects the segments an interpolator emits during
// tessellation. Interpolators never construct Segment values directly;
// they call AddLineSegment and AddArcSegment and the path assembles the
// cumulative distance fields afterwards.
type SegmentStorage struct {
	segments []Segment
}

// AddLineSegment appends a straight segment from start to end.
func (st *SegmentStorage) AddLineSegment(start, end Point) {
	st.segments = append(st.segments, Segment{
		Type:  SegmentLine,
		Start: start,
		End:   end,
	})
}

// AddArcSegment appends an arc around center from start to end sweeping
// the given angle range. The arc is split at every quadrant angle it
// crosses and then into pieces of at most pi/4 so each stored segment is
// monotonic in both x and y.
//
// The angle range must lie within (-pi, 3*pi); callers produce ranges in
// that window by computing Begin with atan2 and shifting the whole range
// by 2*pi when it would drop below -pi/2.
func (st *SegmentStorage) AddArcSegment(start, end Point, center Point, radius float64, angle AngleRange) {
	// Quadrant angles interior to any admissible range, with the point on
	// the unit circle at each.
	critAngles := [7]float64{
		-0.5 * math.Pi,
		0,
		0.5 * math.Pi,
		math.Pi,
		1.5 * math.Pi,
		2.0 * math.Pi,
		2.5 * math.Pi,
	}
	critPts := [7]Vec2{
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}

	prevAngle := angle.Begin
	prevPt := start
	for i := 0; i < len(critAngles); i++ {
		var k int
		var shouldSplit bool

		if angle.Begin < angle.End {
			k = i
			shouldSplit = angle.Begin < critAngles[k] && critAngles[k] < angle.End
		} else {
			k = len(critAngles) - 1 - i
			shouldSplit = angle.End < critAngles[k] && critAngles[k] < angle.Begin
		}

		if shouldSplit {
			endPt := Point{
				X: center.X + radius*critPts[k].X,
				Y: center.Y + radius*critPts[k].Y,
			}
			st.addSubdividedArc(prevPt, endPt, center, radius,
				AngleRange{Begin: prevAngle, End: critAngles[k]})
			prevPt = endPt
			prevAngle = critAngles[k]
		}
	}

	st.addSubdividedArc(prevPt, end, center, radius,
		AngleRange{Begin: prevAngle, End: angle.End})
}

// addSubdividedArc appends the arc split into equal pieces of at most
// maxArcAngle. Interior piece boundaries are computed from the circle so
// adjacent pieces share the exact same point; the caller's start and end
// are used unmodified at the extremes.
func (st *SegmentStorage) addSubdividedArc(start, end Point, center Point, radius float64, angle AngleRange) {
	a := math.Abs(angle.Delta())
	cnt := 1 + int(a/maxArcAngle)
	da := angle.Delta() / float64(cnt)

	theta := angle.Begin
	for i := 0; i < cnt; i++ {
		var s Segment
		if i == 0 {
			s.Start = start
			s.TangentWithPredecessor = false
		} else {
			s.Start = st.segments[len(st.segments)-1].End
			s.TangentWithPredecessor = true
		}
		if i+1 == cnt {
			s.End = end
		} else {
			s.End = Point{
				X: center.X + radius*math.Cos(theta+da),
				Y: center.Y + radius*math.Sin(theta+da),
			}
		}
		s.Center = center
		s.Radius = radius
		s.Angle = AngleRange{Begin: theta, End: theta + da}
		s.Type = SegmentArc
		st.segments = append(st.segments, s)
		theta += da
	}
}

// reset empties the storage, keeping its capacity.
func (st *SegmentStorage) reset() {
	st.segments = st.segments[:0]
}
