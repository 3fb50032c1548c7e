package tess

// EdgeType describes how an edge relates to the edge before it within a
// contour. Stroking uses it to decide where joins are drawn.
type EdgeType int

const (
	// StartsNewEdge marks an edge as geometrically distinct from its
	// predecessor; a join is applied between them when stroking.
	StartsNewEdge EdgeType = iota

	// ContinuesEdge marks an edge as a smooth continuation of its
	// predecessor, for example one half of a subdivided curve.
	ContinuesEdge
)

// MaxRecursionLimit is the hard ceiling on subdivision depth. Values of
// TessellationParams.MaxRecursion above it are clamped, keeping the
// segment count of a single edge bounded even for degenerate curves.
const MaxRecursionLimit = 24

// TessellationParams controls how finely edges are subdivided when a
// Path is tessellated.
type TessellationParams struct {
	// MaxDistance is the largest distance allowed between the true curve
	// and its tessellation. A non-positive value means no error bound is
	// enforced and curves are tessellated at the coarsest level their
	// type allows.
	MaxDistance float64

	// MaxRecursion bounds how many times an edge may be cut in half.
	// The recursion ceiling wins over MaxDistance: subdivision stops at
	// MaxRecursion even if the error bound is not yet met.
	MaxRecursion int

	// AllowArcs selects whether tessellation may emit arc segments.
	// When false, everything is flattened to line segments.
	AllowArcs bool
}

// DefaultTessellationParams returns the parameters used when a Path is
// tessellated without an explicit threshold.
func DefaultTessellationParams() TessellationParams {
	return TessellationParams{
		MaxDistance:  -1,
		MaxRecursion: 5,
		AllowArcs:    true,
	}
}

// clampedMaxRecursion returns MaxRecursion limited to MaxRecursionLimit.
func (p TessellationParams) clampedMaxRecursion() int {
	if p.MaxRecursion > MaxRecursionLimit {
		return MaxRecursionLimit
	}
	if p.MaxRecursion < 0 {
		return 0
	}
	return p.MaxRecursion
}

// TessellationState is a resumable cursor into one edge's recursive
// tessellation. A Refiner holds the state of every edge so that a later,
// tighter threshold only continues subdividing where the recorded error
// still exceeds it instead of restarting from the original interpolator.
//
// States returned by non-recursive tessellations are nil.
type TessellationState interface {
	// RecursionDepth returns the deepest subdivision level reached.
	RecursionDepth() int

	// ResumeTessellation continues subdividing against params and writes
	// the complete tessellation of the edge into dst. The returned value
	// is an upper bound for the distance between the true curve and the
	// emitted segments.
	ResumeTessellation(params TessellationParams, dst *SegmentStorage) float64
}

// Interpolator describes the shape of a single edge of a contour: how
// the curve travels from the edge's start point to its end point.
//
// Interpolators are created through PathContour and Path methods and
// cannot be implemented outside this package; custom edge shapes are
// supplied through the CustomCurve interface instead.
type Interpolator interface {
	// StartPoint returns the point the edge leaves from.
	StartPoint() Point

	// EndPoint returns the point the edge arrives at.
	EndPoint() Point

	// EdgeType reports whether the edge starts a new join-delimited edge
	// chain or smoothly continues the previous one.
	EdgeType() EdgeType

	// Prev returns the interpolator of the edge ending at this edge's
	// start point, or nil for the first edge of a contour.
	Prev() Interpolator

	// IsFlat reports whether the edge is exactly the line segment from
	// StartPoint to EndPoint.
	IsFlat() bool

	// ApproximateBoundingBox returns a quickly computed rectangle
	// containing the edge. It need not be tight.
	ApproximateBoundingBox() Rect

	// Tessellate writes the tessellation of the edge into dst and
	// returns an upper bound for the distance between the true curve
	// and the emitted segments. Recursive tessellations also return a
	// TessellationState that can resume subdivision at a tighter
	// threshold later; non-recursive ones return nil.
	Tessellate(params TessellationParams, dst *SegmentStorage) (TessellationState, float64)

	// clone returns a deep copy relinked to prev. It also closes the
	// interface to implementations inside this package.
	clone(prev Interpolator) Interpolator
}

// interpolatorBase carries the fields every interpolator shares.
type interpolatorBase struct {
	prev  Interpolator
	start Point
	end   Point
	etp   EdgeType
}

func (b *interpolatorBase) StartPoint() Point  { return b.start }
func (b *interpolatorBase) EndPoint() Point    { return b.end }
func (b *interpolatorBase) EdgeType() EdgeType { return b.etp }
func (b *interpolatorBase) Prev() Interpolator { return b.prev }

// flatInterpolator is an edge that is just the line segment from start
// to end. Its tessellation is a single exact segment.
type flatInterpolator struct {
	interpolatorBase
}

func newFlatInterpolator(prev Interpolator, start, end Point, etp EdgeType) *flatInterpolator {
	return &flatInterpolator{interpolatorBase{prev: prev, start: start, end: end, etp: etp}}
}

func (f *flatInterpolator) IsFlat() bool { return true }

func (f *flatInterpolator) ApproximateBoundingBox() Rect {
	return NewRect(f.start, f.end)
}

func (f *flatInterpolator) Tessellate(_ TessellationParams, dst *SegmentStorage) (TessellationState, float64) {
	dst.AddLineSegment(f.start, f.end)
	return nil, 0
}

func (f *flatInterpolator) clone(prev Interpolator) Interpolator {
	c := &flatInterpolator{f.interpolatorBase}
	c.prev = prev
	return c
}
