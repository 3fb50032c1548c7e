package tess

import (
	"math"
	"sync"
)

// Range is a half-open index interval [Begin, End) into the segment
// buffer of a TessellatedPath.
type Range struct {
	Begin, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Begin }

// Edge locates one tessellated edge inside a TessellatedPath.
type Edge struct {
	// Segments is the index range of the edge's segments in the path's
	// segment buffer.
	Segments Range

	// Type records whether the source edge started a new join-delimited
	// chain or continued the previous edge smoothly.
	Type EdgeType
}

// contourData indexes one contour's slice of the segment buffer.
type contourData struct {
	segments Range
	edges    []Edge
	closed   bool
}

// TessellatedPath is the tessellation of a Path against one set of
// TessellationParams: a single segment buffer with per-contour and
// per-edge index ranges, plus the metadata accumulated while building
// it. A TessellatedPath is immutable and safe for concurrent reads.
type TessellatedPath struct {
	params   TessellationParams
	segments []Segment
	contours []contourData

	bbox    Rect
	hasBBox bool

	maxDistance  float64
	maxRecursion int
	maxSegments  int
	hasArcs      bool

	// companion reproduces the tessellation as an explicit Path of
	// line and arc edges.
	companion *Path

	strokedOnce sync.Once
	stroked     *StrokedPath
	filledOnce  sync.Once
	filled      *FilledPath
	filledErr   error
}

// TessellationParameters returns the parameters the path was built with.
func (t *TessellatedPath) TessellationParameters() TessellationParams { return t.params }

// Segments returns the whole segment buffer. The slice must be treated
// as read-only.
func (t *TessellatedPath) Segments() []Segment { return t.segments }

// NumberContours returns the number of contours, including ones that
// tessellated to nothing.
func (t *TessellatedPath) NumberContours() int { return len(t.contours) }

// ContourSegments returns the segments of one contour.
func (t *TessellatedPath) ContourSegments(contour int) []Segment {
	r := t.contours[contour].segments
	return t.segments[r.Begin:r.End]
}

// ContourClosed reports whether the contour ended with a closing edge.
func (t *TessellatedPath) ContourClosed(contour int) bool {
	return t.contours[contour].closed
}

// NumberEdges returns the number of edges of a contour.
func (t *TessellatedPath) NumberEdges(contour int) int {
	return len(t.contours[contour].edges)
}

// Edge returns the index record of one edge of a contour.
func (t *TessellatedPath) Edge(contour, edge int) Edge {
	return t.contours[contour].edges[edge]
}

// EdgeSegments returns the segments of one edge of a contour.
func (t *TessellatedPath) EdgeSegments(contour, edge int) []Segment {
	r := t.contours[contour].edges[edge].Segments
	return t.segments[r.Begin:r.End]
}

// BoundingBox returns the bounding box of the tessellation. The second
// return is false when the path has no geometry.
func (t *TessellatedPath) BoundingBox() (Rect, bool) { return t.bbox, t.hasBBox }

// MaxDistance returns the largest recorded upper bound for the distance
// between the true path and the tessellation.
func (t *TessellatedPath) MaxDistance() float64 { return t.maxDistance }

// MaxRecursion returns the deepest subdivision level any edge reached.
func (t *TessellatedPath) MaxRecursion() int { return t.maxRecursion }

// MaxSegments returns the largest segment count any single edge
// produced.
func (t *TessellatedPath) MaxSegments() int { return t.maxSegments }

// HasArcs reports whether any segment is an arc.
func (t *TessellatedPath) HasArcs() bool { return t.hasArcs }

// Path returns the companion path: an explicit Path of line and arc
// edges reproducing the tessellation exactly. The returned path must
// not be modified.
func (t *TessellatedPath) Path() *Path { return t.companion }

// Stroked returns the stroke preparation of this tessellation,
// constructing it on first use.
func (t *TessellatedPath) Stroked() *StrokedPath {
	t.strokedOnce.Do(func() {
		t.stroked = newStrokedPath(t)
	})
	return t.stroked
}

// arcFillTolerance is the flattening tolerance used to fill an exact
// arc tessellation, as a fraction of the larger bounding box side.
const arcFillTolerance = 1e-3

// Filled returns the fill preparation of this tessellation, constructing
// it on first use. Filling works on line segments only; a tessellation
// with arcs fills through a linear tessellation of its companion path.
// Exact arcs record a max distance of zero, which names no finite
// flattening level, so the tolerance falls back to a fraction of the
// path size.
func (t *TessellatedPath) Filled() (*FilledPath, error) {
	t.filledOnce.Do(func() {
		src := t
		if t.hasArcs {
			th := t.maxDistance
			if th <= 0 {
				th = arcFillTolerance * math.Max(t.bbox.Width(), t.bbox.Height())
			}
			src = t.companion.Tessellation(th)
		}
		t.filled, t.filledErr = newFilledPath(src)
	})
	return t.filled, t.filledErr
}

// tessBuilder accumulates segments edge by edge into the flat buffer of
// a TessellatedPath, mirroring the bookkeeping of the metadata fields.
type tessBuilder struct {
	params TessellationParams

	segments []Segment
	contours []contourData

	bbox    Rect
	hasBBox bool

	maxDistance  float64
	maxRecursion int
	maxSegments  int
	hasArcs      bool

	companion *Path

	// per-contour state
	contourStart  int
	contourLength float64
	openLength    float64
	closedLength  float64
	curEdges      []Edge
	curClosed     bool
	edgeCount     int
	edgeIndex     int
}

func newTessBuilder(params TessellationParams) *tessBuilder {
	return &tessBuilder{params: params, companion: NewPath()}
}

func (b *tessBuilder) startContour(closed bool, numEdges int) {
	b.contourStart = len(b.segments)
	b.contourLength = 0
	b.openLength = 0
	b.closedLength = 0
	b.curEdges = make([]Edge, 0, numEdges)
	b.curClosed = closed
	b.edgeCount = numEdges
	b.edgeIndex = 0
}

// noteRecursion records the subdivision depth an edge reached.
func (b *tessBuilder) noteRecursion(depth int) {
	if depth > b.maxRecursion {
		b.maxRecursion = depth
	}
}

// addEdge appends one edge's scratch segments to the buffer, computing
// the local and cumulative fields of each segment on the way in.
func (b *tessBuilder) addEdge(scratch []Segment, edgeMaxDistance float64, etp EdgeType) {
	if len(scratch) == 0 {
		panic("tess: edge tessellated to no segments")
	}

	begin := len(b.segments)
	if len(scratch) > b.maxSegments {
		b.maxSegments = len(scratch)
	}
	if edgeMaxDistance > b.maxDistance {
		b.maxDistance = edgeMaxDistance
	}

	isClosing := b.curClosed && b.edgeIndex == b.edgeCount-1
	if b.edgeIndex == 0 {
		b.companion.Move(scratch[0].Start)
	}

	for n := range scratch {
		s := &scratch[n]

		if s.Type == SegmentArc {
			b.hasArcs = true
		}
		s.unionInto(&b.bbox, &b.hasBBox)
		s.computeLocals()

		if n != 0 {
			prev := &scratch[n-1]
			s.DistanceFromEdgeStart = prev.DistanceFromEdgeStart + prev.Length
		} else {
			s.DistanceFromEdgeStart = 0
		}
		s.DistanceFromContourStart = b.contourLength
		b.contourLength += s.Length

		b.appendToCompanion(s, n, isClosing && n+1 == len(scratch))
	}

	edgeLength := scratch[len(scratch)-1].DistanceFromEdgeStart + scratch[len(scratch)-1].Length
	for n := range scratch {
		scratch[n].EdgeLength = edgeLength
	}

	if b.curClosed {
		// The closing edge is excluded from the open length.
		if b.edgeIndex == b.edgeCount-2 {
			b.openLength = b.contourLength
		}
		if b.edgeIndex == b.edgeCount-1 {
			b.closedLength = b.contourLength
		}
	} else if b.edgeIndex == b.edgeCount-1 {
		b.openLength = b.contourLength
		b.closedLength = b.contourLength
	}

	b.segments = append(b.segments, scratch...)
	b.curEdges = append(b.curEdges, Edge{
		Segments: Range{Begin: begin, End: len(b.segments)},
		Type:     etp,
	})
	b.edgeIndex++
}

// appendToCompanion mirrors one segment into the companion path. The
// first segment of each edge starts a new edge there; the rest continue
// it. The last segment of a closing edge becomes the companion
// contour's closing edge.
func (b *tessBuilder) appendToCompanion(s *Segment, n int, last bool) {
	etp := StartsNewEdge
	if n != 0 {
		etp = ContinuesEdge
	}
	switch {
	case last && s.Type == SegmentArc:
		b.companion.EndContourArc(s.Angle.Delta(), etp)
	case last:
		b.companion.EndContour(etp)
	case s.Type == SegmentArc:
		b.companion.ArcTo(s.Angle.Delta(), s.End, etp)
	default:
		b.companion.LineTo(s.End, etp)
	}
}

func (b *tessBuilder) endContour() {
	for n := b.contourStart; n < len(b.segments); n++ {
		b.segments[n].OpenContourLength = b.openLength
		b.segments[n].ClosedContourLength = b.closedLength
	}
	b.contours = append(b.contours, contourData{
		segments: Range{Begin: b.contourStart, End: len(b.segments)},
		edges:    b.curEdges,
		closed:   b.curClosed,
	})
	b.curEdges = nil
}

func (b *tessBuilder) finish() *TessellatedPath {
	return &TessellatedPath{
		params:       b.params,
		segments:     b.segments,
		contours:     b.contours,
		bbox:         b.bbox,
		hasBBox:      b.hasBBox,
		maxDistance:  b.maxDistance,
		maxRecursion: b.maxRecursion,
		maxSegments:  b.maxSegments,
		hasArcs:      b.hasArcs,
		companion:    b.companion,
	}
}
