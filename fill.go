package tess

import (
	"fmt"
	"sort"

	"github.com/gogpu/tess/internal/sweep"
)

// WindingRule selects which winding numbers count as inside when a
// filled path is queried.
type WindingRule int

const (
	// WindingNonzero fills every region whose winding number is not zero.
	WindingNonzero WindingRule = iota
	// WindingOdd fills regions with odd winding number.
	WindingOdd
	// WindingPositive fills regions with positive winding number.
	WindingPositive
	// WindingNegative fills regions with negative winding number.
	WindingNegative
	// WindingAbsGeqTwo fills regions whose winding number is at least
	// two in magnitude.
	WindingAbsGeqTwo
)

// Inside reports whether a region with winding number w is filled
// under the rule.
func (r WindingRule) Inside(w int) bool {
	switch r {
	case WindingNonzero:
		return w != 0
	case WindingOdd:
		return w&1 != 0
	case WindingPositive:
		return w > 0
	case WindingNegative:
		return w < 0
	case WindingAbsGeqTwo:
		return w >= 2 || w <= -2
	}
	return false
}

func (r WindingRule) String() string {
	switch r {
	case WindingNonzero:
		return "nonzero"
	case WindingOdd:
		return "odd"
	case WindingPositive:
		return "positive"
	case WindingNegative:
		return "negative"
	case WindingAbsGeqTwo:
		return "abs-geq-two"
	}
	return "unknown"
}

// FilledPath is the fill preparation of a tessellated path: a
// triangulation of every region the contours bound, with each triangle
// carrying the winding number of its region. A single preparation
// answers any winding rule, because a region whose winding number is
// zero is filled under no rule; the triangulation therefore covers the
// nonzero regions and queries select from those.
type FilledPath struct {
	points    []Point
	windings  []int
	byWinding map[int][]uint32
}

// newFilledPath triangulates the contours of src. Open contours are
// treated as if closed by a segment back to their start point.
func newFilledPath(src *TessellatedPath) (*FilledPath, error) {
	var tess sweep.Tessellator
	tess.Rule = sweep.WindingNonzero
	for ci := 0; ci < src.NumberContours(); ci++ {
		segs := src.ContourSegments(ci)
		if len(segs) == 0 {
			continue
		}
		coords := make([]float64, 0, 2*(len(segs)+1))
		for i := range segs {
			coords = append(coords, segs[i].Start.X, segs[i].Start.Y)
		}
		if !src.ContourClosed(ci) {
			last := segs[len(segs)-1]
			coords = append(coords, last.End.X, last.End.Y)
		}
		tess.AddContour(coords)
	}

	res, err := tess.Tessellate()
	if err != nil {
		return nil, fmt.Errorf("tess: fill preparation: %w", err)
	}

	f := &FilledPath{
		points:    make([]Point, len(res.Vertices)/2),
		byWinding: make(map[int][]uint32),
	}
	for i := range f.points {
		f.points[i] = Point{X: res.Vertices[2*i], Y: res.Vertices[2*i+1]}
	}
	for _, tri := range res.Triangles {
		f.byWinding[tri.Winding] = append(f.byWinding[tri.Winding],
			uint32(tri.V[0]), uint32(tri.V[1]), uint32(tri.V[2]))
	}
	f.windings = make([]int, 0, len(f.byWinding))
	for w := range f.byWinding {
		f.windings = append(f.windings, w)
	}
	sort.Ints(f.windings)

	Logger().Debug("filled path prepared",
		"vertices", len(f.points),
		"triangles", len(res.Triangles),
		"windings", len(f.windings))
	return f, nil
}

// Points returns the shared vertex pool of the triangulation.
func (f *FilledPath) Points() []Point { return f.points }

// Windings returns the distinct winding numbers of the triangulated
// regions in increasing order. Winding zero never appears.
func (f *FilledPath) Windings() []int { return f.windings }

// WindingTriangles returns the triangles of the regions with winding
// number w, as index triples into Points. Triangle vertices are in
// counter-clockwise order. The result is nil when no region has that
// winding number.
func (f *FilledPath) WindingTriangles(w int) []uint32 { return f.byWinding[w] }

// Triangles returns the triangles of every region filled under the
// rule, as index triples into Points.
func (f *FilledPath) Triangles(rule WindingRule) []uint32 {
	var out []uint32
	for _, w := range f.windings {
		if rule.Inside(w) {
			out = append(out, f.byWinding[w]...)
		}
	}
	return out
}

// Area returns the total area filled under the rule, summed over the
// selected triangles.
func (f *FilledPath) Area(rule WindingRule) float64 {
	area := 0.0
	for _, w := range f.windings {
		if !rule.Inside(w) {
			continue
		}
		idx := f.byWinding[w]
		for i := 0; i+2 < len(idx); i += 3 {
			a := f.points[idx[i]]
			b := f.points[idx[i+1]]
			c := f.points[idx[i+2]]
			area += 0.5 * (b.Sub(a)).Cross(c.Sub(a))
		}
	}
	return area
}
