// Package sweep triangulates sets of closed contours with a plane
// sweep. Self-intersecting contours, overlapping contours and
// degenerate geometry (repeated points, zero-length edges, collinear
// runs) are all handled. Every output triangle carries the winding
// number of the region it covers, so a caller can keep triangles for
// any winding rule after a single pass.
package sweep

import (
	"errors"
	"fmt"
)

// WindingRule selects which winding numbers count as interior.
type WindingRule int

const (
	WindingOdd WindingRule = iota
	WindingNonzero
	WindingPositive
	WindingNegative
	WindingAbsGeqTwo
)

func (r WindingRule) inside(n int) bool {
	switch r {
	case WindingOdd:
		return n&1 != 0
	case WindingNonzero:
		return n != 0
	case WindingPositive:
		return n > 0
	case WindingNegative:
		return n < 0
	case WindingAbsGeqTwo:
		return n >= 2 || n <= -2
	}
	return false
}

// ErrFailed is wrapped by every error returned from Tessellate.
var ErrFailed = errors.New("sweep: tessellation failed")

// abort carries an internal invariant failure up to Tessellate, which
// turns it into an error instead of crashing the caller.
type abort struct{ msg string }

func assert(cond bool, msg string) {
	if !cond {
		panic(abort{msg})
	}
}

// Triangle is one output triangle, wound counterclockwise. V indexes
// the Result vertex list; Winding is the winding number of the region
// the triangle lies in.
type Triangle struct {
	V       [3]int
	Winding int
}

// Result is the triangulated interior of the input contours.
type Result struct {
	// Vertices holds two coordinates per vertex.
	Vertices []float64
	// VertexIndices maps each vertex back to the position of the
	// matching coordinate pair given to AddContour, counted across
	// all contours, or -1 for vertices synthesized at intersections.
	VertexIndices []int
	Triangles     []Triangle
}

// A Tessellator accumulates contours and triangulates them. Add the
// input with AddContour, then call Tessellate once; the Tessellator
// cannot be reused afterwards. The zero value is ready to use and
// applies the odd winding rule.
type Tessellator struct {
	// Rule classifies interior regions during the sweep. Triangles
	// are only produced for regions the rule marks as inside.
	Rule WindingRule

	mesh  *mesh
	dict  *dict
	pq    eventQueue
	event *vertex

	vertexIndex                int
	bminX, bminY, bmaxX, bmaxY float64
}

// AddContour appends a closed contour given as x,y pairs; the closing
// edge back to the first point is implied. Orientation matters: a
// counterclockwise contour adds one to the winding number of the
// region it encloses, a clockwise one subtracts one.
func (t *Tessellator) AddContour(coords []float64) {
	if t.mesh == nil {
		t.mesh = newMesh()
	}
	var e *halfEdge
	for i := 0; i+1 < len(coords); i += 2 {
		if e == nil {
			// A self-loop: one vertex, one edge.
			e = t.mesh.makeEdge()
			t.mesh.spliceEdges(e, e.sym)
		} else {
			// Split the loop, growing it by one vertex and one edge.
			t.mesh.splitEdge(e)
			e = e.lnext
		}
		v := e.org
		v.x = coords[i]
		v.y = coords[i+1]
		v.idx = t.vertexIndex
		t.vertexIndex++

		// Crossing from the right face of e to its left face raises
		// the winding number by one.
		e.winding = 1
		e.sym.winding = -1
	}
}

// Tessellate sweeps and triangulates everything added so far. An
// error means an internal consistency check failed, which indicates
// numeric degeneracy too severe to recover from.
func (t *Tessellator) Tessellate() (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			res = nil
			err = fmt.Errorf("%w: %s", ErrFailed, a.msg)
		}
	}()

	if t.mesh == nil {
		return &Result{}, nil
	}

	t.computeBounds()
	t.computeInterior()
	t.tessellateInterior()
	res = t.output()
	t.mesh = nil
	return res, nil
}

func (t *Tessellator) computeBounds() {
	first := true
	for v := t.mesh.vHead.next; v != t.mesh.vHead; v = v.next {
		if first {
			t.bminX, t.bmaxX = v.x, v.x
			t.bminY, t.bmaxY = v.y, v.y
			first = false
			continue
		}
		t.bminX = min(t.bminX, v.x)
		t.bmaxX = max(t.bmaxX, v.x)
		t.bminY = min(t.bminY, v.y)
		t.bmaxY = max(t.bmaxY, v.y)
	}
}

// tessellateMonoRegion triangulates one monotone face. It zig-zags
// between the upper and lower chains toward the leftmost vertex and
// fans out whatever remains. Both chains are monotone, which is what
// the sweep guarantees for every interior face.
func (t *Tessellator) tessellateMonoRegion(f *face) {
	// Find the rightmost origin; f.anEdge is near it because
	// finishRegion points it at the region's upper edge.
	up := f.anEdge
	assert(up.lnext != up && up.lnext.lnext != up, "monotone region with fewer than 3 edges")

	for vertLeq(up.dst(), up.org) {
		up = up.lprev()
	}
	for vertLeq(up.org, up.dst()) {
		up = up.lnext
	}
	lo := up.lprev()

	for up.lnext != lo {
		if vertLeq(up.dst(), lo.org) {
			// up.dst is on the left: form triangles from lo.org while
			// the lower chain keeps turning the right way. The
			// edgeGoesLeft test guarantees progress even when some
			// triangles are degenerate.
			for lo.lnext != up && (edgeGoesLeft(lo.lnext) ||
				edgeSign(lo.org, lo.dst(), lo.lnext.dst()) <= 0) {
				lo = t.mesh.connect(lo.lnext, lo).sym
			}
			lo = lo.lprev()
		} else {
			// lo.org is on the left: form triangles from up.dst.
			for lo.lnext != up && (edgeGoesRight(up.lprev()) ||
				edgeSign(up.dst(), up.org, up.lprev().org) >= 0) {
				up = t.mesh.connect(up, up.lprev()).sym
			}
			up = up.lnext
		}
	}

	// lo.org == up.dst is now the leftmost vertex; fan out the rest.
	assert(lo.lnext != up, "empty monotone remainder")
	for lo.lnext.lnext != up {
		lo = t.mesh.connect(lo.lnext, lo).sym
	}
}

func (t *Tessellator) tessellateInterior() {
	var next *face
	for f := t.mesh.fHead.next; f != t.mesh.fHead; f = next {
		// connect inserts new faces; save next before splitting f.
		next = f.next
		if f.inside {
			t.tessellateMonoRegion(f)
		}
	}
}

func (t *Tessellator) output() *Result {
	res := &Result{}

	for v := t.mesh.vHead.next; v != t.mesh.vHead; v = v.next {
		v.n = undefIndex
	}

	for f := t.mesh.fHead.next; f != t.mesh.fHead; f = f.next {
		if !f.inside {
			continue
		}
		var tri Triangle
		n := 0
		e := f.anEdge
		for {
			v := e.org
			if v.n == undefIndex {
				v.n = len(res.Vertices) / 2
				res.Vertices = append(res.Vertices, v.x, v.y)
				res.VertexIndices = append(res.VertexIndices, v.idx)
			}
			assert(n < 3, "interior face is not a triangle")
			tri.V[n] = v.n
			n++
			e = e.lnext
			if e == f.anEdge {
				break
			}
		}
		assert(n == 3, "interior face is not a triangle")
		tri.Winding = f.winding
		res.Triangles = append(res.Triangles, tri)
	}
	return res
}
