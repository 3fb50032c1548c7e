package sweep

// The mesh is a quad-edge style structure cut down to the two
// primitives the sweep needs. Each edge is a pair of oppositely
// directed half-edges. Vertices, faces and primary half-edges are
// kept on circular doubly-linked lists rooted at dummy head nodes so
// the whole mesh can be enumerated.
//
// Every mesh operation is built from two primitives: makeEdgePair,
// which creates a detached self-loop, and splice, which either merges
// two vertex rings into one or splits one ring into two (and does the
// dual for face rings). Everything else is bookkeeping that keeps the
// vertex and face records consistent with the half-edge cycles.

// undefIndex marks vertices that do not correspond to any input
// vertex, such as intersections synthesized during the sweep.
const undefIndex = -1

type vertex struct {
	next, prev *vertex
	anEdge     *halfEdge // a half-edge with this origin
	x, y       float64
	idx        int // input index, or undefIndex
	pqHandle   int // position in the event queue during the sweep
	n          int // output numbering, assigned while emitting the result
}

type face struct {
	next, prev *face
	anEdge     *halfEdge // a half-edge with this left face
	inside     bool      // interior under the active winding rule
	winding    int       // winding number of the region this face covers
}

type halfEdge struct {
	next, prev *halfEdge // primary half-edges only; nil on secondaries
	sym        *halfEdge // the other half of the pair
	onext      *halfEdge // next edge counterclockwise around the origin
	lnext      *halfEdge // next edge counterclockwise around the left face
	org        *vertex
	lface      *face
	region     *activeRegion // set while this edge is in the sweep dictionary
	winding    int           // change in winding number when crossing left to right
	primary    bool
}

func (e *halfEdge) dst() *vertex { return e.sym.org }

func (e *halfEdge) rface() *face { return e.sym.lface }

func (e *halfEdge) oprev() *halfEdge { return e.sym.lnext }

func (e *halfEdge) lprev() *halfEdge { return e.onext.sym }

func (e *halfEdge) dprev() *halfEdge { return e.lnext.sym }

func (e *halfEdge) rprev() *halfEdge { return e.sym.onext }

func (e *halfEdge) dnext() *halfEdge { return e.rprev().sym }

func (e *halfEdge) rnext() *halfEdge { return e.oprev().sym }

type mesh struct {
	vHead *vertex
	fHead *face
	eHead *halfEdge
}

func newMesh() *mesh {
	m := &mesh{
		vHead: &vertex{idx: undefIndex},
		fHead: &face{},
		eHead: &halfEdge{primary: true},
	}
	m.vHead.next = m.vHead
	m.vHead.prev = m.vHead
	m.fHead.next = m.fHead
	m.fHead.prev = m.fHead
	m.eHead.next = m.eHead
	m.eHead.prev = m.eHead
	return m
}

// makeEdgePair allocates a fresh edge pair forming a self-loop and
// inserts its primary half before eNext in the edge list. The new
// half-edges have no origin or face yet.
func (m *mesh) makeEdgePair(eNext *halfEdge) *halfEdge {
	e := &halfEdge{primary: true}
	eSym := &halfEdge{}
	e.sym = eSym
	eSym.sym = e

	if !eNext.primary {
		eNext = eNext.sym
	}
	ePrev := eNext.prev
	e.prev = ePrev
	ePrev.next = e
	e.next = eNext
	eNext.prev = e

	e.onext = e
	e.lnext = eSym
	eSym.onext = eSym
	eSym.lnext = e
	return e
}

func killEdge(eDel *halfEdge) {
	if !eDel.primary {
		eDel = eDel.sym
	}
	eDel.prev.next = eDel.next
	eDel.next.prev = eDel.prev
}

// splice is the basic connectivity operation. If a and b have the
// same origin it splits the origin ring in two; otherwise it merges
// the two rings. The dual holds for the left face rings. Vertex and
// face records are not touched; callers fix those up.
func splice(a, b *halfEdge) {
	aOnext := a.onext
	bOnext := b.onext
	aOnext.sym.lnext = b
	bOnext.sym.lnext = a
	a.onext = bOnext
	b.onext = aOnext
}

// makeVertex inserts vNew before vNext in the vertex list and makes
// it the origin of every edge in eOrig's origin ring.
func makeVertex(vNew *vertex, eOrig *halfEdge, vNext *vertex) {
	vPrev := vNext.prev
	vNew.prev = vPrev
	vPrev.next = vNew
	vNew.next = vNext
	vNext.prev = vNew

	vNew.anEdge = eOrig
	e := eOrig
	for {
		e.org = vNew
		e = e.onext
		if e == eOrig {
			break
		}
	}
}

// killVertex removes vDel from the vertex list, redirecting its
// origin ring to newOrg (which may be nil when the ring itself is
// about to disappear).
func killVertex(vDel *vertex, newOrg *vertex) {
	eStart := vDel.anEdge
	e := eStart
	for {
		e.org = newOrg
		e = e.onext
		if e == eStart {
			break
		}
	}
	vDel.prev.next = vDel.next
	vDel.next.prev = vDel.prev
}

// makeFace inserts fNew before fNext in the face list and makes it
// the left face of every edge in eOrig's face ring. The inside flag
// and winding are copied from fNext, which is the face being split in
// the common case.
func makeFace(fNew *face, eOrig *halfEdge, fNext *face) {
	fPrev := fNext.prev
	fNew.prev = fPrev
	fPrev.next = fNew
	fNew.next = fNext
	fNext.prev = fNew

	fNew.anEdge = eOrig
	fNew.inside = fNext.inside
	fNew.winding = fNext.winding

	e := eOrig
	for {
		e.lface = fNew
		e = e.lnext
		if e == eOrig {
			break
		}
	}
}

func killFace(fDel *face, newLface *face) {
	eStart := fDel.anEdge
	e := eStart
	for {
		e.lface = newLface
		e = e.lnext
		if e == eStart {
			break
		}
	}
	fDel.prev.next = fDel.next
	fDel.next.prev = fDel.prev
}

// makeEdge creates a detached edge: two half-edges, two vertices and
// one face (both sides of the loop see the same face). The vertex
// coordinates are left for the caller to set.
func (m *mesh) makeEdge() *halfEdge {
	e := m.makeEdgePair(m.eHead)
	makeVertex(&vertex{idx: undefIndex}, e, m.vHead)
	makeVertex(&vertex{idx: undefIndex}, e.sym, m.vHead)
	makeFace(&face{}, e, m.fHead)
	return e
}

// spliceEdges applies splice to eOrg and eDst and repairs the vertex
// and face records afterwards:
//
//   - distinct origins merge into eOrg.org; identical origins split,
//     with eDst keeping the new vertex
//   - distinct left faces merge into eOrg.lface; an identical face
//     splits, with eDst keeping the new face
//
// Exactly one of each pair of effects happens on the vertex side and
// on the face side.
func (m *mesh) spliceEdges(eOrg, eDst *halfEdge) {
	if eOrg == eDst {
		return
	}

	joiningVertices := false
	if eDst.org != eOrg.org {
		joiningVertices = true
		killVertex(eDst.org, eOrg.org)
	}
	joiningLoops := false
	if eDst.lface != eOrg.lface {
		joiningLoops = true
		killFace(eDst.lface, eOrg.lface)
	}

	splice(eDst, eOrg)

	if !joiningVertices {
		old := eOrg.org
		makeVertex(&vertex{x: old.x, y: old.y, idx: old.idx}, eDst, old)
		old.anEdge = eOrg
	}
	if !joiningLoops {
		makeFace(&face{}, eDst, eOrg.lface)
		eOrg.lface.anEdge = eOrg
	}
}

// deleteEdge removes eDel. If eDel separates two faces they are
// joined into one; if it is the only edge at one of its endpoints the
// endpoint disappears with it.
func (m *mesh) deleteEdge(eDel *halfEdge) {
	eDelSym := eDel.sym

	// Disconnect the origin first, keeping the mesh consistent in
	// the intermediate state.
	joiningLoops := false
	if eDel.lface != eDel.rface() {
		joiningLoops = true
		killFace(eDel.lface, eDel.rface())
	}

	if eDel.onext == eDel {
		killVertex(eDel.org, nil)
	} else {
		eDel.rface().anEdge = eDel.oprev()
		eDel.org.anEdge = eDel.onext
		splice(eDel, eDel.oprev())
		if !joiningLoops {
			makeFace(&face{}, eDel, eDel.lface)
		}
	}

	// Now disconnect the destination.
	if eDelSym.onext == eDelSym {
		killVertex(eDelSym.org, nil)
		killFace(eDelSym.lface, nil)
	} else {
		eDel.lface.anEdge = eDelSym.oprev()
		eDelSym.org.anEdge = eDelSym.onext
		splice(eDelSym, eDelSym.oprev())
	}

	killEdge(eDel)
}

// addEdgeVertex grows a new edge out of eOrg.dst to a brand new
// vertex, inserted so that eOrg.lnext is the new edge.
func (m *mesh) addEdgeVertex(eOrg *halfEdge) *halfEdge {
	eNew := m.makeEdgePair(eOrg)
	eNewSym := eNew.sym

	splice(eNew, eOrg.lnext)

	eNew.org = eOrg.dst()
	makeVertex(&vertex{idx: undefIndex}, eNewSym, eNew.org)
	eNew.lface = eOrg.lface
	eNewSym.lface = eOrg.lface
	return eNew
}

// splitEdge inserts a new vertex in the middle of eOrg. eOrg keeps
// its origin and ends at the new vertex; the returned edge runs from
// the new vertex to eOrg's old destination and carries eOrg's winding.
// The new vertex coordinates are left for the caller to set.
func (m *mesh) splitEdge(eOrg *halfEdge) *halfEdge {
	tempHalfEdge := m.addEdgeVertex(eOrg)
	eNew := tempHalfEdge.sym

	// Disconnect eOrg from its destination and reconnect it to the
	// new vertex.
	splice(eOrg.sym, eOrg.sym.oprev())
	splice(eOrg.sym, eNew)

	eOrg.sym.org = eNew.org
	eNew.dst().anEdge = eNew.sym
	eNew.sym.lface = eOrg.sym.lface
	eNew.winding = eOrg.winding
	eNew.sym.winding = eOrg.sym.winding
	return eNew
}

// connect draws a new edge from eOrg.dst to eDst.org. If the two
// edges bound the same face the face is split in two, with the new
// face on eNew's left; otherwise the two faces are joined.
func (m *mesh) connect(eOrg, eDst *halfEdge) *halfEdge {
	eNew := m.makeEdgePair(eOrg)
	eNewSym := eNew.sym

	joiningLoops := false
	if eDst.lface != eOrg.lface {
		joiningLoops = true
		killFace(eDst.lface, eOrg.lface)
	}

	splice(eNew, eOrg.lnext)
	splice(eNewSym, eDst)

	eNew.org = eOrg.dst()
	eNewSym.org = eDst.org
	eNew.lface = eOrg.lface
	eNewSym.lface = eOrg.lface

	eOrg.lface.anEdge = eNewSym

	if !joiningLoops {
		makeFace(&face{}, eNew, eOrg.lface)
	}
	return eNew
}

// check walks the whole mesh and verifies the half-edge invariants.
// Violations indicate a bug in the sweep, not bad input, so they
// abort rather than return an error from here.
func (m *mesh) check() {
	for f := m.fHead.next; f != m.fHead; f = f.next {
		assert(f.next.prev == f, "face list corrupt")
		e := f.anEdge
		for {
			assert(e.sym != e, "half-edge is its own symmetric")
			assert(e.sym.sym == e, "symmetric pairing broken")
			assert(e.lnext.onext.sym == e, "lnext/onext cycle broken")
			assert(e.onext.sym.lnext == e, "onext/lnext cycle broken")
			assert(e.lface == f, "face ring has wrong lface")
			e = e.lnext
			if e == f.anEdge {
				break
			}
		}
	}
	for v := m.vHead.next; v != m.vHead; v = v.next {
		assert(v.next.prev == v, "vertex list corrupt")
		e := v.anEdge
		for {
			assert(e.sym.sym == e, "symmetric pairing broken")
			assert(e.org == v, "origin ring has wrong origin")
			e = e.onext
			if e == v.anEdge {
				break
			}
		}
	}
	for e := m.eHead.next; e != m.eHead; e = e.next {
		assert(e.next.prev == e, "edge list corrupt")
		assert(e.org != nil, "edge with no origin")
		assert(e.dst() != nil, "edge with no destination")
	}
}
