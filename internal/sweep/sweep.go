package sweep

// The sweep advances over the mesh vertices in lexicographic order,
// maintaining the set of edges that cross the sweep line in a
// dictionary ordered bottom to top. Each gap between two adjacent
// dictionary edges is an activeRegion carrying the winding number of
// that part of the plane. When a region closes, its winding and
// inside flag are transferred to the mesh face it bounded.

// activeRegion describes the region between two adjacent edges on the
// sweep line. Only the upper edge is stored; the lower edge belongs
// to the region below.
type activeRegion struct {
	eUp           *halfEdge // upper edge, directed right to left
	nodeUp        *dictNode // dictionary node for eUp
	windingNumber int
	inside        bool
	sentinel      bool // one of the two artificial border regions
	dirty         bool // an adjacent edge changed; intersection check pending
	fixUpperEdge  bool // eUp is temporary, added for a vertex with no right-going edges
}

func regionBelow(r *activeRegion) *activeRegion { return r.nodeUp.prev.region }

func regionAbove(r *activeRegion) *activeRegion { return r.nodeUp.next.region }

func addWinding(eDst, eSrc *halfEdge) {
	eDst.winding += eSrc.winding
	eDst.sym.winding += eSrc.sym.winding
}

// edgeLeq reports whether reg1's upper edge is at or below reg2's at
// the current sweep event. When an edge ends exactly at the event the
// comparison falls back to slopes, so that the dictionary order
// matches the geometry immediately left of the event.
func (t *Tessellator) edgeLeq(reg1, reg2 *activeRegion) bool {
	event := t.event
	e1 := reg1.eUp
	e2 := reg2.eUp

	if e1.dst() == event {
		if e2.dst() == event {
			if vertLeq(e1.org, e2.org) {
				return edgeSign(e2.dst(), e1.org, e2.org) <= 0
			}
			return edgeSign(e1.dst(), e2.org, e1.org) >= 0
		}
		return edgeSign(e2.dst(), event, e2.org) <= 0
	}
	if e2.dst() == event {
		return edgeSign(e1.dst(), event, e1.org) >= 0
	}

	// Neither edge ends at the event: compare signed distances from
	// the event to each edge.
	t1 := edgeEval(e1.dst(), event, e1.org)
	t2 := edgeEval(e2.dst(), event, e2.org)
	return t1 >= t2
}

func (t *Tessellator) deleteRegion(reg *activeRegion) {
	if reg.fixUpperEdge {
		// A temporary edge starts with zero winding and must not
		// have been merged with a real edge.
		assert(reg.eUp.winding == 0, "temporary edge acquired winding")
	}
	reg.eUp.region = nil
	t.dict.remove(reg.nodeUp)
}

// fixUpperEdge replaces the temporary upper edge of reg with newEdge.
func (t *Tessellator) fixUpperEdge(reg *activeRegion, newEdge *halfEdge) {
	assert(reg.fixUpperEdge, "fixUpperEdge on a permanent edge")
	t.mesh.deleteEdge(reg.eUp)
	reg.fixUpperEdge = false
	reg.eUp = newEdge
	newEdge.region = reg
}

// topLeftRegion walks up to the region above the topmost edge sharing
// reg's origin, repairing a temporary edge on the way if one is found.
func (t *Tessellator) topLeftRegion(reg *activeRegion) *activeRegion {
	org := reg.eUp.org

	for {
		reg = regionAbove(reg)
		if reg.eUp.org != org {
			break
		}
	}

	if reg.fixUpperEdge {
		e := t.mesh.connect(regionBelow(reg).eUp.sym, reg.eUp.lnext)
		t.fixUpperEdge(reg, e)
		reg = regionAbove(reg)
	}
	return reg
}

func topRightRegion(reg *activeRegion) *activeRegion {
	dst := reg.eUp.dst()
	for {
		reg = regionAbove(reg)
		if reg.eUp.dst() != dst {
			break
		}
	}
	return reg
}

// addRegionBelow inserts a new region just below regAbove with eNewUp
// as its upper edge.
func (t *Tessellator) addRegionBelow(regAbove *activeRegion, eNewUp *halfEdge) *activeRegion {
	regNew := &activeRegion{eUp: eNewUp}
	regNew.nodeUp = t.dict.insertBefore(regAbove.nodeUp, regNew)
	eNewUp.region = regNew
	return regNew
}

func (t *Tessellator) computeWinding(reg *activeRegion) {
	reg.windingNumber = regionAbove(reg).windingNumber + reg.eUp.winding
	reg.inside = t.Rule.inside(reg.windingNumber)
}

// finishRegion transfers reg's classification to the face it bounded
// and removes it from the dictionary. The face's anEdge is pointed at
// reg's upper edge, which the monotone triangulation exploits.
func (t *Tessellator) finishRegion(reg *activeRegion) {
	e := reg.eUp
	f := e.lface

	f.inside = reg.inside
	f.winding = reg.windingNumber
	f.anEdge = e
	t.deleteRegion(reg)
}

// finishLeftRegions finishes all regions from regFirst down to
// regLast (or down to the last region whose upper edge ends at the
// event when regLast is nil). It returns the bottommost left-going
// edge at the event and relinks the mesh so that the edges around the
// event follow dictionary order.
func (t *Tessellator) finishLeftRegions(regFirst, regLast *activeRegion) *halfEdge {
	regPrev := regFirst
	ePrev := regFirst.eUp
	for regPrev != regLast {
		regPrev.fixUpperEdge = false // placement was confirmed
		reg := regionBelow(regPrev)
		e := reg.eUp
		if e.org != ePrev.org {
			if !reg.fixUpperEdge {
				// The last left-going edge at this vertex. Further
				// edges with this origin may exist in the mesh, just
				// not in the dictionary, so the region is finished
				// rather than merely deleted.
				t.finishRegion(regPrev)
				break
			}
			// The region below has a temporary edge; repair it with
			// a real connection to the event vertex.
			e = t.mesh.connect(ePrev.lprev(), e.sym)
			t.fixUpperEdge(reg, e)
		}

		if ePrev.onext != e {
			t.mesh.spliceEdges(e.oprev(), e)
			t.mesh.spliceEdges(ePrev, e)
		}
		t.finishRegion(regPrev) // may change reg.eUp
		ePrev = reg.eUp
		regPrev = reg
	}
	return ePrev
}

// addRightEdges inserts the right-going edges eFirst..eLast (in onext
// order around the event) into the dictionary below regUp, computes
// the winding numbers of the new regions, and merges coincident edge
// pairs. eTopLeft is the topmost left-going edge at the event, or nil
// when the caller wants it located here.
func (t *Tessellator) addRightEdges(regUp *activeRegion, eFirst, eLast, eTopLeft *halfEdge, cleanUp bool) {
	firstTime := true

	e := eFirst
	for {
		assert(vertLeq(e.org, e.dst()), "right-going edge points left")
		t.addRegionBelow(regUp, e.sym)
		e = e.onext
		if e == eLast {
			break
		}
	}

	// Walk all right-going edges from the event in dictionary order,
	// updating winding numbers and matching the mesh order to the
	// dictionary order.
	if eTopLeft == nil {
		eTopLeft = regionBelow(regUp).eUp.rprev()
	}
	regPrev := regUp
	ePrev := eTopLeft
	var reg *activeRegion
	for {
		reg = regionBelow(regPrev)
		e = reg.eUp.sym
		if e.org != ePrev.org {
			break
		}

		if e.onext != ePrev {
			// Unlink e and relink it below ePrev.
			t.mesh.spliceEdges(e.oprev(), e)
			t.mesh.spliceEdges(ePrev.oprev(), e)
		}
		reg.windingNumber = regPrev.windingNumber - e.winding
		reg.inside = t.Rule.inside(reg.windingNumber)

		// Two outgoing edges with the same slope are merged before
		// any intersection tests see them.
		regPrev.dirty = true
		if !firstTime && t.checkForRightSplice(regPrev) {
			addWinding(e, ePrev)
			t.deleteRegion(regPrev)
			t.mesh.deleteEdge(ePrev)
		}
		firstTime = false
		regPrev = reg
		ePrev = e
	}
	regPrev.dirty = true
	assert(regPrev.windingNumber-e.winding == reg.windingNumber, "winding chain broken")

	if cleanUp {
		t.walkDirtyRegions(regPrev)
	}
}

// spliceMergeVertices merges two vertices at the same location into
// one, fusing their edge rings.
func (t *Tessellator) spliceMergeVertices(e1, e2 *halfEdge) {
	t.mesh.spliceEdges(e1, e2)
}

// checkForRightSplice checks that the left endpoints of regUp's upper
// and lower edges respect the dictionary order, splicing the higher
// origin into the other edge when they do not, and merging the two
// origins when they coincide. Reports whether the topology changed.
func (t *Tessellator) checkForRightSplice(regUp *activeRegion) bool {
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp

	if vertLeq(eUp.org, eLo.org) {
		if edgeSign(eLo.dst(), eUp.org, eLo.org) > 0 {
			return false
		}

		if !vertEq(eUp.org, eLo.org) {
			// eUp.org lies on eLo: split eLo and splice eUp.org in.
			t.mesh.splitEdge(eLo.sym)
			t.mesh.spliceEdges(eUp, eLo.oprev())
			regUp.dirty = true
			regLo.dirty = true
		} else if eUp.org != eLo.org {
			// Same location but distinct vertices: merge, discarding
			// eUp.org and its queued event.
			t.pq.remove(eUp.org)
			t.spliceMergeVertices(eLo.oprev(), eUp)
		}
	} else {
		if edgeSign(eUp.dst(), eLo.org, eUp.org) < 0 {
			return false
		}

		// eLo.org lies on eUp: split eUp and splice eLo.org in.
		regionAbove(regUp).dirty = true
		regUp.dirty = true
		t.mesh.splitEdge(eUp.sym)
		t.mesh.spliceEdges(eLo.oprev(), eUp)
	}
	return true
}

// checkForLeftSplice is the mirror image of checkForRightSplice for
// the right endpoints. The endpoints are known to be distinct, so
// only the splice case arises. Reports whether the topology changed.
func (t *Tessellator) checkForLeftSplice(regUp *activeRegion) bool {
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp

	assert(!vertEq(eUp.dst(), eLo.dst()), "coincident right endpoints")

	if vertLeq(eUp.dst(), eLo.dst()) {
		if edgeSign(eUp.dst(), eLo.dst(), eUp.org) < 0 {
			return false
		}

		// eLo.dst is above eUp: split eUp and splice eLo.dst in.
		regionAbove(regUp).dirty = true
		regUp.dirty = true
		e := t.mesh.splitEdge(eUp)
		t.mesh.spliceEdges(eLo.sym, e)
		e.lface.inside = regUp.inside
	} else {
		if edgeSign(eLo.dst(), eUp.dst(), eLo.org) > 0 {
			return false
		}

		// eUp.dst is below eLo: split eLo and splice eUp.dst in.
		regUp.dirty = true
		regLo.dirty = true
		e := t.mesh.splitEdge(eLo)
		t.mesh.spliceEdges(eUp.lnext, eLo.sym)
		e.rface().inside = regUp.inside
	}
	return true
}

// checkForIntersect tests regUp's upper and lower edges for a proper
// intersection right of the sweep line. If one is found both edges
// are split at a synthesized vertex, which is clamped so it can never
// sort left of the current event or right of the nearer origin.
// Reports whether the event was reprocessed recursively, in which
// case the caller must not touch the regions again.
func (t *Tessellator) checkForIntersect(regUp *activeRegion) bool {
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp
	orgUp := eUp.org
	orgLo := eLo.org
	dstUp := eUp.dst()
	dstLo := eLo.dst()

	assert(!vertEq(dstLo, dstUp), "intersect called on joined edges")
	assert(edgeSign(dstUp, t.event, orgUp) <= 0, "event above upper edge")
	assert(edgeSign(dstLo, t.event, orgLo) >= 0, "event below lower edge")
	assert(orgUp != t.event && orgLo != t.event, "edge starts at event")
	assert(!regUp.fixUpperEdge && !regLo.fixUpperEdge, "intersect with temporary edge")

	if orgUp == orgLo {
		// Shared left endpoint, nothing to do.
		return false
	}

	tMinUp := min(orgUp.y, dstUp.y)
	tMaxLo := max(orgLo.y, dstLo.y)
	if tMinUp > tMaxLo {
		return false
	}

	if vertLeq(orgUp, orgLo) {
		if edgeSign(dstLo, orgUp, orgLo) > 0 {
			return false
		}
	} else {
		if edgeSign(dstUp, orgLo, orgUp) < 0 {
			return false
		}
	}

	var isect vertex
	edgeIntersect(dstUp, orgUp, dstLo, orgLo, &isect)

	if vertLeq(&isect, t.event) {
		// Rounding put the intersection left of the sweep line;
		// substituting the event keeps the queue order valid.
		isect.x = t.event.x
		isect.y = t.event.y
	}
	orgMin := orgUp
	if !vertLeq(orgUp, orgLo) {
		orgMin = orgLo
	}
	if vertLeq(orgMin, &isect) {
		// Likewise an intersection right of the nearer origin would
		// be processed long after these edges have left the
		// dictionary; clamp it to that origin.
		isect.x = orgMin.x
		isect.y = orgMin.y
	}

	if vertEq(&isect, orgUp) || vertEq(&isect, orgLo) {
		// Intersection lands on one of the left endpoints.
		t.checkForRightSplice(regUp)
		return false
	}

	if (!vertEq(dstUp, t.event) && edgeSign(dstUp, t.event, &isect) >= 0) ||
		(!vertEq(dstLo, t.event) && edgeSign(dstLo, t.event, &isect) <= 0) {
		// The new edge would pass on the wrong side of the event, a
		// casualty of rounding in the intersection computation.
		switch {
		case dstLo == t.event:
			// Splice dstLo into eUp and reprocess the regions.
			t.mesh.splitEdge(eUp.sym)
			t.mesh.spliceEdges(eLo.sym, eUp)
			regUp = t.topLeftRegion(regUp)
			eUp = regionBelow(regUp).eUp
			t.finishLeftRegions(regionBelow(regUp), regLo)
			t.addRightEdges(regUp, eUp.oprev(), eUp, eUp, true)
			return true
		case dstUp == t.event:
			// Splice dstUp into eLo and reprocess the regions.
			t.mesh.splitEdge(eLo.sym)
			t.mesh.spliceEdges(eUp.lnext, eLo.oprev())
			regLo = regUp
			regUp = topRightRegion(regUp)
			e := regionBelow(regUp).eUp.rprev()
			regLo.eUp = eLo.oprev()
			eLo = t.finishLeftRegions(regLo, nil)
			t.addRightEdges(regUp, eLo.onext, eUp.rprev(), e, true)
			return true
		}
		// Split whichever edge crosses the event and leave the rest
		// to connectRightVertex.
		if edgeSign(dstUp, t.event, &isect) >= 0 {
			regionAbove(regUp).dirty = true
			regUp.dirty = true
			t.mesh.splitEdge(eUp.sym)
			eUp.org.x = t.event.x
			eUp.org.y = t.event.y
		}
		if edgeSign(dstLo, t.event, &isect) <= 0 {
			regUp.dirty = true
			regLo.dirty = true
			t.mesh.splitEdge(eLo.sym)
			eLo.org.x = t.event.x
			eLo.org.y = t.event.y
		}
		return false
	}

	// General case: split both edges and splice them together at a
	// new vertex. Splicing eUp first matters here.
	t.mesh.splitEdge(eUp.sym)
	t.mesh.splitEdge(eLo.sym)
	t.mesh.spliceEdges(eLo.oprev(), eUp)
	eUp.org.x = isect.x
	eUp.org.y = isect.y
	eUp.org.idx = undefIndex
	t.pq.insert(eUp.org)
	regionAbove(regUp).dirty = true
	regUp.dirty = true
	regLo.dirty = true
	return false
}

// walkDirtyRegions restores the dictionary invariants around regUp
// after a topology change, working bottom-up through the dirty
// regions. New regions may be marked dirty as it goes; it finishes
// only when the whole neighborhood is clean.
func (t *Tessellator) walkDirtyRegions(regUp *activeRegion) {
	regLo := regionBelow(regUp)

	for {
		for regLo.dirty {
			regUp = regLo
			regLo = regionBelow(regLo)
		}
		if !regUp.dirty {
			regLo = regUp
			regUp = regionAbove(regUp)
			if regUp == nil || !regUp.dirty {
				return
			}
		}
		regUp.dirty = false
		eUp := regUp.eUp
		eLo := regLo.eUp

		if eUp.dst() != eLo.dst() {
			if t.checkForLeftSplice(regUp) {
				// A temporary edge is no longer needed once its
				// vertex has a real right-going edge.
				switch {
				case regLo.fixUpperEdge:
					t.deleteRegion(regLo)
					t.mesh.deleteEdge(eLo)
					regLo = regionBelow(regUp)
					eLo = regLo.eUp
				case regUp.fixUpperEdge:
					t.deleteRegion(regUp)
					t.mesh.deleteEdge(eUp)
					regUp = regionAbove(regLo)
					eUp = regUp.eUp
				}
			}
		}
		if eUp.org != eLo.org {
			if eUp.dst() != eLo.dst() &&
				!regUp.fixUpperEdge && !regLo.fixUpperEdge &&
				(eUp.dst() == t.event || eLo.dst() == t.event) {
				// checkForIntersect may fall back to the event as the
				// intersection point, which requires the event to lie
				// between the edges and both edges to be permanent.
				if t.checkForIntersect(regUp) {
					return
				}
			} else {
				t.checkForRightSplice(regUp)
			}
		}
		if eUp.org == eLo.org && eUp.dst() == eLo.dst() {
			// The two edges now form a degenerate two-edge loop.
			addWinding(eLo, eUp)
			t.deleteRegion(regUp)
			t.mesh.deleteEdge(eUp)
			regUp = regionAbove(regLo)
		}
	}
}

// connectRightVertex handles an event vertex with no right-going
// edges. The region containing it must be closed off somehow; if it
// cannot be merged into a neighboring endpoint, a temporary edge is
// added toward the nearer of the two neighboring origins and marked
// for later repair.
func (t *Tessellator) connectRightVertex(regUp *activeRegion, eBottomLeft *halfEdge) {
	eTopLeft := eBottomLeft.onext
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp
	degenerate := false

	if eUp.dst() != eLo.dst() {
		t.checkForIntersect(regUp)
	}

	// The intersection check may have moved an endpoint onto the
	// event; merge such endpoints now.
	if vertEq(eUp.org, t.event) {
		t.mesh.spliceEdges(eTopLeft.oprev(), eUp)
		regUp = t.topLeftRegion(regUp)
		eTopLeft = regionBelow(regUp).eUp
		t.finishLeftRegions(regionBelow(regUp), regLo)
		degenerate = true
	}
	if vertEq(eLo.org, t.event) {
		t.mesh.spliceEdges(eBottomLeft, eLo.oprev())
		eBottomLeft = t.finishLeftRegions(regLo, nil)
		degenerate = true
	}
	if degenerate {
		t.addRightEdges(regUp, eBottomLeft.onext, eTopLeft, eTopLeft, true)
		return
	}

	// Connect to the nearer of the neighboring origins.
	var eNew *halfEdge
	if vertLeq(eLo.org, eUp.org) {
		eNew = eLo.oprev()
	} else {
		eNew = eUp
	}
	eNew = t.mesh.connect(eBottomLeft.lprev(), eNew)

	// Delay the cleanup walk so the new edge can be marked temporary
	// before anything deletes it.
	t.addRightEdges(regUp, eNew, eNew.onext, eNew.onext, false)
	eNew.sym.region.fixUpperEdge = true
	t.walkDirtyRegions(regUp)
}

// connectLeftDegenerate handles an event vertex lying exactly on an
// edge already in the dictionary.
func (t *Tessellator) connectLeftDegenerate(regUp *activeRegion, vEvent *vertex) {
	e := regUp.eUp
	if vertEq(e.org, vEvent) {
		// The origin is an unprocessed vertex at the same location;
		// merge and let its own event do the rest.
		t.spliceMergeVertices(e, vEvent.anEdge)
		return
	}

	if !vertEq(e.dst(), vEvent) {
		// The event lies in the edge's interior: split the edge and
		// splice the event in, then reprocess.
		t.mesh.splitEdge(e.sym)
		if regUp.fixUpperEdge {
			// The split left an unneeded stub of the temporary edge.
			t.mesh.deleteEdge(e.onext)
			regUp.fixUpperEdge = false
		}
		t.mesh.spliceEdges(vEvent.anEdge, e)
		t.sweepEvent(vEvent)
		return
	}

	// The event coincides with the already processed destination;
	// splice its right-going edges in among the existing ones.
	regUp = topRightRegion(regUp)
	reg := regionBelow(regUp)
	eTopRight := reg.eUp.sym
	eTopLeft := eTopRight.onext
	eLast := eTopLeft
	if reg.fixUpperEdge {
		// The destination's only right-going edge was temporary; the
		// event brings real ones, so drop it.
		assert(eTopLeft != eTopRight, "no left-going edges at merged vertex")
		t.deleteRegion(reg)
		t.mesh.deleteEdge(eTopRight)
		eTopRight = eTopLeft.oprev()
	}
	t.mesh.spliceEdges(vEvent.anEdge, eTopRight)
	if !edgeGoesLeft(eTopLeft) {
		// The destination had no left-going edges.
		eTopLeft = nil
	}
	t.addRightEdges(regUp, eTopRight.onext, eLast, eTopLeft, true)
}

// connectLeftVertex handles an event vertex whose edges all go right,
// so nothing about it is in the dictionary yet. The vertex either
// splits a region in two (when the region is inside) or simply starts
// new regions.
func (t *Tessellator) connectLeftVertex(vEvent *vertex) {
	var tmp activeRegion

	tmp.eUp = vEvent.anEdge.sym
	regUp := t.dict.search(&tmp).region
	regLo := regionBelow(regUp)
	if regLo == nil {
		// Happens when every input contour is degenerate.
		return
	}
	eUp := regUp.eUp
	eLo := regLo.eUp

	if edgeSign(eUp.dst(), vEvent, eUp.org) == 0 {
		t.connectLeftDegenerate(regUp, vEvent)
		return
	}

	// Connect the event to the rightmost processed vertex of the
	// upper or lower chain, whichever is nearer.
	reg := regLo
	if vertLeq(eLo.dst(), eUp.dst()) {
		reg = regUp
	}

	if regUp.inside || reg.fixUpperEdge {
		var eNew *halfEdge
		if reg == regUp {
			eNew = t.mesh.connect(vEvent.anEdge.sym, eUp.lnext)
		} else {
			eNew = t.mesh.connect(eLo.dnext(), vEvent.anEdge).sym
		}
		if reg.fixUpperEdge {
			t.fixUpperEdge(reg, eNew)
		} else {
			t.computeWinding(t.addRegionBelow(regUp, eNew))
		}
		t.sweepEvent(vEvent)
	} else {
		// The event lies in an exterior region; just start its
		// right-going edges.
		t.addRightEdges(regUp, vEvent.anEdge, vEvent.anEdge, nil, true)
	}
}

// sweepEvent processes a single event vertex.
func (t *Tessellator) sweepEvent(vEvent *vertex) {
	t.event = vEvent

	// If no edge at this vertex is in the dictionary, the vertex is
	// the left endpoint of all of them.
	e := vEvent.anEdge
	for e.region == nil {
		e = e.onext
		if e == vEvent.anEdge {
			t.connectLeftVertex(vEvent)
			return
		}
	}

	// Otherwise finish all regions whose upper and lower edges both
	// end here, then start the right-going edges.
	regUp := t.topLeftRegion(e.region)
	reg := regionBelow(regUp)
	eTopLeft := reg.eUp
	eBottomLeft := t.finishLeftRegions(reg, nil)

	if eBottomLeft.onext == eTopLeft {
		t.connectRightVertex(regUp, eBottomLeft)
	} else {
		t.addRightEdges(regUp, eBottomLeft.onext, eTopLeft, eTopLeft, true)
	}
}

// addSentinel installs a horizontal edge at height y, wide enough
// that every event falls between its endpoints.
func (t *Tessellator) addSentinel(xmin, xmax, y float64) {
	e := t.mesh.makeEdge()
	e.org.x = xmax
	e.org.y = y
	e.sym.org.x = xmin
	e.sym.org.y = y
	t.event = e.dst()

	reg := &activeRegion{eUp: e, sentinel: true}
	reg.nodeUp = t.dict.insert(reg)
	e.region = reg
}

// initEdgeDict creates the dictionary with two sentinel regions
// bracketing the input's bounding box, so every real region always
// has a region above and below it.
func (t *Tessellator) initEdgeDict() {
	t.dict = newDict(func(a, b *activeRegion) bool {
		return t.edgeLeq(a, b)
	})

	w := (t.bmaxX - t.bminX) + 0.01
	h := (t.bmaxY - t.bminY) + 0.01
	xmin := t.bminX - w
	xmax := t.bmaxX + w
	ymin := t.bminY - h
	ymax := t.bmaxY + h

	t.addSentinel(xmin, xmax, ymin)
	t.addSentinel(xmin, xmax, ymax)
}

func (t *Tessellator) doneEdgeDict() {
	fixedEdges := 0
	for {
		reg := t.dict.min().region
		if reg == nil {
			break
		}
		// Only the sentinels and at most one unrepaired temporary
		// edge may remain.
		if !reg.sentinel {
			assert(reg.fixUpperEdge, "active region left after sweep")
			fixedEdges++
			assert(fixedEdges == 1, "multiple temporary edges left after sweep")
		}
		assert(reg.windingNumber == 0, "nonzero winding left after sweep")
		t.deleteRegion(reg)
	}
	t.dict = nil
}

// removeDegenerateEdges deletes zero-length edges and collapses
// contours of one or two edges before the sweep starts.
func (t *Tessellator) removeDegenerateEdges() {
	eHead := t.mesh.eHead
	var eNext *halfEdge
	for e := eHead.next; e != eHead; e = eNext {
		eNext = e.next
		eLnext := e.lnext

		if vertEq(e.org, e.dst()) && e.lnext.lnext != e {
			// Zero-length edge on a contour with at least 3 edges.
			t.spliceMergeVertices(eLnext, e)
			t.mesh.deleteEdge(e)
			e = eLnext
			eLnext = e.lnext
		}
		if eLnext.lnext == e {
			// One or two edges left in the contour; delete it.
			if eLnext != e {
				if eLnext == eNext || eLnext == eNext.sym {
					eNext = eNext.next
				}
				t.mesh.deleteEdge(eLnext)
			}
			if e == eNext || e == eNext.sym {
				eNext = eNext.next
			}
			t.mesh.deleteEdge(e)
		}
	}
}

func (t *Tessellator) initPriorityQ() {
	var vs []*vertex
	for v := t.mesh.vHead.next; v != t.mesh.vHead; v = v.next {
		vs = append(vs, v)
	}
	t.pq.init(vs)
}

// removeDegenerateFaces deletes faces with only two edges, merging
// the windings of the two coincident edges.
func (t *Tessellator) removeDegenerateFaces() {
	var fNext *face
	for f := t.mesh.fHead.next; f != t.mesh.fHead; f = fNext {
		fNext = f.next
		e := f.anEdge
		assert(e.lnext != e, "single-edge face")

		if e.lnext.lnext == e {
			addWinding(e.onext, e)
			t.mesh.deleteEdge(e)
		}
	}
}

// computeInterior runs the plane sweep over the whole mesh, computing
// the winding number of every region and marking the faces that are
// inside under the active winding rule.
func (t *Tessellator) computeInterior() {
	t.removeDegenerateEdges()
	t.initPriorityQ()
	t.initEdgeDict()

	for {
		v := t.pq.extractMin()
		if v == nil {
			break
		}
		for {
			vNext := t.pq.minimum()
			if vNext == nil || !vertEq(vNext, v) {
				break
			}
			// Merge coincident vertices up front; sweepEvent then
			// sees each location exactly once.
			vNext = t.pq.extractMin()
			t.spliceMergeVertices(v.anEdge, vNext.anEdge)
		}
		t.sweepEvent(v)
	}

	t.doneEdgeDict()
	t.pq.verts = nil

	t.removeDegenerateFaces()
	t.mesh.check()
}
