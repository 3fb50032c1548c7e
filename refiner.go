package tess

// refineEdge pairs an edge's interpolator with the resumable state its
// last tessellation produced, if any.
type refineEdge struct {
	interp Interpolator
	state  TessellationState
}

type refineContour struct {
	closed bool
	edges  []refineEdge
}

// Refiner re-tessellates a path at tighter error bounds by resuming the
// recorded subdivision state of each edge instead of starting over from
// the interpolators. A Refiner is not safe for concurrent use.
type Refiner struct {
	path     *TessellatedPath
	contours []refineContour
}

// newTessellatedPath tessellates p against params and returns the
// result together with a Refiner holding every edge's resumable state.
func newTessellatedPath(p *Path, params TessellationParams) (*TessellatedPath, *Refiner) {
	b := newTessBuilder(params)
	ref := &Refiner{contours: make([]refineContour, len(p.contours))}
	var storage SegmentStorage

	for o, c := range p.contours {
		b.startContour(c.Closed(), c.NumberEdges())
		rc := &ref.contours[o]
		rc.closed = c.Closed()
		rc.edges = make([]refineEdge, 0, c.NumberEdges())

		for e := 0; e < c.NumberEdges(); e++ {
			ip := c.Edge(e)
			storage.reset()
			state, dist := ip.Tessellate(params, &storage)
			if state != nil {
				b.noteRecursion(state.RecursionDepth())
			}
			rc.edges = append(rc.edges, refineEdge{interp: ip, state: state})
			b.addEdge(storage.segments, dist, ip.EdgeType())
		}
		b.endContour()
	}

	tp := b.finish()
	ref.path = tp
	return tp, ref
}

// Tessellation returns the refiner's current tessellated path.
func (r *Refiner) Tessellation() *TessellatedPath { return r.path }

// Refine rebuilds the tessellation with maxDistance as the error bound
// if the current one is above it. The new recursion ceiling is the
// depth already reached plus additionalRecursion, so repeated calls dig
// deeper each time.
func (r *Refiner) Refine(maxDistance float64, additionalRecursion int) {
	if r.path.MaxDistance() <= maxDistance {
		return
	}

	params := r.path.params
	params.MaxDistance = maxDistance
	params.MaxRecursion = r.path.MaxRecursion() + additionalRecursion

	b := newTessBuilder(params)
	var storage SegmentStorage
	for _, rc := range r.contours {
		b.startContour(rc.closed, len(rc.edges))
		for _, re := range rc.edges {
			storage.reset()
			var dist float64
			if re.state != nil {
				dist = re.state.ResumeTessellation(params, &storage)
				b.noteRecursion(re.state.RecursionDepth())
			} else {
				_, dist = re.interp.Tessellate(params, &storage)
			}
			b.addEdge(storage.segments, dist, re.interp.EdgeType())
		}
		b.endContour()
	}
	r.path = b.finish()
}
