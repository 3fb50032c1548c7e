package sweep

import "container/heap"

// eventQueue orders the sweep events (mesh vertices) by vertLeq. It
// is a binary heap that maintains a handle on each vertex, so an
// event can be removed early when its vertex merges into another one
// before the sweep reaches it.
type eventQueue struct {
	verts []*vertex
}

func (q *eventQueue) Len() int { return len(q.verts) }

func (q *eventQueue) Less(i, j int) bool { return vertLeq(q.verts[i], q.verts[j]) }

func (q *eventQueue) Swap(i, j int) {
	q.verts[i], q.verts[j] = q.verts[j], q.verts[i]
	q.verts[i].pqHandle = i
	q.verts[j].pqHandle = j
}

func (q *eventQueue) Push(x any) {
	v := x.(*vertex)
	v.pqHandle = len(q.verts)
	q.verts = append(q.verts, v)
}

func (q *eventQueue) Pop() any {
	old := q.verts
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	q.verts = old[:n-1]
	return v
}

// init heapifies vs in place. Faster than inserting one by one when
// the whole event set is known up front.
func (q *eventQueue) init(vs []*vertex) {
	q.verts = vs
	for i, v := range vs {
		v.pqHandle = i
	}
	heap.Init(q)
}

func (q *eventQueue) insert(v *vertex) {
	heap.Push(q, v)
}

func (q *eventQueue) extractMin() *vertex {
	if len(q.verts) == 0 {
		return nil
	}
	return heap.Pop(q).(*vertex)
}

func (q *eventQueue) minimum() *vertex {
	if len(q.verts) == 0 {
		return nil
	}
	return q.verts[0]
}

func (q *eventQueue) remove(v *vertex) {
	heap.Remove(q, v.pqHandle)
}
