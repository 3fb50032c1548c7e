package sweep

import "testing"

func TestEventQueueOrder(t *testing.T) {
	vs := []*vertex{
		vtx(3, 1), vtx(0, 0), vtx(1, 2), vtx(1, -1), vtx(-2, 5), vtx(3, 0),
	}
	var q eventQueue
	q.init(vs)

	for i, v := range q.verts {
		if v.pqHandle != i {
			t.Fatalf("handle of verts[%d] = %d", i, v.pqHandle)
		}
	}

	var prev *vertex
	for n := 0; n < len(vs); n++ {
		v := q.extractMin()
		if v == nil {
			t.Fatalf("extractMin() = nil after %d vertices", n)
		}
		if prev != nil && !vertLeq(prev, v) {
			t.Errorf("extraction out of order: (%v,%v) after (%v,%v)", v.x, v.y, prev.x, prev.y)
		}
		prev = v
	}
	if q.extractMin() != nil {
		t.Error("extractMin() on empty queue != nil")
	}
	if q.minimum() != nil {
		t.Error("minimum() on empty queue != nil")
	}
}

func TestEventQueueInsertRemove(t *testing.T) {
	var q eventQueue
	q.init([]*vertex{vtx(2, 0), vtx(4, 0), vtx(6, 0)})

	q.insert(vtx(1, 0))
	if m := q.minimum(); m == nil || m.x != 1 {
		t.Fatalf("minimum() after insert = %v, want x=1", m)
	}

	// Remove a non-minimum vertex through its handle.
	var mid *vertex
	for _, v := range q.verts {
		if v.x == 4 {
			mid = v
		}
	}
	q.remove(mid)

	var got []float64
	for v := q.extractMin(); v != nil; v = q.extractMin() {
		got = append(got, v.x)
	}
	want := []float64{1, 2, 6}
	if len(got) != len(want) {
		t.Fatalf("extracted %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("extracted %v, want %v", got, want)
			break
		}
	}
}
