package sweep

// dictNode is a node in the ordered list of active regions. The list
// is circular with a head node whose region is nil; head.next is the
// bottommost region.
type dictNode struct {
	region     *activeRegion
	next, prev *dictNode
}

// dict keeps the regions crossing the sweep line ordered bottom to
// top. A sorted linked list does the job since every insertion and
// lookup starts from a neighbor of the final position.
type dict struct {
	head *dictNode
	leq  func(a, b *activeRegion) bool
}

func newDict(leq func(a, b *activeRegion) bool) *dict {
	d := &dict{head: &dictNode{}, leq: leq}
	d.head.next = d.head
	d.head.prev = d.head
	return d
}

// insertBefore walks down from node to the right position for region
// and links a new node there.
func (d *dict) insertBefore(node *dictNode, region *activeRegion) *dictNode {
	for {
		node = node.prev
		if node.region == nil || d.leq(node.region, region) {
			break
		}
	}
	n := &dictNode{region: region, prev: node, next: node.next}
	node.next.prev = n
	node.next = n
	return n
}

func (d *dict) insert(region *activeRegion) *dictNode {
	return d.insertBefore(d.head, region)
}

func (d *dict) remove(node *dictNode) {
	node.next.prev = node.prev
	node.prev.next = node.next
}

// search returns the first node whose region is at or above key, so
// key sits between the result's predecessor and the result.
func (d *dict) search(key *activeRegion) *dictNode {
	node := d.head
	for {
		node = node.next
		if node.region == nil || d.leq(key, node.region) {
			break
		}
	}
	return node
}

func (d *dict) min() *dictNode { return d.head.next }
