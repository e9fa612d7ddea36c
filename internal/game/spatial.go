package game

// RectF is an axis-aligned rectangle on the ground plane (X by Z).
type RectF struct {
	X0, Z0 float64
	X1, Z1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Z0 < o.Z1 && r.Z1 > o.Z0
}

func (r RectF) Contains(o RectF) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Z0 >= r.Z0 && o.Z1 <= r.Z1
}

// Expand grows the rectangle by m on every side.
func (r RectF) Expand(m float64) RectF {
	return RectF{X0: r.X0 - m, Z0: r.Z0 - m, X1: r.X1 + m, Z1: r.Z1 + m}
}

// rectAround is the footprint of a box centred at p with the given half sizes.
func rectAround(p Vec3, hx, hz float64) RectF {
	return RectF{X0: p[0] - hx, Z0: p[2] - hz, X1: p[0] + hx, Z1: p[2] + hz}
}

// segmentRect bounds the ground-plane projection of the segment a..b.
func segmentRect(a, b Vec3) RectF {
	r := RectF{X0: a[0], Z0: a[2], X1: b[0], Z1: b[2]}
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Z0 > r.Z1 {
		r.Z0, r.Z1 = r.Z1, r.Z0
	}
	return r
}

// EntityRef is what the city index stores.
type EntityRef struct {
	ID   EntityID
	Kind EntityKind
	Slot int // index into the owning slice
}

type quadItem struct {
	ref    EntityRef
	bounds RectF
}

// QuadNode is a quadtree over static city geometry.
type QuadNode struct {
	bounds RectF
	depth  int
	items  []quadItem
	child  [4]*QuadNode
}

func NewQuadNode(bounds RectF, depth int) *QuadNode {
	return &QuadNode{
		bounds: bounds,
		depth:  depth,
		items:  make([]quadItem, 0, QuadCapacity),
	}
}

func (n *QuadNode) Insert(ref EntityRef, bounds RectF) {
	if n.child[0] != nil {
		if c := n.childThatContains(bounds); c != nil {
			c.Insert(ref, bounds)
			return
		}
	}

	n.items = append(n.items, quadItem{ref: ref, bounds: bounds})

	if len(n.items) > QuadCapacity && n.depth < QuadMaxDepth {
		n.subdivide()
		kept := n.items[:0]
		for _, it := range n.items {
			if c := n.childThatContains(it.bounds); c != nil {
				c.Insert(it.ref, it.bounds)
			} else {
				kept = append(kept, it)
			}
		}
		n.items = kept
	}
}

// Query appends every entry whose bounds touch r.
func (n *QuadNode) Query(r RectF, out *[]EntityRef) {
	if !n.bounds.Intersects(r) {
		return
	}
	for _, it := range n.items {
		if it.bounds.Intersects(r) {
			*out = append(*out, it.ref)
		}
	}
	if n.child[0] == nil {
		return
	}
	for i := 0; i < 4; i++ {
		if n.child[i] != nil {
			n.child[i].Query(r, out)
		}
	}
}

// Count returns the number of entries in the subtree.
func (n *QuadNode) Count() int {
	c := len(n.items)
	for i := 0; i < 4; i++ {
		if n.child[i] != nil {
			c += n.child[i].Count()
		}
	}
	return c
}

func (n *QuadNode) subdivide() {
	if n.child[0] != nil {
		return
	}
	mx := (n.bounds.X0 + n.bounds.X1) * 0.5
	mz := (n.bounds.Z0 + n.bounds.Z1) * 0.5
	n.child[0] = NewQuadNode(RectF{X0: n.bounds.X0, Z0: n.bounds.Z0, X1: mx, Z1: mz}, n.depth+1)
	n.child[1] = NewQuadNode(RectF{X0: mx, Z0: n.bounds.Z0, X1: n.bounds.X1, Z1: mz}, n.depth+1)
	n.child[2] = NewQuadNode(RectF{X0: n.bounds.X0, Z0: mz, X1: mx, Z1: n.bounds.Z1}, n.depth+1)
	n.child[3] = NewQuadNode(RectF{X0: mx, Z0: mz, X1: n.bounds.X1, Z1: n.bounds.Z1}, n.depth+1)
}

func (n *QuadNode) childThatContains(b RectF) *QuadNode {
	for i := 0; i < 4; i++ {
		c := n.child[i]
		if c != nil && c.bounds.Contains(b) {
			return c
		}
	}
	return nil
}
