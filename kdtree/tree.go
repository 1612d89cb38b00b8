package kdtree

import (
	"github.com/achilleasa/go-pathtrace/geometry"
	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
)

// Tree is an immutable kd-tree built by Build. The zero value is not
// usable; construct one through Build or Restore.
type Tree struct {
	nodes    []KDNode
	bounds   geometry.BoundingBox
	settings Settings
	handler  LeafHandler
	stats    Stats
}

// Bounds returns the union of every item box supplied at build time.
func (t *Tree) Bounds() geometry.BoundingBox { return t.bounds }

// Settings returns the (validated/derived) settings the tree was built
// with.
func (t *Tree) Settings() Settings { return t.settings }

// Stats returns the build-time counters.
func (t *Tree) Stats() Stats { return t.stats }

// SetHandler attaches (or replaces) the leaf handler. Hit/Contains return
// ErrNotImplemented until one is attached.
func (t *Tree) SetHandler(h LeafHandler) { t.handler = h }

// Hit intersects r against the tree, descending from the root with the
// ray's entry/exit distances against the overall bounds. Traversal stops
// at the first leaf whose handler reports a hit.
func (t *Tree) Hit(r *trace.Ray) (bool, error) {
	if t.handler == nil {
		return false, ErrNotImplemented
	}
	if len(t.nodes) == 0 {
		return false, nil
	}

	hit, tMin, tMax := t.bounds.FullIntersection(r)
	if !hit {
		return false, nil
	}
	return t.hit(0, r, tMin, tMax), nil
}

func (t *Tree) hit(nodeIndex int32, r *trace.Ray, tMin, tMax float64) bool {
	node := &t.nodes[nodeIndex]
	if node.isLeaf() {
		return t.handler.HitLeaf(node.Items, r, tMax)
	}

	axis := int(node.Kind)
	o := r.Origin.GetIndex(axis)
	d := r.Direction.GetIndex(axis)
	lower := nodeIndex + 1
	upper := node.Upper

	if d == 0 {
		if o < node.Split {
			return t.hit(lower, r, tMin, tMax)
		}
		return t.hit(upper, r, tMin, tMax)
	}

	tSplit := (node.Split - o) / d
	below := o < node.Split || (o == node.Split && d < 0)

	near, far := upper, lower
	if below {
		near, far = lower, upper
	}

	switch {
	case tSplit > tMax || tSplit <= 0:
		return t.hit(near, r, tMin, tMax)
	case tSplit < tMin:
		return t.hit(far, r, tMin, tMax)
	default:
		if t.hit(near, r, tMin, tSplit) {
			return true
		}
		return t.hit(far, r, tSplit, tMax)
	}
}

// Contains returns the item ids whose leaf region (and, per the attached
// handler, true geometry) encloses p. Returns nil, nil if p lies outside
// the tree's overall bounds.
func (t *Tree) Contains(p types.Point3) ([]int32, error) {
	if t.handler == nil {
		return nil, ErrNotImplemented
	}
	if len(t.nodes) == 0 {
		return nil, nil
	}
	if !t.bounds.Contains(p) {
		return nil, nil
	}
	return t.contains(0, p), nil
}

func (t *Tree) contains(nodeIndex int32, p types.Point3) []int32 {
	node := &t.nodes[nodeIndex]
	if node.isLeaf() {
		return t.handler.ContainsLeaf(node.Items, p)
	}

	axis := int(node.Kind)
	if p.GetIndex(axis) < node.Split {
		return t.contains(nodeIndex+1, p)
	}
	return t.contains(node.Upper, p)
}
