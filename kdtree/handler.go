package kdtree

import (
	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
)

// LeafHandler is supplied by the caller at construction and invoked
// whenever traversal reaches a leaf. Modelling it as a captured interface
// value rather than a virtual method the tree overrides removes the
// subclass-dispatch indirection the source relies on (see DESIGN.md).
//
// HitLeaf receives the leaf's item ids, the active ray, and the current
// t_max bound; it re-fetches geometry for those ids externally and
// reports whether any intersects within t_max.
//
// ContainsLeaf receives the leaf's item ids and the query point and
// returns the subset whose geometry actually encloses the point (the
// tree's own bookkeeping only guarantees the point lies in the leaf's
// region, not that it lies inside any particular item's true shape).
type LeafHandler interface {
	HitLeaf(itemIDs []int32, r *trace.Ray, tMax float64) bool
	ContainsLeaf(itemIDs []int32, p types.Point3) []int32
}
