package kdtree

import "sort"

// edge is a transient, build-time-only candidate split position: either
// the lower or upper extent of one item's box projected onto the axis
// under consideration.
type edge struct {
	value      float64
	isUpper    bool
	itemOffset int // index into the builder's current item slice
}

// sortEdges orders edges by (value, isUpper) so that, on a tie, an upper
// edge sorts before a coincident lower edge: the sweep then closes a
// straddling interval before opening a new one at the same coordinate.
func sortEdges(edges []edge) {
	sort.Slice(edges, func(i, j int) bool { return edgeLess(edges[i], edges[j]) })
}

func edgeLess(a, b edge) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	// coincident: upper edges sort first.
	if a.isUpper != b.isUpper {
		return a.isUpper
	}
	return false
}
