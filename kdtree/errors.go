// Package kdtree implements a 3D kd-tree over bounded items, built with the
// surface area heuristic and traversed for first-hit ray queries and
// point-in-item containment queries. Leaf behaviour is supplied by the
// caller through a LeafHandler, keeping the tree itself ignorant of
// whatever primitive type a particular Item.ID refers to.
package kdtree

import "errors"

// ErrInvalidArgument is returned by Build when its settings are out of
// range.
var ErrInvalidArgument = errors.New("kdtree: invalid argument")

// ErrAllocationFailure is returned if growing the node array would exceed
// the tree's hard safety ceiling (maxNodeCount). It guards against runaway
// recursion on pathological input rather than modelling a real allocator
// failure, which Go's slice growth does not surface as an error.
var ErrAllocationFailure = errors.New("kdtree: node allocation failure")

// ErrNotImplemented is returned by Hit/Contains when no LeafHandler has
// been attached to the tree.
var ErrNotImplemented = errors.New("kdtree: leaf handler not implemented")
