package kdtree

import (
	"time"

	"github.com/achilleasa/go-pathtrace/geometry"
	"github.com/achilleasa/go-pathtrace/log"
)

// maxNodeCount is the hard ceiling on node array growth; see
// ErrAllocationFailure.
const maxNodeCount = 1 << 28

// Build constructs a Tree over items using the surface area heuristic,
// per spec section 4.5.1. The returned tree is immutable; handler may be
// nil and attached later via Tree.SetHandler.
func Build(items []geometry.Item, settings Settings, handler LeafHandler) (*Tree, error) {
	settings, err := settings.validate(len(items))
	if err != nil {
		return nil, err
	}

	bounds := geometry.Empty()
	for _, it := range items {
		bounds.Union(it.Box)
	}

	b := &builder{
		logger:   log.New("kdtree"),
		settings: settings,
		nodes:    make([]KDNode, 0, 128),
	}

	start := time.Now()
	if _, err := b.build(items, bounds, 0); err != nil {
		return nil, err
	}
	b.stats.BuildTime = time.Since(start)

	b.logger.Debugf(
		"built tree: %d nodes, %d leaves, max depth %d, build time %s",
		b.stats.Nodes, b.stats.Leaves, b.stats.MaxDepth, b.stats.BuildTime,
	)

	return &Tree{
		nodes:    b.nodes,
		bounds:   bounds,
		settings: settings,
		handler:  handler,
		stats:    b.stats,
	}, nil
}

type builder struct {
	logger   log.Logger
	settings Settings
	nodes    []KDNode
	stats    Stats
}

// build partitions items within bounds at the given depth and returns the
// index of the node it emits. The node array grows by append, which may
// reallocate its backing store; the parent's own slot is therefore written
// by index only after both recursive child calls return, never through a
// pointer obtained before recursing (see the kdtree section of DESIGN.md).
func (b *builder) build(items []geometry.Item, bounds geometry.BoundingBox, depth int) (int32, error) {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	if depth >= b.settings.MaxDepth || len(items) <= b.settings.MinItems {
		return b.emitLeaf(items)
	}

	axis, split, found := b.bestSplit(items, bounds)
	if !found {
		return b.emitLeaf(items)
	}

	if len(b.nodes) >= maxNodeCount {
		return 0, ErrAllocationFailure
	}

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, KDNode{})

	lowerItems, upperItems := partitionItems(items, axis, split)
	lowerBounds := bounds.SetIndex(axis, true, split)
	upperBounds := bounds.SetIndex(axis, false, split)

	if _, err := b.build(lowerItems, lowerBounds, depth+1); err != nil {
		return 0, err
	}
	upperIndex, err := b.build(upperItems, upperBounds, depth+1)
	if err != nil {
		return 0, err
	}

	b.nodes[nodeIndex] = KDNode{
		Kind:  Kind(axis),
		Split: split,
		Upper: upperIndex,
	}
	b.stats.Nodes++

	return nodeIndex, nil
}

func (b *builder) emitLeaf(items []geometry.Item) (int32, error) {
	if len(b.nodes) >= maxNodeCount {
		return 0, ErrAllocationFailure
	}

	ids := make([]int32, len(items))
	for i, it := range items {
		ids[i] = int32(it.ID)
	}

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, KDNode{Kind: Leaf, Items: ids})
	b.stats.Nodes++
	b.stats.Leaves++
	b.stats.TotalItems += len(ids)

	return nodeIndex, nil
}

// bestSplit tries axes in the order [longest, (longest+1)%3, (longest+2)%3],
// stopping at the first axis that yields at least one candidate split
// strictly inside bounds. It returns found=false if no axis ever split the
// parent (or the best candidate on that axis fails to beat the leaf cost).
func (b *builder) bestSplit(items []geometry.Item, bounds geometry.BoundingBox) (axis int, split float64, found bool) {
	leafCost := float64(len(items)) * b.settings.HitCost
	area := bounds.SurfaceArea()
	if area == 0 {
		return 0, 0, false
	}

	for _, a := range orderedAxes(bounds.LargestAxis()) {
		lo := bounds.GetIndex(a, false)
		hi := bounds.GetIndex(a, true)

		edges := make([]edge, 0, 2*len(items))
		for i, it := range items {
			edges = append(edges,
				edge{value: it.Box.GetIndex(a, false), isUpper: false, itemOffset: i},
				edge{value: it.Box.GetIndex(a, true), isUpper: true, itemOffset: i},
			)
		}
		sortEdges(edges)

		lowerCount, upperCount := 0, len(items)
		bestCost := leafCost
		axisFound := false

		for _, e := range edges {
			if e.isUpper {
				upperCount--
			}

			if e.value > lo && e.value < hi {
				axisFound = true
				cost := splitCost(bounds, area, a, e.value, lowerCount, upperCount, b.settings)
				if cost < bestCost {
					bestCost = cost
					axis, split, found = a, e.value, true
				}
			}

			if !e.isUpper {
				lowerCount++
			}
		}

		if axisFound {
			return axis, split, found
		}
	}

	return 0, 0, false
}

func splitCost(bounds geometry.BoundingBox, area float64, axis int, splitAt float64, nLo, nHi int, settings Settings) float64 {
	lo := bounds.SetIndex(axis, true, splitAt)
	hi := bounds.SetIndex(axis, false, splitAt)

	bonus := 1.0
	if nLo == 0 || nHi == 0 {
		bonus = 1 - settings.EmptyBonus
	}

	return 1 + bonus*(lo.SurfaceArea()*float64(nLo)+hi.SurfaceArea()*float64(nHi))/area*settings.HitCost
}

func orderedAxes(longest int) [3]int {
	return [3]int{longest, (longest + 1) % 3, (longest + 2) % 3}
}

func partitionItems(items []geometry.Item, axis int, split float64) (lower, upper []geometry.Item) {
	for _, it := range items {
		if it.Box.GetIndex(axis, false) < split {
			lower = append(lower, it)
		}
		if it.Box.GetIndex(axis, true) > split {
			upper = append(upper, it)
		}
	}
	return lower, upper
}
