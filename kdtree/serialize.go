package kdtree

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/achilleasa/go-pathtrace/geometry"
)

// persistedTree is the exported shape gob actually encodes; Tree itself
// keeps its fields unexported so callers can't mutate a built tree's
// internals, per spec section 4.5.4's (bounds, nodes, settings) tuple.
type persistedTree struct {
	Bounds   geometry.BoundingBox
	Nodes    []KDNode
	Settings Settings
}

// Persist encodes t's bounds, node array, and settings using gob, the
// portable binary encoding spec section 6 calls for. Item boxes are not
// persisted; only the ids a leaf carries, since hit/contains hooks
// re-fetch geometry externally.
func Persist(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(persistedTree{
		Bounds:   t.bounds,
		Nodes:    t.nodes,
		Settings: t.settings,
	})
	if err != nil {
		return nil, fmt.Errorf("kdtree: persist: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore rebuilds a Tree from data produced by Persist, without re-running
// the builder. handler may be nil and attached later via SetHandler.
func Restore(data []byte, handler LeafHandler) (*Tree, error) {
	var p persistedTree
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, fmt.Errorf("kdtree: restore: %w", err)
	}

	stats := Stats{Nodes: len(p.Nodes)}
	for i := range p.Nodes {
		n := &p.Nodes[i]
		if n.isLeaf() {
			// gob does not transmit empty slices; restore an empty leaf's
			// item list as the empty (non-nil) slice Build emits.
			if n.Items == nil {
				n.Items = []int32{}
			}
			stats.Leaves++
			stats.TotalItems += len(n.Items)
		}
	}

	return &Tree{
		nodes:    p.Nodes,
		bounds:   p.Bounds,
		settings: p.Settings,
		handler:  handler,
		stats:    stats,
	}, nil
}
