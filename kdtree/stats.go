package kdtree

import "time"

// Stats accumulates build-time counters, mirroring the teacher's bvh
// builder stats struct so the cmd layer has something to render in a
// table.
type Stats struct {
	TotalItems int
	Nodes      int
	Leaves     int
	MaxDepth   int
	BuildTime  time.Duration
}

// MeanLeafSize returns the average item count per leaf, or 0 if the tree
// has no leaves.
func (s Stats) MeanLeafSize() float64 {
	if s.Leaves == 0 {
		return 0
	}
	return float64(s.TotalItems) / float64(s.Leaves)
}
