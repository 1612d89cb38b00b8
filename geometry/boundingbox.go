package geometry

import (
	"math"

	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
)

// BoundingBox is an axis-aligned extent in 3-space, expressed as the
// componentwise min (Lower) and max (Upper) corner points.
type BoundingBox struct {
	Lower types.Point3
	Upper types.Point3
}

// Empty returns a bounding box primed for accumulation via Union: Lower at
// +inf, Upper at -inf, so the first unioned box replaces it outright.
func Empty() BoundingBox {
	return BoundingBox{
		Lower: types.PointXYZ(math.Inf(1), math.Inf(1), math.Inf(1)),
		Upper: types.PointXYZ(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// New returns the bounding box spanning lower to upper. Callers are
// responsible for lower <= upper componentwise; Union and the builder never
// violate it.
func New(lower, upper types.Point3) BoundingBox {
	return BoundingBox{Lower: lower, Upper: upper}
}

// Union extends b in place to also cover other.
func (b *BoundingBox) Union(other BoundingBox) {
	for axis := 0; axis < 3; axis++ {
		if v := other.Lower.GetIndex(axis); v < b.Lower.GetIndex(axis) {
			b.Lower = b.Lower.SetIndex(axis, v)
		}
		if v := other.Upper.GetIndex(axis); v > b.Upper.GetIndex(axis) {
			b.Upper = b.Upper.SetIndex(axis, v)
		}
	}
}

// SurfaceArea returns 2*(dx*dy + dy*dz + dz*dx), or 0 for a degenerate box
// (any side negative).
func (b BoundingBox) SurfaceArea() float64 {
	dx := b.Upper.X - b.Lower.X
	dy := b.Upper.Y - b.Lower.Y
	dz := b.Upper.Z - b.Lower.Z
	if dx < 0 || dy < 0 || dz < 0 {
		return 0
	}
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// LargestAxis returns the axis (0/1/2) with the greatest extent, ties
// broken in favour of the lowest axis index.
func (b BoundingBox) LargestAxis() int {
	dx := b.Upper.X - b.Lower.X
	dy := b.Upper.Y - b.Lower.Y
	dz := b.Upper.Z - b.Lower.Z

	axis := 0
	longest := dx
	if dy > longest {
		axis, longest = 1, dy
	}
	if dz > longest {
		axis = 2
	}
	return axis
}

// FullIntersection intersects r against b using the slab method, returning
// whether it hit and, if so, the entry/exit parametric distances.
func (b BoundingBox) FullIntersection(r *trace.Ray) (hit bool, tMin, tMax float64) {
	tMin, tMax = math.Inf(-1), math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin.GetIndex(axis)
		d := r.Direction.GetIndex(axis)
		lo := b.Lower.GetIndex(axis)
		hi := b.Upper.GetIndex(axis)

		if d == 0 {
			if o < lo || o > hi {
				return false, 0, 0
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false, 0, 0
		}
	}

	return true, tMin, tMax
}

// Contains reports whether p lies within b, inclusive on all faces.
func (b BoundingBox) Contains(p types.Point3) bool {
	for axis := 0; axis < 3; axis++ {
		v := p.GetIndex(axis)
		if v < b.Lower.GetIndex(axis) || v > b.Upper.GetIndex(axis) {
			return false
		}
	}
	return true
}

// GetIndex returns the axis-th component of either the lower or upper
// corner, selected by upper.
func (b BoundingBox) GetIndex(axis int, upper bool) float64 {
	if upper {
		return b.Upper.GetIndex(axis)
	}
	return b.Lower.GetIndex(axis)
}

// SetIndex returns a copy of b with the axis-th component of either the
// lower or upper corner replaced by v.
func (b BoundingBox) SetIndex(axis int, upper bool, v float64) BoundingBox {
	if upper {
		b.Upper = b.Upper.SetIndex(axis, v)
	} else {
		b.Lower = b.Lower.SetIndex(axis, v)
	}
	return b
}
