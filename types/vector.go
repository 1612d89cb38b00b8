// Package types provides the linear-algebra primitives consumed by the
// geometry, kd-tree, trace, material, and cmd packages: 3-component vectors, points,
// normals, and 4x4 affine transforms.
//
// Vector3/Point3/Normal3 are distinct wrapper types over the same
// underlying float64 triple so call sites cannot accidentally dot a point
// with a normal; all three embed github.com/golang/geo/r3.Vector for the
// arithmetic core.
package types

import "github.com/golang/geo/r3"

// Vector3 is a free direction with no fixed origin.
type Vector3 struct {
	r3.Vector
}

// Point3 is a position in space.
type Point3 struct {
	r3.Vector
}

// Normal3 is a surface normal. Unlike a Vector3 it transforms by the
// inverse-transpose of an affine matrix; see AffineMatrix.TransformNormal.
type Normal3 struct {
	r3.Vector
}

// XYZ builds a Vector3 from components.
func XYZ(x, y, z float64) Vector3 {
	return Vector3{r3.Vector{X: x, Y: y, Z: z}}
}

// PointXYZ builds a Point3 from components.
func PointXYZ(x, y, z float64) Point3 {
	return Point3{r3.Vector{X: x, Y: y, Z: z}}
}

// NormalXYZ builds a Normal3 from components.
func NormalXYZ(x, y, z float64) Normal3 {
	return Normal3{r3.Vector{X: x, Y: y, Z: z}}
}

// Add returns v+other.
func (v Vector3) Add(other Vector3) Vector3 { return Vector3{v.Vector.Add(other.Vector)} }

// Sub returns v-other.
func (v Vector3) Sub(other Vector3) Vector3 { return Vector3{v.Vector.Sub(other.Vector)} }

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.Vector.Mul(s)} }

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 { return v.Vector.Dot(other.Vector) }

// Cross returns the cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 { return Vector3{v.Vector.Cross(other.Vector)} }

// Normalize returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vector3) Normalize() Vector3 {
	if v.Vector.Norm() == 0 {
		return v
	}
	return Vector3{v.Vector.Normalize()}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{v.Vector.Mul(-1)} }

// AsPoint reinterprets v as a Point3 offset from the origin.
func (v Vector3) AsPoint() Point3 { return Point3{v.Vector} }

// GetIndex returns the axis-th component (0=x, 1=y, 2=z).
func (v Vector3) GetIndex(axis int) float64 { return index(v.Vector, axis) }

// Add offsets p by v.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.Vector.Add(v.Vector)} }

// Sub returns the vector from other to p.
func (p Point3) Sub(other Point3) Vector3 { return Vector3{p.Vector.Sub(other.Vector)} }

// Offset nudges p along v scaled by s; used to push a hit point off the
// surface before spawning a daughter ray so it doesn't immediately
// re-intersect the originating surface.
func (p Point3) Offset(v Vector3, s float64) Point3 {
	return Point3{p.Vector.Add(v.Vector.Mul(s))}
}

// GetIndex returns the axis-th component (0=x, 1=y, 2=z).
func (p Point3) GetIndex(axis int) float64 { return index(p.Vector, axis) }

// SetIndex returns a copy of p with the axis-th component replaced by v.
func (p Point3) SetIndex(axis int, v float64) Point3 {
	return Point3{setIndex(p.Vector, axis, v)}
}

// Dot returns the dot product of n and v.
func (n Normal3) Dot(v Vector3) float64 { return n.Vector.Dot(v.Vector) }

// Normalize returns n scaled to unit length.
func (n Normal3) Normalize() Normal3 {
	if n.Vector.Norm() == 0 {
		return n
	}
	return Normal3{n.Vector.Normalize()}
}

// AsVector reinterprets n as a plain direction vector.
func (n Normal3) AsVector() Vector3 { return Vector3{n.Vector} }

// Negate returns -n.
func (n Normal3) Negate() Normal3 { return Normal3{n.Vector.Mul(-1)} }

func index(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setIndex(v r3.Vector, axis int, value float64) r3.Vector {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}
