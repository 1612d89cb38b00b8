package types

// AffineMatrix is a row-major 4x4 affine transform used to move geometry
// between a primitive's local space and world space. Only the operations
// the material package needs are implemented: transforming points, free
// vectors, and surface normals.
type AffineMatrix struct {
	m [16]float64
}

// Identity returns the identity transform.
func Identity() AffineMatrix {
	return AffineMatrix{m: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// NewAffineMatrix builds a matrix from 16 row-major entries.
func NewAffineMatrix(entries [16]float64) AffineMatrix {
	return AffineMatrix{m: entries}
}

// Mul returns a.Mul(b), the matrix that applies b first, then a.
func (a AffineMatrix) Mul(b AffineMatrix) AffineMatrix {
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a.m[r*4+k] * b.m[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return AffineMatrix{m: out}
}

// Transpose returns the transpose of a.
func (a AffineMatrix) Transpose() AffineMatrix {
	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = a.m[r*4+c]
		}
	}
	return AffineMatrix{m: out}
}

// Inverse returns the inverse of a, computed by Gauss-Jordan elimination on
// the augmented 4x4 system. Panics if a is singular; build-time transforms
// are assumed well-conditioned, matching the teacher's assumption that
// scene transforms are always invertible.
func (a AffineMatrix) Inverse() AffineMatrix {
	var aug [4][8]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			aug[r][c] = a.m[r*4+c]
		}
		aug[r][4+r] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if abs(aug[r][col]) > abs(aug[pivot][col]) {
				pivot = r
			}
		}
		if aug[pivot][col] == 0 {
			panic("types: AffineMatrix.Inverse: matrix is singular")
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pivotVal := aug[col][col]
		for c := 0; c < 8; c++ {
			aug[col][c] /= pivotVal
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			for c := 0; c < 8; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = aug[r][4+c]
		}
	}
	return AffineMatrix{m: out}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TransformPoint applies the full affine transform (rotation, scale, and
// translation) to p.
func (a AffineMatrix) TransformPoint(p Point3) Point3 {
	x, y, z := p.X, p.Y, p.Z
	return PointXYZ(
		a.m[0]*x+a.m[1]*y+a.m[2]*z+a.m[3],
		a.m[4]*x+a.m[5]*y+a.m[6]*z+a.m[7],
		a.m[8]*x+a.m[9]*y+a.m[10]*z+a.m[11],
	)
}

// TransformVector applies only the linear part of the transform (no
// translation) to v, as required for directions.
func (a AffineMatrix) TransformVector(v Vector3) Vector3 {
	x, y, z := v.X, v.Y, v.Z
	return XYZ(
		a.m[0]*x+a.m[1]*y+a.m[2]*z,
		a.m[4]*x+a.m[5]*y+a.m[6]*z,
		a.m[8]*x+a.m[9]*y+a.m[10]*z,
	)
}

// TransformNormal transforms a surface normal by the inverse-transpose of
// the linear part of a, which keeps normals perpendicular to their surface
// under non-uniform scaling. Callers normalize the result themselves.
func (a AffineMatrix) TransformNormal(n Normal3) Normal3 {
	inv := a.Inverse()
	x, y, z := n.X, n.Y, n.Z
	// Apply transpose(inverse(linear3x3)): row i of transpose = column i of inverse.
	return NormalXYZ(
		inv.m[0]*x+inv.m[4]*y+inv.m[8]*z,
		inv.m[1]*x+inv.m[5]*y+inv.m[9]*z,
		inv.m[2]*x+inv.m[6]*y+inv.m[10]*z,
	)
}
