package greatcircle

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix returns the 3×3 matrix for a counter-clockwise rotation by
// theta radians about axis. The axis is normalized internally; it must not
// be the zero vector. The matrix is derived from the axis-angle/quaternion
// identities with a = cos(θ/2) and (b,c,d) = -axis·sin(θ/2).
// Complexity: O(1).
func RotationMatrix(axis r3.Vector, theta float64) *mat.Dense {
	axis = axis.Normalize()
	a := math.Cos(theta / 2)
	s := -math.Sin(theta / 2)
	b, c, d := axis.X*s, axis.Y*s, axis.Z*s

	aa, bb, cc, dd := a*a, b*b, c*c, d*d
	bc, ad, ac, ab, bd, cd := b*c, a*d, a*c, a*b, b*d, c*d
	return mat.NewDense(3, 3, []float64{
		aa + bb - cc - dd, 2 * (bc + ad), 2 * (bd - ac),
		2 * (bc - ad), aa + cc - bb - dd, 2 * (cd + ab),
		2 * (bd + ac), 2 * (cd - ab), aa + dd - bb - cc,
	})
}

// Rotate applies a rotation matrix to a position vector.
// Complexity: O(1).
func Rotate(m *mat.Dense, v r3.Vector) r3.Vector {
	in := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m, in)
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}
