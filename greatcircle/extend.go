package greatcircle

import (
	"github.com/maviryk/sphergrid/sphere"
)

// parallelEps bounds |v1×v2| below which a point pair is treated as
// coincident and extension degenerates to pt2 itself.
const parallelEps = 1e-12

// ExtendPoint returns the point continuing the great circle through pt1 and
// pt2 beyond pt2, at the same angular distance as between pt1 and pt2, or
// half that distance when halfDist is true.
//
// Steps: convert both points to unit-sphere xyz; theta from
// atan2(|v1×v2|, v1·v2); rotation axis normalize(v1×v2); rotate v2 by theta
// (or theta/2) and convert back. A coincident pair returns pt2 unchanged.
// Complexity: O(1).
func ExtendPoint(lon1, lat1, lon2, lat2 float64, halfDist bool) (lon3, lat3 float64) {
	v1 := sphere.FromLonLat(lon1, lat1)
	v2 := sphere.FromLonLat(lon2, lat2)

	axis := v1.Cross(v2)
	if axis.Norm() < parallelEps {
		return lon2, lat2
	}
	theta := v1.Angle(v2).Radians()
	if halfDist {
		theta /= 2
	}
	v3 := Rotate(RotationMatrix(axis, theta), v2)
	return sphere.ToLonLat(v3)
}

// Extend applies ExtendPoint elementwise over paired coordinate slices.
// All four slices must have the same nonzero length.
// Returns ErrEmptyInput or ErrLengthMismatch on malformed input.
// Complexity: O(n).
func Extend(lon1, lat1, lon2, lat2 []float64, halfDist bool) (lon3, lat3 []float64, err error) {
	n := len(lon1)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(lat1) != n || len(lon2) != n || len(lat2) != n {
		return nil, nil, ErrLengthMismatch
	}
	lon3 = make([]float64, n)
	lat3 = make([]float64, n)
	for i := 0; i < n; i++ {
		lon3[i], lat3[i] = ExtendPoint(lon1[i], lat1[i], lon2[i], lat2[i], halfDist)
	}
	return lon3, lat3, nil
}
