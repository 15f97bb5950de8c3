package greatcircle

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/maviryk/sphergrid/sphere"
)

// northPole is the rotation target for the range leg.
var northPole = r3.Vector{X: 0, Y: 0, Z: 1}

// RangeAzimuthPoint returns the point at rangeKm kilometres (along the
// surface) and azimuthDeg compass degrees from (lon1, lat1). A non-positive
// earthRadiusKm selects EarthRadiusKm.
//
// Two rotations are composed: first the start point is rotated toward the
// north pole by theta = range/earthRadius about cross(p1, northPole), then
// the result is rotated about the original p1 by -azimuth. The azimuth sign
// flips because compass angles grow clockwise while RotationMatrix rotates
// counter-clockwise.
// Complexity: O(1).
func RangeAzimuthPoint(lon1, lat1, rangeKm, azimuthDeg, earthRadiusKm float64) (lon2, lat2 float64) {
	if earthRadiusKm <= 0 {
		earthRadiusKm = EarthRadiusKm
	}
	p1 := sphere.FromLonLat(lon1, lat1)

	axis := p1.Cross(northPole)
	if axis.Norm() < parallelEps {
		// start point at a pole: any meridian serves as the range direction
		axis = r3.Vector{X: 0, Y: 1, Z: 0}
	}
	mRange := RotationMatrix(axis, rangeKm/earthRadiusKm)
	mAz := RotationMatrix(p1, -azimuthDeg*math.Pi/180)

	var m mat.Dense
	m.Mul(mAz, mRange)
	return sphere.ToLonLat(Rotate(&m, p1))
}

// RangeAzimuth applies RangeAzimuthPoint elementwise. Scalar-like inputs of
// length 1 are broadcast against the longest slice; otherwise all slices
// must share one length. Returns ErrEmptyInput or ErrLengthMismatch on
// malformed input.
// Complexity: O(n).
func RangeAzimuth(lon1, lat1, rangeKm, azimuthDeg []float64, earthRadiusKm float64) (lon2, lat2 []float64, err error) {
	n, err := broadcastLen(len(lon1), len(lat1), len(rangeKm), len(azimuthDeg))
	if err != nil {
		return nil, nil, err
	}
	lon2 = make([]float64, n)
	lat2 = make([]float64, n)
	for i := 0; i < n; i++ {
		lon2[i], lat2[i] = RangeAzimuthPoint(
			bcast(lon1, i), bcast(lat1, i), bcast(rangeKm, i), bcast(azimuthDeg, i),
			earthRadiusKm)
	}
	return lon2, lat2, nil
}

// broadcastLen resolves the common length of the inputs: every length must
// be 1 or equal to the maximum.
func broadcastLen(lens ...int) (int, error) {
	n := 0
	for _, l := range lens {
		if l > n {
			n = l
		}
	}
	if n == 0 {
		return 0, ErrEmptyInput
	}
	for _, l := range lens {
		if l != 1 && l != n {
			return 0, ErrLengthMismatch
		}
	}
	return n, nil
}

// bcast indexes a slice under broadcast semantics.
func bcast(s []float64, i int) float64 {
	if len(s) == 1 {
		return s[0]
	}
	return s[i]
}
