package greatcircle_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/maviryk/sphergrid/greatcircle"
)

//----------------------------------------------------------------------------//
// RotationMatrix Tests
//----------------------------------------------------------------------------//

// TestRotationMatrix_AboutZ rotates the x unit vector 45° about z.
func TestRotationMatrix_AboutZ(t *testing.T) {
	m := greatcircle.RotationMatrix(r3.Vector{X: 0, Y: 0, Z: 1}, math.Pi/4)
	got := greatcircle.Rotate(m, r3.Vector{X: 1, Y: 0, Z: 0})
	want := r3.Vector{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2, Z: 0}
	require.InDelta(t, want.X, got.X, 1e-12)
	require.InDelta(t, want.Y, got.Y, 1e-12)
	require.InDelta(t, want.Z, got.Z, 1e-12)
}

// TestRotationMatrix_Orthonormal checks that rotation preserves vector norm
// for a batch of axes and angles.
func TestRotationMatrix_Orthonormal(t *testing.T) {
	axes := []r3.Vector{
		{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: -2, Y: 0.5, Z: 3},
	}
	v := r3.Vector{X: 0.3, Y: -0.4, Z: 0.8660254037844386}
	for _, axis := range axes {
		for _, theta := range []float64{0, 0.1, math.Pi / 3, math.Pi, 2.5} {
			got := greatcircle.Rotate(greatcircle.RotationMatrix(axis, theta), v)
			require.InDelta(t, v.Norm(), got.Norm(), 1e-12,
				"axis %v theta %v changed the norm", axis, theta)
		}
	}
}

//----------------------------------------------------------------------------//
// Extend Tests
//----------------------------------------------------------------------------//

// TestExtend_Table reproduces the reference cases: pt1 at the origin,
// pt2 at several offsets, unit-sphere expectations.
func TestExtend_Table(t *testing.T) {
	lon1 := []float64{0, 0, 0, 0}
	lat1 := []float64{0, 0, 0, 0}
	lon2 := []float64{90, 0, 45, 0}
	lat2 := []float64{0, 90, 0, 30}
	wantLon := []float64{180, 180, 90, 0}
	wantLat := []float64{0, 0, 0, 60}

	lon3, lat3, err := greatcircle.Extend(lon1, lat1, lon2, lat2, false)
	require.NoError(t, err)
	for i := range wantLon {
		require.InDelta(t, wantLat[i], lat3[i], 1e-9, "lat case %d", i)
		if math.Abs(math.Abs(wantLat[i])-90) > 1e-9 { // lon undefined at poles
			require.InDelta(t, wantLon[i], lon3[i], 1e-9, "lon case %d", i)
		}
	}
}

// TestExtendPoint_HalfDist places the extension at half the pair distance.
func TestExtendPoint_HalfDist(t *testing.T) {
	lon3, lat3 := greatcircle.ExtendPoint(0, 0, 90, 0, true)
	require.InDelta(t, 135.0, lon3, 1e-9)
	require.InDelta(t, 0.0, lat3, 1e-9)
}

// TestExtendPoint_Coincident verifies the degenerate pair returns pt2.
func TestExtendPoint_Coincident(t *testing.T) {
	lon3, lat3 := greatcircle.ExtendPoint(10, 20, 10, 20, false)
	require.Equal(t, 10.0, lon3)
	require.Equal(t, 20.0, lat3)
}

// TestExtend_Errors checks malformed slice inputs.
func TestExtend_Errors(t *testing.T) {
	_, _, err := greatcircle.Extend(nil, nil, nil, nil, false)
	require.ErrorIs(t, err, greatcircle.ErrEmptyInput)

	_, _, err = greatcircle.Extend([]float64{0, 1}, []float64{0}, []float64{1, 2}, []float64{0, 0}, false)
	require.ErrorIs(t, err, greatcircle.ErrLengthMismatch)
}

//----------------------------------------------------------------------------//
// RangeAzimuth Tests
//----------------------------------------------------------------------------//

// TestRangeAzimuthPoint_QuarterNorth moves one eighth of the circumference
// due north from the origin, landing at 45°N.
func TestRangeAzimuthPoint_QuarterNorth(t *testing.T) {
	c := 2 * math.Pi * greatcircle.EarthRadiusKm
	lon2, lat2 := greatcircle.RangeAzimuthPoint(0, 0, c/8, 0, 0)
	require.InDelta(t, 0.0, lon2, 1e-9)
	require.InDelta(t, 45.0, lat2, 1e-9)
}

// TestRangeAzimuth_AzimuthTable checks the four cardinal azimuths from the
// origin with broadcast scalar range.
func TestRangeAzimuth_AzimuthTable(t *testing.T) {
	c := 2 * math.Pi * greatcircle.EarthRadiusKm
	lon2, lat2, err := greatcircle.RangeAzimuth(
		[]float64{0}, []float64{0},
		[]float64{c / 8},
		[]float64{0, 90, -90, 180}, 0)
	require.NoError(t, err)

	wantLon := []float64{0, 45, -45, 0}
	wantLat := []float64{45, 0, 0, -45}
	for i := range wantLon {
		require.InDelta(t, wantLon[i], lon2[i], 1e-9, "lon az case %d", i)
		require.InDelta(t, wantLat[i], lat2[i], 1e-9, "lat az case %d", i)
	}
}

// TestRangeAzimuth_Errors checks broadcast failures.
func TestRangeAzimuth_Errors(t *testing.T) {
	_, _, err := greatcircle.RangeAzimuth(nil, nil, nil, nil, 0)
	if !errors.Is(err, greatcircle.ErrEmptyInput) {
		t.Errorf("empty input error = %v; want ErrEmptyInput", err)
	}
	_, _, err = greatcircle.RangeAzimuth([]float64{0, 1, 2}, []float64{0, 1}, []float64{5}, []float64{0}, 0)
	if !errors.Is(err, greatcircle.ErrLengthMismatch) {
		t.Errorf("mismatch error = %v; want ErrLengthMismatch", err)
	}
}

// TestRangeAzimuth_RoundTripDistance moves out and checks the angular
// distance equals range/R for a scatter of ranges and azimuths.
func TestRangeAzimuth_RoundTripDistance(t *testing.T) {
	const lon0, lat0 = -88.0, 37.0
	for az := 0.0; az < 360; az += 30 {
		lon2, lat2 := greatcircle.RangeAzimuthPoint(lon0, lat0, 50, az, 0)
		d := angularDistDeg(lon0, lat0, lon2, lat2) * math.Pi / 180 * greatcircle.EarthRadiusKm
		require.InDelta(t, 50.0, d, 1e-6, "azimuth %v", az)
	}
}

// angularDistDeg is a plain haversine helper for test verification.
func angularDistDeg(lon1, lat1, lon2, lat2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)) / rad
}
