package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// FromLonLat converts a lon/lat pair in degrees to a unit-sphere vector.
// Complexity: O(1).
func FromLonLat(lon, lat float64) r3.Vector {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)).Vector
}

// ToLonLat converts a Cartesian vector to lon/lat in degrees. The vector
// need not be normalized; only its direction matters. Longitude of a vector
// pointing at a pole is reported as 0.
// Complexity: O(1).
func ToLonLat(v r3.Vector) (lon, lat float64) {
	ll := s2.LatLngFromPoint(s2.Point{Vector: v})
	return ll.Lng.Degrees(), ll.Lat.Degrees()
}

// FromLonLatSlice converts paired lon/lat slices (degrees) to unit-sphere
// vectors. Both slices must have equal length; the result preserves order,
// so callers may flatten 2-D grids row-major and index the output with the
// same flat index. Non-finite coordinates yield non-finite vectors, which
// downstream queries treat as invalid points.
// Complexity: O(n).
func FromLonLatSlice(lons, lats []float64) []r3.Vector {
	out := make([]r3.Vector, len(lons))
	for i := range lons {
		if math.IsNaN(lons[i]) || math.IsNaN(lats[i]) ||
			math.IsInf(lons[i], 0) || math.IsInf(lats[i], 0) {
			nan := math.NaN()
			out[i] = r3.Vector{X: nan, Y: nan, Z: nan}
			continue
		}
		out[i] = FromLonLat(lons[i], lats[i])
	}
	return out
}

// ToLonLatSlice converts vectors back to paired lon/lat slices in degrees.
// Complexity: O(n).
func ToLonLatSlice(vs []r3.Vector) (lons, lats []float64) {
	lons = make([]float64, len(vs))
	lats = make([]float64, len(vs))
	for i, v := range vs {
		lons[i], lats[i] = ToLonLat(v)
	}
	return lons, lats
}

// NormalizeLon folds a single longitude into [-180, 180).
func NormalizeLon(lon float64) float64 {
	l := math.Mod(lon+180, 360)
	if l < 0 {
		l += 360
	}
	return l - 180
}

// NormalizeLons returns a copy of lons with every value folded into
// [-180, 180). The input is not modified.
// Complexity: O(n).
func NormalizeLons(lons []float64) []float64 {
	out := make([]float64, len(lons))
	for i, l := range lons {
		out[i] = NormalizeLon(l)
	}
	return out
}
