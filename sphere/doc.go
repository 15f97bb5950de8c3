// Package sphere converts between geodetic lon/lat coordinates (degrees)
// and unit-sphere Cartesian vectors.
//
// What:
//
//   - FromLonLat / ToLonLat — single-point conversion both ways.
//   - FromLonLatSlice / ToLonLatSlice — the same, vectorized over flattened
//     coordinate arrays of arbitrary origin shape.
//   - NormalizeLons — fold longitudes into the [-180, 180) range.
//
// Why:
//
//   - Nearest-neighbor regridding on the globe reduces to Euclidean search
//     once every grid point lives on the unit sphere: the chord distance is
//     monotone in the great-circle distance.
//
// Conventions:
//
//   - x = cos(lat)·cos(lon), y = cos(lat)·sin(lon), z = sin(lat), with lon
//     and lat in degrees at the API boundary, radians internally.
//   - The inverse uses atan2 forms throughout, so it is stable near the
//     poles; longitude at an exact pole is reported as 0.
//
// Round trip: ToLonLat(FromLonLat(lon, lat)) ≈ (lon, lat) to better than
// 1e-6 degrees for lat strictly inside (-90, 90).
package sphere
