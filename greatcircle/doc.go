// Package greatcircle implements rotations on the sphere and the two
// constructions built from them: great-circle extension of a point pair and
// range/azimuth point placement.
//
// What:
//
//   - RotationMatrix — 3×3 matrix for a counter-clockwise rotation by theta
//     radians about an axis through the sphere center.
//   - Extend / ExtendPoint — given pt1 and pt2, produce pt3 continuing their
//     great circle beyond pt2 at the same (or half) angular distance.
//   - RangeAzimuth / RangeAzimuthPoint — the point at a given range (km,
//     along the surface) and compass azimuth (degrees) from a start point.
//
// Why:
//
//   - Extend synthesizes the ghost ring that regridding uses to detect
//     destination points outside a source domain, and the half-distance
//     variant places the domain border polygon.
//   - RangeAzimuth places radar measurements given site, range and azimuth.
//
// Conventions:
//
//   - Angles handed to RotationMatrix are radians; lon/lat and azimuth at
//     the API boundary are degrees. Azimuth is the meteorological compass
//     angle, increasing clockwise from north, hence the sign flip before
//     the counter-clockwise rotation primitive is applied.
//   - The angle between two position vectors is computed with
//     atan2(|v1×v2|, v1·v2), which stays accurate where acos degrades.
//
// Errors:
//
//   - ErrLengthMismatch: paired coordinate slices of differing lengths.
//   - ErrEmptyInput: no points supplied.
package greatcircle
