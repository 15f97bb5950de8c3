// Package kdtree provides a static 3-dimensional KD-tree over unit-sphere
// vectors, built once and queried many times.
//
// What:
//
//   - Build — median-split construction over a point set, O(n log n).
//   - Nearest — single nearest point by Euclidean (chord) distance.
//   - WithinRadius — all points within a chord radius of a query.
//   - NearestBatch / WithinRadiusBatch — the same queries fanned out over a
//     fixed worker pool with context cancellation between chunks.
//
// Why:
//
//   - Regridding resolves every destination cell against the source grid:
//     one batch nearest query at construction time, or one radius query per
//     cell per transform in smoothing mode. Both are embarrassingly
//     parallel across destination points.
//   - Chord distance on the unit sphere is monotone in great-circle
//     distance, so "nearest by chord" is "nearest on the globe".
//
// Concurrency:
//
//   - A Tree is immutable after Build; any number of goroutines may query
//     it concurrently.
//
// Complexity:
//
//   - Build: O(n log n) time, O(n) memory (indices only; points are shared
//     with the caller and must not be mutated afterwards).
//   - Nearest: O(log n) expected. WithinRadius: O(log n + k) expected.
//
// Errors:
//
//   - ErrNoPoints: Build with an empty point set.
package kdtree
