// Package project maps gridded geophysical data between arbitrary
// lon/lat grids on the sphere.
//
// What:
//
//   - Projector: an immutable mapping from a source grid to a
//     destination grid, built once and reused for any number of
//     data fields sharing the source geometry.
//   - Three transform modes, fixed at construction time:
//     nearest neighbour (the default), inverse nearest averaging
//     (Average), and fixed-radius smoothing (SmoothRadiusKm).
//   - Mesh: destination grids sampled from a map projection over a
//     geographic extent, for rendering data onto images.
//   - Border: the half-spacing outline of the source domain together
//     with the destination cells that fall outside it.
//
// Why:
//
// Regridding geophysical fields (radar mosaics, model output,
// satellite swaths) is dominated by the cost of the neighbour
// search, not by the per-field arithmetic. Splitting the mapping
// (Projector construction) from its application (Transform) makes
// projecting a long time series of fields cheap: the KD-tree and the
// index arrays are computed once.
//
// Modes:
//
//   - Nearest: every destination cell takes the value of its nearest
//     source point. Destination cells whose nearest neighbour lies on
//     the ghost ring surrounding the source grid are outside the
//     source domain and receive the configured missing value.
//   - Average: every source point contributes its value to its
//     nearest destination cell; cells accumulate a (optionally
//     weighted) mean. Suited to projecting a fine source onto a
//     coarse destination.
//   - Smooth: every destination cell averages all source points
//     within a fixed great-circle radius, given in kilometres.
//
// Complexity:
//
//   - Construction: O((n+m) log n) for n source and m destination
//     points, parallelised over the destination queries.
//   - Transform: O(m) nearest and average, O(m·k) smoothing for k
//     neighbours per cell.
//
// Errors: see types.go for the sentinel errors and ShapeError.
package project
