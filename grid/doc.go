// Package grid holds geodetic coordinate grids and the synthetic "ghost
// ring" constructions used for out-of-domain detection and border drawing.
//
// What:
//
//   - Coords wraps paired lon/lat arrays, 2-D rectangular or 1-D, stored
//     flat in row-major order. Rows run along the "x" (longitude) axis and
//     columns along the "y" (latitude) axis by convention.
//   - Extend pads a 2-D grid with one extrapolated row/column per extended
//     side, at the full spacing of the outermost interior rows. The padding
//     is synthetic: it exists only so a nearest-neighbor hit on it marks a
//     query as outside the real domain.
//   - BorderRing builds a half-spacing ghost ring and walks it into an
//     ordered closed polygon for rendering the domain outline.
//
// Why:
//
//   - When a destination grid is larger than the source grid, regridding
//     must report "no data" rather than extrapolate; the ghost ring gives
//     nearest-neighbor search a catchment area that flags exactly those
//     points.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrShapeMismatch: malformed input.
//   - ErrVectorExtend: extension requested on a 1-D grid.
package grid
