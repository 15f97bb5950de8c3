// Package sphergrid regrids geophysical data between arbitrary lon/lat
// grids on the sphere — from unit-vector primitives to a cached,
// reusable projection engine.
//
// 🚀 What is sphergrid?
//
//	A library for moving gridded fields (radar mosaics, model output,
//	satellite swaths) from one geometry to another:
//		• sphere/      — lon/lat ↔ unit-vector conversion and longitude folding
//		• greatcircle/ — rotation matrices, arc extension, range/azimuth travel
//		• kdtree/      — a static 3-D tree with parallel batch queries
//		• grid/        — rectangular lon/lat grids, ghost rings, border outlines
//		• project/     — the orchestrator: nearest, averaging and smoothing
//		  transforms with out-of-domain detection
//
// ✨ Why choose sphergrid?
//
//   - Build once, transform many – the expensive neighbour search is cached
//   - Honest geometry – all distances are chords on the unit sphere,
//     no flat-earth approximations near poles or the date line
//   - Concurrency-ready – projectors are immutable, transforms are
//     safe to run in parallel
//
// Quick ASCII example:
//
//	source 2x2          destination 4x4
//	  3───1               ·  ·  ·  ·
//	  │   │      ──►      ·  3  1  ·
//	  4───2               ·  4  2  ·
//	                      ·  ·  ·  ·
//
//	destination cells beyond the source domain receive a missing value.
//
// Dive into the package docs for the full API; project/ is the usual
// entry point.
//
//	go get github.com/maviryk/sphergrid
package sphergrid
