// Package greatcircle: sentinel errors and shared constants.
package greatcircle

import "errors"

// EarthRadiusKm is the mean Earth radius used to convert surface ranges to
// central angles when no radius is supplied.
const EarthRadiusKm = 6371.0

// Sentinel errors for greatcircle operations.
var (
	// ErrLengthMismatch indicates paired coordinate slices of different lengths.
	ErrLengthMismatch = errors.New("greatcircle: paired slices must have equal length")
	// ErrEmptyInput indicates that no points were supplied.
	ErrEmptyInput = errors.New("greatcircle: at least one point is required")
)
