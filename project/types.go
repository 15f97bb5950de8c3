package project

import (
	"errors"
	"fmt"

	"github.com/maviryk/sphergrid/grid"
)

// DefaultMissing marks destination cells with no usable source data.
const DefaultMissing = -9999.0

// missingTol is the tolerance used to match field values against the
// caller-supplied missing marker when excluding them from averages.
const missingTol = 1e-3

var (
	// ErrNoSource is returned by New when the source coordinates are nil.
	ErrNoSource = errors.New("project: source coordinates are required")

	// ErrNoDestination is returned by New when the destination
	// coordinates are nil.
	ErrNoDestination = errors.New("project: destination coordinates are required")

	// ErrAverageAndSmooth is returned by New when both the averaging
	// and the smoothing mode are requested at once.
	ErrAverageAndSmooth = errors.New("project: Average and SmoothRadiusKm are mutually exclusive")

	// ErrSmoothRadius is returned by New for a negative smoothing radius.
	ErrSmoothRadius = errors.New("project: SmoothRadiusKm must be non-negative")

	// ErrWeightsNearest is returned when a weighted transform is
	// requested on a nearest-neighbour projector, which has no
	// averaging denominator to weight.
	ErrWeightsNearest = errors.New("project: weighted transforms require Average or SmoothRadiusKm mode")

	// ErrBadExtent is returned by Mesh for an empty or inverted
	// geographic extent.
	ErrBadExtent = errors.New("project: extent must satisfy LonMin < LonMax and LatMin < LatMax")

	// ErrBadResolution is returned by Mesh when either mesh dimension
	// is below two samples.
	ErrBadResolution = errors.New("project: mesh resolution must be at least 2x2")

	// ErrRaggedData is returned by the transforms when the rows of a
	// data or weight field have unequal lengths.
	ErrRaggedData = errors.New("project: data rows must have equal lengths")

	// ErrEmptyData is returned by the transforms for a nil or empty field.
	ErrEmptyData = errors.New("project: data must not be empty")
)

// ShapeError reports a field whose shape does not match the grid the
// projector was built for.
type ShapeError struct {
	// Expected is the shape the projector requires.
	Expected grid.Shape
	// Actual is the shape of the offending field.
	Actual grid.Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("project: field shape %s does not match grid shape %s",
		e.Actual, e.Expected)
}

// Options configures a Projector. The zero value is a nearest-neighbour
// projector with no domain extension; DefaultOptions enables extension
// on both axes, which is what gridded sources almost always want.
type Options struct {
	// ExtendX grows the source domain by one ghost row on each side
	// before the nearest-neighbour search, so that destination cells
	// past the first or last source row can be recognised as outside
	// the domain. Meaningless in Average and Smooth modes.
	ExtendX bool

	// ExtendY is ExtendX for the column axis.
	ExtendY bool

	// Average selects the inverse mapping: source points are binned
	// onto their nearest destination cell and averaged.
	Average bool

	// SmoothRadiusKm, when positive, selects the smoothing mode:
	// destination cells average all source points within this
	// great-circle distance in kilometres.
	SmoothRadiusKm float64

	// MinHits is the minimum number of contributing source points for
	// an averaged cell to receive a value instead of Missing.
	// Values below one are treated as one.
	MinHits int

	// Missing is written to destination cells with no usable source
	// data.
	Missing float64

	// Workers bounds the parallelism of the neighbour searches during
	// construction. Zero or negative means one worker per CPU.
	Workers int
}

// DefaultOptions returns the options used by most callers: domain
// extension on both axes, nearest-neighbour mode, missing value
// DefaultMissing.
func DefaultOptions() Options {
	return Options{
		ExtendX: true,
		ExtendY: true,
		MinHits: 1,
		Missing: DefaultMissing,
	}
}

type mode int

const (
	modeNearest mode = iota
	modeAverage
	modeSmooth
)
