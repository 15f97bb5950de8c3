// Package kdtree: options and sentinel errors.
package kdtree

import (
	"errors"
	"runtime"
)

// Sentinel errors for kdtree operations.
var (
	// ErrNoPoints indicates Build was called with an empty point set.
	ErrNoPoints = errors.New("kdtree: point set must be non-empty")
)

// Options tunes batch query execution.
type Options struct {
	// Workers is the number of goroutines used by batch queries.
	// Values < 1 select runtime.NumCPU().
	Workers int
}

// DefaultOptions returns batch options using one worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// workers resolves the effective worker count for a batch of n queries.
func (o Options) workers(n int) int {
	w := o.Workers
	if w < 1 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}
