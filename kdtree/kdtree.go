package kdtree

import (
	"math"

	"github.com/golang/geo/r3"
)

// Tree is a static KD-tree over a fixed set of 3-D points. The tree stores
// only a permutation of point indices; the point slice is shared with the
// caller and must not be mutated after Build.
type Tree struct {
	pts []r3.Vector
	idx []int // permutation arranged as an implicit median tree
}

// Build constructs a KD-tree over pts. Splitting axes cycle x→y→z with
// depth; each subrange is partitioned in place around its median, so the
// tree needs no per-node allocation. Returns ErrNoPoints on empty input.
// Complexity: O(n log n) time, O(n) memory.
func Build(pts []r3.Vector) (*Tree, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	t := &Tree{pts: pts, idx: idx}
	t.build(0, len(idx), 0)
	return t, nil
}

// Len returns the number of indexed points.
func (t *Tree) Len() int { return len(t.pts) }

func (t *Tree) build(lo, hi, depth int) {
	if hi-lo <= 1 {
		return
	}
	mid := (lo + hi) / 2
	t.selectNth(lo, hi, mid, depth%3)
	t.build(lo, mid, depth+1)
	t.build(mid+1, hi, depth+1)
}

// selectNth partially sorts idx[lo:hi] so that position n holds the element
// it would occupy under full sorting by the given axis (in-place
// quickselect, as in a textbook nth-element).
func (t *Tree) selectNth(lo, hi, n, axis int) {
	hi--
	for lo < hi {
		p := t.partition(lo, hi, (lo+hi)/2, axis)
		if p == n {
			return
		}
		if n < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

func (t *Tree) partition(lo, hi, pivot, axis int) int {
	pv := coord(t.pts[t.idx[pivot]], axis)
	t.idx[pivot], t.idx[hi] = t.idx[hi], t.idx[pivot]
	i := lo
	for j := lo; j < hi; j++ {
		if coord(t.pts[t.idx[j]], axis) < pv {
			t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
			i++
		}
	}
	t.idx[i], t.idx[hi] = t.idx[hi], t.idx[i]
	return i
}

// Nearest returns the index of the point closest to q and the squared
// Euclidean distance to it. A non-finite query returns (-1, +Inf).
// Complexity: O(log n) expected.
func (t *Tree) Nearest(q r3.Vector) (best int, bestDist2 float64) {
	if !finite(q) {
		return -1, math.Inf(1)
	}
	best, bestDist2 = -1, math.Inf(1)
	t.nearest(q, 0, len(t.idx), 0, &best, &bestDist2)
	return best, bestDist2
}

func (t *Tree) nearest(q r3.Vector, lo, hi, depth int, best *int, bestDist2 *float64) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	p := t.pts[t.idx[mid]]
	if d2 := dist2(p, q); d2 < *bestDist2 {
		*bestDist2 = d2
		*best = t.idx[mid]
	}
	axis := depth % 3
	delta := coord(q, axis) - coord(p, axis)

	near, farLo, farHi := [2]int{lo, mid}, mid+1, hi
	if delta > 0 {
		near, farLo, farHi = [2]int{mid + 1, hi}, lo, mid
	}
	t.nearest(q, near[0], near[1], depth+1, best, bestDist2)
	// the far half can only matter when the splitting plane is closer
	// than the current best
	if delta*delta < *bestDist2 {
		t.nearest(q, farLo, farHi, depth+1, best, bestDist2)
	}
}

// WithinRadius returns the indices of all points with Euclidean distance
// ≤ r from q, in unspecified order. A non-finite query returns nil.
// Complexity: O(log n + k) expected for k results.
func (t *Tree) WithinRadius(q r3.Vector, r float64) []int {
	if !finite(q) || r < 0 {
		return nil
	}
	var out []int
	t.withinRadius(q, r, r*r, 0, len(t.idx), 0, &out)
	return out
}

func (t *Tree) withinRadius(q r3.Vector, r, r2 float64, lo, hi, depth int, out *[]int) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	p := t.pts[t.idx[mid]]
	if dist2(p, q) <= r2 {
		*out = append(*out, t.idx[mid])
	}
	axis := depth % 3
	delta := coord(q, axis) - coord(p, axis)

	if delta <= r {
		t.withinRadius(q, r, r2, lo, mid, depth+1, out)
	}
	if -delta <= r {
		t.withinRadius(q, r, r2, mid+1, hi, depth+1, out)
	}
}

func coord(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func dist2(a, b r3.Vector) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

func finite(v r3.Vector) bool {
	return !math.IsNaN(v.X+v.Y+v.Z) && !math.IsInf(v.X+v.Y+v.Z, 0)
}
