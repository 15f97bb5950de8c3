package kdtree_test

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/maviryk/sphergrid/kdtree"
)

// randomSpherePoints returns n deterministic pseudo-random unit vectors.
func randomSpherePoints(n int, seed int64) []r3.Vector {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]r3.Vector, n)
	for i := range pts {
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		pts[i] = v.Normalize()
	}
	return pts
}

func bruteNearest(pts []r3.Vector, q r3.Vector) (int, float64) {
	best, bestD := -1, math.Inf(1)
	for i, p := range pts {
		if d := q.Sub(p).Norm2(); d < bestD {
			best, bestD = i, d
		}
	}
	return best, bestD
}

func bruteWithin(pts []r3.Vector, q r3.Vector, r float64) []int {
	var out []int
	for i, p := range pts {
		if q.Sub(p).Norm() <= r {
			out = append(out, i)
		}
	}
	return out
}

// TestBuild_Empty rejects an empty point set.
func TestBuild_Empty(t *testing.T) {
	_, err := kdtree.Build(nil)
	require.ErrorIs(t, err, kdtree.ErrNoPoints)
}

// TestNearest_MatchesBruteForce cross-checks tree queries against a linear
// scan on random point sets of several sizes.
func TestNearest_MatchesBruteForce(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 1000} {
		pts := randomSpherePoints(n, int64(n))
		tree, err := kdtree.Build(pts)
		require.NoError(t, err)
		require.Equal(t, n, tree.Len())

		qs := randomSpherePoints(200, int64(n)*7+1)
		for _, q := range qs {
			gotIdx, gotD := tree.Nearest(q)
			wantIdx, wantD := bruteNearest(pts, q)
			require.InDelta(t, wantD, gotD, 1e-12)
			// distinct indices are acceptable only on exact ties
			if gotIdx != wantIdx {
				require.InDelta(t, wantD, q.Sub(pts[gotIdx]).Norm2(), 1e-15)
			}
		}
	}
}

// TestWithinRadius_MatchesBruteForce cross-checks radius queries.
func TestWithinRadius_MatchesBruteForce(t *testing.T) {
	pts := randomSpherePoints(500, 42)
	tree, err := kdtree.Build(pts)
	require.NoError(t, err)

	qs := randomSpherePoints(50, 43)
	for _, r := range []float64{0, 0.05, 0.2, 1.0} {
		for _, q := range qs {
			got := tree.WithinRadius(q, r)
			want := bruteWithin(pts, q, r)
			sort.Ints(got)
			require.Equal(t, want, got, "radius %v", r)
		}
	}
}

// TestNearest_NonFinite resolves NaN queries to -1 / empty.
func TestNearest_NonFinite(t *testing.T) {
	tree, err := kdtree.Build(randomSpherePoints(10, 1))
	require.NoError(t, err)

	nanq := r3.Vector{X: math.NaN(), Y: 0, Z: 0}
	idx, d := tree.Nearest(nanq)
	require.Equal(t, -1, idx)
	require.True(t, math.IsInf(d, 1))
	require.Nil(t, tree.WithinRadius(nanq, 0.5))
}

// TestNearestBatch_MatchesSequential verifies batch output equals per-point
// queries regardless of worker count.
func TestNearestBatch_MatchesSequential(t *testing.T) {
	pts := randomSpherePoints(300, 7)
	tree, err := kdtree.Build(pts)
	require.NoError(t, err)
	qs := randomSpherePoints(777, 8)

	want := make([]int, len(qs))
	for i, q := range qs {
		want[i], _ = tree.Nearest(q)
	}
	for _, workers := range []int{1, 2, 5, 16} {
		got, err := tree.NearestBatch(context.Background(), qs, kdtree.Options{Workers: workers})
		require.NoError(t, err)
		require.Equal(t, want, got, "workers=%d", workers)
	}
}

// TestWithinRadiusBatch_MatchesSequential does the same for radius queries.
func TestWithinRadiusBatch_MatchesSequential(t *testing.T) {
	pts := randomSpherePoints(300, 9)
	tree, err := kdtree.Build(pts)
	require.NoError(t, err)
	qs := randomSpherePoints(333, 10)

	got, err := tree.WithinRadiusBatch(context.Background(), qs, 0.1, kdtree.DefaultOptions())
	require.NoError(t, err)
	for i, q := range qs {
		want := tree.WithinRadius(q, 0.1)
		sort.Ints(got[i])
		sort.Ints(want)
		require.Equal(t, want, got[i], "query %d", i)
	}
}

// TestBatch_Canceled aborts on a pre-canceled context.
func TestBatch_Canceled(t *testing.T) {
	tree, err := kdtree.Build(randomSpherePoints(50, 11))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tree.NearestBatch(ctx, randomSpherePoints(5000, 12), kdtree.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
