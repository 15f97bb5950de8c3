package kdtree_test

import (
	"context"
	"testing"

	"github.com/maviryk/sphergrid/kdtree"
)

func BenchmarkBuild_100k(b *testing.B) {
	pts := randomSpherePoints(100_000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kdtree.Build(pts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestBatch_100k(b *testing.B) {
	pts := randomSpherePoints(100_000, 1)
	tree, err := kdtree.Build(pts)
	if err != nil {
		b.Fatal(err)
	}
	qs := randomSpherePoints(10_000, 2)
	opts := kdtree.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.NearestBatch(context.Background(), qs, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWithinRadiusBatch(b *testing.B) {
	pts := randomSpherePoints(50_000, 3)
	tree, err := kdtree.Build(pts)
	if err != nil {
		b.Fatal(err)
	}
	qs := randomSpherePoints(1_000, 4)
	opts := kdtree.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.WithinRadiusBatch(context.Background(), qs, 0.05, opts); err != nil {
			b.Fatal(err)
		}
	}
}
