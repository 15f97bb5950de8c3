package project

import (
	"context"

	"github.com/maviryk/sphergrid/grid"
	"github.com/maviryk/sphergrid/kdtree"
)

// buildDirect maps every destination cell to its nearest source point.
func buildDirect(ctx context.Context, src, dst *grid.Coords,
	extendX, extendY bool, workers int) ([]int, error) {
	return buildMapping(ctx, src, dst, extendX, extendY, workers)
}

// buildReverse maps every source point to its nearest destination cell.
// The reverse mapping never extends the destination domain: a source
// point past the destination edge still contributes to the edge cell.
func buildReverse(ctx context.Context, src, dst *grid.Coords,
	workers int) ([]int, error) {
	return buildMapping(ctx, dst, src, false, false, workers)
}

// buildMapping computes, for every point of the to grid, the flat index
// of its nearest from point. The index is -1 where the to point is
// non-finite, or where the nearest neighbour lies on the ghost ring of
// an extended from domain.
func buildMapping(ctx context.Context, from, to *grid.Coords,
	extendX, extendY bool, workers int) ([]int, error) {

	ext := from
	if extendX || extendY {
		var err error
		ext, err = grid.Extend(from, extendX, extendY)
		if err != nil {
			return nil, err
		}
	}

	tree, err := kdtree.Build(ext.XYZ())
	if err != nil {
		return nil, err
	}
	inds, err := tree.NearestBatch(ctx, to.XYZ(), kdtree.Options{Workers: workers})
	if err != nil {
		return nil, err
	}

	extShape := ext.Shape()
	fromShape := from.Shape()
	for i, ind := range inds {
		if ind < 0 {
			continue
		}
		row, col := extShape.RowCol(ind)
		// A nearest neighbour on the ghost ring means the query point
		// sits beyond the edge of the real domain.
		if extendX && (row == 0 || row == extShape.Rows-1) {
			inds[i] = -1
			continue
		}
		if extendY && (col == 0 || col == extShape.Cols-1) {
			inds[i] = -1
			continue
		}
		if extendX {
			row--
		}
		if extendY {
			col--
		}
		inds[i] = fromShape.Flat(row, col)
	}
	return inds, nil
}
