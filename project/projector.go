package project

import (
	"context"
	"math"

	"github.com/golang/geo/r3"
	"github.com/owlpinetech/flatsphere"

	"github.com/maviryk/sphergrid/grid"
	"github.com/maviryk/sphergrid/greatcircle"
	"github.com/maviryk/sphergrid/kdtree"
)

// Projector is an immutable mapping from a source grid to a destination
// grid. Construction does the expensive work once; Transform applies
// the mapping to any number of data fields and is safe for concurrent
// use.
type Projector struct {
	opts     Options
	mode     mode
	srcShape grid.Shape
	dstShape grid.Shape

	// ind is the cached index mapping. Nearest mode: one entry per
	// destination cell holding a flat source index, -1 out of domain.
	// Average mode: one entry per source point holding a flat
	// destination index, -1 for non-finite source points.
	ind []int

	// Smoothing mode keeps the tree and the destination unit vectors
	// for radius queries at transform time.
	tree   *kdtree.Tree
	dstXYZ []r3.Vector
	radius float64

	borderLon, borderLat []float64
}

// New builds a projector from src onto dst. The mapping mode and its
// parameters are fixed by opts; see Options. The context bounds the
// parallel neighbour searches.
func New(ctx context.Context, src, dst *grid.Coords, opts Options) (*Projector, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if dst == nil {
		return nil, ErrNoDestination
	}
	if opts.Average && opts.SmoothRadiusKm > 0 {
		return nil, ErrAverageAndSmooth
	}
	if opts.SmoothRadiusKm < 0 {
		return nil, ErrSmoothRadius
	}
	if opts.MinHits < 1 {
		opts.MinHits = 1
	}

	p := &Projector{
		opts:     opts,
		srcShape: src.Shape(),
		dstShape: dst.Shape(),
	}

	var err error
	switch {
	case opts.SmoothRadiusKm > 0:
		p.mode = modeSmooth
		p.radius = opts.SmoothRadiusKm / greatcircle.EarthRadiusKm
		p.tree, err = kdtree.Build(src.XYZ())
		if err != nil {
			return nil, err
		}
		p.dstXYZ = dst.XYZ()
	case opts.Average:
		p.mode = modeAverage
		p.ind, err = buildReverse(ctx, src, dst, opts.Workers)
		if err != nil {
			return nil, err
		}
	default:
		p.mode = modeNearest
		p.ind, err = buildDirect(ctx, src, dst, opts.ExtendX, opts.ExtendY, opts.Workers)
		if err != nil {
			return nil, err
		}
	}

	if opts.ExtendX && opts.ExtendY && !src.IsVector() &&
		p.srcShape.Rows >= 2 && p.srcShape.Cols >= 2 {
		p.borderLon, p.borderLat, err = grid.BorderRing(src)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewProjected builds a projector from src onto a destination mesh
// sampled from a map projection over a geographic extent. See Mesh.
func NewProjected(ctx context.Context, src *grid.Coords, proj flatsphere.Projection,
	ext Extent, nx, ny int, opts Options) (*Projector, error) {

	dst, err := Mesh(proj, ext, nx, ny)
	if err != nil {
		return nil, err
	}
	return New(ctx, src, dst, opts)
}

// SourceShape returns the shape of the source grid.
func (p *Projector) SourceShape() grid.Shape { return p.srcShape }

// DestShape returns the shape of the destination grid.
func (p *Projector) DestShape() grid.Shape { return p.dstShape }

// Transform projects one data field onto the destination grid. In the
// averaging and smoothing modes the projector's Missing value doubles
// as the marker excluding source samples from the averages; use
// TransformWeighted to exclude a different marker.
func (p *Projector) Transform(ctx context.Context, data [][]float64) ([][]float64, error) {
	if p.mode == modeNearest {
		return p.nearest(data)
	}
	vals, _, err := p.averaged(ctx, data, nil, p.opts.Missing)
	return vals, err
}

// TransformWeighted projects one data field using per-sample weights.
// A nil weights field means unit weights. Source samples within 1e-3 of
// missingV are excluded from the averages. Only the averaging and
// smoothing modes support weights.
func (p *Projector) TransformWeighted(ctx context.Context,
	data, weights [][]float64, missingV float64) ([][]float64, error) {

	if p.mode == modeNearest {
		return nil, ErrWeightsNearest
	}
	vals, _, err := p.averaged(ctx, data, weights, missingV)
	return vals, err
}

// TransformAveraged is TransformWeighted returning, alongside the
// averaged field, the average weight per destination cell computed as
// sum(w^2)/sum(w). Projecting a quality index together with its data
// this way halves the cost of a second pass. Cells with no
// contributors get the Missing value and weight zero.
func (p *Projector) TransformAveraged(ctx context.Context,
	data, weights [][]float64, missingV float64) (vals, avgWeights [][]float64, err error) {

	if p.mode == modeNearest {
		return nil, nil, ErrWeightsNearest
	}
	return p.averaged(ctx, data, weights, missingV)
}

// Border returns the half-spacing outline of the source domain and the
// destination cells outside it. The polygon is nil unless extension was
// enabled on both axes at construction. The mask is nil in smoothing
// mode; in averaging mode it marks destination cells that no source
// point maps to.
func (p *Projector) Border() (lons, lats []float64, outside [][]bool) {
	switch p.mode {
	case modeNearest:
		flat := make([]bool, p.dstShape.Size())
		for i, ind := range p.ind {
			flat[i] = ind < 0
		}
		outside = unflattenBool(flat, p.dstShape)
	case modeAverage:
		flat := make([]bool, p.dstShape.Size())
		for i := range flat {
			flat[i] = true
		}
		for _, d := range p.ind {
			if d >= 0 {
				flat[d] = false
			}
		}
		outside = unflattenBool(flat, p.dstShape)
	}
	return p.borderLon, p.borderLat, outside
}

func (p *Projector) nearest(data [][]float64) ([][]float64, error) {
	flat, shape, err := flatten(data)
	if err != nil {
		return nil, err
	}
	if shape != p.srcShape {
		return nil, &ShapeError{Expected: p.srcShape, Actual: shape}
	}

	out := make([]float64, p.dstShape.Size())
	for i, ind := range p.ind {
		if ind >= 0 {
			out[i] = flat[ind]
		} else {
			out[i] = p.opts.Missing
		}
	}
	return unflatten(out, p.dstShape), nil
}

func (p *Projector) averaged(ctx context.Context,
	data, weights [][]float64, missingV float64) (vals, avgWeights [][]float64, err error) {

	flat, shape, err := flatten(data)
	if err != nil {
		return nil, nil, err
	}
	var wflat []float64
	if weights != nil {
		var wshape grid.Shape
		wflat, wshape, err = flatten(weights)
		if err != nil {
			return nil, nil, err
		}
		if wshape != shape {
			return nil, nil, &ShapeError{Expected: shape, Actual: wshape}
		}
	}

	n := p.dstShape.Size()
	acc := make([]float64, n)
	wsum := make([]float64, n)
	w2sum := make([]float64, n)
	hits := make([]int, n)

	add := func(dst, src int) {
		v := flat[src]
		if math.Abs(v-missingV) <= missingTol {
			return
		}
		w := 1.0
		if wflat != nil {
			w = wflat[src]
		}
		acc[dst] += w * v
		wsum[dst] += w
		w2sum[dst] += w * w
		hits[dst]++
	}

	switch p.mode {
	case modeAverage:
		// The reverse mapping is laid out over the source grid, so the
		// data shape must match it exactly.
		if shape != p.srcShape {
			return nil, nil, &ShapeError{Expected: p.srcShape, Actual: shape}
		}
		for src, dst := range p.ind {
			if dst >= 0 {
				add(dst, src)
			}
		}
	case modeSmooth:
		// Radius queries index the flattened source, so any shape with
		// the right total size works.
		if shape.Size() != p.tree.Len() {
			return nil, nil, &ShapeError{Expected: p.srcShape, Actual: shape}
		}
		hoods, err := p.tree.WithinRadiusBatch(ctx, p.dstXYZ, p.radius,
			kdtree.Options{Workers: p.opts.Workers})
		if err != nil {
			return nil, nil, err
		}
		for dst, hood := range hoods {
			for _, src := range hood {
				add(dst, src)
			}
		}
	}

	outV := make([]float64, n)
	outW := make([]float64, n)
	for d := 0; d < n; d++ {
		if wsum[d] > 0 && hits[d] >= p.opts.MinHits {
			outV[d] = acc[d] / wsum[d]
			outW[d] = w2sum[d] / wsum[d]
		} else {
			outV[d] = p.opts.Missing
		}
	}
	return unflatten(outV, p.dstShape), unflatten(outW, p.dstShape), nil
}

func flatten(a [][]float64) ([]float64, grid.Shape, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, grid.Shape{}, ErrEmptyData
	}
	sh := grid.Shape{Rows: len(a), Cols: len(a[0])}
	out := make([]float64, 0, sh.Size())
	for _, row := range a {
		if len(row) != sh.Cols {
			return nil, grid.Shape{}, ErrRaggedData
		}
		out = append(out, row...)
	}
	return out, sh, nil
}

func unflatten(flat []float64, sh grid.Shape) [][]float64 {
	out := make([][]float64, sh.Rows)
	for r := 0; r < sh.Rows; r++ {
		out[r] = flat[r*sh.Cols : (r+1)*sh.Cols : (r+1)*sh.Cols]
	}
	return out
}

func unflattenBool(flat []bool, sh grid.Shape) [][]bool {
	out := make([][]bool, sh.Rows)
	for r := 0; r < sh.Rows; r++ {
		out[r] = flat[r*sh.Cols : (r+1)*sh.Cols : (r+1)*sh.Cols]
	}
	return out
}
