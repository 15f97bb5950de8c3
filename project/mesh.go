package project

import (
	"math"

	"github.com/owlpinetech/flatsphere"

	"github.com/maviryk/sphergrid/grid"
)

// Extent is a geographic bounding box in degrees.
type Extent struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

func (e Extent) valid() bool {
	return e.LonMin < e.LonMax && e.LatMin < e.LatMax &&
		e.LonMin >= -180 && e.LonMax <= 180 &&
		e.LatMin >= -90 && e.LatMax <= 90
}

// Mesh samples a destination grid from a map projection over a
// geographic extent. The extent corners are projected onto the plane,
// their bounding box is sampled on a regular ny-by-nx raster, and each
// raster pixel is inverted back to lon/lat. Rows scan latitude from
// north to south and columns scan longitude from west to east, the
// layout image renderers expect.
//
// Pixels whose inverse projection is undefined (for instance corners
// of an elliptical projection frame) come back non-finite and are
// skipped by the nearest-neighbour search.
func Mesh(p flatsphere.Projection, ext Extent, nx, ny int) (*grid.Coords, error) {
	if !ext.valid() {
		return nil, ErrBadExtent
	}
	if nx < 2 || ny < 2 {
		return nil, ErrBadResolution
	}

	// Planar bounding box of the four extent corners.
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, lat := range []float64{ext.LatMin, ext.LatMax} {
		for _, lon := range []float64{ext.LonMin, ext.LonMax} {
			x, y := p.Project(lat*math.Pi/180, lon*math.Pi/180)
			xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
			yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
		}
	}

	lon := make([][]float64, ny)
	lat := make([][]float64, ny)
	for r := 0; r < ny; r++ {
		lon[r] = make([]float64, nx)
		lat[r] = make([]float64, nx)
		y := yMax - float64(r)*(yMax-yMin)/float64(ny-1)
		for c := 0; c < nx; c++ {
			x := xMin + float64(c)*(xMax-xMin)/float64(nx-1)
			la, lo := p.Inverse(x, y)
			lon[r][c] = lo * 180 / math.Pi
			lat[r][c] = la * 180 / math.Pi
		}
	}
	return grid.NewCoords(lon, lat)
}
