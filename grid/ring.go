package grid

import (
	"github.com/maviryk/sphergrid/greatcircle"
)

// BorderRing returns the closed polygon outlining the grid domain. A ghost
// ring is placed at half the edge spacing outside the grid, then walked in
// a fixed order: left column bottom→top reversed, top row, right column,
// bottom row reversed, with the first point repeated to close the ring.
// Requires a 2-D grid of at least 2×2; 1-D input returns ErrVectorExtend.
// Complexity: O(Rows×Cols).
func BorderRing(c *Coords) (lons, lats []float64, err error) {
	if c.vector || c.shape.Rows < 2 || c.shape.Cols < 2 {
		return nil, nil, ErrVectorExtend
	}
	blon, blat, bsh, err := halfRing(c)
	if err != nil {
		return nil, nil, err
	}
	lons, lats = ringWalk(blon, blat, bsh)
	return lons, lats, nil
}

// halfRing builds (Rows+2)×(Cols+2) arrays whose outermost ring is the
// half-spacing great-circle extension of the grid edges. The interior is
// the grid itself; only the ring entries are consumed by ringWalk.
func halfRing(c *Coords) (lon, lat []float64, sh Shape, err error) {
	src := c.shape
	sh = Shape{Rows: src.Rows + 2, Cols: src.Cols + 2}
	lon = make([]float64, sh.Size())
	lat = make([]float64, sh.Size())
	for r := 0; r < src.Rows; r++ {
		for col := 0; col < src.Cols; col++ {
			lon[sh.Flat(r+1, col+1)] = c.Lon(r, col)
			lat[sh.Flat(r+1, col+1)] = c.Lat(r, col)
		}
	}

	// left and right ghost columns over the interior rows
	lon1, lat1 := c.col(1)
	lon0, lat0 := c.col(0)
	gLon, gLat, err := greatcircle.Extend(lon1, lat1, lon0, lat0, true)
	if err != nil {
		return nil, nil, Shape{}, err
	}
	for r := 0; r < src.Rows; r++ {
		lon[sh.Flat(r+1, 0)], lat[sh.Flat(r+1, 0)] = gLon[r], gLat[r]
	}
	lonP, latP := c.col(src.Cols - 2)
	lonL, latL := c.col(src.Cols - 1)
	gLon, gLat, err = greatcircle.Extend(lonP, latP, lonL, latL, true)
	if err != nil {
		return nil, nil, Shape{}, err
	}
	for r := 0; r < src.Rows; r++ {
		lon[sh.Flat(r+1, sh.Cols-1)], lat[sh.Flat(r+1, sh.Cols-1)] = gLon[r], gLat[r]
	}

	// top and bottom ghost rows across the full padded width, so the
	// corners extrapolate from the side ghosts
	top := func(srcRowA, srcRowB, dstRow int) error {
		lonA := lon[sh.Flat(srcRowA, 0) : sh.Flat(srcRowA, sh.Cols-1)+1]
		latA := lat[sh.Flat(srcRowA, 0) : sh.Flat(srcRowA, sh.Cols-1)+1]
		lonB := lon[sh.Flat(srcRowB, 0) : sh.Flat(srcRowB, sh.Cols-1)+1]
		latB := lat[sh.Flat(srcRowB, 0) : sh.Flat(srcRowB, sh.Cols-1)+1]
		gLon, gLat, err := greatcircle.Extend(lonA, latA, lonB, latB, true)
		if err != nil {
			return err
		}
		copy(lon[sh.Flat(dstRow, 0):sh.Flat(dstRow, sh.Cols-1)+1], gLon)
		copy(lat[sh.Flat(dstRow, 0):sh.Flat(dstRow, sh.Cols-1)+1], gLat)
		return nil
	}
	if err := top(2, 1, 0); err != nil {
		return nil, nil, Shape{}, err
	}
	if err := top(sh.Rows-3, sh.Rows-2, sh.Rows-1); err != nil {
		return nil, nil, Shape{}, err
	}
	return lon, lat, sh, nil
}

// ringWalk traverses the outermost ring of a padded array into an ordered
// closed polygon: reversed left column (interior rows), top row, right
// column (interior rows), reversed bottom row, then the starting point
// again.
func ringWalk(lon, lat []float64, sh Shape) (outLon, outLat []float64) {
	n := 2*(sh.Rows-2) + 2*sh.Cols + 1
	outLon = make([]float64, 0, n)
	outLat = make([]float64, 0, n)

	for r := sh.Rows - 2; r >= 1; r-- { // left, reversed
		outLon = append(outLon, lon[sh.Flat(r, 0)])
		outLat = append(outLat, lat[sh.Flat(r, 0)])
	}
	for col := 0; col < sh.Cols; col++ { // top
		outLon = append(outLon, lon[sh.Flat(0, col)])
		outLat = append(outLat, lat[sh.Flat(0, col)])
	}
	for r := 1; r <= sh.Rows-2; r++ { // right
		outLon = append(outLon, lon[sh.Flat(r, sh.Cols-1)])
		outLat = append(outLat, lat[sh.Flat(r, sh.Cols-1)])
	}
	for col := sh.Cols - 1; col >= 0; col-- { // bottom, reversed
		outLon = append(outLon, lon[sh.Flat(sh.Rows-1, col)])
		outLat = append(outLat, lat[sh.Flat(sh.Rows-1, col)])
	}
	outLon = append(outLon, outLon[0]) // close the polygon
	outLat = append(outLat, outLat[0])
	return outLon, outLat
}
