package grid

import (
	"fmt"

	"github.com/maviryk/sphergrid/greatcircle"
	"github.com/maviryk/sphergrid/sphere"
)

// Extend returns a copy of c padded with one extrapolated row per side when
// extendX is set and one column per side when extendY is set. Ghost lines
// continue the great circles through the two outermost interior lines at
// full spacing, so a destination point nearer to the ghost line than to any
// real line is provably outside the domain. With both flags false, c itself
// is returned.
//
// Extension needs a 2-D grid with at least two lines along each extended
// axis; 1-D input returns ErrVectorExtend.
// Complexity: O(Rows×Cols).
func Extend(c *Coords, extendX, extendY bool) (*Coords, error) {
	if !extendX && !extendY {
		return c, nil
	}
	if c.vector {
		return nil, ErrVectorExtend
	}
	if (extendX && c.shape.Rows < 2) || (extendY && c.shape.Cols < 2) {
		return nil, fmt.Errorf("%w: need two lines along each extended axis, have %s",
			ErrVectorExtend, c.shape)
	}

	out := c
	var err error
	if extendX {
		if out, err = extendRows(out); err != nil {
			return nil, err
		}
	}
	if extendY {
		if out, err = extendCols(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// extendRows pads one ghost row above and below: the top ghost extends the
// great circles from row 1 through row 0, the bottom ghost from row n-2
// through row n-1.
func extendRows(c *Coords) (*Coords, error) {
	sh := c.shape
	lon := make([]float64, (sh.Rows+2)*sh.Cols)
	lat := make([]float64, (sh.Rows+2)*sh.Cols)
	copy(lon[sh.Cols:], c.lon)
	copy(lat[sh.Cols:], c.lat)

	lon1, lat1 := c.row(1)
	lon0, lat0 := c.row(0)
	gLon, gLat, err := greatcircle.Extend(lon1, lat1, lon0, lat0, false)
	if err != nil {
		return nil, err
	}
	copy(lon[:sh.Cols], gLon)
	copy(lat[:sh.Cols], gLat)

	lonP, latP := c.row(sh.Rows - 2)
	lonL, latL := c.row(sh.Rows - 1)
	gLon, gLat, err = greatcircle.Extend(lonP, latP, lonL, latL, false)
	if err != nil {
		return nil, err
	}
	copy(lon[(sh.Rows+1)*sh.Cols:], gLon)
	copy(lat[(sh.Rows+1)*sh.Cols:], gLat)

	return &Coords{
		lon:   sphere.NormalizeLons(lon),
		lat:   lat,
		shape: Shape{Rows: sh.Rows + 2, Cols: sh.Cols},
	}, nil
}

// extendCols pads one ghost column left and right, after any row padding so
// the corners extrapolate from the ghost rows as well.
func extendCols(c *Coords) (*Coords, error) {
	sh := c.shape
	next := Shape{Rows: sh.Rows, Cols: sh.Cols + 2}
	lon := make([]float64, next.Size())
	lat := make([]float64, next.Size())
	for r := 0; r < sh.Rows; r++ {
		copy(lon[next.Flat(r, 1):], c.lon[sh.Flat(r, 0):sh.Flat(r, sh.Cols-1)+1])
		copy(lat[next.Flat(r, 1):], c.lat[sh.Flat(r, 0):sh.Flat(r, sh.Cols-1)+1])
	}

	lon1, lat1 := c.col(1)
	lon0, lat0 := c.col(0)
	gLon, gLat, err := greatcircle.Extend(lon1, lat1, lon0, lat0, false)
	if err != nil {
		return nil, err
	}
	for r := 0; r < sh.Rows; r++ {
		lon[next.Flat(r, 0)] = sphere.NormalizeLon(gLon[r])
		lat[next.Flat(r, 0)] = gLat[r]
	}

	lonP, latP := c.col(sh.Cols - 2)
	lonL, latL := c.col(sh.Cols - 1)
	gLon, gLat, err = greatcircle.Extend(lonP, latP, lonL, latL, false)
	if err != nil {
		return nil, err
	}
	for r := 0; r < sh.Rows; r++ {
		lon[next.Flat(r, next.Cols-1)] = sphere.NormalizeLon(gLon[r])
		lat[next.Flat(r, next.Cols-1)] = gLat[r]
	}

	return &Coords{lon: lon, lat: lat, shape: next}, nil
}
