package grid

import (
	"github.com/golang/geo/r3"

	"github.com/maviryk/sphergrid/sphere"
)

// Coords is an immutable pair of lon/lat arrays sharing one shape.
// Longitudes are normalized to [-180, 180) at construction. The flat
// storage is row-major: index = row*Cols + col.
type Coords struct {
	lon, lat []float64
	shape    Shape
	vector   bool // built from 1-D input; extension is undefined
}

// NewCoords builds a 2-D coordinate grid from rectangular lon/lat arrays of
// identical shape. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrShapeMismatch.
// Complexity: O(Rows×Cols).
func NewCoords(lon, lat [][]float64) (*Coords, error) {
	flatLon, shLon, err := flatten(lon)
	if err != nil {
		return nil, err
	}
	flatLat, shLat, err := flatten(lat)
	if err != nil {
		return nil, err
	}
	if shLon != shLat {
		return nil, ErrShapeMismatch
	}
	return &Coords{lon: sphere.NormalizeLons(flatLon), lat: flatLat, shape: shLon}, nil
}

// NewCoordsVector builds a 1-D point list (shape n×1) from paired slices.
// Returns ErrEmptyGrid or ErrShapeMismatch.
// Complexity: O(n).
func NewCoordsVector(lon, lat []float64) (*Coords, error) {
	if len(lon) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(lon) != len(lat) {
		return nil, ErrShapeMismatch
	}
	latCopy := make([]float64, len(lat))
	copy(latCopy, lat)
	return &Coords{
		lon:    sphere.NormalizeLons(lon),
		lat:    latCopy,
		shape:  Shape{Rows: len(lon), Cols: 1},
		vector: true,
	}, nil
}

// Shape returns the grid shape.
func (c *Coords) Shape() Shape { return c.shape }

// IsVector reports whether the grid was built from 1-D input.
func (c *Coords) IsVector() bool { return c.vector }

// Lon returns the flat longitude at (row, col).
func (c *Coords) Lon(row, col int) float64 { return c.lon[c.shape.Flat(row, col)] }

// Lat returns the flat latitude at (row, col).
func (c *Coords) Lat(row, col int) float64 { return c.lat[c.shape.Flat(row, col)] }

// XYZ converts the whole grid to unit-sphere vectors in flat order.
// Complexity: O(n).
func (c *Coords) XYZ() []r3.Vector {
	return sphere.FromLonLatSlice(c.lon, c.lat)
}

// row returns the lon and lat slices of one grid row (views, not copies).
func (c *Coords) row(r int) (lon, lat []float64) {
	lo, hi := r*c.shape.Cols, (r+1)*c.shape.Cols
	return c.lon[lo:hi], c.lat[lo:hi]
}

// col copies one grid column into fresh slices.
func (c *Coords) col(col int) (lon, lat []float64) {
	lon = make([]float64, c.shape.Rows)
	lat = make([]float64, c.shape.Rows)
	for r := 0; r < c.shape.Rows; r++ {
		lon[r] = c.Lon(r, col)
		lat[r] = c.Lat(r, col)
	}
	return lon, lat
}

// flatten validates a rectangular 2-D array and copies it row-major.
func flatten(a [][]float64) ([]float64, Shape, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, Shape{}, ErrEmptyGrid
	}
	cols := len(a[0])
	flat := make([]float64, 0, len(a)*cols)
	for _, row := range a {
		if len(row) != cols {
			return nil, Shape{}, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	return flat, Shape{Rows: len(a), Cols: cols}, nil
}
