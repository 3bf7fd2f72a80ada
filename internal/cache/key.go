package cache

import (
	"errors"
	"fmt"
	"math"
)

// ErrCoordinateOutOfRange is returned when a latitude or longitude falls
// outside the valid range. A bad coordinate must never be quantized into a
// key, or it would pollute the shared cell map.
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Coordinate is a geographic point in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// GridCellKey identifies one forecast grid cell: each component is the
// coordinate floored to the nearest multiple of the cell size. Two
// coordinates share a key iff they fall in the same cell. Comparison is
// exact; both sides of every comparison are produced by CellKeyFor, so no
// epsilon is needed.
type GridCellKey struct {
	Lat float64
	Lng float64
}

func (k GridCellKey) String() string {
	return fmt.Sprintf("(%g, %g)", k.Lat, k.Lng)
}

// CellKeyFor quantizes coord onto the forecast model grid.
//
// The floor must round toward negative infinity so that western and
// southern hemispheres bucket correctly: longitude -122.1817 at a 0.5
// cell size belongs to -122.5, not -122.0.
func CellKeyFor(coord Coordinate, cellSize float64) (GridCellKey, error) {
	if coord.Latitude < -90 || coord.Latitude > 90 {
		return GridCellKey{}, fmt.Errorf("%w: latitude %v", ErrCoordinateOutOfRange, coord.Latitude)
	}
	if coord.Longitude < -180 || coord.Longitude > 180 {
		return GridCellKey{}, fmt.Errorf("%w: longitude %v", ErrCoordinateOutOfRange, coord.Longitude)
	}
	return GridCellKey{
		Lat: quantize(coord.Latitude, cellSize),
		Lng: quantize(coord.Longitude, cellSize),
	}, nil
}

func quantize(v, size float64) float64 {
	return math.Floor(v/size) * size
}
