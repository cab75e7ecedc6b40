package voronoi

import (
	"fmt"
	"math"

	"github.com/dorbodwolf/landlab/grid"
)

// MakeHexPoints generates a staggered triangular lattice: rows of points
// spaced dx apart horizontally and dx*sqrt(3)/2 vertically, with the row
// length growing by one point per row up to the middle row and shrinking
// thereafter, each longer row shifted half a spacing left so the lattice
// stays centered. Three rows with a base of two give seven points.
func MakeHexPoints(numRows, baseNumCols int, dx float64) (x, y []float64) {
	dxv := dx * math.Sqrt(3) / 2
	middleRow := numRows / 2
	extraCols := 0
	xshift := 0.0
	for r := 0; r < numRows; r++ {
		for c := 0; c < baseNumCols+extraCols; c++ {
			x = append(x, float64(c)*dx+xshift)
			y = append(y, float64(r)*dxv)
		}
		if r < middleRow {
			extraCols++
		} else {
			extraCols--
		}
		xshift = -dx / 2 * float64(extraCols)
	}
	return x, y
}

// NewHexGrid builds a hexagonal-lattice tessellation grid by feeding
// MakeHexPoints through the general point-set builder. The hexagonal case
// is a point-generation strategy, not a separate topology algorithm.
func NewHexGrid(numRows, baseNumCols int, dx float64) (*Grid, error) {
	if numRows < 1 || baseNumCols < 2 {
		return nil, fmt.Errorf("%w: hex lattice needs at least 1 row and 2 base columns, got %dx%d",
			grid.ErrDimension, numRows, baseNumCols)
	}
	if dx <= 0 {
		return nil, fmt.Errorf("%w: node spacing must be positive, got %g", grid.ErrDimension, dx)
	}
	x, y := MakeHexPoints(numRows, baseNumCols, dx)
	return NewGridFromPoints(x, y)
}
