package raster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dorbodwolf/landlab/grid"
)

// BottomEdgeNodeIDs returns the node IDs of the bottom row, left to right,
// corners included.
func (g *Grid) BottomEdgeNodeIDs() []int {
	ids := make([]int, g.NumCols)
	for c := range ids {
		ids[c] = c
	}
	return ids
}

// TopEdgeNodeIDs returns the node IDs of the top row, left to right,
// corners included.
func (g *Grid) TopEdgeNodeIDs() []int {
	ids := make([]int, g.NumCols)
	base := (g.NumRows - 1) * g.NumCols
	for c := range ids {
		ids[c] = base + c
	}
	return ids
}

// LeftEdgeNodeIDs returns the node IDs of the left column, bottom to top,
// corners included.
func (g *Grid) LeftEdgeNodeIDs() []int {
	ids := make([]int, g.NumRows)
	for r := range ids {
		ids[r] = r * g.NumCols
	}
	return ids
}

// RightEdgeNodeIDs returns the node IDs of the right column, bottom to top,
// corners included.
func (g *Grid) RightEdgeNodeIDs() []int {
	ids := make([]int, g.NumRows)
	for r := range ids {
		ids[r] = (r+1)*g.NumCols - 1
	}
	return ids
}

// Neighbors returns node n's lattice neighbors in the order right, top,
// left, bottom, with grid.NoIndex where the neighbor would fall off the
// grid.
func (g *Grid) Neighbors(n int) [4]int {
	r, c := n/g.NumCols, n%g.NumCols
	nb := [4]int{grid.NoIndex, grid.NoIndex, grid.NoIndex, grid.NoIndex}
	if c < g.NumCols-1 {
		nb[0] = n + 1
	}
	if r < g.NumRows-1 {
		nb[1] = n + g.NumCols
	}
	if c > 0 {
		nb[2] = n - 1
	}
	if r > 0 {
		nb[3] = n - g.NumCols
	}
	return nb
}

// Diagonals returns node n's diagonal neighbors in the order top-right,
// top-left, bottom-left, bottom-right, with grid.NoIndex where the neighbor
// would fall off the grid.
func (g *Grid) Diagonals(n int) [4]int {
	r, c := n/g.NumCols, n%g.NumCols
	d := [4]int{grid.NoIndex, grid.NoIndex, grid.NoIndex, grid.NoIndex}
	if r < g.NumRows-1 && c < g.NumCols-1 {
		d[0] = n + g.NumCols + 1
	}
	if r < g.NumRows-1 && c > 0 {
		d[1] = n + g.NumCols - 1
	}
	if r > 0 && c > 0 {
		d[2] = n - g.NumCols - 1
	}
	if r > 0 && c < g.NumCols-1 {
		d[3] = n - g.NumCols + 1
	}
	return d
}

// HasBoundaryNeighbor reports whether any of node n's eight neighbors is a
// boundary node or lies off the grid.
func (g *Grid) HasBoundaryNeighbor(n int) bool {
	for _, nb := range g.Neighbors(n) {
		if nb == grid.NoIndex || g.Status[nb] != grid.Interior {
			return true
		}
	}
	for _, nb := range g.Diagonals(n) {
		if nb == grid.NoIndex || g.Status[nb] != grid.Interior {
			return true
		}
	}
	return false
}

// GridCoordsToNodeID converts a (row, column) pair to a node ID.
func (g *Grid) GridCoordsToNodeID(row, col int) (int, error) {
	if row < 0 || row >= g.NumRows || col < 0 || col >= g.NumCols {
		return 0, fmt.Errorf("%w: grid coordinates (%d,%d) outside %dx%d",
			grid.ErrDimension, row, col, g.NumRows, g.NumCols)
	}
	return row*g.NumCols + col, nil
}

// NodesAroundPoint returns the four nodes at the corners of the lattice
// square containing point (x, y), in the order bottom-left, top-left,
// top-right, bottom-right.
func (g *Grid) NodesAroundPoint(x, y float64) ([4]int, error) {
	col := int(math.Floor(x / g.Spacing))
	row := int(math.Floor(y / g.Spacing))
	if row < 0 || row >= g.NumRows-1 || col < 0 || col >= g.NumCols-1 {
		return [4]int{}, fmt.Errorf("%w: point (%g,%g) outside the grid", grid.ErrDimension, x, y)
	}
	bl := row*g.NumCols + col
	return [4]int{bl, bl + g.NumCols, bl + g.NumCols + 1, bl + 1}, nil
}

// NodeVectorToRaster reshapes a node-centered value vector into a
// rows-by-columns matrix. With flip true the bottom grid row lands in the
// last matrix row, matching the usual top-down display orientation.
func (g *Grid) NodeVectorToRaster(v []float64, flip bool) (*mat.Dense, error) {
	if len(v) != g.NumNodes {
		return nil, fmt.Errorf("%w: node vector has length %d, want %d", grid.ErrDimension, len(v), g.NumNodes)
	}
	return reshape(v, g.NumRows, g.NumCols, flip), nil
}

// CellVectorToRaster reshapes a cell-centered value vector into an
// interior (rows-2)-by-(columns-2) matrix, optionally vertically flipped.
// The vector covers the full cell set, not the active subset.
func (g *Grid) CellVectorToRaster(v []float64, flip bool) (*mat.Dense, error) {
	if len(v) != g.NumCells {
		return nil, fmt.Errorf("%w: cell vector has length %d, want %d", grid.ErrDimension, len(v), g.NumCells)
	}
	return reshape(v, g.NumRows-2, g.NumCols-2, flip), nil
}

func reshape(v []float64, rows, cols int, flip bool) *mat.Dense {
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		src := r
		if flip {
			src = rows - 1 - r
		}
		out.SetRow(r, v[src*cols:(src+1)*cols])
	}
	return out
}

// MaxGradientAcrossNode returns the steepest downhill slope from node n to
// any of its eight neighbors (positive when the neighbor sits lower) and
// the neighbor node in that direction, or grid.NoIndex when every neighbor
// lies off the grid. Diagonal distances are spacing times sqrt(2).
func (g *Grid) MaxGradientAcrossNode(u []float64, n int) (float64, int, error) {
	if len(u) != g.NumNodes {
		return 0, 0, fmt.Errorf("%w: node values have length %d, want %d", grid.ErrDimension, len(u), g.NumNodes)
	}
	if n < 0 || n >= g.NumNodes {
		return 0, 0, fmt.Errorf("%w: node id %d outside [0,%d)", grid.ErrDimension, n, g.NumNodes)
	}
	best := math.Inf(-1)
	at := grid.NoIndex
	diag := g.Spacing * math.Sqrt2
	for _, nb := range g.Neighbors(n) {
		if nb == grid.NoIndex {
			continue
		}
		if s := (u[n] - u[nb]) / g.Spacing; s > best {
			best, at = s, nb
		}
	}
	for _, nb := range g.Diagonals(n) {
		if nb == grid.NoIndex {
			continue
		}
		if s := (u[n] - u[nb]) / diag; s > best {
			best, at = s, nb
		}
	}
	if at == grid.NoIndex {
		return 0, grid.NoIndex, nil
	}
	return best, at, nil
}

// NodeInDirectionOfMaxSlope returns the neighbor node receiving node n's
// steepest-descent flow, or grid.NoIndex if no neighbor sits lower.
func (g *Grid) NodeInDirectionOfMaxSlope(u []float64, n int) (int, error) {
	slope, at, err := g.MaxGradientAcrossNode(u, n)
	if err != nil {
		return 0, err
	}
	if at == grid.NoIndex || slope <= 0 {
		return grid.NoIndex, nil
	}
	return at, nil
}
