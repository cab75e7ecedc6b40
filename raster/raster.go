// Package raster builds a regular rows-by-columns lattice grid with uniform
// node spacing over the shared topology store of package grid.
//
// Nodes are numbered row-major from the bottom-left corner. Links are
// enumerated in two passes, all vertical links row-major and then all
// horizontal links row-major, so link IDs are reproducible from the shape
// alone. Cells belong to the interior nodes, numbered row-major; faces take
// their IDs from the default-open active-link ordering, so face ID equals
// position within that ordering until boundaries change.
package raster

import (
	"fmt"

	"github.com/dorbodwolf/landlab/grid"
)

// Grid is a regular lattice grid. It embeds the shared topology store and
// adds the shape descriptors and lattice-only queries.
type Grid struct {
	*grid.Mesh

	NumRows int
	NumCols int
	Spacing float64 // uniform node spacing in both directions
}

// NewGrid constructs a rows-by-cols lattice with the given node spacing.
// Both dimensions must be at least 3 so the grid has interior nodes. All
// perimeter nodes start as FixedValue boundaries.
func NewGrid(numRows, numCols int, spacing float64) (*Grid, error) {
	if numRows < 3 || numCols < 3 {
		return nil, fmt.Errorf("%w: raster grid needs at least 3x3 nodes, got %dx%d",
			grid.ErrDimension, numRows, numCols)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("%w: node spacing must be positive, got %g", grid.ErrDimension, spacing)
	}

	m := &grid.Mesh{
		NumNodes: numRows * numCols,
		NumLinks: numCols*(numRows-1) + numRows*(numCols-1),
		NumCells: (numRows - 2) * (numCols - 2),
	}
	g := &Grid{Mesh: m, NumRows: numRows, NumCols: numCols, Spacing: spacing}

	m.NodeX = make([]float64, m.NumNodes)
	m.NodeY = make([]float64, m.NumNodes)
	m.Status = make([]grid.Status, m.NumNodes)
	m.NodeCell = make([]int, m.NumNodes)
	for r := 0; r < numRows; r++ {
		for c := 0; c < numCols; c++ {
			n := r*numCols + c
			m.NodeX[n] = float64(c) * spacing
			m.NodeY[n] = float64(r) * spacing
			m.NodeCell[n] = grid.NoIndex
			if r == 0 || r == numRows-1 || c == 0 || c == numCols-1 {
				m.Status[n] = grid.FixedValue
			}
		}
	}

	m.CellNode = make([]int, m.NumCells)
	m.CellArea = make([]float64, m.NumCells)
	cell := 0
	for r := 1; r < numRows-1; r++ {
		for c := 1; c < numCols-1; c++ {
			n := r*numCols + c
			m.CellNode[cell] = n
			m.NodeCell[n] = cell
			m.CellArea[cell] = spacing * spacing
			cell++
		}
	}

	// Vertical links first, then horizontal, both row-major.
	m.LinkFromNode = make([]int, 0, m.NumLinks)
	m.LinkToNode = make([]int, 0, m.NumLinks)
	for r := 0; r < numRows-1; r++ {
		for c := 0; c < numCols; c++ {
			n := r*numCols + c
			m.LinkFromNode = append(m.LinkFromNode, n)
			m.LinkToNode = append(m.LinkToNode, n+numCols)
		}
	}
	for r := 0; r < numRows; r++ {
		for c := 0; c < numCols-1; c++ {
			n := r*numCols + c
			m.LinkFromNode = append(m.LinkFromNode, n)
			m.LinkToNode = append(m.LinkToNode, n+1)
		}
	}
	m.LinkLength = make([]float64, m.NumLinks)
	for l := range m.LinkLength {
		m.LinkLength[l] = spacing
	}

	// Faces exist for the links active under the default open boundary and
	// inherit that ordering as their IDs. On a uniform lattice every face
	// has width equal to the spacing.
	m.LinkFace = make([]int, m.NumLinks)
	for l := 0; l < m.NumLinks; l++ {
		m.LinkFace[l] = grid.NoIndex
		if m.LinkIsActive(l) {
			m.LinkFace[l] = m.NumFaces
			m.NumFaces++
		}
	}
	m.FaceWidth = make([]float64, m.NumFaces)
	for f := range m.FaceWidth {
		m.FaceWidth[f] = spacing
	}

	m.AxisName = [2]string{"y", "x"}
	m.AxisUnits = [2]string{"-", "-"}
	if err := m.FinalizeTopology(); err != nil {
		return nil, err
	}
	return g, nil
}

// XDimension returns the grid extent along x.
func (g *Grid) XDimension() float64 { return float64(g.NumCols-1) * g.Spacing }

// YDimension returns the grid extent along y.
func (g *Grid) YDimension() float64 { return float64(g.NumRows-1) * g.Spacing }
