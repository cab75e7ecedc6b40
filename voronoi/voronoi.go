// Package voronoi builds an unstructured tessellation grid from an
// arbitrary two-dimensional point set, using a Delaunay/Voronoi dual:
// Voronoi regions become cells, Voronoi ridges become links, and ridges
// with two finite vertices become faces.
package voronoi

import (
	"fmt"

	"github.com/dorbodwolf/landlab/geom"
	"github.com/dorbodwolf/landlab/grid"
)

// Grid is a tessellation grid over an arbitrary point set.
type Grid struct {
	*grid.Mesh
}

// NewGridFromPoints constructs a tessellation grid with one node per input
// point. Points on the convex hull (including collinear points lying on a
// hull edge) become FixedValue boundary nodes; every other point becomes an
// interior node owning a Voronoi cell. Duplicate points are not supported.
func NewGridFromPoints(x, y []float64) (*Grid, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x coordinates and %d y coordinates", grid.ErrDimension, len(x), len(y))
	}
	pts := make([]geom.Point, len(x))
	for i := range pts {
		pts[i] = geom.Point{X: x[i], Y: y[i]}
	}

	hull, coplanar, err := geom.ConvexHull(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", grid.ErrTopology, err)
	}
	diagram, err := geom.NewDiagram(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", grid.ErrTopology, err)
	}

	m := &grid.Mesh{NumNodes: len(pts)}
	m.NodeX = append([]float64(nil), x...)
	m.NodeY = append([]float64(nil), y...)
	m.Status = make([]grid.Status, m.NumNodes)
	for _, n := range hull {
		m.Status[n] = grid.FixedValue
	}
	for _, n := range coplanar {
		m.Status[n] = grid.FixedValue
	}

	// Interior nodes take cell IDs in ascending node order. Every interior
	// node must own a bounded Voronoi region.
	m.NodeCell = make([]int, m.NumNodes)
	for n := range m.NodeCell {
		m.NodeCell[n] = grid.NoIndex
		if m.Status[n] != grid.Interior {
			continue
		}
		if !diagram.Closed[n] {
			return nil, fmt.Errorf("%w: interior node %d has an unbounded voronoi region", grid.ErrTopology, n)
		}
		m.NodeCell[n] = m.NumCells
		m.CellNode = append(m.CellNode, n)
		m.CellArea = append(m.CellArea, diagram.RegionArea(n))
		m.NumCells++
	}

	// One link per ridge. Ridges whose two Voronoi vertices are both
	// finite additionally carry a face whose width is the distance between
	// those vertices; link lengths come from the node coordinates instead,
	// so lengths and widths use consistent conventions.
	for _, ridge := range diagram.Ridges {
		m.LinkFromNode = append(m.LinkFromNode, ridge.Points[0])
		m.LinkToNode = append(m.LinkToNode, ridge.Points[1])
		face := grid.NoIndex
		if ridge.Vertices[0] != geom.InfiniteVertex && ridge.Vertices[1] != geom.InfiniteVertex {
			face = m.NumFaces
			m.FaceWidth = append(m.FaceWidth,
				geom.Distance(diagram.Vertices[ridge.Vertices[0]], diagram.Vertices[ridge.Vertices[1]]))
			m.NumFaces++
		}
		m.LinkFace = append(m.LinkFace, face)
		m.NumLinks++
	}

	if err := m.FinalizeTopology(); err != nil {
		return nil, err
	}
	return &Grid{Mesh: m}, nil
}
