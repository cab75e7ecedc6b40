package grid

import (
	"fmt"

	"github.com/dorbodwolf/landlab/geom"
)

// Status classifies a node for boundary-condition purposes.
type Status uint8

const (
	// Interior nodes carry a cell and exchange flux with their neighbors.
	Interior Status = iota
	// FixedValue boundary nodes hold a prescribed value.
	FixedValue
	// FixedGradient boundary nodes mirror a tracked interior node plus a
	// prescribed offset.
	FixedGradient
	// TracksCell boundary nodes mirror a tracked interior node exactly.
	TracksCell
	// Inactive nodes take no part in flux exchange.
	Inactive
)

// NoIndex marks the absence of a link, cell, face, or neighbor in any of the
// integer index arrays.
const NoIndex = -1

// Centering names the element family an array is sized for.
type Centering string

const (
	AtNode Centering = "node"
	AtCell Centering = "cell"
	AtLink Centering = "link"
	AtFace Centering = "face"
)

// Mesh is the canonical topology store for a two-dimensional grid. Builders
// fill the element arrays, then call FinalizeTopology exactly once; after
// that only node Status changes, via the boundary-condition methods.
//
// All elements are referenced by dense integer index into parallel slices.
type Mesh struct {
	// Element counts
	NumNodes int
	NumLinks int
	NumCells int
	NumFaces int

	// Node arrays, length NumNodes
	NodeX    []float64
	NodeY    []float64
	Status   []Status
	NodeCell []int // cell at each node, NoIndex for nodes without one

	// Link arrays, length NumLinks. Links are directed from-node -> to-node.
	LinkFromNode []int
	LinkToNode   []int
	LinkLength   []float64
	LinkFace     []int // face crossed by each link, NoIndex if none

	// Cell arrays, length NumCells
	CellNode []int // interior node owning each cell
	CellArea []float64

	// Face arrays, length NumFaces
	FaceWidth []float64

	// Axis metadata, index 0 = y, index 1 = x
	AxisName  [2]string
	AxisUnits [2]string

	// Derived active-element state, maintained by RebuildActiveElements
	ActiveLinks        []int // link IDs, ascending
	NumActiveLinks     int
	ActiveLinkFromNode []int
	ActiveLinkToNode   []int
	ActiveLinkLength   []float64
	ActiveCellNode     []int // node owning each active cell, ascending node order
	NumActiveCells     int

	// Fixed-width adjacency. Matrices have MaxNodeLinks rows of NumNodes
	// columns, padded with NoIndex. The full pair stores link IDs; the
	// active pair stores positions within ActiveLinks.
	MaxNodeLinks        int
	InlinkMatrix        [][]int
	OutlinkMatrix       [][]int
	NumInlinks          []int
	NumOutlinks         []int
	ActiveInlinkMatrix  [][]int
	ActiveOutlinkMatrix [][]int
	NumActiveInlinks    []int
	NumActiveOutlinks   []int

	// Tracked-boundary state, length NumNodes, allocated on first use.
	// A FixedGradient or TracksCell node n takes its value from
	// TracksNode[n]; FixedGradient adds BoundaryGradient[n] on top.
	TracksNode       []int
	BoundaryGradient []float64
}

// FinalizeTopology validates the element arrays, fills in link lengths where
// the builder left them empty, computes the fixed-width adjacency matrices,
// and derives the initial active-element state. Builders call it once after
// populating the Mesh.
func (m *Mesh) FinalizeTopology() error {
	if m.AxisName == [2]string{} {
		m.AxisName = [2]string{"y", "x"}
	}
	if m.AxisUnits == [2]string{} {
		m.AxisUnits = [2]string{"-", "-"}
	}
	if len(m.LinkLength) == 0 && m.NumLinks > 0 {
		m.LinkLength = geom.LinkLengths(m.NodeX, m.NodeY, m.LinkFromNode, m.LinkToNode)
	}
	if err := m.Verify(); err != nil {
		return err
	}
	m.setupLinkMatrices()
	m.RebuildActiveElements()
	return nil
}

// Verify checks internal consistency of the element arrays: slice lengths
// against the counts, index ranges, positive link lengths, and the
// interior-node/cell bijection.
func (m *Mesh) Verify() error {
	for name, got := range map[string]int{
		"node x coordinates": len(m.NodeX),
		"node y coordinates": len(m.NodeY),
		"node status":        len(m.Status),
		"node cells":         len(m.NodeCell),
	} {
		if got != m.NumNodes {
			return fmt.Errorf("%w: %s has length %d, want %d", ErrDimension, name, got, m.NumNodes)
		}
	}
	for name, got := range map[string]int{
		"link from-nodes": len(m.LinkFromNode),
		"link to-nodes":   len(m.LinkToNode),
		"link lengths":    len(m.LinkLength),
		"link faces":      len(m.LinkFace),
	} {
		if got != m.NumLinks {
			return fmt.Errorf("%w: %s has length %d, want %d", ErrDimension, name, got, m.NumLinks)
		}
	}
	if len(m.CellNode) != m.NumCells || len(m.CellArea) != m.NumCells {
		return fmt.Errorf("%w: cell arrays have lengths %d/%d, want %d",
			ErrDimension, len(m.CellNode), len(m.CellArea), m.NumCells)
	}
	if len(m.FaceWidth) != m.NumFaces {
		return fmt.Errorf("%w: face widths have length %d, want %d", ErrDimension, len(m.FaceWidth), m.NumFaces)
	}

	for l := 0; l < m.NumLinks; l++ {
		f, t := m.LinkFromNode[l], m.LinkToNode[l]
		if f < 0 || f >= m.NumNodes || t < 0 || t >= m.NumNodes {
			return fmt.Errorf("%w: link %d connects nodes %d and %d outside [0,%d)",
				ErrTopology, l, f, t, m.NumNodes)
		}
		if m.LinkLength[l] <= 0 {
			return fmt.Errorf("%w: link %d has non-positive length %g", ErrTopology, l, m.LinkLength[l])
		}
		if face := m.LinkFace[l]; face != NoIndex && (face < 0 || face >= m.NumFaces) {
			return fmt.Errorf("%w: link %d references face %d outside [0,%d)",
				ErrTopology, l, face, m.NumFaces)
		}
	}

	for c := 0; c < m.NumCells; c++ {
		n := m.CellNode[c]
		if n < 0 || n >= m.NumNodes {
			return fmt.Errorf("%w: cell %d owned by node %d outside [0,%d)", ErrTopology, c, n, m.NumNodes)
		}
		if m.NodeCell[n] != c {
			return fmt.Errorf("%w: cell %d claims node %d but node maps to cell %d",
				ErrTopology, c, n, m.NodeCell[n])
		}
		if m.CellArea[c] <= 0 {
			return fmt.Errorf("%w: cell %d has non-positive area %g", ErrTopology, c, m.CellArea[c])
		}
	}
	for n := 0; n < m.NumNodes; n++ {
		if c := m.NodeCell[n]; c != NoIndex && (c < 0 || c >= m.NumCells) {
			return fmt.Errorf("%w: node %d references cell %d outside [0,%d)", ErrTopology, n, c, m.NumCells)
		}
	}
	return nil
}

// Count returns the number of elements with the given centering. Arrays
// sized for links and cells cover the active subsets, matching what the
// differential operators consume and produce.
func (m *Mesh) Count(c Centering) (int, error) {
	switch c {
	case AtNode:
		return m.NumNodes, nil
	case AtCell:
		return m.NumActiveCells, nil
	case AtLink:
		return m.NumActiveLinks, nil
	case AtFace:
		return m.NumFaces, nil
	default:
		return 0, fmt.Errorf("%w: element centering %q", ErrConfiguration, string(c))
	}
}

// Zeros returns a zero-filled value array sized for the given centering.
func (m *Mesh) Zeros(c Centering) ([]float64, error) {
	n, err := m.Count(c)
	if err != nil {
		return nil, err
	}
	return make([]float64, n), nil
}

// Ones returns a one-filled value array sized for the given centering.
func (m *Mesh) Ones(c Centering) ([]float64, error) {
	v, err := m.Zeros(c)
	if err != nil {
		return nil, err
	}
	for i := range v {
		v[i] = 1
	}
	return v, nil
}

// Empty returns an uninitialized value array sized for the given centering.
// Callers that overwrite every element can use it in place of Zeros.
func (m *Mesh) Empty(c Centering) ([]float64, error) {
	return m.Zeros(c)
}

// NodeAxisCoords returns the node coordinates along one axis: 0 for y,
// 1 for x. The returned slice aliases the mesh's storage.
func (m *Mesh) NodeAxisCoords(axis int) ([]float64, error) {
	switch axis {
	case 0:
		return m.NodeY, nil
	case 1:
		return m.NodeX, nil
	default:
		return nil, fmt.Errorf("%w: coordinate axis %d", ErrConfiguration, axis)
	}
}

// Topology returns the mesh itself. It exists so grid variants embedding a
// Mesh expose their shared topology through the Grid interface.
func (m *Mesh) Topology() *Mesh { return m }

// InteriorNodes returns the IDs of all nodes with Interior status.
func (m *Mesh) InteriorNodes() []int {
	var ids []int
	for n, s := range m.Status {
		if s == Interior {
			ids = append(ids, n)
		}
	}
	return ids
}

// BoundaryNodes returns the IDs of all nodes with non-Interior status.
func (m *Mesh) BoundaryNodes() []int {
	var ids []int
	for n, s := range m.Status {
		if s != Interior {
			ids = append(ids, n)
		}
	}
	return ids
}
