package grid

import "testing"

// newLatticeMesh hand-builds a rows-by-cols unit lattice directly on the
// topology store: vertical links first then horizontal, both row-major,
// cells at interior nodes, faces in default active-link order. It mirrors
// what the raster builder produces without depending on it, so the grid
// package is tested against an independent construction.
func newLatticeMesh(t *testing.T, rows, cols int) *Mesh {
	t.Helper()
	m := &Mesh{
		NumNodes: rows * cols,
		NumLinks: cols*(rows-1) + rows*(cols-1),
		NumCells: (rows - 2) * (cols - 2),
	}
	m.NodeX = make([]float64, m.NumNodes)
	m.NodeY = make([]float64, m.NumNodes)
	m.Status = make([]Status, m.NumNodes)
	m.NodeCell = make([]int, m.NumNodes)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := r*cols + c
			m.NodeX[n] = float64(c)
			m.NodeY[n] = float64(r)
			m.NodeCell[n] = NoIndex
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				m.Status[n] = FixedValue
			}
		}
	}
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			n := r*cols + c
			m.NodeCell[n] = len(m.CellNode)
			m.CellNode = append(m.CellNode, n)
			m.CellArea = append(m.CellArea, 1)
		}
	}
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			m.LinkFromNode = append(m.LinkFromNode, r*cols+c)
			m.LinkToNode = append(m.LinkToNode, (r+1)*cols+c)
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			m.LinkFromNode = append(m.LinkFromNode, r*cols+c)
			m.LinkToNode = append(m.LinkToNode, r*cols+c+1)
		}
	}
	m.LinkLength = make([]float64, m.NumLinks)
	m.LinkFace = make([]int, m.NumLinks)
	for l := 0; l < m.NumLinks; l++ {
		m.LinkLength[l] = 1
		m.LinkFace[l] = NoIndex
		if m.LinkIsActive(l) {
			m.LinkFace[l] = m.NumFaces
			m.NumFaces++
		}
	}
	m.FaceWidth = make([]float64, m.NumFaces)
	for f := range m.FaceWidth {
		m.FaceWidth[f] = 1
	}
	if err := m.FinalizeTopology(); err != nil {
		t.Fatalf("lattice mesh setup failed: %v", err)
	}
	return m
}

// activeLinksByLoop is the per-link formulation of the activation rule.
func activeLinksByLoop(m *Mesh) []int {
	var active []int
	for l := 0; l < m.NumLinks; l++ {
		f := m.Status[m.LinkFromNode[l]]
		to := m.Status[m.LinkToNode[l]]
		if (f == Interior && to != Inactive) || (to == Interior && f != Inactive) {
			active = append(active, l)
		}
	}
	return active
}

// activeLinksByArrays is the whole-array formulation: build boolean vectors
// for each endpoint condition, combine them, then collect set positions.
func activeLinksByArrays(m *Mesh) []int {
	fromInterior := make([]bool, m.NumLinks)
	fromOK := make([]bool, m.NumLinks)
	toInterior := make([]bool, m.NumLinks)
	toOK := make([]bool, m.NumLinks)
	for l := 0; l < m.NumLinks; l++ {
		fromInterior[l] = m.Status[m.LinkFromNode[l]] == Interior
		fromOK[l] = m.Status[m.LinkFromNode[l]] != Inactive
		toInterior[l] = m.Status[m.LinkToNode[l]] == Interior
		toOK[l] = m.Status[m.LinkToNode[l]] != Inactive
	}
	var active []int
	for l := 0; l < m.NumLinks; l++ {
		if (fromInterior[l] && toOK[l]) || (toInterior[l] && fromOK[l]) {
			active = append(active, l)
		}
	}
	return active
}

// slowGradients is the loop reference for GradientsAtActiveLinks.
func slowGradients(m *Mesh, values []float64) []float64 {
	out := make([]float64, m.NumActiveLinks)
	for a, l := range m.ActiveLinks {
		out[a] = (values[m.LinkToNode[l]] - values[m.LinkFromNode[l]]) / m.LinkLength[l]
	}
	return out
}

// slowDivergence is the explicit per-link accumulation reference for
// FluxDivergenceAtNodes: no matrices, no phantom slot.
func slowDivergence(m *Mesh, flux []float64) []float64 {
	net := make([]float64, m.NumNodes)
	for a, l := range m.ActiveLinks {
		total := flux[a] * m.FaceWidth[m.LinkFace[l]]
		net[m.LinkFromNode[l]] += total
		net[m.LinkToNode[l]] -= total
	}
	out := make([]float64, m.NumNodes)
	for n := 0; n < m.NumNodes; n++ {
		if c := m.NodeCell[n]; c != NoIndex {
			out[n] = net[n] / m.CellArea[c]
		}
	}
	return out
}
