package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// GradientsAtActiveLinks computes, for every active link, the gradient of
// the node-centered values along the link: (values[to] - values[from]) /
// link length. out may be nil, in which case a fresh slice of active-link
// length is allocated; a supplied out must have exactly that length.
func (m *Mesh) GradientsAtActiveLinks(values, out []float64) ([]float64, error) {
	if len(values) != m.NumNodes {
		return nil, fmt.Errorf("%w: node values have length %d, want %d", ErrDimension, len(values), m.NumNodes)
	}
	out, err := m.activeLinkBuffer(out)
	if err != nil {
		return nil, err
	}
	for a := range out {
		out[a] = values[m.ActiveLinkToNode[a]] - values[m.ActiveLinkFromNode[a]]
	}
	floats.Div(out, m.ActiveLinkLength)
	return out, nil
}

// FluxDivergenceAtNodes computes the net outward flux per unit cell area at
// every node, given one flux value per active link (positive in the
// from-node to to-node direction). Nodes without a cell report zero.
//
// The accumulation gathers through the active inlink/outlink matrices: the
// face-scaled fluxes sit in a buffer with one extra leading slot that always
// holds zero, so the NoIndex sentinel (gather index NoIndex+1 = 0) lands on
// that slot and contributes nothing, keeping the per-node loop a fixed
// number of branch-free reads.
func (m *Mesh) FluxDivergenceAtNodes(activeLinkFlux, out []float64) ([]float64, error) {
	if len(activeLinkFlux) != m.NumActiveLinks {
		return nil, fmt.Errorf("%w: active-link flux has length %d, want %d",
			ErrDimension, len(activeLinkFlux), m.NumActiveLinks)
	}
	if out == nil {
		out = make([]float64, m.NumNodes)
	} else if len(out) != m.NumNodes {
		return nil, fmt.Errorf("%w: output buffer has length %d, want %d", ErrDimension, len(out), m.NumNodes)
	}

	scaled := make([]float64, m.NumActiveLinks+1)
	for a, l := range m.ActiveLinks {
		face := m.LinkFace[l]
		if face == NoIndex {
			continue
		}
		scaled[a+1] = activeLinkFlux[a] * m.FaceWidth[face]
	}

	for n := 0; n < m.NumNodes; n++ {
		c := m.NodeCell[n]
		if c == NoIndex {
			out[n] = 0
			continue
		}
		var net float64
		for r := 0; r < m.MaxNodeLinks; r++ {
			net += scaled[m.ActiveOutlinkMatrix[r][n]+1]
			net -= scaled[m.ActiveInlinkMatrix[r][n]+1]
		}
		out[n] = net / m.CellArea[c]
	}
	return out, nil
}

// FluxDivergenceAtActiveCells is FluxDivergenceAtNodes restricted to the
// nodes that own an active cell, in active-cell order.
func (m *Mesh) FluxDivergenceAtActiveCells(activeLinkFlux, out []float64) ([]float64, error) {
	if out == nil {
		out = make([]float64, m.NumActiveCells)
	} else if len(out) != m.NumActiveCells {
		return nil, fmt.Errorf("%w: output buffer has length %d, want %d", ErrDimension, len(out), m.NumActiveCells)
	}
	atNodes, err := m.FluxDivergenceAtNodes(activeLinkFlux, nil)
	if err != nil {
		return nil, err
	}
	for i, n := range m.ActiveCellNode {
		out[i] = atNodes[n]
	}
	return out, nil
}

// ActiveLinkConnectingNodePair returns the position within ActiveLinks of
// the active link directed from node a to node b, or NoIndex if no such
// link exists.
func (m *Mesh) ActiveLinkConnectingNodePair(a, b int) int {
	for i := range m.ActiveLinkFromNode {
		if m.ActiveLinkFromNode[i] == a && m.ActiveLinkToNode[i] == b {
			return i
		}
	}
	return NoIndex
}

// MinActiveLinkLength returns the length of the shortest active link. Used
// by explicit-timestep models to bound the stable step size.
func (m *Mesh) MinActiveLinkLength() float64 {
	if m.NumActiveLinks == 0 {
		return 0
	}
	return floats.Min(m.ActiveLinkLength)
}

// ActiveLinkMax returns, per active link, the larger of the node values at
// its two endpoints.
func (m *Mesh) ActiveLinkMax(nodeValues []float64) ([]float64, error) {
	if len(nodeValues) != m.NumNodes {
		return nil, fmt.Errorf("%w: node values have length %d, want %d",
			ErrDimension, len(nodeValues), m.NumNodes)
	}
	out := make([]float64, m.NumActiveLinks)
	for a := range out {
		f := nodeValues[m.ActiveLinkFromNode[a]]
		t := nodeValues[m.ActiveLinkToNode[a]]
		out[a] = f
		if t > f {
			out[a] = t
		}
	}
	return out, nil
}

// AssignUpslopeValsToActiveLinks maps node values onto active links by
// picking, for each link, the value at its higher-u endpoint. With v nil
// the result is the larger u itself; otherwise the result is v at the
// upslope node.
func (m *Mesh) AssignUpslopeValsToActiveLinks(u, v []float64) ([]float64, error) {
	if len(u) != m.NumNodes {
		return nil, fmt.Errorf("%w: node values have length %d, want %d", ErrDimension, len(u), m.NumNodes)
	}
	if v == nil {
		return m.ActiveLinkMax(u)
	}
	if len(v) != m.NumNodes {
		return nil, fmt.Errorf("%w: carried values have length %d, want %d", ErrDimension, len(v), m.NumNodes)
	}
	out := make([]float64, m.NumActiveLinks)
	for a := range out {
		f, t := m.ActiveLinkFromNode[a], m.ActiveLinkToNode[a]
		if u[f] > u[t] {
			out[a] = v[f]
		} else {
			out[a] = v[t]
		}
	}
	return out, nil
}

func (m *Mesh) activeLinkBuffer(out []float64) ([]float64, error) {
	if out == nil {
		return make([]float64, m.NumActiveLinks), nil
	}
	if len(out) != m.NumActiveLinks {
		return nil, fmt.Errorf("%w: output buffer has length %d, want %d",
			ErrDimension, len(out), m.NumActiveLinks)
	}
	return out, nil
}
