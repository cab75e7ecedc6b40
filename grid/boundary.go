package grid

import "fmt"

// SetFixedValueBoundaries marks the listed nodes as FixedValue boundaries
// and recomputes the active-element state.
func (m *Mesh) SetFixedValueBoundaries(ids []int) error {
	if err := m.checkNodeIDs(ids); err != nil {
		return err
	}
	for _, n := range ids {
		m.Status[n] = FixedValue
	}
	m.RebuildActiveElements()
	return nil
}

// DeactivateNodataNodes marks every node whose data value equals nodata as
// Inactive, then recomputes the active-element state (including the
// interior-cell list). Applying it twice with the same arguments leaves the
// grid unchanged after the first application.
func (m *Mesh) DeactivateNodataNodes(data []float64, nodata float64) error {
	if len(data) != m.NumNodes {
		return fmt.Errorf("%w: node data has length %d, want %d", ErrDimension, len(data), m.NumNodes)
	}
	for n, v := range data {
		if v == nodata {
			m.Status[n] = Inactive
		}
	}
	m.RebuildActiveElements()
	return nil
}

// SetTrackedBoundaries marks each listed node as a TracksCell boundary that
// mirrors the corresponding tracked node's value during UpdateBoundaries.
func (m *Mesh) SetTrackedBoundaries(ids, tracked []int) error {
	if len(tracked) != len(ids) {
		return fmt.Errorf("%w: %d tracked nodes for %d boundary nodes", ErrDimension, len(tracked), len(ids))
	}
	if err := m.checkNodeIDs(ids); err != nil {
		return err
	}
	if err := m.checkNodeIDs(tracked); err != nil {
		return err
	}
	m.ensureTracking()
	for i, n := range ids {
		m.Status[n] = TracksCell
		m.TracksNode[n] = tracked[i]
		m.BoundaryGradient[n] = 0
	}
	m.RebuildActiveElements()
	return nil
}

// SetFixedGradientBoundaries marks each listed node as a FixedGradient
// boundary: during UpdateBoundaries its value becomes the tracked node's
// value plus the given offset.
func (m *Mesh) SetFixedGradientBoundaries(ids, tracked []int, offsets []float64) error {
	if len(tracked) != len(ids) || len(offsets) != len(ids) {
		return fmt.Errorf("%w: %d tracked nodes and %d offsets for %d boundary nodes",
			ErrDimension, len(tracked), len(offsets), len(ids))
	}
	if err := m.checkNodeIDs(ids); err != nil {
		return err
	}
	if err := m.checkNodeIDs(tracked); err != nil {
		return err
	}
	m.ensureTracking()
	for i, n := range ids {
		m.Status[n] = FixedGradient
		m.TracksNode[n] = tracked[i]
		m.BoundaryGradient[n] = offsets[i]
	}
	m.RebuildActiveElements()
	return nil
}

// UpdateBoundaries refreshes the boundary entries of a node-centered value
// array in place. Every TracksCell node copies its own tracked node's value;
// every FixedGradient node does the same and adds its own offset. FixedValue
// and Inactive nodes are left untouched.
func (m *Mesh) UpdateBoundaries(u []float64) error {
	if len(u) != m.NumNodes {
		return fmt.Errorf("%w: node values have length %d, want %d", ErrDimension, len(u), m.NumNodes)
	}
	if m.TracksNode == nil {
		return nil
	}
	for n, s := range m.Status {
		switch s {
		case TracksCell:
			if t := m.TracksNode[n]; t != NoIndex {
				u[n] = u[t]
			}
		case FixedGradient:
			if t := m.TracksNode[n]; t != NoIndex {
				u[n] = u[t] + m.BoundaryGradient[n]
			}
		}
	}
	return nil
}

func (m *Mesh) ensureTracking() {
	if m.TracksNode != nil {
		return
	}
	m.TracksNode = make([]int, m.NumNodes)
	for n := range m.TracksNode {
		m.TracksNode[n] = NoIndex
	}
	m.BoundaryGradient = make([]float64, m.NumNodes)
}

func (m *Mesh) checkNodeIDs(ids []int) error {
	for _, n := range ids {
		if n < 0 || n >= m.NumNodes {
			return fmt.Errorf("%w: node id %d outside [0,%d)", ErrDimension, n, m.NumNodes)
		}
	}
	return nil
}
