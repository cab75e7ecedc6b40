package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFixedValueBoundaries(t *testing.T) {
	m := newLatticeMesh(t, 4, 5)
	require.NoError(t, m.SetFixedValueBoundaries([]int{6, 7}))

	assert.Equal(t, FixedValue, m.Status[6])
	assert.Equal(t, FixedValue, m.Status[7])
	// Links between two fixed-value nodes drop out of the active set.
	assert.Equal(t, activeLinksByLoop(m), m.ActiveLinks)
	assert.Equal(t, NoIndex, m.ActiveLinkConnectingNodePair(6, 7))

	err := m.SetFixedValueBoundaries([]int{99})
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestDeactivateNodataNodesIdempotent(t *testing.T) {
	m := newLatticeMesh(t, 4, 5)
	const nodata = -9999.0
	data := make([]float64, m.NumNodes)
	for _, n := range []int{0, 1, 5, 6, 10} {
		data[n] = nodata
	}

	require.NoError(t, m.DeactivateNodataNodes(data, nodata))
	statusOnce := append([]Status(nil), m.Status...)
	linksOnce := append([]int(nil), m.ActiveLinks...)
	cellsOnce := append([]int(nil), m.ActiveCellNode...)

	require.NoError(t, m.DeactivateNodataNodes(data, nodata))
	assert.Equal(t, statusOnce, m.Status)
	assert.Equal(t, linksOnce, m.ActiveLinks)
	assert.Equal(t, cellsOnce, m.ActiveCellNode)

	for _, n := range []int{0, 1, 5, 6, 10} {
		assert.Equal(t, Inactive, m.Status[n])
	}
	// Node 6 owned a cell; it no longer counts as active.
	assert.NotContains(t, m.ActiveCellNode, 6)
	assert.Equal(t, m.NumCells-1, m.NumActiveCells)

	err := m.DeactivateNodataNodes(data[:3], nodata)
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestSetTrackedBoundariesAndUpdate(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)
	require.NoError(t, m.SetTrackedBoundaries([]int{1, 3}, []int{4, 4}))

	assert.Equal(t, TracksCell, m.Status[1])
	assert.Equal(t, TracksCell, m.Status[3])

	u := []float64{9, 9, 9, 9, 5, 9, 9, 9, 9}
	require.NoError(t, m.UpdateBoundaries(u))
	assert.Equal(t, 5.0, u[1])
	assert.Equal(t, 5.0, u[3])
	assert.Equal(t, 9.0, u[0]) // untouched FixedValue node

	err := m.SetTrackedBoundaries([]int{1}, []int{4, 4})
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestSetFixedGradientBoundaries(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)
	require.NoError(t, m.SetFixedGradientBoundaries([]int{5, 7}, []int{4, 4}, []float64{0.5, -1}))

	assert.Equal(t, FixedGradient, m.Status[5])
	assert.Equal(t, FixedGradient, m.Status[7])

	u := []float64{0, 0, 0, 0, 2, 0, 0, 0, 0}
	require.NoError(t, m.UpdateBoundaries(u))
	assert.InDelta(t, 2.5, u[5], 1e-12)
	assert.InDelta(t, 1.0, u[7], 1e-12)

	err := m.SetFixedGradientBoundaries([]int{5}, []int{4}, nil)
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestUpdateBoundariesNoTracking(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)
	u := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	want := append([]float64(nil), u...)
	require.NoError(t, m.UpdateBoundaries(u))
	assert.Equal(t, want, u)

	err := m.UpdateBoundaries(u[:4])
	assert.True(t, errors.Is(err, ErrDimension))
}

func TestBoundaryMutationKeepsStoreConsistent(t *testing.T) {
	m := newLatticeMesh(t, 5, 5)
	require.NoError(t, m.SetFixedValueBoundaries([]int{12}))
	data := make([]float64, m.NumNodes)
	data[6] = -1
	require.NoError(t, m.DeactivateNodataNodes(data, -1))
	require.NoError(t, m.Verify())
	assert.Equal(t, activeLinksByLoop(m), m.ActiveLinks)
}
