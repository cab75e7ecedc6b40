package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveLinksDefaultBoundary3x3(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)
	// Only node 4 is interior, so exactly its four links are active.
	assert.Equal(t, []int{1, 4, 8, 9}, m.ActiveLinks)
	assert.Equal(t, 4, m.NumActiveLinks)
	assert.Equal(t, []int{1, 4, 3, 4}, m.ActiveLinkFromNode)
	assert.Equal(t, []int{4, 7, 4, 5}, m.ActiveLinkToNode)
	assert.InDeltaSlicef(t, []float64{1, 1, 1, 1}, m.ActiveLinkLength, 1e-12, "")
	assert.Equal(t, 1, m.NumActiveCells)
	assert.Equal(t, []int{4}, m.ActiveCellNode)
}

func TestFullLinkMatrices3x3(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)

	require.Equal(t, 2, m.MaxNodeLinks)
	assert.Equal(t, [][]int{
		{-1, 6, 7, 0, 1, 2, 3, 4, 5},
		{-1, -1, -1, -1, 8, 9, -1, 10, 11},
	}, m.InlinkMatrix)
	assert.Equal(t, [][]int{
		{0, 1, 2, 3, 4, 5, 10, 11, -1},
		{6, 7, -1, 8, 9, -1, -1, -1, -1},
	}, m.OutlinkMatrix)
	assert.Equal(t, []int{0, 1, 1, 1, 2, 2, 1, 2, 2}, m.NumInlinks)
	assert.Equal(t, []int{2, 2, 1, 2, 2, 1, 1, 1, 0}, m.NumOutlinks)
}

func TestActiveLinkMatrices3x3(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)

	// Active matrices hold positions within ActiveLinks, filled in
	// ascending order per node.
	assert.Equal(t, [][]int{
		{-1, -1, -1, -1, 0, 3, -1, 1, -1},
		{-1, -1, -1, -1, 2, -1, -1, -1, -1},
	}, m.ActiveInlinkMatrix)
	assert.Equal(t, [][]int{
		{-1, 0, -1, 2, 1, -1, -1, -1, -1},
		{-1, -1, -1, -1, 3, -1, -1, -1, -1},
	}, m.ActiveOutlinkMatrix)
	assert.Equal(t, []int{0, 0, 0, 0, 2, 1, 0, 1, 0}, m.NumActiveInlinks)
	assert.Equal(t, []int{0, 1, 0, 1, 2, 0, 0, 0, 0}, m.NumActiveOutlinks)
}

func TestActivationRuleFormulationsAgree(t *testing.T) {
	m := newLatticeMesh(t, 4, 5)

	scenarios := []func(){
		func() {},
		func() { m.Status[0] = Inactive },
		func() {
			for _, n := range []int{0, 1, 2, 3, 4} {
				m.Status[n] = Inactive
			}
		},
		func() { m.Status[6] = Inactive },
		func() { m.Status[7] = TracksCell },
		func() { m.Status[12] = FixedGradient },
	}
	for i, mutate := range scenarios {
		mutate()
		m.RebuildActiveElements()

		loop := activeLinksByLoop(m)
		arrays := activeLinksByArrays(m)
		assert.Equal(t, loop, arrays, "scenario %d", i)
		assert.Equal(t, loop, m.ActiveLinks, "scenario %d", i)
	}
}

func TestRebuildActiveElementsReproducible(t *testing.T) {
	m := newLatticeMesh(t, 4, 5)
	m.Status[0] = Inactive
	m.RebuildActiveElements()

	links := append([]int(nil), m.ActiveLinks...)
	inMat := copyMatrix(m.ActiveInlinkMatrix)
	outMat := copyMatrix(m.ActiveOutlinkMatrix)
	cells := append([]int(nil), m.ActiveCellNode...)

	m.RebuildActiveElements()
	assert.Equal(t, links, m.ActiveLinks)
	assert.Equal(t, inMat, m.ActiveInlinkMatrix)
	assert.Equal(t, outMat, m.ActiveOutlinkMatrix)
	assert.Equal(t, cells, m.ActiveCellNode)
}

func TestDeactivatingInteriorRemovesActivity(t *testing.T) {
	m := newLatticeMesh(t, 3, 3)
	m.Status[4] = Inactive
	m.RebuildActiveElements()

	assert.Equal(t, 0, m.NumActiveLinks)
	assert.Equal(t, 0, m.NumActiveCells)
	for n := 0; n < m.NumNodes; n++ {
		assert.Equal(t, 0, m.NumActiveInlinks[n])
		assert.Equal(t, 0, m.NumActiveOutlinks[n])
	}
}

func copyMatrix(mat [][]int) [][]int {
	out := make([][]int, len(mat))
	for r := range mat {
		out[r] = append([]int(nil), mat[r]...)
	}
	return out
}
