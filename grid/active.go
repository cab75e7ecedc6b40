package grid

// LinkIsActive reports whether link l is eligible for flux exchange under
// the current node status: at least one endpoint must be Interior and the
// opposite endpoint must not be Inactive.
func (m *Mesh) LinkIsActive(l int) bool {
	f := m.Status[m.LinkFromNode[l]]
	t := m.Status[m.LinkToNode[l]]
	return (f == Interior && t != Inactive) || (t == Interior && f != Inactive)
}

// RebuildActiveElements rederives every structure that depends on node
// status: the active link list with its endpoint and length arrays, the
// active inlink/outlink matrices, and the active cell list. It is called
// once by FinalizeTopology and again, always as a full recomputation, after
// every boundary mutation.
func (m *Mesh) RebuildActiveElements() {
	m.ActiveLinks = m.ActiveLinks[:0]
	for l := 0; l < m.NumLinks; l++ {
		if m.LinkIsActive(l) {
			m.ActiveLinks = append(m.ActiveLinks, l)
		}
	}
	m.NumActiveLinks = len(m.ActiveLinks)

	m.ActiveLinkFromNode = resizeInt(m.ActiveLinkFromNode, m.NumActiveLinks)
	m.ActiveLinkToNode = resizeInt(m.ActiveLinkToNode, m.NumActiveLinks)
	m.ActiveLinkLength = resizeFloat(m.ActiveLinkLength, m.NumActiveLinks)
	for a, l := range m.ActiveLinks {
		m.ActiveLinkFromNode[a] = m.LinkFromNode[l]
		m.ActiveLinkToNode[a] = m.LinkToNode[l]
		m.ActiveLinkLength[a] = m.LinkLength[l]
	}

	m.buildActiveLinkMatrices()

	m.ActiveCellNode = m.ActiveCellNode[:0]
	for n, s := range m.Status {
		if s == Interior && m.NodeCell[n] != NoIndex {
			m.ActiveCellNode = append(m.ActiveCellNode, n)
		}
	}
	m.NumActiveCells = len(m.ActiveCellNode)
}

// setupLinkMatrices computes the node degrees, the shared matrix width, and
// the full-link inlink/outlink matrices. The link list never changes after
// construction, so this runs once.
func (m *Mesh) setupLinkMatrices() {
	m.NumInlinks = make([]int, m.NumNodes)
	m.NumOutlinks = make([]int, m.NumNodes)
	for l := 0; l < m.NumLinks; l++ {
		m.NumOutlinks[m.LinkFromNode[l]]++
		m.NumInlinks[m.LinkToNode[l]]++
	}

	m.MaxNodeLinks = 1
	for n := 0; n < m.NumNodes; n++ {
		if m.NumInlinks[n] > m.MaxNodeLinks {
			m.MaxNodeLinks = m.NumInlinks[n]
		}
		if m.NumOutlinks[n] > m.MaxNodeLinks {
			m.MaxNodeLinks = m.NumOutlinks[n]
		}
	}

	m.InlinkMatrix = newLinkMatrix(m.MaxNodeLinks, m.NumNodes)
	m.OutlinkMatrix = newLinkMatrix(m.MaxNodeLinks, m.NumNodes)
	inFill := make([]int, m.NumNodes)
	outFill := make([]int, m.NumNodes)
	for l := 0; l < m.NumLinks; l++ {
		f, t := m.LinkFromNode[l], m.LinkToNode[l]
		m.OutlinkMatrix[outFill[f]][f] = l
		outFill[f]++
		m.InlinkMatrix[inFill[t]][t] = l
		inFill[t]++
	}
}

// buildActiveLinkMatrices fills the active inlink/outlink matrices with
// positions into ActiveLinks, in ascending order per node, padded with
// NoIndex. The width matches the full matrices so the two families stay
// interchangeable in shape.
func (m *Mesh) buildActiveLinkMatrices() {
	m.ActiveInlinkMatrix = newLinkMatrix(m.MaxNodeLinks, m.NumNodes)
	m.ActiveOutlinkMatrix = newLinkMatrix(m.MaxNodeLinks, m.NumNodes)
	m.NumActiveInlinks = resizeInt(m.NumActiveInlinks, m.NumNodes)
	m.NumActiveOutlinks = resizeInt(m.NumActiveOutlinks, m.NumNodes)
	for n := range m.NumActiveInlinks {
		m.NumActiveInlinks[n] = 0
		m.NumActiveOutlinks[n] = 0
	}
	for a, l := range m.ActiveLinks {
		f, t := m.LinkFromNode[l], m.LinkToNode[l]
		m.ActiveOutlinkMatrix[m.NumActiveOutlinks[f]][f] = a
		m.NumActiveOutlinks[f]++
		m.ActiveInlinkMatrix[m.NumActiveInlinks[t]][t] = a
		m.NumActiveInlinks[t]++
	}
}

func newLinkMatrix(rows, cols int) [][]int {
	mat := make([][]int, rows)
	for r := range mat {
		row := make([]int, cols)
		for i := range row {
			row[i] = NoIndex
		}
		mat[r] = row
	}
	return mat
}

func resizeInt(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}

func resizeFloat(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
