package grid

// Grid is the capability set every grid family exposes, regardless of how
// its topology was built. raster.Grid and voronoi.Grid both satisfy it by
// embedding *Mesh; family-specific queries stay on the concrete types.
type Grid interface {
	// Topology exposes the underlying element arrays.
	Topology() *Mesh

	// Sized-array factories keyed by element centering.
	Zeros(c Centering) ([]float64, error)
	Ones(c Centering) ([]float64, error)
	Empty(c Centering) ([]float64, error)

	// NodeAxisCoords returns node coordinates along axis 0 (y) or 1 (x).
	NodeAxisCoords(axis int) ([]float64, error)

	// Differential operators over the current active-element state.
	GradientsAtActiveLinks(values, out []float64) ([]float64, error)
	FluxDivergenceAtNodes(activeLinkFlux, out []float64) ([]float64, error)
	FluxDivergenceAtActiveCells(activeLinkFlux, out []float64) ([]float64, error)
}
