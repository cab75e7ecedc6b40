// Package grid holds the in-memory topology of a two-dimensional model grid:
// nodes, directed links, cells, and faces stored as dense parallel index
// slices, plus the boundary-status-driven active element subset and the
// differential operators (gradients at active links, flux divergence at nodes
// and cells) shared by every grid family.
//
// A builder (package raster or voronoi) populates a Mesh once and calls
// FinalizeTopology. Boundary status is the only state that changes after
// construction; every mutation goes through the boundary-condition methods,
// which recompute the derived active-element structures in full.
package grid
