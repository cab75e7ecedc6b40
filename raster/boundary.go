package raster

import "github.com/dorbodwolf/landlab/grid"

// edgeOwnedIDs returns the node IDs owned by each edge under the corner
// ownership rule: bottom-left belongs to the bottom edge, bottom-right to
// the right edge, top-right to the top edge, top-left to the left edge.
func (g *Grid) edgeOwnedIDs() (bottom, right, top, left []int) {
	R, C := g.NumRows, g.NumCols
	for c := 0; c < C-1; c++ {
		bottom = append(bottom, c)
	}
	for r := 0; r < R-1; r++ {
		right = append(right, (r+1)*C-1)
	}
	for c := 1; c < C; c++ {
		top = append(top, (R-1)*C+c)
	}
	for r := 1; r < R; r++ {
		left = append(left, r*C)
	}
	return bottom, right, top, left
}

// SetInactiveBoundaries assigns each perimeter edge to Inactive (true) or
// FixedValue (false) status, then recomputes the active-element state.
// Corner nodes follow the ownership rule of edgeOwnedIDs.
func (g *Grid) SetInactiveBoundaries(bottomInactive, rightInactive, topInactive, leftInactive bool) {
	bottom, right, top, left := g.edgeOwnedIDs()
	apply := func(ids []int, inactive bool) {
		s := grid.FixedValue
		if inactive {
			s = grid.Inactive
		}
		for _, n := range ids {
			g.Status[n] = s
		}
	}
	apply(bottom, bottomInactive)
	apply(right, rightInactive)
	apply(top, topInactive)
	apply(left, leftInactive)
	g.RebuildActiveElements()
}

// SetNoFluxBoundaries turns the selected perimeter edges into tracked
// boundaries: each edge node mirrors the value of its adjacent interior
// node, which zeroes the gradient across the edge. Corner nodes owned by a
// selected edge track their diagonal interior neighbor. Unselected edges
// are left unchanged.
func (g *Grid) SetNoFluxBoundaries(bottom, right, top, left bool) error {
	R, C := g.NumRows, g.NumCols
	var ids, tracked []int
	add := func(n, t int) {
		ids = append(ids, n)
		tracked = append(tracked, t)
	}
	if bottom {
		add(0, C+1) // bottom-left corner
		for c := 1; c < C-1; c++ {
			add(c, c+C)
		}
	}
	if right {
		add(C-1, 2*C-2) // bottom-right corner
		for r := 1; r < R-1; r++ {
			add((r+1)*C-1, (r+1)*C-2)
		}
	}
	if top {
		add(R*C-1, (R-1)*C-2) // top-right corner
		for c := 1; c < C-1; c++ {
			add((R-1)*C+c, (R-2)*C+c)
		}
	}
	if left {
		add((R-1)*C, (R-2)*C+1) // top-left corner
		for r := 1; r < R-1; r++ {
			add(r*C, r*C+1)
		}
	}
	return g.SetTrackedBoundaries(ids, tracked)
}
