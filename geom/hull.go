package geom

import (
	"fmt"
	"math"
	"sort"
)

// ConvexHull computes the convex hull of pts using the monotone chain
// algorithm and returns two index lists: the hull vertices in counterclockwise
// order, and the "coplanar" points. A coplanar point lies on a hull edge
// without forming a convex corner, which happens routinely on the perimeter of
// regular lattices (for example the staggered rows of a hexagonal lattice).
// Hull vertices and coplanar points together make up the full perimeter of the
// point set.
func ConvexHull(pts []Point) (hull, coplanar []int, err error) {
	if len(pts) < 3 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pts))
	}

	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := pts[order[a]], pts[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	// Lower then upper chain, strict turns only, so collinear perimeter
	// points are excluded here and recovered below as coplanar points.
	var lower, upper []int
	for _, i := range order {
		for len(lower) >= 2 && cross(pts[lower[len(lower)-2]], pts[lower[len(lower)-1]], pts[i]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, i)
	}
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		for len(upper) >= 2 && cross(pts[upper[len(upper)-2]], pts[upper[len(upper)-1]], pts[i]) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, i)
	}

	hull = append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, nil, fmt.Errorf("%w: %d points", ErrCollinear, len(pts))
	}

	onHull := make(map[int]bool, len(hull))
	for _, i := range hull {
		onHull[i] = true
	}

	eps := hullTolerance(pts)
	for i := range pts {
		if onHull[i] {
			continue
		}
		if pointOnHullEdge(pts, hull, i, eps) {
			coplanar = append(coplanar, i)
		}
	}
	sort.Ints(coplanar)
	return hull, coplanar, nil
}

// hullTolerance derives an absolute collinearity tolerance from the extent of
// the point set.
func hullTolerance(pts []Point) float64 {
	var span float64
	for _, p := range pts {
		span = math.Max(span, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return 1e-9 * (span + 1)
}

// pointOnHullEdge reports whether point i lies on any edge of the hull, within
// tolerance eps, strictly between the edge endpoints.
func pointOnHullEdge(pts []Point, hull []int, i int, eps float64) bool {
	p := pts[i]
	for k := range hull {
		a := pts[hull[k]]
		b := pts[hull[(k+1)%len(hull)]]
		if math.Abs(cross(a, b, p)) > eps*Distance(a, b) {
			continue
		}
		// Collinear with the edge; check it falls inside the segment.
		dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
		if dot > 0 && dot < (b.X-a.X)*(b.X-a.X)+(b.Y-a.Y)*(b.Y-a.Y) {
			return true
		}
	}
	return false
}
