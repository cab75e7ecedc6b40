package geom

import (
	"fmt"
	"math"
)

// NoNeighbor marks the absence of an adjacent triangle across an edge.
const NoNeighbor = -1

// Triangulation is a Delaunay triangulation of a point set. Simplices holds
// the three point indices of each triangle in counterclockwise order;
// Neighbors[t][i] is the index of the triangle sharing the edge opposite
// vertex i of triangle t, or NoNeighbor for hull edges.
type Triangulation struct {
	Points    []Point
	Simplices [][3]int
	Neighbors [][3]int
}

// Triangulate computes the Delaunay triangulation of pts using incremental
// insertion (Bowyer-Watson). The input must contain at least three
// non-collinear points; duplicate points are not supported.
func Triangulate(pts []Point) (*Triangulation, error) {
	n := len(pts)
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}

	work := make([]Point, n, n+3)
	copy(work, pts)

	// Super-triangle enclosing every circumcircle that can arise during
	// insertion. Its vertices occupy indices n, n+1, n+2 and are stripped
	// at the end.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	d := math.Max(maxX-minX, maxY-minY) + 1
	work = append(work,
		Point{cx - 20*d, cy - d},
		Point{cx + 20*d, cy - d},
		Point{cx, cy + 20*d},
	)

	tris := [][3]int{{n, n + 1, n + 2}}
	for p := 0; p < n; p++ {
		var bad []int
		for t := range tris {
			if inCircumcircle(work, tris[t], work[p]) {
				bad = append(bad, t)
			}
		}

		// The cavity boundary is the set of edges belonging to exactly
		// one removed triangle.
		type edge struct{ a, b int }
		edgeCount := make(map[edge]int)
		edgeOrder := make([]edge, 0, 3*len(bad))
		for _, t := range bad {
			v := tris[t]
			for i := 0; i < 3; i++ {
				e := edge{v[i], v[(i+1)%3]}
				key := e
				if key.a > key.b {
					key.a, key.b = key.b, key.a
				}
				if edgeCount[key] == 0 {
					edgeOrder = append(edgeOrder, e)
				}
				edgeCount[key]++
			}
		}

		keep := tris[:0]
		badSet := make(map[int]bool, len(bad))
		for _, t := range bad {
			badSet[t] = true
		}
		for t := range tris {
			if !badSet[t] {
				keep = append(keep, tris[t])
			}
		}
		tris = keep

		for _, e := range edgeOrder {
			key := e
			if key.a > key.b {
				key.a, key.b = key.b, key.a
			}
			if edgeCount[key] != 1 {
				continue
			}
			tris = append(tris, orientCCW(work, [3]int{e.a, e.b, p}))
		}
	}

	// Strip triangles that touch the super-triangle.
	final := tris[:0]
	for _, t := range tris {
		if t[0] < n && t[1] < n && t[2] < n {
			final = append(final, t)
		}
	}
	if len(final) == 0 {
		return nil, fmt.Errorf("%w: %d points", ErrCollinear, n)
	}

	tri := &Triangulation{Points: pts, Simplices: final}
	tri.Neighbors = neighborTable(final)
	return tri, nil
}

// orientCCW reorders triangle vertices so the signed area is positive.
func orientCCW(pts []Point, t [3]int) [3]int {
	if cross(pts[t[0]], pts[t[1]], pts[t[2]]) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

// inCircumcircle reports whether p falls inside the circumcircle of triangle
// t. Degenerate (collinear) triangles are treated as containing every point,
// so they are always removed from the working set.
func inCircumcircle(pts []Point, t [3]int, p Point) bool {
	c, r2, ok := circumcircle(pts[t[0]], pts[t[1]], pts[t[2]])
	if !ok {
		return true
	}
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy < r2*(1+1e-12)
}

// circumcircle returns the circumcenter and squared circumradius of triangle
// abc. ok is false when the points are (nearly) collinear.
func circumcircle(a, b, c Point) (center Point, r2 float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	scale := math.Abs(a.X) + math.Abs(a.Y) + math.Abs(b.X) + math.Abs(b.Y) + math.Abs(c.X) + math.Abs(c.Y) + 1
	if math.Abs(d) < 1e-12*scale*scale {
		return Point{}, 0, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	center.X = (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	center.Y = (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	dx, dy := a.X-center.X, a.Y-center.Y
	return center, dx*dx + dy*dy, true
}

// neighborTable builds, for each triangle, the triangle adjacent across the
// edge opposite each vertex.
func neighborTable(tris [][3]int) [][3]int {
	type edge struct{ a, b int }
	owners := make(map[edge][2]int, 3*len(tris)/2)
	for t, v := range tris {
		for i := 0; i < 3; i++ {
			e := edge{v[(i+1)%3], v[(i+2)%3]}
			if e.a > e.b {
				e.a, e.b = e.b, e.a
			}
			o, seen := owners[e]
			if !seen {
				owners[e] = [2]int{t, NoNeighbor}
			} else {
				o[1] = t
				owners[e] = o
			}
		}
	}

	nbrs := make([][3]int, len(tris))
	for t, v := range tris {
		for i := 0; i < 3; i++ {
			e := edge{v[(i+1)%3], v[(i+2)%3]}
			if e.a > e.b {
				e.a, e.b = e.b, e.a
			}
			o := owners[e]
			if o[0] == t {
				nbrs[t][i] = o[1]
			} else {
				nbrs[t][i] = o[0]
			}
		}
	}
	return nbrs
}
