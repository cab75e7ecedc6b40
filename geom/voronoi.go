package geom

import (
	"math"
	"sort"
)

// InfiniteVertex marks a ridge endpoint at infinity. Ridges between two hull
// generators have one (or both) endpoints unbounded.
const InfiniteVertex = -1

// Ridge is a single Voronoi cell boundary segment. Points holds the indices
// of the two generators it separates; Vertices holds the indices into
// Diagram.Vertices of its endpoints, with InfiniteVertex for an unbounded
// end.
type Ridge struct {
	Points   [2]int
	Vertices [2]int
}

// Diagram is a Voronoi diagram derived from a Delaunay triangulation.
// Vertices[t] is the circumcenter of Delaunay triangle t. Regions[p] lists
// the vertex indices surrounding generator p in counterclockwise order;
// Closed[p] reports whether that region is bounded.
type Diagram struct {
	Points   []Point
	Vertices []Point
	Regions  [][]int
	Closed   []bool
	Ridges   []Ridge
}

// NewDiagram computes the Voronoi diagram dual to the Delaunay triangulation
// of pts.
func NewDiagram(pts []Point) (*Diagram, error) {
	tri, err := Triangulate(pts)
	if err != nil {
		return nil, err
	}
	return diagramFromTriangulation(tri), nil
}

func diagramFromTriangulation(tri *Triangulation) *Diagram {
	d := &Diagram{
		Points:   tri.Points,
		Vertices: make([]Point, len(tri.Simplices)),
	}
	for t, v := range tri.Simplices {
		c, _, ok := circumcircle(tri.Points[v[0]], tri.Points[v[1]], tri.Points[v[2]])
		if !ok {
			// Collinear triangles never survive Triangulate.
			c = Point{}
		}
		d.Vertices[t] = c
	}

	// One ridge per Delaunay edge, emitted in triangle order so repeated
	// runs over the same point set produce identical indexing. An edge is
	// owned by the lower-indexed of its two adjacent triangles.
	open := make([]bool, len(tri.Points))
	for t, v := range tri.Simplices {
		for i := 0; i < 3; i++ {
			nb := tri.Neighbors[t][i]
			if nb != NoNeighbor && nb < t {
				continue
			}
			a, b := v[(i+1)%3], v[(i+2)%3]
			r := Ridge{Points: [2]int{a, b}, Vertices: [2]int{t, nb}}
			if nb == NoNeighbor {
				r.Vertices[1] = InfiniteVertex
				open[a] = true
				open[b] = true
			}
			d.Ridges = append(d.Ridges, r)
		}
	}

	// Region rings: the circumcenters of the triangles incident to each
	// generator, ordered by angle about the generator.
	incident := make([][]int, len(tri.Points))
	for t, v := range tri.Simplices {
		for i := 0; i < 3; i++ {
			incident[v[i]] = append(incident[v[i]], t)
		}
	}
	d.Regions = make([][]int, len(tri.Points))
	d.Closed = make([]bool, len(tri.Points))
	for p, ts := range incident {
		g := tri.Points[p]
		sort.Slice(ts, func(i, j int) bool {
			vi, vj := d.Vertices[ts[i]], d.Vertices[ts[j]]
			return math.Atan2(vi.Y-g.Y, vi.X-g.X) < math.Atan2(vj.Y-g.Y, vj.X-g.X)
		})
		d.Regions[p] = ts
		d.Closed[p] = !open[p] && len(ts) > 0
	}
	return d
}

// RegionArea returns the polygon area of generator p's Voronoi cell, or 0
// for unbounded regions.
func (d *Diagram) RegionArea(p int) float64 {
	if !d.Closed[p] {
		return 0
	}
	ring := d.Regions[p]
	x := make([]float64, len(ring))
	y := make([]float64, len(ring))
	for i, v := range ring {
		x[i] = d.Vertices[v].X
		y[i] = d.Vertices[v].Y
	}
	return PolygonArea(x, y)
}
