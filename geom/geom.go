package geom

import "math"

// Point is a location in the 2-D plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PolygonArea computes the area of a 2-D simple polygon using the shoelace
// formula. Vertices must be supplied in sequence around the polygon, either
// clockwise or counterclockwise. Repeated consecutive vertices contribute
// nothing and are harmless.
func PolygonArea(x, y []float64) float64 {
	n := len(x)
	if n < 3 {
		return 0
	}
	var s float64
	for i := 0; i < n; i++ {
		j := (i + n - 1) % n
		s += x[j]*y[i] - x[i]*y[j]
	}
	return math.Abs(s) * 0.5
}

// LinkLengths computes the Euclidean length of each link between node
// coordinate pairs. from and to hold node indices into x and y.
func LinkLengths(x, y []float64, from, to []int) []float64 {
	lengths := make([]float64, len(from))
	for i := range from {
		dx := x[to[i]] - x[from[i]]
		dy := y[to[i]] - y[from[i]]
		lengths[i] = math.Hypot(dx, dy)
	}
	return lengths
}

// cross returns the z-component of (a-o) x (b-o). Positive for a left turn
// o->a->b, negative for a right turn, zero when collinear.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
