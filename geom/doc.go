// Package geom provides the 2-D computational geometry used to build
// unstructured model grids: point-set primitives (distances, simple-polygon
// area), convex hulls with coplanar-point detection, Delaunay triangulation,
// and the Voronoi diagram derived from it.
//
// All structures reference points, triangles and Voronoi vertices by dense
// integer index into parallel slices; there is no pointer graph. Sentinel
// index values mark missing entities (NoNeighbor, InfiniteVertex).
package geom
