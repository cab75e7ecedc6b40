package geom

import "errors"

var (
	// ErrTooFewPoints indicates an input point set below the minimum size.
	ErrTooFewPoints = errors.New("geom: at least 3 points are required")
	// ErrCollinear indicates a point set with fewer than 3 non-collinear
	// points, for which no triangulation or hull exists.
	ErrCollinear = errors.New("geom: points are collinear or degenerate")
)
