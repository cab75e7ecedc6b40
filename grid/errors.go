package grid

import "errors"

var (
	// ErrConfiguration reports an unrecognized name, such as an element
	// centering or a grid-type setting.
	ErrConfiguration = errors.New("grid: unknown configuration value")

	// ErrDimension reports a shape that cannot form a valid grid, or an
	// array whose length does not match its element centering.
	ErrDimension = errors.New("grid: dimension mismatch")

	// ErrTopology reports inconsistent connectivity, including geometry
	// degeneracies surfaced by the tessellation builder.
	ErrTopology = errors.New("grid: invalid topology")
)
