package params

import (
	"fmt"

	"github.com/dorbodwolf/landlab/grid"
	"github.com/dorbodwolf/landlab/raster"
	"github.com/dorbodwolf/landlab/voronoi"
)

// CreateGrid builds a grid from named settings. The dictionary must carry
// "grid_type" ("raster" or "hex"); each type reads its own shape settings:
//
//	raster: num_rows, num_cols, dx (default 1), and optionally
//	        bottom_boundary / right_boundary / top_boundary /
//	        left_boundary, each "open" (default) or "closed"
//	hex:    num_rows, base_num_cols, dx (default 1)
func CreateGrid(d *Dictionary) (grid.Grid, error) {
	gridType, err := d.ReadString("grid_type")
	if err != nil {
		return nil, err
	}
	switch gridType {
	case "raster":
		return createRaster(d)
	case "hex":
		return createHex(d)
	default:
		return nil, fmt.Errorf("%w: grid type %q", grid.ErrConfiguration, gridType)
	}
}

func createRaster(d *Dictionary) (grid.Grid, error) {
	numRows, err := d.ReadInt("num_rows")
	if err != nil {
		return nil, err
	}
	numCols, err := d.ReadInt("num_cols")
	if err != nil {
		return nil, err
	}
	dx, err := d.ReadFloatDefault("dx", 1)
	if err != nil {
		return nil, err
	}
	g, err := raster.NewGrid(numRows, numCols, dx)
	if err != nil {
		return nil, err
	}

	closed := [4]bool{}
	anyClosed := false
	for i, name := range []string{"bottom_boundary", "right_boundary", "top_boundary", "left_boundary"} {
		mode, err := d.ReadStringDefault(name, "open")
		if err != nil {
			return nil, err
		}
		switch mode {
		case "open":
		case "closed":
			closed[i] = true
			anyClosed = true
		default:
			return nil, fmt.Errorf("%w: boundary mode %q for %s", grid.ErrConfiguration, mode, name)
		}
	}
	if anyClosed {
		g.SetInactiveBoundaries(closed[0], closed[1], closed[2], closed[3])
	}
	return g, nil
}

func createHex(d *Dictionary) (grid.Grid, error) {
	numRows, err := d.ReadInt("num_rows")
	if err != nil {
		return nil, err
	}
	baseNumCols, err := d.ReadInt("base_num_cols")
	if err != nil {
		return nil, err
	}
	dx, err := d.ReadFloatDefault("dx", 1)
	if err != nil {
		return nil, err
	}
	return voronoi.NewHexGrid(numRows, baseNumCols, dx)
}
