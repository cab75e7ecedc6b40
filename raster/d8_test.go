package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorbodwolf/landlab/grid"
)

func TestMaxGradientAcrossNode(t *testing.T) {
	g := new4x5(t)
	u := make([]float64, g.NumNodes)
	for n := range u {
		u[n] = 10
	}
	u[13] = 5 // lateral drop of 5
	u[18] = 1 // diagonal drop of 9 over sqrt(2)

	slope, at, err := g.MaxGradientAcrossNode(u, 12)
	require.NoError(t, err)
	assert.Equal(t, 18, at)
	assert.InDelta(t, 9/math.Sqrt2, slope, 1e-12)
}

func TestMaxGradientPrefersLateralWhenSteeper(t *testing.T) {
	g := new4x5(t)
	u := make([]float64, g.NumNodes)
	for n := range u {
		u[n] = 10
	}
	u[13] = 1 // lateral drop of 9 beats any sqrt(2)-scaled diagonal
	u[18] = 1

	slope, at, err := g.MaxGradientAcrossNode(u, 12)
	require.NoError(t, err)
	assert.Equal(t, 13, at)
	assert.InDelta(t, 9.0, slope, 1e-12)
}

func TestNodeInDirectionOfMaxSlope(t *testing.T) {
	g := new4x5(t)
	u := make([]float64, g.NumNodes)
	u[12] = 3
	u[7] = -2

	at, err := g.NodeInDirectionOfMaxSlope(u, 12)
	require.NoError(t, err)
	assert.Equal(t, 7, at)

	// A pit drains nowhere.
	for n := range u {
		u[n] = 5
	}
	u[12] = 0
	at, err = g.NodeInDirectionOfMaxSlope(u, 12)
	require.NoError(t, err)
	assert.Equal(t, grid.NoIndex, at)
}

func TestMaxGradientArgumentChecks(t *testing.T) {
	g := new4x5(t)
	_, _, err := g.MaxGradientAcrossNode(make([]float64, 3), 12)
	assert.True(t, errors.Is(err, grid.ErrDimension))
	_, _, err = g.MaxGradientAcrossNode(make([]float64, g.NumNodes), -1)
	assert.True(t, errors.Is(err, grid.ErrDimension))
}
