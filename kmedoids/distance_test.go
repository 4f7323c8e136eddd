package kmedoids_test

import (
	"testing"

	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistance_L1 checks the Manhattan metric on a few hand-computed pairs.
func TestDistance_L1(t *testing.T) {
	d, err := kmedoids.Distance([]float64{0, 0}, []float64{3, -4})
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)

	d, err = kmedoids.Distance([]float64{1.5}, []float64{1.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// TestDistance_Mismatch rejects points of different dimensionality.
func TestDistance_Mismatch(t *testing.T) {
	_, err := kmedoids.Distance([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, kmedoids.ErrDimensionMismatch)
}

// TestCost_TwoGroups: medoids {0,3,5} leave points 1, 2 and 4 at distance 1.
func TestCost_TwoGroups(t *testing.T) {
	ds := mustDataset(t, twoGroups)
	c, err := kmedoids.Cost(ds, medoidPoints(t, ds, kmedoids.MedoidSet{0, 3, 5}))
	require.NoError(t, err)
	assert.Equal(t, 3.0, c)
}

// TestCost_Errors covers empty and misshapen medoid lists.
func TestCost_Errors(t *testing.T) {
	ds := mustDataset(t, twoGroups)

	_, err := kmedoids.Cost(ds, nil)
	assert.ErrorIs(t, err, kmedoids.ErrNoMedoids)

	_, err = kmedoids.Cost(ds, [][]float64{{0, 0}, {1, 1, 1}})
	assert.ErrorIs(t, err, kmedoids.ErrDimensionMismatch)
}
