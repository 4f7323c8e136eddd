package kmedoids_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDataset_Shape verifies dimensions and that input is copied.
func TestNewDataset_Shape(t *testing.T) {
	pts := [][]float64{{1, 2, 3}, {4, 5, 6}}
	ds, err := kmedoids.NewDataset(pts)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 3, ds.Dim())
	assert.Equal(t, []float64{4, 5, 6}, ds.Point(1))

	pts[1][0] = 100
	assert.Equal(t, 4.0, ds.Point(1)[0], "dataset must not alias caller slices")
}

// TestNewDataset_Errors covers every rejection path.
func TestNewDataset_Errors(t *testing.T) {
	cases := []struct {
		name string
		pts  [][]float64
		want error
	}{
		{"nil", nil, kmedoids.ErrEmptyDataset},
		{"empty", [][]float64{}, kmedoids.ErrEmptyDataset},
		{"zero-dim", [][]float64{{}}, kmedoids.ErrDimensionMismatch},
		{"ragged", [][]float64{{1, 2}, {3}}, kmedoids.ErrDimensionMismatch},
		{"nan", [][]float64{{1, math.NaN()}}, kmedoids.ErrNonFinite},
		{"inf", [][]float64{{math.Inf(-1)}}, kmedoids.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kmedoids.NewDataset(tc.pts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestDataset_PointsOutOfRange checks index resolution bounds.
func TestDataset_PointsOutOfRange(t *testing.T) {
	ds := mustDataset(t, twoGroups)
	_, err := ds.Points([]int{0, 6})
	assert.ErrorIs(t, err, kmedoids.ErrMedoidOutOfRange)
	_, err = ds.Points([]int{-1})
	assert.ErrorIs(t, err, kmedoids.ErrMedoidOutOfRange)
}

// TestAssignment_Clusters checks grouping, ordering and empty groups.
func TestAssignment_Clusters(t *testing.T) {
	a := kmedoids.Assignment{2, 0, 2, 0}
	got := a.Clusters(3)
	assert.Equal(t, [][]int{{1, 3}, nil, {0, 2}}, got)
	assert.Empty(t, got[1], "cluster 1 received no members")
}

// TestResult_Labels maps labels through a palette.
func TestResult_Labels(t *testing.T) {
	res := kmedoids.Result{
		Medoids:    kmedoids.MedoidSet{0, 3, 5},
		Assignment: kmedoids.Assignment{0, 0, 1, 2},
	}
	got, err := res.Labels([]string{"red", "green", "blue"})
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "red", "green", "blue"}, got)

	_, err = res.Labels([]string{"red"})
	assert.ErrorIs(t, err, kmedoids.ErrPaletteTooSmall)
}
