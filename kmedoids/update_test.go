package kmedoids_test

import (
	"testing"

	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBestReplacement_FirstMinimalWins: on 0,1,2,3 with medoid 0 (cost 6),
// members 1 and 2 both give cost 4; the first one scanned is kept.
func TestBestReplacement_FirstMinimalWins(t *testing.T) {
	ds := mustDataset(t, [][]float64{{0}, {1}, {2}, {3}})
	meds := medoidPoints(t, ds, kmedoids.MedoidSet{0})

	c, err := kmedoids.BestReplacement(ds, []int{0, 1, 2, 3}, meds, 0, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, kmedoids.Candidate{Slot: 0, Index: 1, Cost: 4}, c)

	c, err = kmedoids.BestReplacement(ds, []int{3, 2, 1, 0}, meds, 0, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Index, "scan order decides among equal costs")
}

// TestBestReplacement_NoImprovementKeepsCurrent: the fixture's medoid 0 is
// already optimal for its cluster.
func TestBestReplacement_NoImprovementKeepsCurrent(t *testing.T) {
	ds := mustDataset(t, twoGroups)
	meds := medoidPoints(t, ds, kmedoids.MedoidSet{0, 3, 5})

	c, err := kmedoids.BestReplacement(ds, []int{0, 1, 2}, meds, 0, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, kmedoids.Candidate{Slot: 0, Index: 0, Cost: 3}, c)
}

// TestBestReplacement_EmptyCluster proposes nothing new.
func TestBestReplacement_EmptyCluster(t *testing.T) {
	ds := mustDataset(t, twoGroups)
	meds := medoidPoints(t, ds, kmedoids.MedoidSet{0, 3, 5})

	c, err := kmedoids.BestReplacement(ds, nil, meds, 2, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, kmedoids.Candidate{Slot: 2, Index: 5, Cost: 3}, c)
}

// TestBestReplacement_DoesNotMutateMedoids guards the caller's slice.
func TestBestReplacement_DoesNotMutateMedoids(t *testing.T) {
	ds := mustDataset(t, line)
	meds := medoidPoints(t, ds, kmedoids.MedoidSet{0, 3, 5})
	before := append([][]float64(nil), meds...)

	c, err := kmedoids.BestReplacement(ds, []int{0, 1, 2}, meds, 0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, kmedoids.Candidate{Slot: 0, Index: 1, Cost: 3}, c)
	assert.Equal(t, before, meds)
}

// TestBestReplacement_Errors covers slot and member bounds.
func TestBestReplacement_Errors(t *testing.T) {
	ds := mustDataset(t, twoGroups)
	meds := medoidPoints(t, ds, kmedoids.MedoidSet{0, 3, 5})

	_, err := kmedoids.BestReplacement(ds, []int{0}, meds, 3, 0, 3)
	assert.ErrorIs(t, err, kmedoids.ErrMedoidOutOfRange)

	_, err = kmedoids.BestReplacement(ds, []int{9}, meds, 0, 0, 3)
	assert.ErrorIs(t, err, kmedoids.ErrMedoidOutOfRange)

	_, err = kmedoids.BestReplacement(ds, []int{0}, [][]float64{{0}}, 0, 0, 3)
	assert.ErrorIs(t, err, kmedoids.ErrDimensionMismatch)
}
