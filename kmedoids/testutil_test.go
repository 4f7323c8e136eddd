package kmedoids_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcluster/kmedoids"
	"github.com/stretchr/testify/require"
)

// twoGroups is the six-point 2-D fixture: two well-separated triangles.
var twoGroups = [][]float64{
	{0, 0}, {0, 1}, {1, 0},
	{10, 10}, {10, 11}, {11, 10},
}

// line is a 1-D fixture where the first fixed medoid is not optimal.
var line = [][]float64{{0}, {1}, {2}, {10}, {11}, {20}}

// mustDataset builds a Dataset or fails the test.
func mustDataset(t testing.TB, pts [][]float64) *kmedoids.Dataset {
	t.Helper()
	ds, err := kmedoids.NewDataset(pts)
	require.NoError(t, err, "NewDataset")
	return ds
}

// blobs returns n points in d dimensions scattered around three centres,
// generated deterministically from seed.
func blobs(n, d int, seed int64) [][]float64 {
	var (
		r       = rand.New(rand.NewSource(seed))
		centres = []float64{0, 8, 16}
		out     = make([][]float64, n)
	)
	for i := range out {
		c := centres[i%len(centres)]
		p := make([]float64, d)
		for j := range p {
			p[j] = c + r.NormFloat64()
		}
		out[i] = p
	}
	return out
}

// medoidPoints resolves a medoid set or fails the test.
func medoidPoints(t testing.TB, ds *kmedoids.Dataset, ms kmedoids.MedoidSet) [][]float64 {
	t.Helper()
	pts, err := ds.Points(ms)
	require.NoError(t, err, "Points")
	return pts
}
