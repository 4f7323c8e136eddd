// Package kmedoids - Distance/Cost Evaluator.
//
// Distances are L1 (Manhattan): the sum of absolute per-dimension differences.
// The cost of a medoid set is the sum, over every point, of the distance to
// its nearest medoid. Both are pure functions of their inputs.
package kmedoids

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the L1 distance between p and q.
// Returns ErrDimensionMismatch if len(p) != len(q).
//
// Complexity: O(D).
func Distance(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("distance of %d-d and %d-d points: %w", len(p), len(q), ErrDimensionMismatch)
	}

	return floats.Distance(p, q, 1), nil
}

// Cost returns the total assignment cost of medoids over ds.
//
// Contract:
//   - len(medoids) ≥ 1, otherwise ErrNoMedoids.
//   - every medoid has ds.Dim() coordinates, otherwise ErrDimensionMismatch.
//     The shape check runs before any distance is computed.
//
// Complexity: O(N·K·D).
func Cost(ds *Dataset, medoids [][]float64) (float64, error) {
	if err := checkMedoids(ds, medoids); err != nil {
		return 0, err
	}

	return cost(ds, medoids), nil
}

// checkMedoids validates medoid shapes against ds.
func checkMedoids(ds *Dataset, medoids [][]float64) error {
	if len(medoids) == 0 {
		return ErrNoMedoids
	}
	var d = ds.Dim()
	for slot, m := range medoids {
		if len(m) != d {
			return fmt.Errorf("medoid %d has %d coordinates, dataset has %d: %w", slot, len(m), d, ErrDimensionMismatch)
		}
	}

	return nil
}

// cost is Cost without validation; medoids must already match ds.
func cost(ds *Dataset, medoids [][]float64) float64 {
	var (
		total float64
		i     int
		n     = ds.Len()
	)
	for i = 0; i < n; i++ {
		_, dist := nearest(ds.Point(i), medoids)
		total += dist
	}

	return total
}

// nearest returns the slot of the closest medoid to p and the distance to it.
// Only a strictly smaller distance displaces the current best, so on an exact
// tie the lowest slot wins.
//
// Complexity: O(K·D).
func nearest(p []float64, medoids [][]float64) (int, float64) {
	var (
		best     = 0
		bestDist = floats.Distance(p, medoids[0], 1)
		slot     int
		dist     float64
	)
	for slot = 1; slot < len(medoids); slot++ {
		dist = floats.Distance(p, medoids[slot], 1)
		if dist < bestDist {
			best, bestDist = slot, dist
		}
	}

	return best, bestDist
}
