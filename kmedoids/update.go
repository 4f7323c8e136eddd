// Package kmedoids - Medoid Update Step.
package kmedoids

import "fmt"

// BestReplacement searches members for the point that, substituted for
// medoids[slot] while every other medoid stays fixed, gives the lowest total
// cost over ds.
//
// Policy:
//   - The running best starts at (current, currentCost).
//   - A member replaces the running best only on a strictly lower cost, so
//     the first minimal member in scan order wins and the current medoid is
//     kept when nothing improves.
//   - No members ⇒ (current, currentCost) is returned unchanged.
//
// medoids is not modified.
//
// Errors: ErrNoMedoids, ErrDimensionMismatch, ErrMedoidOutOfRange (slot or a
// member outside its range).
//
// Complexity: O(M·N·K·D) for M members.
func BestReplacement(ds *Dataset, members []int, medoids [][]float64, slot, current int, currentCost float64) (Candidate, error) {
	if err := checkMedoids(ds, medoids); err != nil {
		return Candidate{}, err
	}
	if slot < 0 || slot >= len(medoids) {
		return Candidate{}, fmt.Errorf("slot %d of %d: %w", slot, len(medoids), ErrMedoidOutOfRange)
	}
	var n = ds.Len()
	for _, idx := range members {
		if idx < 0 || idx >= n {
			return Candidate{}, fmt.Errorf("member %d (N=%d): %w", idx, n, ErrMedoidOutOfRange)
		}
	}

	return bestReplacement(ds, members, medoids, slot, current, currentCost), nil
}

// bestReplacement is BestReplacement without validation.
func bestReplacement(ds *Dataset, members []int, medoids [][]float64, slot, current int, currentCost float64) Candidate {
	var (
		best  = Candidate{Slot: slot, Index: current, Cost: currentCost}
		trial = make([][]float64, len(medoids)) // scratch medoid list, reused per member
		c     float64
	)
	copy(trial, medoids)
	for _, idx := range members {
		trial[slot] = ds.Point(idx)
		c = cost(ds, trial)
		if c < best.Cost {
			best.Index, best.Cost = idx, c
		}
	}

	return best
}
