// Package kmedoids - validation shared by the convergence driver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; only sentinels from errors.go.
//   - Everything is checked before the first cost is computed.
package kmedoids

import "fmt"

// validateAll verifies Options against the dataset, in priority order:
// nil dataset → K → dataset size → fixed medoids (if used).
//
// Complexity: O(K) time and space.
func validateAll(ds *Dataset, opts Options) error {
	if ds == nil {
		return ErrEmptyDataset
	}
	if opts.K < 1 {
		return fmt.Errorf("K=%d: %w", opts.K, ErrInvalidK)
	}
	if ds.Len() < opts.K {
		return fmt.Errorf("N=%d, K=%d: %w", ds.Len(), opts.K, ErrInsufficientData)
	}
	if !opts.Random {
		return validateMedoids(opts.Medoids, opts.K, ds.Len())
	}

	return nil
}

// validateMedoids enforces len(ms)==k, every index in [0, n), no duplicates.
//
// Complexity: O(k) time and space.
func validateMedoids(ms []int, k, n int) error {
	if len(ms) != k {
		return fmt.Errorf("%d medoids, K=%d: %w", len(ms), k, ErrInvalidMedoids)
	}
	seen := make(map[int]struct{}, k)

	var (
		slot int
		idx  int
		ok   bool
	)
	for slot, idx = range ms {
		if idx < 0 || idx >= n {
			return fmt.Errorf("medoid %d at slot %d (N=%d): %w", idx, slot, n, ErrMedoidOutOfRange)
		}
		if _, ok = seen[idx]; ok {
			return fmt.Errorf("medoid %d repeated at slot %d: %w", idx, slot, ErrInvalidMedoids)
		}
		seen[idx] = struct{}{}
	}

	return nil
}
