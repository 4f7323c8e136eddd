// Package kmedoids - RNG utilities for random medoid initialisation.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial medoids on every platform.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Bounded work: sampling without replacement is shuffle-and-take, never
//     a retry loop.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Cluster call builds its own.
package kmedoids

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleDistinct draws k distinct indices from [0, n) without replacement by
// shuffling the full range and keeping the first k. The draw order becomes
// the label order.
// Returns ErrInsufficientData if k > n.
//
// Complexity: O(n).
func sampleDistinct(n, k int, rng *rand.Rand) (MedoidSet, error) {
	if k > n {
		return nil, ErrInsufficientData
	}
	p := make(MedoidSet, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p[:k:k], nil
}
