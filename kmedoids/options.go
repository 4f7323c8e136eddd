// Package kmedoids - options for the convergence driver.
package kmedoids

// DefaultK is the number of clusters used by DefaultOptions.
const DefaultK = 3

// DefaultMedoids are the fixed initial medoid indices used when random
// initialisation is off. They pick one point from each third of a
// 150-point dataset ordered by class (e.g. the iris flowers).
var DefaultMedoids = []int{24, 74, 124}

// IterationFunc observes an accepted swap. iteration starts at 1; medoids is
// a copy owned by the callee; cost is the new, strictly lower total cost.
type IterationFunc func(iteration int, medoids MedoidSet, cost float64)

// Options configures Cluster.
//
// Fields:
//   - K: number of clusters (≥1). Default 3.
//   - Random: pick K distinct initial medoids at random instead of Medoids.
//   - Seed: RNG seed for Random; 0 selects a fixed default seed, so
//     runs are reproducible unless the caller varies the seed.
//   - Medoids: fixed initial medoids (used when Random==false); must
//     hold exactly K distinct indices in [0, N).
//   - OnIteration: optional hook invoked after every accepted swap.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Random = true
//	opts.Seed = 7
//	res, err := Cluster(ds, opts)
type Options struct {
	K           int
	Random      bool
	Seed        int64
	Medoids     []int
	OnIteration IterationFunc
}

// DefaultOptions returns Options with K=3, fixed initial medoids
// DefaultMedoids, and a no-op iteration hook.
func DefaultOptions() Options {
	return Options{
		K:           DefaultK,
		Random:      false,
		Seed:        0,
		Medoids:     append([]int(nil), DefaultMedoids...),
		OnIteration: func(int, MedoidSet, float64) {},
	}
}
