// Package kmedoids - Convergence Driver.
package kmedoids

// Cluster partitions ds into opts.K clusters.
//
// Algorithm Outline:
//  1. INITIALIZING: take opts.Medoids, or sample K distinct indices with the
//     seeded RNG when opts.Random is set; compute the initial cost.
//  2. ITERATING:
//     a. assign every point to its nearest medoid (lowest slot on ties);
//     b. for every slot, run BestReplacement over that cluster's members,
//     each search seeing the medoid set as it was before this iteration;
//     c. keep the single candidate with the lowest cost (lowest slot on ties)
//     and replace only that medoid;
//     d. recompute the cost of the new set;
//     e. strictly lower ⇒ accept and repeat, otherwise discard the trial.
//  3. CONVERGED: return the last accepted medoid set with its assignment
//     and cost.
//
// Errors (all raised before any cost is computed):
//   - ErrEmptyDataset: ds is nil.
//   - ErrInvalidK: opts.K < 1.
//   - ErrInsufficientData: fewer than K points.
//   - ErrInvalidMedoids: fixed medoids not K distinct indices.
//   - ErrMedoidOutOfRange: fixed medoid outside [0, N).
//
// Complexity: O(N²·K·D) per iteration in the worst case.
func Cluster(ds *Dataset, opts Options) (Result, error) {
	// Stage 1 - validation.
	if err := validateAll(ds, opts); err != nil {
		return Result{}, err
	}
	var hook = opts.OnIteration
	if hook == nil {
		hook = func(int, MedoidSet, float64) {}
	}

	// Stage 2 - initial medoid set.
	var (
		medoids MedoidSet
		err     error
	)
	if opts.Random {
		medoids, err = sampleDistinct(ds.Len(), opts.K, rngFromSeed(opts.Seed))
		if err != nil {
			return Result{}, err
		}
	} else {
		medoids = MedoidSet(opts.Medoids).Clone()
	}

	pts, err := ds.Points(medoids)
	if err != nil {
		return Result{}, err
	}
	var (
		current = cost(ds, pts)
		trace   = []float64{current}
		iter    int
	)

	// Stage 3 - iterate until a trial swap stops improving.
	for {
		labels := assign(ds, pts)
		clusters := labels.Clusters(opts.K)

		best := Candidate{Slot: -1}
		for slot := range medoids {
			c := bestReplacement(ds, clusters[slot], pts, slot, medoids[slot], current)
			if best.Slot < 0 || c.Cost < best.Cost {
				best = c
			}
		}

		next := medoids.with(best.Slot, best.Index)
		nextPts, err := ds.Points(next)
		if err != nil {
			return Result{}, err
		}
		nextCost := cost(ds, nextPts)

		if nextCost >= current {
			return Result{
				Medoids:    medoids,
				Assignment: labels,
				Cost:       current,
				Iterations: iter,
				Trace:      trace,
			}, nil
		}

		iter++
		medoids, pts, current = next, nextPts, nextCost
		trace = append(trace, current)
		hook(iter, medoids.Clone(), current)
	}
}
